package main

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"subfix/internal/config"
	"subfix/internal/logging"
)

// commandContext lazily loads configuration and builds the logger once,
// shared by every subcommand.
type commandContext struct {
	configFlag *string
	logLevel   *string
	logFormat  *string

	cfg    *config.Config
	logger *slog.Logger
}

func newCommandContext(configFlag, logLevel, logFormat *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		logLevel:   logLevel,
		logFormat:  logFormat,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := ""
	if c.configFlag != nil {
		path = *c.configFlag
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if c.logLevel != nil && *c.logLevel != "" {
		cfg.Logging.Level = *c.logLevel
	}
	if c.logFormat != nil && *c.logFormat != "" {
		cfg.Logging.Format = *c.logFormat
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	format := cfg.Logging.Format
	if format == "" || format == "console" {
		if !isTerminal(os.Stderr) {
			format = "json"
		} else {
			format = "console"
		}
	}
	logger, err := logging.New(os.Stderr, logging.Options{
		Level:  cfg.Logging.Level,
		Format: format,
	})
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
