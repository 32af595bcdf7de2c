package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"subfix/internal/language"
)

//go:embed sample_config.toml
var sampleConfig string

// Processing selects which modifications run and for which language.
type Processing struct {
	// Language is the subtitle language when the file name does not carry
	// one. Accepts ISO codes, full names, or BCP-47 tags.
	Language string `toml:"language"`
	// Mods lists the modification identifiers to apply, in request order.
	Mods []string `toml:"mods"`
}

// Logging controls diagnostic output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// History configures the processing-run history database.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Config is the root configuration document.
type Config struct {
	Processing Processing `toml:"processing"`
	Logging    Logging    `toml:"logging"`
	History    History    `toml:"history"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Processing: Processing{
			Mods: []string{"remove_tags", "common"},
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
		History: History{
			Enabled: false,
			Path:    defaultHistoryPath(),
		},
	}
}

// Load reads the configuration file at path, falling back to defaults when
// the file does not exist. Relative history paths are resolved against the
// config file's directory.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.History.Path != "" && !filepath.IsAbs(cfg.History.Path) {
		cfg.History.Path = filepath.Join(filepath.Dir(path), cfg.History.Path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot honor.
// An unresolvable language is not an error; it degrades to "no restriction".
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("config: unsupported log format %q", c.Logging.Format)
	}
	if c.History.Enabled && strings.TrimSpace(c.History.Path) == "" {
		return errors.New("config: history enabled without a path")
	}
	return nil
}

// ResolvedLanguage returns the configured language as an ISO 639-2 code.
func (c *Config) ResolvedLanguage() string {
	return language.Resolve(c.Processing.Language)
}

// WriteSample writes the annotated sample configuration to path.
func WriteSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "subfix_history.db"
	}
	return filepath.Join(home, ".cache", "subfix", "history.db")
}
