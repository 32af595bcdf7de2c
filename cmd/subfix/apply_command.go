package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"subfix/internal/history"
	"subfix/internal/language"
	"subfix/internal/mods"
	"subfix/internal/srt"
)

func newApplyCommand(cctx *commandContext) *cobra.Command {
	var (
		langFlag  string
		modsFlag  []string
		output    string
		inPlace   bool
		dryRun    bool
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "apply [flags] FILE...",
		Short: "Apply subtitle modifications to one or more SRT files",
		Long: `Apply parses each SRT file, runs the selected modifications, and writes
the result. Without --in-place or --output the cleaned subtitle is written
to stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && len(args) > 1 {
				return errors.New("--output only works with a single input file")
			}
			if output != "" && inPlace {
				return errors.New("--output and --in-place are mutually exclusive")
			}

			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cctx.ensureLogger()
			if err != nil {
				return err
			}

			ids := cfg.Processing.Mods
			if len(modsFlag) > 0 {
				ids = modsFlag
			}

			var store *history.Store
			if cfg.History.Enabled && !noHistory && !dryRun {
				store, err = history.Open(cfg.History.Path)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
			}

			registry := mods.Default()
			for _, path := range args {
				if err := applyFile(cmd, applyRequest{
					path:     path,
					language: resolveLanguage(langFlag, cfg.Processing.Language, path),
					ids:      ids,
					output:   output,
					inPlace:  inPlace,
					dryRun:   dryRun,
					registry: registry,
					store:    store,
					cctx:     cctx,
				}); err != nil {
					return err
				}
			}
			logger.Info("apply finished", "files", len(args))
			return nil
		},
	}

	cmd.Flags().StringVarP(&langFlag, "language", "l", "", "Subtitle language (ISO code, BCP-47 tag, or name)")
	cmd.Flags().StringSliceVarP(&modsFlag, "mods", "m", nil, "Modification identifiers to apply, in order")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result to this path (single input only)")
	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "Rewrite each input file in place")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording this run in the history database")

	return cmd
}

type applyRequest struct {
	path     string
	language string
	ids      []string
	output   string
	inPlace  bool
	dryRun   bool
	registry *mods.Registry
	store    *history.Store
	cctx     *commandContext
}

func applyFile(cmd *cobra.Command, req applyRequest) error {
	logger, err := req.cctx.ensureLogger()
	if err != nil {
		return err
	}
	logger = logger.With("path", req.path)

	data, err := os.ReadFile(req.path)
	if err != nil {
		return fmt.Errorf("read subtitle: %w", err)
	}
	entries, err := srt.Parse(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", req.path, err)
	}

	ctx := mods.NewContext(req.language)
	ctx.Logger = logger
	ctx.Uppercase = mods.PredominantlyUppercase(entries)

	logger.Debug("processing subtitle",
		"language", ctx.Language,
		"uppercase", ctx.Uppercase,
		"entries", len(entries),
		"mods", strings.Join(req.ids, ","))

	result := req.registry.Apply(entries, req.ids, ctx)
	rendered := srt.Render(result)
	changed := !bytes.Equal(data, rendered)

	if req.dryRun {
		if changed {
			logger.Info("would modify subtitle", "entries", len(result))
		} else {
			logger.Info("subtitle already clean")
		}
		return nil
	}

	switch {
	case req.inPlace:
		if err := writeInPlace(req.path, rendered); err != nil {
			return err
		}
	case req.output != "":
		if err := os.WriteFile(req.output, rendered, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	default:
		if _, err := cmd.OutOrStdout().Write(rendered); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if req.store != nil {
		if _, err := req.store.Record(cmd.Context(), history.Run{
			Path:     req.path,
			Language: ctx.Language,
			Mods:     req.ids,
			Entries:  len(result),
			Changed:  changed,
		}); err != nil {
			logger.Warn("failed to record run", "error", err)
		}
	}

	logger.Info("subtitle processed", "entries", len(result), "changed", changed)
	return nil
}

// writeInPlace rewrites path under an advisory lock so concurrent subfix
// invocations do not interleave writes to the same file.
func writeInPlace(path string, data []byte) error {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%s is being processed by another subfix instance", path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace subtitle: %w", err)
	}
	return nil
}

// resolveLanguage picks the subtitle language from the flag, the config, or
// the file name suffix ("movie.en.srt"), in that order.
func resolveLanguage(flag, configured, path string) string {
	if flag != "" {
		return flag
	}
	if configured != "" {
		return configured
	}
	return languageFromPath(path)
}

func languageFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	idx := strings.LastIndex(base, ".")
	if idx < 0 || idx == len(base)-1 {
		return ""
	}
	candidate := base[idx+1:]
	if language.Resolve(candidate) == "und" {
		return ""
	}
	return candidate
}
