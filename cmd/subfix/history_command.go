package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subfix/internal/history"
)

func newHistoryCommand(cctx *commandContext) *cobra.Command {
	var limit int
	var pathFilter string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded processing runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return errors.New("history is disabled; enable it in the config file")
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var runs []*history.Run
			if pathFilter != "" {
				runs, err = store.ForPath(cmd.Context(), pathFilter)
			} else {
				runs, err = store.Recent(cmd.Context(), limit)
			}
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.CreatedAt.Local().Format(time.DateTime),
					run.Path,
					run.Language,
					strings.Join(run.Mods, ","),
					strconv.Itoa(run.Entries),
					strconv.FormatBool(run.Changed),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"When", "Path", "Language", "Mods", "Entries", "Changed"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	cmd.Flags().StringVar(&pathFilter, "path", "", "Only show runs for this subtitle path")

	return cmd
}
