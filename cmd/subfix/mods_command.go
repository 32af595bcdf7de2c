package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subfix/internal/language"
	"subfix/internal/mods"
)

func newModsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mods",
		Short: "List the available subtitle modifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := mods.Default()

			rows := make([][]string, 0, len(registry.Identifiers()))
			for _, id := range registry.Identifiers() {
				m, ok := registry.Get(id)
				if !ok {
					continue
				}
				desc := m.Descriptor()
				rows = append(rows, []string{
					desc.Identifier,
					desc.Description,
					modLanguages(desc),
					modNotes(desc),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Identifier", "Description", "Languages", "Notes"},
				rows,
			))
			return nil
		},
	}
}

func modLanguages(desc mods.Descriptor) string {
	if len(desc.Languages) == 0 {
		return "all"
	}
	names := make([]string, 0, len(desc.Languages))
	for _, code := range desc.Languages {
		name := language.DisplayName(code)
		if iso2 := language.ToISO2(code); iso2 != "" {
			name += " (" + iso2 + ")"
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func modNotes(desc mods.Descriptor) string {
	var notes []string
	if desc.OnlyUppercase {
		notes = append(notes, "uppercase input only")
	}
	if desc.ApplyLast {
		notes = append(notes, "applies last")
	}
	if desc.ModifiesWholeFile {
		notes = append(notes, "whole file")
	}
	return strings.Join(notes, "; ")
}
