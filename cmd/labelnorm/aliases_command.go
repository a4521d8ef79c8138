package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"labelnorm/internal/taxonomy"
)

func newAliasesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "Show the effective class-name alias table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			groups := taxonomy.NewAliases(cfg.Aliases).Groups()
			canonicals := make([]string, 0, len(groups))
			for canonical := range groups {
				canonicals = append(canonicals, canonical)
			}
			sort.Strings(canonicals)

			rows := make([][]string, 0, len(canonicals))
			for _, canonical := range canonicals {
				variants := groups[canonical]
				sort.Strings(variants)
				rows = append(rows, []string{canonical, strings.Join(variants, ", ")})
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No aliases configured; names are only case- and separator-normalized.")
				return nil
			}
			fmt.Fprintln(out, renderTable([]string{"Canonical", "Accepted Variants"}, rows))
			return nil
		},
	}
}
