package main

import (
	"fmt"

	"github.com/Nomadcxx/yearsort/internal/ui"
	"github.com/Nomadcxx/yearsort/internal/yearparse"
	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	var listPatterns bool

	cmd := &cobra.Command{
		Use:   "extract <name>...",
		Short: "Show the year yearsort would read from file names",
		Long: `Show the year found in each name and which date layout matched.
Nothing is moved.

Examples:
  yearsort extract invoice-31-DEC-2024.pdf IMG_24-06-01.jpg
  yearsort extract --patterns`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if listPatterns {
				table := ui.NewTable("PRIORITY", "PATTERN", "EXAMPLE")
				for i, p := range yearparse.Patterns() {
					table.AddRow(fmt.Sprintf("%d", i+1), p.Name, p.Example)
				}
				table.Render(out)
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("requires at least one file name (or --patterns)")
			}

			table := ui.NewTable("NAME", "YEAR", "PATTERN", "MATCH")
			for _, name := range args {
				res, ok := yearparse.Match(name)
				if !ok {
					table.AddRow(name, "no year")
					continue
				}
				table.AddRow(name, res.Year, res.Pattern, res.Token)
			}
			table.Render(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&listPatterns, "patterns", false, "list recognised date layouts in priority order")

	return cmd
}
