package main

import (
	"path/filepath"

	"github.com/Nomadcxx/yearsort/internal/app"
	"github.com/Nomadcxx/yearsort/internal/ui"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show moves per year and the most recent moves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := app.OpenLedger(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			counts, err := db.YearCounts()
			if err != nil {
				return err
			}

			if len(counts) == 0 {
				ui.InfoMsg("No moves recorded yet")
				return nil
			}

			ui.Section("Files per year")
			total := 0
			byYear := ui.NewTable("YEAR", "FILES")
			for _, c := range counts {
				byYear.AddRow(ui.Year(c.Year), ui.FormatCount(c.Count))
				total += c.Count
			}
			byYear.AddRow("total", ui.FormatCount(total))
			byYear.Render(ui.Stdout)

			if recent <= 0 {
				return nil
			}
			moves, err := db.RecentMoves(recent)
			if err != nil {
				return err
			}
			ui.Section("Recent moves")
			table := ui.NewTable("WHEN", "FILE", "YEAR", "FOLDER")
			for _, mv := range moves {
				name := mv.FileName
				if mv.DryRun {
					name += ui.Dim(" (dry run)")
				}
				table.AddRow(ui.FormatWhen(mv.MovedAt), name, mv.Year, filepath.Clean(mv.Folder))
			}
			table.Render(ui.Stdout)
			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 10, "number of recent moves to list (0 to hide)")

	return cmd
}
