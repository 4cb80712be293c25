package main

import (
	"fmt"

	"github.com/Nomadcxx/yearsort/internal/activity"
	"github.com/Nomadcxx/yearsort/internal/paths"
	"github.com/Nomadcxx/yearsort/internal/ui"
	"github.com/spf13/cobra"
)

func newActivityCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent per-file outcomes, including skipped files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := paths.ActivityDir()
			if err != nil {
				return err
			}
			act, err := activity.NewLogger(dir)
			if err != nil {
				return fmt.Errorf("failed to open activity log: %w", err)
			}
			defer act.Close()

			entries, err := act.GetRecentEntries(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				ui.InfoMsg("No activity recorded in %s", ui.Path(act.GetLogDir()))
				return nil
			}

			table := ui.NewTable("TIME", "ACTION", "FILE", "YEAR", "DETAIL")
			for _, e := range entries {
				detail := e.Target
				switch e.Action {
				case activity.ActionSkip:
					detail = "no date in name"
				case activity.ActionFail:
					detail = e.Error
				}
				action := string(e.Action)
				if e.DryRun {
					action += " (dry run)"
				}
				table.AddRow(e.Timestamp.Local().Format("2006-01-02 15:04:05"), action, e.Source, e.Year, detail)
			}
			table.Render(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "number of entries to show")

	return cmd
}
