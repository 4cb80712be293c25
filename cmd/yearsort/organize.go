package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/Nomadcxx/yearsort/internal/app"
	"github.com/Nomadcxx/yearsort/internal/organizer"
	"github.com/Nomadcxx/yearsort/internal/tui"
	"github.com/Nomadcxx/yearsort/internal/ui"
	"github.com/spf13/cobra"
)

func newOrganizeCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "organize <folder>",
		Short: "Move the files of a folder into per-year subfolders",
		Long: `Move every file directly inside <folder> into <folder>/<year>, where
the year comes from a date in the file name. Subfolders are not entered.

Examples:
  yearsort organize ~/Scans
  yearsort organize ~/Scans --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(args[0], dryRun)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "preview changes without moving files")

	return cmd
}

func runOrganize(folder string, dryRun bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := app.Init(cfg, app.Options{DryRun: dryRun, Console: verbose, Verbose: verbose})
	if err != nil {
		return err
	}
	defer a.Close()

	if a.Organizer.DryRun() {
		ui.InfoMsg("Dry run: no files will be moved")
	}

	bar := ui.NewProgressBar("Organizing")
	result, err := a.Organizer.Organize(folder, bar)
	if err != nil {
		return err
	}

	if result.FolderMissing {
		ui.WarningMsg("Folder not found: %s", ui.Path(folder))
		return nil
	}

	printResult(result)
	return nil
}

func printResult(result *organizer.Result) {
	if result.DryRun {
		ui.Section("Planned moves")
		for _, fr := range result.Files {
			if fr.Outcome != organizer.OutcomeMoved {
				continue
			}
			fmt.Fprintf(ui.Stdout, "  %s → %s/\n", fr.Name, ui.Year(fr.Year))
		}
		fmt.Fprintln(ui.Stdout)
		ui.InfoMsg("%s would be moved, %s left in place", ui.FormatFiles(result.Moved), ui.FormatFiles(result.Skipped))
		return
	}

	if result.Total == 0 {
		ui.InfoMsg("No files in %s", ui.Path(result.Folder))
	}
	ui.SuccessMsg(tui.SuccessText)
	ui.InfoMsg("Moved %s, left %s in place (%s)",
		ui.FormatFiles(result.Moved),
		ui.FormatFiles(result.Skipped),
		ui.FormatDuration(result.Duration))

	if len(result.Years) == 0 {
		return
	}
	years := make([]string, 0, len(result.Years))
	for y := range result.Years {
		years = append(years, y)
	}
	sort.Strings(years)

	table := ui.NewTable("FOLDER", "FILES")
	for _, y := range years {
		table.AddRow(filepath.Join(result.Folder, y), ui.FormatCount(result.Years[y]))
	}
	fmt.Fprintln(ui.Stdout)
	table.Render(ui.Stdout)
}
