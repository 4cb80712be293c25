package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nomadcxx/yearsort/internal/app"
	"github.com/Nomadcxx/yearsort/internal/organizer"
	"github.com/Nomadcxx/yearsort/internal/ui"
	"github.com/Nomadcxx/yearsort/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var debounce time.Duration
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "watch <folder>",
		Short: "Organize a folder whenever new files arrive",
		Long: `Watch a folder and organize it once new files have stopped arriving
for the debounce period. Only the folder itself is watched.

Examples:
  yearsort watch ~/Scans
  yearsort watch ~/Scans --debounce 10s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("debounce") {
				debounce = cfg.Watch.Debounce
			}

			a, err := app.Init(cfg, app.Options{DryRun: dryRun, Console: true, Verbose: verbose})
			if err != nil {
				return err
			}
			defer a.Close()

			// Pick up whatever is already waiting before watching.
			if _, err := a.Organizer.Organize(folder, nil); err != nil {
				return err
			}

			w, err := watcher.New(folder, a.Organizer,
				watcher.WithDebounce(debounce),
				watcher.WithLogger(a.Logger),
				watcher.WithOnRun(reportWatchRun))
			if err != nil {
				return err
			}
			defer w.Close()

			ui.InfoMsg("Watching: %s", ui.Path(w.Folder()))
			if a.Organizer.DryRun() {
				ui.InfoMsg("Mode: DRY RUN (no files will be moved)")
			}
			ui.InfoMsg("Press Ctrl+C to stop")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return w.Run(ctx)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "quiet period before organizing")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "preview changes without moving files")

	return cmd
}

func reportWatchRun(result *organizer.Result, err error) {
	if err != nil {
		ui.ErrorMsg("An error occurred: %v", err)
		return
	}
	if result == nil || result.FolderMissing {
		ui.WarningMsg("Folder is gone")
		return
	}
	if result.Moved > 0 {
		ui.SuccessMsg("Moved %s", ui.FormatFiles(result.Moved))
	}
}
