package main

import (
	"fmt"
	"os"

	"github.com/Nomadcxx/yearsort/internal/app"
	"github.com/Nomadcxx/yearsort/internal/config"
	"github.com/Nomadcxx/yearsort/internal/tui"
	"github.com/Nomadcxx/yearsort/internal/ui"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // Set by build flags: -ldflags="-X main.version=1.0.0"
	cfgFile string
	verbose bool
	noColor bool
)

const asciiHeader = `                                       _
 _   _  ___  __ _ _ __ ___  ___  _ __| |_
| | | |/ _ \/ _' | '__/ __|/ _ \| '__| __|
| |_| |  __/ (_| | |  \__ \ (_) | |  | |_
 \__, |\___|\__,_|_|  |___/\___/|_|   \__|
 |___/`

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		ui.ErrorMsg("%s%v", tui.ErrorPrefix, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "yearsort",
		Short: "Sort files into folders by the year in their name",
		Long: `yearsort moves each file of a folder into a subfolder named after the
year found in its file name.

Recognised dates:
  31-DEC-2024   day-month-year, year taken as written
  24-12-31      year-month-day, two-digit year read as 20yy

Files without a recognisable date are left where they are. Every organized
folder is remembered in the history file.

Run without a command to open the interactive shell.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runShell,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				ui.DisableColors()
			}
		},
	}

	originalHelpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd.Name() == "yearsort" {
			printHeader(cmd, version)
		}
		originalHelpFunc(cmd, args)
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/yearsort/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newOrganizeCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newActivityCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The shell owns the screen, so logs go to the log file only.
	a, err := app.Init(cfg, app.Options{Console: false, Verbose: verbose})
	if err != nil {
		return err
	}
	defer a.Close()

	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	return tui.Run(a.Organizer, a.History, cwd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			printHeader(cmd, version)
		},
	}
}

func printHeader(cmd *cobra.Command, version string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, asciiHeader)
	fmt.Fprintf(out, "Version: %s\n\n", version)
}
