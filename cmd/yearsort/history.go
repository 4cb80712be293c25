package main

import (
	"fmt"

	"github.com/Nomadcxx/yearsort/internal/history"
	"github.com/Nomadcxx/yearsort/internal/tui"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List folders that have been organized",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			folders, err := history.New(cfg.History.File).Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(folders) == 0 {
				fmt.Fprintln(out, tui.EmptyHistory)
				return nil
			}
			for _, f := range folders {
				fmt.Fprintln(out, f)
			}
			return nil
		},
	}
}
