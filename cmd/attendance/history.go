package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent generations from the generation log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			items, err := a.service.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, g := range items {
				line := fmt.Sprintf("%s  %s  %-9s %-24s %s..%s  items=%d bytes=%d %dms",
					g.CreatedAt.Format("2006-01-02 15:04:05"), g.ID, g.Status, g.OfficeName,
					g.DateFrom, g.DateTo, g.Items, g.Bytes, g.DurationMs)
				if g.IsFailed() {
					line += "  error: " + g.Error
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries (1..100)")
	return cmd
}
