package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lth/hashcrack/internal/config"
	"github.com/lth/hashcrack/internal/display"
	"github.com/lth/hashcrack/internal/history"
	"github.com/lth/hashcrack/internal/shared"
)

func openHistory() *history.Store {
	s := config.Load()
	return history.NewStore(s.HistoryPath, s.HistoryMax)
}

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previous runs",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			records, err := openHistory().All()
			if err != nil {
				return err
			}
			if len(records) == 0 {
				shared.Logger.Info("No runs recorded yet")
				return nil
			}
			for i, r := range records {
				if limit > 0 && i >= limit {
					break
				}
				display.Record(r)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Number of runs to show (0 for all)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "stats",
			Short: "Summarize previous runs",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				st, err := openHistory().Stats()
				if err != nil {
					return err
				}
				display.Stats(st)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete the run history",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return openHistory().Clear()
			},
		},
		newHistoryExportCmd(),
	)
	return cmd
}

func newHistoryExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the run history as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := openHistory()
			if output == "" {
				return store.Export(cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := store.Export(f); err != nil {
				return err
			}
			shared.Logger.Info("History exported", "path", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
