package main

import (
	"bufio"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lth/hashcrack/internal/config"
	"github.com/lth/hashcrack/internal/display"
	"github.com/lth/hashcrack/internal/fetch"
	"github.com/lth/hashcrack/internal/shared"
)

func newFetchCmd() *cobra.Command {
	var (
		list       bool
		clearCache bool
		output     string
		names      []string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download external wordlists into the local cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := config.Load()

			if list {
				return printCatalogue(cmd)
			}

			fetcher := newFetcher(s)
			if clearCache {
				if err := fetcher.ClearCache(); err != nil {
					return err
				}
				shared.Logger.Info("Wordlist cache cleared", "path", s.CachePath)
				return nil
			}

			if len(names) == 0 {
				names = s.Sources
			}
			sources, err := fetch.Select(fetch.Catalogue(), names)
			if err != nil {
				return err
			}
			shared.Logger.Info("Fetching wordlists", "sources", len(sources),
				"estimated", humanize.Comma(int64(fetch.EstimatedTotal(sources))))

			report, err := fetcher.FetchAll(cmd.Context(), sources, nil)
			for _, st := range report.Statuses {
				display.FetchStatus(st)
			}
			if err != nil {
				return err
			}

			if output == "" {
				shared.Logger.Info("Fetch complete", "passwords", humanize.Comma(int64(len(report.Passwords))),
					"failed", len(report.Failed()))
				return nil
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			w := bufio.NewWriter(f)
			for _, p := range report.Passwords {
				if _, err := w.WriteString(p + "\n"); err != nil {
					return err
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}
			shared.Logger.Info("Merged wordlist written", "path", output, "passwords", humanize.Comma(int64(len(report.Passwords))))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List the built-in sources")
	cmd.Flags().BoolVar(&clearCache, "clear-cache", false, "Remove all cached downloads")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the merged list to this file")
	cmd.Flags().StringSliceVarP(&names, "source", "s", nil, "Source names to fetch (default: all enabled)")
	return cmd
}

func printCatalogue(cmd *cobra.Command) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tENABLED\tSIZE\tDESCRIPTION")
	for _, src := range fetch.Catalogue() {
		fmt.Fprintf(tw, "%s\t%t\t%s\t%s\n", src.Name, src.Enabled, humanize.Comma(int64(src.EstimatedSize)), src.Description)
	}
	return tw.Flush()
}
