package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lth/hashcrack/internal/cracker"
	"github.com/lth/hashcrack/internal/digest"
	"github.com/lth/hashcrack/internal/display"
	"github.com/lth/hashcrack/internal/shared"
	"github.com/lth/hashcrack/internal/wordlist"
)

func newHashCmd() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "hash [text]",
		Short: "Print the hex digest of text (reads stdin when no text is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := digest.ParseFamily(family)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				fmt.Fprintln(cmd.OutOrStdout(), digest.Digest(args[0], f))
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				fmt.Fprintln(cmd.OutOrStdout(), digest.Digest(scanner.Text(), f))
			}
			return scanner.Err()
		},
	}
	cmd.Flags().StringVarP(&family, "type", "t", "sha256", "Hash family: md5, sha1, sha224, sha256, sha384, sha512")
	return cmd
}

func newInfoCmd() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "info <digest>",
		Short: "Display the detected hash family and wordlist sizes for a digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := digest.ParseFamily(family)
			if err != nil {
				return err
			}
			target, err := digest.ParseTarget(args[0], f)
			if err != nil {
				return err
			}

			cf := wordlist.DetectCostFactor(target.Family)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Digest Information")
			fmt.Fprintln(out, "==================")
			fmt.Fprintf(out, "Digest:      %s\n", target.Hex)
			fmt.Fprintf(out, "Length:      %d hex characters\n", len(target.Hex))
			fmt.Fprintf(out, "Family:      %s\n", target.Family)
			if target.Guessed {
				fmt.Fprintln(out, "             (no family matches this length, assuming sha256)")
			}
			fmt.Fprintf(out, "Cost factor: %d\n", cf)
			for _, p := range []wordlist.Plan{wordlist.NormalPlan(cf), wordlist.UltraPlan(cf), wordlist.MegaPlan(cf)} {
				fmt.Fprintf(out, "%-12s ~%s candidates\n", p.Scale.String()+":", humanize.Comma(int64(p.Estimate())))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&family, "type", "t", "auto", "Hash family")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var (
		output string
		cf     int
		genUlt bool
		genMeg bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated wordlist to a file or stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("cost-factor") {
				cf = viper.GetInt("cost_factor")
			}

			logger := commandLogger(cmd)
			res, err := wordlist.Build(cmd.Context(), wordlist.Request{
				CostFactor: cf,
				Ultra:      genUlt,
				Mega:       genMeg,
				Logger:     logger,
				OnProgress: func(_, generated int) {
					logger.Debug("Generating", "candidates", humanize.Comma(int64(generated)))
				},
			})
			if err != nil {
				return err
			}
			if res.FellBack {
				logger.Warn("Large wordlist unavailable, wrote the normal list instead", "scale", res.Scale)
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			bw := bufio.NewWriter(w)
			for _, c := range res.Candidates {
				if _, err := bw.WriteString(c + "\n"); err != nil {
					return err
				}
			}
			if err := bw.Flush(); err != nil {
				return err
			}
			logger.Info("Wordlist written", "candidates", humanize.Comma(int64(len(res.Candidates))), "scale", res.Scale)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().IntVarP(&cf, "cost-factor", "k", wordlist.DefaultCostFactor, "Cost factor (4-20)")
	cmd.Flags().BoolVar(&genUlt, "ultra", false, "Generate the ultra wordlist")
	cmd.Flags().BoolVar(&genMeg, "mega", false, "Generate the mega wordlist")
	return cmd
}

func newBenchmarkCmd() *cobra.Command {
	var (
		family  string
		samples int
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Measure digest throughput per hash family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			families := digest.Families()
			if family != "" {
				f, err := digest.ParseFamily(family)
				if err != nil {
					return err
				}
				if f != digest.Auto {
					families = []digest.Family{f}
				}
			}

			testPasswords := make([]string, samples)
			for i := range testPasswords {
				testPasswords[i] = fmt.Sprintf("test%d", i)
			}

			quiet := log.New(io.Discard)
			for _, f := range families {
				res, err := benchmarkFamily(cmd.Context(), f, testPasswords, timeout, quiet)
				if err != nil {
					return err
				}
				display.Benchmark(f, res.Attempts, res.Duration)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&family, "type", "t", "", "Benchmark a single family (default all)")
	cmd.Flags().IntVar(&samples, "samples", 100_000, "Candidates per family")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Time limit per family")
	return cmd
}

// benchmarkFamily runs a full wordlist pass against a digest no sample
// matches.
func benchmarkFamily(ctx context.Context, f digest.Family, passwords []string, timeout time.Duration, logger *log.Logger) (cracker.Result, error) {
	miss := digest.Digest(strings.Repeat("~", 8), f)
	c, err := cracker.New(miss, f, cracker.WithLogger(logger))
	if err != nil {
		return cracker.Result{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.CrackWithWordlist(ctx, passwords, nil), nil
}

// commandLogger logs to the command's stderr at the shared logger's level,
// keeping stdout free for generated data.
func commandLogger(cmd *cobra.Command) *log.Logger {
	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:           shared.Logger.GetLevel(),
		ReportTimestamp: true,
	})
}
