package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lth/hashcrack/internal/config"
	"github.com/lth/hashcrack/internal/shared"
)

var (
	version = "1.0.0"

	cfgFile     string
	enableDebug bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version)); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hashcrack [digest]",
		Short: "Recover the plaintext of an unsalted hex digest",
		Long: `hashcrack v` + version + `
Searches for the plaintext of an MD5 or SHA-family hex digest using
generated wordlists, exhaustive brute force or a smart heuristic search.

Supports md5, sha1, sha224, sha256, sha384 and sha512; the family is
detected from the digest length unless --type is given.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runCrack,
	}

	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is hashcrack.yaml in the working or user config directory)")
	rootCmd.PersistentFlags().BoolVar(&enableDebug, "debug", false, "Enable debug logging")
	cobra.CheckErr(viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")))

	config.SetDefaultConfigValues()
	addCrackFlags(rootCmd)

	rootCmd.AddCommand(
		newHashCmd(),
		newInfoCmd(),
		newGenerateCmd(),
		newFetchCmd(),
		newHistoryCmd(),
		newBenchmarkCmd(),
	)
	return rootCmd
}

func initConfig() {
	config.InitConfig(cfgFile)
	if viper.GetBool("debug") {
		shared.EnableDebug()
	}
}

// bindFlags maps flag names to viper keys.
func bindFlags(cmd *cobra.Command, keys map[string]string) {
	for flag, key := range keys {
		cobra.CheckErr(viper.BindPFlag(key, cmd.Flags().Lookup(flag)))
	}
}
