package main

import (
	"context"
	"errors"
	"time"

	"github.com/duke-git/lancet/v2/strutil"
	"github.com/spf13/cobra"

	"github.com/lth/hashcrack/internal/attacks"
	"github.com/lth/hashcrack/internal/config"
	"github.com/lth/hashcrack/internal/cracker"
	"github.com/lth/hashcrack/internal/digest"
	"github.com/lth/hashcrack/internal/display"
	"github.com/lth/hashcrack/internal/fetch"
	"github.com/lth/hashcrack/internal/history"
	"github.com/lth/hashcrack/internal/shared"
	"github.com/lth/hashcrack/internal/wordlist"
)

var (
	targetHash   string
	hashType     string
	mode         string
	charset      string
	minLength    int
	maxLength    int
	costFactor   int
	autoCost     bool
	ultra        bool
	mega         bool
	network      bool
	wordlistFile string
	sourceNames  []string
	noHistory    bool
)

func addCrackFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&targetHash, "hash", "H", "", "Hex digest to crack (alternative to the positional argument)")
	cmd.Flags().StringVarP(&hashType, "type", "t", "auto", "Hash family: auto, md5, sha1, sha224, sha256, sha384, sha512")
	cmd.Flags().StringVarP(&mode, "mode", "a", "wordlist", "Attack mode: wordlist, bruteforce, smart")
	cmd.Flags().StringVarP(&charset, "charset", "c", "alnum", "Character set: lower, upper, digits, alpha, lowernum, alnum, all, special, or custom string")
	cmd.Flags().IntVarP(&minLength, "min", "m", 1, "Minimum password length for brute-force")
	cmd.Flags().IntVarP(&maxLength, "max", "M", 8, "Maximum password length for brute-force")
	cmd.Flags().IntVarP(&costFactor, "cost-factor", "k", wordlist.DefaultCostFactor, "Wordlist cost factor (4-20)")
	cmd.Flags().BoolVar(&autoCost, "auto-cost", true, "Derive the cost factor from the hash family unless --cost-factor is set")
	cmd.Flags().BoolVar(&ultra, "ultra", false, "Generate the ultra wordlist")
	cmd.Flags().BoolVar(&mega, "mega", false, "Generate the mega wordlist")
	cmd.Flags().BoolVarP(&network, "network", "n", false, "Merge downloaded external wordlists")
	cmd.Flags().StringVarP(&wordlistFile, "wordlist", "w", "", "Use this wordlist file instead of generating one")
	cmd.Flags().StringSliceVar(&sourceNames, "source", nil, "External source names to download (default: all enabled)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this run in the history")

	bindFlags(cmd, map[string]string{
		"type":        "hash_type",
		"mode":        "mode",
		"charset":     "charset",
		"min":         "min_length",
		"max":         "max_length",
		"cost-factor": "cost_factor",
		"auto-cost":   "auto_cost_factor",
		"ultra":       "ultra",
		"mega":        "mega",
		"network":     "network",
		"wordlist":    "wordlist_file",
		"source":      "sources",
	})
}

func runCrack(cmd *cobra.Command, args []string) error {
	raw := targetHash
	if len(args) > 0 {
		raw = args[0]
	}
	if strutil.IsBlank(raw) {
		return cmd.Help()
	}

	s := config.Load()
	display.Startup(version)

	family, err := digest.ParseFamily(s.HashType)
	if err != nil {
		return err
	}
	attackMode, err := cracker.ParseMode(s.Mode)
	if err != nil {
		return err
	}

	c, err := cracker.New(raw, family)
	if err != nil {
		return err
	}
	display.Target(c.Target())

	ctx := cmd.Context()
	stopAbort := context.AfterFunc(ctx, func() {
		shared.Logger.Warn("Interrupted - stopping...")
		c.Abort()
	})
	defer stopAbort()

	store := history.NewStore(s.HistoryPath, s.HistoryMax)
	verified := wordlist.NewVerifiedStore()
	if recent, err := store.RecentSuccesses(s.HistoryMax); err != nil {
		shared.Logger.Warn("Could not read history, starting without verified passwords", "error", err)
	} else {
		verified.Seed(recent...)
	}

	cfg := cracker.AttackConfig{
		Mode:       attackMode,
		Charset:    attacks.ResolveCharset(s.Charset),
		MinLength:  s.MinLength,
		MaxLength:  s.MaxLength,
		CostFactor: s.CostFactor,
		Ultra:      s.Ultra,
		Mega:       s.Mega,
		Verified:   verified,
	}
	if attackMode == cracker.ModeWordlist {
		if err := prepareWordlist(ctx, cmd, s, c, &cfg); err != nil {
			return err
		}
	}
	display.Attack(cfg)

	bar := display.NewProgressBar(cmd.ErrOrStderr())
	res, err := c.Start(ctx, cfg, bar)
	bar.Finish()
	if err != nil {
		return err
	}
	display.Result(res)

	if res.Found {
		verified.Add(res.Password, c.Target())
	}
	if !noHistory {
		recordRun(store, c.Target(), cfg, res)
	}
	return nil
}

// prepareWordlist resolves the cost factor and loads the user and network
// lists for a wordlist attack. A cost factor given by flag, config file or
// environment overrides the per-family one.
func prepareWordlist(ctx context.Context, cmd *cobra.Command, s config.Settings, c *cracker.Cracker, cfg *cracker.AttackConfig) error {
	if s.AutoCostFactor && !s.CostFactorSet && !cmd.Flags().Changed("cost-factor") {
		cfg.CostFactor = wordlist.DetectCostFactor(c.Family())
		shared.Logger.Debug("Cost factor from hash family", "family", c.Family(), "cost_factor", cfg.CostFactor)
	}

	if s.WordlistFile != "" {
		list, err := wordlist.ReadFile(s.WordlistFile)
		if err != nil {
			return err
		}
		cfg.Wordlist = list
		shared.Logger.Info("Loaded wordlist", "path", s.WordlistFile, "passwords", len(list))
	}

	if s.Network {
		external, err := fetchExternal(ctx, s)
		if err != nil && !errors.Is(err, context.Canceled) {
			shared.Logger.Warn("External wordlists unavailable, continuing without them", "error", err)
		}
		cfg.External = external
		if cfg.Wordlist != nil {
			cfg.Wordlist = append(cfg.Wordlist, external...)
		}
	}
	return nil
}

func fetchExternal(ctx context.Context, s config.Settings) ([]string, error) {
	sources, err := fetch.Select(fetch.Catalogue(), s.Sources)
	if err != nil {
		return nil, err
	}

	report, err := newFetcher(s).FetchAll(ctx, sources, func(st fetch.Status) {
		if st.State != fetch.StatePending && st.State != fetch.StateLoading {
			display.FetchStatus(st)
		}
	})
	return report.Passwords, err
}

func newFetcher(s config.Settings) *fetch.Fetcher {
	return fetch.New(s.CachePath,
		fetch.WithTimeout(s.FetchTimeout),
		fetch.WithParallel(s.FetchParallel),
		fetch.WithMaxAge(s.FetchMaxAge),
		fetch.WithProgress(fetch.NewProgressTracker(nil)),
	)
}

func recordRun(store *history.Store, target digest.Target, cfg cracker.AttackConfig, res cracker.Result) {
	rec := history.Record{
		Target:    target.Hex,
		Family:    target.Family.String(),
		Mode:      string(cfg.Mode),
		Method:    res.Method,
		Success:   res.Found,
		Password:  res.Password,
		Attempts:  res.Attempts,
		TimeTaken: history.Duration(res.Duration.Round(time.Millisecond)),
	}
	if cfg.Mode == cracker.ModeWordlist {
		rec.CostFactor = cfg.CostFactor
		rec.PasswordsScanned = res.Candidates
		rec.Scale = res.Scale.String()
	}

	if _, err := store.Append(rec); err != nil {
		shared.Logger.Warn("Failed to record run in history", "error", err)
	}
}
