// Package config wires viper to the hashcrack settings.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lth/hashcrack/internal/shared"
)

const (
	appName   = "hashcrack"
	envPrefix = "HASHCRACK"

	defaultMinLength     = 1
	defaultMaxLength     = 8
	defaultCostFactor    = 10
	defaultHistoryMax    = 100
	defaultFetchTimeout  = 30 * time.Second
	defaultFetchParallel = 4
	defaultFetchMaxAge   = 7 * 24 * time.Hour
)

var scope = gap.NewScope(gap.User, appName)

// Settings is a typed snapshot of the viper keys.
type Settings struct {
	Debug bool

	HashType       string
	Mode           string
	Charset        string
	MinLength      int
	MaxLength      int
	CostFactor     int
	// CostFactorSet is true when cost_factor comes from the config file or
	// the environment rather than a default.
	CostFactorSet  bool
	AutoCostFactor bool
	Ultra          bool
	Mega           bool
	Network        bool
	WordlistFile   string

	HistoryPath string
	HistoryMax  int

	CachePath     string
	FetchTimeout  time.Duration
	FetchParallel int
	FetchMaxAge   time.Duration
	Sources       []string
}

// SetDefaultConfigValues registers defaults for every key. Paths fall back
// to ./data when the platform directories cannot be resolved.
func SetDefaultConfigValues() {
	viper.SetDefault("debug", false)
	viper.SetDefault("hash_type", "auto")
	viper.SetDefault("mode", "wordlist")
	viper.SetDefault("charset", "alnum")
	viper.SetDefault("min_length", defaultMinLength)
	viper.SetDefault("max_length", defaultMaxLength)
	viper.SetDefault("cost_factor", defaultCostFactor)
	viper.SetDefault("auto_cost_factor", true)
	viper.SetDefault("ultra", false)
	viper.SetDefault("mega", false)
	viper.SetDefault("network", false)
	viper.SetDefault("wordlist_file", "")

	viper.SetDefault("history_path", defaultHistoryPath())
	viper.SetDefault("history_max", defaultHistoryMax)

	viper.SetDefault("cache_path", defaultCachePath())
	viper.SetDefault("fetch_timeout", defaultFetchTimeout)
	viper.SetDefault("fetch_parallel", defaultFetchParallel)
	viper.SetDefault("fetch_max_age", defaultFetchMaxAge)
	viper.SetDefault("sources", []string{})
}

// InitConfig reads hashcrack.yaml from cfgFile or the search path (working
// directory, user config directories) and enables HASHCRACK_* environment
// overrides. A missing config file is not an error.
func InitConfig(cfgFile string) {
	shared.ErrorLogger.SetReportCaller(true)

	cwd, err := os.Getwd()
	cobra.CheckErr(err)
	viper.AddConfigPath(cwd)

	configDirs, err := scope.ConfigDirs()
	cobra.CheckErr(err)
	for _, dir := range configDirs {
		viper.AddConfigPath(dir)
	}

	if home, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigType("yaml")
	viper.SetConfigName(appName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		shared.Logger.Debug("Using config file", "config_file", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		shared.ErrorLogger.Error("Error reading config file", "config_file", cfgFile, "error", err)
	} else {
		shared.Logger.Debug("No config file found, using defaults")
	}
}

// Load snapshots the current viper state.
func Load() Settings {
	return Settings{
		Debug:          viper.GetBool("debug"),
		HashType:       viper.GetString("hash_type"),
		Mode:           viper.GetString("mode"),
		Charset:        viper.GetString("charset"),
		MinLength:      viper.GetInt("min_length"),
		MaxLength:      viper.GetInt("max_length"),
		CostFactor:     viper.GetInt("cost_factor"),
		CostFactorSet:  Explicit("cost_factor"),
		AutoCostFactor: viper.GetBool("auto_cost_factor"),
		Ultra:          viper.GetBool("ultra"),
		Mega:           viper.GetBool("mega"),
		Network:        viper.GetBool("network"),
		WordlistFile:   viper.GetString("wordlist_file"),
		HistoryPath:    viper.GetString("history_path"),
		HistoryMax:     viper.GetInt("history_max"),
		CachePath:      viper.GetString("cache_path"),
		FetchTimeout:   viper.GetDuration("fetch_timeout"),
		FetchParallel:  viper.GetInt("fetch_parallel"),
		FetchMaxAge:    viper.GetDuration("fetch_max_age"),
		Sources:        viper.GetStringSlice("sources"),
	}
}

// Explicit reports whether key is set in the loaded config file or through
// its HASHCRACK_ environment variable. Defaults and flags do not count.
func Explicit(key string) bool {
	if viper.InConfig(key) {
		return true
	}
	_, ok := os.LookupEnv(envPrefix + "_" + strings.ToUpper(key))
	return ok
}

func defaultHistoryPath() string {
	if p, err := scope.DataPath("history.json"); err == nil {
		return p
	}
	return filepath.Join(localDataDir(), "history.json")
}

func defaultCachePath() string {
	if dir, err := scope.CacheDir(); err == nil {
		return filepath.Join(dir, "wordlists")
	}
	return filepath.Join(localDataDir(), "wordlists")
}

func localDataDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "data"
	}
	return filepath.Join(cwd, "data")
}
