// Package display formats run information for the command line.
package display

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lth/hashcrack/internal/cracker"
	"github.com/lth/hashcrack/internal/digest"
	"github.com/lth/hashcrack/internal/fetch"
	"github.com/lth/hashcrack/internal/history"
	"github.com/lth/hashcrack/internal/shared"
)

// Startup logs the banner line.
func Startup(version string) {
	shared.Logger.Info("Starting hashcrack", "version", version)
}

// Target logs the resolved target before a run.
func Target(t digest.Target) {
	shared.Logger.Info("Target", "family", t.Family, "digest", t.Hex, "guessed", t.Guessed)
}

// Attack logs the attack parameters.
func Attack(cfg cracker.AttackConfig) {
	switch cfg.Mode {
	case cracker.ModeWordlist:
		shared.Logger.Info("Wordlist attack", "cost_factor", cfg.CostFactor, "ultra", cfg.Ultra, "mega", cfg.Mega,
			"external", humanize.Comma(int64(len(cfg.External))))
	default:
		shared.Logger.Info("Brute-force attack", "mode", cfg.Mode, "charset_size", len([]rune(cfg.Charset)),
			"min_length", cfg.MinLength, "max_length", cfg.MaxLength)
	}
}

// Result logs the outcome of a run.
func Result(res cracker.Result) {
	rate := FormatRate(Rate(res.Attempts, res.Duration))
	if res.Found {
		shared.Logger.Info("Password found", "password", res.Password, "method", res.Method,
			"attempts", humanize.Comma(int64(res.Attempts)), "time", FormatDuration(res.Duration), "rate", rate)
		return
	}
	shared.Logger.Warn("Password not found", "method", res.Method,
		"attempts", humanize.Comma(int64(res.Attempts)), "time", FormatDuration(res.Duration), "rate", rate)
}

// FetchStatus logs the final state of one source.
func FetchStatus(st fetch.Status) {
	switch st.State {
	case fetch.StateError:
		shared.Logger.Warn("Source failed", "source", st.Source, "error", st.Err)
	case fetch.StateSuccess, fetch.StateCached:
		shared.Logger.Info("Source loaded", "source", st.Source, "passwords", humanize.Comma(int64(st.Passwords)),
			"cached", st.State == fetch.StateCached)
	default:
		shared.Logger.Debug("Source", "source", st.Source, "state", st.State)
	}
}

// Record logs one history entry.
func Record(r history.Record) {
	shared.Logger.Info("Run",
		"when", humanize.Time(r.Timestamp),
		"family", r.Family,
		"mode", r.Mode,
		"success", r.Success,
		"password", r.Password,
		"attempts", humanize.Comma(int64(r.Attempts)),
		"time", FormatDuration(time.Duration(r.TimeTaken)),
	)
}

// Stats logs the history summary.
func Stats(st history.Stats) {
	shared.Logger.Info("History",
		"runs", st.TotalRuns,
		"successes", st.Successes,
		"success_rate", fmt.Sprintf("%.1f%%", st.SuccessRate()),
		"passwords_tested", humanize.Comma(int64(st.TotalAttempts)),
		"most_used", st.MostUsedMethod,
		"average_time", FormatDuration(st.AverageTime),
	)
}

// Benchmark logs the measured digest rate for a family.
func Benchmark(f digest.Family, attempts uint64, elapsed time.Duration) {
	shared.Logger.Info("Benchmark result", "family", f,
		"digests", humanize.Comma(int64(attempts)), "speed", FormatRate(Rate(attempts, elapsed)))
}

// Rate is attempts per second.
func Rate(attempts uint64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(attempts) / d.Seconds()
}

// FormatRate renders a rate with an SI prefix, e.g. "1.2 MH/s".
func FormatRate(rate float64) string {
	return humanize.SIWithDigits(rate, 1, "H/s")
}

func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
