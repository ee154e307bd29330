// Package cracker searches for the plaintext of a digest. A Cracker owns one
// target and one cancellation token; runs on the same Cracker must not
// overlap.
package cracker

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lth/hashcrack/internal/digest"
	"github.com/lth/hashcrack/internal/shared"
	"github.com/lth/hashcrack/internal/wordlist"
)

// Method names recorded in Result.
const (
	MethodWordlist          = "wordlist"
	MethodBruteForce        = "brute-force"
	MethodBruteForceSampled = "brute-force-sampled"
	MethodSmart             = "smart"
)

// Checkpoint cadences, in attempts.
const (
	wordlistYieldEvery    = 1000
	wordlistProgressEvery = 100
	bruteYieldEvery       = 5000
	bruteProgressEvery    = 1000

	// minimum change in percent between two throttled progress events
	progressStep = 0.1
)

type Result struct {
	Found    bool
	Password string
	Attempts uint64
	Duration time.Duration
	Method   string

	// Wordlist runs only.
	Candidates int
	Scale      wordlist.Scale
}

// Progress is a live status event. It is never persisted.
type Progress struct {
	Percent     float64
	Attempts    uint64
	Message     string
	Current     string
	Rate        float64
	ElapsedTime time.Duration
}

// Reporter receives progress events from a run.
type Reporter interface {
	Report(Progress)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Progress)

func (f ReporterFunc) Report(p Progress) { f(p) }

type token struct {
	aborted atomic.Bool
}

type Cracker struct {
	target   digest.Target
	digestFn digest.Func
	logger   *log.Logger

	token        atomic.Pointer[token]
	attempts     atomic.Uint64
	lastProgress float64

	mu        sync.Mutex
	cancelRun context.CancelFunc
}

type Option func(*Cracker)

// WithDigestFunc replaces the digest primitive.
func WithDigestFunc(fn digest.Func) Option {
	return func(c *Cracker) { c.digestFn = fn }
}

func WithLogger(l *log.Logger) Option {
	return func(c *Cracker) { c.logger = l }
}

// New validates and normalizes rawTarget. With digest.Auto the family
// follows the digest length, and lengths matching no family fall back to
// SHA256 with a warning.
func New(rawTarget string, family digest.Family, opts ...Option) (*Cracker, error) {
	target, err := digest.ParseTarget(rawTarget, family)
	if err != nil {
		return nil, err
	}

	c := &Cracker{
		target:   target,
		digestFn: digest.Default,
		logger:   shared.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.token.Store(&token{})

	if target.Guessed {
		c.logger.Warn("Digest length matches no known family, assuming sha256", "length", len(target.Hex))
	}
	return c, nil
}

func (c *Cracker) Target() digest.Target { return c.target }

func (c *Cracker) Family() digest.Family { return c.target.Family }

// Attempts returns the attempt counter of the current or last run.
func (c *Cracker) Attempts() uint64 {
	return c.attempts.Load()
}

// Abort raises the cancellation token. The running strategy stops at its
// next checkpoint and returns a not-found result. Abort is terminal for the
// run; call Reset before starting another.
func (c *Cracker) Abort() {
	c.token.Load().aborted.Store(true)

	c.mu.Lock()
	cancel := c.cancelRun
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Aborted reports whether the current token has been raised.
func (c *Cracker) Aborted() bool {
	return c.token.Load().aborted.Load()
}

// Reset issues a fresh token and clears progress bookkeeping.
func (c *Cracker) Reset() {
	c.token.Store(&token{})
	c.lastProgress = 0
}

// TryPassword digests one candidate outside of any run.
func (c *Cracker) TryPassword(password string) bool {
	c.attempts.Add(1)
	sum, err := c.digestFn(password, c.target.Family)
	return err == nil && c.target.Matches(sum)
}

// Start validates cfg and runs the selected strategy. Only configuration
// errors and wordlist generation failures are returned as errors;
// exhaustion and cancellation produce a not-found Result.
func (c *Cracker) Start(ctx context.Context, cfg AttackConfig, rep Reporter) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.mu.Lock()
	c.cancelRun = cancel
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.cancelRun = nil
		c.mu.Unlock()
	}()

	if c.Aborted() {
		cancel()
	}

	c.logger.Info("Starting attack", "mode", cfg.Mode, "family", c.target.Family)

	switch cfg.Mode {
	case ModeBruteForce:
		return c.BruteForce(ctx, cfg.Charset, cfg.MinLength, cfg.MaxLength, rep), nil
	case ModeSmart:
		return c.SmartBruteForce(ctx, cfg.Charset, cfg.MinLength, cfg.MaxLength, rep), nil
	default:
		return c.startWordlist(ctx, cfg, rep)
	}
}

func (c *Cracker) startWordlist(ctx context.Context, cfg AttackConfig, rep Reporter) (Result, error) {
	candidates, scale := cfg.Wordlist, wordlist.Normal
	if candidates == nil {
		start := time.Now()
		built, err := wordlist.Build(ctx, wordlist.Request{
			CostFactor: cfg.CostFactor,
			Ultra:      cfg.Ultra,
			Mega:       cfg.Mega,
			Verified:   cfg.Verified,
			External:   cfg.External,
			Logger:     c.logger,
			OnLog:      func(msg string) { c.logger.Debug(msg) },
		})
		if err != nil {
			if ctx.Err() != nil {
				return Result{Method: MethodWordlist, Duration: time.Since(start)}, nil
			}
			return Result{}, err
		}
		candidates, scale = built.Candidates, built.Scale
	}

	res := c.CrackWithWordlist(ctx, candidates, rep)
	res.Scale = scale
	return res, nil
}

// StartRun builds a Cracker for target and runs cfg against it.
func StartRun(ctx context.Context, target string, family digest.Family, cfg AttackConfig, rep Reporter, opts ...Option) (Result, error) {
	c, err := New(target, family, opts...)
	if err != nil {
		return Result{}, err
	}
	return c.Start(ctx, cfg, rep)
}

// run is the per-invocation state shared by the strategies.
type run struct {
	c        *Cracker
	ctx      context.Context
	tok      *token
	reporter Reporter
	start    time.Time
	halted   bool
	warned   bool
}

func (c *Cracker) newRun(ctx context.Context, rep Reporter) *run {
	c.attempts.Store(0)
	return &run{
		c:        c,
		ctx:      ctx,
		tok:      c.token.Load(),
		reporter: rep,
		start:    time.Now(),
	}
}

// try digests one candidate and counts the attempt. Digest errors skip the
// candidate.
func (r *run) try(candidate string) bool {
	r.c.attempts.Add(1)
	sum, err := r.c.digestFn(candidate, r.c.target.Family)
	if err != nil {
		if !r.warned {
			r.c.logger.Warn("Digest failed, skipping candidate", "error", err)
			r.warned = true
		} else {
			r.c.logger.Debug("Digest failed, skipping candidate", "error", err)
		}
		return false
	}
	return r.c.target.Matches(sum)
}

// stopped is the cancellation checkpoint.
func (r *run) stopped() bool {
	if r.halted {
		return true
	}
	if r.tok.aborted.Load() || r.ctx.Err() != nil {
		r.halted = true
		r.c.logger.Debug("Run cancelled", "attempts", r.c.attempts.Load())
	}
	return r.halted
}

func (r *run) emit(percent float64, msg, current string) {
	if r.reporter == nil {
		return
	}
	attempts := r.c.attempts.Load()
	elapsed := time.Since(r.start)
	rate := 0.0
	if s := elapsed.Seconds(); s > 0 {
		rate = float64(attempts) / s
	}
	r.reporter.Report(Progress{
		Percent:     percent,
		Attempts:    attempts,
		Message:     msg,
		Current:     current,
		Rate:        rate,
		ElapsedTime: elapsed,
	})
}

// emitThrottled reports only when percent moved by at least progressStep.
func (r *run) emitThrottled(percent float64, msg, current string) {
	if math.Abs(percent-r.c.lastProgress) < progressStep {
		return
	}
	r.c.lastProgress = percent
	r.emit(percent, msg, current)
}

func (r *run) found(password, method string) Result {
	res := Result{
		Found:    true,
		Password: password,
		Attempts: r.c.attempts.Load(),
		Duration: time.Since(r.start),
		Method:   method,
	}
	r.c.logger.Info("Password found", "method", method, "attempts", res.Attempts, "duration", res.Duration)
	return res
}

func (r *run) notFound(method string) Result {
	return Result{
		Attempts: r.c.attempts.Load(),
		Duration: time.Since(r.start),
		Method:   method,
	}
}
