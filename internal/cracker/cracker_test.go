package cracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/lth/hashcrack/internal/attacks"
	"github.com/lth/hashcrack/internal/digest"
	"github.com/lth/hashcrack/internal/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = WithLogger(log.New(io.Discard))

func newCracker(t *testing.T, password string, f digest.Family, opts ...Option) *Cracker {
	t.Helper()
	c, err := New(digest.Digest(password, f), digest.Auto, append([]Option{quiet}, opts...)...)
	require.NoError(t, err)
	return c
}

// recorder wraps the default digest and remembers every candidate.
type recorder struct {
	seen []string
}

func (r *recorder) digest(input string, f digest.Family) (string, error) {
	r.seen = append(r.seen, input)
	return digest.Default(input, f)
}

func fillerList(n int) []string {
	list := make([]string, n)
	for i := range list {
		list[i] = fmt.Sprintf("filler-%d", i)
	}
	return list
}

func TestNewTargetValidation(t *testing.T) {
	_, err := New("", digest.Auto, quiet)
	assert.ErrorIs(t, err, digest.ErrEmptyTarget)

	_, err = New("not-a-digest", digest.Auto, quiet)
	assert.ErrorIs(t, err, digest.ErrMalformedTarget)

	_, err = New(digest.Digest("x", digest.MD5), digest.SHA256, quiet)
	assert.ErrorIs(t, err, digest.ErrFamilyMismatch)

	c, err := New("ABCDEF12", digest.Auto, quiet)
	require.NoError(t, err)
	assert.Equal(t, digest.SHA256, c.Family())
	assert.True(t, c.Target().Guessed)
	assert.Equal(t, "abcdef12", c.Target().Hex)
}

func TestGeneratedWordlistFindsCommonPasswords(t *testing.T) {
	for _, password := range []string{"password", "admin"} {
		t.Run(password, func(t *testing.T) {
			c := newCracker(t, password, digest.SHA256)
			assert.Equal(t, digest.SHA256, c.Family())

			res, err := c.Start(context.Background(), AttackConfig{Mode: ModeWordlist, CostFactor: 4}, nil)
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, password, res.Password)
			assert.Equal(t, MethodWordlist, res.Method)
			assert.Equal(t, wordlist.Normal, res.Scale)
			assert.Positive(t, res.Candidates)
			assert.Positive(t, res.Attempts)
		})
	}
}

func TestWordlistEveryFamily(t *testing.T) {
	for _, f := range digest.Families() {
		t.Run(f.String(), func(t *testing.T) {
			c := newCracker(t, "s3cret", f)
			assert.Equal(t, f, c.Family())

			res := c.CrackWithWordlist(context.Background(), []string{"one", "two", "s3cret", "four"}, nil)
			assert.True(t, res.Found)
			assert.Equal(t, "s3cret", res.Password)
			assert.EqualValues(t, 3, res.Attempts)
			assert.Equal(t, 4, res.Candidates)
		})
	}
}

func TestWordlistTrimsCandidates(t *testing.T) {
	c := newCracker(t, "hunter2", digest.MD5)
	res := c.CrackWithWordlist(context.Background(), []string{"  hunter2\t"}, nil)
	assert.True(t, res.Found)
	assert.Equal(t, "hunter2", res.Password)
}

func TestVerifiedPasswordsComeFirst(t *testing.T) {
	verified := wordlist.NewVerifiedStore()
	verified.Seed("Zebra!Carrot#77")

	c := newCracker(t, "Zebra!Carrot#77", digest.SHA1)
	res, err := c.Start(context.Background(), AttackConfig{Mode: ModeWordlist, CostFactor: 4, Verified: verified}, nil)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.EqualValues(t, 1, res.Attempts)
}

func TestSampledLengthMiss(t *testing.T) {
	// 40 hex chars resolves to sha1; "zz" is outside the digit charset.
	c := newCracker(t, "zz", digest.SHA1)
	assert.Equal(t, digest.SHA1, c.Family())

	res, err := c.Start(context.Background(), AttackConfig{
		Mode:      ModeBruteForce,
		Charset:   attacks.CharsetDigits,
		MinLength: 20,
		MaxLength: 20,
	}, nil)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, attacks.SampleSize(10, 20), res.Attempts)
	assert.EqualValues(t, 1_000_000, res.Attempts)
}

func TestSampledLengthHit(t *testing.T) {
	cs := attacks.NewCharset("ab")
	want := attacks.SampleCandidate(cs, 9, 5)

	c := newCracker(t, want, digest.MD5)
	res := c.BruteForce(context.Background(), "ab", 9, 9, nil)
	assert.True(t, res.Found)
	assert.Equal(t, want, res.Password)
	assert.Equal(t, MethodBruteForceSampled, res.Method)
	assert.LessOrEqual(t, res.Attempts, uint64(6))
}

func TestBruteForceOrder(t *testing.T) {
	rec := &recorder{}
	c := newCracker(t, "zzz", digest.SHA256, WithDigestFunc(rec.digest))

	res := c.BruteForce(context.Background(), "ab", 1, 2, nil)
	assert.False(t, res.Found)
	assert.Equal(t, MethodBruteForce, res.Method)
	assert.Equal(t, []string{"a", "b", "aa", "ab", "ba", "bb"}, rec.seen)
	assert.EqualValues(t, 6, res.Attempts)
}

func TestBruteForceFinds(t *testing.T) {
	c := newCracker(t, "ba", digest.SHA512)
	res := c.BruteForce(context.Background(), "ab", 1, 3, nil)
	assert.True(t, res.Found)
	assert.Equal(t, "ba", res.Password)
	assert.Equal(t, MethodBruteForce, res.Method)
	assert.EqualValues(t, 5, res.Attempts)
}

func TestBruteForceDegenerateCharsets(t *testing.T) {
	rec := &recorder{}
	c := newCracker(t, "b", digest.MD5, WithDigestFunc(rec.digest))

	res := c.BruteForce(context.Background(), "", 1, 3, nil)
	assert.False(t, res.Found)
	assert.Zero(t, res.Attempts)
	assert.Empty(t, rec.seen)

	res = c.BruteForce(context.Background(), "a", 1, 3, nil)
	assert.False(t, res.Found)
	assert.Equal(t, []string{"a", "aa", "aaa"}, rec.seen)
}

func TestSmartPassMethods(t *testing.T) {
	tests := []struct {
		password string
		minLen   int
		maxLen   int
		charset  string
		method   string
		attempts uint64
	}{
		{"ab1", 3, 3, attacks.CharsetAll, "smart-pattern", 0},
		// all of the 3-char pattern pass, then 'A' with tail index 1+27*36
		{"Ab1", 3, 3, attacks.CharsetAll, "smart-capitalized", 46656 + 973 + 1},
		// second complex alphabet is lower+digits+symbols, '!' sits at 36
		{"a!", 2, 2, attacks.CharsetAll, "smart-complex", 0},
		// 36 + 26 + 62 + 65 + 81 heuristic candidates before the fallback
		{"é", 1, 1, "é", MethodBruteForce, 271},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			c := newCracker(t, tt.password, digest.SHA256)
			res, err := c.Start(context.Background(), AttackConfig{
				Mode:      ModeSmart,
				Charset:   tt.charset,
				MinLength: tt.minLen,
				MaxLength: tt.maxLen,
			}, nil)
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, tt.password, res.Password)
			assert.Equal(t, tt.method, res.Method)
			if tt.attempts > 0 {
				assert.Equal(t, tt.attempts, res.Attempts)
			}
		})
	}
}

func TestSmartProgressUsesPassPercent(t *testing.T) {
	c := newCracker(t, "Ab1", digest.MD5)

	var percents []float64
	res := c.SmartBruteForce(context.Background(), attacks.CharsetAll, 3, 3, ReporterFunc(func(p Progress) {
		percents = append(percents, p.Percent)
	}))
	require.True(t, res.Found)
	require.NotEmpty(t, percents)
	assert.Contains(t, percents, 50.0)
	assert.Contains(t, percents, 60.0)
	for _, p := range percents {
		assert.Contains(t, []float64{50, 60}, p)
	}
}

func TestAttemptsAreMonotonic(t *testing.T) {
	rec := &recorder{}
	c := newCracker(t, "zzzzz", digest.MD5, WithDigestFunc(rec.digest))

	var last uint64
	res := c.BruteForce(context.Background(), attacks.CharsetDigits, 1, 4, ReporterFunc(func(p Progress) {
		assert.Greater(t, p.Attempts, last)
		assert.GreaterOrEqual(t, p.Percent, 0.0)
		assert.LessOrEqual(t, p.Percent, 100.0)
		last = p.Attempts
	}))
	assert.False(t, res.Found)
	assert.EqualValues(t, 11110, res.Attempts)
	assert.Len(t, rec.seen, 11110)
	assert.Equal(t, res.Attempts, c.Attempts())
}

func TestWordlistProgressThrottle(t *testing.T) {
	list := fillerList(200_000)
	c := newCracker(t, "not-in-list", digest.MD5)

	var events []Progress
	res := c.CrackWithWordlist(context.Background(), list, ReporterFunc(func(p Progress) {
		events = append(events, p)
	}))
	assert.False(t, res.Found)
	assert.EqualValues(t, len(list), res.Attempts)

	require.NotEmpty(t, events)
	assert.LessOrEqual(t, len(events), len(list)/200+1)
	for i := 1; i < len(events); i++ {
		assert.GreaterOrEqual(t, events[i].Percent-events[i-1].Percent, progressStep-1e-9)
		assert.Zero(t, events[i].Attempts%wordlistProgressEvery)
	}
}

func TestAbortFromReporter(t *testing.T) {
	t.Run("wordlist", func(t *testing.T) {
		c := newCracker(t, "not-in-list", digest.MD5)
		var abortedAt uint64
		res := c.CrackWithWordlist(context.Background(), fillerList(50_000), ReporterFunc(func(p Progress) {
			if abortedAt == 0 {
				abortedAt = p.Attempts
				c.Abort()
			}
		}))
		assert.False(t, res.Found)
		assert.True(t, c.Aborted())
		assert.LessOrEqual(t, res.Attempts, abortedAt+wordlistYieldEvery)
	})

	t.Run("bruteforce", func(t *testing.T) {
		c := newCracker(t, "zzzzzzzz", digest.MD5)
		var abortedAt uint64
		res := c.BruteForce(context.Background(), attacks.CharsetDigits, 1, 8, ReporterFunc(func(p Progress) {
			if abortedAt == 0 {
				abortedAt = p.Attempts
				c.Abort()
			}
		}))
		assert.False(t, res.Found)
		assert.LessOrEqual(t, res.Attempts, abortedAt+bruteYieldEvery)
	})

	t.Run("smart", func(t *testing.T) {
		c := newCracker(t, "ZZZZZZZZ", digest.MD5)
		var abortedAt uint64
		res := c.SmartBruteForce(context.Background(), attacks.CharsetDigits, 8, 8, ReporterFunc(func(p Progress) {
			if abortedAt == 0 {
				abortedAt = p.Attempts
				c.Abort()
			}
		}))
		assert.False(t, res.Found)
		assert.Equal(t, MethodSmart, res.Method)
		assert.LessOrEqual(t, res.Attempts, abortedAt+bruteYieldEvery)
	})
}

func TestContextCancelStopsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newCracker(t, "zzzzzzzz", digest.MD5)
	res, err := c.Start(ctx, AttackConfig{Mode: ModeBruteForce, Charset: attacks.CharsetDigits, MinLength: 1, MaxLength: 8}, nil)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Zero(t, res.Attempts)
}

func TestAbortBeforeStartAndReset(t *testing.T) {
	c := newCracker(t, "ab", digest.SHA256)
	c.Abort()

	res, err := c.Start(context.Background(), AttackConfig{Mode: ModeBruteForce, Charset: "ab", MinLength: 1, MaxLength: 2}, nil)
	require.NoError(t, err)
	assert.False(t, res.Found)

	c.Reset()
	assert.False(t, c.Aborted())
	res, err = c.Start(context.Background(), AttackConfig{Mode: ModeBruteForce, Charset: "ab", MinLength: 1, MaxLength: 2}, nil)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "ab", res.Password)
}

func TestDigestErrorsSkipCandidate(t *testing.T) {
	errBroken := errors.New("broken")
	fn := func(input string, f digest.Family) (string, error) {
		if input == "bad" {
			return "", errBroken
		}
		return digest.Default(input, f)
	}

	c := newCracker(t, "good", digest.SHA1, WithDigestFunc(fn))
	res := c.CrackWithWordlist(context.Background(), []string{"bad", "bad", "good"}, nil)
	assert.True(t, res.Found)
	assert.Equal(t, "good", res.Password)
	assert.EqualValues(t, 3, res.Attempts)
}

func TestTryPassword(t *testing.T) {
	c := newCracker(t, "letmein", digest.SHA224)
	assert.False(t, c.TryPassword("nope"))
	assert.True(t, c.TryPassword("letmein"))
	assert.EqualValues(t, 2, c.Attempts())
}

func TestStartRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  AttackConfig
	}{
		{"unknown mode", AttackConfig{Mode: "rainbow"}},
		{"cost factor too low", AttackConfig{Mode: ModeWordlist, CostFactor: 3}},
		{"cost factor too high", AttackConfig{Mode: ModeWordlist, CostFactor: 21}},
		{"zero min length", AttackConfig{Mode: ModeBruteForce, Charset: "ab", MinLength: 0, MaxLength: 2}},
		{"max length too long", AttackConfig{Mode: ModeSmart, Charset: "ab", MinLength: 1, MaxLength: MaxLength + 1}},
		{"min above max", AttackConfig{Mode: ModeBruteForce, Charset: "ab", MinLength: 5, MaxLength: 4}},
	}

	c := newCracker(t, "x", digest.MD5)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Start(context.Background(), tt.cfg, nil)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestExplicitWordlistSkipsCostFactor(t *testing.T) {
	c := newCracker(t, "x", digest.MD5)
	res, err := c.Start(context.Background(), AttackConfig{Mode: ModeWordlist, Wordlist: []string{"x"}}, nil)
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"":            ModeWordlist,
		"Wordlist":    ModeWordlist,
		"brute-force": ModeBruteForce,
		"bruteforce":  ModeBruteForce,
		"smart":       ModeSmart,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("rainbow")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestStartRun(t *testing.T) {
	res, err := StartRun(context.Background(), digest.Digest("ab", digest.MD5), digest.Auto,
		AttackConfig{Mode: ModeBruteForce, Charset: "ab", MinLength: 1, MaxLength: 2}, nil, quiet)
	require.NoError(t, err)
	assert.True(t, res.Found)

	_, err = StartRun(context.Background(), "xyz", digest.Auto, AttackConfig{Mode: ModeWordlist}, nil, quiet)
	assert.ErrorIs(t, err, digest.ErrMalformedTarget)
}

func BenchmarkWordlist(b *testing.B) {
	list := fillerList(10_000)
	c, err := New(digest.Digest("missing", digest.SHA256), digest.Auto, quiet)
	require.NoError(b, err)

	b.ResetTimer()
	for range b.N {
		c.CrackWithWordlist(context.Background(), list, nil)
	}
}

func TestTruncateKeepsRunes(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 30))

	got := truncate(strings.Repeat("é", 40), 30)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("é", 27)+"...", got)
}
