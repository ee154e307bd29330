package cracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/lth/hashcrack/internal/attacks"
)

// CrackWithWordlist tries candidates in order. Each entry is trimmed before
// hashing.
func (c *Cracker) CrackWithWordlist(ctx context.Context, candidates []string, rep Reporter) Result {
	r := c.newRun(ctx, rep)
	total := float64(len(candidates))

	for i, raw := range candidates {
		if c.attempts.Load()%wordlistYieldEvery == 0 && r.stopped() {
			break
		}

		password := strings.TrimSpace(raw)
		if r.try(password) {
			res := r.found(password, MethodWordlist)
			res.Candidates = len(candidates)
			return res
		}

		if c.attempts.Load()%wordlistProgressEvery == 0 {
			r.emitThrottled(float64(i)/total*100, "Testing: "+truncate(password, 30), password)
		}
	}

	res := r.notFound(MethodWordlist)
	res.Candidates = len(candidates)
	return res
}

// BruteForce tries every string of each length from minLen to maxLen over
// charset. Lengths above attacks.ExhaustiveMaxLength are sampled, so a miss
// there does not rule the password out.
func (c *Cracker) BruteForce(ctx context.Context, charset string, minLen, maxLen int, rep Reporter) Result {
	r := c.newRun(ctx, rep)
	if password, method, ok := r.bruteForce(attacks.NewCharset(charset), minLen, maxLen); ok {
		return r.found(password, method)
	}
	return r.notFound(MethodBruteForce)
}

// SmartBruteForce runs the heuristic passes, then falls back to BruteForce
// with the same parameters. The attempt counter carries across stages.
func (c *Cracker) SmartBruteForce(ctx context.Context, charset string, minLen, maxLen int, rep Reporter) Result {
	r := c.newRun(ctx, rep)

	for _, pass := range attacks.SmartPasses(minLen, maxLen) {
		for candidate := range pass.Candidates {
			if c.attempts.Load()%bruteYieldEvery == 0 && r.stopped() {
				return r.notFound(MethodSmart)
			}
			if r.try(candidate) {
				return r.found(candidate, pass.Method)
			}
			if c.attempts.Load()%bruteProgressEvery == 0 {
				r.emit(pass.Percent, pass.Method+": "+candidate, candidate)
			}
		}
		c.logger.Debug("Smart pass exhausted", "pass", pass.Method, "attempts", c.attempts.Load())
	}

	if r.stopped() {
		return r.notFound(MethodSmart)
	}
	if password, method, ok := r.bruteForce(attacks.NewCharset(charset), minLen, maxLen); ok {
		return r.found(password, method)
	}
	return r.notFound(MethodBruteForce)
}

func (r *run) bruteForce(cs attacks.Charset, minLen, maxLen int) (string, string, bool) {
	for length := minLen; length <= maxLen; length++ {
		if r.stopped() {
			return "", "", false
		}

		seq, total, sampled := attacks.Candidates(cs, length)
		method := MethodBruteForce
		if sampled {
			method = MethodBruteForceSampled
			r.c.logger.Debug("Sampling keyspace", "length", length, "samples", total)
		}

		for i, candidate := range seq {
			if r.c.attempts.Load()%bruteYieldEvery == 0 && r.stopped() {
				return "", "", false
			}
			if r.try(candidate) {
				return candidate, method, true
			}
			if r.c.attempts.Load()%bruteProgressEvery != 0 {
				continue
			}
			if sampled {
				r.emitThrottled(float64(i)/float64(total)*100,
					fmt.Sprintf("Sampling length %d: %s", length, truncate(candidate, 20)), candidate)
			} else {
				lengthShare := 100 / float64(maxLen)
				percent := float64(length-1)*lengthShare + float64(i)/float64(total)*lengthShare
				r.emitThrottled(percent, fmt.Sprintf("Length %d: %s", length, candidate), candidate)
			}
		}
	}
	return "", "", false
}

// truncate shortens s to at most limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
