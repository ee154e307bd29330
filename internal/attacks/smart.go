package attacks

import "iter"

// Smart pass limits.
const (
	patternMaxLength     = 12
	patternCap           = 100_000
	capitalizedMaxLength = 12
	capitalizedCap       = 50_000
	complexMaxLength     = 10
	complexCap           = 50_000
)

// Pass is one heuristic stage of the smart attack.
type Pass struct {
	Method string
	// Percent is the fixed progress value reported while the pass runs.
	Percent    float64
	Candidates iter.Seq[string]
}

// SmartPasses returns the heuristic passes tried, in order, before a plain
// brute force over the caller's charset.
func SmartPasses(minLen, maxLen int) []Pass {
	return []Pass{
		{Method: "smart-pattern", Percent: 50, Candidates: PatternCandidates(minLen, maxLen)},
		{Method: "smart-capitalized", Percent: 60, Candidates: CapitalizedCandidates(minLen, maxLen)},
		{Method: "smart-complex", Percent: 70, Candidates: ComplexCandidates(minLen, maxLen)},
	}
}

// PatternCandidates enumerates lowercase+digit strings, at most patternCap
// per length, for lengths up to 12.
func PatternCandidates(minLen, maxLen int) iter.Seq[string] {
	cs := NewCharset(CharsetLowerNum)
	return func(yield func(string) bool) {
		for length := max(minLen, 1); length <= min(maxLen, patternMaxLength); length++ {
			for _, c := range EnumerateN(cs, length, patternCap) {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// CapitalizedCandidates puts each uppercase letter in front of lowercase+digit
// tails. Tails are built least significant character first, so the second
// character varies fastest.
func CapitalizedCandidates(minLen, maxLen int) iter.Seq[string] {
	upper := NewCharset(CharsetUpper)
	rest := NewCharset(CharsetLowerNum)
	base := uint64(len(rest))

	return func(yield func(string) bool) {
		for length := max(minLen, 1); length <= min(maxLen, capitalizedMaxLength); length++ {
			total, _ := Combinations(len(rest), length-1)
			limit := min(total, capitalizedCap)
			buf := make([]rune, length)

			for _, first := range upper {
				buf[0] = first
				for j := uint64(0); j < limit; j++ {
					remaining := j
					for k := 1; k < length; k++ {
						buf[k] = rest[remaining%base]
						remaining /= base
					}
					if !yield(string(buf)) {
						return
					}
				}
			}
		}
	}
}

// ComplexCandidates cycles three mixed-case and symbol alphabets, at most
// complexCap per alphabet per length, for lengths up to 10.
func ComplexCandidates(minLen, maxLen int) iter.Seq[string] {
	charsets := []Charset{
		NewCharset(CharsetLower + CharsetUpper + CharsetDigits),
		NewCharset(CharsetLower + CharsetDigits + CharsetSymbols),
		NewCharset(CharsetUpper + CharsetLower + CharsetSymbols),
	}

	return func(yield func(string) bool) {
		for length := max(minLen, 1); length <= min(maxLen, complexMaxLength); length++ {
			for _, cs := range charsets {
				total, _ := Combinations(len(cs), min(length, 6))
				for _, c := range EnumerateN(cs, length, min(total, complexCap)) {
					if !yield(c) {
						return
					}
				}
			}
		}
	}
}
