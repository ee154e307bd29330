package attacks

import "iter"

// MaxSamples caps the number of sampled candidates per length.
const MaxSamples = 1_000_000

// SampleSize is min(MaxSamples, n^min(length, 6)).
func SampleSize(n, length int) uint64 {
	total, _ := Combinations(n, min(length, 6))
	return min(total, MaxSamples)
}

// SampleCandidate derives a pseudo-random string of the given length from
// sample index seed using a linear congruential step per position. An empty
// charset yields "".
func SampleCandidate(cs Charset, length int, seed uint64) string {
	if len(cs) == 0 || length <= 0 {
		return ""
	}
	out := make([]rune, length)
	n := uint64(len(cs))
	for pos := range out {
		seed = (seed*1103515245 + 12345) & 0x7fffffff
		out[pos] = cs[seed%n]
	}
	return string(out)
}

// Sample yields SampleSize candidates for the given length. The sequence is
// deterministic but covers only a sliver of the keyspace for long lengths.
func Sample(cs Charset, length int) iter.Seq2[uint64, string] {
	return func(yield func(uint64, string) bool) {
		if len(cs) == 0 || length <= 0 {
			return
		}
		size := SampleSize(len(cs), length)
		for i := uint64(0); i < size; i++ {
			if !yield(i, SampleCandidate(cs, length, i)) {
				return
			}
		}
	}
}

// Candidates picks Enumerate or Sample for the length and reports the
// number of candidates it will produce.
func Candidates(cs Charset, length int) (seq iter.Seq2[uint64, string], total uint64, sampled bool) {
	if length > ExhaustiveMaxLength {
		return Sample(cs, length), SampleSize(len(cs), length), true
	}
	total, _ = Combinations(len(cs), length)
	return Enumerate(cs, length), total, false
}
