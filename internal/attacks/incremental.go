package attacks

import (
	"iter"
	"math"
	"math/bits"
)

// ExhaustiveMaxLength is the longest length enumerated in full. Longer
// lengths are sampled.
const ExhaustiveMaxLength = 8

// Combinations returns n^length. When the product does not fit in a uint64
// it returns math.MaxUint64 and saturated is true.
func Combinations(n, length int) (total uint64, saturated bool) {
	if length <= 0 {
		return 1, false
	}
	if n <= 0 {
		return 0, false
	}
	total = 1
	for range length {
		hi, lo := bits.Mul64(total, uint64(n))
		if hi != 0 {
			return math.MaxUint64, true
		}
		total = lo
	}
	return total, false
}

// EstimateCombinations sums Combinations over minLen..maxLen, saturating.
func EstimateCombinations(cs Charset, minLen, maxLen int) uint64 {
	var total uint64
	for length := minLen; length <= maxLen; length++ {
		n, sat := Combinations(cs.Len(), length)
		sum, carry := bits.Add64(total, n, 0)
		if sat || carry != 0 {
			return math.MaxUint64
		}
		total = sum
	}
	return total
}

// IndexToCandidate maps i to the i-th string of the given length in
// lexicographic charset order. The most significant character is leftmost.
// An empty charset maps every index to "".
func IndexToCandidate(cs Charset, length int, i uint64) string {
	if len(cs) == 0 || length <= 0 {
		return ""
	}
	out := make([]rune, length)
	base := uint64(len(cs))
	for pos := length - 1; pos >= 0; pos-- {
		out[pos] = cs[i%base]
		i /= base
	}
	return string(out)
}

// Enumerate yields every string of the given length with its index, in
// lexicographic order. An empty charset yields nothing.
func Enumerate(cs Charset, length int) iter.Seq2[uint64, string] {
	return EnumerateN(cs, length, math.MaxUint64)
}

// EnumerateN is Enumerate stopped after limit candidates.
func EnumerateN(cs Charset, length int, limit uint64) iter.Seq2[uint64, string] {
	return func(yield func(uint64, string) bool) {
		if len(cs) == 0 || length <= 0 {
			return
		}
		total, _ := Combinations(len(cs), length)
		total = min(total, limit)
		for i := uint64(0); i < total; i++ {
			if !yield(i, IndexToCandidate(cs, length, i)) {
				return
			}
		}
	}
}
