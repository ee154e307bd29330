package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleSize(t *testing.T) {
	assert.Equal(t, uint64(MaxSamples), SampleSize(62, 9))
	assert.Equal(t, uint64(1_000_000), SampleSize(10, 20))
	assert.Equal(t, uint64(64), SampleSize(2, 12))
	assert.Equal(t, uint64(0), SampleSize(0, 12))
}

func TestSampleIsDeterministic(t *testing.T) {
	cs := NewCharset(CharsetDigits)

	var first, second []string
	for i, c := range Sample(cs, 20) {
		if i >= 50 {
			break
		}
		first = append(first, c)
	}
	for i, c := range Sample(cs, 20) {
		if i >= 50 {
			break
		}
		second = append(second, c)
	}

	assert.Equal(t, first, second)
	for _, c := range first {
		assert.Len(t, c, 20)
	}
}

func TestSampleCandidateFirstValue(t *testing.T) {
	// (0*1103515245 + 12345) % 10
	assert.Equal(t, "5", SampleCandidate(NewCharset(CharsetDigits), 1, 0))
}

func TestCandidatesSwitchesToSampling(t *testing.T) {
	cs := NewCharset("ab")

	_, total, sampled := Candidates(cs, ExhaustiveMaxLength)
	assert.False(t, sampled)
	assert.Equal(t, uint64(256), total)

	_, total, sampled = Candidates(cs, ExhaustiveMaxLength+1)
	assert.True(t, sampled)
	assert.Equal(t, uint64(64), total)
}
