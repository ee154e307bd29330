package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue(t *testing.T) {
	sources := Catalogue()
	require.NotEmpty(t, sources)

	slugs := make(map[string]bool)
	for _, s := range sources {
		assert.NotEmpty(t, s.Name)
		assert.Contains(t, s.URL, "https://")
		assert.Equal(t, TypeText, s.Type)
		assert.Positive(t, s.EstimatedSize)
		assert.False(t, slugs[s.Slug()], "duplicate slug %s", s.Slug())
		slugs[s.Slug()] = true
	}

	sources[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Catalogue()[0].Name)
}

func TestSelect(t *testing.T) {
	sources := Catalogue()

	enabled, err := Select(sources, nil)
	require.NoError(t, err)
	assert.Equal(t, Enabled(sources), enabled)
	for _, s := range enabled {
		assert.True(t, s.Enabled)
		assert.Less(t, s.EstimatedSize, 1_000_000)
	}

	target := sources[1]
	require.False(t, target.Enabled)
	picked, err := Select(sources, []string{"  " + target.Name + " ", sources[3].Slug()})
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, target.URL, picked[0].URL)
	assert.Equal(t, sources[3].URL, picked[1].URL)

	_, err = Select(sources, []string{"nope"})
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestEstimatedTotal(t *testing.T) {
	assert.Zero(t, EstimatedTotal(nil))
	assert.Equal(t, 30, EstimatedTotal([]Source{{EstimatedSize: 10}, {EstimatedSize: 20}}))
}
