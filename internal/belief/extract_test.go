package belief

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEventOdds(t *testing.T) {
	classes := map[string][]string{
		"spam": {"buy now", "buy cheap"},
		"ham":  {"meeting now"},
	}

	table := ExtractEventOdds(classes, nil, 0)
	require.Equal(t, 4, table.Len())

	assert.True(t, table.Has("buy"))
	assert.True(t, table.Has("now"))
	assert.False(t, table.Has("tomorrow"))

	odds := table.Odds("buy", []string{"ham", "spam"})
	assert.Equal(t, DefaultSmoothingFloor, odds[0])
	assert.Equal(t, 2.0, odds[1])

	odds = table.Odds("now", []string{"ham", "spam"})
	assert.Equal(t, []float64{1, 1}, odds)
}

func TestExtractEventOddsCustomExtractor(t *testing.T) {
	commas := func(instance string) []string {
		return strings.Split(instance, ",")
	}
	table := ExtractEventOdds(map[string][]string{
		"a": {"x,y"},
	}, commas, 0)

	assert.True(t, table.Has("x"))
	assert.True(t, table.Has("y"))
	assert.False(t, table.Has("x,y"))
}

func TestExtractEventOddsFloor(t *testing.T) {
	table := ExtractEventOdds(map[string][]string{
		"a": {"tok"},
		"b": {},
	}, nil, 0.5)

	odds := table.Odds("tok", []string{"a", "b"})
	assert.Equal(t, []float64{1, 0.5}, odds)

	// The floor must stay positive so absence of evidence never annihilates
	// a class on its own.
	for _, w := range odds {
		assert.Greater(t, w, 0.0)
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Words("  a \t b\nc "))
	assert.Empty(t, Words("   "))
}
