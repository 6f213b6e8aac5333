package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []string{"AsKsQsJsTs", "2h3d4c5s6h", "7s8s9sTsJs"}
	for _, s := range cases {
		cards, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, Format(cards))
	}
}

func TestParseTenAliases(t *testing.T) {
	byT, err := Parse("Ts")
	require.NoError(t, err)
	by10, err := Parse("10s")
	require.NoError(t, err)
	assert.Equal(t, byT, by10)
}

func TestParseUnknown(t *testing.T) {
	cards, err := Parse("??")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.True(t, cards[0].FullyUnknown())

	cards, err = Parse("A?")
	require.NoError(t, err)
	assert.True(t, cards[0].Rank.Known())
	assert.False(t, cards[0].Suit.Known())

	cards, err = Parse("?s")
	require.NoError(t, err)
	assert.False(t, cards[0].Rank.Known())
	assert.True(t, cards[0].Suit.Known())
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("Az")
	assert.Error(t, err)

	_, err = Parse("A")
	assert.Error(t, err)

	_, err = Parse("Zs")
	assert.Error(t, err)
}

func TestParseOne(t *testing.T) {
	c, err := ParseOne("As")
	require.NoError(t, err)
	assert.Equal(t, Card{Rank: Ace, Suit: Spades}, c)

	_, err = ParseOne("AsKs")
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	a := Card{Rank: Ace, Suit: Spades}
	b := Card{Rank: Ace, Suit: Spades}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(Unknown))
}
