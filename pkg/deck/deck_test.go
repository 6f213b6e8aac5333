package deck

import (
	"math/rand"
	"testing"

	"github.com/lox/pokerkit/pkg/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandard52Unique(t *testing.T) {
	cards := Standard52()
	require.Len(t, cards, 52)
	seen := map[card.Card]bool{}
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
}

func TestShortDeck36ExcludesLowCards(t *testing.T) {
	cards := ShortDeck36()
	require.Len(t, cards, 36)
	for _, c := range cards {
		assert.GreaterOrEqual(t, int(c.Rank), int(card.Six))
	}
}

func TestDeterministicShuffle(t *testing.T) {
	d1 := NewStandard(RandSource(rand.New(rand.NewSource(42))))
	d2 := NewStandard(RandSource(rand.New(rand.NewSource(42))))
	assert.Equal(t, d1.Cards(), d2.Cards())
}

func TestDrawRemovesFromFront(t *testing.T) {
	d := New(Standard52(), nil)
	top := d.Cards()[:3]
	drawn, err := d.Draw(3)
	require.NoError(t, err)
	assert.Equal(t, top, drawn)
	assert.Equal(t, 49, d.Len())
}

func TestDrawExhausted(t *testing.T) {
	d := New(Standard52(), nil)
	_, err := d.Draw(53)
	assert.Error(t, err)
	assert.Equal(t, 52, d.Len())
}

func TestPushBackAndReshuffle(t *testing.T) {
	d := New(nil, nil)
	assert.Equal(t, 0, d.Len())
	d.PushBack(card.Card{Rank: card.Ace, Suit: card.Spades})
	assert.Equal(t, 1, d.Len())

	d.Reshuffle(Standard52(), nil)
	assert.Equal(t, 52, d.Len())
}

func TestRemove(t *testing.T) {
	d := New(Standard52(), nil)
	c := card.Card{Rank: card.Ace, Suit: card.Spades}
	require.NoError(t, d.Remove(c))
	assert.False(t, d.Contains(c))
	assert.Equal(t, 51, d.Len())

	err := d.Remove(c)
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	d := New(Standard52(), nil)
	clone := d.Clone()
	_, _ = clone.Draw(5)
	assert.Equal(t, 52, d.Len())
	assert.Equal(t, 47, clone.Len())
}
