package hand

import (
	"testing"

	"github.com/lox/pokerkit/pkg/card"
	"github.com/lox/pokerkit/pkg/handrank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) []card.Card {
	t.Helper()
	cs, err := card.Parse(s)
	require.NoError(t, err)
	return cs
}

func TestFromCardsRejectsWrongCount(t *testing.T) {
	_, err := FromCards(handrank.StandardHigh(), mustParse(t, "AsKsQsJs"))
	assert.Error(t, err)
}

func TestFromCardsRejectsUnknownCard(t *testing.T) {
	cards := mustParse(t, "AsKsQsJs9s")
	cards[0] = card.Unknown
	_, err := FromCards(handrank.StandardHigh(), cards)
	assert.Error(t, err)
}

func TestFromCardsPermutationIndependence(t *testing.T) {
	a, err := FromCards(handrank.StandardHigh(), mustParse(t, "AsKsQsJsTs"))
	require.NoError(t, err)
	b, err := FromCards(handrank.StandardHigh(), mustParse(t, "TsJsQsKsAs"))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestFromGameBestOfHoldem(t *testing.T) {
	hole := mustParse(t, "AsAh")
	board := mustParse(t, "AdAc2s3h4d")
	h, ok, err := FromGame(handrank.StandardHigh(), hole, board, BestOf)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Less(t, h.Rank(), 200) // four aces is among the strongest standard hands
}

func TestFromGameOmahaRequiresTwoHole(t *testing.T) {
	hole := mustParse(t, "AsKsQsJs")
	board := mustParse(t, "2h3h4h5h6h")
	h, ok, err := FromGame(handrank.StandardHigh(), hole, board, Omaha)
	require.NoError(t, err)
	require.True(t, ok)
	// Best omaha hand here can only use 2 hole cards, so it cannot be the
	// pure board flush/straight.
	fromHole := 0
	for _, c := range h.Cards {
		for _, hc := range hole {
			if c.Equal(hc) {
				fromHole++
			}
		}
	}
	assert.Equal(t, 2, fromHole)
	assert.Len(t, h.Cards, 5)
}

func TestFromGameEightOrBetterNoQualify(t *testing.T) {
	hole := mustParse(t, "AsKs")
	board := mustParse(t, "QsJsTs9s8s")
	_, ok, err := FromGame(handrank.EightOrBetterLow(), hole, board, BestOf)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFromGameBadugiHoleOnly(t *testing.T) {
	hole := mustParse(t, "Ah2d3c4s")
	h, ok, err := FromGame(handrank.Badugi(), hole, nil, HoleOnly)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, h.Cards, 4)
}

func TestFromGameBadugiFallsBackToThree(t *testing.T) {
	hole := mustParse(t, "Ah2d3c3s")
	h, ok, err := FromGame(handrank.Badugi(), hole, nil, HoleOnly)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, h.Cards, 3)
}

func TestLessAndStrongerAgree(t *testing.T) {
	strong, err := FromCards(handrank.StandardHigh(), mustParse(t, "AsKsQsJsTs"))
	require.NoError(t, err)
	weak, err := FromCards(handrank.StandardHigh(), mustParse(t, "7h5d4c3s2h"))
	require.NoError(t, err)
	assert.True(t, strong.Stronger(weak))
	assert.False(t, weak.Stronger(strong))
}
