package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoLimitTexasHoldemDeckIs52(t *testing.T) {
	v := NoLimitTexasHoldem()
	assert.Len(t, v.BuildDeck(), 52)
	assert.False(t, v.HighLow())
	assert.Len(t, v.Streets, 4)
}

func TestFixedLimitTexasHoldemCapsRaises(t *testing.T) {
	v := FixedLimitTexasHoldem()
	for _, st := range v.Streets {
		require.NotNil(t, st.MaxRaiseCount)
		assert.Equal(t, 4, *st.MaxRaiseCount)
	}
}

func TestNoLimitShortDeckHoldemDeckIs36(t *testing.T) {
	v := NoLimitShortDeckHoldem()
	assert.Len(t, v.BuildDeck(), 36)
}

func TestRoyalHoldemDeckIs20(t *testing.T) {
	v := RoyalHoldem()
	assert.Len(t, v.BuildDeck(), 20)
}

func TestPotLimitOmahaHiLoHasTwoFamilies(t *testing.T) {
	v := PotLimitOmahaHiLo()
	assert.True(t, v.HighLow())
	assert.Equal(t, "standard", v.HandFamilies[0].Family.Name)
	assert.Equal(t, "eight_or_better", v.HandFamilies[1].Family.Name)
}

func TestCourchevelSplitsTheFlopAcrossTwoStreets(t *testing.T) {
	v := Courchevel()
	assert.Equal(t, 1, v.Streets[0].BoardDealingCount)
	assert.Equal(t, 2, v.Streets[1].BoardDealingCount)
	total := 0
	for _, st := range v.Streets {
		total += st.BoardDealingCount
	}
	assert.Equal(t, 5, total)
}

func TestFixedLimitSevenCardStudBringInOpensLowCard(t *testing.T) {
	v := FixedLimitSevenCardStud()
	assert.Equal(t, OpeningLowCard, v.Streets[0].OpeningRule)
	assert.True(t, v.StudLike)
}

func TestFixedLimitRazzBringInOpensHighCard(t *testing.T) {
	v := FixedLimitRazz()
	assert.Equal(t, OpeningHighCard, v.Streets[0].OpeningRule)
	assert.Equal(t, "regular_ace_low", v.HandFamilies[0].Family.Name)
}

func TestDeuceToSevenTripleDrawHasThreeDraws(t *testing.T) {
	v := FixedLimitDeuceToSevenTripleDraw()
	draws := 0
	for _, st := range v.Streets {
		if st.DrawStatus {
			draws++
		}
	}
	assert.Equal(t, 3, draws)
}

func TestKuhnDealsFromThreeCardDeck(t *testing.T) {
	v := Kuhn()
	assert.Len(t, v.BuildDeck(), 3)
}
