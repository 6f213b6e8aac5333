package handrank

import (
	"testing"

	"github.com/lox/pokerkit/pkg/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) []card.Card {
	t.Helper()
	cs, err := card.Parse(s)
	require.NoError(t, err)
	return cs
}

func TestStandardHighRoyalFlushIsRankZero(t *testing.T) {
	f := StandardHigh()
	cards := mustParse(t, "AsKsQsJsTs")
	fp := FingerprintOf(cards, 1)
	rank, ok := f.Table.Lookup(fp)
	require.True(t, ok)
	assert.Equal(t, 0, rank)
}

func TestStandardHighDenseRange(t *testing.T) {
	f := StandardHigh()
	assert.Equal(t, 7462, f.Table.N())
}

func TestStandardHighWorstIsSevenFiveHighNoPair(t *testing.T) {
	f := StandardHigh()
	cards := mustParse(t, "7h5d4c3s2h")
	fp := FingerprintOf(cards, 0)
	rank, ok := f.Table.Lookup(fp)
	require.True(t, ok)
	assert.Equal(t, f.Table.N()-1, rank)
}

func TestStandardHighPermutationInvariant(t *testing.T) {
	f := StandardHigh()
	a := mustParse(t, "AsKsQsJsTs")
	b := mustParse(t, "TsJsQsKsAs")
	ra, _ := f.Table.Lookup(FingerprintOf(a, 1))
	rb, _ := f.Table.Lookup(FingerprintOf(b, 1))
	assert.Equal(t, ra, rb)
}

func TestFlushBeatsStraightInStandard(t *testing.T) {
	f := StandardHigh()
	flush := mustParse(t, "2s5s7s9sJs")
	straight := mustParse(t, "2h3d4c5s6h")
	rf, ok := f.Table.Lookup(FingerprintOf(flush, 1))
	require.True(t, ok)
	rs, ok := f.Table.Lookup(FingerprintOf(straight, 0))
	require.True(t, ok)
	assert.Less(t, rf, rs)
}

func TestShortDeckFlushBeatsFullHouse(t *testing.T) {
	f := ShortDeck()
	flush := mustParse(t, "6s8sTsQsAs")
	fullHouse := mustParse(t, "6h6d6c8s8h")
	rf, ok := f.Table.Lookup(FingerprintOf(flush, 1))
	require.True(t, ok)
	rh, ok := f.Table.Lookup(FingerprintOf(fullHouse, 0))
	require.True(t, ok)
	assert.Less(t, rf, rh)
}

func TestShortDeckWheelUsesNineHigh(t *testing.T) {
	f := ShortDeck()
	wheel := mustParse(t, "Ah6s7d8c9h")
	higher := mustParse(t, "6s7h8d9cTh")
	rw, ok := f.Table.Lookup(FingerprintOf(wheel, 0))
	require.True(t, ok)
	rh, ok := f.Table.Lookup(FingerprintOf(higher, 0))
	require.True(t, ok)
	assert.Greater(t, rw, rh, "wheel should be weaker than six-high-through-ten straight")
}

func TestEightOrBetterQualifier(t *testing.T) {
	assert.True(t, EightOrBetterQualifies(mustParse(t, "Ah2d3c4s5h")))
	assert.False(t, EightOrBetterQualifies(mustParse(t, "Ah2d3c4s9h")))
	assert.False(t, EightOrBetterQualifies(mustParse(t, "Ah2d3c4s4h")))
}

func TestEightOrBetterBestIsWheel(t *testing.T) {
	f := EightOrBetterLow()
	best := mustParse(t, "Ah2d3c4s5h")
	rank, ok := f.Table.Lookup(FingerprintOf(best, 0))
	require.True(t, ok)
	assert.Equal(t, 0, rank)
}

func TestRegularAceLowOrdersNoPairBeforePair(t *testing.T) {
	f := RegularAceLow()
	noPair := mustParse(t, "7h5d4c3s2h")
	pair := mustParse(t, "2h2d3c4s5h")
	rn, ok := f.Table.Lookup(FingerprintOf(noPair, 0))
	require.True(t, ok)
	rp, ok := f.Table.Lookup(FingerprintOf(pair, 0))
	require.True(t, ok)
	assert.Less(t, rn, rp)
}

func TestBadugiFourBeatsThree(t *testing.T) {
	f := Badugi()
	four := mustParse(t, "Ah2d3c4s")
	three := mustParse(t, "Ah2d3c")
	r4, ok := f.Table.Lookup(FingerprintOf(four, 4))
	require.True(t, ok)
	r3, ok := f.Table.Lookup(FingerprintOf(three, 3))
	require.True(t, ok)
	assert.Less(t, r4, r3)
}

func TestIsBadugi(t *testing.T) {
	assert.True(t, IsBadugi(mustParse(t, "Ah2d3c4s")))
	assert.False(t, IsBadugi(mustParse(t, "Ah2d3c4h")))
	assert.False(t, IsBadugi(mustParse(t, "Ah2h3c4s")))
}
