package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerkit/pkg/chip"
	"github.com/lox/pokerkit/pkg/variant"
)

// TestReopeningRequiresTwoConsecutiveQualifyingAllIns drives a three-way
// fixed-limit preflop street (MaxRaiseCount 4) past its raise cap via a
// sequence of short all-in raises, checking the WSOP Rule 96/96a exception
// end to end: the cap blocks ordinary raises once reached, a single
// qualifying all-in raise past the cap does not by itself reopen action,
// but a second one immediately after does, and only then can a non-all-in
// player raise again.
func TestReopeningRequiresTwoConsecutiveQualifyingAllIns(t *testing.T) {
	s, err := New(Config{
		Variant: variant.FixedLimitTexasHoldem(),
		Stacks:  []chip.Number{chip.Int64(100), chip.Int64(10), chip.Int64(15)},
		Button:  2,
	})
	require.NoError(t, err)
	require.NoError(t, s.BeginDealing())
	require.NoError(t, s.DealHole())
	require.Equal(t, PhaseBetting, s.Phase)
	require.Equal(t, 0, s.ActorIndex) // nextActive(button=2) == 0

	// Raise count climbs 1..4 on ordinary raises; cap (4) lands on seat0.
	require.NoError(t, s.CompleteBetOrRaiseTo(0, chip.Int64(1)))
	require.NoError(t, s.CompleteBetOrRaiseTo(1, chip.Int64(2)))
	require.NoError(t, s.CompleteBetOrRaiseTo(2, chip.Int64(3)))
	require.NoError(t, s.CompleteBetOrRaiseTo(0, chip.Int64(4)))
	assert.False(t, s.Reopened)

	// Cap reached, not reopened: seat1's stack (8 left) could reach 10 if
	// shoved, but a smaller non-all-in raise to 5 must be rejected.
	assert.False(t, s.CanCompleteBetOrRaiseTo(1, chip.Int64(5)))

	// seat1 shoves for 10 total — a qualifying all-in raise, but the first
	// in this run, so it does not reopen action by itself.
	require.True(t, s.CanCompleteBetOrRaiseTo(1, chip.Int64(10)))
	require.NoError(t, s.CompleteBetOrRaiseTo(1, chip.Int64(10)))
	assert.False(t, s.Reopened)
	assert.Equal(t, StatusAllIn, s.Statuses[1])

	// seat2 shoves for 15 total immediately after — a second consecutive
	// qualifying all-in raise. This reopens betting.
	require.True(t, s.CanCompleteBetOrRaiseTo(2, chip.Int64(15)))
	require.NoError(t, s.CompleteBetOrRaiseTo(2, chip.Int64(15)))
	assert.True(t, s.Reopened)
	assert.Equal(t, StatusAllIn, s.Statuses[2])

	// seat0 is still active and not all-in; reopened action lets them raise
	// again despite raiseCount having long passed the street's cap. Fixed-limit
	// betting requires the exact minimum raise-to amount (currentBet 15 plus
	// the last qualifying non-all-in raise size of 1, since the two all-in
	// raises in between didn't touch lastBetSize).
	assert.Equal(t, 0, s.ActorIndex)
	assert.True(t, s.CanCompleteBetOrRaiseTo(0, chip.Int64(16)))
	require.NoError(t, s.CompleteBetOrRaiseTo(0, chip.Int64(16)))
	assert.Equal(t, chip.Int64(16), s.Bets[0])
}

// TestSingleAllInPastCapDoesNotReopen checks the negative case: one
// qualifying all-in raise past the cap, with no second one following it,
// leaves non-all-in players still capped.
func TestSingleAllInPastCapDoesNotReopen(t *testing.T) {
	s, err := New(Config{
		Variant: variant.FixedLimitTexasHoldem(),
		Stacks:  []chip.Number{chip.Int64(100), chip.Int64(100), chip.Int64(10)},
		Button:  2,
	})
	require.NoError(t, err)
	require.NoError(t, s.BeginDealing())
	require.NoError(t, s.DealHole())

	require.NoError(t, s.CompleteBetOrRaiseTo(0, chip.Int64(1)))
	require.NoError(t, s.CompleteBetOrRaiseTo(1, chip.Int64(2)))
	require.NoError(t, s.CompleteBetOrRaiseTo(2, chip.Int64(3)))
	require.NoError(t, s.CompleteBetOrRaiseTo(0, chip.Int64(4)))
	require.False(t, s.Reopened)

	// seat1 calls rather than raising; seat2's stack (7 left) shoves for a
	// single qualifying all-in raise with nobody following it consecutively.
	require.NoError(t, s.CheckOrCall(1))
	require.True(t, s.CanCompleteBetOrRaiseTo(2, chip.Int64(10)))
	require.NoError(t, s.CompleteBetOrRaiseTo(2, chip.Int64(10)))
	assert.False(t, s.Reopened)

	// seat0's stack is deep; they can still only call or fold, not raise,
	// since the cap applies and only one qualifying all-in has occurred.
	assert.False(t, s.CanCompleteBetOrRaiseTo(0, chip.Int64(15)))
}
