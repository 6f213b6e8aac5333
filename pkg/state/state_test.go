package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerkit/pkg/chip"
	"github.com/lox/pokerkit/pkg/variant"
)

func newHeadsUpNLHE(t *testing.T, stack int64) *State {
	t.Helper()
	s, err := New(Config{
		Variant: variant.NoLimitTexasHoldem(),
		Stacks:  []chip.Number{chip.Int64(stack), chip.Int64(stack)},
		Button:  0,
	})
	require.NoError(t, err)
	return s
}

// TestHeadsUpFoldPreflopAwardsBlinds plays a minimal heads-up hand where
// the button posts the small blind, the other seat posts the big blind and
// then folds as first to act — the simplest possible complete hand.
func TestHeadsUpFoldPreflopAwardsBlinds(t *testing.T) {
	s := newHeadsUpNLHE(t, 200)

	require.NoError(t, s.PostBlind(0, chip.Int64(1)))
	require.NoError(t, s.PostBlind(1, chip.Int64(2)))
	require.NoError(t, s.BeginDealing())
	require.NoError(t, s.DealHole())

	require.Equal(t, PhaseBetting, s.Phase)
	require.Equal(t, 1, s.ActorIndex) // first to act is the seat left of the button

	require.NoError(t, s.Fold(1))

	assert.Equal(t, PhaseComplete, s.Phase)
	assert.True(t, chip.Int64(202).Equal(s.Stacks[0]))
	assert.True(t, chip.Int64(198).Equal(s.Stacks[1]))
}

// TestChipsConservedThroughFullHand plays a full heads-up hand to
// showdown and checks total chips never change (§3 Invariants "Chip
// conservation").
func TestChipsConservedThroughFullHand(t *testing.T) {
	s := newHeadsUpNLHE(t, 200)
	before := s.TotalChips()

	require.NoError(t, s.PostBlind(0, chip.Int64(1)))
	require.NoError(t, s.PostBlind(1, chip.Int64(2)))
	require.NoError(t, s.BeginDealing())

	for s.Phase != PhaseShowdown && s.Phase != PhaseComplete {
		switch {
		case s.CanDealHole():
			require.NoError(t, s.DealHole())
		case s.CanBurn():
			require.NoError(t, s.Burn())
		case s.CanDealBoard():
			require.NoError(t, s.DealBoard())
		case s.Phase == PhaseBetting:
			require.NoError(t, s.CheckOrCall(s.ActorIndex))
		default:
			t.Fatalf("stuck in phase %s", s.Phase)
		}
	}

	if s.Phase == PhaseShowdown {
		for _, seat := range s.showdownOrder {
			require.NoError(t, s.ShowOrMuckHoleCards(seat, false, s.Hole[seat]))
		}
		_, err := s.PushChips()
		require.NoError(t, err)
	}

	after := chip.Int64(0)
	for _, st := range s.Stacks {
		after = after.Add(st).(chip.Int64)
	}
	assert.True(t, before.Equal(after))
}

func TestCloneIsIndependent(t *testing.T) {
	s := newHeadsUpNLHE(t, 200)
	require.NoError(t, s.PostBlind(0, chip.Int64(1)))

	clone := s.Clone()
	require.NoError(t, clone.PostBlind(1, chip.Int64(2)))

	assert.True(t, chip.Int64(0).Equal(s.Bets[1]))
	assert.True(t, chip.Int64(2).Equal(clone.Bets[1]))
}

func TestAnteIsTrimmedToShortStack(t *testing.T) {
	s, err := New(Config{
		Variant: variant.FixedLimitSevenCardStud(),
		Stacks:  []chip.Number{chip.Int64(1), chip.Int64(100), chip.Int64(100)},
		Ante:    chip.Int64(5),
	})
	require.NoError(t, err)

	require.NoError(t, s.PostAnte(0))
	assert.True(t, chip.Int64(0).Equal(s.Stacks[0]))
	assert.Equal(t, StatusAllIn, s.Statuses[0])
	assert.True(t, chip.Int64(1).Equal(s.Contributed[0]))
}
