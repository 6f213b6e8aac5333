package notation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerkit/pkg/chip"
	"github.com/lox/pokerkit/pkg/state"
	"github.com/lox/pokerkit/pkg/variant"
)

func TestBuildHandHistoryRejectsIncompleteState(t *testing.T) {
	s, err := state.New(state.Config{
		Variant: variant.NoLimitTexasHoldem(),
		Stacks:  []chip.Number{chip.Int64(200), chip.Int64(200)},
	})
	require.NoError(t, err)

	_, err = BuildHandHistory(s, BundleConfig{})
	assert.Error(t, err)
}

func TestBuildHandHistoryAfterFoldedHand(t *testing.T) {
	s, err := state.New(state.Config{
		Variant: variant.NoLimitTexasHoldem(),
		Stacks:  []chip.Number{chip.Int64(200), chip.Int64(200)},
	})
	require.NoError(t, err)

	require.NoError(t, s.PostBlind(0, chip.Int64(1)))
	require.NoError(t, s.PostBlind(1, chip.Int64(2)))
	require.NoError(t, s.BeginDealing())
	require.NoError(t, s.DealHole())
	require.NoError(t, s.Fold(1))
	require.Equal(t, state.PhaseComplete, s.Phase)

	hh, err := BuildHandHistory(s, BundleConfig{
		Table:   "default",
		HandID:  "hand-1",
		Players: []string{"alice", "bob"},
	})
	require.NoError(t, err)

	assert.Equal(t, "NT", hh.Variant)
	assert.Equal(t, 2, hh.SeatCount)
	assert.Contains(t, hh.Actions, "p2 f")
	assert.Equal(t, []string{"202", "198"}, hh.FinishingStacks)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, hh))

	decoded, err := Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, hh.Variant, decoded.Variant)
	assert.Equal(t, hh.Actions, decoded.Actions)
}
