package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerkit/pkg/card"
	"github.com/lox/pokerkit/pkg/chip"
	"github.com/lox/pokerkit/pkg/state"
)

func TestFormatActionFold(t *testing.T) {
	assert.Equal(t, "p1 f", FormatAction(state.Action{Verb: "f", Player: 0}))
}

func TestFormatActionCheckOrCall(t *testing.T) {
	assert.Equal(t, "p2 cc", FormatAction(state.Action{Verb: "cc", Player: 1}))
}

func TestFormatActionCompleteBetOrRaiseTo(t *testing.T) {
	line := FormatAction(state.Action{Verb: "cbr", Player: 0, Amount: chip.Int64(6)})
	assert.Equal(t, "p1 cbr 6", line)
}

func TestFormatActionDealHole(t *testing.T) {
	cards, err := card.Parse("AhKh")
	require.NoError(t, err)
	line := FormatAction(state.Action{Verb: "dh", Player: 0, Cards: cards})
	assert.Equal(t, "d dh p1 AhKh", line)
}

func TestParseActionRoundTrip(t *testing.T) {
	cards, err := card.Parse("AhKh")
	require.NoError(t, err)
	cases := []state.Action{
		{Verb: "f", Player: 2},
		{Verb: "cc", Player: 0},
		{Verb: "cbr", Player: 1, Amount: chip.Int64(120)},
		{Verb: "dh", Player: 0, Cards: cards},
	}
	for _, a := range cases {
		line := FormatAction(a)
		parsed, err := ParseAction(line, chip.ParseInt64)
		require.NoError(t, err)
		assert.Equal(t, a.Verb, parsed.Verb)
		assert.Equal(t, a.Player, parsed.Player)
		if a.Amount != nil {
			assert.True(t, a.Amount.Equal(parsed.Amount))
		}
		assert.Equal(t, a.Cards, parsed.Cards)
	}
}

func TestParseActionRejectsUnknownVerb(t *testing.T) {
	_, err := ParseAction("p1 blorp", chip.ParseInt64)
	assert.Error(t, err)
}
