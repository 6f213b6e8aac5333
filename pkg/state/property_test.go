package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerkit/pkg/chip"
	"github.com/lox/pokerkit/pkg/variant"
)

// playCheckCallHandToCompletion drives s from PhaseAnteBlind to
// PhaseComplete using only the no-information-destroying legal actions
// (post whatever is owed, check/call, stand pat, show) — never folding —
// so every playout is deterministic given the state's (unshuffled, unless
// configured otherwise) deck. It exercises every dealing/drawing/betting
// branch a variant can take. Returns an error rather than failing a *testing.T
// directly so it is safe to call from a non-test goroutine (the property
// test below runs one playout per goroutine via errgroup).
func playCheckCallHandToCompletion(s *State) error {
	// Ante/blind posting is a single pass: CanPostAnte/CanPostBlind only
	// assert it is structurally legal right now, not that this seat hasn't
	// already posted — the caller (here, this loop) is responsible for
	// invoking each op exactly once per seat per hand (unlike drawing, where
	// CanStandPatOrDiscard tracks who has already acted).
	for seat := 0; seat < s.NumPlayers(); seat++ {
		if s.CanPostAnte(seat) {
			if err := s.PostAnte(seat); err != nil {
				return err
			}
		}
	}
	if s.NumPlayers() >= 2 {
		minBet := s.Variant.Streets[0].MinBet
		if s.CanPostBlind(0) {
			if err := s.PostBlind(0, minBet); err != nil {
				return err
			}
		}
		if s.CanPostBlind(1) {
			if err := s.PostBlind(1, minBet.MulScalar(2)); err != nil {
				return err
			}
		}
	}
	if err := s.BeginDealing(); err != nil {
		return err
	}

	for s.Phase != PhaseShowdown && s.Phase != PhaseComplete {
		switch {
		case s.CanBurn():
			// Burn precedes dealing on any street that both burns and
			// deals hole cards (stud's fourth street onward): DealHole
			// transitions straight into betting for a boardless street,
			// so the burn must happen first or never at all.
			if err := s.Burn(); err != nil {
				return err
			}
		case s.CanDealHole():
			if err := s.DealHole(); err != nil {
				return err
			}
		case s.CanDealBoard():
			if err := s.DealBoard(); err != nil {
				return err
			}
		case s.Phase == PhaseDrawing:
			for _, seat := range s.ActivePlayers() {
				if s.CanStandPatOrDiscard(seat) {
					if err := s.StandPatOrDiscard(seat, nil); err != nil {
						return err
					}
				}
			}
		case s.Phase == PhaseBetting && s.CanPostBringIn(s.ActorIndex):
			if err := s.PostBringIn(s.ActorIndex); err != nil {
				return err
			}
		case s.Phase == PhaseBetting:
			if err := s.CheckOrCall(s.ActorIndex); err != nil {
				return err
			}
		default:
			return fmt.Errorf("stuck in phase %s on street %d", s.Phase, s.StreetIndex)
		}
	}

	if s.Phase == PhaseShowdown {
		for _, seat := range s.showdownOrder {
			if err := s.ShowOrMuckHoleCards(seat, false, s.Hole[seat]); err != nil {
				return err
			}
		}
		if _, err := s.PushChips(); err != nil {
			return err
		}
	}
	return nil
}

// TestChipConservationAcrossVariants builds a fresh State for each of
// several predefined variants and plays them out concurrently via
// errgroup, checking the chip conservation invariant (§3 Invariants) holds
// for every one: flop games, a stud game (ante-driven, card-opened
// streets), a heads-up 2-7 triple-draw game, and a badugi triple-draw
// game, the others multi-way. Every playout's own result is
// gathered on the main goroutine before any testify assertion runs, since
// Fatal/FailNow are only valid from the goroutine running the test.
func TestChipConservationAcrossVariants(t *testing.T) {
	type trial struct {
		name    string
		variant variant.Variant
		stacks  []chip.Number
		ante    chip.Number
	}

	trials := []trial{
		{
			name:    "no_limit_holdem_4way",
			variant: variant.NoLimitTexasHoldem(),
			stacks:  []chip.Number{chip.Int64(200), chip.Int64(150), chip.Int64(300), chip.Int64(75)},
		},
		{
			name:    "pot_limit_omaha_3way",
			variant: variant.PotLimitOmaha(),
			stacks:  []chip.Number{chip.Int64(500), chip.Int64(500), chip.Int64(500)},
		},
		{
			name:    "fixed_limit_stud_3way",
			variant: variant.FixedLimitSevenCardStud(),
			stacks:  []chip.Number{chip.Int64(100), chip.Int64(100), chip.Int64(100)},
			ante:    chip.Int64(1),
		},
		{
			name:    "triple_draw_heads_up",
			variant: variant.FixedLimitDeuceToSevenTripleDraw(),
			stacks:  []chip.Number{chip.Int64(100), chip.Int64(100)},
		},
		{
			name:    "badugi_3way",
			variant: variant.FixedLimitBadugi(),
			stacks:  []chip.Number{chip.Int64(100), chip.Int64(100), chip.Int64(100)},
		},
	}

	type outcome struct {
		name   string
		before chip.Number
		after  chip.Number
		stacks []chip.Number
	}
	results := make([]outcome, len(trials))

	var g errgroup.Group
	for i, tr := range trials {
		i, tr := i, tr
		g.Go(func() error {
			s, err := New(Config{
				Variant: tr.variant,
				Stacks:  tr.stacks,
				Ante:    tr.ante,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", tr.name, err)
			}
			before := s.TotalChips()

			if err := playCheckCallHandToCompletion(s); err != nil {
				return fmt.Errorf("%s: %w", tr.name, err)
			}

			results[i] = outcome{name: tr.name, before: before, after: s.TotalChips(), stacks: s.Stacks}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, r := range results {
		assert.Truef(t, r.before.Equal(r.after), "%s: chips not conserved: before=%s after=%s", r.name, r.before, r.after)
		for i, st := range r.stacks {
			assert.Falsef(t, st.Less(chip.Int64(0)), "%s: seat %d stack went negative: %s", r.name, i, st)
		}
	}
}
