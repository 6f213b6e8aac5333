package state

import (
	"fmt"

	"github.com/lox/pokerkit/pkg/card"
	"github.com/lox/pokerkit/pkg/chip"
	"github.com/lox/pokerkit/pkg/hand"
	"github.com/lox/pokerkit/pkg/perrors"
)

// CanStandPatOrDiscard reports whether seat may stand pat or discard on
// the current (draw) street (§4.F "Standing pat or discarding").
func (s *State) CanStandPatOrDiscard(seat int) bool {
	return s.Phase == PhaseDrawing && s.Statuses[seat] == StatusActive && !s.drawActed[seat]
}

// StandPatOrDiscard moves the cards at the given indices out of seat's
// hole cards into the discard pile (an empty discards slice stands pat).
// Replacements are not dealt immediately: they arrive in the hole-dealing
// pass that follows once every active player has acted this drawing
// phase (§4.F "Standing pat or discarding", "Hole dealing").
func (s *State) StandPatOrDiscard(seat int, discards []int) error {
	if !s.CanStandPatOrDiscard(seat) {
		return fmt.Errorf("state: seat %d cannot draw in phase %s: %w", seat, s.Phase, perrors.ErrIllegalPhase)
	}
	discardedCards := pickIndices(s.Hole[seat], discards)
	s.discarded = append(s.discarded, discardedCards...)
	s.Hole[seat] = removeIndices(s.Hole[seat], discards)
	s.pendingDraws[seat] = len(discards)
	s.drawActed[seat] = true
	s.record(Action{Verb: "sd", Player: seat, Cards: discardedCards})
	s.advanceDrawOrDeal()
	return nil
}

// advanceDrawOrDeal checks whether every active player has stood pat or
// discarded; once they have, it moves to dealing replacements (if anyone
// owes one) or straight back to betting.
func (s *State) advanceDrawOrDeal() {
	for i, st := range s.Statuses {
		if st == StatusActive && !s.drawActed[i] {
			return
		}
	}
	if s.anyPendingDraws() {
		s.Phase = PhaseDealing
		return
	}
	s.enterBetting()
}

func pickIndices(cards []card.Card, idx []int) []card.Card {
	out := make([]card.Card, 0, len(idx))
	for _, i := range idx {
		if i >= 0 && i < len(cards) {
			out = append(out, cards[i])
		}
	}
	return out
}

// removeIndices returns cards with the given indices removed, preserving
// the relative order of the rest.
func removeIndices(cards []card.Card, idx []int) []card.Card {
	if len(idx) == 0 {
		return cards
	}
	skip := make(map[int]bool, len(idx))
	for _, i := range idx {
		skip[i] = true
	}
	out := make([]card.Card, 0, len(cards)-len(idx))
	for i, c := range cards {
		if !skip[i] {
			out = append(out, c)
		}
	}
	return out
}

// enterShowdown transitions into showdown and fixes the order in which
// players must show or muck: last aggressor first, or the current
// street's opening seat if nobody bet or raised (§4.F "Hole-cards
// showing or mucking").
func (s *State) enterShowdown() {
	s.Phase = PhaseShowdown
	s.showdownOrder = s.computeShowdownOrder()
	s.showdownPos = 0
}

func (s *State) computeShowdownOrder() []int {
	start := s.lastAggressorIndex
	if start < 0 || start >= len(s.Statuses) || s.Statuses[start] == StatusFolded {
		start = s.openingActor()
	}
	n := len(s.Statuses)
	var order []int
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if s.Statuses[idx] != StatusFolded {
			order = append(order, idx)
		}
	}
	return order
}

// CanShowOrMuck reports whether seat may reveal or muck their hole cards
// right now: it must be their turn in showdown order (§4.F "Hole-cards
// showing/mucking").
func (s *State) CanShowOrMuck(seat int) bool {
	return s.Phase == PhaseShowdown && s.inRange(seat) && s.Statuses[seat] != StatusFolded &&
		s.showdownPos < len(s.showdownOrder) && s.showdownOrder[s.showdownPos] == seat
}

// ShowOrMuckHoleCards reveals or forfeits seat's hole cards at showdown,
// advancing showdown order regardless of outcome. muck forfeits any claim
// on the pot. Otherwise reveal is matched position-by-position against
// seat's hole cards: an entry equal to the real card flips it face-up,
// any other entry (including card.Unknown, or reveal being shorter than
// the hand) leaves that card face-down — cash-mode "show all down" is
// simply an empty or all-unknown reveal (§4.F "Hole-cards showing or
// mucking").
func (s *State) ShowOrMuckHoleCards(seat int, muck bool, reveal []card.Card) error {
	if !s.CanShowOrMuck(seat) {
		return fmt.Errorf("state: seat %d cannot show/muck in phase %s: %w", seat, s.Phase, perrors.ErrIllegalPhase)
	}
	s.showdownPos++
	if muck {
		s.muck = append(s.muck, s.Hole[seat]...)
		s.Statuses[seat] = StatusFolded
		s.record(Action{Verb: "sm_muck", Player: seat})
		return nil
	}
	shown := make([]card.Card, len(s.Hole[seat]))
	for i := range shown {
		if i < len(reveal) && reveal[i].Equal(s.Hole[seat][i]) {
			shown[i] = s.Hole[seat][i]
		} else {
			shown[i] = card.Unknown
		}
	}
	s.record(Action{Verb: "sm", Player: seat, Cards: shown})
	return nil
}

// NominateRunoutCount records seat's preferred number of board runouts
// for a multi-runout all-in (§3 Dynamic fields, SPEC_FULL.md
// "runout_count_selector_statuses").
func (s *State) NominateRunoutCount(seat int, n int) error {
	if n < 1 {
		return fmt.Errorf("state: runout count must be >= 1, got %d: %w", n, perrors.ErrInvalidArgument)
	}
	if len(s.RunoutSelectorStatuses) != len(s.Statuses) {
		s.RunoutSelectorStatuses = make([]OptionalInt, len(s.Statuses))
	}
	s.RunoutSelectorStatuses[seat] = OptionalInt{Value: n, Set: true}
	return nil
}

// ResolveRunoutCount resolves every active player's nomination to the
// number of boards that will be dealt for the remainder of the hand:
// players who have not nominated abstain, unanimous agreement among the
// nominating players on a count greater than one wins, and any
// disagreement, or no nomination at all, resolves to a single runout (§9
// Open Question (a)).
func (s *State) ResolveRunoutCount() int {
	agreed := 0
	any := false
	consistent := true
	for i, opt := range s.RunoutSelectorStatuses {
		if i >= len(s.Statuses) || s.Statuses[i] == StatusFolded || !opt.Set {
			continue
		}
		if !any {
			agreed = opt.Value
			any = true
			continue
		}
		if opt.Value != agreed {
			consistent = false
		}
	}
	if !any || !consistent || agreed <= 1 {
		return 1
	}
	return agreed
}

// BeginMultiRunout duplicates the current board by the resolved runout
// count so the remaining streets' DealBoard populates each copy in turn,
// all drawing from the same shared remaining deck in sequence (§4.F
// "multi-runout cash-game all-ins").
func (s *State) BeginMultiRunout() {
	n := s.ResolveRunoutCount()
	s.resolvedRunoutCount = n
	if n <= 1 {
		return
	}
	primary := s.Board[0]
	boards := make([][]card.Card, n)
	for i := range boards {
		boards[i] = append([]card.Card(nil), primary...)
	}
	s.Board = boards
}

// showdownHand computes seat's best hand for the given family spec on
// board b. ok is false if the family cannot form (low qualifiers, an
// incomplete badugi fallback producing no legal subset, etc).
func (s *State) showdownHand(seat, family int, board []card.Card) (hand.Hand, bool, error) {
	spec := s.Variant.HandFamilies[family]
	return hand.FromGame(spec.Family, s.Hole[seat], board, spec.Projection)
}

// Winners is the outcome of resolving one pot layer on one runout board:
// the winning seats and the (possibly per-family-split) amount each
// receives.
type Winners struct {
	Seats  []int
	Amount chip.Number
}

// PushChips resolves every pot across every runout board, splitting
// between hand families for hi/lo variants and among runouts for
// multi-board all-ins, and credits each winner's stack (§4.F "Chips
// pushing"/"Chips pulling" combined, since this module settles a hand in
// one call rather than a two-phase push/pull UI convention).
func (s *State) PushChips() ([]Winners, error) {
	if s.Phase != PhaseShowdown {
		return nil, fmt.Errorf("state: cannot push chips outside showdown (phase %s): %w", s.Phase, perrors.ErrIllegalPhase)
	}
	var results []Winners
	numBoards := len(s.Board)
	if numBoards == 0 {
		numBoards = 1
	}

	for idx := range s.Pots {
		pot := s.Pots[idx]
		raked := s.Rake(pot.Amount, s.RakeCap, s.NoFlopNoDrop, s.RakePercentage)
		zero := zeroLike(pot.Amount)
		if raked.Less(zero) {
			raked = zero
		}
		if pot.Amount.Less(raked) {
			raked = pot.Amount
		}
		s.TotalRaked = s.TotalRaked.Add(raked)
		pot.Amount = pot.Amount.Sub(raked)

		boardShare, boardRemainder := s.DivMod(pot.Amount, numBoards)
		for bi := 0; bi < numBoards; bi++ {
			amount := boardShare
			if bi == 0 {
				amount = amount.Add(boardRemainder)
			}
			board := []card.Card(nil)
			if bi < len(s.Board) {
				board = s.Board[bi]
			}
			w, err := s.resolvePotOnBoard(pot, amount, board)
			if err != nil {
				return nil, err
			}
			results = append(results, w...)
		}
	}

	s.Pots = nil
	s.Phase = PhaseComplete
	return results, nil
}

func (s *State) resolvePotOnBoard(pot Pot, amount chip.Number, board []card.Card) ([]Winners, error) {
	families := s.Variant.HandFamilies
	if len(families) == 1 {
		winners, err := s.bestInFamily(pot.Eligible, 0, board)
		if err != nil {
			return nil, err
		}
		return []Winners{s.award(winners, amount)}, nil
	}

	// Hi/lo split: each half goes to its family's winners; if the low
	// side has no qualifier, the high side takes the whole pot (§4.E
	// "split-pot variants"). Any odd chip from the 2-way split goes to
	// the high side, matching the convention most hi/lo rule sets use.
	half, oddHalf := s.DivMod(amount, 2)

	highWinners, err := s.bestInFamily(pot.Eligible, 0, board)
	if err != nil {
		return nil, err
	}
	lowWinners, err := s.bestInFamily(pot.Eligible, 1, board)
	if err != nil {
		return nil, err
	}
	if len(lowWinners) == 0 {
		return []Winners{s.award(highWinners, amount)}, nil
	}
	return []Winners{
		s.award(highWinners, half.Add(oddHalf)),
		s.award(lowWinners, half),
	}, nil
}

// bestInFamily returns the eligible seats holding the strongest hand in
// the given family index (ties split the pot).
func (s *State) bestInFamily(eligible []int, family int, board []card.Card) ([]int, error) {
	var best hand.Hand
	var winners []int
	for _, seat := range eligible {
		if s.Statuses[seat] == StatusFolded {
			continue
		}
		h, ok, err := s.showdownHand(seat, family, board)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		switch {
		case len(winners) == 0 || h.Stronger(best):
			best = h
			winners = []int{seat}
		case h.Equal(best):
			winners = append(winners, seat)
		}
	}
	return winners, nil
}

func (s *State) award(seats []int, amount chip.Number) Winners {
	if len(seats) == 0 {
		return Winners{}
	}
	share, remainder := s.DivMod(amount, len(seats))
	// The odd chips go to the winner in the earliest position, i.e. the
	// one seated closest to the button's left.
	n := len(s.Statuses)
	first := 0
	for i, seat := range seats {
		if (seat-s.Button-1+n)%n < (seats[first]-s.Button-1+n)%n {
			first = i
		}
	}
	for i, seat := range seats {
		portion := share
		if i == first {
			portion = portion.Add(remainder)
		}
		s.Stacks[seat] = s.Stacks[seat].Add(portion)
	}
	return Winners{Seats: seats, Amount: amount}
}
