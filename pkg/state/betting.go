package state

import (
	"fmt"

	"github.com/lox/pokerkit/pkg/chip"
	"github.com/lox/pokerkit/pkg/perrors"
	"github.com/lox/pokerkit/pkg/variant"
)

// CanFold reports whether seat may fold right now. A stud-like first
// street's designated opener may not fold in place of posting or
// completing the bring-in (§4.F "Bring-in posting").
func (s *State) CanFold(seat int) bool {
	return s.Phase == PhaseBetting && s.actingSeat(seat) && !s.bringInOutstanding()
}

func (s *State) VerifyFold(seat int) error {
	if !s.CanFold(seat) {
		return fmt.Errorf("state: seat %d cannot fold in phase %s: %w", seat, s.Phase, perrors.ErrIllegalPhase)
	}
	return nil
}

// Fold removes seat from the hand. If only one player remains active,
// the hand is killed immediately (§4.F "Folding").
func (s *State) Fold(seat int) error {
	if err := s.VerifyFold(seat); err != nil {
		return err
	}
	s.Statuses[seat] = StatusFolded
	s.muck = append(s.muck, s.Hole[seat]...)
	s.markActed(seat)
	s.record(Action{Verb: "f", Player: seat})
	s.advanceActorOrSettle()
	return nil
}

// CanCheckOrCall reports whether seat may check (owing nothing) or call
// (owing the difference to the current bet). A stud-like first street's
// designated opener must post or complete the bring-in instead of
// checking for free (§4.F "Bring-in posting").
func (s *State) CanCheckOrCall(seat int) bool {
	return s.Phase == PhaseBetting && s.actingSeat(seat) && !s.bringInOutstanding()
}

func (s *State) VerifyCheckOrCall(seat int) error {
	if !s.CanCheckOrCall(seat) {
		return fmt.Errorf("state: seat %d cannot check/call in phase %s: %w", seat, s.Phase, perrors.ErrIllegalPhase)
	}
	return nil
}

// CheckOrCall checks if seat already matches the current bet, or calls
// the difference otherwise (trimmed to the seat's stack for an all-in
// call) (§4.F "Checking or calling").
func (s *State) CheckOrCall(seat int) error {
	if err := s.VerifyCheckOrCall(seat); err != nil {
		return err
	}
	owed := s.currentBet().Sub(s.Bets[seat])
	if owed.Less(zeroLike(owed)) {
		owed = zeroLike(owed)
	}
	if s.Stacks[seat].Less(owed) {
		owed = s.Stacks[seat]
	}
	s.Stacks[seat] = s.Stacks[seat].Sub(owed)
	s.Bets[seat] = s.Bets[seat].Add(owed)
	s.Contributed[seat] = s.Contributed[seat].Add(owed)
	if s.Stacks[seat].IsZero() {
		s.Statuses[seat] = StatusAllIn
	}
	s.markActed(seat)
	s.record(Action{Verb: "cc", Player: seat, Amount: owed})
	s.advanceActorOrSettle()
	return nil
}

// CanCompleteBetOrRaiseTo reports whether seat may bring the total bet on
// this street up to amount (§4.F "Completing, betting, or raising to an
// amount").
func (s *State) CanCompleteBetOrRaiseTo(seat int, amount chip.Number) bool {
	if s.Phase != PhaseBetting || !s.actingSeat(seat) {
		return false
	}
	allIn := s.Stacks[seat].Add(s.Bets[seat])
	isAllIn := amount.Equal(allIn)
	street := s.CurrentStreet()

	// The raise cap limits voluntary (non-all-in) raises only: a player can
	// always shove their whole stack, capped or not. Blocking all-in raises
	// here too would make Reopened unreachable, since the two consecutive
	// qualifying all-ins that are supposed to flip it would themselves be
	// the raises the cap blocks.
	if street.MaxRaiseCount != nil && s.raiseCount >= *street.MaxRaiseCount && !s.Reopened && !isAllIn {
		return false
	}

	// Completing a stud bring-in — or completing directly instead of
	// posting it — always reaches exactly the street's small bet, a
	// smaller step than the generic minimum-raise formula allows once a
	// bring-in is already on the table.
	completingBringIn := s.Variant.StudLike && s.StreetIndex == 0 && s.lastAggressorIndex == -1 && amount.Equal(street.MinBet)

	switch s.Variant.BettingStructure {
	case variant.FixedLimit:
		if !isAllIn && !completingBringIn && !amount.Equal(s.minRaiseTo()) {
			return false
		}
	case variant.PotLimit:
		if !isAllIn && !completingBringIn && amount.Less(s.minRaiseTo()) {
			return false
		}
		if s.potLimitMaxRaiseTo(seat).Less(amount) {
			return false
		}
	default:
		if !isAllIn && !completingBringIn && amount.Less(s.minRaiseTo()) {
			return false
		}
	}
	return !amount.Less(s.currentBet())
}

// potLimitMaxRaiseTo is the largest legal raise-to amount under
// pot-limit betting: the current bet plus the size of the pot once
// seat's call is included (§4.F "Completing, betting, or raising to an
// amount").
func (s *State) potLimitMaxRaiseTo(seat int) chip.Number {
	call := s.currentBet().Sub(s.Bets[seat])
	zero := zeroLike(call)
	if call.Less(zero) {
		call = zero
	}
	pot := zero
	for _, p := range s.Pots {
		pot = pot.Add(p.Amount)
	}
	for _, b := range s.Bets {
		pot = pot.Add(b)
	}
	return s.currentBet().Add(pot).Add(call)
}

func (s *State) VerifyCompleteBetOrRaiseTo(seat int, amount chip.Number) error {
	if !s.CanCompleteBetOrRaiseTo(seat, amount) {
		return fmt.Errorf("state: seat %d cannot bet/raise to %s in phase %s: %w", seat, amount, s.Phase, perrors.ErrIllegalPhase)
	}
	return nil
}

// CompleteBetOrRaiseTo raises the street's bet to amount, deducting the
// difference from seat's stack (§4.F). It tracks consecutive qualifying
// all-in raises for the WSOP Rule 96/96a reopening exception: two or more
// all-in raises in a row, each at least the size of a full raise, reopen
// the betting for every non-all-in player even after the street's raise
// cap (fixed-limit) would otherwise have closed action.
func (s *State) CompleteBetOrRaiseTo(seat int, amount chip.Number) error {
	if err := s.VerifyCompleteBetOrRaiseTo(seat, amount); err != nil {
		return err
	}
	raiseSize := amount.Sub(s.currentBet())
	minRaise := s.lastBetSize
	if minRaise == nil || minRaise.IsZero() {
		minRaise = s.CurrentStreet().MinBet
	}

	delta := amount.Sub(s.Bets[seat])
	s.Stacks[seat] = s.Stacks[seat].Sub(delta)
	s.Bets[seat] = amount
	s.Contributed[seat] = s.Contributed[seat].Add(delta)
	wentAllIn := s.Stacks[seat].IsZero()
	if wentAllIn {
		s.Statuses[seat] = StatusAllIn
	}

	qualifies := !raiseSize.Less(minRaise)
	if wentAllIn && qualifies {
		s.qualifyingAllInRuns++
		if s.qualifyingAllInRuns >= 2 {
			s.Reopened = true
		}
	} else {
		s.qualifyingAllInRuns = 0
		if qualifies {
			s.lastBetSize = raiseSize
		}
	}

	s.raiseCount++
	s.lastAggressorIndex = seat
	// A new bet/raise owes every other active player a fresh response,
	// even one who already acted this round.
	for i, st := range s.Statuses {
		if i != seat && st == StatusActive {
			s.acted[i] = false
		}
	}
	s.markActed(seat)
	s.record(Action{Verb: "cbr", Player: seat, Amount: amount})
	s.advanceActorOrSettle()
	return nil
}

// markActed records that seat has responded to the current bet this
// street, one of the two conditions isBettingRoundComplete requires.
func (s *State) markActed(seat int) {
	if s.acted != nil {
		s.acted[seat] = true
	}
}

// currentBet is the largest bet posted by any non-folded player this
// street.
func (s *State) currentBet() chip.Number {
	max := zeroLike(s.Bets[0])
	for i, b := range s.Bets {
		if s.Statuses[i] != StatusFolded && !b.Less(max) {
			max = b
		}
	}
	return max
}

// minRaiseTo is the minimum legal raise-to amount for the acting player.
func (s *State) minRaiseTo() chip.Number {
	minRaise := s.lastBetSize
	if minRaise == nil || minRaise.IsZero() {
		minRaise = s.CurrentStreet().MinBet
	}
	return s.currentBet().Add(minRaise)
}

func (s *State) actingSeat(seat int) bool {
	return s.inRange(seat) && seat == s.ActorIndex && s.Statuses[seat] == StatusActive
}

// advanceActorOrSettle moves the actor pointer to the next player still
// owed an action, or collects bets and advances the street/hand if the
// round is complete.
func (s *State) advanceActorOrSettle() {
	if len(s.ActivePlayers()) <= 1 {
		s.settleByFold()
		return
	}
	if s.isBettingRoundComplete() {
		s.collectBets()
		s.advanceStreetOrShowdown()
		return
	}
	s.ActorIndex = s.nextToAct()
}

// isBettingRoundComplete reports whether every active (non-folded,
// non-all-in) player has matched the current bet AND has acted since the
// last bet/raise. The second condition matters the instant a street's
// betting opens: every Bets entry is zero and so already "matches," but
// nobody has had a turn yet.
func (s *State) isBettingRoundComplete() bool {
	target := s.currentBet()
	for i, st := range s.Statuses {
		if st == StatusActive && (s.Bets[i].Less(target) || !s.acted[i]) {
			return false
		}
	}
	return true
}

func (s *State) nextToAct() int {
	n := len(s.Statuses)
	for i := 1; i <= n; i++ {
		idx := (s.ActorIndex + i) % n
		if s.Statuses[idx] == StatusActive && (s.Bets[idx].Less(s.currentBet()) || !s.acted[idx]) {
			return idx
		}
	}
	// Everyone has matched and acted; give the floor back to the first
	// active seat after the button (defensive; isBettingRoundComplete
	// should have caught this).
	return s.nextActive(s.Button)
}

// collectBets moves every seat's uncollected bet into the pot, then
// re-derives pot layering from total contributions (§4.F "Bet
// collection"). Bets were already mirrored into Contributed as they were
// posted, so this only needs to zero the uncollected-bet ledger before
// recomputing the pots.
func (s *State) collectBets() {
	for i, b := range s.Bets {
		s.Bets[i] = zeroLike(b)
	}
	s.recalculateSidePots()
}

// settleByFold ends the hand immediately when only one player remains,
// awarding them the entire pot without a showdown (§4.F "Killing a
// hand").
func (s *State) settleByFold() {
	s.collectBets()
	s.Phase = PhaseComplete
	winner := s.ActivePlayers()
	if len(winner) == 1 {
		for _, p := range s.Pots {
			s.Stacks[winner[0]] = s.Stacks[winner[0]].Add(p.Amount)
		}
		s.Pots = nil
	}
}

// advanceStreetOrShowdown moves to the next street's dealing (or, for a
// draw street with nothing left to deal, drawing) phase, or to showdown
// if the current street was the last one.
func (s *State) advanceStreetOrShowdown() {
	if s.StreetIndex+1 >= len(s.Variant.Streets) {
		s.enterShowdown()
		return
	}
	s.StreetIndex++
	if s.CurrentStreet().DrawStatus {
		s.enterDrawing()
		return
	}
	s.Phase = PhaseDealing
}

// enterDrawing transitions into a draw street's drawing phase, resetting
// per-player draw tracking (§4.F "Standing pat or discarding").
func (s *State) enterDrawing() {
	s.Phase = PhaseDrawing
	s.drawActed = make([]bool, len(s.Statuses))
	s.pendingDraws = make([]int, len(s.Statuses))
	for i, st := range s.Statuses {
		if st != StatusActive {
			s.drawActed[i] = true
		}
	}
}
