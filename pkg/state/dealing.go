package state

import (
	"fmt"

	"github.com/lox/pokerkit/pkg/card"
	"github.com/lox/pokerkit/pkg/chip"
	"github.com/lox/pokerkit/pkg/perrors"
	"github.com/lox/pokerkit/pkg/variant"
)

// CanPostAnte reports whether seat may post an ante now (§4.F "Ante
// posting"): the hand is in PhaseAnteBlind, seat is active, and the ante
// is nonzero. It does not track whether seat has already posted one.
func (s *State) CanPostAnte(seat int) bool {
	return s.Phase == PhaseAnteBlind && s.inRange(seat) && s.Statuses[seat] == StatusActive && !s.Ante.IsZero()
}

// VerifyPostAnte returns an error explaining why PostAnte would fail,
// or nil if it would succeed.
func (s *State) VerifyPostAnte(seat int) error {
	if !s.CanPostAnte(seat) {
		return fmt.Errorf("state: seat %d cannot post ante in phase %s: %w", seat, s.Phase, perrors.ErrIllegalPhase)
	}
	return nil
}

// PostAnte collects seat's ante, trimmed to their remaining stack (§3
// Invariants, SPEC_FULL.md "Ante-trimming": posting an ante never goes
// below zero even if the stack is smaller than the nominal ante).
func (s *State) PostAnte(seat int) error {
	if err := s.VerifyPostAnte(seat); err != nil {
		return err
	}
	amount := s.Ante
	if s.Stacks[seat].Less(amount) {
		amount = s.Stacks[seat]
	}
	s.Stacks[seat] = s.Stacks[seat].Sub(amount)
	s.Contributed[seat] = s.Contributed[seat].Add(amount)
	s.anteContributions[seat] = amount
	if s.Stacks[seat].IsZero() {
		s.Statuses[seat] = StatusAllIn
	}
	s.record(Action{Verb: "pb", Player: seat, Amount: amount})
	return nil
}

// trimAntes equalizes every payer's posted ante down to the smallest
// nonzero ante actually posted this hand, refunding the difference
// straight to stacks before bets are collected into the pot (§3/
// SPEC_FULL.md "Ante-trimming": a short-stacked player's all-in ante caps
// how much a full-stacked payer's ante can count against them).
func (s *State) trimAntes() {
	if !s.AnteTrimmingFlag || s.Ante.IsZero() {
		return
	}
	var lowest chip.Number
	for i, amount := range s.anteContributions {
		if amount == nil || amount.IsZero() || s.Statuses[i] == StatusFolded {
			continue
		}
		if lowest == nil || amount.Less(lowest) {
			lowest = amount
		}
	}
	if lowest == nil {
		return
	}
	for i, amount := range s.anteContributions {
		if amount == nil || amount.IsZero() || !lowest.Less(amount) {
			continue
		}
		refund := amount.Sub(lowest)
		s.Stacks[i] = s.Stacks[i].Add(refund)
		s.Contributed[i] = s.Contributed[i].Sub(refund)
		s.anteContributions[i] = lowest
	}
}

// bringInOutstanding reports whether the current street still needs its
// bring-in posted or completed over (§4.F "Bring-in posting"): only the
// stud-like first street, only before anyone has raised or completed.
func (s *State) bringInOutstanding() bool {
	return s.Variant.StudLike && s.StreetIndex == 0 && !s.bringInPosted && s.lastAggressorIndex == -1
}

// CanPostBringIn reports whether seat is the designated opener of a
// stud-like first street and still owes its bring-in post.
func (s *State) CanPostBringIn(seat int) bool {
	return s.Phase == PhaseBetting && s.actingSeat(seat) && s.bringInOutstanding() && !s.CurrentStreet().BringIn.IsZero()
}

func (s *State) VerifyPostBringIn(seat int) error {
	if !s.CanPostBringIn(seat) {
		return fmt.Errorf("state: seat %d cannot post bring-in in phase %s: %w", seat, s.Phase, perrors.ErrIllegalPhase)
	}
	return nil
}

// PostBringIn posts the designated opener's partial forced bet on a
// stud-like first street, trimmed to their stack if short (§4.F
// "Bring-in posting"). The opener may instead skip straight to
// CompleteBetOrRaiseTo for the street's full small bet.
func (s *State) PostBringIn(seat int) error {
	if err := s.VerifyPostBringIn(seat); err != nil {
		return err
	}
	amount := s.CurrentStreet().BringIn
	if s.Stacks[seat].Less(amount) {
		amount = s.Stacks[seat]
	}
	s.Stacks[seat] = s.Stacks[seat].Sub(amount)
	s.Bets[seat] = s.Bets[seat].Add(amount)
	s.Contributed[seat] = s.Contributed[seat].Add(amount)
	if s.Stacks[seat].IsZero() {
		s.Statuses[seat] = StatusAllIn
	}
	s.bringInPosted = true
	s.markActed(seat)
	s.record(Action{Verb: "pb", Player: seat, Amount: amount})
	s.advanceActorOrSettle()
	return nil
}

// CanPostBlind reports whether seat may post a blind/straddle of amount
// (§4.F "Blind/straddle posting").
func (s *State) CanPostBlind(seat int) bool {
	return s.Phase == PhaseAnteBlind && s.inRange(seat) && s.Statuses[seat] == StatusActive
}

func (s *State) VerifyPostBlind(seat int, amount chip.Number) error {
	if !s.CanPostBlind(seat) {
		return fmt.Errorf("state: seat %d cannot post blind in phase %s: %w", seat, s.Phase, perrors.ErrIllegalPhase)
	}
	if amount.Less(zeroLike(amount)) {
		return fmt.Errorf("state: negative blind amount: %w", perrors.ErrInvalidArgument)
	}
	return nil
}

// PostBlind collects a forced bet of amount from seat, trimmed to their
// stack if it is short (an all-in blind).
func (s *State) PostBlind(seat int, amount chip.Number) error {
	if err := s.VerifyPostBlind(seat, amount); err != nil {
		return err
	}
	if s.Stacks[seat].Less(amount) {
		amount = s.Stacks[seat]
	}
	s.Stacks[seat] = s.Stacks[seat].Sub(amount)
	s.Bets[seat] = s.Bets[seat].Add(amount)
	s.Contributed[seat] = s.Contributed[seat].Add(amount)
	if s.Stacks[seat].IsZero() {
		s.Statuses[seat] = StatusAllIn
	}
	s.record(Action{Verb: "pb", Player: seat, Amount: amount})
	return nil
}

// BeginDealing transitions out of PhaseAnteBlind once every owed ante and
// blind has been posted, collecting uncollected blinds into the pot and
// advancing to the first street's dealing phase.
func (s *State) BeginDealing() error {
	if s.Phase != PhaseAnteBlind {
		return fmt.Errorf("state: cannot begin dealing from phase %s: %w", s.Phase, perrors.ErrIllegalPhase)
	}
	s.trimAntes()
	s.collectBets()
	s.Phase = PhaseDealing
	return nil
}

// CanDealHole reports whether hole cards remain to be dealt this street:
// fresh cards on a normal street, or owed replacements on a draw street
// once every player has stood pat or discarded (§4.F "Hole dealing",
// "Standing pat or discarding").
func (s *State) CanDealHole() bool {
	if s.Phase != PhaseDealing {
		return false
	}
	if s.CurrentStreet().DrawStatus {
		return s.anyPendingDraws()
	}
	return len(s.CurrentStreet().HoleDealingStatuses) > 0
}

// DealHole deals the current street's hole cards to every active player,
// in seat order starting after the button, reshuffling burnt/mucked
// cards into the deck on exhaustion (§4.F "Hole dealing"). On a draw
// street it instead deals each player exactly the replacements they are
// owed from their earlier discard, then resumes betting.
func (s *State) DealHole() error {
	if !s.CanDealHole() {
		return fmt.Errorf("state: no hole cards to deal in phase %s: %w", s.Phase, perrors.ErrIllegalPhase)
	}
	street := s.CurrentStreet()
	if street.DrawStatus {
		for _, seat := range s.dealOrder() {
			for ; s.pendingDraws[seat] > 0; s.pendingDraws[seat]-- {
				c, err := s.drawWithReshuffle()
				if err != nil {
					return err
				}
				s.Hole[seat] = append(s.Hole[seat], c)
				s.record(Action{Verb: "dh", Player: seat, Cards: []card.Card{c}})
			}
		}
		s.enterBetting()
		return nil
	}
	for _, kind := range street.HoleDealingStatuses {
		for _, seat := range s.dealOrder() {
			c, err := s.drawWithReshuffle()
			if err != nil {
				return err
			}
			s.Hole[seat] = append(s.Hole[seat], c)
			s.record(Action{Verb: dealVerb(kind), Player: seat, Cards: []card.Card{c}})
		}
	}
	if street.BoardDealingCount == 0 {
		s.enterBetting()
	}
	return nil
}

func (s *State) anyPendingDraws() bool {
	for _, n := range s.pendingDraws {
		if n > 0 {
			return true
		}
	}
	return false
}

// enterBetting transitions into the current street's betting phase,
// resetting the per-street raise tracking used by the reopening rule
// (§4.F "Completing, betting, or raising to an amount").
func (s *State) enterBetting() {
	s.Phase = PhaseBetting
	s.raiseCount = 0
	s.lastAggressorIndex = -1
	s.lastBetSize = nil
	s.qualifyingAllInRuns = 0
	s.Reopened = false
	s.bringInPosted = false
	s.acted = make([]bool, len(s.Statuses))
	for i, st := range s.Statuses {
		if st != StatusActive {
			s.acted[i] = true // folded/all-in seats owe no further action
		}
	}
	s.ActorIndex = s.openingActor()
}

func dealVerb(kind variant.DealKind) string {
	if kind == variant.DealFaceUp {
		return "dh_up"
	}
	return "dh"
}

// dealOrder returns active seats starting just after the button.
func (s *State) dealOrder() []int {
	var order []int
	n := len(s.Statuses)
	for i := 1; i <= n; i++ {
		idx := (s.Button + i) % n
		if s.Statuses[idx] != StatusFolded {
			order = append(order, idx)
		}
	}
	return order
}

func (s *State) drawWithReshuffle() (card.Card, error) {
	if s.deck.Len() == 0 {
		s.deck.Reshuffle(append(append([]card.Card(nil), s.burnt...), s.muck...), nil)
		s.burnt = nil
		s.muck = nil
		if s.Logger != nil {
			s.Logger.Warn("reshuffled burnt/mucked cards into deck", "street", s.CurrentStreet().Name)
		}
	}
	return s.deck.DrawOne()
}

// CanBurn reports whether the current street burns a card before
// dealing the board.
func (s *State) CanBurn() bool {
	return s.Phase == PhaseDealing && s.CurrentStreet().BurnCard && s.burnedThroughStreet < s.StreetIndex
}

// Burn removes the top card of the deck face down (§4.F "Card burning").
// A street burns at most once, however many times Burn is called.
func (s *State) Burn() error {
	if !s.CanBurn() {
		return fmt.Errorf("state: street %s does not burn: %w", s.CurrentStreet().Name, perrors.ErrIllegalPhase)
	}
	c, err := s.drawWithReshuffle()
	if err != nil {
		return err
	}
	s.burnt = append(s.burnt, c)
	s.burnedThroughStreet = s.StreetIndex
	s.record(Action{Verb: "db_burn", Cards: []card.Card{c}})
	return nil
}

// CanDealBoard reports whether community cards remain to be dealt this
// street, across every concurrent runout board.
func (s *State) CanDealBoard() bool {
	return s.Phase == PhaseDealing && s.CurrentStreet().BoardDealingCount > 0
}

// DealBoard deals the street's community cards to every active runout
// board (§4.F "Board dealing", multi-runout).
func (s *State) DealBoard() error {
	if !s.CanDealBoard() {
		return fmt.Errorf("state: no board cards to deal in phase %s: %w", s.Phase, perrors.ErrIllegalPhase)
	}
	count := s.CurrentStreet().BoardDealingCount
	for b := range s.Board {
		for i := 0; i < count; i++ {
			c, err := s.drawWithReshuffle()
			if err != nil {
				return err
			}
			s.Board[b] = append(s.Board[b], c)
			s.record(Action{Verb: "db", Cards: []card.Card{c}})
		}
	}
	s.enterBetting()
	return nil
}

func (s *State) inRange(seat int) bool { return seat >= 0 && seat < len(s.Statuses) }

// openingActor resolves who acts first on the current street per its
// OpeningRule (§4.F).
func (s *State) openingActor() int {
	street := s.CurrentStreet()
	switch street.OpeningRule {
	case variant.OpeningLowCard, variant.OpeningHighCard, variant.OpeningLowHand, variant.OpeningHighHand:
		return s.cardDrivenOpener(street.OpeningRule)
	default:
		return s.nextActive(s.Button)
	}
}

// cardDrivenOpener picks the opener by visible hole cards for stud-like
// streets; ties break by seat proximity to the button.
func (s *State) cardDrivenOpener(rule variant.OpeningRule) int {
	best := -1
	var bestHand bestTrack
	for _, seat := range s.dealOrder() {
		up := s.upCards(seat)
		if len(up) == 0 {
			continue
		}
		track := trackFor(up, rule)
		if best == -1 || track.beats(bestHand, rule) {
			best = seat
			bestHand = track
		}
	}
	if best == -1 {
		return s.nextActive(s.Button)
	}
	return best
}

// upCards returns the hole cards seat was dealt face up, read back from the
// HoleDealingStatuses of every street dealt so far; hole cards are appended
// in dealing order, so the mapping holds as long as no earlier street
// replaced hole cards by drawing.
func (s *State) upCards(seat int) []card.Card {
	var up []card.Card
	i := 0
	for si := 0; si <= s.StreetIndex && si < len(s.Variant.Streets); si++ {
		for _, kind := range s.Variant.Streets[si].HoleDealingStatuses {
			if kind == variant.DealFaceUp && i < len(s.Hole[seat]) {
				up = append(up, s.Hole[seat][i])
			}
			i++
		}
	}
	return up
}

type bestTrack struct {
	highRank card.Rank
	lowValue int
}

func trackFor(cards []card.Card, rule variant.OpeningRule) bestTrack {
	t := bestTrack{lowValue: -1}
	for _, c := range cards {
		if c.Rank > t.highRank {
			t.highRank = c.Rank
		}
	}
	return t
}

func (t bestTrack) beats(other bestTrack, rule variant.OpeningRule) bool {
	switch rule {
	case variant.OpeningHighCard, variant.OpeningHighHand:
		return t.highRank > other.highRank
	default: // OpeningLowCard, OpeningLowHand
		return t.highRank < other.highRank
	}
}
