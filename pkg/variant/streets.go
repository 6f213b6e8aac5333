package variant

import "github.com/lox/pokerkit/pkg/chip"

// OpeningRule picks who acts first on a street (§4.F "Bring-in posting",
// "Blind/straddle posting"). Flop-style streets always use Position;
// stud-like streets use one of the card-driven rules.
type OpeningRule int

const (
	// OpeningPosition is the standard "first active player left of the
	// button/dealer" rule used by flop games and draw games alike.
	OpeningPosition OpeningRule = iota
	// OpeningLowCard opens on the player showing the lowest card
	// (7-card stud's bring-in street).
	OpeningLowCard
	// OpeningHighCard opens on the player showing the highest card
	// (7-card stud's post-bring-in streets).
	OpeningHighCard
	// OpeningLowHand opens on the player showing the best low hand so
	// far (razz and other ace-to-five low stud streets).
	OpeningLowHand
	// OpeningHighHand opens on the player showing the best high hand so
	// far (stud hi-lo's non-bring-in streets, by showing cards).
	OpeningHighHand
)

// DealKind describes one card dealt to a player on a street (§4.F "Hole
// dealing").
type DealKind int

const (
	DealFaceDown DealKind = iota
	DealFaceUp
)

// Street is one phase of community/hole card dealing and betting (§4.E).
type Street struct {
	Name string

	BurnCard bool

	// HoleDealingStatuses has one entry per hole card dealt to each
	// player this street, face-up or face-down (stud deals a mix; draw
	// games redeal via DrawStatus instead).
	HoleDealingStatuses []DealKind

	BoardDealingCount int // community cards revealed this street

	// DrawStatus marks a street where players may discard and redraw
	// instead of (or before) betting (§4.F "Standing pat or discarding").
	DrawStatus bool

	OpeningRule OpeningRule

	// MinBet is this street's fixed bet size in a fixed-limit game, or
	// the minimum opening bet in pot-limit/no-limit games.
	MinBet chip.Number

	// BringIn is the partial forced bet a stud-like street's opener posts
	// instead of checking for free; zero means the street has no bring-in
	// (§4.F "Bring-in posting"). The opener may instead complete straight
	// to MinBet via CompleteBetOrRaiseTo.
	BringIn chip.Number

	// MaxRaiseCount caps the number of bets, bring-in completions and
	// raises this street permits, the opening bet counting as one; nil
	// means unlimited (typical for no-limit/pot-limit).
	MaxRaiseCount *int
}

func intPtr(n int) *int { return &n }
