// Package variant implements the immutable Variant specification of §4.E:
// deck choice, hand families, per-street parameters, and betting
// structure. Predefined games are factory functions producing Variant
// values (§9 "Variants as values, not classes"); custom variants can also
// be composed by hand or loaded from HCL (hcl.go).
package variant

import (
	"github.com/lox/pokerkit/pkg/card"
	"github.com/lox/pokerkit/pkg/chip"
	"github.com/lox/pokerkit/pkg/hand"
	"github.com/lox/pokerkit/pkg/handrank"
)

// BettingStructure is one of the three betting disciplines §4.E names.
type BettingStructure int

const (
	NoLimit BettingStructure = iota
	PotLimit
	FixedLimit
)

func (b BettingStructure) String() string {
	switch b {
	case NoLimit:
		return "no_limit"
	case PotLimit:
		return "pot_limit"
	case FixedLimit:
		return "fixed_limit"
	default:
		return "unknown"
	}
}

// DeckKind picks one of the predefined decks; Custom decks are supplied
// directly via Variant.Deck instead (§4.B "custom decks are permitted").
type DeckKind int

const (
	DeckStandard52 DeckKind = iota
	DeckShort36
	DeckCustom
)

// HandFamilySpec binds one of a variant's (one or two) hand families to
// the projection it uses to build hands from hole+board cards (§4.D).
type HandFamilySpec struct {
	Family     handrank.Family
	Projection hand.GameProjection
}

// Variant is the immutable bundle of §4.E / §3.
type Variant struct {
	Code string // e.g. "NT", "FT", "PO", "FO/8", "F7S", "FR", "F2L3D", "FB"
	Name string

	DeckKind DeckKind
	Deck     []card.Card // only consulted when DeckKind is a custom value beyond the two predefined kinds

	HandFamilies []HandFamilySpec // one, or two for a high/low split
	Streets      []Street

	BettingStructure BettingStructure

	// StudLike marks variants whose first street resolves its opener via
	// a bring-in rather than blinds (§4.F "Bring-in posting").
	StudLike bool
	// BigBlindAnte marks a big-blind-ante structure (§4.F "Blind/straddle
	// posting"). The state package does not read it: ante trimming runs
	// the same way whether it is set or not.
	BigBlindAnte bool
}

// BuildDeck materializes the variant's deck template (unshuffled).
func (v Variant) BuildDeck() []card.Card {
	switch v.DeckKind {
	case DeckShort36:
		return deckShortDeck36()
	case DeckCustom:
		return append([]card.Card(nil), v.Deck...)
	default:
		return deckStandard52()
	}
}

func deckStandard52() []card.Card {
	cards := make([]card.Card, 0, 52)
	for _, s := range []card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs} {
		for r := card.Two; r <= card.Ace; r++ {
			cards = append(cards, card.Card{Rank: r, Suit: s})
		}
	}
	return cards
}

func deckShortDeck36() []card.Card {
	cards := make([]card.Card, 0, 36)
	for _, s := range []card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs} {
		for r := card.Six; r <= card.Ace; r++ {
			cards = append(cards, card.Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// HighLow reports whether the variant splits its pot between a high and a
// low hand family.
func (v Variant) HighLow() bool { return len(v.HandFamilies) == 2 }

// ZeroChip is the representation-appropriate zero for amounts in this
// variant; callers pick the representation (Int64 vs Decimal) when they
// build the Variant's streets, so Variant itself stays numeric-agnostic
// beyond re-exporting the convenience constant for the common case.
var ZeroChip chip.Number = chip.Int64(0)
