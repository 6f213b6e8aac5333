// Package hand implements the typed Hand wrapper and its constructors of
// §4.D: from_cards validates and ranks a concrete card set; from_game
// enumerates the family's legal projections from hole+board and returns
// the strongest one.
package hand

import (
	"fmt"

	"github.com/lox/pokerkit/pkg/card"
	"github.com/lox/pokerkit/pkg/handrank"
	"github.com/lox/pokerkit/pkg/perrors"
)

// Hand is a typed wrapper over a specific card tuple plus a family tag; it
// carries the dense rank computed at construction (§3 "Hand").
type Hand struct {
	Family handrank.Family
	Cards  []card.Card
	rank   int
}

// Rank returns the dense rank within the hand's family; 0 is always the
// strongest hand in a high family, but see Less for the comparison rule
// that accounts for low families.
func (h Hand) Rank() int { return h.rank }

// Less reports whether h is strictly stronger than other. Both must be the
// same family. Deuce-to-seven low reuses the standard high table, so for
// that family the comparison is inverted (§3, §4.C) rather than the stored
// dense rank negated; every other family's table, the ace-to-five and
// badugi low tables included, gives its strongest hand rank 0.
func (h Hand) Less(other Hand) bool {
	if h.Family.LowToHigh && h.Family.Name == "deuce_to_seven" {
		return h.rank > other.rank
	}
	return h.rank < other.rank
}

// Stronger reports whether h beats other outright (no tie).
func (h Hand) Stronger(other Hand) bool {
	return h.Less(other)
}

// Equal reports whether h and other have identical dense rank within the
// same family (a tie).
func (h Hand) Equal(other Hand) bool {
	return h.Family.Name == other.Family.Name && h.rank == other.rank
}

// FromCards validates that cards form a legal instance of family and
// computes its rank (§4.D "from_cards"). Badugi-style families accept any
// count between Family.MinCards and Family.MaxCards that are pairwise
// distinct in rank and suit; other families require an exact count.
func FromCards(family handrank.Family, cards []card.Card) (Hand, error) {
	if len(cards) < family.MinCards || len(cards) > family.MaxCards {
		return Hand{}, fmt.Errorf("hand: %s requires %d-%d cards, got %d: %w",
			family.Name, family.MinCards, family.MaxCards, len(cards), perrors.ErrInvalidHand)
	}
	for _, c := range cards {
		if !c.FullyKnown() {
			return Hand{}, fmt.Errorf("hand: %s cannot rank an unknown card: %w", family.Name, perrors.ErrInvalidHand)
		}
	}
	if family.Qualifies != nil && !family.Qualifies(cards) {
		return Hand{}, fmt.Errorf("hand: cards do not qualify for %s: %w", family.Name, perrors.ErrInvalidHand)
	}

	aux := 0
	if family.MinCards != family.MaxCards {
		aux = len(cards) // badugi: aux carries the count
	} else if family.Name == "standard" || family.Name == "deuce_to_seven" || family.Name == "short_deck" {
		aux = boolToInt(handrank.SuitsUniform(cards))
	}

	fp := handrank.FingerprintOf(cards, aux)
	rank, ok := family.Table.Lookup(fp)
	if !ok {
		return Hand{}, fmt.Errorf("hand: no legal %s hand for %v: %w", family.Name, cards, perrors.ErrInvalidHand)
	}
	return Hand{Family: family, Cards: append([]card.Card(nil), cards...), rank: rank}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
