// Package deck implements the ordered, mutable card sequence of section
// 4.B: draw-from-front, push-back-for-reshuffle, and the standard and
// short-deck builders.
package deck

import (
	"fmt"
	"math/rand"

	"github.com/lox/pokerkit/pkg/card"
	"github.com/lox/pokerkit/pkg/perrors"
)

// Shuffler is the caller-injected source of randomness consumed once at
// deck construction (§4.B, §9 "Deterministic shuffle"). Implementations
// should wrap a seeded math/rand.Rand so tests are reproducible; production
// callers can use rand.New(rand.NewSource(time.Now().UnixNano())).
type Shuffler interface {
	// Shuffle must have the same contract as rand.Rand.Shuffle.
	Shuffle(n int, swap func(i, j int))
}

// Deck is an ordered mutable sequence of cards.
type Deck struct {
	cards []card.Card
}

// Standard52 returns the 52 cards of a standard deck, two through ace,
// in suit-major order. It does not shuffle.
func Standard52() []card.Card {
	cards := make([]card.Card, 0, 52)
	for _, s := range []card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs} {
		for r := card.Two; r <= card.Ace; r++ {
			cards = append(cards, card.Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// ShortDeck36 returns the 36 cards of a short deck, sixes through aces.
func ShortDeck36() []card.Card {
	cards := make([]card.Card, 0, 36)
	for _, s := range []card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs} {
		for r := card.Six; r <= card.Ace; r++ {
			cards = append(cards, card.Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// New materializes a deck from cards and shuffles it in place with source.
// A nil source leaves the order untouched, which is useful for tests that
// want a known deal order.
func New(cards []card.Card, source Shuffler) *Deck {
	d := &Deck{cards: append([]card.Card(nil), cards...)}
	if source != nil {
		source.Shuffle(len(d.cards), func(i, j int) {
			d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
		})
	}
	return d
}

// NewStandard is a convenience constructor for a shuffled standard 52-card
// deck, seeded deterministically by the caller.
func NewStandard(source Shuffler) *Deck {
	return New(Standard52(), source)
}

// NewShortDeck is a convenience constructor for a shuffled 36-card short
// deck, seeded deterministically by the caller.
func NewShortDeck(source Shuffler) *Deck {
	return New(ShortDeck36(), source)
}

// RandSource adapts a math/rand.Rand into a Shuffler.
func RandSource(r *rand.Rand) Shuffler { return r }

// Draw removes n cards from the front of the deck. It fails with
// perrors.ErrDeckExhausted if fewer than n remain.
func (d *Deck) Draw(n int) ([]card.Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("deck: negative draw count %d: %w", n, perrors.ErrInvalidArgument)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("deck: cannot draw %d cards, %d remain: %w", n, len(d.cards), perrors.ErrDeckExhausted)
	}
	drawn := append([]card.Card(nil), d.cards[:n]...)
	d.cards = d.cards[n:]
	return drawn, nil
}

// DrawOne draws a single card.
func (d *Deck) DrawOne() (card.Card, error) {
	cs, err := d.Draw(1)
	if err != nil {
		return card.Card{}, err
	}
	return cs[0], nil
}

// PushBack appends cards to the back of the deck, as when reshuffling
// mucked/burned cards into an exhausted deck.
func (d *Deck) PushBack(cards ...card.Card) {
	d.cards = append(d.cards, cards...)
}

// Contains reports whether c is currently in the deck.
func (d *Deck) Contains(c card.Card) bool {
	for _, existing := range d.cards {
		if existing.Equal(c) {
			return true
		}
	}
	return false
}

// Remove removes the first occurrence of c from the deck, failing with
// perrors.ErrDeckExhausted if c is not present (used for burning or dealing
// an explicitly-named card, §4.F "Card burning").
func (d *Deck) Remove(c card.Card) error {
	for i, existing := range d.cards {
		if existing.Equal(c) {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("deck: card %s not present: %w", c, perrors.ErrDeckExhausted)
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int { return len(d.cards) }

// Reshuffle rebuilds the deck from cards (typically muck+burn+older-street
// discards) and shuffles with source, for use when a draw would otherwise
// exhaust the deck (§4.F "Hole dealing").
func (d *Deck) Reshuffle(cards []card.Card, source Shuffler) {
	d.cards = append([]card.Card(nil), cards...)
	if source != nil {
		source.Shuffle(len(d.cards), func(i, j int) {
			d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
		})
	}
}

// Clone returns a deep copy, used by State.Clone (§5).
func (d *Deck) Clone() *Deck {
	return &Deck{cards: append([]card.Card(nil), d.cards...)}
}

// Cards returns a read-only view of the remaining cards, front first.
func (d *Deck) Cards() []card.Card {
	return append([]card.Card(nil), d.cards...)
}
