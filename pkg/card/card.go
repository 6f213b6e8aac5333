// Package card implements the card model of section 4.A: ranks, suits, the
// unknown placeholder, and the textual parse/format codec.
package card

import (
	"fmt"
	"strings"

	"github.com/lox/pokerkit/pkg/perrors"
)

// Rank is a card rank, two through ace. RankUnknown is the sentinel used
// when a card's rank has not been revealed.
type Rank int8

const (
	RankUnknown Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Known reports whether r is a concrete rank rather than RankUnknown.
func (r Rank) Known() bool { return r != RankUnknown }

// Suit is a card suit. SuitUnknown is the sentinel used when a card's suit
// has not been revealed.
type Suit int8

const (
	SuitUnknown Suit = iota
	Spades
	Hearts
	Diamonds
	Clubs
)

func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Known reports whether s is a concrete suit rather than SuitUnknown.
func (s Suit) Known() bool { return s != SuitUnknown }

// Card is a (rank, suit) pair. Either or both components may be the unknown
// sentinel: Known{rank,suit}, PartiallyKnown{rank|suit}, and Unknown (§9)
// are all represented by the same struct, distinguished by the Known*
// predicates below rather than by a type hierarchy.
type Card struct {
	Rank Rank
	Suit Suit
}

// Unknown is the fully-unknown card, `??` in notation.
var Unknown = Card{Rank: RankUnknown, Suit: SuitUnknown}

// FullyKnown reports whether both rank and suit are known.
func (c Card) FullyKnown() bool { return c.Rank.Known() && c.Suit.Known() }

// FullyUnknown reports whether both rank and suit are unknown.
func (c Card) FullyUnknown() bool { return !c.Rank.Known() && !c.Suit.Known() }

// String renders the card as two characters, e.g. "Ah", "?s", "T?", "??".
func (c Card) String() string {
	rs := c.Rank.String()
	ss := c.Suit.String()
	return rs + ss
}

// Equal reports structural equality, including on unknown components.
func (c Card) Equal(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

func rankFromByte(b byte) (Rank, bool) {
	switch b {
	case '2':
		return Two, true
	case '3':
		return Three, true
	case '4':
		return Four, true
	case '5':
		return Five, true
	case '6':
		return Six, true
	case '7':
		return Seven, true
	case '8':
		return Eight, true
	case '9':
		return Nine, true
	case 'T', 't':
		return Ten, true
	case 'J', 'j':
		return Jack, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	case 'A', 'a':
		return Ace, true
	case '?':
		return RankUnknown, true
	default:
		return RankUnknown, false
	}
}

func suitFromByte(b byte) (Suit, bool) {
	switch b {
	case 's', 'S':
		return Spades, true
	case 'h', 'H':
		return Hearts, true
	case 'd', 'D':
		return Diamonds, true
	case 'c', 'C':
		return Clubs, true
	case '?':
		return SuitUnknown, true
	default:
		return SuitUnknown, false
	}
}

// Parse splits s into 2-character tokens and returns the decoded cards.
// "10" and "T" both mean ten; "?" on either side of a token denotes an
// unknown rank or suit. A malformed token returns a perrors.ErrParse error.
func Parse(s string) ([]Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var cards []Card
	i := 0
	for i < len(s) {
		rankLen := 1
		if i+1 < len(s) && s[i] == '1' && s[i+1] == '0' {
			rankLen = 2
		}
		if i+rankLen >= len(s) {
			return nil, fmt.Errorf("card: truncated token at offset %d: %w", i, perrors.ErrParse)
		}

		var rank Rank
		var ok bool
		if rankLen == 2 {
			rank, ok = Ten, true
		} else {
			rank, ok = rankFromByte(s[i])
		}
		if !ok {
			return nil, fmt.Errorf("card: invalid rank %q at offset %d: %w", s[i], i, perrors.ErrParse)
		}

		suitIdx := i + rankLen
		suit, ok := suitFromByte(s[suitIdx])
		if !ok {
			return nil, fmt.Errorf("card: invalid suit %q at offset %d: %w", s[suitIdx], suitIdx, perrors.ErrParse)
		}

		cards = append(cards, Card{Rank: rank, Suit: suit})
		i = suitIdx + 1
	}
	return cards, nil
}

// ParseOne parses exactly one card and errors if s does not contain exactly
// one token.
func ParseOne(s string) (Card, error) {
	cs, err := Parse(s)
	if err != nil {
		return Card{}, err
	}
	if len(cs) != 1 {
		return Card{}, fmt.Errorf("card: expected exactly one card in %q: %w", s, perrors.ErrParse)
	}
	return cs[0], nil
}

// Format renders cards back-to-back with no separator, the inverse of Parse.
func Format(cards []Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
