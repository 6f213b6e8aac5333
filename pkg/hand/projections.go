package hand

import (
	"github.com/lox/pokerkit/pkg/card"
	"github.com/lox/pokerkit/pkg/handrank"
)

// Projection names how a family draws its 5 (or, for badugi, up to 4)
// cards from hole and board cards (§4.D "from_game").
type Projection int

const (
	// ProjectionBestOf picks the best 5-card combination from hole∪board
	// (standard hold'em, razz, 7-card stud, short-deck).
	ProjectionBestOf Projection = iota
	// ProjectionFixed picks exactly HoleCount hole cards and
	// BoardCount board cards (Omaha, Omaha hi-lo, Courchevel, Greek
	// hold'em all use a fixed split, just with different counts).
	ProjectionFixed
	// ProjectionHoleOnly ignores the board entirely (badugi, 2-7 draw
	// games where the board is always empty).
	ProjectionHoleOnly
)

// GameProjection describes how a family draws its cards for a given
// variant (§4.D, §4.E).
type GameProjection struct {
	Kind      Projection
	HoleCount int // used only when Kind == ProjectionFixed
	BoardCount int // used only when Kind == ProjectionFixed
}

// BestOf is the standard hold'em/stud projection: best 5 of hole∪board.
var BestOf = GameProjection{Kind: ProjectionBestOf}

// HoleOnly ignores the board (badugi, draw games).
var HoleOnly = GameProjection{Kind: ProjectionHoleOnly}

// Omaha is the classic Omaha projection: exactly 2 hole + 3 board.
var Omaha = GameProjection{Kind: ProjectionFixed, HoleCount: 2, BoardCount: 3}

// Courchevel is dealt like Omaha but with one board card revealed before
// preflop action; the projection itself is identical to Omaha.
var Courchevel = Omaha

// FromGame enumerates every legal projection of family from hole and
// board and returns the strongest one (§4.D "from_game"). ok is false when
// the family can fail to form (e.g. 8-or-better low with no qualifying
// combination); that is not an error, just the "no hand" result §4.D
// describes.
func FromGame(family handrank.Family, hole, board []card.Card, proj GameProjection) (best Hand, ok bool, err error) {
	var candidates [][]card.Card

	switch proj.Kind {
	case ProjectionHoleOnly:
		candidates = subsetsUpTo(hole, family.MinCards, family.MaxCards)
	case ProjectionFixed:
		combinationsOfCards(hole, proj.HoleCount, func(h []card.Card) {
			combinationsOfCards(board, proj.BoardCount, func(b []card.Card) {
				combo := append(append([]card.Card(nil), h...), b...)
				candidates = append(candidates, combo)
			})
		})
	default: // ProjectionBestOf
		all := append(append([]card.Card(nil), hole...), board...)
		candidates = subsetsUpTo(all, family.MinCards, family.MaxCards)
	}

	found := false
	for _, combo := range candidates {
		h, ferr := FromCards(family, combo)
		if ferr != nil {
			continue
		}
		if !found || h.Stronger(best) {
			best = h
			found = true
		}
	}
	if !found {
		return Hand{}, false, nil
	}
	return best, true, nil
}

// combinationsOfCards yields every k-length subsequence of cards.
func combinationsOfCards(cards []card.Card, k int, f func(combo []card.Card)) {
	n := len(cards)
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]card.Card, k)
		for i, j := range idx {
			combo[i] = cards[j]
		}
		f(combo)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// subsetsUpTo returns every combination of cards of size min..max, largest
// first, so that badugi's "prefer more qualifying cards" rule is naturally
// satisfied by FromGame's strongest-wins scan (ties within a size are
// broken by Hand.Stronger).
func subsetsUpTo(cards []card.Card, min, max int) [][]card.Card {
	var out [][]card.Card
	if max > len(cards) {
		max = len(cards)
	}
	for k := max; k >= min; k-- {
		combinationsOfCards(cards, k, func(combo []card.Card) {
			out = append(out, append([]card.Card(nil), combo...))
		})
	}
	return out
}
