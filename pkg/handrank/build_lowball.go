package handrank

import "github.com/lox/pokerkit/pkg/card"

// lowValue orders ranks ace-low: Ace sorts below Two, matching the
// "regular ace-low" and "8-or-better" families of §4.C where straights and
// flushes are ignored and the ace always plays low.
func lowValue(r card.Rank) int {
	if r == card.Ace {
		return 0
	}
	return int(r)
}

// ascendingByLowValue returns universe sorted so the weakest-possible
// low-hand-building ranks come first (Ace, Two, Three, ... King).
func ascendingByLowValue(universe []card.Rank) []card.Rank {
	out := append([]card.Rank(nil), universe...)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if lowValue(out[j]) < lowValue(out[i]) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

// buildLowTable builds an ace-to-five low table (§4.C "regular ace-low"):
// no straights or flushes count, the ace always plays low, and the best
// hand is five distinct low ranks. allowPairs controls whether paired
// hands are legal entries at all (false implements the 8-or-better
// qualifier's "five distinct ranks" requirement); when allowPairs is false
// universe should already be restricted to the qualifying ranks (Ace..8).
func buildLowTable(universe []card.Rank, allowPairs bool) *Table {
	tb := newTableBuilder(true)
	asc := ascendingByLowValue(universe)

	addNoPair := func() {
		combinations(asc, 5, func(combo []card.Rank) {
			tb.add(Fingerprint{Product: RankProduct(combo), Aux: 0})
		})
	}
	if !allowPairs {
		addNoPair()
		return tb.build()
	}

	addOnePair := func() {
		for _, pair := range asc {
			rest := without(asc, pair)
			combinations(rest, 3, func(kickers []card.Rank) {
				ranks := []card.Rank{pair, pair, kickers[0], kickers[1], kickers[2]}
				tb.add(Fingerprint{Product: RankProduct(ranks), Aux: 0})
			})
		}
	}
	addTwoPair := func() {
		combinations(asc, 2, func(pairs []card.Rank) {
			rest := without(asc, pairs[0], pairs[1])
			for _, kicker := range rest {
				ranks := []card.Rank{pairs[0], pairs[0], pairs[1], pairs[1], kicker}
				tb.add(Fingerprint{Product: RankProduct(ranks), Aux: 0})
			}
		})
	}
	addThreeOfAKind := func() {
		for _, trip := range asc {
			rest := without(asc, trip)
			combinations(rest, 2, func(kickers []card.Rank) {
				ranks := []card.Rank{trip, trip, trip, kickers[0], kickers[1]}
				tb.add(Fingerprint{Product: RankProduct(ranks), Aux: 0})
			})
		}
	}
	addFullHouse := func() {
		for _, trip := range asc {
			for _, pair := range without(asc, trip) {
				ranks := []card.Rank{trip, trip, trip, pair, pair}
				tb.add(Fingerprint{Product: RankProduct(ranks), Aux: 0})
			}
		}
	}
	addFourOfAKind := func() {
		for _, quad := range asc {
			for _, kicker := range without(asc, quad) {
				ranks := []card.Rank{quad, quad, quad, quad, kicker}
				tb.add(Fingerprint{Product: RankProduct(ranks), Aux: 0})
			}
		}
	}

	addNoPair()
	addOnePair()
	addTwoPair()
	addThreeOfAKind()
	addFullHouse()
	addFourOfAKind()

	return tb.build()
}

// EightOrBetterQualifies reports whether cards (exactly 5) satisfy the
// 8-or-better qualifier: five distinct ranks, each Eight or below, ace low.
func EightOrBetterQualifies(cards []card.Card) bool {
	if len(cards) != 5 {
		return false
	}
	seen := map[card.Rank]bool{}
	for _, c := range cards {
		if c.Rank != card.Ace && c.Rank > card.Eight {
			return false
		}
		if seen[c.Rank] {
			return false
		}
		seen[c.Rank] = true
	}
	return true
}
