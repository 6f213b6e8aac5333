package handrank

import "github.com/lox/pokerkit/pkg/card"

// buildHighTable builds a standard-style 5-card table over the given
// ordered rank universe (52-card: Two..Ace; short-deck: Six..Ace, §4.E),
// categorized strongest to weakest. flushBeatsFullHouse reorders Flush
// above Full House, the short-deck override named in §4.D.
func buildHighTable(universe []card.Rank, flushBeatsFullHouse bool) *Table {
	tb := newTableBuilder(false)
	desc := descendingRanks(universe)

	straightHighs := buildStraightHighs(universe)
	straightRanks := func(high card.Rank) []card.Rank {
		return straightRunRanks(universe, high)
	}

	addStraightFlushes := func() {
		for _, high := range straightHighs {
			ranks := straightRanks(high)
			tb.add(Fingerprint{Product: RankProduct(ranks), Aux: 1})
		}
	}
	addFourOfAKind := func() {
		for _, quad := range desc {
			for _, kicker := range without(desc, quad) {
				ranks := []card.Rank{quad, quad, quad, quad, kicker}
				tb.add(Fingerprint{Product: RankProduct(ranks), Aux: 0})
			}
		}
	}
	addFullHouse := func() {
		for _, trip := range desc {
			for _, pair := range without(desc, trip) {
				ranks := []card.Rank{trip, trip, trip, pair, pair}
				tb.add(Fingerprint{Product: RankProduct(ranks), Aux: 0})
			}
		}
	}
	isStraightCombo := func(combo []card.Rank) bool {
		sum := int64(0)
		for _, r := range combo {
			sum += int64(r)
		}
		for _, high := range straightHighs {
			ranks := straightRanks(high)
			s2 := int64(0)
			for _, r := range ranks {
				s2 += int64(r)
			}
			if sum == s2 {
				match := true
				seen := map[card.Rank]bool{}
				for _, r := range ranks {
					seen[r] = true
				}
				for _, r := range combo {
					if !seen[r] {
						match = false
						break
					}
				}
				if match {
					return true
				}
			}
		}
		return false
	}
	addFlush := func() {
		combinations(desc, 5, func(combo []card.Rank) {
			if isStraightCombo(combo) {
				return
			}
			tb.add(Fingerprint{Product: RankProduct(combo), Aux: 1})
		})
	}
	addStraight := func() {
		for _, high := range straightHighs {
			ranks := straightRanks(high)
			tb.add(Fingerprint{Product: RankProduct(ranks), Aux: 0})
		}
	}
	addThreeOfAKind := func() {
		for _, trip := range desc {
			rest := without(desc, trip)
			combinations(rest, 2, func(kickers []card.Rank) {
				ranks := []card.Rank{trip, trip, trip, kickers[0], kickers[1]}
				tb.add(Fingerprint{Product: RankProduct(ranks), Aux: 0})
			})
		}
	}
	addTwoPair := func() {
		combinations(desc, 2, func(pairs []card.Rank) {
			rest := without(desc, pairs[0], pairs[1])
			for _, kicker := range rest {
				ranks := []card.Rank{pairs[0], pairs[0], pairs[1], pairs[1], kicker}
				tb.add(Fingerprint{Product: RankProduct(ranks), Aux: 0})
			}
		})
	}
	addOnePair := func() {
		for _, pair := range desc {
			rest := without(desc, pair)
			combinations(rest, 3, func(kickers []card.Rank) {
				ranks := []card.Rank{pair, pair, kickers[0], kickers[1], kickers[2]}
				tb.add(Fingerprint{Product: RankProduct(ranks), Aux: 0})
			})
		}
	}
	addHighCard := func() {
		combinations(desc, 5, func(combo []card.Rank) {
			if isStraightCombo(combo) {
				return
			}
			tb.add(Fingerprint{Product: RankProduct(combo), Aux: 0})
		})
	}

	addStraightFlushes()
	addFourOfAKind()
	if flushBeatsFullHouse {
		addFlush()
		addFullHouse()
	} else {
		addFullHouse()
		addFlush()
	}
	addStraight()
	addThreeOfAKind()
	addTwoPair()
	addOnePair()
	addHighCard()

	return tb.build()
}

// buildStraightHighs returns every straight's high rank, strongest first,
// over a contiguous rank universe (sorted ascending), including the
// ace-low wheel formed from the four lowest ranks plus an ace playing
// below them.
func buildStraightHighs(universe []card.Rank) []card.Rank {
	asc := append([]card.Rank(nil), universe...)
	for i := 0; i < len(asc); i++ {
		for j := i + 1; j < len(asc); j++ {
			if asc[j] < asc[i] {
				asc[i], asc[j] = asc[j], asc[i]
			}
		}
	}
	var highs []card.Rank
	for i := 0; i+4 < len(asc); i++ {
		highs = append(highs, asc[i+4])
	}
	if len(asc) >= 4 {
		wheelHigh := asc[3] // the rank 3 above the lowest, e.g. Five for 2..A, Nine for 6..A
		highs = append(highs, wheelHigh)
	}
	// sort descending
	for i := 0; i < len(highs); i++ {
		for j := i + 1; j < len(highs); j++ {
			if highs[j] > highs[i] {
				highs[i], highs[j] = highs[j], highs[i]
			}
		}
	}
	return highs
}

// straightRunRanks returns the 5 ranks making up the straight with the
// given high rank, handling the ace-low wheel specially.
func straightRunRanks(universe []card.Rank, high card.Rank) []card.Rank {
	asc := append([]card.Rank(nil), universe...)
	for i := 0; i < len(asc); i++ {
		for j := i + 1; j < len(asc); j++ {
			if asc[j] < asc[i] {
				asc[i], asc[j] = asc[j], asc[i]
			}
		}
	}
	if len(asc) >= 4 && high == asc[3] {
		return []card.Rank{card.Ace, asc[0], asc[1], asc[2], asc[3]}
	}
	ranks := make([]card.Rank, 5)
	for i := 0; i < 5; i++ {
		ranks[i] = high - card.Rank(4-i)
	}
	return ranks
}
