package handrank

import "github.com/lox/pokerkit/pkg/card"

// buildBadugiTable builds the badugi family table (§4.C): hands of
// minCount..4 cards, all distinct ranks, ace low, ranked first by card
// count (more cards beats fewer) and then by ascending low-value within a
// count. The "badugi" family (minCount=1) lets from_cards/from_game fall
// back to a smaller qualifying subset when a full 4-card badugi cannot be
// formed; the "standard badugi" family (minCount=4) only recognizes
// complete 4-card badugis.
func buildBadugiTable(minCount int) *Table {
	tb := newTableBuilder(true)
	universe := ascendingByLowValue(fullRankUniverse())

	for count := 4; count >= minCount; count-- {
		combinations(universe, count, func(combo []card.Rank) {
			tb.add(Fingerprint{Product: RankProduct(combo), Aux: count})
		})
	}
	return tb.build()
}

func fullRankUniverse() []card.Rank {
	ranks := make([]card.Rank, 0, 13)
	for r := card.Two; r <= card.Ace; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// IsBadugi reports whether cards are pairwise distinct in both rank and
// suit, the structural legality check for a badugi-family hand (§4.D).
func IsBadugi(cards []card.Card) bool {
	ranks := map[card.Rank]bool{}
	suits := map[card.Suit]bool{}
	for _, c := range cards {
		if ranks[c.Rank] || suits[c.Suit] {
			return false
		}
		ranks[c.Rank] = true
		suits[c.Suit] = true
	}
	return true
}
