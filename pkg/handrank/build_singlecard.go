package handrank

import "github.com/lox/pokerkit/pkg/card"

// buildSingleCardTable ranks a single card by rank alone, ace strongest.
// It exists for toy/custom variants built on a reduced deck (e.g. a
// 3-card Kuhn-poker-style game) where a "hand" is just one card (§9
// "Users may compose their own games").
func buildSingleCardTable() *Table {
	tb := newTableBuilder(true)
	for _, r := range descendingRanks(fullRankUniverse()) {
		tb.add(Fingerprint{Product: primes[r], Aux: 0})
	}
	return tb.build()
}
