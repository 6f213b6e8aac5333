package handrank

import "github.com/lox/pokerkit/pkg/card"

// primes maps a rank (card.Two..card.Ace, i.e. 1..13) to the prime used in
// its fingerprint contribution, the classic Cactus Kev scheme referenced by
// §4.C ("the product of per-rank primes").
var primes = [14]int64{
	0,  // unused: RankUnknown
	2,  // Two
	3,  // Three
	5,  // Four
	7,  // Five
	11, // Six
	13, // Seven
	17, // Eight
	19, // Nine
	23, // Ten
	29, // Jack
	31, // Queen
	37, // King
	41, // Ace
}

// Fingerprint is the canonical key for a 5-card (or, for badugi, 1-4 card)
// combination: the product of its ranks' primes, plus an auxiliary
// discriminator. Aux carries the suit-uniformity flag (0/1) for the
// families that care about flushes, or the card count for families (like
// badugi) whose legal hands vary in size.
type Fingerprint struct {
	Product int64
	Aux     int
}

// RankProduct computes the prime product of ranks. Ranks may repeat (for
// families that allow pairs/trips/quads).
func RankProduct(ranks []card.Rank) int64 {
	var product int64 = 1
	for _, r := range ranks {
		product *= primes[r]
	}
	return product
}

// SuitsUniform reports whether every card shares the same suit (a flush).
func SuitsUniform(cards []card.Card) bool {
	if len(cards) == 0 {
		return false
	}
	first := cards[0].Suit
	for _, c := range cards[1:] {
		if c.Suit != first {
			return false
		}
	}
	return true
}

// FingerprintOf builds the fingerprint for cards, with aux supplied by the
// caller (flush flag, or card count).
func FingerprintOf(cards []card.Card, aux int) Fingerprint {
	ranks := make([]card.Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	return Fingerprint{Product: RankProduct(ranks), Aux: aux}
}
