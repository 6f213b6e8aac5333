package handrank

import "github.com/lox/pokerkit/pkg/card"

// Family names a hand family with its own lookup table (§4.C). Low
// families set LowToHigh. The ace-to-five and badugi low tables are built
// with the best low hand at rank 0; deuce-to-seven reuses the standard
// high table, and hand.Hand inverts its comparator for it instead of
// inverting the stored dense rank.
type Family struct {
	Name       string
	Table      *Table
	LowToHigh  bool
	MinCards   int
	MaxCards   int
	// Qualifies, when non-nil, reports whether cards form a legal entry
	// for this family at all (§4.D "Families that can fail to form").
	Qualifies func(cards []card.Card) bool
}

var (
	standardHighTable *Table
	shortDeckTable    *Table
	eightLowTable     *Table
	regularLowTable   *Table
	badugiTable       *Table
	standardBadugi    *Table
	singleCardTable   *Table
)

func init() {
	standardHighTable = buildHighTable(fullRankUniverse(), false)
	shortDeckTable = buildHighTable(shortDeckRankUniverse(), true)
	eightLowTable = buildLowTable(eightOrBetterUniverse(), false)
	regularLowTable = buildLowTable(fullRankUniverse(), true)
	badugiTable = buildBadugiTable(1)
	standardBadugi = buildBadugiTable(4)
	singleCardTable = buildSingleCardTable()
}

func shortDeckRankUniverse() []card.Rank {
	ranks := make([]card.Rank, 0, 9)
	for r := card.Six; r <= card.Ace; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

func eightOrBetterUniverse() []card.Rank {
	return []card.Rank{card.Ace, card.Two, card.Three, card.Four, card.Five, card.Six, card.Seven, card.Eight}
}

// StandardHigh is the ordinary 52-card high-hand family. Dense rank 0 is
// the royal flush. Deuce-to-seven lowball reuses this table with LowToHigh
// set (§4.C "low families ... invert the comparator"), since a 2-7 hand is
// judged by exactly the same category hierarchy, just preferring the
// weakest standard hand.
func StandardHigh() Family {
	return Family{Name: "standard", Table: standardHighTable, MinCards: 5, MaxCards: 5}
}

// DeuceToSevenLow is StandardHigh with the comparator inverted: the
// nominally "weakest" standard poker hand (no pair, no straight, no
// flush, ace playing high) is the strongest 2-7 low hand.
func DeuceToSevenLow() Family {
	f := StandardHigh()
	f.Name = "deuce_to_seven"
	f.LowToHigh = true
	return f
}

// ShortDeck is the 36-card (Six..Ace) high-hand family, where a flush
// outranks a full house (§4.D).
func ShortDeck() Family {
	return Family{Name: "short_deck", Table: shortDeckTable, MinCards: 5, MaxCards: 5}
}

// EightOrBetterLow is the ace-to-five low family restricted to hands of
// five distinct ranks each Eight or below (§4.C, §4.D). from_cards/
// from_game return "no hand" when the qualifier is not met.
func EightOrBetterLow() Family {
	return Family{
		Name:      "eight_or_better",
		Table:     eightLowTable,
		LowToHigh: true,
		MinCards:  5, MaxCards: 5,
		Qualifies: EightOrBetterQualifies,
	}
}

// RegularAceLow is the unqualified ace-to-five low family used by games
// like razz: any five cards, straights and flushes ignored, ace always
// low, pairs permitted but unfavorable.
func RegularAceLow() Family {
	return Family{Name: "regular_ace_low", Table: regularLowTable, LowToHigh: true, MinCards: 5, MaxCards: 5}
}

// Badugi is the 1-4 card off-suit, off-rank low family: more qualifying
// cards beats fewer, ties broken ace-to-five low (§4.C, §4.D).
func Badugi() Family {
	return Family{
		Name: "badugi", Table: badugiTable, LowToHigh: true,
		MinCards: 1, MaxCards: 4,
		Qualifies: IsBadugi,
	}
}

// StandardBadugi only recognizes complete 4-card badugis: it has no
// fallback to a smaller qualifying subset.
func StandardBadugi() Family {
	return Family{
		Name: "standard_badugi", Table: standardBadugi, LowToHigh: true,
		MinCards: 4, MaxCards: 4,
		Qualifies: IsBadugi,
	}
}

// SingleCardHigh ranks a lone card by rank, ace strongest. It backs toy
// variants built on a reduced deck where a "hand" is one card (§4.E
// custom variants).
func SingleCardHigh() Family {
	return Family{Name: "single_card_high", Table: singleCardTable, MinCards: 1, MaxCards: 1}
}
