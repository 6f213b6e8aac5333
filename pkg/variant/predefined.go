package variant

import (
	"github.com/lox/pokerkit/pkg/card"
	"github.com/lox/pokerkit/pkg/chip"
	"github.com/lox/pokerkit/pkg/hand"
	"github.com/lox/pokerkit/pkg/handrank"
)

func holeDown(n int) []DealKind {
	ds := make([]DealKind, n)
	for i := range ds {
		ds[i] = DealFaceDown
	}
	return ds
}

func holeUp(n int) []DealKind {
	ds := make([]DealKind, n)
	for i := range ds {
		ds[i] = DealFaceUp
	}
	return ds
}

// NoLimitTexasHoldem is the standard 2-hole-card, 5-board-card high game
// with no-limit betting (§4.E).
func NoLimitTexasHoldem() Variant {
	return Variant{
		Code:     "NT",
		Name:     "No-Limit Texas Hold'em",
		DeckKind: DeckStandard52,
		HandFamilies: []HandFamilySpec{
			{Family: handrank.StandardHigh(), Projection: hand.BestOf},
		},
		Streets: []Street{
			{Name: "preflop", HoleDealingStatuses: holeDown(2), OpeningRule: OpeningPosition, MinBet: chip.Int64(1)},
			{Name: "flop", BurnCard: true, BoardDealingCount: 3, OpeningRule: OpeningPosition, MinBet: chip.Int64(1)},
			{Name: "turn", BurnCard: true, BoardDealingCount: 1, OpeningRule: OpeningPosition, MinBet: chip.Int64(1)},
			{Name: "river", BurnCard: true, BoardDealingCount: 1, OpeningRule: OpeningPosition, MinBet: chip.Int64(1)},
		},
		BettingStructure: NoLimit,
	}
}

// FixedLimitTexasHoldem is NoLimitTexasHoldem with fixed-limit betting: the
// first two streets bet in "small bet" units, the last two in "big bet"
// (double) units, each street capped at four bets and raises in all, the
// opening bet included (§4.E, §6).
func FixedLimitTexasHoldem() Variant {
	v := NoLimitTexasHoldem()
	v.Code = "FT"
	v.Name = "Fixed-Limit Texas Hold'em"
	v.BettingStructure = FixedLimit
	v.Streets[0].MaxRaiseCount = intPtr(4)
	v.Streets[1].MaxRaiseCount = intPtr(4)
	v.Streets[2].MinBet = chip.Int64(2)
	v.Streets[2].MaxRaiseCount = intPtr(4)
	v.Streets[3].MinBet = chip.Int64(2)
	v.Streets[3].MaxRaiseCount = intPtr(4)
	return v
}

// PotLimitTexasHoldem is NoLimitTexasHoldem with pot-limit betting.
func PotLimitTexasHoldem() Variant {
	v := NoLimitTexasHoldem()
	v.Code = "PT"
	v.Name = "Pot-Limit Texas Hold'em"
	v.BettingStructure = PotLimit
	return v
}

// NoLimitShortDeckHoldem is Texas Hold'em dealt off a 36-card deck (Six
// through Ace) where a flush outranks a full house (§4.B, §4.D).
func NoLimitShortDeckHoldem() Variant {
	v := NoLimitTexasHoldem()
	v.Code = "NS"
	v.Name = "No-Limit Short-Deck Hold'em"
	v.DeckKind = DeckShort36
	v.HandFamilies = []HandFamilySpec{{Family: handrank.ShortDeck(), Projection: hand.BestOf}}
	return v
}

// RoyalHoldem deals Texas Hold'em off the 20-card Ten-through-Ace deck.
func RoyalHoldem() Variant {
	v := NoLimitTexasHoldem()
	v.Code = "NRT"
	v.Name = "Royal Hold'em"
	v.DeckKind = DeckCustom
	v.Deck = royalDeck()
	return v
}

func royalDeck() []card.Card {
	cards := make([]card.Card, 0, 20)
	for _, s := range []card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs} {
		for r := card.Ten; r <= card.Ace; r++ {
			cards = append(cards, card.Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// PotLimitOmaha deals 4 hole cards, high hand only, fixed 2+3 projection
// (§4.D, §4.E).
func PotLimitOmaha() Variant {
	return Variant{
		Code:     "PO",
		Name:     "Pot-Limit Omaha",
		DeckKind: DeckStandard52,
		HandFamilies: []HandFamilySpec{
			{Family: handrank.StandardHigh(), Projection: hand.Omaha},
		},
		Streets: []Street{
			{Name: "preflop", HoleDealingStatuses: holeDown(4), OpeningRule: OpeningPosition, MinBet: chip.Int64(1)},
			{Name: "flop", BurnCard: true, BoardDealingCount: 3, OpeningRule: OpeningPosition, MinBet: chip.Int64(1)},
			{Name: "turn", BurnCard: true, BoardDealingCount: 1, OpeningRule: OpeningPosition, MinBet: chip.Int64(1)},
			{Name: "river", BurnCard: true, BoardDealingCount: 1, OpeningRule: OpeningPosition, MinBet: chip.Int64(1)},
		},
		BettingStructure: PotLimit,
	}
}

// PotLimitOmahaHiLo splits the pot between the best Omaha high hand and
// the best qualifying (8-or-better) Omaha low hand (§4.E "split-pot
// variants").
func PotLimitOmahaHiLo() Variant {
	v := PotLimitOmaha()
	v.Code = "FO/8"
	v.Name = "Omaha Hi-Lo (8 or Better)"
	v.HandFamilies = append(v.HandFamilies, HandFamilySpec{Family: handrank.EightOrBetterLow(), Projection: hand.Omaha})
	return v
}

// Courchevel deals like Omaha but flips one board card before preflop
// action, with the flop street then completing the 3-card flop instead
// of dealing it whole; the hand family and projection are identical to
// Omaha (§4.E).
func Courchevel() Variant {
	v := PotLimitOmaha()
	v.Code = "PC"
	v.Name = "Courchevel"
	v.Streets[0].BoardDealingCount = 1 // the pre-flop card, dealt alongside hole cards
	v.Streets[1].BoardDealingCount = 2 // completes the 3-card flop
	return v
}

// FixedLimitSevenCardStud deals 2 down, 1 up, then three more up streets
// and a final down card, best-of-7 high hand, bring-in opens the third
// street by lowest shown card (§4.E, §4.F).
func FixedLimitSevenCardStud() Variant {
	return Variant{
		Code:     "F7S",
		Name:     "Fixed-Limit Seven Card Stud",
		DeckKind: DeckStandard52,
		StudLike: true,
		HandFamilies: []HandFamilySpec{
			{Family: handrank.StandardHigh(), Projection: hand.BestOf},
		},
		Streets: []Street{
			{Name: "third_street", HoleDealingStatuses: append(holeDown(2), DealFaceUp), OpeningRule: OpeningLowCard, MinBet: chip.Int64(2), BringIn: chip.Int64(1), MaxRaiseCount: intPtr(4)},
			{Name: "fourth_street", BurnCard: true, HoleDealingStatuses: holeUp(1), OpeningRule: OpeningHighCard, MinBet: chip.Int64(2), MaxRaiseCount: intPtr(4)},
			{Name: "fifth_street", BurnCard: true, HoleDealingStatuses: holeUp(1), OpeningRule: OpeningHighCard, MinBet: chip.Int64(4), MaxRaiseCount: intPtr(4)},
			{Name: "sixth_street", BurnCard: true, HoleDealingStatuses: holeUp(1), OpeningRule: OpeningHighCard, MinBet: chip.Int64(4), MaxRaiseCount: intPtr(4)},
			{Name: "seventh_street", BurnCard: true, HoleDealingStatuses: holeDown(1), OpeningRule: OpeningHighCard, MinBet: chip.Int64(4), MaxRaiseCount: intPtr(4)},
		},
		BettingStructure: FixedLimit,
	}
}

// FixedLimitSevenCardStudHiLo8 splits the pot between the best 7-card
// high hand and the best qualifying 8-or-better low.
func FixedLimitSevenCardStudHiLo8() Variant {
	v := FixedLimitSevenCardStud()
	v.Code = "F7S/8"
	v.Name = "Seven Card Stud Hi-Lo (8 or Better)"
	v.HandFamilies = append(v.HandFamilies, HandFamilySpec{Family: handrank.EightOrBetterLow(), Projection: hand.BestOf})
	return v
}

// FixedLimitRazz is Seven Card Stud scored entirely by ace-to-five low,
// no qualifier, bring-in opens on the highest shown card (worst for low).
func FixedLimitRazz() Variant {
	v := FixedLimitSevenCardStud()
	v.Code = "FR"
	v.Name = "Fixed-Limit Razz"
	v.HandFamilies = []HandFamilySpec{{Family: handrank.RegularAceLow(), Projection: hand.BestOf}}
	v.Streets[0].OpeningRule = OpeningHighCard
	for i := 1; i < len(v.Streets); i++ {
		v.Streets[i].OpeningRule = OpeningLowHand
	}
	return v
}

// FixedLimitDeuceToSevenTripleDraw deals 5 hole cards face down and
// offers a draw before each of three post-deal betting rounds, scored by
// 2-7 low (§4.E, §4.F "Standing pat or discarding").
func FixedLimitDeuceToSevenTripleDraw() Variant {
	return Variant{
		Code:     "F2L3D",
		Name:     "Fixed-Limit 2-7 Triple Draw",
		DeckKind: DeckStandard52,
		HandFamilies: []HandFamilySpec{
			{Family: handrank.DeuceToSevenLow(), Projection: hand.HoleOnly},
		},
		Streets: []Street{
			{Name: "predraw", HoleDealingStatuses: holeDown(5), OpeningRule: OpeningPosition, MinBet: chip.Int64(1), MaxRaiseCount: intPtr(4)},
			{Name: "first_draw", DrawStatus: true, OpeningRule: OpeningPosition, MinBet: chip.Int64(1), MaxRaiseCount: intPtr(4)},
			{Name: "second_draw", DrawStatus: true, OpeningRule: OpeningPosition, MinBet: chip.Int64(2), MaxRaiseCount: intPtr(4)},
			{Name: "third_draw", DrawStatus: true, OpeningRule: OpeningPosition, MinBet: chip.Int64(2), MaxRaiseCount: intPtr(4)},
		},
		BettingStructure: FixedLimit,
	}
}

// NoLimitDeuceToSevenSingleDraw is the single-draw, no-limit sibling of
// FixedLimitDeuceToSevenTripleDraw.
func NoLimitDeuceToSevenSingleDraw() Variant {
	return Variant{
		Code:     "N2L1D",
		Name:     "No-Limit 2-7 Single Draw",
		DeckKind: DeckStandard52,
		HandFamilies: []HandFamilySpec{
			{Family: handrank.DeuceToSevenLow(), Projection: hand.HoleOnly},
		},
		Streets: []Street{
			{Name: "predraw", HoleDealingStatuses: holeDown(5), OpeningRule: OpeningPosition, MinBet: chip.Int64(1)},
			{Name: "draw", DrawStatus: true, OpeningRule: OpeningPosition, MinBet: chip.Int64(1)},
		},
		BettingStructure: NoLimit,
	}
}

// FixedLimitBadugi deals 4 hole cards and offers a draw before each of
// three post-deal betting rounds, scored by the badugi family (§4.C,
// §4.E).
func FixedLimitBadugi() Variant {
	return Variant{
		Code:     "FB",
		Name:     "Fixed-Limit Badugi",
		DeckKind: DeckStandard52,
		HandFamilies: []HandFamilySpec{
			{Family: handrank.Badugi(), Projection: hand.HoleOnly},
		},
		Streets: []Street{
			{Name: "predraw", HoleDealingStatuses: holeDown(4), OpeningRule: OpeningPosition, MinBet: chip.Int64(1), MaxRaiseCount: intPtr(4)},
			{Name: "first_draw", DrawStatus: true, OpeningRule: OpeningPosition, MinBet: chip.Int64(1), MaxRaiseCount: intPtr(4)},
			{Name: "second_draw", DrawStatus: true, OpeningRule: OpeningPosition, MinBet: chip.Int64(2), MaxRaiseCount: intPtr(4)},
			{Name: "third_draw", DrawStatus: true, OpeningRule: OpeningPosition, MinBet: chip.Int64(2), MaxRaiseCount: intPtr(4)},
		},
		BettingStructure: FixedLimit,
	}
}

// Kuhn is the 3-card, 2-player toy game (Jack, Queen, King of one suit,
// one card dealt face down to each player, a single bet with no raises), a
// tractable exhaustive case.
func Kuhn() Variant {
	deck := []card.Card{
		{Rank: card.Jack, Suit: card.Spades},
		{Rank: card.Queen, Suit: card.Spades},
		{Rank: card.King, Suit: card.Spades},
	}
	return Variant{
		Code:     "KUHN",
		Name:     "Kuhn Poker",
		DeckKind: DeckCustom,
		Deck:     deck,
		HandFamilies: []HandFamilySpec{
			{Family: handrank.SingleCardHigh(), Projection: hand.HoleOnly},
		},
		Streets: []Street{
			{Name: "deal", HoleDealingStatuses: holeDown(1), OpeningRule: OpeningPosition, MinBet: chip.Int64(1), MaxRaiseCount: intPtr(1)},
		},
		BettingStructure: FixedLimit,
	}
}
