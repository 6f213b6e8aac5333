package variant

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerkit/pkg/chip"
	"github.com/lox/pokerkit/pkg/hand"
	"github.com/lox/pokerkit/pkg/handrank"
)

// variantFile is the HCL schema for a user-composed variant (§4.E "Users
// may compose their own games"): one `variant` block per file.
type variantFile struct {
	Variant variantBlock `hcl:"variant,block"`
}

type variantBlock struct {
	Code             string        `hcl:"code,label"`
	Name             string        `hcl:"name"`
	Deck             string        `hcl:"deck,optional"`
	BettingStructure string        `hcl:"betting_structure"`
	StudLike         bool          `hcl:"stud_like,optional"`
	HandFamilies     []familyBlock `hcl:"hand_family,block"`
	Streets          []streetBlock `hcl:"street,block"`
}

type familyBlock struct {
	Name       string `hcl:"name,label"`
	Projection string `hcl:"projection,optional"`
	HoleCount  int    `hcl:"hole_count,optional"`
	BoardCount int    `hcl:"board_count,optional"`
}

type streetBlock struct {
	Name              string `hcl:"name,label"`
	BurnCard          bool   `hcl:"burn_card,optional"`
	HoleCardsDown     int    `hcl:"hole_cards_down,optional"`
	HoleCardsUp       int    `hcl:"hole_cards_up,optional"`
	BoardDealingCount int    `hcl:"board_cards,optional"`
	DrawStatus        bool   `hcl:"draw,optional"`
	OpeningRule       string `hcl:"opening_rule,optional"`
	MinBet            int64  `hcl:"min_bet"`
	BringIn           int64  `hcl:"bring_in,optional"`
	MaxRaiseCount     int    `hcl:"max_raises,optional"`
}

// LoadFile parses an HCL file into a Variant (§4.E, §6 "Configuration
// hooks"). Amounts are decoded as Int64 chips; callers needing Decimal
// stakes should build the Variant by hand instead.
func LoadFile(path string) (Variant, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Variant{}, fmt.Errorf("variant: parse %s: %s", path, diags.Error())
	}

	var vf variantFile
	if diags := gohcl.DecodeBody(file.Body, nil, &vf); diags.HasErrors() {
		return Variant{}, fmt.Errorf("variant: decode %s: %s", path, diags.Error())
	}
	return vf.Variant.toVariant()
}

func (b variantBlock) toVariant() (Variant, error) {
	v := Variant{Code: b.Code, Name: b.Name, StudLike: b.StudLike}

	switch b.Deck {
	case "", "standard52":
		v.DeckKind = DeckStandard52
	case "short36":
		v.DeckKind = DeckShort36
	default:
		return Variant{}, fmt.Errorf("variant: unknown deck %q", b.Deck)
	}

	switch b.BettingStructure {
	case "no_limit":
		v.BettingStructure = NoLimit
	case "pot_limit":
		v.BettingStructure = PotLimit
	case "fixed_limit":
		v.BettingStructure = FixedLimit
	default:
		return Variant{}, fmt.Errorf("variant: unknown betting_structure %q", b.BettingStructure)
	}

	for _, fb := range b.HandFamilies {
		family, err := lookupFamily(fb.Name)
		if err != nil {
			return Variant{}, err
		}
		proj, err := fb.toProjection()
		if err != nil {
			return Variant{}, err
		}
		v.HandFamilies = append(v.HandFamilies, HandFamilySpec{Family: family, Projection: proj})
	}
	if len(v.HandFamilies) == 0 {
		return Variant{}, fmt.Errorf("variant: %s declares no hand_family blocks", b.Code)
	}

	for _, sb := range b.Streets {
		st, err := sb.toStreet()
		if err != nil {
			return Variant{}, err
		}
		v.Streets = append(v.Streets, st)
	}
	if len(v.Streets) == 0 {
		return Variant{}, fmt.Errorf("variant: %s declares no street blocks", b.Code)
	}

	return v, nil
}

func lookupFamily(name string) (handrank.Family, error) {
	switch name {
	case "standard":
		return handrank.StandardHigh(), nil
	case "short_deck":
		return handrank.ShortDeck(), nil
	case "deuce_to_seven":
		return handrank.DeuceToSevenLow(), nil
	case "eight_or_better":
		return handrank.EightOrBetterLow(), nil
	case "regular_ace_low":
		return handrank.RegularAceLow(), nil
	case "badugi":
		return handrank.Badugi(), nil
	case "standard_badugi":
		return handrank.StandardBadugi(), nil
	case "single_card_high":
		return handrank.SingleCardHigh(), nil
	default:
		return handrank.Family{}, fmt.Errorf("variant: unknown hand_family %q", name)
	}
}

func (fb familyBlock) toProjection() (hand.GameProjection, error) {
	switch fb.Projection {
	case "", "best_of":
		return hand.BestOf, nil
	case "hole_only":
		return hand.HoleOnly, nil
	case "fixed":
		if fb.HoleCount == 0 && fb.BoardCount == 0 {
			return hand.Omaha, nil
		}
		return hand.GameProjection{Kind: hand.ProjectionFixed, HoleCount: fb.HoleCount, BoardCount: fb.BoardCount}, nil
	default:
		return hand.GameProjection{}, fmt.Errorf("variant: unknown projection %q", fb.Projection)
	}
}

func (sb streetBlock) toStreet() (Street, error) {
	st := Street{
		Name:              sb.Name,
		BurnCard:          sb.BurnCard,
		BoardDealingCount: sb.BoardDealingCount,
		DrawStatus:        sb.DrawStatus,
		MinBet:            chip.Int64(sb.MinBet),
		BringIn:           chip.Int64(sb.BringIn),
	}
	for i := 0; i < sb.HoleCardsDown; i++ {
		st.HoleDealingStatuses = append(st.HoleDealingStatuses, DealFaceDown)
	}
	for i := 0; i < sb.HoleCardsUp; i++ {
		st.HoleDealingStatuses = append(st.HoleDealingStatuses, DealFaceUp)
	}
	if sb.MaxRaiseCount > 0 {
		st.MaxRaiseCount = intPtr(sb.MaxRaiseCount)
	}

	switch sb.OpeningRule {
	case "", "position":
		st.OpeningRule = OpeningPosition
	case "low_card":
		st.OpeningRule = OpeningLowCard
	case "high_card":
		st.OpeningRule = OpeningHighCard
	case "low_hand":
		st.OpeningRule = OpeningLowHand
	case "high_hand":
		st.OpeningRule = OpeningHighHand
	default:
		return Street{}, fmt.Errorf("variant: unknown opening_rule %q", sb.OpeningRule)
	}
	return st, nil
}
