// Package notation implements the PHH-shaped textual action codec and
// hand-history bundle of §4.G: every state.Action a State recorded renders
// to a single line of the teacher's "<actor> <verb> [args]" notation, and a
// full hand's actions bundle into a HandHistory encodable as TOML.
// ParseAction reads such lines back, but the rendering drops some detail:
// a burn ("db_burn") renders as a bare "d db" and a face-up hole deal
// ("dh_up") as "d dh", so they parse back as "db" without cards and as
// "dh", and a "cc" line carries no amount.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/pokerkit/pkg/card"
	"github.com/lox/pokerkit/pkg/chip"
	"github.com/lox/pokerkit/pkg/perrors"
	"github.com/lox/pokerkit/pkg/state"
)

// seatToken renders seat as the 1-indexed "pN" player token the notation
// uses, or "d" for the dealer's own actions (dealing, burning).
func seatToken(a state.Action) string {
	if a.Player < 0 {
		return "d"
	}
	return fmt.Sprintf("p%d", a.Player+1)
}

func cardsToken(cards []card.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}

// FormatAction renders one recorded state.Action as a single PHH-style
// notation line, e.g. "p1 cbr 6", "d dh p1 AhKh", "p2 f" (§4.G).
func FormatAction(a state.Action) string {
	actor := seatToken(a)
	switch a.Verb {
	case "dh", "dh_up":
		return fmt.Sprintf("d dh p%d %s", a.Player+1, cardsToken(a.Cards))
	case "db":
		if len(a.Cards) == 0 {
			return "d db"
		}
		return fmt.Sprintf("d db %s", cardsToken(a.Cards))
	case "db_burn":
		return "d db"
	case "sd":
		return fmt.Sprintf("%s sd %s", actor, cardsToken(a.Cards))
	case "pb":
		return fmt.Sprintf("%s pb %s", actor, a.Amount)
	case "f":
		return fmt.Sprintf("%s f", actor)
	case "cc":
		return fmt.Sprintf("%s cc", actor)
	case "cbr":
		return fmt.Sprintf("%s cbr %s", actor, a.Amount)
	case "sm":
		return fmt.Sprintf("%s sm %s", actor, cardsToken(a.Cards))
	case "sm_muck":
		return fmt.Sprintf("%s sm -", actor)
	default:
		return fmt.Sprintf("# %s %s", actor, a.Verb)
	}
}

// FormatActions renders a full action history as notation lines, in order.
func FormatActions(history []state.Action) []string {
	lines := make([]string, 0, len(history))
	for _, a := range history {
		lines = append(lines, FormatAction(a))
	}
	return lines
}

// ParseAction parses one notation line back into its verb, seat (-1 for
// the dealer), amount, and cards. parseValue converts the numeric token
// using the same chip representation the originating State used; callers
// with an Int64-backed hand can pass chip.ParseInt64.
func ParseAction(line string, parseValue chip.ParseValue) (state.Action, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) < 2 {
		return state.Action{}, fmt.Errorf("notation: malformed action line %q: %w", line, perrors.ErrParse)
	}
	actor, verb := fields[0], fields[1]
	seat := -1
	if actor != "d" {
		n, err := strconv.Atoi(strings.TrimPrefix(actor, "p"))
		if err != nil {
			return state.Action{}, fmt.Errorf("notation: bad actor token %q: %w", actor, perrors.ErrParse)
		}
		seat = n - 1
	}

	switch verb {
	case "dh":
		// "d dh pN <cards>"
		if len(fields) < 4 {
			return state.Action{}, fmt.Errorf("notation: malformed dh line %q: %w", line, perrors.ErrParse)
		}
		n, err := strconv.Atoi(strings.TrimPrefix(fields[2], "p"))
		if err != nil {
			return state.Action{}, fmt.Errorf("notation: bad dh seat token %q: %w", fields[2], perrors.ErrParse)
		}
		cards, err := card.Parse(fields[3])
		if err != nil {
			return state.Action{}, err
		}
		return state.Action{Verb: "dh", Player: n - 1, Cards: cards}, nil
	case "db":
		var cards []card.Card
		if len(fields) > 2 {
			var err error
			cards, err = card.Parse(fields[2])
			if err != nil {
				return state.Action{}, err
			}
		}
		return state.Action{Verb: "db", Player: -1, Cards: cards}, nil
	case "sd":
		cards, err := parseOptionalCards(fields, 2)
		if err != nil {
			return state.Action{}, err
		}
		return state.Action{Verb: "sd", Player: seat, Cards: cards}, nil
	case "pb":
		amount, err := parseAmount(fields, 2, parseValue)
		if err != nil {
			return state.Action{}, err
		}
		return state.Action{Verb: "pb", Player: seat, Amount: amount}, nil
	case "f":
		return state.Action{Verb: "f", Player: seat}, nil
	case "cc":
		return state.Action{Verb: "cc", Player: seat}, nil
	case "cbr":
		amount, err := parseAmount(fields, 2, parseValue)
		if err != nil {
			return state.Action{}, err
		}
		return state.Action{Verb: "cbr", Player: seat, Amount: amount}, nil
	case "sm":
		if len(fields) > 2 && fields[2] == "-" {
			return state.Action{Verb: "sm_muck", Player: seat}, nil
		}
		cards, err := parseOptionalCards(fields, 2)
		if err != nil {
			return state.Action{}, err
		}
		return state.Action{Verb: "sm", Player: seat, Cards: cards}, nil
	default:
		return state.Action{}, fmt.Errorf("notation: unknown verb %q in line %q: %w", verb, line, perrors.ErrParse)
	}
}

func parseOptionalCards(fields []string, idx int) ([]card.Card, error) {
	if idx >= len(fields) {
		return nil, nil
	}
	return card.Parse(fields[idx])
}

func parseAmount(fields []string, idx int, parseValue chip.ParseValue) (chip.Number, error) {
	if idx >= len(fields) {
		return nil, fmt.Errorf("notation: missing amount: %w", perrors.ErrParse)
	}
	if parseValue == nil {
		parseValue = chip.ParseInt64
	}
	return parseValue(fields[idx])
}
