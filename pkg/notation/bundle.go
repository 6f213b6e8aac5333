package notation

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/coder/quartz"

	"github.com/lox/pokerkit/pkg/chip"
	"github.com/lox/pokerkit/pkg/perrors"
	"github.com/lox/pokerkit/pkg/state"
)

// HandHistory is a single completed hand in PHH-shaped form, ready to TOML
// encode (§4.G "hand-history bundle"). Numeric fields hold each chip
// value's own String rendering, so their format follows the originating
// chip representation (plain integers for Int64 chips).
type HandHistory struct {
	Variant           string         `toml:"variant"`
	Table             string         `toml:"table,omitempty"`
	SeatCount         int            `toml:"seat_count,omitempty"`
	Seats             []int          `toml:"seats,omitempty"`
	Antes             []string       `toml:"antes"`
	BlindsOrStraddles []string       `toml:"blinds_or_straddles"`
	MinBet            string         `toml:"min_bet"`
	StartingStacks    []string       `toml:"starting_stacks"`
	FinishingStacks   []string       `toml:"finishing_stacks,omitempty"`
	Actions           []string       `toml:"actions"`
	Players           []string       `toml:"players,omitempty"`
	HandID            string         `toml:"hand"`
	Time              string         `toml:"time,omitempty"`
	TimeZone          string         `toml:"time_zone,omitempty"`
	Day               int            `toml:"day,omitempty"`
	Month             int            `toml:"month,omitempty"`
	Year              int            `toml:"year,omitempty"`
	Metadata          map[string]any `toml:"metadata,omitempty"`

	Timestamp time.Time `toml:"-"`
}

// BundleConfig names the table-level context a State doesn't itself track
// (player identities, table name) needed to render a full HandHistory.
type BundleConfig struct {
	Table   string
	HandID  string
	Players []string
	Blinds  []chip.Number // per-seat blinds/straddles posted before dealing, in seat order
	Clock   quartz.Clock  // defaults to quartz.NewReal()
}

// BuildHandHistory renders s's recorded action history, antes, the blinds
// named in cfg, and the finishing stacks into a HandHistory bundle (§4.G).
// StartingStacks is left empty. s must be in PhaseComplete; call after
// State.PushChips (or after a fold-ended hand).
func BuildHandHistory(s *state.State, cfg BundleConfig) (*HandHistory, error) {
	if s.Phase != state.PhaseComplete {
		return nil, fmt.Errorf("notation: cannot bundle a hand history before the hand completes: %w", perrors.ErrIllegalPhase)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	now := clock.Now()

	n := s.NumPlayers()
	seats := make([]int, n)
	antes := make([]string, n)
	blinds := make([]string, n)
	finishing := make([]string, n)
	for i := 0; i < n; i++ {
		seats[i] = i + 1
		antes[i] = s.Ante.String()
		finishing[i] = s.Stacks[i].String()
		if i < len(cfg.Blinds) && cfg.Blinds[i] != nil {
			blinds[i] = cfg.Blinds[i].String()
		} else {
			blinds[i] = "0"
		}
	}

	hh := &HandHistory{
		Variant:           s.Variant.Code,
		Table:             cfg.Table,
		SeatCount:         n,
		Seats:             seats,
		Antes:             antes,
		BlindsOrStraddles: blinds,
		MinBet:            s.Variant.Streets[0].MinBet.String(),
		FinishingStacks:   finishing,
		Actions:           FormatActions(s.History()),
		Players:           append([]string(nil), cfg.Players...),
		HandID:            cfg.HandID,
		Time:              now.Format("15:04:05"),
		TimeZone:          now.Location().String(),
		Day:               now.Day(),
		Month:             int(now.Month()),
		Year:              now.Year(),
		Timestamp:         now,
	}
	return hh, nil
}

// Encode writes hh to w in TOML, matching the teacher's tab-indented array
// style (§4.G, §6 "configuration and hand-history files are TOML").
func Encode(w io.Writer, hh *HandHistory) error {
	if hh == nil {
		return fmt.Errorf("notation: hand history is nil: %w", perrors.ErrInvalidArgument)
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hh)
}

// EncodeToBytes encodes hh and returns the result.
func EncodeToBytes(hh *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hh); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a HandHistory back from TOML-encoded r.
func Decode(r io.Reader) (*HandHistory, error) {
	var hh HandHistory
	if _, err := toml.NewDecoder(r).Decode(&hh); err != nil {
		return nil, fmt.Errorf("notation: decode hand history: %w", err)
	}
	return &hh, nil
}

// ParseActions parses every action line in hh back into state.Actions,
// using parseValue to interpret numeric tokens (nil defaults to
// chip.ParseInt64).
func (hh *HandHistory) ParseActions(parseValue chip.ParseValue) ([]state.Action, error) {
	out := make([]state.Action, 0, len(hh.Actions))
	for _, line := range hh.Actions {
		a, err := ParseAction(line, parseValue)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
