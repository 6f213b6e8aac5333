// Package state implements the variant-parametric poker state machine of
// §4.F: a phase-driven automaton exposing can_X/verify_X/X operation
// triples over ante posting, blind posting, dealing, betting, standing
// pat/discarding, showdown, and chip settlement. A State owns all of a
// hand's mutable state and can be cloned in O(state size).
package state

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerkit/pkg/card"
	"github.com/lox/pokerkit/pkg/chip"
	"github.com/lox/pokerkit/pkg/deck"
	"github.com/lox/pokerkit/pkg/perrors"
	"github.com/lox/pokerkit/pkg/variant"
)

// Phase names where a State is within a single hand's lifecycle.
type Phase int

const (
	PhaseAnteBlind Phase = iota
	PhaseDealing
	PhaseDrawing
	PhaseBetting
	PhaseShowdown
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseAnteBlind:
		return "ante_blind"
	case PhaseDealing:
		return "dealing"
	case PhaseDrawing:
		return "drawing"
	case PhaseBetting:
		return "betting"
	case PhaseShowdown:
		return "showdown"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// PlayerStatus is a player's participation state within the current hand.
type PlayerStatus int

const (
	StatusActive PlayerStatus = iota
	StatusFolded
	StatusAllIn
)

// OptionalInt is a nominated value that may be absent, used for
// RunoutSelectorStatuses (§3 Dynamic fields, §9 Open Question (a)).
type OptionalInt struct {
	Value int
	Set   bool
}

// Pot is one layer of the hand's pot (main or side), with the seats
// eligible to win it (§4.F "Chips pushing").
type Pot struct {
	Amount   chip.Number
	Eligible []int
}

// State is the full mutable state of one hand (§3 "State").
type State struct {
	Variant variant.Variant

	deck  *deck.Deck
	burnt []card.Card
	muck  []card.Card

	Board [][]card.Card // one board per concurrent runout (§4.F "multi-runout"); index 0 is primary
	Hole  [][]card.Card // per-player hole cards

	Stacks      []chip.Number
	Bets        []chip.Number // uncollected bets this betting round
	Contributed []chip.Number // total ever put into the pot by each seat, across the whole hand
	Statuses    []PlayerStatus

	Pots []Pot

	Button      int
	StreetIndex int
	ActorIndex  int

	raiseCount          int
	lastBetSize         chip.Number
	lastAggressorIndex  int
	qualifyingAllInRuns int
	Reopened            bool
	burnedThroughStreet int
	acted               []bool // per-seat: has this seat acted since the last bet/raise on the current street

	bringInPosted bool // whether this street's bring-in has already been posted (§4.F "Bring-in posting")

	drawActed    []bool // per-seat: has this seat stood pat/discarded on the current drawing phase
	pendingDraws []int  // per-seat: replacement cards still owed from a discard, dealt on the next hole-dealing pass
	discarded    []card.Card

	showdownOrder []int
	showdownPos   int

	RunoutSelectorStatuses []OptionalInt
	resolvedRunoutCount    int

	Ante             chip.Number
	AnteTrimmingFlag bool // §3 static fields: trims short antes' drag on full-stacked payers (§4.F "Ante posting")
	anteContributions []chip.Number

	DivMod chip.DivMod
	Rake   chip.Rake

	RakeCap        chip.Number
	RakePercentage float64
	NoFlopNoDrop   bool
	TotalRaked     chip.Number

	Phase Phase

	Logger *log.Logger

	history []Action
}

// Action records one applied operation, for replay/notation round-trips
// (§4.G).
type Action struct {
	Verb   string
	Player int
	Amount chip.Number
	Cards  []card.Card
}

// Config bundles the construction-time parameters of New (§4.F).
type Config struct {
	Variant variant.Variant
	Stacks  []chip.Number
	Button  int
	Ante    chip.Number
	Deck    *deck.Deck // pre-shuffled; if nil, built from Variant.BuildDeck with no shuffle (deterministic tests)
	DivMod  chip.DivMod
	Rake    chip.Rake
	Logger  *log.Logger

	// AnteTrimmingFlag toggles ante trimming (§3, §4.F "Ante posting");
	// nil defaults to enabled.
	AnteTrimmingFlag *bool

	// RakeCap, RakePercentage, and NoFlopNoDrop are passed straight
	// through to Rake on every pot at showdown (§6 Configuration hooks).
	RakeCap        chip.Number
	RakePercentage float64
	NoFlopNoDrop   bool
}

// New constructs a State ready for ante/blind posting (§4.F). Players are
// seated 0..len(Stacks)-1; Button is the seat index of the dealer button.
func New(cfg Config) (*State, error) {
	if len(cfg.Stacks) < 2 {
		return nil, fmt.Errorf("state: need at least 2 players, got %d: %w", len(cfg.Stacks), perrors.ErrInvalidArgument)
	}
	n := len(cfg.Stacks)

	d := cfg.Deck
	if d == nil {
		d = deck.New(cfg.Variant.BuildDeck(), nil)
	}

	divMod := cfg.DivMod
	if divMod == nil {
		divMod = chip.Int64DivMod
	}
	rake := cfg.Rake
	if rake == nil {
		rake = chip.NoRake
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ante := cfg.Ante
	if ante == nil {
		ante = zeroLike(cfg.Stacks[0])
	}

	trimAntes := true
	if cfg.AnteTrimmingFlag != nil {
		trimAntes = *cfg.AnteTrimmingFlag
	}

	rakeCap := cfg.RakeCap
	if rakeCap == nil {
		rakeCap = zeroLike(cfg.Stacks[0])
	}

	s := &State{
		Variant:  cfg.Variant,
		deck:     d,
		Board:    [][]card.Card{nil},
		Hole:     make([][]card.Card, n),
		Stacks:   append([]chip.Number(nil), cfg.Stacks...),
		Bets:        make([]chip.Number, n),
		Contributed: make([]chip.Number, n),
		Statuses:    make([]PlayerStatus, n),
		anteContributions: make([]chip.Number, n),
		Pots:     []Pot{{Amount: zeroLike(cfg.Stacks[0]), Eligible: allSeats(n)}},
		Button:   cfg.Button % n,
		Ante:     ante,
		AnteTrimmingFlag: trimAntes,
		DivMod:   divMod,
		Rake:     rake,
		RakeCap:        rakeCap,
		RakePercentage: cfg.RakePercentage,
		NoFlopNoDrop:   cfg.NoFlopNoDrop,
		TotalRaked:     zeroLike(cfg.Stacks[0]),
		Logger:   logger,
		Phase:    PhaseAnteBlind,
		lastAggressorIndex: -1,
		burnedThroughStreet: -1,
	}
	for i := range s.Bets {
		s.Bets[i] = zeroLike(cfg.Stacks[0])
		s.Contributed[i] = zeroLike(cfg.Stacks[0])
	}
	s.ActorIndex = s.nextActive(s.Button)
	return s, nil
}

func allSeats(n int) []int {
	seats := make([]int, n)
	for i := range seats {
		seats[i] = i
	}
	return seats
}

func zeroLike(n chip.Number) chip.Number { return n.MulScalar(0) }

// NumPlayers returns the number of seats at the table.
func (s *State) NumPlayers() int { return len(s.Stacks) }

// CurrentStreet returns the street descriptor the state machine is
// currently executing.
func (s *State) CurrentStreet() variant.Street {
	return s.Variant.Streets[s.StreetIndex]
}

// ActivePlayers returns the seat indices still in the hand (not folded).
func (s *State) ActivePlayers() []int {
	var out []int
	for i, st := range s.Statuses {
		if st != StatusFolded {
			out = append(out, i)
		}
	}
	return out
}

func (s *State) nextActive(from int) int {
	n := len(s.Statuses)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if s.Statuses[idx] == StatusActive {
			return idx
		}
	}
	return from
}

// Clone returns a deep copy of s, O(state size), for speculative playout
// or branching simulation (§5 "Cloning is O(state size) and explicitly
// supported").
func (s *State) Clone() *State {
	clone := *s
	clone.deck = s.deck.Clone()
	clone.burnt = append([]card.Card(nil), s.burnt...)
	clone.muck = append([]card.Card(nil), s.muck...)

	clone.Board = make([][]card.Card, len(s.Board))
	for i, b := range s.Board {
		clone.Board[i] = append([]card.Card(nil), b...)
	}
	clone.Hole = make([][]card.Card, len(s.Hole))
	for i, h := range s.Hole {
		clone.Hole[i] = append([]card.Card(nil), h...)
	}
	clone.Stacks = append([]chip.Number(nil), s.Stacks...)
	clone.Bets = append([]chip.Number(nil), s.Bets...)
	clone.Contributed = append([]chip.Number(nil), s.Contributed...)
	clone.Statuses = append([]PlayerStatus(nil), s.Statuses...)
	clone.Pots = append([]Pot(nil), s.Pots...)
	for i := range clone.Pots {
		clone.Pots[i].Eligible = append([]int(nil), s.Pots[i].Eligible...)
	}
	clone.RunoutSelectorStatuses = append([]OptionalInt(nil), s.RunoutSelectorStatuses...)
	clone.acted = append([]bool(nil), s.acted...)
	clone.drawActed = append([]bool(nil), s.drawActed...)
	clone.pendingDraws = append([]int(nil), s.pendingDraws...)
	clone.discarded = append([]card.Card(nil), s.discarded...)
	clone.showdownOrder = append([]int(nil), s.showdownOrder...)
	clone.anteContributions = append([]chip.Number(nil), s.anteContributions...)
	clone.history = append([]Action(nil), s.history...)
	return &clone
}

// History returns the sequence of operations applied to this state so
// far, in order (§4.G "hand-history bundle").
func (s *State) History() []Action { return append([]Action(nil), s.history...) }

func (s *State) record(a Action) { s.history = append(s.history, a) }

// TotalChips sums every player's stack, every uncollected bet, every pot
// layer, and everything raked so far (§3 Invariants "Chip conservation"),
// so rake does not change it. Antes posted during PhaseAnteBlind are not
// counted until BeginDealing collects them into the pot.
func (s *State) TotalChips() chip.Number {
	total := zeroLike(s.Stacks[0])
	for _, st := range s.Stacks {
		total = total.Add(st)
	}
	for _, b := range s.Bets {
		total = total.Add(b)
	}
	for _, p := range s.Pots {
		total = total.Add(p.Amount)
	}
	total = total.Add(s.TotalRaked)
	return total
}
