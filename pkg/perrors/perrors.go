// Package perrors defines the error kinds shared across pokerkit's packages.
//
// Each kind is a sentinel that callers match with errors.Is; the concrete
// error returned from a verifier always wraps one of these so that
// can_X-style queries can collapse any failure to a boolean with a single
// errors.As/errors.Is check instead of string matching.
package perrors

import "errors"

// Kind identifies the broad category of a pokerkit error.
type Kind int

const (
	// KindParse covers malformed card, action, or numeric literals.
	KindParse Kind = iota
	// KindInvalidArgument covers operation arguments that contradict the
	// current state (wrong actor, amount below min-raise, and so on).
	KindInvalidArgument
	// KindIllegalPhase covers an operation invoked in a phase that does
	// not offer it.
	KindIllegalPhase
	// KindInvalidHand covers cards that cannot form a legal hand for the
	// requested family.
	KindInvalidHand
	// KindDeckExhausted covers a draw that cannot be satisfied even after
	// reshuffling the muck, burn, and discard piles.
	KindDeckExhausted
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindIllegalPhase:
		return "illegal_phase"
	case KindInvalidHand:
		return "invalid_hand"
	case KindDeckExhausted:
		return "deck_exhausted"
	default:
		return "unknown"
	}
}

// Sentinel values for errors.Is. Wrap one of these with fmt.Errorf("...: %w", ...)
// to attach a human-readable message while keeping the kind matchable.
var (
	ErrParse           = errors.New("pokerkit: parse error")
	ErrInvalidArgument = errors.New("pokerkit: invalid argument")
	ErrIllegalPhase    = errors.New("pokerkit: illegal phase")
	ErrInvalidHand     = errors.New("pokerkit: invalid hand")
	ErrDeckExhausted   = errors.New("pokerkit: deck exhausted")
)

// Sentinel returns the sentinel error for k.
func Sentinel(k Kind) error {
	switch k {
	case KindParse:
		return ErrParse
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindIllegalPhase:
		return ErrIllegalPhase
	case KindInvalidHand:
		return ErrInvalidHand
	case KindDeckExhausted:
		return ErrDeckExhausted
	default:
		return nil
	}
}

// Is reports whether err was produced by this package with the given kind.
func Is(err error, k Kind) bool {
	return errors.Is(err, Sentinel(k))
}
