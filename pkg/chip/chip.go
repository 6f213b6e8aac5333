// Package chip implements the numeric chip abstraction of §6 and §9
// ("Numeric polymorphism"): a Number interface that every amount flowing
// through a state machine implements, plus the pluggable DivMod, Rake, and
// ParseValue hooks. Mixing numeric representations within a single State is
// not supported; the state package does not check for it, and the
// arithmetic and ordering methods type-assert their operand and panic on a
// mismatch.
package chip

import (
	"fmt"
)

// Number is the interface every chip amount in a State implements.
// Comparisons are explicit via Less/Equal.
type Number interface {
	fmt.Stringer

	// Add returns n + other.
	Add(other Number) Number
	// Sub returns n - other.
	Sub(other Number) Number
	// MulScalar returns n * k.
	MulScalar(k int64) Number
	// Less reports whether n < other.
	Less(other Number) bool
	// Equal reports whether n == other.
	Equal(other Number) bool
	// IsZero reports whether n == 0.
	IsZero() bool
	// Unbounded reports whether n is the sentinel for an unbounded stack
	// (§6 "Unknown starting stack is represented by positive infinity").
	Unbounded() bool
}

// DivMod splits amount evenly among n winners, returning each winner's
// share and the remainder ("odd chips") left over. The state package's
// chips-pushing operation (§4.F) awards the remainder to the winner most
// out of position; DivMod itself is representation-agnostic and only
// divides.
type DivMod func(amount Number, n int) (share Number, remainder Number)

// Rake computes the amount to remove from a pot before it is split, given
// the pot amount, an optional cap, a no-flop-no-drop flag, and a
// percentage in [0,1] (§6 Configuration hooks).
type Rake func(potAmount Number, cap Number, noFlopNoDrop bool, percentage float64) Number

// ParseValue parses a raw numeric literal into a Number of the same
// representation used elsewhere in a State (§6 Configuration hooks).
type ParseValue func(raw string) (Number, error)

// NoRake is a Rake hook that always takes nothing, the default when no
// rake schedule is configured (§1 Non-goals: "No automatic rake schedules
// beyond a pluggable hook").
func NoRake(potAmount Number, cap Number, noFlopNoDrop bool, percentage float64) Number {
	return potAmount.MulScalar(0)
}
