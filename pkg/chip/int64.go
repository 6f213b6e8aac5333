package chip

import (
	"fmt"
	"math"
)

// Int64 is the 64-bit integer chip representation required at minimum by
// §6 ("Numeric types"). UnboundedInt64 is its sentinel for an unknown/
// unbounded starting stack.
type Int64 int64

// UnboundedInt64 is the largest representable int64, acting as an
// unbounded cap (§6 "Unknown starting stack is represented by ... the
// largest representable value acting as an unbounded cap").
const UnboundedInt64 Int64 = math.MaxInt64

func (n Int64) String() string {
	if n.Unbounded() {
		return "∞"
	}
	return fmt.Sprintf("%d", int64(n))
}

func (n Int64) Add(other Number) Number {
	o := other.(Int64)
	if n.Unbounded() || o.Unbounded() {
		return UnboundedInt64
	}
	return n + o
}

func (n Int64) Sub(other Number) Number {
	o := other.(Int64)
	if n.Unbounded() {
		return UnboundedInt64
	}
	return n - o
}

func (n Int64) MulScalar(k int64) Number {
	if n.Unbounded() {
		return UnboundedInt64
	}
	return n * Int64(k)
}

func (n Int64) Less(other Number) bool {
	o := other.(Int64)
	if o.Unbounded() && !n.Unbounded() {
		return true
	}
	if n.Unbounded() {
		return false
	}
	return n < o
}

func (n Int64) Equal(other Number) bool {
	o, ok := other.(Int64)
	return ok && n == o
}

func (n Int64) IsZero() bool { return n == 0 }

func (n Int64) Unbounded() bool { return n == UnboundedInt64 }

// Int64DivMod is the default floor-division DivMod hook for Int64 chips
// (§4.F "Chips pushing": "Default: integer floor division with the
// remainder ... awarded to the winner most out of position").
func Int64DivMod(amount Number, n int) (share Number, remainder Number) {
	a := amount.(Int64)
	if n <= 0 {
		return Int64(0), a
	}
	q := a / Int64(n)
	r := a % Int64(n)
	return q, r
}

// ParseInt64 implements ParseValue for Int64 chips.
func ParseInt64(raw string) (Number, error) {
	var v int64
	if _, err := fmt.Sscanf(raw, "%d", &v); err != nil {
		return nil, fmt.Errorf("chip: invalid integer %q: %w", raw, err)
	}
	return Int64(v), nil
}
