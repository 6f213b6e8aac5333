package chip

import (
	"fmt"
	"math/big"
)

// Decimal is the exact-decimal chip representation required at minimum by
// §6 ("Numeric types"), needed for hands like S3 (Antonius/Blom) that settle
// in fractional currency units. It is backed by math/big.Rat rather than a
// float so repeated division (side pots, multi-runout splits) stays exact.
type Decimal struct {
	*big.Rat
	unbounded bool
}

// UnboundedDecimal is the sentinel for an unknown/unbounded starting stack
// in decimal representation.
var UnboundedDecimal = Decimal{Rat: new(big.Rat), unbounded: true}

// NewDecimal builds a Decimal from a float64 literal, e.g. for test fixtures
// like S3's 1259450.25 stacks.
func NewDecimal(f float64) Decimal {
	r := new(big.Rat)
	r.SetFloat64(f)
	return Decimal{Rat: r}
}

// NewDecimalInt builds a Decimal from an integer amount.
func NewDecimalInt(i int64) Decimal {
	return Decimal{Rat: new(big.Rat).SetInt64(i)}
}

func (n Decimal) String() string {
	if n.Unbounded() {
		return "∞"
	}
	f, _ := n.Rat.Float64()
	return fmt.Sprintf("%g", f)
}

func (n Decimal) Add(other Number) Number {
	o := other.(Decimal)
	if n.Unbounded() || o.Unbounded() {
		return UnboundedDecimal
	}
	return Decimal{Rat: new(big.Rat).Add(n.Rat, o.Rat)}
}

func (n Decimal) Sub(other Number) Number {
	o := other.(Decimal)
	if n.Unbounded() {
		return UnboundedDecimal
	}
	return Decimal{Rat: new(big.Rat).Sub(n.Rat, o.Rat)}
}

func (n Decimal) MulScalar(k int64) Number {
	if n.Unbounded() {
		return UnboundedDecimal
	}
	factor := new(big.Rat).SetInt64(k)
	return Decimal{Rat: new(big.Rat).Mul(n.Rat, factor)}
}

func (n Decimal) Less(other Number) bool {
	o := other.(Decimal)
	if o.Unbounded() && !n.Unbounded() {
		return true
	}
	if n.Unbounded() {
		return false
	}
	return n.Rat.Cmp(o.Rat) < 0
}

func (n Decimal) Equal(other Number) bool {
	o, ok := other.(Decimal)
	if !ok {
		return false
	}
	if n.Unbounded() != o.Unbounded() {
		return false
	}
	if n.Unbounded() {
		return true
	}
	return n.Rat.Cmp(o.Rat) == 0
}

func (n Decimal) IsZero() bool { return !n.Unbounded() && n.Rat.Sign() == 0 }

func (n Decimal) Unbounded() bool { return n.unbounded }

// DecimalDivMod divides amount into n equal exact rational shares (§4.F
// "Non-integer chips use exact division"), so the remainder is always
// zero; it is not rounded to any smallest currency unit.
func DecimalDivMod(amount Number, n int) (share Number, remainder Number) {
	a := amount.(Decimal)
	if n <= 0 {
		return NewDecimalInt(0), a
	}
	denom := new(big.Rat).SetInt64(int64(n))
	q := new(big.Rat).Quo(a.Rat, denom)
	total := new(big.Rat).Mul(q, denom)
	r := new(big.Rat).Sub(a.Rat, total)
	return Decimal{Rat: q}, Decimal{Rat: r}
}

// ParseDecimal implements ParseValue for Decimal chips, accepting plain
// decimal literals like "1259450.25".
func ParseDecimal(raw string) (Number, error) {
	r := new(big.Rat)
	if _, ok := r.SetString(raw); !ok {
		return nil, fmt.Errorf("chip: invalid decimal %q", raw)
	}
	return Decimal{Rat: r}, nil
}
