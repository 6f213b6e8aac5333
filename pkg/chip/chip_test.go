package chip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64Arithmetic(t *testing.T) {
	a := Int64(100)
	b := Int64(40)
	assert.Equal(t, Int64(140), a.Add(b))
	assert.Equal(t, Int64(60), a.Sub(b))
	assert.Equal(t, Int64(200), a.MulScalar(2))
	assert.True(t, b.Less(a))
	assert.False(t, a.Less(b))
}

func TestInt64Unbounded(t *testing.T) {
	u := UnboundedInt64
	assert.True(t, u.Unbounded())
	assert.True(t, Int64(1000000).Less(u))
	assert.False(t, u.Less(Int64(1000000)))
}

func TestInt64DivMod(t *testing.T) {
	share, rem := Int64DivMod(Int64(100), 3)
	assert.Equal(t, Int64(33), share)
	assert.Equal(t, Int64(1), rem)

	share, rem = Int64DivMod(Int64(99), 3)
	assert.Equal(t, Int64(33), share)
	assert.Equal(t, Int64(0), rem)
}

func TestDecimalArithmetic(t *testing.T) {
	a := NewDecimal(1259450.25)
	b := NewDecimal(678473.5)
	sum := a.Add(b).(Decimal)
	f, _ := sum.Rat.Float64()
	assert.InDelta(t, 1937923.75, f, 1e-9)
}

func TestDecimalDivModExact(t *testing.T) {
	amount := NewDecimalInt(100)
	share, rem := DecimalDivMod(amount, 3)
	s := share.(Decimal)
	r := rem.(Decimal)
	total := s.Add(s).Add(s).Add(r).(Decimal)
	f, _ := total.Rat.Float64()
	assert.InDelta(t, 100, f, 1e-9)
}

func TestParseInt64(t *testing.T) {
	v, err := ParseInt64("1500")
	require.NoError(t, err)
	assert.Equal(t, Int64(1500), v)
}

func TestParseDecimal(t *testing.T) {
	v, err := ParseDecimal("1259450.25")
	require.NoError(t, err)
	d := v.(Decimal)
	f, _ := d.Rat.Float64()
	assert.InDelta(t, 1259450.25, f, 1e-9)
}

func TestNoRake(t *testing.T) {
	r := NoRake(Int64(1000), Int64(0), false, 0)
	assert.True(t, r.IsZero())
}
