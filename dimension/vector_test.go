package dimension

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	speed  = Ints(0, 1, -1, 0)
	force  = Ints(1, 1, -2, 0)
	energy = Ints(1, 2, -2, 0)
	rootM  = New(Int(0), NewRational(1, 2), Int(0), Int(0))
)

func TestVectorAddCommutativeAndAssociative(t *testing.T) {
	samples := []Vector{None, Mass, Length, Time, Angle, speed, force, energy, rootM, rootM.Neg()}
	for _, a := range samples {
		for _, b := range samples {
			assert.True(t, a.Add(b).Equal(b.Add(a)), "%v + %v", a, b)
			for _, c := range samples {
				assert.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))), "(%v + %v) + %v", a, b, c)
			}
		}
	}
}

func TestVectorNegAndSub(t *testing.T) {
	inv := speed.Neg()
	assert.True(t, inv.Equal(Ints(0, -1, 1, 0)))
	assert.True(t, speed.Add(inv).IsDimensionless())
	assert.True(t, Length.Sub(Time).Equal(speed))
	assert.True(t, force.Sub(Mass).Equal(Ints(0, 1, -2, 0)))
}

func TestVectorRationalExponents(t *testing.T) {
	area := Length.Add(Length)
	side := area.Scale(NewRational(1, 2))
	assert.True(t, side.Equal(Length))

	half := rootM.Add(rootM)
	assert.True(t, half.Equal(Length))
	assert.Equal(t, NewRational(1, 2), rootM.Length())
}

func TestVectorAccessors(t *testing.T) {
	v := Ints(1, 2, -2, 3)
	assert.Equal(t, Int(1), v.Mass())
	assert.Equal(t, Int(2), v.Length())
	assert.Equal(t, Int(-2), v.Time())
	assert.Equal(t, Int(3), v.Angle())
	assert.Equal(t, Int(-2), v.Exponent(BaseTime))
}

func TestVectorIsDimensionless(t *testing.T) {
	assert.True(t, None.IsDimensionless())
	assert.True(t, Vector{}.IsDimensionless())
	assert.False(t, Angle.IsDimensionless())
	assert.False(t, rootM.IsDimensionless())
}

func TestVectorString(t *testing.T) {
	tests := []struct {
		v    Vector
		want string
	}{
		{None, "[]"},
		{force, "[kg^1 m^1 s^-2]"},
		{energy, "[kg^1 m^2 s^-2]"},
		{Angle, "[rad^1]"},
		{rootM, "[m^1/2]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.String())
	}
}

func TestParseVector(t *testing.T) {
	for _, v := range []Vector{None, force, energy, Angle, rootM, speed.Neg()} {
		got, err := ParseVector(v.String())
		require.NoError(t, err)
		assert.True(t, got.Equal(v), "%v", v)
	}

	got, err := ParseVector("[m s^-1 m]")
	require.NoError(t, err)
	assert.True(t, got.Equal(Ints(0, 2, -1, 0)))

	for _, bad := range []string{"kg", "[kg^x]", "[ft^1]"} {
		_, err := ParseVector(bad)
		assert.Error(t, err, bad)
	}
}

func TestBaseSymbols(t *testing.T) {
	assert.Equal(t, "kg", BaseMass.Symbol())
	assert.Equal(t, "rad", BaseAngle.Symbol())
	assert.Equal(t, "time", BaseTime.String())
}

func TestVectorEqualityIsStructural(t *testing.T) {
	assert.True(t, None == Length.Sub(Length))
	assert.True(t, Length == Length.Add(Time).Sub(Time))
	assert.Equal(t, None, Mass.Add(Mass.Neg()))
	assert.Equal(t, Length, Length.Scale(NewRational(1, 2)).Scale(Int(2)))
}

func TestVectorOverflow(t *testing.T) {
	tiny := Length.Scale(NewRational(1, 1<<32))

	_, err := tiny.CheckedScale(NewRational(1, 1<<32))
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Ints(0, math.MaxInt64, 0, 0).CheckedAdd(Length)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Ints(0, math.MaxInt64, 0, 0).CheckedSub(Length.Neg())
	assert.ErrorIs(t, err, ErrOverflow)

	assert.Panics(t, func() { tiny.Scale(NewRational(1, 1<<32)) })

	_, err = ParseVector("[m^9223372036854775807 m]")
	assert.ErrorIs(t, err, ErrOverflow)
}
