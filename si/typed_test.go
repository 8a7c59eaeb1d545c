package si

import (
	"testing"

	"dimensional/dimension"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedSameDimensionOps(t *testing.T) {
	a := Make[LengthDim](3)
	b := Make[LengthDim](4)

	assert.Equal(t, 7.0, a.Add(b).Value())
	assert.Equal(t, -1.0, a.Sub(b).Value())
	assert.Equal(t, -3.0, a.Neg().Value())
	assert.Equal(t, 6.0, a.Scale(2).Value())
	assert.Equal(t, 1.5, a.DivScalar(2).Value())
	assert.True(t, a.Less(b))
	assert.True(t, a.LessEqual(a))
	assert.True(t, b.Greater(a))
	assert.True(t, b.GreaterEqual(b))
	assert.True(t, a.Equal(Make[LengthDim](3)))
	assert.True(t, a.NotEqual(b))
	assert.Equal(t, 0.75, a.Ratio(b))

	a.AddAssign(b)
	assert.Equal(t, 7.0, a.Value())
	a.SubAssign(b)
	assert.Equal(t, 3.0, a.Value())
}

func TestTypedZeroValue(t *testing.T) {
	var m Mass
	assert.Equal(t, 0.0, m.Value())
	assert.True(t, m.Dim().Equal(dimension.Mass))
}

func TestTypedCrossDimension(t *testing.T) {
	d := Make[LengthDim](30)
	tm := Make[TimeDim](1)

	v, err := Div[SpeedDim](d, tm)
	require.NoError(t, err)
	assert.Equal(t, 30.0, v.Value())

	_, err = Div[AccelerationDim](d, tm)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	area, err := Mul[AreaDim](Make[LengthDim](10), Make[LengthDim](10))
	require.NoError(t, err)
	assert.Equal(t, 100.0, area.Value())
}

func TestTypedKineticEnergy(t *testing.T) {
	m := Make[MassDim](80)
	v := Make[SpeedDim](10)
	_, err := Mul[EnergyDim](m, v)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	q := m.Quantity().Mul(v.Quantity()).Mul(v.Quantity()).Scale(0.5)
	e, err := As[EnergyDim](q)
	require.NoError(t, err)
	assert.True(t, e.Equal(Make[EnergyDim](4000)))
}

func TestAs(t *testing.T) {
	_, err := As[MassDim](New(1, dimension.Length))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	f, err := As[ForceDim](New(9.81, dimension.Ints(1, 1, -2, 0)))
	require.NoError(t, err)
	assert.Equal(t, 9.81, f.Value())

	assert.Panics(t, func() { MustAs[TimeDim](New(1, dimension.Mass)) })
	assert.NotPanics(t, func() { MustAs[TimeDim](New(1, dimension.Time)) })
}

func TestNumber(t *testing.T) {
	r, err := Div[DimensionlessDim](Make[LengthDim](30), Make[LengthDim](10))
	require.NoError(t, err)
	assert.Equal(t, 3.0, Number(r))
}

func TestTypedQuantityErasure(t *testing.T) {
	p := Make[PressureDim](101325)
	q := p.Quantity()
	assert.Equal(t, 101325.0, q.Value())
	assert.True(t, q.Dim().Equal(dimension.Ints(1, -1, -2, 0)))
	assert.Equal(t, "101325 [kg^1 m^-1 s^-2]", p.String())
	assert.Equal(t, "2", Make[DimensionlessDim](2).String())
}

func TestMarkerVectors(t *testing.T) {
	tests := []struct {
		d    Dimension
		want dimension.Vector
	}{
		{DimensionlessDim{}, dimension.None},
		{AreaDim{}, dimension.Length.Add(dimension.Length)},
		{SpeedDim{}, dimension.Length.Sub(dimension.Time)},
		{AccelerationDim{}, SpeedDim{}.Vector().Sub(dimension.Time)},
		{ForceDim{}, dimension.Mass.Add(AccelerationDim{}.Vector())},
		{EnergyDim{}, ForceDim{}.Vector().Add(dimension.Length)},
		{PowerDim{}, EnergyDim{}.Vector().Sub(dimension.Time)},
		{PressureDim{}, ForceDim{}.Vector().Sub(AreaDim{}.Vector())},
		{FrequencyDim{}, dimension.Time.Neg()},
		{AngularSpeedDim{}, dimension.Angle.Sub(dimension.Time)},
	}
	for _, tt := range tests {
		assert.True(t, tt.d.Vector().Equal(tt.want), "%T", tt.d)
	}
}
