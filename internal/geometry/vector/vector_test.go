package vector

import (
	"testing"

	"dimensional/dimension"
	"dimensional/si"
	"dimensional/units"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meters(x, y, z float64) Position {
	return NewVec3(units.Meter.Scale(x), units.Meter.Scale(y), units.Meter.Scale(z))
}

func TestAddSubScale(t *testing.T) {
	a := meters(1, 2, 3)
	b := meters(4, 5, 6)

	assert.Equal(t, meters(5, 7, 9), a.Add(b))
	assert.Equal(t, meters(-3, -3, -3), a.Sub(b))
	assert.Equal(t, meters(2, 4, 6), a.Scale(2))
	assert.Equal(t, meters(-1, -2, -3), a.Neg())
	assert.Equal(t, meters(1, 2, 0), a.Horizontal())
}

func TestDot(t *testing.T) {
	d := meters(1, 2, 3).Dot(meters(4, 5, 6))
	assert.Equal(t, 32.0, d.Value())
	assert.True(t, d.Dim().Equal(dimension.Ints(0, 2, 0, 0)))
}

func TestNormIsEuclidean(t *testing.T) {
	n := meters(3, 4, 0).Norm()
	assert.Equal(t, 5.0, n.Value())
	assert.True(t, n.Equal(units.Meter.Scale(5)))
}

func TestDirection(t *testing.T) {
	dir := meters(0, 3, 4).Direction()
	assert.InDelta(t, 0.6, si.Number(dir.Y), 1e-12)
	assert.InDelta(t, 0.8, si.Number(dir.Z), 1e-12)
	assert.InDelta(t, 1.0, dir.Norm().Value(), 1e-12)

	assert.Equal(t, Vec3[si.DimensionlessDim]{}, Position{}.Direction())
}

func TestTravelAndAccelerate(t *testing.T) {
	vel := NewVec3(si.Make[si.SpeedDim](10), si.Make[si.SpeedDim](-2), si.Make[si.SpeedDim](0))
	p := Travel(vel, units.Second.Scale(3))
	assert.Equal(t, meters(30, -6, 0), p)

	g := Acceleration{Z: units.StandardGravity.Neg()}
	dv := Accelerate(g, units.Second.Scale(2))
	assert.InDelta(t, -19.6133, dv.Z.Value(), 1e-12)
}

func TestMulChecksResultDimension(t *testing.T) {
	_, err := Mul[si.EnergyDim](meters(1, 1, 1), units.Second)
	assert.ErrorIs(t, err, si.ErrDimensionMismatch)

	area, err := Mul[si.AreaDim](meters(1, 2, 3), units.Meter.Scale(2))
	require.NoError(t, err)
	assert.Equal(t, 6.0, area.Z.Value())
}
