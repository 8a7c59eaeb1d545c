// Package units holds named unit constants and a symbol registry for
// parsing quantities such as "10 km" or loading extra units from YAML.
//
// Every constant is a quantity whose magnitude is its size in the coherent
// unit of its dimension: Kilometer is 1000 meters.
package units

import (
	"math"

	"dimensional/si"
)

// Mass.
var (
	Kilogram  = si.Make[si.MassDim](1)
	Gram      = Kilogram.Scale(0.001)
	Milligram = Gram.Scale(0.001)
	Tonne     = Kilogram.Scale(1000)
	Ounce     = Kilogram.Scale(0.028349523125)
	Pound     = Kilogram.Scale(0.45359237)
)

// Length.
var (
	Meter        = si.Make[si.LengthDim](1)
	Centimeter   = Meter.Scale(0.01)
	Millimeter   = Meter.Scale(0.001)
	Micrometer   = Meter.Scale(1e-6)
	Kilometer    = Meter.Scale(1000)
	Inch         = Centimeter.Scale(2.54)
	Foot         = Inch.Scale(12)
	Yard         = Foot.Scale(3)
	Mile         = Foot.Scale(5280)
	NauticalMile = Meter.Scale(1852)
)

// Time.
var (
	Second = si.Make[si.TimeDim](1)
	Minute = Second.Scale(60)
	Hour   = Minute.Scale(60)
	Day    = Hour.Scale(24)
)

// Angle.
var (
	Radian = si.Make[si.AngleDim](1)
	Degree = Radian.Scale(math.Pi / 180)
)

// Derived.
var (
	SquareMeter      = si.MustAs[si.AreaDim](Meter.Quantity().Mul(Meter.Quantity()))
	Hectare          = SquareMeter.Scale(10_000)
	CubicMeter       = si.MustAs[si.VolumeDim](SquareMeter.Quantity().Mul(Meter.Quantity()))
	Liter            = CubicMeter.Scale(0.001)
	CubicFoot        = si.MustAs[si.VolumeDim](Foot.Quantity().Mul(Foot.Quantity()).Mul(Foot.Quantity()))
	MeterPerSecond   = si.MustAs[si.SpeedDim](Meter.Quantity().Div(Second.Quantity()))
	KilometerPerHour = si.MustAs[si.SpeedDim](Kilometer.Quantity().Div(Hour.Quantity()))
	Knot             = si.MustAs[si.SpeedDim](NauticalMile.Quantity().Div(Hour.Quantity()))
	StandardGravity  = si.Make[si.AccelerationDim](9.80665)
	Hertz            = si.Make[si.FrequencyDim](1)
	Newton           = si.Make[si.ForceDim](1)
	Pascal           = si.Make[si.PressureDim](1)
	Joule            = si.Make[si.EnergyDim](1)
	Watt             = si.Make[si.PowerDim](1)
	KilowattHour     = si.MustAs[si.EnergyDim](Watt.Scale(1000).Quantity().Mul(Hour.Quantity()))
)
