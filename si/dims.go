package si

import "dimensional/dimension"

// Dimension markers for the common unit families.
type (
	DimensionlessDim struct{}
	MassDim          struct{}
	LengthDim        struct{}
	TimeDim          struct{}
	AngleDim         struct{}
	AreaDim          struct{}
	VolumeDim        struct{}
	SpeedDim         struct{}
	AccelerationDim  struct{}
	FrequencyDim     struct{}
	ForceDim         struct{}
	PressureDim      struct{}
	EnergyDim        struct{}
	PowerDim         struct{}
	AngularSpeedDim  struct{}
)

func (DimensionlessDim) Vector() dimension.Vector { return dimension.None }
func (MassDim) Vector() dimension.Vector { return dimension.Mass }
func (LengthDim) Vector() dimension.Vector { return dimension.Length }
func (TimeDim) Vector() dimension.Vector { return dimension.Time }
func (AngleDim) Vector() dimension.Vector { return dimension.Angle }
func (AreaDim) Vector() dimension.Vector { return dimension.Ints(0, 2, 0, 0) }
func (VolumeDim) Vector() dimension.Vector { return dimension.Ints(0, 3, 0, 0) }
func (SpeedDim) Vector() dimension.Vector { return dimension.Ints(0, 1, -1, 0) }
func (AccelerationDim) Vector() dimension.Vector { return dimension.Ints(0, 1, -2, 0) }
func (FrequencyDim) Vector() dimension.Vector { return dimension.Ints(0, 0, -1, 0) }
func (ForceDim) Vector() dimension.Vector { return dimension.Ints(1, 1, -2, 0) }
func (PressureDim) Vector() dimension.Vector { return dimension.Ints(1, -1, -2, 0) }
func (EnergyDim) Vector() dimension.Vector { return dimension.Ints(1, 2, -2, 0) }
func (PowerDim) Vector() dimension.Vector { return dimension.Ints(1, 2, -3, 0) }
func (AngularSpeedDim) Vector() dimension.Vector { return dimension.Ints(0, 0, -1, 1) }

type (
	Dimensionless = Of[DimensionlessDim]
	Mass          = Of[MassDim]
	Length        = Of[LengthDim]
	Time          = Of[TimeDim]
	Angle         = Of[AngleDim]
	Area          = Of[AreaDim]
	Volume        = Of[VolumeDim]
	Speed         = Of[SpeedDim]
	Acceleration  = Of[AccelerationDim]
	Frequency     = Of[FrequencyDim]
	Force         = Of[ForceDim]
	Pressure      = Of[PressureDim]
	Energy        = Of[EnergyDim]
	Power         = Of[PowerDim]
	AngularSpeed  = Of[AngularSpeedDim]
)
