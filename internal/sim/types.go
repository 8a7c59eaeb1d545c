package sim

import (
	"dimensional/internal/geometry/vector"
	"dimensional/si"
)

// State is the propagated point mass in local ENU coordinates.
type State struct {
	Pos     vector.Position
	Vel     vector.Velocity
	Mass    si.Mass
	Elapsed si.Time
}

// KineticEnergy returns ½·m·|v|².
func (s State) KineticEnergy() si.Energy {
	v2 := s.Vel.Dot(s.Vel)
	return si.MustAs[si.EnergyDim](s.Mass.Quantity().Mul(v2).Scale(0.5))
}

// Snapshot is the JSON view of a State, in degrees, meters, m/s, seconds and joules.
type Snapshot struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	Alt float64 `json:"alt"` // meters

	// "Air" velocity
	Vx float64 `json:"vx"`
	Vy float64 `json:"vy"`
	Vz float64 `json:"vz"`

	HeadingDeg    float64 `json:"headingDeg"`
	Elapsed       float64 `json:"elapsed"`       // seconds
	KineticEnergy float64 `json:"kineticEnergy"` // joules

	Warning string `json:"warning,omitempty"`
}
