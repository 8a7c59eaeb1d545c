package env

import (
	"math"

	"dimensional/internal/geometry/vector"
	"dimensional/si"
)

// Wind represents a constant wind vector in the environment.
type Wind struct {
	// East is the eastward component of the wind (negative = west)
	East si.Speed
	// North is the northward component of the wind (negative = south)
	North si.Speed
}

// Apply applies wind as a constant ground drift.
// We modify position directly (ground track), without changing the aircraft's own velocity.
func (w Wind) Apply(dt si.Time, pos vector.Position, vel vector.Velocity) (vector.Position, vector.Velocity, string) {
	// Wind affects ground track but not the aircraft's airspeed
	drift := vector.Travel(vector.Velocity{X: w.East, Y: w.North}, dt)
	return pos.Add(drift), vel, ""
}

// Calm returns a Wind with zero velocity (no wind).
func Calm() Wind {
	return Wind{}
}

// FromSpeedAndDir creates a Wind from a speed and the direction it blows towards,
// measured clockwise from north (0 = north, 90° = east).
func FromSpeedAndDir(speed si.Speed, direction si.Angle) Wind {
	// Convert to math angle (0 = east, π/2 = north)
	rad := math.Pi/2 - direction.Value()
	return Wind{
		East:  speed.Scale(math.Cos(rad)),
		North: speed.Scale(math.Sin(rad)),
	}
}
