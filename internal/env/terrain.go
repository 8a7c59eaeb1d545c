package env

import (
	"math"

	"dimensional/internal/geometry/vector"
	"dimensional/si"
	"dimensional/units"
)

// Terrain implements an environment effect that simulates ground collision detection
// and prevents the aircraft from flying below the terrain plus a safety margin.
type Terrain struct {
	// SafetyMargin is the minimum allowed altitude above terrain
	SafetyMargin si.Length
}

// GroundAltitude calculates the terrain height at a given position.
// This is a simple synthetic terrain function that can be replaced with real elevation data.
func (t Terrain) GroundAltitude(pos vector.Position) si.Length {
	// Create a simple wavy terrain pattern
	wave1 := units.Meter.Scale(100 * math.Sin(pos.X.Ratio(units.Kilometer)))
	wave2 := units.Meter.Scale(50 * math.Sin(pos.X.Add(pos.Y).Ratio(units.Meter.Scale(500))))
	return wave1.Add(wave2)
}

// Apply enforces terrain collision detection and applies ground effect.
// If the aircraft is below the terrain plus safety margin, it will be moved up
// and its vertical velocity will be set to zero if it was descending.
func (t Terrain) Apply(dt si.Time, pos vector.Position, vel vector.Velocity) (vector.Position, vector.Velocity, string) {
	minAllowedAlt := t.GroundAltitude(pos).Add(t.SafetyMargin)

	if pos.Z.Less(minAllowedAlt) {
		pos.Z = minAllowedAlt

		var zero si.Speed
		if vel.Z.Less(zero) {
			vel.Z = zero
		}

		return pos, vel, "terrain-floor: altitude clipped to safety margin"
	}

	return pos, vel, ""
}

// DefaultTerrain returns a Terrain with a reasonable default safety margin.
func DefaultTerrain() Terrain {
	return Terrain{
		SafetyMargin: units.Meter.Scale(80),
	}
}
