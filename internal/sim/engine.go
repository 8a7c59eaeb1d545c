package sim

import (
	"context"
	"errors"
	"fmt"

	"dimensional/internal/env"
	"dimensional/internal/geometry/vector"
	"dimensional/si"
	"dimensional/units"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("sim: invalid config")

type Config struct {
	Origin   GeoRef
	Altitude si.Length
	Velocity vector.Velocity
	Mass     si.Mass

	// Gravity is the downward acceleration; nil means standard gravity.
	Gravity *si.Acceleration
	Step    si.Time
	Steps   int

	Environment env.Environment
}

func (c Config) validate() error {
	var zero si.Time
	switch {
	case !c.Step.Greater(zero):
		return fmt.Errorf("%w: step must be positive, got %v", ErrInvalidConfig, c.Step)
	case c.Steps <= 0:
		return fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidConfig, c.Steps)
	case !c.Mass.Greater(si.Mass{}):
		return fmt.Errorf("%w: mass must be positive, got %v", ErrInvalidConfig, c.Mass)
	}
	return nil
}

// Step advances s by dt: gravity acts on the velocity, the environment
// adjusts position and velocity, then the position is integrated.
// The environment's warning, if any, is returned.
func Step(s State, dt si.Time, gravity si.Acceleration, environment env.Environment) (State, string) {
	s.Vel = s.Vel.Add(vector.Accelerate(vector.Acceleration{Z: gravity.Neg()}, dt))

	// apply environment effects (wind affects position, terrain clips altitude, etc.)
	warning := ""
	if environment != nil {
		s.Pos, s.Vel, warning = environment.Apply(dt, s.Pos, s.Vel)
	}

	// integrate position by air velocity (wind drift already applied in env)
	s.Pos = s.Pos.Add(vector.Travel(s.Vel, dt))
	s.Elapsed = s.Elapsed.Add(dt)
	return s, warning
}

// Simulate propagates a point mass from the configured origin for cfg.Steps
// steps and returns the initial state followed by one snapshot per step.
// It stops with ctx.Err() if ctx is cancelled between steps.
func Simulate(ctx context.Context, cfg Config) ([]Snapshot, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	gravity := units.StandardGravity
	if cfg.Gravity != nil {
		gravity = *cfg.Gravity
	}
	geo := cfg.Origin

	state := State{
		Pos:  geo.GeoToLocal(geo.OriginLat, geo.OriginLon, cfg.Altitude),
		Vel:  cfg.Velocity,
		Mass: cfg.Mass,
	}

	buildSnapshot := func(warning string) Snapshot {
		lat, lon, alt := geo.LocalToGeo(state.Pos)
		return Snapshot{
			Lat: lat.Ratio(units.Degree), Lon: lon.Ratio(units.Degree), Alt: alt.Value(),
			Vx: state.Vel.X.Value(), Vy: state.Vel.Y.Value(), Vz: state.Vel.Z.Value(),
			HeadingDeg:    HeadingFromVec(state.Vel).Ratio(units.Degree),
			Elapsed:       state.Elapsed.Value(),
			KineticEnergy: state.KineticEnergy().Value(),
			Warning:       warning,
		}
	}

	snaps := make([]Snapshot, 0, cfg.Steps+1)
	snaps = append(snaps, buildSnapshot(""))
	for i := 0; i < cfg.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return snaps, err
		}
		var warning string
		state, warning = Step(state, cfg.Step, gravity, cfg.Environment)
		snaps = append(snaps, buildSnapshot(warning))
	}
	return snaps, nil
}
