package api

import (
	"fmt"
	"net/http"

	"dimensional/internal/env"
	"dimensional/internal/expr"
	"dimensional/internal/sim"
	"dimensional/si"
	"dimensional/units"
)

func (s *Server) listUnits(w http.ResponseWriter, r *http.Request) {
	all, err := s.reg.Match(r.URL.Query().Get("match"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]UnitResponse, 0, len(all))
	for _, u := range all {
		out = append(out, UnitResponse{
			Name:      u.Name,
			Symbol:    u.Symbol,
			Aliases:   u.Aliases,
			Value:     u.Quantity.Value(),
			Dimension: u.Quantity.Dim().String(),
			Exponents: exponents(u.Quantity.Dim()),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	q, err := s.eval.Eval(req.Expression)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newQuantityResponse(q))
}

func (s *Server) convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	v, err := s.eval.Convert(req.Quantity, req.To)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ConvertResponse{Value: Float(v), Unit: req.To})
}

func (s *Server) simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Steps > s.sim.MaxSteps {
		s.writeError(w, r, fmt.Errorf("%w: steps %d exceeds the limit of %d", ErrInvalidRequest, req.Steps, s.sim.MaxSteps))
		return
	}

	cfg, err := s.simConfig(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	snaps, err := sim.Simulate(r.Context(), cfg)
	if len(snaps) > 1 {
		s.metrics.simulatedSteps.Add(float64(len(snaps) - 1))
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SimulateResponse{
		Snapshots:     snaps,
		KineticEnergy: snaps[len(snaps)-1].KineticEnergy,
	})
}

// simConfig resolves the request's expressions into a sim.Config, filling
// omitted fields from the server's defaults.
func (s *Server) simConfig(req SimulateRequest) (sim.Config, error) {
	lat, lon := s.sim.OriginLat, s.sim.OriginLon
	if req.OriginLat != nil {
		lat = *req.OriginLat
	}
	if req.OriginLon != nil {
		lon = *req.OriginLon
	}
	cfg := sim.Config{
		Origin: sim.GeoRef{OriginLat: units.Degree.Scale(lat), OriginLon: units.Degree.Scale(lon)},
		Steps:  req.Steps,
	}

	var err error
	if cfg.Altitude, err = parseAs[si.LengthDim](s.eval, "altitude", req.Altitude); err != nil {
		return cfg, err
	}
	if cfg.Mass, err = parseAs[si.MassDim](s.eval, "mass", req.Mass); err != nil {
		return cfg, err
	}
	if cfg.Step, err = parseAs[si.TimeDim](s.eval, "step", req.Step); err != nil {
		return cfg, err
	}
	if req.Gravity != "" {
		g, err := parseAs[si.AccelerationDim](s.eval, "gravity", req.Gravity)
		if err != nil {
			return cfg, err
		}
		cfg.Gravity = &g
	}
	if cfg.Velocity.X, err = parseAs[si.SpeedDim](s.eval, "velocity.east", req.Velocity.East); err != nil {
		return cfg, err
	}
	if cfg.Velocity.Y, err = parseAs[si.SpeedDim](s.eval, "velocity.north", req.Velocity.North); err != nil {
		return cfg, err
	}
	if cfg.Velocity.Z, err = parseAs[si.SpeedDim](s.eval, "velocity.up", req.Velocity.Up); err != nil {
		return cfg, err
	}

	terrain := env.Terrain{SafetyMargin: units.Meter.Scale(s.sim.SafetyMargin)}
	if req.SafetyMargin != "" {
		if terrain.SafetyMargin, err = parseAs[si.LengthDim](s.eval, "safety_margin", req.SafetyMargin); err != nil {
			return cfg, err
		}
	}

	wind := env.Calm()
	if req.Wind != nil {
		speed, err := parseAs[si.SpeedDim](s.eval, "wind.speed", req.Wind.Speed)
		if err != nil {
			return cfg, err
		}
		dir, err := parseAs[si.AngleDim](s.eval, "wind.direction", req.Wind.Direction)
		if err != nil {
			return cfg, err
		}
		wind = env.FromSpeedAndDir(speed, dir)
	}

	cfg.Environment = &env.Chain{Effects: []env.Environment{wind, terrain}}
	return cfg, nil
}

// parseAs evaluates src and narrows it to D; an empty src is zero.
func parseAs[D si.Dimension](ev *expr.Evaluator, field, src string) (si.Of[D], error) {
	if src == "" {
		return si.Of[D]{}, nil
	}
	q, err := ev.Eval(src)
	if err != nil {
		return si.Of[D]{}, fmt.Errorf("%s: %w", field, err)
	}
	v, err := si.As[D](q)
	if err != nil {
		return si.Of[D]{}, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}
