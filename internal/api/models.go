package api

import (
	"encoding/json"
	"fmt"
	"math"

	"dimensional/dimension"
	"dimensional/internal/sim"
	"dimensional/si"
)

// EvaluateRequest is the body of POST /evaluate.
type EvaluateRequest struct {
	Expression string `json:"expression" validate:"required"`
}

// Float is a float64 whose JSON form spells non-finite values as the
// strings "+Inf", "-Inf" and "NaN", so 1 m / 0 still reaches the client.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

func (f *Float) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"NaN"`:
		*f = Float(math.NaN())
	case `"+Inf"`:
		*f = Float(math.Inf(1))
	case `"-Inf"`:
		*f = Float(math.Inf(-1))
	default:
		var v float64
		if err := json.Unmarshal(b, &v); err != nil {
			return fmt.Errorf("api: invalid number %s", b)
		}
		*f = Float(v)
	}
	return nil
}

// QuantityResponse describes an evaluated quantity in coherent SI units.
type QuantityResponse struct {
	Value     Float             `json:"value"`
	Dimension string            `json:"dimension"`
	Exponents map[string]string `json:"exponents"`
}

func newQuantityResponse(q si.Quantity) QuantityResponse {
	return QuantityResponse{
		Value:     Float(q.Value()),
		Dimension: q.Dim().String(),
		Exponents: exponents(q.Dim()),
	}
}

// exponents keys the non-zero exponents of d by base symbol.
func exponents(d dimension.Vector) map[string]string {
	out := make(map[string]string)
	for _, b := range dimension.Bases {
		if e := d.Exponent(b); !e.IsZero() {
			out[b.Symbol()] = e.String()
		}
	}
	return out
}

// ConvertRequest is the body of POST /convert.
type ConvertRequest struct {
	Quantity string `json:"quantity" validate:"required"`
	To       string `json:"to"       validate:"required"`
}

type ConvertResponse struct {
	Value Float  `json:"value"`
	Unit  string `json:"unit"`
}

// UnitResponse is one entry of GET /units.
type UnitResponse struct {
	Name      string            `json:"name"`
	Symbol    string            `json:"symbol"`
	Aliases   []string          `json:"aliases,omitempty"`
	Value     float64           `json:"value"`
	Dimension string            `json:"dimension"`
	Exponents map[string]string `json:"exponents"`
}

// SimulateRequest is the body of POST /simulate. Dimensioned fields are
// expressions such as "3000 ft" or "120 kn"; origins are in degrees.
// An omitted gravity is standard gravity, while "0 m/s^2" disables it.
type SimulateRequest struct {
	OriginLat    *float64        `json:"origin_lat"    validate:"omitempty,gte=-90,lte=90"`
	OriginLon    *float64        `json:"origin_lon"    validate:"omitempty,gte=-180,lte=180"`
	Altitude     string          `json:"altitude"      validate:"required"`
	Velocity     VelocityRequest `json:"velocity"`
	Mass         string          `json:"mass"          validate:"required"`
	Step         string          `json:"step"          validate:"required"`
	Steps        int             `json:"steps"         validate:"required,gt=0"`
	Gravity      string          `json:"gravity,omitempty"`
	Wind         *WindRequest    `json:"wind,omitempty"`
	SafetyMargin string          `json:"safety_margin,omitempty"`
}

// VelocityRequest holds ENU velocity components; empty means zero.
type VelocityRequest struct {
	East  string `json:"east"`
	North string `json:"north"`
	Up    string `json:"up"`
}

// WindRequest is a wind speed and the direction it blows towards.
type WindRequest struct {
	Speed     string `json:"speed"     validate:"required"`
	Direction string `json:"direction" validate:"required"`
}

type SimulateResponse struct {
	Snapshots []sim.Snapshot `json:"snapshots"`
	// KineticEnergy of the final state, in joules
	KineticEnergy float64 `json:"kinetic_energy"`
}
