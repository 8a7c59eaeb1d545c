// Package dimension provides the exponent algebra behind physical units:
// a Vector holds the rational exponents of mass, length, time and angle.
package dimension

import (
	"fmt"
	"strings"
)

// Base identifies one of the four base dimensions.
type Base int

const (
	BaseMass Base = iota
	BaseLength
	BaseTime
	BaseAngle
)

// Bases lists the base dimensions in display order.
var Bases = [...]Base{BaseMass, BaseLength, BaseTime, BaseAngle}

var baseSymbols = [...]string{"kg", "m", "s", "rad"}

// Symbol returns the coherent unit symbol of b (kg, m, s, rad).
func (b Base) Symbol() string { return baseSymbols[b] }

func (b Base) String() string {
	return [...]string{"mass", "length", "time", "angle"}[b]
}

// Vector is the exponent vector [kg^M m^L s^T rad^A] of a unit family.
// The zero value is dimensionless.
type Vector struct {
	exp [4]Rational
}

// New builds a Vector from its four exponents.
func New(m, l, t, a Rational) Vector {
	return Vector{exp: [4]Rational{m, l, t, a}}
}

// Ints builds a Vector from integer exponents.
func Ints(m, l, t, a int64) Vector {
	return New(Int(m), Int(l), Int(t), Int(a))
}

// Base vectors.
var (
	None   = Vector{}
	Mass   = Ints(1, 0, 0, 0)
	Length = Ints(0, 1, 0, 0)
	Time   = Ints(0, 0, 1, 0)
	Angle  = Ints(0, 0, 0, 1)
)

func (v Vector) Mass() Rational { return v.exp[BaseMass] }
func (v Vector) Length() Rational { return v.exp[BaseLength] }
func (v Vector) Time() Rational { return v.exp[BaseTime] }
func (v Vector) Angle() Rational { return v.exp[BaseAngle] }

// Exponent returns the exponent of base b.
func (v Vector) Exponent(b Base) Rational { return v.exp[b] }

// Add returns the component-wise sum, the dimension of a product. It
// panics with ErrOverflow if an exponent does not fit.
func (v Vector) Add(o Vector) Vector { return mustVec(v.CheckedAdd(o)) }

// CheckedAdd is Add that returns ErrOverflow instead of panicking.
func (v Vector) CheckedAdd(o Vector) (Vector, error) {
	var r Vector
	for i := range v.exp {
		e, err := v.exp[i].CheckedAdd(o.exp[i])
		if err != nil {
			return Vector{}, err
		}
		r.exp[i] = e
	}
	return r, nil
}

// Neg returns the component-wise negation, the dimension of an inverse.
func (v Vector) Neg() Vector {
	var r Vector
	for i := range v.exp {
		r.exp[i] = v.exp[i].Neg()
	}
	return r
}

// Sub returns v + (-o), the dimension of a quotient.
func (v Vector) Sub(o Vector) Vector { return v.Add(o.Neg()) }

// CheckedSub is Sub that returns ErrOverflow instead of panicking.
func (v Vector) CheckedSub(o Vector) (Vector, error) { return v.CheckedAdd(o.Neg()) }

// Scale multiplies every exponent by k, the dimension of a power.
func (v Vector) Scale(k Rational) Vector { return mustVec(v.CheckedScale(k)) }

// CheckedScale is Scale that returns ErrOverflow instead of panicking.
func (v Vector) CheckedScale(k Rational) (Vector, error) {
	var r Vector
	for i := range v.exp {
		e, err := v.exp[i].CheckedMul(k)
		if err != nil {
			return Vector{}, err
		}
		r.exp[i] = e
	}
	return r, nil
}

func mustVec(v Vector, err error) Vector {
	if err != nil {
		panic(err)
	}
	return v
}

// Equal reports whether all four exponents are equal. It is the same as ==.
func (v Vector) Equal(o Vector) bool { return v == o }

// IsDimensionless reports whether every exponent is zero.
func (v Vector) IsDimensionless() bool {
	for _, e := range v.exp {
		if !e.IsZero() {
			return false
		}
	}
	return true
}

// String renders v as "[kg^1 m^2 s^-2]", skipping zero exponents.
func (v Vector) String() string {
	parts := make([]string, 0, len(v.exp))
	for _, b := range Bases {
		e := v.exp[b]
		if e.IsZero() {
			continue
		}
		parts = append(parts, b.Symbol()+"^"+e.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (v Vector) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vector) UnmarshalText(text []byte) error {
	p, err := ParseVector(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseVector parses the String form. A symbol may appear without an
// exponent ("[m s^-1]") and repeated symbols accumulate.
func ParseVector(s string) (Vector, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return Vector{}, fmt.Errorf("dimension: invalid vector %q", s)
	}
	var v Vector
	for _, f := range strings.Fields(s[1 : len(s)-1]) {
		sym, expStr, hasExp := strings.Cut(f, "^")
		b, ok := baseBySymbol(sym)
		if !ok {
			return Vector{}, fmt.Errorf("dimension: unknown base symbol %q in %q", sym, s)
		}
		e := Int(1)
		var err error
		if hasExp {
			if e, err = ParseRational(expStr); err != nil {
				return Vector{}, err
			}
		}
		if v.exp[b], err = v.exp[b].CheckedAdd(e); err != nil {
			return Vector{}, fmt.Errorf("%w in %q", err, s)
		}
	}
	return v, nil
}

func baseBySymbol(sym string) (Base, bool) {
	for _, b := range Bases {
		if baseSymbols[b] == sym {
			return b, true
		}
	}
	return 0, false
}
