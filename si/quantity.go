// Package si implements dimensioned physical quantities.
//
// A Quantity is a float64 magnitude in the coherent unit of its dimension
// (kilogram, meter, second, radian and their products). Multiplication and
// division combine dimensions freely; addition, subtraction, comparison and
// conversion to a plain number require matching dimensions and return a
// *DimensionError otherwise.
//
// Of[D] carries the dimension in its type instead, so the same-dimension
// operations are checked by the compiler:
//
//	var d si.Length = units.Meter.Scale(30)
//	var t si.Time = units.Second
//	v, err := si.Div[si.SpeedDim](d, t)
package si

import (
	"math"
	"strconv"

	"dimensional/dimension"
)

// Quantity is a magnitude tagged with a dimension vector. The zero value
// is a dimensionless 0.
type Quantity struct {
	value float64
	dim   dimension.Vector
}

// New returns a quantity of value coherent units of dim.
func New(value float64, dim dimension.Vector) Quantity {
	return Quantity{value: value, dim: dim}
}

// Scalar returns a dimensionless quantity.
func Scalar(v float64) Quantity { return Quantity{value: v} }

// Must panics if err is non-nil and returns q otherwise.
func Must(q Quantity, err error) Quantity {
	if err != nil {
		panic(err)
	}
	return q
}

// Value returns the raw magnitude regardless of dimension.
func (q Quantity) Value() float64 { return q.value }

// Dim returns the dimension vector.
func (q Quantity) Dim() dimension.Vector { return q.dim }

// IsDimensionless reports whether q has no dimension.
func (q Quantity) IsDimensionless() bool { return q.dim.IsDimensionless() }

// Float64 returns the magnitude of a dimensionless quantity.
func (q Quantity) Float64() (float64, error) {
	if !q.dim.IsDimensionless() {
		return 0, &DimensionError{Op: "float64", Left: q.dim, Right: dimension.None, Err: ErrNotDimensionless}
	}
	return q.value, nil
}

// In returns q expressed as a multiple of unit, which must share q's dimension.
func (q Quantity) In(unit Quantity) (float64, error) {
	if !q.dim.Equal(unit.dim) {
		return 0, mismatch("convert", q.dim, unit.dim)
	}
	return q.value / unit.value, nil
}

// Add returns q + o.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if !q.dim.Equal(o.dim) {
		return Quantity{}, mismatch("add", q.dim, o.dim)
	}
	return Quantity{value: q.value + o.value, dim: q.dim}, nil
}

// Sub returns q - o.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if !q.dim.Equal(o.dim) {
		return Quantity{}, mismatch("subtract", q.dim, o.dim)
	}
	return Quantity{value: q.value - o.value, dim: q.dim}, nil
}

// AddAssign adds o to q in place. q is unchanged on error.
func (q *Quantity) AddAssign(o Quantity) error {
	if !q.dim.Equal(o.dim) {
		return mismatch("add", q.dim, o.dim)
	}
	q.value += o.value
	return nil
}

// SubAssign subtracts o from q in place. q is unchanged on error.
func (q *Quantity) SubAssign(o Quantity) error {
	if !q.dim.Equal(o.dim) {
		return mismatch("subtract", q.dim, o.dim)
	}
	q.value -= o.value
	return nil
}

// Mul returns q * o with the sum of both dimensions.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{value: q.value * o.value, dim: q.dim.Add(o.dim)}
}

// Div returns q / o with the difference of both dimensions.
func (q Quantity) Div(o Quantity) Quantity {
	return Quantity{value: q.value / o.value, dim: q.dim.Sub(o.dim)}
}

// Scale returns k * q.
func (q Quantity) Scale(k float64) Quantity {
	return Quantity{value: k * q.value, dim: q.dim}
}

// DivScalar returns q / k.
func (q Quantity) DivScalar(k float64) Quantity {
	return Quantity{value: q.value / k, dim: q.dim}
}

// ScalarDiv returns k / q, whose dimension is the negation of q's.
func ScalarDiv(k float64, q Quantity) Quantity {
	return Quantity{value: k / q.value, dim: q.dim.Neg()}
}

// Inv returns 1 / q.
func (q Quantity) Inv() Quantity { return ScalarDiv(1, q) }

// Neg returns -q.
func (q Quantity) Neg() Quantity { return Quantity{value: -q.value, dim: q.dim} }

// Abs returns |q|.
func (q Quantity) Abs() Quantity { return Quantity{value: math.Abs(q.value), dim: q.dim} }

// Pow raises q to a rational power; exponents of q's dimension are scaled by p.
func (q Quantity) Pow(p dimension.Rational) Quantity {
	var v float64
	switch {
	case p.IsInt():
		v = math.Pow(q.value, float64(p.Num()))
	case p.Equal(dimension.NewRational(1, 2)):
		v = math.Sqrt(q.value)
	case p.Equal(dimension.NewRational(1, 3)):
		v = math.Cbrt(q.value)
	default:
		v = math.Pow(q.value, p.Float64())
	}
	return Quantity{value: v, dim: q.dim.Scale(p)}
}

// Sqrt returns the square root of q.
func (q Quantity) Sqrt() Quantity { return q.Pow(dimension.NewRational(1, 2)) }

// Equal reports q == o.
func (q Quantity) Equal(o Quantity) (bool, error) {
	if !q.dim.Equal(o.dim) {
		return false, mismatch("compare", q.dim, o.dim)
	}
	return q.value == o.value, nil
}

// NotEqual reports q != o.
func (q Quantity) NotEqual(o Quantity) (bool, error) {
	if !q.dim.Equal(o.dim) {
		return false, mismatch("compare", q.dim, o.dim)
	}
	return q.value != o.value, nil
}

// Less reports q < o.
func (q Quantity) Less(o Quantity) (bool, error) {
	if !q.dim.Equal(o.dim) {
		return false, mismatch("compare", q.dim, o.dim)
	}
	return q.value < o.value, nil
}

// LessEqual reports q <= o.
func (q Quantity) LessEqual(o Quantity) (bool, error) {
	if !q.dim.Equal(o.dim) {
		return false, mismatch("compare", q.dim, o.dim)
	}
	return q.value <= o.value, nil
}

// Greater reports q > o.
func (q Quantity) Greater(o Quantity) (bool, error) {
	if !q.dim.Equal(o.dim) {
		return false, mismatch("compare", q.dim, o.dim)
	}
	return q.value > o.value, nil
}

// GreaterEqual reports q >= o.
func (q Quantity) GreaterEqual(o Quantity) (bool, error) {
	if !q.dim.Equal(o.dim) {
		return false, mismatch("compare", q.dim, o.dim)
	}
	return q.value >= o.value, nil
}

// String formats q as "4000 [kg^1 m^2 s^-2]".
func (q Quantity) String() string {
	s := strconv.FormatFloat(q.value, 'g', -1, 64)
	if q.dim.IsDimensionless() {
		return s
	}
	return s + " " + q.dim.String()
}
