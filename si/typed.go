package si

import (
	"strconv"

	"dimensional/dimension"
)

// Dimension is implemented by zero-size marker types that name a fixed
// dimension vector. The marker only selects a type; its value is never used.
type Dimension interface {
	Vector() dimension.Vector
}

// Of is a quantity whose dimension is fixed by D at compile time. It holds
// nothing but the magnitude.
type Of[D Dimension] struct {
	value float64
}

// Make returns value coherent units of D.
func Make[D Dimension](value float64) Of[D] { return Of[D]{value: value} }

// As narrows a dynamic quantity to D, failing if the dimensions differ.
func As[D Dimension](q Quantity) (Of[D], error) {
	var d D
	if !q.dim.Equal(d.Vector()) {
		return Of[D]{}, mismatch("convert", q.dim, d.Vector())
	}
	return Of[D]{value: q.value}, nil
}

// MustAs is like As but panics on mismatch.
func MustAs[D Dimension](q Quantity) Of[D] {
	v, err := As[D](q)
	if err != nil {
		panic(err)
	}
	return v
}

// Mul multiplies two typed quantities and checks the product against R.
func Mul[R, A, B Dimension](a Of[A], b Of[B]) (Of[R], error) {
	return As[R](a.Quantity().Mul(b.Quantity()))
}

// Div divides two typed quantities and checks the quotient against R.
func Div[R, A, B Dimension](a Of[A], b Of[B]) (Of[R], error) {
	return As[R](a.Quantity().Div(b.Quantity()))
}

// Number converts a dimensionless quantity to a plain number. Other
// dimensions do not type-check.
func Number(q Dimensionless) float64 { return q.value }

func (q Of[D]) Value() float64 { return q.value }

// Dim returns D's vector.
func (q Of[D]) Dim() dimension.Vector {
	var d D
	return d.Vector()
}

// Quantity erases the static dimension.
func (q Of[D]) Quantity() Quantity { return New(q.value, q.Dim()) }

func (q Of[D]) Add(o Of[D]) Of[D] { return Of[D]{value: q.value + o.value} }
func (q Of[D]) Sub(o Of[D]) Of[D] { return Of[D]{value: q.value - o.value} }
func (q Of[D]) Neg() Of[D] { return Of[D]{value: -q.value} }
func (q Of[D]) Scale(k float64) Of[D] { return Of[D]{value: k * q.value} }
func (q Of[D]) DivScalar(k float64) Of[D] { return Of[D]{value: q.value / k} }
func (q *Of[D]) AddAssign(o Of[D]) { q.value += o.value }
func (q *Of[D]) SubAssign(o Of[D]) { q.value -= o.value }
func (q Of[D]) Equal(o Of[D]) bool { return q.value == o.value }
func (q Of[D]) NotEqual(o Of[D]) bool { return q.value != o.value }
func (q Of[D]) Less(o Of[D]) bool { return q.value < o.value }
func (q Of[D]) LessEqual(o Of[D]) bool { return q.value <= o.value }
func (q Of[D]) Greater(o Of[D]) bool { return q.value > o.value }
func (q Of[D]) GreaterEqual(o Of[D]) bool { return q.value >= o.value }

// Ratio returns q / o as a plain number.
func (q Of[D]) Ratio(o Of[D]) float64 { return q.value / o.value }

func (q Of[D]) String() string {
	s := strconv.FormatFloat(q.value, 'g', -1, 64)
	if d := q.Dim(); !d.IsDimensionless() {
		s += " " + d.String()
	}
	return s
}
