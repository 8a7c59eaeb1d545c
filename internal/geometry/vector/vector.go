// Package vector provides 3D vectors of dimensioned quantities
package vector

import (
	"math"

	"dimensional/si"
)

// NewVec3 creates a new 3D vector with the given components
func NewVec3[D si.Dimension](x, y, z si.Of[D]) Vec3[D] {
	return Vec3[D]{X: x, Y: y, Z: z}
}

// Vec3 represents a 3D vector in local ENU (East-North-Up) coordinates
// with X=east, Y=north, Z=up; every component shares dimension D
type Vec3[D si.Dimension] struct{ X, Y, Z si.Of[D] }

// Vectors integrated by the simulation
type (
	Position     = Vec3[si.LengthDim]
	Velocity     = Vec3[si.SpeedDim]
	Acceleration = Vec3[si.AccelerationDim]
)

// Add returns the sum of two vectors
func (v Vec3[D]) Add(o Vec3[D]) Vec3[D] { return Vec3[D]{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)} }

// Sub returns the difference between two vectors
func (v Vec3[D]) Sub(o Vec3[D]) Vec3[D] { return Vec3[D]{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)} }

// Scale multiplies a vector by a plain number
func (v Vec3[D]) Scale(k float64) Vec3[D] { return Vec3[D]{v.X.Scale(k), v.Y.Scale(k), v.Z.Scale(k)} }

// Neg returns the opposite vector
func (v Vec3[D]) Neg() Vec3[D] { return v.Scale(-1) }

// Dot returns the dot product; its dimension is D squared
func (v Vec3[D]) Dot(o Vec3[D]) si.Quantity {
	d := v.X.Dim()
	return si.New(v.X.Value()*o.X.Value()+v.Y.Value()*o.Y.Value()+v.Z.Value()*o.Z.Value(), d.Add(d))
}

// Norm returns the vector's magnitude (Euclidean norm)
func (v Vec3[D]) Norm() si.Of[D] {
	x, y, z := v.X.Value(), v.Y.Value(), v.Z.Value()
	return si.Make[D](math.Sqrt(x*x + y*y + z*z))
}

// Horizontal returns the vector projected onto the ground plane
func (v Vec3[D]) Horizontal() Vec3[D] { return Vec3[D]{X: v.X, Y: v.Y} }

// Direction returns a dimensionless unit vector in the same direction
func (v Vec3[D]) Direction() Vec3[si.DimensionlessDim] {
	n := v.Norm().Value()
	if n == 0 {
		return Vec3[si.DimensionlessDim]{}
	}
	return Vec3[si.DimensionlessDim]{
		X: si.Make[si.DimensionlessDim](v.X.Value() / n),
		Y: si.Make[si.DimensionlessDim](v.Y.Value() / n),
		Z: si.Make[si.DimensionlessDim](v.Z.Value() / n),
	}
}

// Mul multiplies every component of v by k and checks the result against R
func Mul[R, A, B si.Dimension](v Vec3[A], k si.Of[B]) (Vec3[R], error) {
	x, err := si.Mul[R](v.X, k)
	if err != nil {
		return Vec3[R]{}, err
	}
	// Y and Z share X's dimension and cannot fail.
	y, _ := si.Mul[R](v.Y, k)
	z, _ := si.Mul[R](v.Z, k)
	return Vec3[R]{X: x, Y: y, Z: z}, nil
}

// Travel returns the displacement covered at velocity v during dt
func Travel(v Velocity, dt si.Time) Position {
	p, err := Mul[si.LengthDim](v, dt)
	if err != nil {
		panic(err) // speed times time is always a length
	}
	return p
}

// Accelerate returns the velocity change caused by a during dt
func Accelerate(a Acceleration, dt si.Time) Velocity {
	v, err := Mul[si.SpeedDim](a, dt)
	if err != nil {
		panic(err)
	}
	return v
}
