package si

import (
	"errors"
	"fmt"

	"dimensional/dimension"
)

var (
	// ErrDimensionMismatch is returned when an operation needs equal
	// dimensions (add, subtract, compare, convert) and gets different ones.
	ErrDimensionMismatch = errors.New("si: dimension mismatch")

	// ErrNotDimensionless is returned when a quantity with a non-zero
	// exponent is converted to a plain number.
	ErrNotDimensionless = errors.New("si: quantity is not dimensionless")
)

// DimensionError reports the operation and the operand dimensions that
// caused a mismatch.
type DimensionError struct {
	Op    string
	Left  dimension.Vector
	Right dimension.Vector
	Err   error
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("si: %s %v and %v: %s", e.Op, e.Left, e.Right, errText(e.Err))
}

func (e *DimensionError) Unwrap() error { return e.Err }

func errText(err error) string {
	switch {
	case errors.Is(err, ErrNotDimensionless):
		return "not dimensionless"
	default:
		return "dimension mismatch"
	}
}

func mismatch(op string, left, right dimension.Vector) error {
	return &DimensionError{Op: op, Left: left, Right: right, Err: ErrDimensionMismatch}
}
