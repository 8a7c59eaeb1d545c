package dimension

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrOverflow is returned when an exponent no longer fits in int64.
var ErrOverflow = errors.New("dimension: exponent overflow")

// Rational is an exponent of a base dimension, kept in lowest terms with a
// positive denominator. The zero value is 0/1, the only representation of
// zero, so Rationals compare with ==.
type Rational struct {
	num int64
	dm1 int64 // denominator minus one
}

// NewRational returns num/den in canonical form. It panics if den is zero
// or either argument is math.MinInt64.
func NewRational(num, den int64) Rational {
	if den == 0 {
		panic("dimension: zero denominator")
	}
	return must(reduce(num, den))
}

// Int returns the integer n as a Rational. It panics if n is math.MinInt64.
func Int(n int64) Rational { return must(reduce(n, 1)) }

// Num returns the numerator.
func (r Rational) Num() int64 { return r.num }

// Den returns the denominator, always positive.
func (r Rational) Den() int64 { return r.dm1 + 1 }

// CheckedAdd returns r + o, or ErrOverflow.
func (r Rational) CheckedAdd(o Rational) (Rational, error) {
	rd, od := r.Den(), o.Den()
	g := gcd(rd, od)
	a, ok1 := mul64(r.num, od/g)
	b, ok2 := mul64(o.num, rd/g)
	num, ok3 := add64(a, b)
	den, ok4 := mul64(rd/g, od)
	if !(ok1 && ok2 && ok3 && ok4) {
		return Rational{}, ErrOverflow
	}
	return reduce(num, den)
}

// CheckedMul returns r * o, or ErrOverflow.
func (r Rational) CheckedMul(o Rational) (Rational, error) {
	g1 := gcd(abs(r.num), o.Den())
	g2 := gcd(abs(o.num), r.Den())
	num, ok1 := mul64(r.num/g1, o.num/g2)
	den, ok2 := mul64(r.Den()/g2, o.Den()/g1)
	if !ok1 || !ok2 {
		return Rational{}, ErrOverflow
	}
	return reduce(num, den)
}

// Add returns r + o. It panics with ErrOverflow if the result does not fit.
func (r Rational) Add(o Rational) Rational { return must(r.CheckedAdd(o)) }

// Neg returns -r.
func (r Rational) Neg() Rational { return Rational{num: -r.num, dm1: r.dm1} }

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational { return r.Add(o.Neg()) }

// Mul returns r * o. It panics with ErrOverflow if the result does not fit.
func (r Rational) Mul(o Rational) Rational { return must(r.CheckedMul(o)) }

// Equal reports whether r and o are the same number.
func (r Rational) Equal(o Rational) bool { return r == o }

// IsZero reports whether r is 0.
func (r Rational) IsZero() bool { return r.num == 0 }

// IsInt reports whether r has denominator 1.
func (r Rational) IsInt() bool { return r.dm1 == 0 }

// Float64 returns the nearest float64 value.
func (r Rational) Float64() float64 { return float64(r.num) / float64(r.Den()) }

// String renders r as "n" or "n/d".
func (r Rational) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rational) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := ParseRational(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// ParseRational parses "n" or "n/d", with optional surrounding spaces.
func ParseRational(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	numStr, denStr, frac := strings.Cut(s, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("dimension: invalid exponent %q", s)
	}
	den := int64(1)
	if frac {
		den, err = strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
		if err != nil || den == 0 {
			return Rational{}, fmt.Errorf("dimension: invalid exponent %q", s)
		}
	}
	r, err := reduce(num, den)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: %q", err, s)
	}
	return r, nil
}

// reduce never sees den == 0. math.MinInt64 is rejected so that negation
// stays in range.
func reduce(num, den int64) (Rational, error) {
	if num == math.MinInt64 || den == math.MinInt64 {
		return Rational{}, ErrOverflow
	}
	if num == 0 {
		return Rational{}, nil
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	return Rational{num: num / g, dm1: den/g - 1}, nil
}

func must(r Rational, err error) Rational {
	if err != nil {
		panic(err)
	}
	return r
}

func add64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return c, true
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
