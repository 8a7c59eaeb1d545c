package expr

import (
	"errors"
	"math"
	"testing"

	"dimensional/dimension"
	"dimensional/si"
	"dimensional/units"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	speed  = dimension.Ints(0, 1, -1, 0)
	energy = dimension.Ints(1, 2, -2, 0)
	accel  = dimension.Ints(0, 1, -2, 0)
)

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		want float64
		dim  dimension.Vector
	}{
		{"42", 42, dimension.None},
		{"1 + 2 * 3", 7, dimension.None},
		{"(1 + 2) * 3", 9, dimension.None},
		{"-2^2", -4, dimension.None},
		{"2^-1", 0.5, dimension.None},
		{"10 m * 10 m", 100, dimension.Ints(0, 2, 0, 0)},
		{"30 m / 1 s", 30, speed},
		{"10 m / 2 s", 5, speed},
		{"0.5 * 80 kg * (10 m/s)^2", 4000, energy},
		{"9.81 m/s^2", 9.81, accel},
		{"9.81 m s⁻²", 9.81, accel},
		{"1 kg·m²·s⁻²", 1, energy},
		{"16 m²", 16, dimension.Ints(0, 2, 0, 0)},
		{"sqrt(16 m^2)", 4, dimension.Length},
		{"(4 m)^(1/2)", 2, dimension.New(dimension.Int(0), dimension.NewRational(1, 2), dimension.Int(0), dimension.Int(0))},
		{"1 km + 500 m", 1500, dimension.Length},
		{"1 h - 30 min", 1800, dimension.Time},
		{"abs(-3 N)", 3, dimension.Ints(1, 1, -2, 0)},
		{"2 kg × 3", 6, dimension.Mass},
		{"6 m ÷ 3 s", 2, speed},
		{"1e3 m", 1000, dimension.Length},
		{"180°", math.Pi, dimension.Angle},
		{"1 / s", 1, dimension.Time.Neg()},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			q, err := Eval(tt.src)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, q.Value(), 1e-9)
			assert.True(t, q.Dim().Equal(tt.dim), "got %v", q.Dim())
		})
	}
}

func TestEvalKineticEnergyComparesEqual(t *testing.T) {
	q, err := Eval("0.5 * 80 kg * 10 m/s * 10 m/s")
	require.NoError(t, err)
	e, err := si.As[si.EnergyDim](q)
	require.NoError(t, err)
	assert.True(t, e.Equal(si.Make[si.EnergyDim](4000)))
}

func TestEvalDimensionMismatch(t *testing.T) {
	_, err := Eval("1 m + 1 s")
	require.Error(t, err)
	assert.ErrorIs(t, err, si.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "column 5")

	_, err = Eval("10 m/s - 80 kg")
	assert.ErrorIs(t, err, si.ErrDimensionMismatch)
}

func TestEvalExponentOverflow(t *testing.T) {
	tests := []string{
		"m^(1/4294967296)^(1/4294967296) - 1 m",
		"m^(1/4294967296) * m^(1/4294967295) * m^(1/4294967291)",
		"sqrt(m^(1/4611686018427387904))",
		"m^9223372036854775807 * m",
		"m^(-9223372036854775808)",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := Eval(src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, dimension.ErrOverflow) || errors.Is(err, ErrSyntax), err.Error())
		})
	}

	q, err := Eval("(m^(1/65536))^65536")
	require.NoError(t, err)
	assert.True(t, q.Dim() == dimension.Length)
}

func TestEvalUnknownUnit(t *testing.T) {
	_, err := Eval("3 parsec")
	assert.ErrorIs(t, err, units.ErrUnknownUnit)
}

func TestEvalSyntaxErrors(t *testing.T) {
	tests := []struct {
		src string
		pos int
	}{
		{"", 1},
		{"(1 + 2", 7},
		{"1 +", 4},
		{"2 ^ x", 5},
		{"m^2.5", 3},
		{"1 $ 2", 3},
		{"1 2 )", 5},
		{"sqrt(4", 7},
		{"m^(1/", 6},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Eval(tt.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)
			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.pos, se.Pos)
		})
	}
}

func TestEvaluatorCustomRegistry(t *testing.T) {
	reg := units.NewRegistry()
	require.NoError(t, reg.Register(units.Unit{Name: "league", Symbol: "lea", Quantity: units.Meter.Scale(4828).Quantity()}))
	ev := New(reg)

	q, err := ev.Eval("2 lea")
	require.NoError(t, err)
	assert.Equal(t, 9656.0, q.Value())

	_, err = ev.Eval("1 km")
	assert.ErrorIs(t, err, units.ErrUnknownUnit)
}

func TestConvert(t *testing.T) {
	ev := New(units.Builtin())

	v, err := ev.Convert("10 km", "mi")
	require.NoError(t, err)
	assert.InDelta(t, 6.21371192, v, 1e-8)

	v, err = ev.Convert("100 km/h", "m/s")
	require.NoError(t, err)
	assert.InDelta(t, 27.7777778, v, 1e-7)

	v, err = ev.Convert("1 ft^3", "L")
	require.NoError(t, err)
	assert.InDelta(t, 28.316846592, v, 1e-9)

	_, err = ev.Convert("1 kg", "m")
	assert.ErrorIs(t, err, si.ErrDimensionMismatch)

	_, err = ev.Convert("1 kg", "(")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestLexSuperscripts(t *testing.T) {
	toks, err := lex("m⁻¹²")
	require.NoError(t, err)
	var texts []string
	for _, tk := range toks {
		texts = append(texts, tk.text)
	}
	assert.Equal(t, []string{"m", "^", "-", "12", ""}, texts)

	_, err = lex("m⁻")
	assert.ErrorIs(t, err, ErrSyntax)
}
