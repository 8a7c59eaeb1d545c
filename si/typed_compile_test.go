package si

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// typeErrors type-checks this package with body added as an extra function
// and returns the type errors it produces.
func typeErrors(t *testing.T, body string) []packages.Error {
	t.Helper()
	dir, err := filepath.Abs(".")
	require.NoError(t, err)

	src := "package si\n\nfunc _() {\n\t" + body + "\n}\n"
	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedImports | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:     dir,
		Overlay: map[string][]byte{filepath.Join(dir, "zz_typecheck.go"): []byte(src)},
	}
	pkgs, err := packages.Load(cfg, ".")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	var out []packages.Error
	for _, e := range pkgs[0].Errors {
		if e.Kind == packages.TypeError {
			out = append(out, e)
		}
	}
	return out
}

func TestTypedRejectsMismatchedDimensionsAtCompileTime(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the package with the go command")
	}

	tests := []struct {
		name string
		body string
	}{
		{"add", "_ = Make[LengthDim](1).Add(Make[TimeDim](1))"},
		{"sub", "_ = Make[MassDim](1).Sub(Make[LengthDim](1))"},
		{"less", "_ = Make[SpeedDim](1).Less(Make[MassDim](1))"},
		{"equal", "_ = Make[EnergyDim](1).Equal(Make[ForceDim](1))"},
		{"add assign", "l := Make[LengthDim](1); l.AddAssign(Make[TimeDim](1))"},
		{"assign", "var l Length = Make[TimeDim](1); _ = l"},
		{"number of length", "_ = Number(Make[LengthDim](1))"},
		{"number of speed", "_ = Number(Make[SpeedDim](1))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := typeErrors(t, tt.body)
			assert.NotEmpty(t, errs, "%q type-checked", tt.body)
			for _, e := range errs {
				assert.True(t, strings.Contains(e.Pos, "zz_typecheck.go"), e.Error())
			}
		})
	}
}

func TestTypedAcceptsMatchingDimensions(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the package with the go command")
	}

	for _, body := range []string{
		"_ = Make[LengthDim](1).Add(Make[LengthDim](2))",
		"_ = Make[SpeedDim](1).Less(Make[SpeedDim](2))",
		"_ = Number(Make[DimensionlessDim](0.5))",
	} {
		assert.Empty(t, typeErrors(t, body), body)
	}
}
