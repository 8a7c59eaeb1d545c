package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dimensional/units"
)

func TestLoadUnitsBuiltinOnly(t *testing.T) {
	reg, err := loadUnits("")
	require.NoError(t, err)
	assert.Equal(t, units.Builtin().Len(), reg.Len())
}

func TestLoadUnitsWithCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
units:
  - name: furlong
    symbol: fur
    factor: 0.125
    base: mi
`), 0o600))

	reg, err := loadUnits(path)
	require.NoError(t, err)
	u, err := reg.Lookup("fur")
	require.NoError(t, err)
	assert.InDelta(t, 201.168, u.Quantity.Value(), 1e-9)
}

func TestLoadUnitsErrors(t *testing.T) {
	_, err := loadUnits(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "dup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("units:\n  - {name: metre2, symbol: m, factor: 1, base: m}\n"), 0o600))
	_, err = loadUnits(path)
	assert.ErrorIs(t, err, units.ErrDuplicateUnit)
}
