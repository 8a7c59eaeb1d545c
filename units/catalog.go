package units

import (
	"errors"
	"fmt"
	"io"

	"dimensional/dimension"
	"dimensional/si"

	"gopkg.in/yaml.v3"
)

// Catalog is the YAML form of a unit table:
//
//	units:
//	  - name: furlong
//	    symbol: fur
//	    base: m
//	    factor: 201.168
//	  - name: atmosphere
//	    symbol: atm
//	    factor: 101325
//	    dimension: {mass: 1, length: -1, time: -2}
//
// A unit is factor times its base unit when base is set, otherwise factor
// coherent units of dimension. Exponents may be written as "1/2".
type Catalog struct {
	Units []CatalogEntry `yaml:"units"`
}

// CatalogEntry is one unit of a Catalog.
type CatalogEntry struct {
	Name      string        `yaml:"name"`
	Symbol    string        `yaml:"symbol"`
	Aliases   []string      `yaml:"aliases,omitempty"`
	Factor    float64       `yaml:"factor"`
	Base      string        `yaml:"base,omitempty"`
	Dimension DimensionSpec `yaml:"dimension,omitempty"`
}

// DimensionSpec lists the exponents of a catalog entry.
type DimensionSpec struct {
	Mass   Exponent `yaml:"mass,omitempty"`
	Length Exponent `yaml:"length,omitempty"`
	Time   Exponent `yaml:"time,omitempty"`
	Angle  Exponent `yaml:"angle,omitempty"`
}

// Vector returns the exponents as a dimension vector.
func (d DimensionSpec) Vector() dimension.Vector {
	return dimension.New(d.Mass.Rational, d.Length.Rational, d.Time.Rational, d.Angle.Rational)
}

func (d DimensionSpec) isZero() bool { return d.Vector().IsDimensionless() }

// Exponent decodes an integer or "n/d" YAML scalar.
type Exponent struct {
	dimension.Rational
}

func (e *Exponent) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: exponent must be a scalar", n.Line)
	}
	r, err := dimension.ParseRational(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	e.Rational = r
	return nil
}

func (e Exponent) MarshalYAML() (any, error) {
	if e.IsInt() {
		return e.Num(), nil
	}
	return e.String(), nil
}

// DecodeCatalog reads a YAML catalog.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("units: decode catalog: %w", err)
	}
	return &c, nil
}

// Load decodes a YAML catalog and registers its units in order, so a
// later entry may use an earlier one as its base. Registration stops at
// the first failing entry.
func (r *Registry) Load(src io.Reader) (int, error) {
	c, err := DecodeCatalog(src)
	if err != nil {
		return 0, err
	}
	for i, e := range c.Units {
		u, err := r.resolve(e)
		if err != nil {
			return i, err
		}
		if err := r.Register(u); err != nil {
			return i, err
		}
	}
	return len(c.Units), nil
}

func (r *Registry) resolve(e CatalogEntry) (Unit, error) {
	if e.Factor == 0 {
		return Unit{}, fmt.Errorf("%w: %s: factor is required", ErrInvalidUnit, e.Name)
	}
	q := si.New(e.Factor, e.Dimension.Vector())
	if e.Base != "" {
		if !e.Dimension.isZero() {
			return Unit{}, fmt.Errorf("%w: %s: base and dimension are exclusive", ErrInvalidUnit, e.Name)
		}
		base, err := r.Lookup(e.Base)
		if err != nil {
			return Unit{}, fmt.Errorf("%s: %w", e.Name, err)
		}
		q = base.Quantity.Scale(e.Factor)
	}
	return Unit{Name: e.Name, Symbol: e.Symbol, Aliases: e.Aliases, Quantity: q}, nil
}

// Catalog exports the registry as a YAML catalog in name order.
func (r *Registry) Catalog() *Catalog {
	var c Catalog
	for _, u := range r.Units() {
		d := u.Quantity.Dim()
		c.Units = append(c.Units, CatalogEntry{
			Name:    u.Name,
			Symbol:  u.Symbol,
			Aliases: u.Aliases,
			Factor:  u.Quantity.Value(),
			Dimension: DimensionSpec{
				Mass:   Exponent{d.Mass()},
				Length: Exponent{d.Length()},
				Time:   Exponent{d.Time()},
				Angle:  Exponent{d.Angle()},
			},
		})
	}
	return &c
}

// WriteCatalog encodes c as YAML.
func WriteCatalog(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("units: encode catalog: %w", err)
	}
	return enc.Close()
}
