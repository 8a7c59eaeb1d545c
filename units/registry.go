package units

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"dimensional/si"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrUnknownUnit   = errors.New("units: unknown unit")
	ErrDuplicateUnit = errors.New("units: duplicate unit")
	ErrInvalidUnit   = errors.New("units: invalid unit")
	ErrSyntax        = errors.New("units: invalid quantity literal")
)

// Unit is a named constant: one Name (or Symbol, or alias) equals Quantity.
type Unit struct {
	Name     string
	Symbol   string
	Aliases  []string
	Quantity si.Quantity
}

func (u Unit) keys() []string {
	keys := make([]string, 0, len(u.Aliases)+2)
	keys = append(keys, u.Name, u.Symbol)
	return append(keys, u.Aliases...)
}

// Registry maps unit names, symbols and aliases to units. It is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	units []Unit
	index map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Builtin returns a new registry holding the built-in units.
func Builtin() *Registry {
	r := NewRegistry()
	for _, u := range builtins() {
		if err := r.Register(u); err != nil {
			panic(err)
		}
	}
	return r
}

var defaultRegistry = sync.OnceValue(Builtin)

// Default returns a shared registry of the built-in units.
func Default() *Registry { return defaultRegistry() }

// normalize folds compatibility forms so that the micro sign and Greek mu,
// or "m²" and "m2", name the same unit.
func normalize(s string) string {
	return norm.NFKC.String(strings.TrimSpace(s))
}

// Register adds u. Every key of u must be new to the registry.
func (r *Registry) Register(u Unit) error {
	if strings.TrimSpace(u.Name) == "" || strings.TrimSpace(u.Symbol) == "" {
		return fmt.Errorf("%w: name and symbol are required", ErrInvalidUnit)
	}
	if u.Quantity.Value() == 0 {
		return fmt.Errorf("%w: %s has zero magnitude", ErrInvalidUnit, u.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make(map[string]struct{})
	for _, k := range u.keys() {
		nk := normalize(k)
		if nk == "" {
			return fmt.Errorf("%w: %s has an empty alias", ErrInvalidUnit, u.Name)
		}
		if _, ok := r.index[nk]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateUnit, k)
		}
		keys[nk] = struct{}{}
	}
	r.units = append(r.units, u)
	for k := range keys {
		r.index[k] = len(r.units) - 1
	}
	return nil
}

// Lookup finds a unit by name, symbol or alias.
func (r *Registry) Lookup(key string) (Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[normalize(key)]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, key)
	}
	return r.units[i], nil
}

// Units returns all registered units sorted by name.
func (r *Registry) Units() []Unit {
	r.mu.RLock()
	out := make([]Unit, len(r.units))
	copy(out, r.units)
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.units)
}

// Parse reads a number followed by an optional unit, "10 km", "2.5e3m" or
// "180 °". Without a unit the result is dimensionless.
func (r *Registry) Parse(s string) (si.Quantity, error) {
	s = strings.TrimSpace(s)
	n := numericPrefix(s)
	if n == 0 {
		return si.Quantity{}, fmt.Errorf("%w: %q: missing number", ErrSyntax, s)
	}
	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		return si.Quantity{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
	}
	sym := strings.TrimSpace(s[n:])
	if sym == "" {
		return si.Scalar(v), nil
	}
	u, err := r.Lookup(sym)
	if err != nil {
		return si.Quantity{}, err
	}
	return u.Quantity.Scale(v), nil
}

// numericPrefix returns the length of the leading float literal in s.
// An exponent marker only counts when digits follow it, so "3em" keeps
// its unit.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
