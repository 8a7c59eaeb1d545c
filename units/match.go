package units

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Match returns the units whose name, symbol or any alias matches the
// glob pattern, sorted by name. An empty pattern matches every unit.
func (r *Registry) Match(pattern string) ([]Unit, error) {
	all := r.Units()
	if pattern == "" {
		return all, nil
	}
	g, err := glob.Compile(normalize(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrSyntax, pattern, err)
	}
	var out []Unit
	for _, u := range all {
		for _, key := range u.keys() {
			if g.Match(normalize(key)) {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}
