// Package cascade merges tier-scoped data sources for a municipality.
// Provincial sources apply unconditionally, regional sources apply to
// every municipality inside the region, and municipal sources apply to one
// municipality. More specific tiers augment, never replace, the general
// ones.
package cascade

import (
	"fmt"

	"github.com/glennballman/Community-Canvas-sub001/api"
	"github.com/glennballman/Community-Canvas-sub001/internal/gazetteer"
)

// Scope is the tier a source is declared at.
type Scope int

const (
	ScopeProvincial Scope = iota
	ScopeRegional
	ScopeMunicipal
)

var scopeNames = map[Scope]string{
	ScopeProvincial: "provincial",
	ScopeRegional:   "regional",
	ScopeMunicipal:  "municipal",
}

func (s Scope) String() string {
	if n, ok := scopeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("scope(%d)", int(s))
}

// ParseScope maps a configuration string onto a Scope.
func ParseScope(s string) (Scope, error) {
	for sc, n := range scopeNames {
		if n == s {
			return sc, nil
		}
	}
	return 0, fmt.Errorf("unknown scope %q", s)
}

// Source is one resolved tier-scoped data source.
type Source struct {
	Name     string
	Category string
	Scope    Scope
	URL      string
}

// Result holds the three tiers applying to a municipality, each in
// configuration insertion order.
type Result struct {
	Provincial []Source
	Regional   []Source
	Municipal  []Source
	// RegionName is the display name of the resolved region, empty when
	// the municipality (or its region) is unknown.
	RegionName string
}

// Flatten concatenates the tiers most-general-first for callers wanting a
// single list.
func (r Result) Flatten() []Source {
	out := make([]Source, 0, len(r.Provincial)+len(r.Regional)+len(r.Municipal))
	out = append(out, r.Provincial...)
	out = append(out, r.Regional...)
	out = append(out, r.Municipal...)
	return out
}

// Resolver answers "which sources apply to municipality X". It is pure:
// the tables are built once from configuration and the same input always
// yields the same, order-stable output.
type Resolver struct {
	tree       *gazetteer.Tree
	matcher    *gazetteer.Matcher
	provincial []Source
	regional   map[string][]Source // region node id -> sources
	municipal  map[string][]Source // municipality node id -> sources
}

// NewResolver builds the tier tables. Scope keys are normalized to node
// ids here, at the configuration boundary: regional keys must name region
// nodes, and municipal keys (display names, as the datasets were authored)
// are resolved through the alias matcher exactly once. A key that resolves
// to nothing is dead configuration and fails construction.
func NewResolver(tree *gazetteer.Tree, matcher *gazetteer.Matcher, sources []api.Source) (*Resolver, error) {
	r := &Resolver{
		tree:      tree,
		matcher:   matcher,
		regional:  make(map[string][]Source),
		municipal: make(map[string][]Source),
	}

	for _, s := range sources {
		scope, err := ParseScope(s.Scope)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", s.Name, err)
		}
		src := Source{
			Name:     s.Name,
			Category: s.Category,
			Scope:    scope,
			URL:      s.URL,
		}

		switch scope {
		case ScopeProvincial:
			r.provincial = append(r.provincial, src)

		case ScopeRegional:
			if len(s.Keys) == 0 {
				return nil, fmt.Errorf("source %q: regional scope needs region keys", s.Name)
			}
			for _, key := range s.Keys {
				n, ok := tree.Node(key)
				if !ok {
					return nil, fmt.Errorf("source %q: region %q does not exist", s.Name, key)
				}
				if n.Level != gazetteer.LevelRegion {
					return nil, fmt.Errorf("source %q: %q is a %s, not a region", s.Name, key, n.Level)
				}
				r.regional[n.ID] = append(r.regional[n.ID], src)
			}

		case ScopeMunicipal:
			if len(s.Keys) == 0 {
				return nil, fmt.Errorf("source %q: municipal scope needs municipality keys", s.Name)
			}
			for _, key := range s.Keys {
				n, ok := matcher.ResolveMunicipality(key)
				if !ok {
					return nil, fmt.Errorf("source %q: municipality %q does not resolve", s.Name, key)
				}
				r.municipal[n.ID] = append(r.municipal[n.ID], src)
			}
		}
	}

	return r, nil
}

// Resolve returns the tiers applying to a free-text municipality name. An
// unresolvable name still carries the provincial tier; absence of regional
// or municipal data is a normal state, not an error.
func (r *Resolver) Resolve(municipalityName string) Result {
	out := Result{Provincial: r.provincial}

	muni, ok := r.matcher.ResolveMunicipality(municipalityName)
	if !ok {
		return out
	}

	if region, ok := r.tree.RegionOf(muni.ID); ok {
		out.RegionName = region.Name
		out.Regional = r.regional[region.ID]
	}
	out.Municipal = r.municipal[muni.ID]
	return out
}
