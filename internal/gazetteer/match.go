package gazetteer

import (
	"fmt"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/glennballman/Community-Canvas-sub001/api"
)

// Matcher resolves free-text municipality names to tree nodes. Datasets
// key on whatever name their upstream used ("City of Vancouver",
// "Vancouver", "Vancouver, City of"), so resolution is two-phase: an exact
// lookup against the configured alias table, then a case-insensitive
// containment scan over municipality names and short forms. Exact alias
// hits are preferred for determinism; containment is intentionally
// permissive and callers needing precision should pass ids instead.
type Matcher struct {
	tree    *Tree
	aliases map[string]string // folded display name -> node id
	cache   *gocache.Cache
}

// NewMatcher builds a matcher over an immutable tree. Alias entries
// pointing at unknown places are configuration errors.
func NewMatcher(tree *Tree, aliases []api.Alias) (*Matcher, error) {
	m := &Matcher{
		tree:    tree,
		aliases: make(map[string]string, len(aliases)),
		cache:   gocache.New(gocache.NoExpiration, 0),
	}

	for _, a := range aliases {
		if _, ok := tree.Node(a.Place); !ok {
			return nil, fmt.Errorf("alias %q: place %q does not exist", a.Name, a.Place)
		}
		m.aliases[fold(a.Name)] = a.Place
	}

	// Canonical names and short forms resolve exactly without being
	// declared as aliases.
	for _, n := range tree.Municipalities() {
		if _, taken := m.aliases[fold(n.Name)]; !taken {
			m.aliases[fold(n.Name)] = n.ID
		}
		if n.Short != "" {
			if _, taken := m.aliases[fold(n.Short)]; !taken {
				m.aliases[fold(n.Short)] = n.ID
			}
		}
	}

	return m, nil
}

// ResolveMunicipality maps a free-text name onto a municipality node.
// Returns false when nothing matches; an unresolvable name is a normal
// state, not an error.
func (m *Matcher) ResolveMunicipality(freeText string) (*Node, bool) {
	q := fold(freeText)
	if q == "" {
		return nil, false
	}

	if hit, ok := m.cache.Get(q); ok {
		id := hit.(string)
		if id == "" {
			return nil, false
		}
		n, _ := m.tree.Node(id)
		return n, true
	}

	n, ok := m.resolve(q)
	if ok {
		m.cache.Set(q, n.ID, gocache.NoExpiration)
		return n, true
	}
	m.cache.Set(q, "", gocache.NoExpiration)
	return nil, false
}

func (m *Matcher) resolve(q string) (*Node, bool) {
	if id, ok := m.aliases[q]; ok {
		n, _ := m.tree.Node(id)
		return n, true
	}

	// Containment fallback, either direction, first match by declaration
	// order.
	for _, n := range m.tree.Municipalities() {
		if containsEither(fold(n.Name), q) {
			return n, true
		}
		if n.Short != "" && containsEither(fold(n.Short), q) {
			return n, true
		}
	}
	return nil, false
}

func containsEither(stored, query string) bool {
	return strings.Contains(stored, query) || strings.Contains(query, stored)
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
