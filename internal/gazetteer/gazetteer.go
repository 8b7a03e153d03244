package gazetteer

import (
	"fmt"

	"github.com/glennballman/Community-Canvas-sub001/api"
)

// Level is the depth class of a place node. Levels are ordered from most
// general to most specific; a child is always deeper than its parent.
type Level int

const (
	LevelPlanet Level = iota
	LevelCountry
	LevelProvince
	LevelRegion
	LevelMunicipality
	LevelCommunity
	LevelAddress
)

var levelNames = map[Level]string{
	LevelPlanet:       "planet",
	LevelCountry:      "country",
	LevelProvince:     "province",
	LevelRegion:       "region",
	LevelMunicipality: "municipality",
	LevelCommunity:    "community",
	LevelAddress:      "address",
}

func (l Level) String() string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel maps a configuration string onto a Level.
func ParseLevel(s string) (Level, error) {
	for l, n := range levelNames {
		if n == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q", s)
}

// Node is one place in the hierarchy. Nodes are built once from
// configuration and are read-only afterwards.
type Node struct {
	ID       string
	Name     string
	Short    string
	Level    Level
	Parent   string   // empty for the root
	Children []string // child node ids, declaration order
}

// Tree is the immutable place hierarchy. All lookups are safe for
// concurrent use; nothing mutates a Tree after NewTree returns.
type Tree struct {
	nodes map[string]*Node
	order []string // declaration order
	root  string
}

// NewTree builds and validates the place hierarchy. A malformed tree
// (duplicate id, orphan parent, level inversion, cycle, zero or multiple
// roots) corrupts every subsequent ancestor walk, so construction fails
// fast instead of deferring to query time.
func NewTree(places []api.Place) (*Tree, error) {
	t := &Tree{
		nodes: make(map[string]*Node, len(places)),
		order: make([]string, 0, len(places)),
	}

	for _, p := range places {
		if p.ID == "" {
			return nil, fmt.Errorf("place %q: missing id", p.Name)
		}
		if _, dup := t.nodes[p.ID]; dup {
			return nil, fmt.Errorf("place %q: duplicate id", p.ID)
		}
		lvl, err := ParseLevel(p.Level)
		if err != nil {
			return nil, fmt.Errorf("place %q: %w", p.ID, err)
		}
		t.nodes[p.ID] = &Node{
			ID:     p.ID,
			Name:   p.Name,
			Short:  p.Short,
			Level:  lvl,
			Parent: p.Parent,
		}
		t.order = append(t.order, p.ID)
	}

	for _, id := range t.order {
		n := t.nodes[id]
		if n.Parent == "" {
			if t.root != "" {
				return nil, fmt.Errorf("place %q: second root (root is %q)", id, t.root)
			}
			t.root = id
			continue
		}
		parent, ok := t.nodes[n.Parent]
		if !ok {
			return nil, fmt.Errorf("place %q: parent %q does not exist", id, n.Parent)
		}
		if n.Level <= parent.Level {
			return nil, fmt.Errorf("place %q: level %s is not below parent %q (%s)",
				id, n.Level, parent.ID, parent.Level)
		}
		parent.Children = append(parent.Children, id)
	}

	if t.root == "" {
		return nil, fmt.Errorf("no root place (every place has a parent)")
	}

	// Level ordering forbids direct self-reference and two-node cycles, but
	// not longer ones if level parsing ever loosens. Walk every node to the
	// root with a step bound.
	for _, id := range t.order {
		steps := 0
		for cur := t.nodes[id]; cur.Parent != ""; cur = t.nodes[cur.Parent] {
			steps++
			if steps > len(t.order) {
				return nil, fmt.Errorf("place %q: cycle in parent chain", id)
			}
		}
	}

	return t, nil
}

// Node returns the place with the given id.
func (t *Tree) Node(id string) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Root returns the unique root of the hierarchy.
func (t *Tree) Root() *Node {
	return t.nodes[t.root]
}

// Len returns the number of places in the tree.
func (t *Tree) Len() int {
	return len(t.order)
}

// Children returns the direct children of a place, in declaration order.
// Unknown ids and leaves both yield an empty slice; absence of scoping
// information is not an error.
func (t *Tree) Children(id string) []*Node {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	out := make([]*Node, 0, len(n.Children))
	for _, cid := range n.Children {
		out = append(out, t.nodes[cid])
	}
	return out
}

// AncestorChain returns the path from the root down to the given place,
// inclusive. Unknown ids yield an empty chain.
func (t *Tree) AncestorChain(id string) []*Node {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	var chain []*Node
	for {
		chain = append(chain, n)
		if n.Parent == "" {
			break
		}
		n = t.nodes[n.Parent]
	}
	// Built leaf-first; reverse to root-first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// RegionOf returns the nearest ancestor at the region level, including the
// place itself when it is a region.
func (t *Tree) RegionOf(id string) (*Node, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, false
	}
	for {
		if n.Level == LevelRegion {
			return n, true
		}
		if n.Parent == "" {
			return nil, false
		}
		n = t.nodes[n.Parent]
	}
}

// Municipalities returns all municipality-level places in declaration
// order. The matcher's containment fallback depends on this order being
// stable.
func (t *Tree) Municipalities() []*Node {
	var out []*Node
	for _, id := range t.order {
		if n := t.nodes[id]; n.Level == LevelMunicipality {
			out = append(out, n)
		}
	}
	return out
}
