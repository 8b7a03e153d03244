package refdata

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"

	"github.com/glennballman/Community-Canvas-sub001/internal/cascade"
	"github.com/glennballman/Community-Canvas-sub001/internal/gazetteer"
	"github.com/glennballman/Community-Canvas-sub001/internal/proximity"
)

// Dataset is one loaded facility record set with its pre-built proximity
// index.
type Dataset struct {
	Name    string
	Kind    Kind
	Records []proximity.Locatable
	index   *proximity.Index[proximity.Locatable]
	// Skipped counts records dropped at load time for missing or
	// non-numeric coordinates.
	Skipped int
}

// NewDataset builds the dataset's proximity index once, at construction.
func NewDataset(name string, kind Kind, records []proximity.Locatable, skipped int) *Dataset {
	return &Dataset{
		Name:    name,
		Kind:    kind,
		Records: records,
		index:   proximity.NewIndex(records),
		Skipped: skipped,
	}
}

// Nearest ranks the dataset's records by distance from origin.
func (d *Dataset) Nearest(origin orb.Point, opts proximity.Options) []proximity.Hit[proximity.Locatable] {
	return d.index.Nearest(origin, opts)
}

// Types returns the distinct facility types in the dataset, sorted.
func (d *Dataset) Types() []string {
	return d.index.Types()
}

// Snapshot is the complete immutable state the engine queries: place
// hierarchy, name matcher, tier tables, and facility datasets. A snapshot
// is built once and never mutated, which makes every query safe to run
// concurrently without locking.
type Snapshot struct {
	Tree    *gazetteer.Tree
	Matcher *gazetteer.Matcher
	Sources *cascade.Resolver

	datasets map[string]*Dataset
	order    []string
	builtAt  time.Time
}

// NewSnapshot assembles a snapshot from already-constructed components.
func NewSnapshot(tree *gazetteer.Tree, matcher *gazetteer.Matcher, sources *cascade.Resolver, datasets []*Dataset) (*Snapshot, error) {
	s := &Snapshot{
		Tree:     tree,
		Matcher:  matcher,
		Sources:  sources,
		datasets: make(map[string]*Dataset, len(datasets)),
		builtAt:  time.Now(),
	}
	for _, d := range datasets {
		if _, dup := s.datasets[d.Name]; dup {
			return nil, fmt.Errorf("dataset %q: duplicate name", d.Name)
		}
		s.datasets[d.Name] = d
		s.order = append(s.order, d.Name)
	}
	return s, nil
}

// Dataset returns a loaded dataset by name.
func (s *Snapshot) Dataset(name string) (*Dataset, bool) {
	d, ok := s.datasets[name]
	return d, ok
}

// Datasets returns all datasets in configuration order.
func (s *Snapshot) Datasets() []*Dataset {
	out := make([]*Dataset, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.datasets[name])
	}
	return out
}

// BuiltAt reports when the snapshot was constructed.
func (s *Snapshot) BuiltAt() time.Time {
	return s.builtAt
}

// ResolveSources runs cascade resolution against the snapshot's tables.
func (s *Snapshot) ResolveSources(municipalityName string) cascade.Result {
	return s.Sources.Resolve(municipalityName)
}

// Nearest ranks one dataset's records by distance from origin.
func (s *Snapshot) Nearest(dataset string, origin orb.Point, opts proximity.Options) ([]proximity.Hit[proximity.Locatable], error) {
	d, ok := s.datasets[dataset]
	if !ok {
		return nil, fmt.Errorf("dataset %q: not loaded", dataset)
	}
	return d.Nearest(origin, opts), nil
}
