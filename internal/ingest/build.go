package ingest

import (
	"fmt"

	billy "github.com/go-git/go-billy/v5"

	"github.com/glennballman/Community-Canvas-sub001/api"
	"github.com/glennballman/Community-Canvas-sub001/internal/cascade"
	"github.com/glennballman/Community-Canvas-sub001/internal/gazetteer"
	"github.com/glennballman/Community-Canvas-sub001/internal/refdata"
)

// Build constructs a complete engine snapshot from configuration: place
// tree, name matcher, tier tables, then every declared dataset. Any
// invariant violation fails the build; a broken tree would corrupt every
// subsequent ancestor walk, so nothing is served until everything loads.
func Build(cfg *api.Config, fsys billy.Filesystem) (*refdata.Snapshot, error) {
	tree, err := gazetteer.NewTree(cfg.Places)
	if err != nil {
		return nil, fmt.Errorf("build place tree: %w", err)
	}

	matcher, err := gazetteer.NewMatcher(tree, cfg.Aliases)
	if err != nil {
		return nil, fmt.Errorf("build name matcher: %w", err)
	}

	sources, err := cascade.NewResolver(tree, matcher, cfg.Sources)
	if err != nil {
		return nil, fmt.Errorf("build tier tables: %w", err)
	}

	loader := NewLoader(fsys)
	datasets := make([]*refdata.Dataset, 0, len(cfg.Datasets))
	for _, desc := range cfg.Datasets {
		d, err := loader.LoadDataset(desc)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, d)
	}

	return refdata.NewSnapshot(tree, matcher, sources, datasets)
}
