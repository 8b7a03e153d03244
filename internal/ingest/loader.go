// Package ingest loads facility datasets and assembles engine snapshots.
// Datasets arrive as JSON files (records selected with a JSONPath
// expression) or as SQLite databases with a records table; both shapes
// come from upstream exporters the engine does not control.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/glennballman/Community-Canvas-sub001/api"
	"github.com/glennballman/Community-Canvas-sub001/internal/proximity"
	"github.com/glennballman/Community-Canvas-sub001/internal/refdata"
)

// DefaultSelector picks every element of a top-level JSON array.
const DefaultSelector = "$[*]"

// Loader reads dataset files through a billy.Filesystem so tests can run
// against memfs. SQLite files are the one exception: database/sql needs a
// real path, so they are resolved against the filesystem root.
type Loader struct {
	fsys billy.Filesystem
}

func NewLoader(fsys billy.Filesystem) *Loader {
	return &Loader{fsys: fsys}
}

// LoadDataset reads, types, and indexes one dataset. Records that cannot
// be typed (missing coordinates, wrong shape) are skipped and counted;
// a file that cannot be opened or parsed fails the load.
func (l *Loader) LoadDataset(desc api.Dataset) (*refdata.Dataset, error) {
	kind, err := refdata.ParseKind(desc.Kind)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", desc.Name, err)
	}

	var raw []map[string]any
	if strings.HasSuffix(desc.File, ".db") {
		raw, err = l.loadSQLite(desc.File)
	} else {
		raw, err = l.loadJSON(desc.File, desc.Selector)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", desc.Name, err)
	}

	records := make([]proximity.Locatable, 0, len(raw))
	skipped := 0
	for _, m := range raw {
		rec, err := refdata.FromMap(kind, m, desc.Fields)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	return refdata.NewDataset(desc.Name, kind, records, skipped), nil
}

func (l *Loader) loadJSON(path, selector string) ([]map[string]any, error) {
	src, err := util.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	data, err := oj.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if selector == "" {
		selector = DefaultSelector
	}
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	var out []map[string]any
	for _, v := range x.Get(data) {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (l *Loader) loadSQLite(path string) ([]map[string]any, error) {
	return readSQLite(filepath.Join(l.fsys.Root(), path))
}
