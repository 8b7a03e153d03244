package proximity

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
	"github.com/paulmach/orb"
)

// Index pre-buckets a fixed record set by facility type so repeated
// filtered queries skip the per-query type scan. The bitmap per type holds
// record positions; a filter becomes a bitmap union instead of a predicate
// on every record. Built once per snapshot, read-only afterwards.
type Index[T Locatable] struct {
	records  []T
	eligible *roaring.Bitmap            // records with valid coordinates
	byType   map[string]*roaring.Bitmap // facility type -> record positions
}

// NewIndex builds an index over records. Records with invalid coordinates
// are excluded up front; they can never appear in a result.
func NewIndex[T Locatable](records []T) *Index[T] {
	idx := &Index[T]{
		records:  records,
		eligible: roaring.New(),
		byType:   make(map[string]*roaring.Bitmap),
	}
	for i, r := range records {
		if !validPoint(r.Coordinate()) {
			continue
		}
		pos := uint32(i)
		idx.eligible.Add(pos)
		bm, ok := idx.byType[r.FacilityType()]
		if !ok {
			bm = roaring.New()
			idx.byType[r.FacilityType()] = bm
		}
		bm.Add(pos)
	}
	return idx
}

// Len returns the number of eligible records.
func (idx *Index[T]) Len() int {
	return int(idx.eligible.GetCardinality())
}

// Types returns the distinct facility types present, sorted.
func (idx *Index[T]) Types() []string {
	out := make([]string, 0, len(idx.byType))
	for t := range idx.byType {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Nearest matches the contract of the package-level Nearest function over
// the indexed records.
func (idx *Index[T]) Nearest(origin orb.Point, opts Options) []Hit[T] {
	k := opts.K
	if k == 0 {
		k = DefaultK
	}
	if k < 0 || !validPoint(origin) {
		return nil
	}

	candidates := idx.eligible
	if len(opts.Types) > 0 {
		candidates = roaring.New()
		for _, t := range opts.Types {
			if bm, ok := idx.byType[t]; ok {
				candidates.Or(bm)
			}
		}
	}

	hits := make([]Hit[T], 0, candidates.GetCardinality())
	it := candidates.Iterator()
	for it.HasNext() {
		r := idx.records[it.Next()]
		hits = append(hits, Hit[T]{
			Record:     r,
			DistanceKm: HaversineKm(origin, r.Coordinate()),
		})
	}

	// Bitmap iteration is ascending by position, so input order is already
	// the tie-break order and a stable sort preserves it.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].DistanceKm < hits[j].DistanceKm
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits
}
