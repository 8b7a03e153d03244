// Package proximity ranks located records by great-circle distance from a
// query point. It depends only on the Locatable capability interface, so
// one implementation serves every facility dataset regardless of its
// payload fields.
package proximity

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// DefaultK is the result count used when a query does not ask for one.
const DefaultK = 5

// earthRadiusKm is the fixed spherical radius used by the haversine
// formula. The sphere is an approximation of the ellipsoid; adequate for
// regional-scale ranking, not for sub-meter precision.
const earthRadiusKm = 6371.0

// Locatable is the minimal capability a record needs for proximity
// ranking.
type Locatable interface {
	// Coordinate returns the record position as (lon, lat), WGS84.
	Coordinate() orb.Point
	// FacilityType classifies the record for type filtering.
	FacilityType() string
}

// Hit pairs a record with its distance from the query point.
type Hit[T Locatable] struct {
	Record     T
	DistanceKm float64
}

// Options tune a nearest query.
type Options struct {
	// K caps the result count. Zero means DefaultK; negative yields no
	// results.
	K int
	// Types restricts results to records whose FacilityType is listed.
	// Empty means no restriction.
	Types []string
}

// Nearest scans records and returns at most k of them ordered by
// ascending distance from origin. Records with NaN or out-of-range
// coordinates are treated as absent rather than failing the query. The
// sort is stable, so equidistant records keep their input order and
// repeated queries are deterministic.
//
// Complexity is O(n log n) per query. Record sets here are in the low
// thousands; a spatial index behind the same contract is the upgrade path
// if that stops being true.
func Nearest[T Locatable](origin orb.Point, records []T, opts Options) []Hit[T] {
	k := opts.K
	if k == 0 {
		k = DefaultK
	}
	if k < 0 || !validPoint(origin) {
		return nil
	}

	allow := typeSet(opts.Types)

	hits := make([]Hit[T], 0, len(records))
	for _, r := range records {
		if allow != nil && !allow[r.FacilityType()] {
			continue
		}
		pt := r.Coordinate()
		if !validPoint(pt) {
			continue
		}
		hits = append(hits, Hit[T]{
			Record:     r,
			DistanceKm: HaversineKm(origin, pt),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].DistanceKm < hits[j].DistanceKm
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits
}

// HaversineKm returns the great-circle distance between two points in
// kilometers, on a sphere of radius 6371 km.
func HaversineKm(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func validPoint(p orb.Point) bool {
	lat, lon := p.Lat(), p.Lon()
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func typeSet(types []string) map[string]bool {
	if len(types) == 0 {
		return nil
	}
	s := make(map[string]bool, len(types))
	for _, t := range types {
		s[t] = true
	}
	return s
}
