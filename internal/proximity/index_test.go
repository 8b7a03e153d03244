package proximity

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexFixture() []testFacility {
	return []testFacility{
		{name: "hall", kind: "fire", pt: pointAtKm(vancouver, 3)},
		{name: "station", kind: "police", pt: pointAtKm(vancouver, 1)},
		{name: "dock", kind: "marine", pt: pointAtKm(vancouver, 2)},
		{name: "broken", kind: "marine", pt: orb.Point{math.NaN(), math.NaN()}},
		{name: "depot", kind: "fire", pt: pointAtKm(vancouver, 4)},
	}
}

func TestIndex_ExcludesInvalidRecords(t *testing.T) {
	idx := NewIndex(indexFixture())
	assert.Equal(t, 4, idx.Len())
	assert.Equal(t, []string{"fire", "marine", "police"}, idx.Types())
}

func TestIndex_NearestMatchesScan(t *testing.T) {
	records := indexFixture()
	idx := NewIndex(records)

	cases := []Options{
		{K: 10},
		{K: 2},
		{K: 10, Types: []string{"fire"}},
		{K: 10, Types: []string{"fire", "marine"}},
		{K: 10, Types: []string{"unknown"}},
	}

	for _, opts := range cases {
		want := Nearest(vancouver, records, opts)
		got := idx.Nearest(vancouver, opts)
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i].Record.name, got[i].Record.name)
			assert.Equal(t, want[i].DistanceKm, got[i].DistanceKm)
		}
	}
}

func TestIndex_NearestFiltered(t *testing.T) {
	idx := NewIndex(indexFixture())

	hits := idx.Nearest(vancouver, Options{K: 5, Types: []string{"fire"}})
	require.Len(t, hits, 2)
	assert.Equal(t, "hall", hits[0].Record.name)
	assert.Equal(t, "depot", hits[1].Record.name)
}
