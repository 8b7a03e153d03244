package refdata

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glennballman/Community-Canvas-sub001/api"
	"github.com/glennballman/Community-Canvas-sub001/internal/cascade"
	"github.com/glennballman/Community-Canvas-sub001/internal/gazetteer"
	"github.com/glennballman/Community-Canvas-sub001/internal/proximity"
)

func snapshotFixture(t *testing.T, taxiName string) *Snapshot {
	t.Helper()

	tree, err := gazetteer.NewTree([]api.Place{
		{ID: "earth", Name: "Earth", Level: "planet"},
		{ID: "canada", Name: "Canada", Level: "country", Parent: "earth"},
		{ID: "bc", Name: "British Columbia", Level: "province", Parent: "canada"},
		{ID: "metro-vancouver", Name: "Metro Vancouver", Level: "region", Parent: "bc"},
		{ID: "muni-vancouver", Name: "City of Vancouver", Short: "Vancouver", Level: "municipality", Parent: "metro-vancouver"},
	})
	require.NoError(t, err)

	matcher, err := gazetteer.NewMatcher(tree, nil)
	require.NoError(t, err)

	sources, err := cascade.NewResolver(tree, matcher, []api.Source{
		{Name: "provincial-base", Category: "general", Scope: "provincial"},
	})
	require.NoError(t, err)

	taxis := []proximity.Locatable{
		TaxiOperator{Site: Site{Name: taxiName, Type: "taxi", Position: orb.Point{-123.11, 49.26}}},
	}

	snap, err := NewSnapshot(tree, matcher, sources, []*Dataset{
		NewDataset("taxis", KindTaxi, taxis, 0),
	})
	require.NoError(t, err)
	return snap
}

func TestSnapshot_DatasetLookup(t *testing.T) {
	snap := snapshotFixture(t, "Yellow Cab")

	d, ok := snap.Dataset("taxis")
	require.True(t, ok)
	assert.Equal(t, KindTaxi, d.Kind)
	assert.Equal(t, []string{"taxi"}, d.Types())

	_, ok = snap.Dataset("drones")
	assert.False(t, ok)

	all := snap.Datasets()
	require.Len(t, all, 1)
	assert.Equal(t, "taxis", all[0].Name)
}

func TestSnapshot_Nearest(t *testing.T) {
	snap := snapshotFixture(t, "Yellow Cab")

	hits, err := snap.Nearest("taxis", orb.Point{-123.12, 49.28}, proximity.Options{K: 3})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "taxi", hits[0].Record.FacilityType())

	_, err = snap.Nearest("drones", orb.Point{-123.12, 49.28}, proximity.Options{})
	assert.Error(t, err)
}

func TestSnapshot_ResolveSources(t *testing.T) {
	snap := snapshotFixture(t, "Yellow Cab")

	res := snap.ResolveSources("Vancouver")
	assert.Len(t, res.Provincial, 1)
	assert.Equal(t, "Metro Vancouver", res.RegionName)
}

func TestNewSnapshot_DuplicateDataset(t *testing.T) {
	snap := snapshotFixture(t, "Yellow Cab")

	_, err := NewSnapshot(snap.Tree, snap.Matcher, snap.Sources, []*Dataset{
		NewDataset("taxis", KindTaxi, nil, 0),
		NewDataset("taxis", KindTaxi, nil, 0),
	})
	assert.Error(t, err)
}

func TestHotSwap_AtomicReplacement(t *testing.T) {
	before := snapshotFixture(t, "Yellow Cab")
	after := snapshotFixture(t, "Black Top Cab")

	h := NewHotSwap(before)

	hits, err := h.Nearest("taxis", orb.Point{-123.12, 49.28}, proximity.Options{K: 1})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Yellow Cab", hits[0].Record.(TaxiOperator).Name)

	held := h.Snapshot()
	h.Swap(after)

	// A reader holding the old snapshot still sees a complete structure.
	oldHits, err := held.Nearest("taxis", orb.Point{-123.12, 49.28}, proximity.Options{K: 1})
	require.NoError(t, err)
	assert.Equal(t, "Yellow Cab", oldHits[0].Record.(TaxiOperator).Name)

	newHits, err := h.Nearest("taxis", orb.Point{-123.12, 49.28}, proximity.Options{K: 1})
	require.NoError(t, err)
	assert.Equal(t, "Black Top Cab", newHits[0].Record.(TaxiOperator).Name)
}
