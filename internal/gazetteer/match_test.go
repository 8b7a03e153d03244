package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glennballman/Community-Canvas-sub001/api"
)

func TestMatcher_ResolveMunicipality(t *testing.T) {
	tree, err := NewTree(bcPlaces())
	require.NoError(t, err)

	m, err := NewMatcher(tree, []api.Alias{
		{Name: "Vancouver, City of", Place: "muni-vancouver"},
	})
	require.NoError(t, err)

	t.Run("exact alias", func(t *testing.T) {
		n, ok := m.ResolveMunicipality("Vancouver, City of")
		require.True(t, ok)
		assert.Equal(t, "muni-vancouver", n.ID)
	})

	t.Run("canonical name", func(t *testing.T) {
		n, ok := m.ResolveMunicipality("City of Vancouver")
		require.True(t, ok)
		assert.Equal(t, "muni-vancouver", n.ID)
	})

	t.Run("short form case-insensitive", func(t *testing.T) {
		n, ok := m.ResolveMunicipality("vancouver")
		require.True(t, ok)
		assert.Equal(t, "muni-vancouver", n.ID)
	})

	t.Run("containment stored-contains-query", func(t *testing.T) {
		n, ok := m.ResolveMunicipality("Burnab")
		require.True(t, ok)
		assert.Equal(t, "muni-burnaby", n.ID)
	})

	t.Run("containment query-contains-stored", func(t *testing.T) {
		n, ok := m.ResolveMunicipality("Victoria Harbour Area")
		require.True(t, ok)
		assert.Equal(t, "muni-victoria", n.ID)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := m.ResolveMunicipality("Unknown Town")
		assert.False(t, ok)
	})

	t.Run("empty input", func(t *testing.T) {
		_, ok := m.ResolveMunicipality("   ")
		assert.False(t, ok)
	})

	t.Run("deterministic across repeated calls", func(t *testing.T) {
		a, okA := m.ResolveMunicipality("Vancouver")
		b, okB := m.ResolveMunicipality("Vancouver")
		require.True(t, okA)
		require.True(t, okB)
		assert.Same(t, a, b)
	})
}

func TestMatcher_AliasBeatsContainment(t *testing.T) {
	tree, err := NewTree(bcPlaces())
	require.NoError(t, err)

	// Without the alias, "Vancouver" would containment-match the first
	// municipality in declaration order. The alias pins it elsewhere.
	m, err := NewMatcher(tree, []api.Alias{
		{Name: "Vancouver", Place: "muni-burnaby"},
	})
	require.NoError(t, err)

	n, ok := m.ResolveMunicipality("Vancouver")
	require.True(t, ok)
	assert.Equal(t, "muni-burnaby", n.ID)
}

func TestNewMatcher_UnknownAliasTarget(t *testing.T) {
	tree, err := NewTree(bcPlaces())
	require.NoError(t, err)

	_, err = NewMatcher(tree, []api.Alias{{Name: "Gotham", Place: "muni-gotham"}})
	assert.Error(t, err)
}
