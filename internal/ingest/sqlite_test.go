package ingest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glennballman/Community-Canvas-sub001/api"
	"github.com/glennballman/Community-Canvas-sub001/internal/refdata"
)

func writeRecordsDB(t *testing.T, path string, records []string) {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.Exec(`CREATE TABLE records (id TEXT PRIMARY KEY, record TEXT NOT NULL)`)
	require.NoError(t, err)

	for i, rec := range records {
		_, err = db.Exec(`INSERT INTO records (id, record) VALUES (?, ?)`, i, rec)
		require.NoError(t, err)
	}
}

func TestLoader_LoadSQLiteDataset(t *testing.T) {
	dir := t.TempDir()
	writeRecordsDB(t, filepath.Join(dir, "waste.db"), []string{
		`{"name": "Vancouver South Transfer Station", "type": "transfer", "municipality": "City of Vancouver", "region": "Metro Vancouver", "latitude": 49.2047, "longitude": -123.0994, "materials": ["garbage", "green waste"], "operator": "City of Vancouver"}`,
		`{"name": "Broken Depot", "type": "recycling"}`,
	})

	loader := NewLoader(osfs.New(dir))
	ds, err := loader.LoadDataset(api.Dataset{Name: "waste", Kind: "waste", File: "waste.db"})
	require.NoError(t, err)

	require.Len(t, ds.Records, 1)
	assert.Equal(t, 1, ds.Skipped)

	fac, ok := ds.Records[0].(refdata.WasteFacility)
	require.True(t, ok)
	assert.Equal(t, "Vancouver South Transfer Station", fac.Name)
	assert.Equal(t, []string{"garbage", "green waste"}, fac.Materials)
	assert.Equal(t, "City of Vancouver", fac.Operator)
}

func TestReadSQLite_MissingFile(t *testing.T) {
	_, err := readSQLite(filepath.Join(t.TempDir(), "absent.db"))
	assert.Error(t, err)
}

func TestReadSQLite_MalformedRecord(t *testing.T) {
	dir := t.TempDir()
	writeRecordsDB(t, filepath.Join(dir, "bad.db"), []string{`{not json`})

	_, err := readSQLite(filepath.Join(dir, "bad.db"))
	assert.Error(t, err)
}
