package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shrines.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	path := writeSeed(t, `[
		{"id": "meiji", "name": "明治神宮", "prefecture": "東京都", "lat": 35.6764, "lng": 139.6993},
		{"name": "無名社", "lat": 35.0}
	]`)

	shrines, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, shrines, 2)

	assert.Equal(t, "meiji", shrines[0].ID)
	assert.True(t, shrines[0].HasCoordinates())

	_, err = uuid.Parse(shrines[1].ID)
	assert.NoError(t, err)
	assert.False(t, shrines[1].HasCoordinates())
	assert.Nil(t, shrines[1].Prefecture)
}

func TestLoadSeedFile_Errors(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadSeedFile(writeSeed(t, `{"id": "x"}`))
	assert.Error(t, err)

	_, err = LoadSeedFile(writeSeed(t, `[{"id": "a"}, {"id": "a"}]`))
	assert.ErrorContains(t, err, "duplicate")

	_, err = LoadSeedFile(writeSeed(t, `[null]`))
	assert.Error(t, err)
}
