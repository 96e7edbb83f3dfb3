package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	doc := map[string]any{"name": "api.example.com", "enabled": true}

	require.NoError(t, WriteJSON(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
	assert.Contains(t, string(data), "  \"name\"", "output is indented")
	assert.Equal(t, byte('\n'), data[len(data)-1], "output ends with a newline")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, doc, parsed)
}

func TestWriteJSONOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0o600))

	require.NoError(t, WriteJSON(path, map[string]string{"fresh": "yes"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old content")
	assert.Contains(t, string(data), "fresh")
}

func TestWriteJSONUnmarshalableValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	err := WriteJSON(path, func() {})
	require.Error(t, err)
	assert.NoFileExists(t, path)
}
