package jsoncfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lantern.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_WithComments(t *testing.T) {
	// --- Arrange ---
	path := writeFile(t, `{
  // where to read from
  "input": "dung.mud",
  "format": "dot",
  "graph_name": "zork",
  "globals": {
    "RLANDBIT": 4,
    "EXITS": ["NORTH", 2], /* trailing comma below */
  },
}`)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "dung.mud", model.Input)
	assert.Equal(t, "dot", model.Format)
	assert.Equal(t, "zork", model.GraphName)
	assert.Equal(t, map[string]any{
		"RLANDBIT": int64(4),
		"EXITS":    []any{"NORTH", int64(2)},
	}, model.Globals)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		msg     string
	}{
		{name: "unknown field", content: `{"colour": "always"}`, msg: "failed to decode JSON file"},
		{name: "fractional global", content: `{"globals": {"X": 1.5}}`, msg: "is not an integer"},
		{name: "null global", content: `{"globals": {"X": null}}`, msg: "null is not a valid global value"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().Load(context.Background(), writeFile(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}
