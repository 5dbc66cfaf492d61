package yamlcfg

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
	path := filepath.Join(t.TempDir(), "lantern.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	// --- Arrange ---
	path := writeFile(t, `
input: dung.mud
format: json
color: never
globals:
  FOREST: Forest
  RLANDBIT: 4
  LIT: true
  EXITS: [NORTH, FORE1]
`)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "dung.mud", model.Input)
	assert.Equal(t, "json", model.Format)
	assert.Equal(t, "never", model.Color)
	assert.Equal(t, map[string]any{
		"FOREST":   "Forest",
		"RLANDBIT": int64(4),
		"LIT":      true,
		"EXITS":    []any{"NORTH", "FORE1"},
	}, model.Globals)
}

func TestLoad_EmptyFile(t *testing.T) {
	model, err := NewLoader().Load(context.Background(), writeFile(t, ""))
	require.NoError(t, err)
	assert.Empty(t, model.Format)
	assert.Empty(t, model.Globals)
}

func TestLoad_Errors(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), writeFile(t, "colour: always\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode YAML file")

	_, err = NewLoader().Load(context.Background(), writeFile(t, "globals:\n  X: 1.5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not an integer")

	_, err = NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open YAML file")
}
