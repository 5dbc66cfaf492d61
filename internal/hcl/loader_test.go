package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_FullFile(t *testing.T) {
	// --- Arrange ---
	path := writeFile(t, "lantern.hcl", `
input       = "data/mdl/dung.mud"
output      = "out/zork.gv"
format      = "dot"
graph_name  = "zork"
diagnostics = true
log_level   = "debug"

globals {
  FOREST  = "Forest"
  RLANDBIT = 4
  LIT     = true
  EXITS   = ["NORTH", "FORE1"]
}
`)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "data/mdl/dung.mud", model.Input)
	assert.Equal(t, "out/zork.gv", model.Output)
	assert.Equal(t, "dot", model.Format)
	assert.Equal(t, "zork", model.GraphName)
	assert.True(t, model.Diagnostics)
	assert.Equal(t, "debug", model.LogLevel)
	assert.Equal(t, map[string]any{
		"FOREST":   "Forest",
		"RLANDBIT": int64(4),
		"LIT":      true,
		"EXITS":    []any{"NORTH", "FORE1"},
	}, model.Globals)
}

func TestLoad_Minimal(t *testing.T) {
	path := writeFile(t, "lantern.hcl", `format = "json"`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "json", model.Format)
	assert.Empty(t, model.Globals)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		msg     string
	}{
		{name: "syntax", content: `format = `, msg: "failed to parse HCL file"},
		{name: "unknown attribute", content: `colour = "always"`, msg: "failed to decode HCL file"},
		{name: "fractional global", content: "globals {\n  X = 1.5\n}\n", msg: "is not an integer"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "bad.hcl", tc.content)
			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestFromCtyValue(t *testing.T) {
	v, err := fromCtyValue(cty.SetVal([]cty.Value{cty.StringVal("A")}))
	require.NoError(t, err)
	assert.Equal(t, []any{"A"}, v)

	_, err = fromCtyValue(cty.NullVal(cty.String))
	assert.Error(t, err)

	_, err = fromCtyValue(cty.ObjectVal(map[string]cty.Value{"a": cty.True}))
	assert.Error(t, err)
}
