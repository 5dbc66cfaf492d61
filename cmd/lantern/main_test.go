package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/lantern/internal/cli"
	"github.com/vk/lantern/internal/eval"
)

func TestRun_ConvertsStdin(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `<ROOM "A" "First." "Room A" <EXIT "NORTH" "B" "EAST" #NEXIT "A wall.">>`
	out := &bytes.Buffer{}

	// --- Act ---
	err := run([]string{"--format", "json", "--color", "never", "-"}, strings.NewReader(src), out, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, `{
  "rooms": [
    {
      "key": "A",
      "name": "Room A",
      "description": "First."
    }
  ],
  "edges": [
    {
      "source": "A",
      "direction": "NORTH",
      "target": "B"
    }
  ]
}
`, out.String())
}

func TestRun_ConfigFileOutput(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	input := filepath.Join(dir, "dung.mud")
	require.NoError(t, os.WriteFile(input, []byte(`<ROOM "A" "" "Room A" <EXIT "UP" "B">>`), 0600))
	cfgPath := filepath.Join(dir, "lantern.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: out/world.gv\nformat: dot\n"), 0600))

	// --- Act ---
	err := run([]string{"-c", cfgPath, input}, nil, &bytes.Buffer{}, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "out", "world.gv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"A" -> "B" [label="UP"];`)
}

func TestRun_MalformedInput(t *testing.T) {
	t.Parallel()

	err := run([]string{"--color", "never", "-"}, strings.NewReader(`<ROOM "A" "" "">`), &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, eval.ErrMalformedInput))
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run([]string{"-h"}, nil, out, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run([]string{"--this-is-not-a-valid-flag"}, nil, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}
