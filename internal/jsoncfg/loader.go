// Package jsoncfg loads run configuration files written in JSON. Comments
// and trailing commas are accepted.
package jsoncfg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
	"github.com/vk/lantern/internal/config"
	"github.com/vk/lantern/internal/ctxlog"
)

type fileRoot struct {
	Input       string         `json:"input"`
	Output      string         `json:"output"`
	Format      string         `json:"format"`
	GraphName   string         `json:"graph_name"`
	Diagnostics bool           `json:"diagnostics"`
	Color       string         `json:"color"`
	Style       string         `json:"style"`
	LogLevel    string         `json:"log_level"`
	LogFormat   string         `json:"log_format"`
	Globals     map[string]any `json:"globals"`
}

// Loader is the JSON implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new JSON loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path, strips comments, and decodes it. Unknown
// keys are rejected.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("JSON loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file %s: %w", path, err)
	}

	var root fileRoot
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode JSON file %s: %w", path, err)
	}

	globals, err := config.NormalizeGlobals(root.Globals)
	if err != nil {
		return nil, fmt.Errorf("invalid globals in %s: %w", path, err)
	}
	logger.Debug("JSON loader finished.", "path", path, "globals", len(globals))

	return &config.Model{
		Input:       root.Input,
		Output:      root.Output,
		Format:      root.Format,
		GraphName:   root.GraphName,
		Diagnostics: root.Diagnostics,
		Color:       root.Color,
		Style:       root.Style,
		LogLevel:    root.LogLevel,
		LogFormat:   root.LogFormat,
		Globals:     globals,
	}, nil
}
