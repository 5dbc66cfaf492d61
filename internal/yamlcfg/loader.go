// Package yamlcfg loads run configuration files written in YAML.
package yamlcfg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/lantern/internal/config"
	"github.com/vk/lantern/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

type fileRoot struct {
	Input       string         `yaml:"input"`
	Output      string         `yaml:"output"`
	Format      string         `yaml:"format"`
	GraphName   string         `yaml:"graph_name"`
	Diagnostics bool           `yaml:"diagnostics"`
	Color       string         `yaml:"color"`
	Style       string         `yaml:"style"`
	LogLevel    string         `yaml:"log_level"`
	LogFormat   string         `yaml:"log_format"`
	Globals     map[string]any `yaml:"globals"`
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and decodes the YAML file at path. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open YAML file %s: %w", path, err)
	}
	defer f.Close()

	var root fileRoot
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	globals, err := config.NormalizeGlobals(root.Globals)
	if err != nil {
		return nil, fmt.Errorf("invalid globals in %s: %w", path, err)
	}
	logger.Debug("YAML loader finished.", "path", path, "globals", len(globals))

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
