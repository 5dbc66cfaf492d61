package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/lantern/internal/config"
	"github.com/vk/lantern/internal/highlight"
	"github.com/vk/lantern/internal/render"
)

// Names of the settings a run configuration file may carry. They double as
// keys of Config.Explicit.
const (
	FieldInput       = "input"
	FieldOutput      = "output"
	FieldFormat      = "format"
	FieldGraphName   = "graph_name"
	FieldDiagnostics = "diagnostics"
	FieldColor       = "color"
	FieldStyle       = "style"
	FieldLogLevel    = "log_level"
	FieldLogFormat   = "log_format"
)

// DefaultOutput is the --output value that selects the conventional output
// path for the chosen format.
const DefaultOutput = "default"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string // MDL source, "-" for stdin
	OutputPath string // artifact destination, empty for stdout
	ConfigPath string // optional run configuration file

	Format      string
	GraphName   string
	Diagnostics bool
	Color       string
	Style       string
	LogLevel    string
	LogFormat   string

	// Globals seeds the evaluator's global store. Values are string, bool,
	// int64 or []any of those.
	Globals map[string]any

	// Explicit marks the fields that were set on the command line. Values
	// from a configuration file never replace them.
	Explicit map[string]bool
}

// NewConfig fills in defaults and validates the enumerated settings.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = string(render.FormatLisp)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.Globals == nil {
		cfg.Globals = make(map[string]any)
	}
	if cfg.Explicit == nil {
		cfg.Explicit = make(map[string]bool)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	format, err := render.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	c.Format = string(format)

	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.New("invalid log-format: must be 'text' or 'json'")
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if _, ok := highlight.ParseMode(c.Color); !ok {
		return fmt.Errorf("invalid color mode %q: must be 'auto', 'always' or 'never'", c.Color)
	}
	return nil
}

// merge copies the settings of a loaded configuration file into c, except
// for fields set explicitly on the command line. Relative paths in the file
// are taken relative to the file's directory. Globals from the file are
// added under any given on the command line.
func (c *Config) merge(m *config.Model, baseDir string) error {
	setString := func(field string, dst *string, v string) {
		if v != "" && !c.Explicit[field] {
			*dst = v
		}
	}
	setPath := func(field string, dst *string, v string) {
		if v != "" && v != "-" && v != DefaultOutput && !filepath.IsAbs(v) {
			v = filepath.Join(baseDir, v)
		}
		setString(field, dst, v)
	}

	setPath(FieldInput, &c.InputPath, m.Input)
	setPath(FieldOutput, &c.OutputPath, m.Output)
	setString(FieldFormat, &c.Format, m.Format)
	setString(FieldGraphName, &c.GraphName, m.GraphName)
	setString(FieldColor, &c.Color, m.Color)
	setString(FieldStyle, &c.Style, m.Style)
	setString(FieldLogLevel, &c.LogLevel, m.LogLevel)
	setString(FieldLogFormat, &c.LogFormat, m.LogFormat)
	if m.Diagnostics && !c.Explicit[FieldDiagnostics] {
		c.Diagnostics = true
	}

	if c.Globals == nil {
		c.Globals = make(map[string]any)
	}
	for name, v := range m.Globals {
		if _, set := c.Globals[name]; !set {
			c.Globals[name] = v
		}
	}
	return c.validate()
}

// resolvedOutputPath maps the DefaultOutput marker to the conventional path
// for the configured format.
func (c *Config) resolvedOutputPath() string {
	if c.OutputPath == DefaultOutput {
		return DefaultOutputPath(render.Format(c.Format))
	}
	return c.OutputPath
}

// DefaultOutputPath returns the conventional output location for f.
func DefaultOutputPath(f render.Format) string {
	switch f {
	case render.FormatJSON:
		return filepath.Join("data", "json", "zork"+f.Extension())
	case render.FormatDOT:
		return filepath.Join("data", "graphviz", "zork"+f.Extension())
	}
	return filepath.Join("data", "lisp", "zork"+render.FormatLisp.Extension())
}
