package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vk/lantern/internal/ctxlog"
	"github.com/vk/lantern/internal/fsutil"
	"github.com/vk/lantern/internal/highlight"
	"github.com/vk/lantern/internal/render"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	inR    io.Reader
	outW   io.Writer
	logW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. It loads the run
// configuration file named by cfg, if any, and returns an App with its own
// isolated logger. inR is read when the input path is "-"; the artifact
// goes to outW unless an output path is configured; logs go to logW.
func NewApp(inR io.Reader, outW, logW io.Writer, cfg *Config) (*App, error) {
	a := &App{inR: inR, outW: outW, logW: logW, config: cfg}
	a.configureLogger()
	ctx := ctxlog.WithLogger(context.Background(), a.logger)
	a.logger.Debug("Logger configured successfully.")

	if cfg.ConfigPath != "" {
		loader, err := loaderFor(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		model, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := cfg.merge(model, filepath.Dir(cfg.ConfigPath)); err != nil {
			return nil, fmt.Errorf("invalid configuration in %s: %w", cfg.ConfigPath, err)
		}
		// Level and format may have come from the file.
		a.configureLogger()
		a.logger.Debug("Configuration file merged.", "path", cfg.ConfigPath, "globals", len(cfg.Globals))
	}

	if cfg.InputPath == "" {
		return nil, fmt.Errorf("no input: pass an MDL file path or set 'input' in the configuration file")
	}
	return a, nil
}

func (a *App) configureLogger() {
	level := a.config.LogLevel
	if a.config.Diagnostics {
		level = "debug"
	}
	a.logger = newLogger(level, a.config.LogFormat, a.logW)
}

// Config returns the effective configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}

// Run reads the input, converts it and writes the artifact.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath, "format", a.config.Format)

	name, src, err := a.readInput()
	if err != nil {
		return err
	}

	globals, err := toValues(a.config.Globals)
	if err != nil {
		return fmt.Errorf("invalid globals: %w", err)
	}

	format := render.Format(a.config.Format)
	out, err := Convert(ctx, name, src, Options{
		Format:    format,
		GraphName: a.config.GraphName,
		Globals:   globals,
		Trace:     a.config.Diagnostics,
	})
	if err != nil {
		return err
	}

	if err := a.writeOutput(out); err != nil {
		return err
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) readInput() (string, []byte, error) {
	path := a.config.InputPath
	if path == "-" {
		src, err := io.ReadAll(a.inR)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return "<stdin>", src, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read input: %w", err)
	}
	return path, src, nil
}

func (a *App) writeOutput(out string) error {
	if path := a.config.resolvedOutputPath(); path != "" {
		if err := fsutil.WriteFile(path, []byte(out)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		a.logger.Info("Artifact written.", "path", path, "bytes", len(out))
		return nil
	}

	mode, _ := highlight.ParseMode(a.config.Color)
	if highlight.Enabled(mode, a.outW) {
		return highlight.Write(a.outW, out, a.config.Format, a.config.Style)
	}
	_, err := io.WriteString(a.outW, out)
	return err
}
