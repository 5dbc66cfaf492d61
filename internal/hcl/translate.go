package hcl

import (
	"context"
	"fmt"

	"github.com/vk/lantern/internal/config"
	"github.com/vk/lantern/internal/ctxlog"
)

// translateRoot converts the HCL-specific file schema into the agnostic model.
func (l *Loader) translateRoot(ctx context.Context, root *fileRoot) (*config.Model, error) {
	model := &config.Model{
		Input:       root.Input,
		Output:      root.Output,
		Format:      root.Format,
		GraphName:   root.GraphName,
		Diagnostics: root.Diagnostics,
		Color:       root.Color,
		Style:       root.Style,
		LogLevel:    root.LogLevel,
		LogFormat:   root.LogFormat,
		Globals:     make(map[string]any),
	}
	if root.Globals == nil {
		return model, nil
	}

	logger := ctxlog.FromContext(ctx)
	attrs, diags := root.Globals.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid globals block: %w", diags)
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid value for global %q: %w", name, diags)
		}
		goVal, err := fromCtyValue(val)
		if err != nil {
			return nil, fmt.Errorf("global %q: %w", name, err)
		}
		logger.Debug("Translated global.", "name", name, "type", val.Type().FriendlyName())
		model.Globals[name] = goVal
	}
	return model, nil
}
