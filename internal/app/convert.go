package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/lantern/internal/ctxlog"
	"github.com/vk/lantern/internal/eval"
	"github.com/vk/lantern/internal/forms"
	"github.com/vk/lantern/internal/mdl"
	"github.com/vk/lantern/internal/render"
	"github.com/vk/lantern/internal/world"
)

// Options controls a single conversion.
type Options struct {
	Format    render.Format
	GraphName string
	Globals   map[string]eval.Value
	Trace     bool
}

// coreModules is the list of form handler modules every evaluator gets.
var coreModules = []eval.Module{
	forms.Module{},
}

// Convert parses MDL source, evaluates it with the room form handlers,
// extracts the rooms and renders them in the requested format. name is used
// in syntax error positions only.
func Convert(ctx context.Context, name string, src []byte, opts Options) (string, error) {
	logger := ctxlog.FromContext(ctx)

	nodes, err := mdl.Parse(name, src)
	if err != nil {
		return "", err
	}
	logger.Debug("Source parsed.", "name", name, "top_level_forms", len(nodes))

	reg := eval.NewRegistry()
	for _, mod := range coreModules {
		mod.Register(reg)
	}
	ev := eval.New(reg, eval.Options{Globals: opts.Globals, Trace: opts.Trace})

	values, err := ev.EvalAll(ctx, nodes)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate %s: %w", name, err)
	}
	logger.Debug("Source evaluated.", "globals", ev.Globals().Len())

	rooms, err := world.Extract(ctx, values)
	if err != nil {
		return "", fmt.Errorf("failed to extract rooms: %w", err)
	}
	graph, err := world.Build(ctx, rooms)
	if err != nil {
		return "", fmt.Errorf("failed to build room graph: %w", err)
	}
	logger.Info("Room graph built.", "rooms", len(graph.Rooms), "edges", len(graph.Edges))

	format := opts.Format
	if format == "" {
		format = render.FormatLisp
	}
	var b strings.Builder
	doc := &render.Document{Rooms: rooms, Graph: graph, GraphName: opts.GraphName}
	if err := render.Render(&b, format, doc); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", format, err)
	}
	return b.String(), nil
}
