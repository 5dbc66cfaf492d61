package eval

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vk/lantern/internal/mdl"
)

// Handler evaluates one tagged form. It receives the raw form so it can
// decide which arguments to evaluate, and in which environment.
type Handler func(ctx context.Context, ev *Evaluator, form *mdl.Form, env *Env) (Value, error)

// Module is implemented by every package that contributes form handlers.
type Module interface {
	Register(r *Registry)
}

// Registry collects handlers by tag before an Evaluator is built from it.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler for tag. Tags are matched case-insensitively.
// Registering the same tag twice is a programming error and panics.
func (r *Registry) Register(tag string, h Handler) {
	tag = strings.ToUpper(tag)
	if _, exists := r.handlers[tag]; exists {
		panic(fmt.Sprintf("form handler for tag '%s' already registered", tag))
	}
	slog.Debug("Registering form handler.", "tag", tag)
	r.handlers[tag] = h
}

// Tags returns the registered tags in no particular order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.handlers))
	for tag := range r.handlers {
		tags = append(tags, tag)
	}
	return tags
}

func (r *Registry) snapshot() map[string]Handler {
	m := make(map[string]Handler, len(r.handlers))
	for tag, h := range r.handlers {
		m[tag] = h
	}
	return m
}
