package eval

import (
	"context"
	"fmt"

	"github.com/vk/lantern/internal/ctxlog"
	"github.com/vk/lantern/internal/mdl"
)

// Options configures a new Evaluator.
type Options struct {
	// Globals seeds the global store before any form is evaluated.
	Globals map[string]Value
	// Trace enables debug-level diagnostics from the evaluator and handlers.
	Trace bool
}

// Evaluator evaluates syntax trees for one conversion run.
type Evaluator struct {
	handlers map[string]Handler
	globals  *Globals
	trace    bool
}

// New builds an evaluator from a snapshot of reg. Later changes to reg are
// not seen by the evaluator.
func New(reg *Registry, opts Options) *Evaluator {
	handlers := map[string]Handler{}
	if reg != nil {
		handlers = reg.snapshot()
	}
	return &Evaluator{
		handlers: handlers,
		globals:  newGlobals(opts.Globals),
		trace:    opts.Trace,
	}
}

// Globals exposes the evaluator's global store to handlers.
func (ev *Evaluator) Globals() *Globals { return ev.globals }

// Tracef logs a debug diagnostic when tracing is enabled.
func (ev *Evaluator) Tracef(ctx context.Context, msg string, args ...any) {
	if !ev.trace {
		return
	}
	ctxlog.FromContext(ctx).Debug(msg, args...)
}

// EvalAll evaluates top-level nodes strictly left to right in one root
// environment and returns their values in order. The first error aborts.
func (ev *Evaluator) EvalAll(ctx context.Context, nodes []mdl.Node) ([]Value, error) {
	env := NewEnv()
	values := make([]Value, 0, len(nodes))
	for _, n := range nodes {
		v, err := ev.Eval(ctx, n, env)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Eval evaluates a single node in env.
func (ev *Evaluator) Eval(ctx context.Context, n mdl.Node, env *Env) (Value, error) {
	switch n := n.(type) {
	case *mdl.String:
		return Str(n.Value), nil
	case *mdl.Atom:
		if i, ok := parseInt(n.Text); ok {
			return i, nil
		}
		return Token(n.Text), nil
	case *mdl.Hash:
		return Token(n.String()), nil
	case *mdl.GlobalRef:
		return ev.LookupGlobal(ctx, n), nil
	case *mdl.LocalRef:
		if v, ok := env.Lookup(n.Name); ok {
			return v, nil
		}
		ev.Tracef(ctx, "Unbound local value, keeping literal token.", "token", n.String(), "pos", n.Pos().String())
		return Token(n.String()), nil
	case *mdl.List:
		return ev.evalItems(ctx, n.Items, env)
	case *mdl.Prefixed:
		if n.Prefix == "'" {
			return Syntax{Node: n.X}, nil
		}
		return ev.Eval(ctx, n.X, env)
	case *mdl.Form:
		return ev.evalForm(ctx, n, env)
	}
	return nil, fmt.Errorf("%s: %w: unknown node type %T", n.Pos(), ErrMalformedInput, n)
}

// LookupGlobal resolves a global indirection. A missing value is not an
// error: the literal token is returned in its place.
func (ev *Evaluator) LookupGlobal(ctx context.Context, ref *mdl.GlobalRef) Value {
	if v, ok := ev.globals.Lookup(ref.Name); ok {
		return v
	}
	ev.Tracef(ctx, "Unknown global value, keeping literal token.",
		"token", ref.String(), "pos", ref.Pos().String(), "error", ErrUnresolvedReference)
	return Token(ref.String())
}

func (ev *Evaluator) evalItems(ctx context.Context, items []mdl.Node, env *Env) (List, error) {
	out := make(List, 0, len(items))
	for _, it := range items {
		v, err := ev.Eval(ctx, it, env)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (ev *Evaluator) evalForm(ctx context.Context, f *mdl.Form, env *Env) (Value, error) {
	if f.Head == nil {
		return False{}, nil
	}
	if h, ok := ev.handlers[f.Tag]; ok {
		return h(ctx, ev, f, env)
	}
	switch f.Tag {
	case "LIST":
		return ev.evalItems(ctx, f.Args, env)
	case "+":
		return ev.combineFlags(ctx, f, env)
	}
	// Forms without a handler are generic applications of procedures this
	// evaluator does not model. They stay inert.
	return Syntax{Node: f}, nil
}

// combineFlags ORs integer operands. Operands that are not integers, such
// as flag names that were never defined, leave the combination symbolic.
func (ev *Evaluator) combineFlags(ctx context.Context, f *mdl.Form, env *Env) (Value, error) {
	operands, err := ev.evalItems(ctx, f.Args, env)
	if err != nil {
		return nil, err
	}
	var bits Int
	for _, v := range operands {
		i, ok := v.(Int)
		if !ok {
			return operands, nil
		}
		bits |= i
	}
	return bits, nil
}
