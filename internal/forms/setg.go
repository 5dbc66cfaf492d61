package forms

import (
	"context"

	"github.com/vk/lantern/internal/eval"
	"github.com/vk/lantern/internal/mdl"
)

// setGlobalForm handles <SETG name value> and <PSETG name value>. It stores
// the evaluated value as the global value of name and returns it, so an
// assignment used as an exit target yields its value in place.
func setGlobalForm(ctx context.Context, ev *eval.Evaluator, f *mdl.Form, env *eval.Env) (eval.Value, error) {
	if len(f.Args) < 2 {
		return nil, eval.Malformed(f, "%s expects a name and a value, got %d argument(s)", f.Tag, len(f.Args))
	}
	name, ok := f.Args[0].(*mdl.Atom)
	if !ok {
		return nil, eval.Malformed(f.Args[0], "%s name must be an atom, got %s", f.Tag, f.Args[0])
	}

	v, err := ev.Eval(ctx, f.Args[1], env)
	if err != nil {
		return nil, err
	}
	ev.Globals().Set(name.Text, v)
	ev.Tracef(ctx, "Set global value.", "name", name.Text, "value", v.String())
	return v, nil
}
