package forms

import (
	"context"

	"github.com/vk/lantern/internal/eval"
	"github.com/vk/lantern/internal/mdl"
)

// conditionalExitForm handles <CEXIT condition target [message ...]>. The
// converter has no game state to test the condition against, so the exit
// always resolves to its target; the condition and the remaining fields are
// never evaluated.
func conditionalExitForm(ctx context.Context, ev *eval.Evaluator, f *mdl.Form, env *eval.Env) (eval.Value, error) {
	if len(f.Args) < 2 {
		return nil, eval.Malformed(f, "CEXIT expects a condition and a target, got %d argument(s)", len(f.Args))
	}
	ev.Tracef(ctx, "Taking conditional exit target.", "condition", f.Args[0].String(), "target", f.Args[1].String())
	return ev.Eval(ctx, f.Args[1], env)
}
