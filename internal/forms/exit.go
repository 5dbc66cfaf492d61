package forms

import (
	"context"

	"github.com/vk/lantern/internal/eval"
	"github.com/vk/lantern/internal/mdl"
)

// exitForm handles an EXIT form reached through generic evaluation.
func exitForm(ctx context.Context, ev *eval.Evaluator, f *mdl.Form, env *eval.Env) (eval.Value, error) {
	return ResolveExits(ctx, ev, f, env, eval.RoomFromEnv(env))
}

// ResolveExits turns the arguments of an EXIT form into a flat list that
// alternates direction and target. Conditional exits, doors and inline
// assignments collapse to one target each, and every no-exit pair is
// dropped. rc may be nil when no room is being built; a door then fails
// with eval.ErrUnresolvedContext.
func ResolveExits(ctx context.Context, ev *eval.Evaluator, f *mdl.Form, env *eval.Env, rc *eval.RoomContext) (eval.List, error) {
	ev.Tracef(ctx, "Resolving exits.", "form", f.String())

	args := f.Args
	exits := make(eval.List, 0, len(args))
	for i := 0; i < len(args); i++ {
		n := args[i]

		if isNoExitNode(n) {
			if len(exits)%2 == 0 {
				return nil, eval.Malformed(n, "no-exit marker has no direction before it")
			}
			// The BKBOX room lists #NEXIT twice before its message.
			if i+1 < len(args) && isNoExitNode(args[i+1]) {
				ev.Tracef(ctx, "Skipping repeated no-exit marker.", "pos", args[i+1].Pos().String())
				i++
			}
			if i+1 >= len(args) {
				return nil, eval.Malformed(n, "no-exit marker is missing its message")
			}
			ev.Tracef(ctx, "Dropping exit with no way through.", "direction", exits[len(exits)-1].String())
			exits = exits[:len(exits)-1]
			i++
			continue
		}

		v, err := exitTarget(ctx, ev, n, env, rc)
		if err != nil {
			return nil, err
		}
		exits = append(exits, v)
	}

	if len(exits)%2 != 0 {
		return nil, eval.Malformed(f, "exit list has odd length %d", len(exits))
	}
	return exits, nil
}

func exitTarget(ctx context.Context, ev *eval.Evaluator, n mdl.Node, env *eval.Env, rc *eval.RoomContext) (eval.Value, error) {
	var (
		v   eval.Value
		err error
	)
	switch n := n.(type) {
	case *mdl.Form:
		switch n.Tag {
		case "CEXIT":
			v, err = conditionalExitForm(ctx, ev, n, env)
		case "DOOR":
			var d *Door
			if d, err = newDoor(ctx, ev, n, env); err == nil {
				return resolveDoorValue(ctx, ev, d, rc)
			}
		case "SETG", "PSETG":
			v, err = setGlobalForm(ctx, ev, n, env)
		default:
			v, err = ev.Eval(ctx, n, env)
		}
	case *mdl.GlobalRef:
		v = ev.LookupGlobal(ctx, n)
	default:
		v, err = ev.Eval(ctx, n, env)
	}
	if err != nil {
		return nil, err
	}
	return resolveDoorValue(ctx, ev, v, rc)
}

// resolveDoorValue resolves a door in an exit slot, whether it was written
// inline or reached through a global or an inline assignment.
func resolveDoorValue(ctx context.Context, ev *eval.Evaluator, v eval.Value, rc *eval.RoomContext) (eval.Value, error) {
	d, ok := v.(*Door)
	if !ok {
		return v, nil
	}
	if rc != nil && !d.Connects(rc.Key) {
		ev.Tracef(ctx, "Door does not connect the current room, using its first side.",
			"door", d.Key.String(), "room", string(rc.Key), "target", d.RoomA.String())
	}
	return d.Resolve(rc)
}

func isNoExitNode(n mdl.Node) bool {
	h, ok := n.(*mdl.Hash)
	return ok && eval.Token(h.String()) == eval.NoExit
}
