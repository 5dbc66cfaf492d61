package forms

import (
	"context"

	"github.com/vk/lantern/internal/ctxlog"
	"github.com/vk/lantern/internal/eval"
	"github.com/vk/lantern/internal/mdl"
)

// Room is the record a ROOM form evaluates to. Fields keep their evaluated
// form, so string fields still render with their quote delimiters. Exits
// alternates direction and target and always has even length.
type Room struct {
	Key         eval.Str
	Name        eval.Value
	Description eval.Value
	Exits       eval.List
}

func (r *Room) String() string { return "#ROOM " + r.Key.String() }

// roomForm handles <ROOM key description name exits ...>. Arguments after
// the exits (objects, action, flags) play no part in the room graph.
func roomForm(ctx context.Context, ev *eval.Evaluator, f *mdl.Form, env *eval.Env) (eval.Value, error) {
	if len(f.Args) < 4 {
		return nil, eval.Malformed(f, "ROOM expects key, description, name and exits, got %d argument(s)", len(f.Args))
	}
	keyNode, ok := f.Args[0].(*mdl.String)
	if !ok {
		return nil, eval.Malformed(f.Args[0], "room key must be a string literal, got %s", f.Args[0])
	}
	key := eval.Str(keyNode.Value)

	child := env.Extend([]string{eval.RoomKeyName}, []eval.Value{key})
	rc := &eval.RoomContext{Key: key}
	ctx = ctxlog.With(ctx, "room", string(key))

	desc, err := ev.Eval(ctx, f.Args[1], child)
	if err != nil {
		return nil, err
	}
	name, err := ev.Eval(ctx, f.Args[2], child)
	if err != nil {
		return nil, err
	}
	exits, err := roomExits(ctx, ev, f.Args[3], child, rc)
	if err != nil {
		return nil, err
	}

	ev.Tracef(ctx, "Built room.", "key", string(key), "exits", len(exits)/2)
	return &Room{Key: key, Name: name, Description: desc, Exits: exits}, nil
}

// roomExits evaluates the exits expression of a room. An EXIT form is
// resolved directly against rc; anything else must evaluate to a list.
func roomExits(ctx context.Context, ev *eval.Evaluator, n mdl.Node, env *eval.Env, rc *eval.RoomContext) (eval.List, error) {
	if f, ok := n.(*mdl.Form); ok && f.Tag == "EXIT" {
		return ResolveExits(ctx, ev, f, env, rc)
	}

	v, err := ev.Eval(ctx, n, env)
	if err != nil {
		return nil, err
	}
	var exits eval.List
	switch v := v.(type) {
	case eval.False:
	case eval.List:
		exits = make(eval.List, 0, len(v))
		for _, item := range v {
			item, err := resolveDoorValue(ctx, ev, item, rc)
			if err != nil {
				return nil, err
			}
			exits = append(exits, item)
		}
	default:
		return nil, eval.Malformed(n, "room exits must be an EXIT form or a list, got %s", v)
	}
	if len(exits)%2 != 0 {
		return nil, eval.Malformed(n, "exit list has odd length %d", len(exits))
	}
	return exits, nil
}
