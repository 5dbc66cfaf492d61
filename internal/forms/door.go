package forms

import (
	"context"

	"github.com/vk/lantern/internal/eval"
	"github.com/vk/lantern/internal/mdl"
)

// Door is one exit shared by two rooms. It only exists until it is used as
// an exit target, where it resolves to the side opposite the current room.
type Door struct {
	Key   eval.Value
	RoomA eval.Value
	RoomB eval.Value

	form *mdl.Form
}

func (d *Door) String() string {
	return "<DOOR " + d.Key.String() + " " + d.RoomA.String() + " " + d.RoomB.String() + ">"
}

// Connects reports whether key is one of the door's two rooms.
func (d *Door) Connects(key eval.Str) bool {
	return d.RoomA == eval.Value(key) || d.RoomB == eval.Value(key)
}

// Resolve returns the room on the other side of the door from rc. A door
// that does not connect rc leads to RoomA.
func (d *Door) Resolve(rc *eval.RoomContext) (eval.Value, error) {
	if rc == nil {
		return nil, eval.Unresolved(d.form, "door %s used outside a room", d.Key)
	}
	if d.RoomA == eval.Value(rc.Key) {
		return d.RoomB, nil
	}
	return d.RoomA, nil
}

func newDoor(ctx context.Context, ev *eval.Evaluator, f *mdl.Form, env *eval.Env) (*Door, error) {
	if len(f.Args) < 3 {
		return nil, eval.Malformed(f, "DOOR expects a door key and two rooms, got %d argument(s)", len(f.Args))
	}
	vals := make([]eval.Value, 3)
	for i, n := range f.Args[:3] {
		v, err := ev.Eval(ctx, n, env)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return &Door{Key: vals[0], RoomA: vals[1], RoomB: vals[2], form: f}, nil
}

// doorForm handles a DOOR form reached through generic evaluation, most
// often as the value of a SETG. The door stays unresolved, even inside a
// room, so the stored global still works from the other side; exit lists
// resolve it when they use it.
func doorForm(ctx context.Context, ev *eval.Evaluator, f *mdl.Form, env *eval.Env) (eval.Value, error) {
	d, err := newDoor(ctx, ev, f, env)
	if err != nil {
		return nil, err
	}
	return d, nil
}
