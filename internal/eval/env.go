package eval

// RoomKeyName is the binding a room-building form adds to its child
// environment so nested forms can find the room being built.
const RoomKeyName = "ROOM-KEY"

// Env is one frame of a lexical environment chain.
type Env struct {
	vars   map[string]Value
	parent *Env
}

// NewEnv returns an empty root environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]Value)}
}

// Extend returns a child frame binding names to values, positionally.
// Surplus names are left unbound; surplus values are ignored.
func (e *Env) Extend(names []string, values []Value) *Env {
	child := &Env{vars: make(map[string]Value, len(names)), parent: e}
	for i, name := range names {
		if i >= len(values) {
			break
		}
		child.vars[name] = values[i]
	}
	return child
}

// Lookup searches this frame, then each parent in turn.
func (e *Env) Lookup(name string) (Value, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// RoomContext identifies the room currently being built. Room-building
// handlers pass it explicitly to exit resolution.
type RoomContext struct {
	Key Str
}

// RoomFromEnv recovers the room context from a ROOM-KEY binding. It is the
// fallback for room-dependent forms reached through generic evaluation.
func RoomFromEnv(e *Env) *RoomContext {
	if e == nil {
		return nil
	}
	v, ok := e.Lookup(RoomKeyName)
	if !ok {
		return nil
	}
	key, ok := v.(Str)
	if !ok {
		return nil
	}
	return &RoomContext{Key: key}
}
