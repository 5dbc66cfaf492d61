package eval

// Globals is the global-value store of one evaluator. It has a single
// writer and reader (the evaluating goroutine) and is not synchronised.
type Globals struct {
	vals map[string]Value
}

func newGlobals(initial map[string]Value) *Globals {
	g := &Globals{vals: make(map[string]Value, len(initial))}
	for name, v := range initial {
		g.vals[name] = v
	}
	return g
}

// Set stores v under name, replacing any earlier value.
func (g *Globals) Set(name string, v Value) {
	g.vals[name] = v
}

// Lookup returns the value stored under name.
func (g *Globals) Lookup(name string) (Value, bool) {
	v, ok := g.vals[name]
	return v, ok
}

// Len returns the number of defined globals.
func (g *Globals) Len() int { return len(g.vals) }
