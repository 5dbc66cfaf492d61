package mdl

import (
	"fmt"
	"strings"
)

// Pos is a 1-based line/column location in the source text.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Node is one element of the syntax tree. The concrete types form a closed
// set: *Atom, *String, *Hash, *GlobalRef, *LocalRef, *Form, *List, *Prefixed.
type Node interface {
	Pos() Pos
	String() string
	node()
}

// Atom is a bare token such as NORTH, RLANDBIT or 42.
type Atom struct {
	At   Pos
	Text string
}

// String is a string literal. Value holds the decoded contents.
type String struct {
	At    Pos
	Value string
}

// Hash is a type-prefixed token such as #NEXIT. The object that usually
// follows it is read as a separate sibling node.
type Hash struct {
	At   Pos
	Type string
}

// GlobalRef is a global-value indirection: ,NAME.
type GlobalRef struct {
	At   Pos
	Name string
}

// LocalRef is a local-value reference: .NAME.
type LocalRef struct {
	At   Pos
	Name string
}

// Form is a bracketed application <HEAD args...>. Tag is the upper-cased
// head atom, or empty when the head is not an atom or the form is <>.
type Form struct {
	At   Pos
	Tag  string
	Head Node
	Args []Node
}

// List is a literal grouping: (...), [...] or {...}.
type List struct {
	At    Pos
	Open  byte
	Items []Node
}

// Prefixed is an object preceded by a reader prefix: ' ! % or %%.
type Prefixed struct {
	At     Pos
	Prefix string
	X      Node
}

func (n *Atom) Pos() Pos      { return n.At }
func (n *String) Pos() Pos    { return n.At }
func (n *Hash) Pos() Pos      { return n.At }
func (n *GlobalRef) Pos() Pos { return n.At }
func (n *LocalRef) Pos() Pos  { return n.At }
func (n *Form) Pos() Pos      { return n.At }
func (n *List) Pos() Pos      { return n.At }
func (n *Prefixed) Pos() Pos  { return n.At }

func (*Atom) node()      {}
func (*String) node()    {}
func (*Hash) node()      {}
func (*GlobalRef) node() {}
func (*LocalRef) node()  {}
func (*Form) node()      {}
func (*List) node()      {}
func (*Prefixed) node()  {}

func (n *Atom) String() string      { return n.Text }
func (n *String) String() string    { return Quote(n.Value) }
func (n *Hash) String() string      { return "#" + n.Type }
func (n *GlobalRef) String() string { return "," + n.Name }
func (n *LocalRef) String() string  { return "." + n.Name }
func (n *Prefixed) String() string  { return n.Prefix + n.X.String() }

func (n *Form) String() string {
	if n.Head == nil {
		return "<>"
	}
	parts := make([]string, 0, len(n.Args)+1)
	parts = append(parts, n.Head.String())
	for _, a := range n.Args {
		parts = append(parts, a.String())
	}
	return "<" + strings.Join(parts, " ") + ">"
}

func (n *List) String() string {
	parts := make([]string, len(n.Items))
	for i, it := range n.Items {
		parts[i] = it.String()
	}
	return string(n.Open) + strings.Join(parts, " ") + string(closerFor(n.Open))
}

// Quote renders s as an MDL string literal, escaping quotes and backslashes.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

func closerFor(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	case '<':
		return '>'
	}
	return 0
}
