package eval

import (
	"strconv"
	"strings"

	"github.com/vk/lantern/internal/mdl"
)

// Value is the result of evaluating a node. String renders the value the
// way it would be written in MDL source, so string literals keep their
// quote delimiters.
//
// Core values are Str, Token, Int, False, List and Syntax. Handlers may
// return their own types.
type Value interface {
	String() string
}

// Str is a string literal value.
type Str string

func (s Str) String() string { return mdl.Quote(string(s)) }

// Token is an atom, a type-prefixed token such as #NEXIT, or the literal
// text of a reference that could not be resolved.
type Token string

func (t Token) String() string { return string(t) }

// Int is a numeric atom or the result of flag combination.
type Int int64

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// False is the value of the empty form <>.
type False struct{}

func (False) String() string { return "<>" }

// List is an ordered group of values.
type List []Value

func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Syntax is an unevaluated node: a quoted object or a form with no handler.
type Syntax struct {
	Node mdl.Node
}

func (s Syntax) String() string { return s.Node.String() }

// NoExit is the type-prefixed token marking a direction with no exit.
const NoExit Token = "#NEXIT"

// IsNoExit reports whether v is the no-exit sentinel.
func IsNoExit(v Value) bool {
	t, ok := v.(Token)
	return ok && t == NoExit
}

// parseInt recognises decimal atoms and MDL octal atoms written *777*.
func parseInt(text string) (Int, bool) {
	if len(text) > 2 && text[0] == '*' && text[len(text)-1] == '*' {
		n, err := strconv.ParseInt(text[1:len(text)-1], 8, 64)
		if err != nil {
			return 0, false
		}
		return Int(n), true
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return Int(n), true
}
