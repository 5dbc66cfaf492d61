package mdl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax is wrapped by every error the reader returns.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports malformed source text at a position.
type SyntaxError struct {
	Name string
	At   Pos
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%s: %s", e.Name, e.At, e.Msg)
}

// Unwrap lets callers test with errors.Is(err, ErrSyntax).
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Parse reads every top-level object in src. name is used in error messages.
func Parse(name string, src []byte) ([]Node, error) {
	r := &reader{name: name, src: src, line: 1, col: 1}
	var nodes []Node
	for {
		n, err := r.next()
		if err != nil {
			return nil, err
		}
		if n == nil {
			if r.eof() {
				return nodes, nil
			}
			c := r.peek()
			return nil, r.errorf(r.pos(), "unexpected %q", c)
		}
		nodes = append(nodes, n)
	}
}

type reader struct {
	name string
	src  []byte
	off  int
	line int
	col  int
}

func (r *reader) eof() bool  { return r.off >= len(r.src) }
func (r *reader) peek() byte { return r.src[r.off] }
func (r *reader) pos() Pos   { return Pos{Line: r.line, Col: r.col} }

func (r *reader) peekAt(i int) (byte, bool) {
	if r.off+i >= len(r.src) {
		return 0, false
	}
	return r.src[r.off+i], true
}

func (r *reader) advance() byte {
	c := r.src[r.off]
	r.off++
	if c == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return c
}

func (r *reader) errorf(at Pos, format string, args ...any) error {
	return &SyntaxError{Name: r.name, At: at, Msg: fmt.Sprintf(format, args...)}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDelimiter(c byte) bool {
	switch c {
	case '<', '>', '(', ')', '[', ']', '{', '}', '"', ';':
		return true
	}
	return isSpace(c)
}

func (r *reader) skipSpace() {
	for !r.eof() && isSpace(r.peek()) {
		r.advance()
	}
}

// next returns the next object, or nil at end of input or before a closer.
func (r *reader) next() (Node, error) {
	for {
		r.skipSpace()
		if r.eof() {
			return nil, nil
		}
		if r.peek() != ';' {
			break
		}
		// A semicolon comments out the object that follows it.
		at := r.pos()
		r.advance()
		n, err := r.next()
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, r.errorf(at, "comment is missing its object")
		}
	}

	at := r.pos()
	c := r.peek()
	switch c {
	case ')', ']', '}', '>':
		return nil, nil
	case '"':
		return r.readString(at)
	case '<':
		r.advance()
		return r.readForm(at)
	case '(', '[', '{':
		r.advance()
		items, err := r.readUntil(at, closerFor(c))
		if err != nil {
			return nil, err
		}
		return &List{At: at, Open: c, Items: items}, nil
	case ',':
		r.advance()
		if r.atomFollows() {
			return &GlobalRef{At: at, Name: r.readAtomText()}, nil
		}
		return r.readPrefixed(at, ",")
	case '.':
		if next, ok := r.peekAt(1); ok && !isDelimiter(next) && !isDigit(next) {
			r.advance()
			return &LocalRef{At: at, Name: r.readAtomText()}, nil
		}
	case '#':
		if r.off+1 < len(r.src) && !isDelimiter(r.src[r.off+1]) {
			r.advance()
			return &Hash{At: at, Type: r.readAtomText()}, nil
		}
	case '\'':
		r.advance()
		return r.readPrefixed(at, "'")
	case '!':
		if next, ok := r.peekAt(1); ok && next == '\\' {
			// Character literal such as !\" keeps its escaped byte.
			r.advance()
			r.advance()
			if r.eof() {
				return nil, r.errorf(at, "unterminated character literal")
			}
			ch := r.advance()
			return &Atom{At: at, Text: "!\\" + string(ch)}, nil
		}
		if next, ok := r.peekAt(1); ok && strings.IndexByte("<,.('[", next) >= 0 {
			r.advance()
			return r.readPrefixed(at, "!")
		}
	case '%':
		prefix := "%"
		if next, ok := r.peekAt(1); ok && next == '%' {
			prefix = "%%"
		}
		if next, ok := r.peekAt(len(prefix)); ok && strings.IndexByte("<,.('[", next) >= 0 {
			for i := 0; i < len(prefix); i++ {
				r.advance()
			}
			return r.readPrefixed(at, prefix)
		}
	}
	return &Atom{At: at, Text: r.readAtomText()}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (r *reader) atomFollows() bool {
	return !r.eof() && !isDelimiter(r.peek())
}

func (r *reader) readAtomText() string {
	var b strings.Builder
	for !r.eof() && !isDelimiter(r.peek()) {
		c := r.advance()
		if c == '\\' && !r.eof() {
			b.WriteByte(c)
			c = r.advance()
		}
		b.WriteByte(c)
	}
	return b.String()
}

func (r *reader) readString(at Pos) (Node, error) {
	r.advance()
	var b strings.Builder
	for {
		if r.eof() {
			return nil, r.errorf(at, "unterminated string")
		}
		c := r.advance()
		switch c {
		case '"':
			return &String{At: at, Value: b.String()}, nil
		case '\\':
			if r.eof() {
				return nil, r.errorf(at, "unterminated string")
			}
			b.WriteByte(r.advance())
		default:
			b.WriteByte(c)
		}
	}
}

func (r *reader) readPrefixed(at Pos, prefix string) (Node, error) {
	x, err := r.next()
	if err != nil {
		return nil, err
	}
	if x == nil {
		return nil, r.errorf(at, "%q prefix is missing its object", prefix)
	}
	return &Prefixed{At: at, Prefix: prefix, X: x}, nil
}

func (r *reader) readForm(at Pos) (Node, error) {
	items, err := r.readUntil(at, '>')
	if err != nil {
		return nil, err
	}
	f := &Form{At: at}
	if len(items) == 0 {
		return f, nil
	}
	f.Head = items[0]
	f.Args = items[1:]
	if a, ok := f.Head.(*Atom); ok {
		f.Tag = strings.ToUpper(a.Text)
	}
	return f, nil
}

func (r *reader) readUntil(at Pos, closer byte) ([]Node, error) {
	var items []Node
	for {
		n, err := r.next()
		if err != nil {
			return nil, err
		}
		if n != nil {
			items = append(items, n)
			continue
		}
		if r.eof() {
			return nil, r.errorf(at, "missing %q", closer)
		}
		if c := r.peek(); c != closer {
			return nil, r.errorf(r.pos(), "expected %q, found %q", closer, c)
		}
		r.advance()
		return items, nil
	}
}
