// Package highlight colours a rendered artifact for display in a terminal.
package highlight

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"golang.org/x/term"
)

// Mode selects when output is highlighted.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// ParseMode validates a --color value. The empty string means auto.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(s)) {
	case "", ModeAuto:
		return ModeAuto, true
	case ModeAlways:
		return ModeAlways, true
	case ModeNever:
		return ModeNever, true
	}
	return "", false
}

// Enabled reports whether output written to w should be highlighted.
func Enabled(mode Mode, w io.Writer) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// lexerFor maps an output format name to a chroma lexer name.
func lexerFor(format string) string {
	switch format {
	case "lisp":
		return "common-lisp"
	case "dot":
		return "graphviz"
	}
	return format
}

// Write writes text to w, highlighted as format in the given style. If
// highlighting fails the text is written unchanged.
func Write(w io.Writer, text, format, style string) error {
	if style == "" {
		style = DefaultStyle
	}
	var b strings.Builder
	if err := quick.Highlight(&b, text, lexerFor(format), "terminal256", style); err != nil {
		_, err := io.WriteString(w, text)
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}
