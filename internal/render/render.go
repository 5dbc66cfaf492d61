package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/lantern/internal/forms"
	"github.com/vk/lantern/internal/world"
)

// Format names an output representation.
type Format string

const (
	FormatLisp Format = "lisp"
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"
)

// DefaultGraphName names the GraphViz digraph when none is configured.
const DefaultGraphName = "world"

// Document is everything a renderer may draw from. Rooms keep their quoted
// fields; Graph holds the flattened, unquoted view of the same rooms.
type Document struct {
	Rooms     []*forms.Room
	Graph     *world.Graph
	GraphName string
}

// Renderer writes one representation of a Document.
type Renderer func(w io.Writer, doc *Document) error

var renderers = map[Format]Renderer{
	FormatLisp: Lisp,
	FormatJSON: JSON,
	FormatDOT:  DOT,
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lisp":
		return FormatLisp, nil
	case "json":
		return FormatJSON, nil
	case "dot", "graphviz", "gv":
		return FormatDOT, nil
	}
	return "", fmt.Errorf("unknown output format %q: must be 'lisp', 'json' or 'dot'", s)
}

// Extension returns the file extension conventionally used for f.
func (f Format) Extension() string {
	switch f {
	case FormatLisp:
		return ".lisp"
	case FormatJSON:
		return ".json"
	case FormatDOT:
		return ".gv"
	}
	return ""
}

// Render writes doc in format f.
func Render(w io.Writer, f Format, doc *Document) error {
	r, ok := renderers[f]
	if !ok {
		return fmt.Errorf("no renderer for format %q", f)
	}
	return r(w, doc)
}
