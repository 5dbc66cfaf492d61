package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vk/lantern/internal/world"
)

// DOT writes a GraphViz digraph with one labelled node per room and one
// labelled edge per exit. Exits that lead to the no-exit placeholder are
// left out.
func DOT(w io.Writer, doc *Document) error {
	name := doc.GraphName
	if name == "" {
		name = DefaultGraphName
	}
	g := doc.Graph
	if g == nil {
		g = &world.Graph{}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", dotID(name))
	for _, r := range g.Rooms {
		fmt.Fprintf(bw, "  %s [label=%s];\n", dotID(r.Key), dotID(r.Name))
	}
	for _, e := range g.Edges {
		if e.Target == world.NoExitKey {
			continue
		}
		fmt.Fprintf(bw, "  %s -> %s [label=%s];\n", dotID(e.Source), dotID(e.Target), dotID(e.Direction))
	}
	fmt.Fprint(bw, "}\n")
	return bw.Flush()
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", "")

// dotID quotes s as a DOT string identifier.
func dotID(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
