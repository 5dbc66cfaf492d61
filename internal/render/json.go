package render

import (
	"encoding/json"
	"io"

	"github.com/vk/lantern/internal/world"
)

// JSON writes the flattened graph as two-space indented JSON.
func JSON(w io.Writer, doc *Document) error {
	g := doc.Graph
	if g == nil {
		g = &world.Graph{Rooms: []world.RoomSummary{}, Edges: []world.Edge{}}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	// Room text is prose; keep quotes, < > and & readable.
	enc.SetEscapeHTML(false)
	return enc.Encode(g)
}
