package world

import (
	"context"
	"fmt"

	"github.com/vk/lantern/internal/ctxlog"
	"github.com/vk/lantern/internal/eval"
	"github.com/vk/lantern/internal/forms"
)

// NoExitKey is the placeholder target of an exit that leads nowhere but
// was not dropped during exit resolution.
const NoExitKey = "NEXIT"

// RoomSummary is a room without its exits, with plain unquoted fields.
type RoomSummary struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Edge is one exit: a direction leading from a room to a room key, a
// blocked-exit message, or NoExitKey.
type Edge struct {
	Source    string `json:"source"`
	Direction string `json:"direction"`
	Target    string `json:"target"`
}

// Graph is the flattened room graph. Rooms keep extraction order; edges
// are grouped by source room in the same order and keep exit order within
// each room.
type Graph struct {
	Rooms []RoomSummary `json:"rooms"`
	Edges []Edge        `json:"edges"`
}

// Build flattens rooms into a Graph.
func Build(ctx context.Context, rooms []*forms.Room) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "rooms", len(rooms))

	g := &Graph{
		Rooms: make([]RoomSummary, 0, len(rooms)),
		Edges: []Edge{},
	}
	for _, r := range rooms {
		summary := RoomSummary{
			Key:         Plain(r.Key),
			Name:        Plain(r.Name),
			Description: Plain(r.Description),
		}
		g.Rooms = append(g.Rooms, summary)

		if len(r.Exits)%2 != 0 {
			return nil, fmt.Errorf("%w: room %s has odd exit list length %d", eval.ErrMalformedInput, r.Key, len(r.Exits))
		}
		for i := 0; i < len(r.Exits); i += 2 {
			g.Edges = append(g.Edges, Edge{
				Source:    summary.Key,
				Direction: Plain(r.Exits[i]),
				Target:    Plain(r.Exits[i+1]),
			})
		}
	}

	logger.Debug("Build: Graph construction successful.", "rooms", len(g.Rooms), "edges", len(g.Edges))
	return g, nil
}

// Plain renders a value without literal-string delimiters. The no-exit
// sentinel becomes NoExitKey; other values use their printed form.
func Plain(v eval.Value) string {
	switch v := v.(type) {
	case eval.Str:
		return string(v)
	case nil:
		return ""
	}
	if eval.IsNoExit(v) {
		return NoExitKey
	}
	return v.String()
}
