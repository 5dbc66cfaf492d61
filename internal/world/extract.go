package world

import (
	"context"
	"fmt"

	"github.com/vk/lantern/internal/ctxlog"
	"github.com/vk/lantern/internal/eval"
	"github.com/vk/lantern/internal/forms"
)

// Extract keeps the Room records from the top-level results, in order.
// Everything else is dropped: assignments have already updated the global
// store during evaluation. Two rooms with the same key are malformed input.
func Extract(ctx context.Context, values []eval.Value) ([]*forms.Room, error) {
	logger := ctxlog.FromContext(ctx)

	seen := make(map[eval.Str]bool)
	var rooms []*forms.Room
	for _, v := range values {
		room, ok := v.(*forms.Room)
		if !ok {
			continue
		}
		if seen[room.Key] {
			return nil, fmt.Errorf("%w: duplicate room key %s", eval.ErrMalformedInput, room.Key)
		}
		seen[room.Key] = true
		rooms = append(rooms, room)
	}

	logger.Debug("Extract: rooms selected.", "results", len(values), "rooms", len(rooms))
	return rooms, nil
}
