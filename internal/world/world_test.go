package world

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/lantern/internal/eval"
	"github.com/vk/lantern/internal/forms"
	"github.com/vk/lantern/internal/mdl"
)

func evaluate(t *testing.T, src string) []eval.Value {
	t.Helper()
	reg := eval.NewRegistry()
	forms.Module{}.Register(reg)
	ev := eval.New(reg, eval.Options{})

	nodes, err := mdl.Parse("test.mud", []byte(src))
	require.NoError(t, err)
	values, err := ev.EvalAll(context.Background(), nodes)
	require.NoError(t, err)
	return values
}

func TestExtract_KeepsRoomsInOrder(t *testing.T) {
	values := evaluate(t, `
	<SETG FOO "bar">
	<ROOM "B" "desc" "Room B" <EXIT>>
	<GET-OBJ "LAMP">
	<ROOM "A" "desc" "Room A" <EXIT>>
	42`)

	rooms, err := Extract(context.Background(), values)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, eval.Str("B"), rooms[0].Key)
	assert.Equal(t, eval.Str("A"), rooms[1].Key)
}

func TestExtract_DuplicateKey(t *testing.T) {
	values := evaluate(t, `<ROOM "A" "d" "n" <EXIT>> <ROOM "A" "d" "n" <EXIT>>`)

	_, err := Extract(context.Background(), values)
	require.Error(t, err)
	assert.True(t, errors.Is(err, eval.ErrMalformedInput))
}

func TestBuild_ScenarioA(t *testing.T) {
	// --- Arrange ---
	values := evaluate(t, `
	<ROOM "A" "First room." "Room A" <EXIT "NORTH" "B">>
	<ROOM "B" "Second room." "Room B" <EXIT "SOUTH" "A">>`)
	rooms, err := Extract(context.Background(), values)
	require.NoError(t, err)

	// --- Act ---
	g, err := Build(context.Background(), rooms)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []RoomSummary{
		{Key: "A", Name: "Room A", Description: "First room."},
		{Key: "B", Name: "Room B", Description: "Second room."},
	}, g.Rooms)
	assert.Equal(t, []Edge{
		{Source: "A", Direction: "NORTH", Target: "B"},
		{Source: "B", Direction: "SOUTH", Target: "A"},
	}, g.Edges)
}

func TestBuild_EdgeOrderFollowsExitPairs(t *testing.T) {
	values := evaluate(t, `<ROOM "EHOUS" "" "Behind House"
		<EXIT "NORTH" "NHOUS" "SOUTH" "SHOUS" "EAST" "CLEAR" "WEST" #NEXIT "Blocked." "UP" "ATTIC">>`)
	rooms, err := Extract(context.Background(), values)
	require.NoError(t, err)

	g, err := Build(context.Background(), rooms)
	require.NoError(t, err)

	var dirs []string
	for _, e := range g.Edges {
		dirs = append(dirs, e.Direction)
		assert.Equal(t, "EHOUS", e.Source)
	}
	assert.Equal(t, []string{"NORTH", "SOUTH", "EAST", "UP"}, dirs)
}

func TestBuild_NoExitSentinelBecomesPlaceholder(t *testing.T) {
	values := evaluate(t, `<PSETG NOTREE #NEXIT "No tree.">
	<ROOM "FORE1" "Forest." "Forest" <EXIT "UP" ,NOTREE "NORTH" "FORE1">>`)
	rooms, err := Extract(context.Background(), values)
	require.NoError(t, err)

	g, err := Build(context.Background(), rooms)
	require.NoError(t, err)
	assert.Equal(t, []Edge{
		{Source: "FORE1", Direction: "UP", Target: NoExitKey},
		{Source: "FORE1", Direction: "NORTH", Target: "FORE1"},
	}, g.Edges)
}

func TestBuild_OddExitsIsMalformed(t *testing.T) {
	rooms := []*forms.Room{{
		Key:         "A",
		Name:        eval.Str("A"),
		Description: eval.Str("A"),
		Exits:       eval.List{eval.Str("NORTH")},
	}}

	_, err := Build(context.Background(), rooms)
	require.Error(t, err)
	assert.True(t, errors.Is(err, eval.ErrMalformedInput))
}

func TestBuild_StripsDelimitersFromNonEmptyFields(t *testing.T) {
	values := evaluate(t, `
	<ROOM "KITCH" "You are in the kitchen." "Kitchen" <EXIT "WEST" "LROOM">>
	<ROOM "LROOM" "You are in the living room." "Living Room" <EXIT "EAST" "KITCH">>`)
	rooms, err := Extract(context.Background(), values)
	require.NoError(t, err)

	g, err := Build(context.Background(), rooms)
	require.NoError(t, err)
	for _, r := range g.Rooms {
		assert.NotEmpty(t, r.Key)
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Description)
		assert.NotContains(t, r.Key, `"`)
	}
}

func TestBuild_KeepsEmptyDescription(t *testing.T) {
	// --- Arrange ---
	values := evaluate(t, `<ROOM "EHOUS" "" "Behind House" <EXIT "EAST" "CLEAR">>`)
	rooms, err := Extract(context.Background(), values)
	require.NoError(t, err)

	// --- Act ---
	g, err := Build(context.Background(), rooms)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []RoomSummary{{Key: "EHOUS", Name: "Behind House", Description: ""}}, g.Rooms)
	assert.Equal(t, []Edge{{Source: "EHOUS", Direction: "EAST", Target: "CLEAR"}}, g.Edges)
}

func TestBuild_EmptyInput(t *testing.T) {
	g, err := Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, g.Rooms)
	assert.NotNil(t, g.Edges)
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "West of House", Plain(eval.Str("West of House")))
	assert.Equal(t, NoExitKey, Plain(eval.NoExit))
	assert.Equal(t, ",NOWHERE", Plain(eval.Token(",NOWHERE")))
	assert.Equal(t, "7", Plain(eval.Int(7)))
	assert.Equal(t, "", Plain(nil))
}
