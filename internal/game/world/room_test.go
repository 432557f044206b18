package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom_SetExit_LastWriteWins(t *testing.T) {
	room := NewRoom(1, "Hall", "A dusty hall.")

	room.SetExit(North, 2)
	room.SetExit(North, 3)

	target, ok := room.ExitTo(North)
	require.True(t, ok)
	assert.Equal(t, RoomID(3), target)
	assert.Len(t, room.Exits, 1)
}

func TestRoom_ExitTo_Missing(t *testing.T) {
	room := NewRoom(1, "Hall", "A dusty hall.")
	_, ok := room.ExitTo(South)
	assert.False(t, ok)
}

func TestRoom_TakeItem(t *testing.T) {
	room := NewRoom(1, "Hall", "A dusty hall.")
	room.AddItem(Item{Name: "key"})
	room.AddItem(Item{Name: "rope"})

	held, ok := room.TakeItem(Item{Name: "key"})
	require.True(t, ok)
	assert.Equal(t, "key", held.Name)
	assert.Len(t, room.Items, 1)
	assert.Equal(t, "rope", room.Items[0].Name)
}

func TestRoom_TakeItem_KeepsHeldMetadata(t *testing.T) {
	// Matching is by name; the room's own copy, metadata included, is
	// what moves.
	room := NewRoom(1, "Hall", "A dusty hall.")
	room.AddItem(Item{Name: "lamp", Effect: EffectLight})

	held, ok := room.TakeItem(Item{Name: "lamp"})
	require.True(t, ok)
	assert.Equal(t, EffectLight, held.Effect)
}

func TestRoom_RemoveItem_AbsentIsNoOp(t *testing.T) {
	room := NewRoom(1, "Hall", "A dusty hall.")
	room.AddItem(Item{Name: "rope"})

	assert.False(t, room.RemoveItem(Item{Name: "key"}))
	assert.Len(t, room.Items, 1)
}

func TestRoom_RemoveItem_FirstMatchOnly(t *testing.T) {
	room := NewRoom(1, "Hall", "A dusty hall.")
	room.AddItem(Item{Name: "coin"})
	room.AddItem(Item{Name: "coin"})

	assert.True(t, room.RemoveItem(Item{Name: "coin"}))
	assert.Len(t, room.Items, 1)
}

func TestRoom_HasItem(t *testing.T) {
	room := NewRoom(1, "Hall", "A dusty hall.")
	room.AddItem(Item{Name: "key"})

	assert.True(t, room.HasItem(Item{Name: "key"}))
	assert.False(t, room.HasItem(Item{Name: "rope"}))
}
