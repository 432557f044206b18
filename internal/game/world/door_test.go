package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDoor_DerivesOppositeDirection(t *testing.T) {
	door := NewDoor("cellar door", 0, South, 1, nil)

	require.NoError(t, door.Validate())
	assert.Equal(t, South, door.DirectionFrom(0))
	assert.Equal(t, North, door.DirectionFrom(1))
}

func TestDoor_Validate_EmptyName(t *testing.T) {
	door := NewDoor("", 0, South, 1, nil)
	assert.Error(t, door.Validate())
}

func TestDoor_Validate_SameRoomBothSides(t *testing.T) {
	// The two room keys collapse into one map entry.
	door := NewDoor("loop", 0, South, 0, nil)
	assert.Error(t, door.Validate())
}

func TestDoor_Validate_DirectionsNotOpposite(t *testing.T) {
	door := &Door{
		Name: "bent door",
		Between: map[RoomID]Direction{
			0: North,
			1: East,
		},
	}
	assert.Error(t, door.Validate())
}

func TestDoor_Validate_InvalidDirection(t *testing.T) {
	door := &Door{
		Name: "odd door",
		Between: map[RoomID]Direction{
			0: "up",
			1: "down",
		},
	}
	assert.Error(t, door.Validate())
}

func TestDoor_Connects(t *testing.T) {
	door := NewDoor("cellar door", 0, South, 1, nil)

	assert.True(t, door.Connects(0))
	assert.True(t, door.Connects(1))
	assert.False(t, door.Connects(2))
}

func TestDoor_DirectionFrom_UnrelatedRoomPanics(t *testing.T) {
	door := NewDoor("cellar door", 0, South, 1, nil)

	assert.Panics(t, func() {
		door.DirectionFrom(42)
	})
}
