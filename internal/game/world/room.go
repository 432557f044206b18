package world

// RoomID uniquely identifies a room within the world's room index.
type RoomID int

// Room represents a location in the game world. Rooms are owned by the
// World's index and mutated in place; RoomID is the only cross-reference
// between rooms.
type Room struct {
	// ID uniquely identifies this room.
	ID RoomID
	// Name is the short display name of the room.
	Name string
	// Description is the room description shown to players.
	Description string
	// Exits maps each direction to a destination room, at most one per
	// direction. Exit targets are trusted, not validated; see World.Go.
	Exits map[Direction]RoomID
	// Items holds the items physically present in the room.
	Items []Item
}

// NewRoom creates a room with no exits and no items.
func NewRoom(id RoomID, name, description string) *Room {
	return &Room{
		ID:          id,
		Name:        name,
		Description: description,
		Exits:       make(map[Direction]RoomID),
	}
}

// SetExit records an exit to the target room, overwriting any prior exit
// in the same direction. Last write wins; this is not an error.
func (r *Room) SetExit(dir Direction, target RoomID) {
	r.Exits[dir] = target
}

// ExitTo returns the destination of the exit in the given direction,
// if one exists.
//
// Postcondition: Returns (target, true) if found, or (0, false) otherwise.
func (r *Room) ExitTo(dir Direction) (RoomID, bool) {
	target, ok := r.Exits[dir]
	return target, ok
}

// AddItem places an item in the room.
func (r *Room) AddItem(item Item) {
	r.Items = append(r.Items, item)
}

// RemoveItem removes the first item with the same name. Removing an item
// that is not present is a no-op, not an error.
//
// Postcondition: Returns true iff an item was removed.
func (r *Room) RemoveItem(item Item) bool {
	_, ok := r.TakeItem(item)
	return ok
}

// TakeItem removes and returns the first item with the same name.
//
// Postcondition: Returns (held, true) with the room's own copy if found,
// or (Item{}, false) with the room unchanged otherwise.
func (r *Room) TakeItem(item Item) (Item, bool) {
	for i, held := range r.Items {
		if held.Same(item) {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return held, true
		}
	}
	return Item{}, false
}

// HasItem reports whether an item with the same name is present.
func (r *Room) HasItem(item Item) bool {
	for _, held := range r.Items {
		if held.Same(item) {
			return true
		}
	}
	return false
}
