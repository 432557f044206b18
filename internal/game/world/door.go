package world

import "fmt"

// Door gates the passage between exactly two rooms until it is opened.
// A door is distinct from an exit: while the door is active the rooms
// have no exit between them, and once opened the passage exists solely
// as permanent exits on both rooms. Opening is irreversible and is owned
// by the World controller; the Door itself only answers queries.
type Door struct {
	// Name identifies the door in content and save files.
	Name string
	// Between maps each of the two connected rooms to the direction the
	// passage takes from that room's side. The two directions are mutual
	// opposites because both describe the same physical passage.
	Between map[RoomID]Direction
	// RequiresItem is the item that must be held to open the door.
	// Nil means the door opens freely.
	RequiresItem *Item
}

// NewDoor creates a door between roomA and roomB, passing in dirFromA
// when leaving roomA. The reverse direction is derived.
func NewDoor(name string, roomA RoomID, dirFromA Direction, roomB RoomID, requires *Item) *Door {
	return &Door{
		Name: name,
		Between: map[RoomID]Direction{
			roomA: dirFromA,
			roomB: dirFromA.Opposite(),
		},
		RequiresItem: requires,
	}
}

// Validate checks door invariants: exactly two distinct rooms whose
// recorded directions are mutual opposites.
//
// Postcondition: Returns nil if valid, or an error describing the violation.
func (d *Door) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("door name must not be empty")
	}
	if len(d.Between) != 2 {
		return fmt.Errorf("door %q: must connect exactly two rooms, got %d", d.Name, len(d.Between))
	}
	dirs := make([]Direction, 0, 2)
	for _, dir := range d.Between {
		if !dir.IsValid() {
			return fmt.Errorf("door %q: invalid direction %q", d.Name, dir)
		}
		dirs = append(dirs, dir)
	}
	if dirs[0].Opposite() != dirs[1] {
		return fmt.Errorf("door %q: directions %q and %q are not opposites", d.Name, dirs[0], dirs[1])
	}
	return nil
}

// Connects reports whether the door is incident to the given room.
func (d *Door) Connects(id RoomID) bool {
	_, ok := d.Between[id]
	return ok
}

// otherRoom returns the id on the far side of the door from the given room.
func (d *Door) otherRoom(id RoomID) RoomID {
	for other := range d.Between {
		if other != id {
			return other
		}
	}
	return id
}

// DirectionFrom returns the direction the passage takes when leaving the
// given room. Asking for a room the door does not connect is a
// programmer error, not a gameplay outcome, and panics.
//
// Precondition: d.Connects(id) must be true.
func (d *Door) DirectionFrom(id RoomID) Direction {
	dir, ok := d.Between[id]
	if !ok {
		panic(fmt.Sprintf("door %q does not connect room %d", d.Name, id))
	}
	return dir
}
