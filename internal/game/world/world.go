package world

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// World owns all mutable game state: the room index, the active-door
// list, the player inventory, the current location, and the flag set.
// All state transitions go through its action resolvers; gameplay is
// single-threaded and turn-based, so World performs no locking.
type World struct {
	rooms     map[RoomID]*Room
	doors     []*Door
	current   RoomID
	inventory []Item
	flags     map[string]struct{}
	catalog   *Catalog
	logger    *zap.Logger
}

// NewWorld creates an empty world backed by the given item catalog.
//
// Precondition: catalog must be non-nil. A nil logger disables diagnostics.
func NewWorld(catalog *Catalog, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &World{
		rooms:   make(map[RoomID]*Room),
		flags:   make(map[string]struct{}),
		catalog: catalog,
		logger:  logger,
	}
}

// --- Authoring ---------------------------------------------------------
//
// The builder methods below run before gameplay starts. They trust their
// caller: content mistakes are logged for diagnostics, never surfaced as
// errors, except for the door invariant which is always enforced.

// AddRoom inserts a new room at the given id, silently replacing any
// existing room at that key.
//
// Postcondition: Returns the inserted room; it is owned by the index.
func (w *World) AddRoom(id RoomID, name, description string) *Room {
	if _, exists := w.rooms[id]; exists {
		w.logger.Debug("replacing existing room", zap.Int("room_id", int(id)))
	}
	room := NewRoom(id, name, description)
	w.rooms[id] = room
	return room
}

// ConnectRooms writes an exit from room to room2 in the given direction.
// If bidirectional, the reverse exit is written in the opposite
// direction. Repeated calls with the same arguments converge to the same
// state.
//
// Precondition: both rooms must be owned by this world's index.
func (w *World) ConnectRooms(room *Room, dir Direction, room2 *Room, bidirectional bool) {
	room.SetExit(dir, room2.ID)
	if bidirectional {
		room2.SetExit(dir.Opposite(), room.ID)
	}
}

// ConnectRoomIDs is the id-based variant of ConnectRooms. If either id
// does not key a room, the call is a silent no-op: it is logged for
// diagnostics but no error reaches the caller. The boolean return exists
// for testability only.
//
// Postcondition: Returns true iff both rooms existed and the exit was written.
func (w *World) ConnectRoomIDs(id RoomID, dir Direction, id2 RoomID, bidirectional bool) bool {
	room, ok := w.rooms[id]
	room2, ok2 := w.rooms[id2]
	if !ok || !ok2 {
		w.logger.Debug("connect rooms: unknown room id",
			zap.Int("from", int(id)),
			zap.Int("to", int(id2)),
		)
		return false
	}
	w.ConnectRooms(room, dir, room2, bidirectional)
	return true
}

// AddDoor registers an active door.
//
// Postcondition: Returns an error iff the door violates its invariant
// (exactly two distinct rooms, opposite directions).
func (w *World) AddDoor(door *Door) error {
	if err := door.Validate(); err != nil {
		return fmt.Errorf("adding door: %w", err)
	}
	w.doors = append(w.doors, door)
	return nil
}

// RestoreDoor registers an active door without validating it. Save
// restoration uses this: the load contract restores door records as-is
// and performs no structural checks beyond the current-room index.
// Authoring code should use AddDoor instead.
func (w *World) RestoreDoor(door *Door) {
	w.doors = append(w.doors, door)
}

// PlaceItem puts an item in the given room. A missing room id is a
// silent no-op, logged for diagnostics.
//
// Postcondition: Returns true iff the room existed and the item was placed.
func (w *World) PlaceItem(id RoomID, item Item) bool {
	room, ok := w.rooms[id]
	if !ok {
		w.logger.Debug("place item: unknown room id",
			zap.Int("room_id", int(id)),
			zap.String("item", item.Name),
		)
		return false
	}
	room.AddItem(item)
	return true
}

// AddToInventory appends an item to the inventory tail. Duplicates are
// allowed; order is preserved.
func (w *World) AddToInventory(item Item) {
	w.inventory = append(w.inventory, item)
}

// SetFlag inserts a flag. Insertion is idempotent; flags are never removed.
func (w *World) SetFlag(name string) {
	w.flags[name] = struct{}{}
}

// SetCurrentRoom moves the player to the given room id without any
// existence check. Used by authoring and by save restoration, which
// validates the id itself before calling.
func (w *World) SetCurrentRoom(id RoomID) {
	w.current = id
}

// --- Action resolvers --------------------------------------------------
//
// One resolver call per turn. Each is an atomic mutation: on a failed
// outcome, world state is unchanged.

// Go moves the player through the current room's exit in the given
// direction.
//
// The exit's target id is trusted as authored: no check that it keys an
// existing room. A dangling target only fails, fatally, when the current
// room is next read.
//
// Postcondition: Returns true and updates the current room iff an exit
// exists in that direction; otherwise returns false with no state change.
func (w *World) Go(dir Direction) bool {
	target, ok := w.CurrentRoom().ExitTo(dir)
	if !ok {
		return false
	}
	w.current = target
	return true
}

// Take moves the named item from the current room into the inventory.
//
// Postcondition: Returns true and moves exactly one matching item iff it
// was present; otherwise returns false with no state change.
func (w *World) Take(item Item) bool {
	held, ok := w.CurrentRoom().TakeItem(item)
	if !ok {
		return false
	}
	w.inventory = append(w.inventory, held)
	return true
}

// OpenDoor attempts to open a door from the current room. The door must
// be the active-list entry itself (as returned by DoorsInRoom), not a
// look-alike value.
//
// On success the door leaves the active list permanently, both rooms
// gain mutual exits along the door's recorded directions, and the
// required item (if any) is consumed from the inventory.
func (w *World) OpenDoor(door *Door) OpenResult {
	if !w.doorIsActive(door) || !door.Connects(w.current) {
		return OpenResult{Outcome: DoorNotFound}
	}

	if !w.CanOpenDoor(door) {
		return OpenResult{Outcome: DoorMissingItem, MissingItem: door.RequiresItem}
	}

	// Materialize the passage as permanent exits on both rooms. A door
	// referencing a room missing from the index still opens; the dangling
	// side is skipped and logged.
	for id, dir := range door.Between {
		room, ok := w.rooms[id]
		if !ok {
			w.logger.Debug("open door: unknown room id",
				zap.String("door", door.Name),
				zap.Int("room_id", int(id)),
			)
			continue
		}
		room.SetExit(dir, door.otherRoom(id))
	}

	if door.RequiresItem != nil {
		w.removeFromInventory(*door.RequiresItem)
	}
	w.removeDoor(door)
	return OpenResult{Outcome: DoorOpened}
}

// CanOpenDoor reports whether the door would open right now: it either
// requires no item or its required item is held. Pure query, no side
// effects.
func (w *World) CanOpenDoor(door *Door) bool {
	return door.RequiresItem == nil || w.holds(*door.RequiresItem)
}

// Use applies an item's effect. Items without an effect do nothing.
//
// Postcondition: Returns UseHadEffect iff world state may have changed.
func (w *World) Use(item Item) UseResult {
	switch item.Effect {
	case EffectLight:
		w.SetFlag(string(EffectLight))
		return UseHadEffect
	default:
		return UseNoEffect
	}
}

// UseWith combines item with indirect. The combination succeeds only
// when both items name each other as partners, both are held, and the
// item's replacement resolves in the catalog. On success one occurrence
// of each is consumed and the resolved replacement is appended.
//
// Consumption happens strictly after the replacement resolves: on every
// failing branch the inventory is unchanged.
func (w *World) UseWith(item, indirect Item) UseResult {
	if item.CombinesWith != indirect.Name || indirect.CombinesWith != item.Name {
		return UseCannotCombine
	}
	if item.ReplacedBy == "" {
		return UseCannotCombine
	}
	if !w.holdsBoth(item, indirect) {
		return UseCannotCombine
	}
	replacement, ok := w.catalog.Lookup(item.ReplacedBy)
	if !ok {
		return UseHadNoEffect
	}

	w.removeFromInventory(item)
	w.removeFromInventory(indirect)
	w.inventory = append(w.inventory, replacement)
	return UseHadEffect
}

// DoorsInRoom returns all active doors incident to the given room.
//
// Postcondition: Returns a non-nil slice; may be empty.
func (w *World) DoorsInRoom(id RoomID) []*Door {
	doors := make([]*Door, 0, len(w.doors))
	for _, d := range w.doors {
		if d.Connects(id) {
			doors = append(doors, d)
		}
	}
	return doors
}

// --- Queries -----------------------------------------------------------

// CurrentRoom returns the room the player occupies.
//
// Precondition: the current room id must key an existing room. A violation
// means the world is corrupt beyond repair (only reachable through a
// hand-edited save or a dangling authored exit) and aborts the process.
func (w *World) CurrentRoom() *Room {
	room, ok := w.rooms[w.current]
	if !ok {
		panic(fmt.Sprintf("current room %d does not exist", w.current))
	}
	return room
}

// CurrentRoomID returns the current room id without the existence check.
func (w *World) CurrentRoomID() RoomID {
	return w.current
}

// RoomByID returns the room with the given id.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (w *World) RoomByID(id RoomID) (*Room, bool) {
	room, ok := w.rooms[id]
	return room, ok
}

// Rooms returns all rooms ordered by id.
func (w *World) Rooms() []*Room {
	rooms := make([]*Room, 0, len(w.rooms))
	for _, r := range w.rooms {
		rooms = append(rooms, r)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms
}

// ActiveDoors returns the active (unopened) doors in registration order.
func (w *World) ActiveDoors() []*Door {
	doors := make([]*Door, len(w.doors))
	copy(doors, w.doors)
	return doors
}

// Inventory returns a copy of the inventory, order preserved.
func (w *World) Inventory() []Item {
	inv := make([]Item, len(w.inventory))
	copy(inv, w.inventory)
	return inv
}

// HasFlag reports whether the named flag has been set.
func (w *World) HasFlag(name string) bool {
	_, ok := w.flags[name]
	return ok
}

// Flags returns all set flags in sorted order.
func (w *World) Flags() []string {
	flags := make([]string, 0, len(w.flags))
	for f := range w.flags {
		flags = append(flags, f)
	}
	sort.Strings(flags)
	return flags
}

// Catalog returns the item catalog backing this world.
func (w *World) Catalog() *Catalog {
	return w.catalog
}

// --- internals ---------------------------------------------------------

func (w *World) doorIsActive(door *Door) bool {
	for _, d := range w.doors {
		if d == door {
			return true
		}
	}
	return false
}

func (w *World) removeDoor(door *Door) {
	for i, d := range w.doors {
		if d == door {
			w.doors = append(w.doors[:i], w.doors[i+1:]...)
			return
		}
	}
}

func (w *World) holds(item Item) bool {
	for _, held := range w.inventory {
		if held.Same(item) {
			return true
		}
	}
	return false
}

// holdsBoth checks that one occurrence of each item is held, counting
// twice when the two names coincide.
func (w *World) holdsBoth(a, b Item) bool {
	need := map[string]int{a.Name: 0, b.Name: 0}
	need[a.Name]++
	need[b.Name]++
	for _, held := range w.inventory {
		if n, ok := need[held.Name]; ok && n > 0 {
			need[held.Name] = n - 1
		}
	}
	for _, n := range need {
		if n > 0 {
			return false
		}
	}
	return true
}

func (w *World) removeFromInventory(item Item) {
	for i, held := range w.inventory {
		if held.Same(item) {
			w.inventory = append(w.inventory[:i], w.inventory[i+1:]...)
			return
		}
	}
}
