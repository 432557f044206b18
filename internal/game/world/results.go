package world

// OpenOutcome classifies the result of attempting to open a door.
type OpenOutcome int

// Open outcomes. All are routine gameplay results, never errors.
const (
	// DoorOpened means the door opened: it left the active list and both
	// rooms gained permanent exits.
	DoorOpened OpenOutcome = iota
	// DoorMissingItem means the required item is not in the inventory.
	DoorMissingItem
	// DoorNotFound means the door is not active in the current room.
	DoorNotFound
)

// OpenResult is the outcome of World.OpenDoor. When the outcome is
// DoorMissingItem, MissingItem carries the item the door requires.
type OpenResult struct {
	Outcome     OpenOutcome
	MissingItem *Item
}

// UseResult classifies the result of using an item, alone or combined
// with another. All variants are routine gameplay results, never errors.
type UseResult int

const (
	// UseNoEffect means the item has no effect when used alone.
	UseNoEffect UseResult = iota
	// UseHadEffect means the use succeeded and changed world state.
	UseHadEffect
	// UseCannotCombine means the two items do not combine with each other.
	UseCannotCombine
	// UseHadNoEffect means the items combine but the replacement is not
	// in the catalog; the inventory is left untouched.
	UseHadNoEffect
)
