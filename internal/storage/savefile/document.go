// Package savefile persists the game world to a per-user save file and
// restores it. The document is self-describing YAML; writes are atomic
// so a failed save never corrupts the previous one.
package savefile

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/averyd/adventure/internal/game/world"
)

// RoomIndexError reports a save document whose current room index keys
// no room. It is the only structural validation performed at load time.
type RoomIndexError struct {
	Index world.RoomID
}

// Error implements the error interface.
func (e *RoomIndexError) Error() string {
	return fmt.Sprintf("room with index %d does not exist", e.Index)
}

// document is the top-level YAML structure of a save file.
//
// Room items are deliberately not part of the document: the shape below
// is the persistence contract.
type document struct {
	SaveID           string       `yaml:"saveId"`
	Rooms            []roomRecord `yaml:"rooms"`
	Doors            []doorRecord `yaml:"doors"`
	Inventory        []itemRecord `yaml:"inventory"`
	CurrentRoomIndex int          `yaml:"currentRoomIndex"`
	Flags            []string     `yaml:"flags"`
}

// roomRecord is the YAML representation of a room.
type roomRecord struct {
	ID          int            `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Exits       map[string]int `yaml:"exits,omitempty"`
}

// doorRecord is the YAML representation of an active door.
type doorRecord struct {
	Name               string         `yaml:"name"`
	BetweenRooms       map[int]string `yaml:"betweenRooms"`
	RequiresItemToOpen *itemRecord    `yaml:"requiresItemToOpen,omitempty"`
}

// itemRecord is the YAML representation of an item.
type itemRecord struct {
	Name         string `yaml:"name"`
	Effect       string `yaml:"effect,omitempty"`
	CombinesWith string `yaml:"combinesWith,omitempty"`
	ReplacedBy   string `yaml:"replacedBy,omitempty"`
}

// Encode serializes the world into a save document. Each call mints a
// fresh save id, returned alongside the bytes for log correlation.
func Encode(w *world.World) ([]byte, string, error) {
	doc := buildDocument(w)
	doc.SaveID = uuid.NewString()
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, "", fmt.Errorf("encoding save document: %w", err)
	}
	return data, doc.SaveID, nil
}

// Decode deserializes a save document and rebuilds the world against the
// given catalog.
//
// The only validation performed is that currentRoomIndex keys a decoded
// room; a violation yields a *RoomIndexError and no world. Dangling exit
// targets, dangling door room references, and item names absent from the
// catalog are restored as-is.
//
// Postcondition: Returns a fully-formed world or a non-nil error, never both.
func Decode(data []byte, catalog *world.Catalog, logger *zap.Logger) (*world.World, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing save document: %w", err)
	}

	current := world.RoomID(doc.CurrentRoomIndex)
	known := false
	for _, rr := range doc.Rooms {
		if world.RoomID(rr.ID) == current {
			known = true
			break
		}
	}
	if !known {
		return nil, &RoomIndexError{Index: current}
	}

	w := world.NewWorld(catalog, logger)
	for _, rr := range doc.Rooms {
		room := w.AddRoom(world.RoomID(rr.ID), rr.Name, rr.Description)
		for ds, target := range rr.Exits {
			dir, err := world.ParseDirection(ds)
			if err != nil {
				return nil, fmt.Errorf("room %d: %w", rr.ID, err)
			}
			room.SetExit(dir, world.RoomID(target))
		}
	}

	for _, dr := range doc.Doors {
		door := &world.Door{
			Name:    dr.Name,
			Between: make(map[world.RoomID]world.Direction, len(dr.BetweenRooms)),
		}
		for id, ds := range dr.BetweenRooms {
			dir, err := world.ParseDirection(ds)
			if err != nil {
				return nil, fmt.Errorf("door %q: %w", dr.Name, err)
			}
			door.Between[world.RoomID(id)] = dir
		}
		if dr.RequiresItemToOpen != nil {
			required := itemFromRecord(*dr.RequiresItemToOpen)
			door.RequiresItem = &required
		}
		w.RestoreDoor(door)
	}

	for _, ir := range doc.Inventory {
		w.AddToInventory(itemFromRecord(ir))
	}
	for _, flag := range doc.Flags {
		w.SetFlag(flag)
	}
	w.SetCurrentRoom(current)

	return w, nil
}

func buildDocument(w *world.World) document {
	doc := document{
		CurrentRoomIndex: int(w.CurrentRoomID()),
		Flags:            w.Flags(),
	}

	for _, room := range w.Rooms() {
		rr := roomRecord{
			ID:          int(room.ID),
			Name:        room.Name,
			Description: room.Description,
		}
		if len(room.Exits) > 0 {
			rr.Exits = make(map[string]int, len(room.Exits))
			for dir, target := range room.Exits {
				rr.Exits[string(dir)] = int(target)
			}
		}
		doc.Rooms = append(doc.Rooms, rr)
	}

	for _, door := range w.ActiveDoors() {
		dr := doorRecord{
			Name:         door.Name,
			BetweenRooms: make(map[int]string, len(door.Between)),
		}
		for id, dir := range door.Between {
			dr.BetweenRooms[int(id)] = string(dir)
		}
		if door.RequiresItem != nil {
			record := recordFromItem(*door.RequiresItem)
			dr.RequiresItemToOpen = &record
		}
		doc.Doors = append(doc.Doors, dr)
	}

	for _, item := range w.Inventory() {
		doc.Inventory = append(doc.Inventory, recordFromItem(item))
	}

	return doc
}

func itemFromRecord(ir itemRecord) world.Item {
	return world.Item{
		Name:         ir.Name,
		Effect:       world.Effect(ir.Effect),
		CombinesWith: ir.CombinesWith,
		ReplacedBy:   ir.ReplacedBy,
	}
}

func recordFromItem(item world.Item) itemRecord {
	return itemRecord{
		Name:         item.Name,
		Effect:       string(item.Effect),
		CombinesWith: item.CombinesWith,
		ReplacedBy:   item.ReplacedBy,
	}
}
