// Command savetool inspects an adventure save file: it loads the save
// through the normal restore path, prints a summary, and optionally
// reports dangling references the load contract deliberately ignores.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/averyd/adventure/internal/config"
	"github.com/averyd/adventure/internal/game/world"
	"github.com/averyd/adventure/internal/observability"
	"github.com/averyd/adventure/internal/storage/savefile"
)

func main() {
	configPath := flag.String("config", "", "path to config YAML (optional)")
	savePath := flag.String("save", "", "save file path override")
	verify := flag.Bool("verify", false, "report dangling exit and door references")
	flag.Parse()

	if err := run(*configPath, *savePath, *verify); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, savePath string, verify bool) error {
	var cfg config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromViper(config.Defaults())
	}
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	catalog, err := world.LoadCatalogFromDir(cfg.Content.CatalogDir)
	if err != nil {
		// The tool can still inspect a save without catalog content;
		// combinations just won't resolve.
		catalog = world.NewCatalog()
	}

	path := savePath
	if path == "" {
		path = cfg.Save.Path
	}
	if path == "" {
		path, err = savefile.DefaultPath()
		if err != nil {
			return err
		}
	}

	store := savefile.NewStore(path, catalog, logger)
	w, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading save %s: %w", path, err)
	}
	if w == nil {
		return fmt.Errorf("no save file at %s", path)
	}

	printSummary(w, path)
	if verify {
		reportDanglingRefs(w)
	}
	return nil
}

func printSummary(w *world.World, path string) {
	fmt.Printf("save file: %s\n", path)
	fmt.Printf("rooms: %d, active doors: %d, inventory: %d, flags: %v\n",
		len(w.Rooms()), len(w.ActiveDoors()), len(w.Inventory()), w.Flags())
	fmt.Printf("current room: [%d] %s\n", w.CurrentRoomID(), w.CurrentRoom().Name)
	for _, item := range w.Inventory() {
		fmt.Printf("  holding: %s\n", item.Name)
	}
}

// reportDanglingRefs surfaces the sharp edges the load contract trusts:
// exit targets and door rooms that key no room, and replacement names
// absent from the catalog.
func reportDanglingRefs(w *world.World) {
	for _, room := range w.Rooms() {
		for dir, target := range room.Exits {
			if _, ok := w.RoomByID(target); !ok {
				fmt.Printf("dangling exit: room %d %s -> %d\n", room.ID, dir, target)
			}
		}
	}
	for _, door := range w.ActiveDoors() {
		for id := range door.Between {
			if _, ok := w.RoomByID(id); !ok {
				fmt.Printf("dangling door room: door %q -> %d\n", door.Name, id)
			}
		}
	}
	for _, item := range w.Inventory() {
		if item.ReplacedBy == "" {
			continue
		}
		if _, ok := w.Catalog().Lookup(item.ReplacedBy); !ok {
			fmt.Printf("unresolvable replacement: item %q -> %q\n", item.Name, item.ReplacedBy)
		}
	}
}
