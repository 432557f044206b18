package savefile

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/averyd/adventure/internal/game/world"
)

// Store reads and writes the save file at a fixed path. Saves use
// write-to-temp-then-rename so a previous save is never left partially
// overwritten.
type Store struct {
	path    string
	catalog *world.Catalog
	logger  *zap.Logger
}

// NewStore creates a Store for the given save file path.
//
// Precondition: catalog must be non-nil. A nil logger disables diagnostics.
func NewStore(path string, catalog *world.Catalog, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, catalog: catalog, logger: logger}
}

// Path returns the save file path.
func (s *Store) Path() string {
	return s.path
}

// DefaultPath returns the conventional per-user save file location.
//
// Postcondition: Returns a path under the user configuration directory,
// or an error if that directory cannot be determined.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(base, "adventure", "save.yaml"), nil
}

// Save writes the world to the store's path atomically. Success and
// failure collapse to the returned boolean; failure detail is logged for
// diagnostics only.
func (s *Store) Save(w *world.World) bool {
	data, saveID, err := Encode(w)
	if err != nil {
		s.logger.Warn("save failed", zap.Error(err))
		return false
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Warn("save failed",
			zap.String("save_id", saveID),
			zap.Error(err),
		)
		return false
	}

	// Stage into a temp file in the target directory so the final rename
	// stays on one filesystem and replaces the old save atomically.
	tmp, err := os.CreateTemp(dir, ".save-*.yaml")
	if err != nil {
		s.logger.Warn("save failed",
			zap.String("save_id", saveID),
			zap.Error(err),
		)
		return false
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmpName, s.path)
	}
	if err != nil {
		os.Remove(tmpName)
		s.logger.Warn("save failed",
			zap.String("save_id", saveID),
			zap.Error(err),
		)
		return false
	}

	s.logger.Info("world saved",
		zap.String("save_id", saveID),
		zap.String("path", s.path),
	)
	return true
}

// Load reads and restores the world from the store's path.
//
// A missing or unreadable file is not an error: it is logged and Load
// returns (nil, nil), meaning no save is available. A document that
// decodes but whose current room index keys no room yields a
// *RoomIndexError. No world is ever returned alongside an error.
func (s *Store) Load() (*world.World, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Debug("no readable save file",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return nil, nil
	}

	w, err := Decode(data, s.catalog, s.logger)
	if err != nil {
		return nil, err
	}

	s.logger.Info("world loaded",
		zap.String("path", s.path),
		zap.Int("rooms", len(w.Rooms())),
	)
	return w, nil
}
