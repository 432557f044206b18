package world

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Catalog is a read-only registry of canonical item templates, keyed by
// name. The World consults it only to materialize combination results.
// Build it during authoring and pass it explicitly; it is never mutated
// during play.
type Catalog struct {
	items map[string]Item
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string]Item)}
}

// Register adds the item as a canonical template.
//
// Postcondition: Lookup(item.Name) returns item; returns an error if the
// name is empty or already registered.
func (c *Catalog) Register(item Item) error {
	if item.Name == "" {
		return errors.New("catalog: item name must not be empty")
	}
	if _, exists := c.items[item.Name]; exists {
		return fmt.Errorf("catalog: item %q already registered", item.Name)
	}
	c.items[item.Name] = item
	return nil
}

// Lookup returns the canonical item for the given name and whether it
// was found.
func (c *Catalog) Lookup(name string) (Item, bool) {
	item, ok := c.items[name]
	return item, ok
}

// Len returns the number of registered templates.
func (c *Catalog) Len() int {
	return len(c.items)
}

// yamlItem is the YAML representation of a catalog item template.
type yamlItem struct {
	Name         string `yaml:"name"`
	Effect       string `yaml:"effect"`
	CombinesWith string `yaml:"combines_with"`
	ReplacedBy   string `yaml:"replaced_by"`
}

// LoadCatalogFromDir reads all *.yaml and *.yml files in dir, parses each
// as a sequence of item templates, and returns the populated Catalog.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns a Catalog with every valid template registered,
// or the first encountered error.
func LoadCatalogFromDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog directory %q: %w", dir, err)
	}

	catalog := NewCatalog()
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog file %q: %w", path, err)
		}
		if err := loadCatalogBytes(catalog, data); err != nil {
			return nil, fmt.Errorf("loading catalog file %q: %w", path, err)
		}
	}
	return catalog, nil
}

func loadCatalogBytes(catalog *Catalog, data []byte) error {
	var parsed []yamlItem
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parsing catalog YAML: %w", err)
	}
	for _, yi := range parsed {
		effect := Effect(yi.Effect)
		if effect != EffectNone && effect != EffectLight {
			return fmt.Errorf("item %q: unknown effect %q", yi.Name, yi.Effect)
		}
		item := Item{
			Name:         yi.Name,
			Effect:       effect,
			CombinesWith: yi.CombinesWith,
			ReplacedBy:   yi.ReplacedBy,
		}
		if err := catalog.Register(item); err != nil {
			return err
		}
	}
	return nil
}
