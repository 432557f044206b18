package world

// Effect identifies what using an item does. The set of effects is a
// closed enumeration: new variants are added here, not in content files.
type Effect string

// Known item effects. The zero value means the item does nothing on use.
const (
	EffectNone  Effect = ""
	EffectLight Effect = "light"
)

// Item describes a takeable, usable object. Items are plain values;
// two items are the same item iff their names are equal.
type Item struct {
	// Name uniquely identifies the item and doubles as its display handle.
	Name string
	// Effect is what using the item by itself does, if anything.
	Effect Effect
	// CombinesWith names the item this one combines with. Empty = none.
	CombinesWith string
	// ReplacedBy names the catalog item produced by a successful
	// combination. Empty = the combination yields nothing.
	ReplacedBy string
}

// Same reports whether other is the same item, compared by name.
func (i Item) Same(other Item) bool {
	return i.Name == other.Name
}
