package engine

// ImageID identifies an image type. Cells holding the same ImageID match.
type ImageID int

// Descriptor describes one tile image supplied by a catalog.
type Descriptor struct {
	ID    ImageID
	URL   string // Remote image location, empty for glyph tiles
	Glyph string // Emoji or symbol used when there is no URL
	Name  string
}

// Visual returns the URL when present, otherwise the glyph.
func (d Descriptor) Visual() string {
	if d.URL != "" {
		return d.URL
	}
	return d.Glyph
}

// Catalog is the read-only set of descriptors a session is played with.
type Catalog struct {
	Descriptors []Descriptor
	BatchID     int64 // Source batch, 0 when the built-in catalog is used
	BatchName   string
}

// Len returns the number of image types.
func (c Catalog) Len() int {
	return len(c.Descriptors)
}

// IsEmpty reports whether the catalog has no descriptors.
func (c Catalog) IsEmpty() bool {
	return len(c.Descriptors) == 0
}

// Lookup returns the descriptor with the given id.
func (c Catalog) Lookup(id ImageID) (Descriptor, bool) {
	for _, d := range c.Descriptors {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Index returns the position of id in the catalog, or -1.
// Hosts use it to assign stable colors and symbols to image types.
func (c Catalog) Index(id ImageID) int {
	for i, d := range c.Descriptors {
		if d.ID == id {
			return i
		}
	}
	return -1
}

var builtinDescriptors = []Descriptor{
	{ID: 1, Glyph: "🎮", Name: "Game"},
	{ID: 2, Glyph: "👾", Name: "Alien"},
	{ID: 3, Glyph: "🕹️", Name: "Joystick"},
	{ID: 4, Glyph: "⭐", Name: "Star"},
	{ID: 5, Glyph: "💎", Name: "Diamond"},
	{ID: 6, Glyph: "🎯", Name: "Target"},
	{ID: 7, Glyph: "🔥", Name: "Fire"},
	{ID: 8, Glyph: "⚡", Name: "Lightning"},
}

// BuiltinCatalog returns the glyph catalog used when no external catalog is
// available.
func BuiltinCatalog() Catalog {
	ds := make([]Descriptor, len(builtinDescriptors))
	copy(ds, builtinDescriptors)
	return Catalog{Descriptors: ds, BatchName: "builtin"}
}

// orBuiltin substitutes the built-in catalog for an empty one.
func orBuiltin(c Catalog) Catalog {
	if c.IsEmpty() {
		return BuiltinCatalog()
	}
	ds := make([]Descriptor, len(c.Descriptors))
	copy(ds, c.Descriptors)
	c.Descriptors = ds
	return c
}
