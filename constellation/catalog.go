// Package constellation holds the catalog of harmonic sequences that unlock
// constellations and the rolling note buffer they are matched against.
package constellation

import (
	"errors"
	"fmt"
	"slices"
)

// Point is a 2D position or offset in canvas units.
type Point struct {
	X, Y float64
}

// Pattern is one unlockable constellation.
type Pattern struct {
	Key     string  // stable identifier used in saves, e.g. "LYRA"
	Name    string  // display name
	Notes   []int   // harmonic sequence of seed energies
	Offsets []Point // marker positions relative to the unlock anchor
}

// Catalog is an ordered set of patterns. Order decides which pattern wins
// when several match the same note tail.
type Catalog struct {
	patterns []Pattern
	index    map[string]int
}

// NewCatalog validates and indexes patterns in the given order.
func NewCatalog(patterns ...Pattern) (*Catalog, error) {
	c := &Catalog{
		patterns: make([]Pattern, 0, len(patterns)),
		index:    make(map[string]int, len(patterns)),
	}
	for i, p := range patterns {
		if p.Key == "" {
			return nil, fmt.Errorf("pattern %d: empty key", i)
		}
		if _, dup := c.index[p.Key]; dup {
			return nil, fmt.Errorf("pattern %q: duplicate key", p.Key)
		}
		if len(p.Notes) == 0 {
			return nil, fmt.Errorf("pattern %q: %w", p.Key, errEmptyNotes)
		}
		p.Notes = slices.Clone(p.Notes)
		p.Offsets = slices.Clone(p.Offsets)
		c.index[p.Key] = len(c.patterns)
		c.patterns = append(c.patterns, p)
	}
	return c, nil
}

var errEmptyNotes = errors.New("empty note sequence")

// CheckSequence returns the key of the first pattern, in catalog order,
// whose notes equal the tail of seq.
func (c *Catalog) CheckSequence(seq []int) (string, bool) {
	for i := range c.patterns {
		want := c.patterns[i].Notes
		if len(seq) < len(want) {
			continue
		}
		if slices.Equal(seq[len(seq)-len(want):], want) {
			return c.patterns[i].Key, true
		}
	}
	return "", false
}

// Lookup returns the pattern for key.
func (c *Catalog) Lookup(key string) (Pattern, bool) {
	i, ok := c.index[key]
	if !ok {
		return Pattern{}, false
	}
	return c.patterns[i], true
}

// Has reports whether key names a pattern in the catalog.
func (c *Catalog) Has(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Keys returns pattern keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.patterns))
	for i := range c.patterns {
		keys[i] = c.patterns[i].Key
	}
	return keys
}

// Name returns the display name for key, or key itself if unknown.
func (c *Catalog) Name(key string) string {
	if p, ok := c.Lookup(key); ok {
		return p.Name
	}
	return key
}

// Placements returns absolute marker positions for key anchored at (x, y).
func (c *Catalog) Placements(key string, x, y float64) []Point {
	p, ok := c.Lookup(key)
	if !ok {
		return nil
	}
	out := make([]Point, len(p.Offsets))
	for i, o := range p.Offsets {
		out[i] = Point{X: x + o.X, Y: y + o.Y}
	}
	return out
}
