// Package progress tracks unlocked constellations and persists them to a
// save file and to shareable links.
package progress

import (
	"log/slog"
	"slices"

	"github.com/pthm-cable/aura/constellation"
)

// Saver persists a full snapshot.
type Saver interface {
	Save(Snapshot) error
}

// Manager owns the list of unlocked constellations. Only the simulation
// goroutine calls it.
type Manager struct {
	catalog *constellation.Catalog
	saver   Saver
	log     *slog.Logger
	records []Record
}

// NewManager creates an empty manager. saver may be nil to disable saving.
func NewManager(catalog *constellation.Catalog, saver Saver, log *slog.Logger) *Manager {
	if catalog == nil {
		catalog = constellation.Default()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Manager{catalog: catalog, saver: saver, log: log}
}

// RecordUnlock adds key anchored at (x, y) and saves. It returns false
// without side effects when key is already unlocked or not in the catalog.
// A failed save is logged; the unlock still stands.
func (m *Manager) RecordUnlock(key string, x, y float64) (Record, bool) {
	if m.Has(key) || !m.catalog.Has(key) {
		return Record{}, false
	}

	rec := Record{Key: key, X: x, Y: y}
	m.records = append(m.records, rec)
	m.log.Info("constellation unlocked", "key", key, "x", x, "y", y)

	if err := m.Save(); err != nil {
		m.log.Error("failed to save progress", "key", key, "error", err)
	}
	return rec, true
}

// Save writes the current state through the saver, if any.
func (m *Manager) Save() error {
	if m.saver == nil {
		return nil
	}
	return m.saver.Save(m.Export())
}

// Restore replaces the unlocked list wholesale. Unknown and repeated keys
// are dropped. It does not save.
func (m *Manager) Restore(snap Snapshot) []Record {
	m.records = m.records[:0]
	for _, rec := range snap.UnlockedConstellations {
		if !m.catalog.Has(rec.Key) {
			m.log.Debug("dropping unknown constellation", "key", rec.Key)
			continue
		}
		if m.Has(rec.Key) {
			m.log.Debug("dropping duplicate constellation", "key", rec.Key)
			continue
		}
		m.records = append(m.records, rec)
	}
	return m.Records()
}

// Export returns a copy of the current state.
func (m *Manager) Export() Snapshot {
	records := make([]Record, len(m.records))
	copy(records, m.records)
	return Snapshot{UnlockedConstellations: records}
}

// Records returns the unlocked records in unlock order.
func (m *Manager) Records() []Record {
	return slices.Clone(m.records)
}

// Has reports whether key is unlocked.
func (m *Manager) Has(key string) bool {
	return slices.ContainsFunc(m.records, func(r Record) bool { return r.Key == key })
}

// Len returns the number of unlocked constellations.
func (m *Manager) Len() int { return len(m.records) }

// Markers returns the marker positions for rec.
func (m *Manager) Markers(rec Record) []constellation.Point {
	return m.catalog.Placements(rec.Key, rec.X, rec.Y)
}

// Catalog returns the catalog keys are checked against.
func (m *Manager) Catalog() *constellation.Catalog { return m.catalog }
