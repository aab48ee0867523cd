package sim

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aura/progress"
)

// Unlocked returns the unlocked constellations in unlock order.
func (s *State) Unlocked() []progress.Record { return s.progress.Records() }

// Restore replaces the unlocked constellations with snap and rebuilds their
// markers fully visible. Nothing is saved.
func (s *State) Restore(snap progress.Snapshot) {
	var old []ecs.Entity
	query := s.markerFilter.Query()
	for query.Next() {
		old = append(old, query.Entity())
	}
	for _, e := range old {
		s.world.RemoveEntity(e)
	}

	for _, rec := range s.progress.Restore(snap) {
		s.spawnMarkers(rec.Key, rec.X, rec.Y, true)
	}
	s.log.Info("garden restored", "constellations", s.progress.Len())
}

// ImportLink restores the garden from a share link and saves it.
func (s *State) ImportLink(link string) error {
	snap, err := progress.DecodeShareLink(link)
	if err != nil {
		return fmt.Errorf("import share link: %w", err)
	}
	s.Restore(snap)
	if err := s.progress.Save(); err != nil {
		s.log.Error("failed to save imported garden", "error", err)
	}
	return nil
}

// ShareLink encodes the unlocked constellations as a link under base.
func (s *State) ShareLink(base string) (string, error) {
	return progress.EncodeShareLink(base, s.progress.Export())
}
