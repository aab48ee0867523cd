package progress

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Source identifies where the startup state came from.
type Source int

const (
	SourceEmpty Source = iota
	SourceLink
	SourceStore
)

func (s Source) String() string {
	switch s {
	case SourceLink:
		return "link"
	case SourceStore:
		return "store"
	default:
		return "empty"
	}
}

// ErrEmptyLink is returned when a link carries no fragment.
var ErrEmptyLink = errors.New("share link has no fragment")

// EncodeShareLink returns base followed by '#' and the base64 JSON snapshot.
func EncodeShareLink(base string, snap Snapshot) (string, error) {
	data, err := snap.Marshal()
	if err != nil {
		return "", err
	}
	return base + "#" + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeShareLink accepts a full link or a bare fragment, with or without
// the leading '#'.
func DecodeShareLink(link string) (Snapshot, error) {
	fragment := strings.TrimSpace(link)
	if i := strings.IndexByte(fragment, '#'); i >= 0 {
		fragment = fragment[i+1:]
	}
	if fragment == "" {
		return Snapshot{}, ErrEmptyLink
	}

	data, err := base64.StdEncoding.DecodeString(fragment)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return DecodeSnapshot(data)
}

// LoadInitial picks the startup state: a share link fragment wins over the
// save file, and unusable sources fall through to the next one. The caller
// should forget the link once SourceLink is returned.
func LoadInitial(fragment string, store Loader, log *slog.Logger) (Snapshot, Source) {
	if log == nil {
		log = slog.Default()
	}

	if strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(fragment), "#")) != "" {
		snap, err := DecodeShareLink(fragment)
		if err == nil {
			log.Info("loaded garden from share link", "constellations", len(snap.UnlockedConstellations))
			return snap, SourceLink
		}
		log.Warn("ignoring share link", "error", err)
	}

	if store != nil {
		snap, err := store.Load()
		switch {
		case err != nil:
			log.Warn("ignoring saved garden", "error", err)
		case snap != nil:
			log.Info("loaded garden from save file", "constellations", len(snap.UnlockedConstellations))
			return *snap, SourceStore
		}
	}

	return Snapshot{UnlockedConstellations: []Record{}}, SourceEmpty
}
