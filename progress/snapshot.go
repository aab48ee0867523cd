package progress

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed is returned when persisted or shared data cannot be used.
// Callers treat it as absent data.
var ErrMalformed = errors.New("malformed garden data")

// Record is one unlocked constellation and where it was unlocked.
type Record struct {
	Key string  `json:"key"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
}

// Snapshot is the serializable progress state shared by the save file and
// share links.
type Snapshot struct {
	UnlockedConstellations []Record `json:"unlockedConstellations"`
}

// Marshal encodes the snapshot as JSON. A nil list encodes as [].
func (s Snapshot) Marshal() ([]byte, error) {
	if s.UnlockedConstellations == nil {
		s.UnlockedConstellations = []Record{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot, rejecting input that is not JSON or whose
// unlockedConstellations field is missing or not a list.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var raw struct {
		Unlocked json.RawMessage `json:"unlockedConstellations"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	list := bytes.TrimSpace(raw.Unlocked)
	if len(list) == 0 || list[0] != '[' {
		return Snapshot{}, fmt.Errorf("%w: unlockedConstellations is not a list", ErrMalformed)
	}

	var snap Snapshot
	if err := json.Unmarshal(list, &snap.UnlockedConstellations); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return snap, nil
}
