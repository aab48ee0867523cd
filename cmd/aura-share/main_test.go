package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/aura/constellation"
	"github.com/pthm-cable/aura/progress"
)

func TestEncodeDecode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.json")
	store := &progress.FileStore{Path: path}
	require.NoError(t, store.Save(progress.Snapshot{UnlockedConstellations: []progress.Record{
		{Key: constellation.Lyra, X: 120, Y: 80},
	}}))

	var out, errOut bytes.Buffer
	code := run([]string{"encode", "-base", "https://garden.example", "-save", path}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	link := strings.TrimSpace(out.String())
	assert.True(t, strings.HasPrefix(link, "https://garden.example#"))

	out.Reset()
	code = run([]string{"decode", link}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.JSONEq(t, `{"unlockedConstellations":[{"key":"LYRA","x":120,"y":80}]}`, out.String())
}

func TestDecodeNames(t *testing.T) {
	link, err := progress.EncodeShareLink("", progress.Snapshot{UnlockedConstellations: []progress.Record{
		{Key: constellation.Lyra, X: 10, Y: 20},
		{Key: "NOPE", X: 0, Y: 0},
	}})
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	require.Equal(t, 0, run([]string{"decode", "-names", link}, &out, &errOut))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Lyra (10, 20)", lines[0])
	assert.Equal(t, "NOPE (0, 0)", lines[1], "unknown keys print as-is")
}

func TestEncodeNothingUnlocked(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"encode", "-save", filepath.Join(t.TempDir(), "missing.json")}, &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "nothing unlocked")
}

func TestDecodeMalformed(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 1, run([]string{"decode", "#!!!"}, &out, &errOut))
	assert.Equal(t, 2, run([]string{"decode"}, &out, &errOut))
}

func TestUnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 2, run(nil, &out, &errOut))
	assert.Equal(t, 2, run([]string{"frobnicate"}, &out, &errOut))
	assert.Equal(t, 0, run([]string{"help"}, &out, &errOut))
}
