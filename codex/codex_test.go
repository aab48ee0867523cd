package codex

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/aura/constellation"
	"github.com/pthm-cable/aura/progress"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time         { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newCodex() (*Codex, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	return New(clk.now), clk
}

func TestEntriesEmpty(t *testing.T) {
	entries := Entries(nil, constellation.Default())
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Empty)
	assert.Equal(t, EmptyMessage, entries[0].Text)
	assert.Equal(t, EmptyDelay, entries[0].Delay)
}

func TestEntriesNamesInUnlockOrder(t *testing.T) {
	records := []progress.Record{
		{Key: constellation.Orion},
		{Key: constellation.Lyra},
		{Key: "VEGA"},
	}
	entries := Entries(records, constellation.Default())

	require.Len(t, entries, 3)
	assert.Equal(t, constellation.Default().Name(constellation.Orion), entries[0].Text)
	assert.Equal(t, constellation.Default().Name(constellation.Lyra), entries[1].Text)
	assert.Equal(t, UnknownName, entries[2].Text)
	assert.Equal(t, 2*EntryStagger, entries[2].Delay)
}

func TestRevealFadesInAfterDelay(t *testing.T) {
	c, clk := newCodex()
	c.Open()
	e := Entry{Delay: EntryStagger}

	assert.Zero(t, c.Reveal(e))
	clk.advance(EntryStagger + FadeDuration/2)
	assert.InDelta(t, 0.5, c.Reveal(e), 0.01)
	clk.advance(FadeDuration)
	assert.Equal(t, float32(1), c.Reveal(e))

	// Reopening restarts the animation
	c.Close()
	c.Open()
	assert.Zero(t, c.Reveal(e))
}

func TestToggle(t *testing.T) {
	c, _ := newCodex()
	assert.False(t, c.IsOpen())
	c.Toggle()
	assert.True(t, c.IsOpen())
	c.Toggle()
	assert.False(t, c.IsOpen())
}

func TestShareNothingUnlocked(t *testing.T) {
	c, clk := newCodex()
	called := false

	link, err := c.Share(0, func() (string, error) {
		called = true
		return "x", nil
	}, func(string) error { return nil })

	require.NoError(t, err)
	assert.Empty(t, link)
	assert.False(t, called)
	assert.Equal(t, MsgNothingToShare, c.ShareButtonLabel())

	clk.advance(FeedbackDuration)
	assert.Equal(t, ShareLabel, c.ShareButtonLabel())
}

func TestShareOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		linkErr error
		copyErr error
		want    string
	}{
		{"copied", nil, nil, MsgCopied},
		{"copy failed", nil, errors.New("no clipboard"), MsgCopyFailed},
		{"encode failed", errors.New("bad"), nil, MsgError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clk := newCodex()
			var copied string

			_, err := c.Share(1,
				func() (string, error) { return "https://garden#abc", tt.linkErr },
				func(s string) error {
					copied = s
					return tt.copyErr
				})

			if tt.linkErr != nil || tt.copyErr != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "https://garden#abc", copied)
			}
			assert.Equal(t, tt.want, c.ShareButtonLabel())

			clk.advance(FeedbackDuration - time.Millisecond)
			assert.Equal(t, tt.want, c.ShareButtonLabel())
			clk.advance(time.Millisecond)
			assert.Equal(t, ShareLabel, c.ShareButtonLabel())
		})
	}
}
