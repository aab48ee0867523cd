// Package codex holds the state of the constellation codex overlay: which
// entries it lists, how they fade in, and the share button's transient
// feedback. Frontends draw it; nothing here touches a screen.
package codex

import (
	"time"

	"github.com/pthm-cable/aura/constellation"
	"github.com/pthm-cable/aura/progress"
)

// Overlay text.
const (
	EmptyMessage = "Your garden is yet to reveal its secrets..."
	UnknownName  = "Unknown Star"

	ShareLabel        = "Share Garden"
	MsgNothingToShare = "Unlock something first!"
	MsgCopied         = "Link Copied!"
	MsgCopyFailed     = "Could not copy."
	MsgError          = "Error."
)

// Timing of the overlay animations.
const (
	FeedbackDuration = 2 * time.Second
	EntryStagger     = 150 * time.Millisecond
	EmptyDelay       = 100 * time.Millisecond
	FadeDuration     = 400 * time.Millisecond
)

// Entry is one line of the codex list.
type Entry struct {
	Text  string
	Delay time.Duration // time after opening before the line fades in
	Empty bool
}

// Codex is the overlay state.
type Codex struct {
	now func() time.Time

	open     bool
	openedAt time.Time

	feedback string
	until    time.Time
}

// New creates a closed codex. now may be nil to use the wall clock.
func New(now func() time.Time) *Codex {
	if now == nil {
		now = time.Now
	}
	return &Codex{now: now}
}

// Open shows the overlay and restarts the entry animation.
func (c *Codex) Open() {
	c.open = true
	c.openedAt = c.now()
}

// Close hides the overlay.
func (c *Codex) Close() { c.open = false }

// Toggle opens a closed codex and closes an open one.
func (c *Codex) Toggle() {
	if c.open {
		c.Close()
	} else {
		c.Open()
	}
}

// IsOpen reports whether the overlay is showing.
func (c *Codex) IsOpen() bool { return c.open }

// Entries lists unlocked constellation names in unlock order, or the
// empty message when there are none.
func Entries(records []progress.Record, catalog *constellation.Catalog) []Entry {
	if len(records) == 0 {
		return []Entry{{Text: EmptyMessage, Delay: EmptyDelay, Empty: true}}
	}
	entries := make([]Entry, len(records))
	for i, rec := range records {
		name := UnknownName
		if catalog != nil && catalog.Has(rec.Key) {
			name = catalog.Name(rec.Key)
		}
		entries[i] = Entry{Text: name, Delay: time.Duration(i) * EntryStagger}
	}
	return entries
}

// Reveal returns the opacity of e, rising from 0 to 1 over FadeDuration
// once its delay since opening has passed.
func (c *Codex) Reveal(e Entry) float32 {
	elapsed := c.now().Sub(c.openedAt) - e.Delay
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= FadeDuration {
		return 1
	}
	return float32(elapsed) / float32(FadeDuration)
}

// ShareButtonLabel returns the share button text: the latest feedback
// message for FeedbackDuration, then ShareLabel.
func (c *Codex) ShareButtonLabel() string {
	if c.feedback != "" && c.now().Before(c.until) {
		return c.feedback
	}
	return ShareLabel
}

func (c *Codex) flash(msg string) {
	c.feedback = msg
	c.until = c.now().Add(FeedbackDuration)
}

// Share builds a link with makeLink and hands it to copyLink, updating
// the button feedback. With nothing unlocked it does neither. Failures are
// reported only through the feedback text. The link is returned when it
// was built.
func (c *Codex) Share(unlocked int, makeLink func() (string, error), copyLink func(string) error) (string, error) {
	if unlocked == 0 {
		c.flash(MsgNothingToShare)
		return "", nil
	}
	link, err := makeLink()
	if err != nil {
		c.flash(MsgError)
		return "", err
	}
	if err := copyLink(link); err != nil {
		c.flash(MsgCopyFailed)
		return link, err
	}
	c.flash(MsgCopied)
	return link, nil
}
