package constellation

// Notes is a bounded FIFO of recent note values. When full, pushing drops
// the oldest entry.
type Notes struct {
	buf []int
	cap int
}

// NewNotes creates an empty buffer holding at most capacity notes.
func NewNotes(capacity int) *Notes {
	if capacity < 1 {
		capacity = 1
	}
	return &Notes{buf: make([]int, 0, capacity), cap: capacity}
}

// Push appends n, evicting the oldest note when at capacity.
func (n *Notes) Push(note int) {
	if len(n.buf) == n.cap {
		copy(n.buf, n.buf[1:])
		n.buf = n.buf[:n.cap-1]
	}
	n.buf = append(n.buf, note)
}

// Values returns a copy of the buffered notes, oldest first.
func (n *Notes) Values() []int {
	out := make([]int, len(n.buf))
	copy(out, n.buf)
	return out
}

// Len returns the number of buffered notes.
func (n *Notes) Len() int { return len(n.buf) }

// Cap returns the buffer capacity.
func (n *Notes) Cap() int { return n.cap }

// Clear empties the buffer.
func (n *Notes) Clear() { n.buf = n.buf[:0] }
