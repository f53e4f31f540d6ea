package bricks

import "github.com/vovakirdan/tui-bricks/internal/core"

// Trail is a fixed-size FIFO of recent ball positions, used only for drawing.
// When full, pushing evicts the oldest point.
type Trail struct {
	buf   []core.Vec
	start int // Index of the oldest point
	size  int
}

// NewTrail creates a trail holding at most n points.
func NewTrail(n int) *Trail {
	return &Trail{buf: make([]core.Vec, max(n, 0))}
}

// Push appends the newest position.
func (t *Trail) Push(p core.Vec) {
	if len(t.buf) == 0 {
		return
	}
	if t.size < len(t.buf) {
		t.buf[(t.start+t.size)%len(t.buf)] = p
		t.size++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % len(t.buf)
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.size
}

// Cap returns the maximum number of points.
func (t *Trail) Cap() int {
	return len(t.buf)
}

// Points returns the stored positions, oldest first.
func (t *Trail) Points() []core.Vec {
	out := make([]core.Vec, t.size)
	for i := range t.size {
		out[i] = t.buf[(t.start+i)%len(t.buf)]
	}
	return out
}

// Newest returns the most recently pushed position.
func (t *Trail) Newest() (core.Vec, bool) {
	if t.size == 0 {
		return core.Vec{}, false
	}
	return t.buf[(t.start+t.size-1)%len(t.buf)], true
}

// Clear drops all points.
func (t *Trail) Clear() {
	t.start = 0
	t.size = 0
}
