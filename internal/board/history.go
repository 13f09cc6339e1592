package board

import (
	"sync"

	"github.com/arunmm8335/war-of-the-pixel/internal/event"
)

// History is a bounded FIFO of the most recent events. When full, the
// oldest entry is evicted on append.
type History struct {
	mu  sync.RWMutex
	cap int
	buf []event.Event
}

// NewHistory creates a history holding at most capacity events.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{cap: capacity}
}

// Cap returns the maximum number of retained events.
func (h *History) Cap() int { return h.cap }

// Append records an event, evicting the oldest when at capacity.
func (h *History) Append(ev event.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.buf) == h.cap {
		copy(h.buf, h.buf[1:])
		h.buf[len(h.buf)-1] = ev
		return
	}
	h.buf = append(h.buf, ev)
}

// Events returns a copy of the retained events, oldest first.
func (h *History) Events() []event.Event {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]event.Event, len(h.buf))
	copy(out, h.buf)
	return out
}

// Len returns the number of retained events.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.buf)
}
