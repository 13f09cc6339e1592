package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/arunmm8335/war-of-the-pixel/internal/engine"
	"github.com/arunmm8335/war-of-the-pixel/internal/event"
	"github.com/arunmm8335/war-of-the-pixel/pkg/log"
)

// streamItem is one SSE frame.
type streamItem struct {
	Topic string `json:"topic"`
	Data  any    `json:"data"`
}

type subscriber struct {
	ch     chan streamItem
	filter celFilter
}

// Broker fans live events out to SSE subscribers. It implements
// engine.Publisher; each subscriber can narrow the feed with a CEL
// expression over event fields.
type Broker struct {
	mu   sync.RWMutex
	subs map[*subscriber]struct{}
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[*subscriber]struct{})}
}

// PublishBoard pushes a paint event to matching subscribers.
func (b *Broker) PublishBoard(ev event.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for s := range b.subs {
		if !s.filter.Eval(ev) {
			continue
		}
		select {
		case s.ch <- streamItem{Topic: "board", Data: ev}:
		default:
			// subscriber is not draining, skip this frame
		}
	}
}

// PublishChat pushes a taunt to all subscribers. Chat frames bypass
// the filter since its variables describe paint events.
func (b *Broker) PublishChat(msg engine.ChatMessage) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for s := range b.subs {
		select {
		case s.ch <- streamItem{Topic: "chat", Data: msg}:
		default:
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Broker) subscribe(filter celFilter) *subscriber {
	s := &subscriber{ch: make(chan streamItem, 64), filter: filter}
	b.mu.Lock()
	b.subs[s] = struct{}{}
	b.mu.Unlock()
	return s
}

func (b *Broker) unsubscribe(s *subscriber) {
	b.mu.Lock()
	delete(b.subs, s)
	b.mu.Unlock()
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	filter, err := newCELFilter(r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, errStreamingUnsupported)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := s.broker.subscribe(filter)
	defer s.broker.unsubscribe(sub)

	for {
		select {
		case <-r.Context().Done():
			return
		case it := <-sub.ch:
			data, err := json.Marshal(it)
			if err != nil {
				s.logger.Error("marshal stream item", log.Err(err))
				continue
			}
			if _, err := w.Write([]byte("data: ")); err != nil {
				return
			}
			if _, err := w.Write(data); err != nil {
				return
			}
			if _, err := w.Write([]byte("\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
