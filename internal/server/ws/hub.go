package ws

import (
	"encoding/json"
	"sync"

	"github.com/arunmm8335/war-of-the-pixel/internal/engine"
	"github.com/arunmm8335/war-of-the-pixel/internal/event"
	"github.com/arunmm8335/war-of-the-pixel/pkg/log"
)

// Topics carried in envelopes.
const (
	TopicBoard = "board"
	TopicChat  = "chat"
)

// Envelope is the frame pushed to every client.
type Envelope struct {
	Topic string      `json:"topic"`
	Data  interface{} `json:"data"`
}

// Hub tracks connected clients and broadcasts envelopes to them. It
// implements engine.Publisher.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	logger  log.Logger
}

// NewHub creates an empty hub.
func NewHub(logger log.Logger) *Hub {
	if logger == nil {
		logger = log.NewLogger()
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger.WithComponent("ws"),
	}
}

// PublishBoard pushes a paint event on the board topic.
func (h *Hub) PublishBoard(ev event.Event) {
	h.broadcast(Envelope{Topic: TopicBoard, Data: ev})
}

// PublishChat pushes a taunt on the chat topic.
func (h *Hub) PublishChat(msg engine.ChatMessage) {
	h.broadcast(Envelope{Topic: TopicChat, Data: msg})
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) broadcast(env Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		h.logger.Error("marshal envelope", log.Err(err))
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// slow client, drop the connection not the engine
			go h.remove(c)
		}
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.logger.Info("client connected", log.Int("clients", n))
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
	}
	n := len(h.clients)
	h.mu.Unlock()
	if ok {
		c.closeSend()
		h.logger.Info("client disconnected", log.Int("clients", n))
	}
}
