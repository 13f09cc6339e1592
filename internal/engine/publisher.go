package engine

import "github.com/arunmm8335/war-of-the-pixel/internal/event"

// ChatMessage is the payload fanned out on the chat channel when an
// event carries a taunt.
type ChatMessage struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// Publisher receives live events after they have been folded into the
// projections. Bootstrap replay is never published.
type Publisher interface {
	PublishBoard(ev event.Event)
	PublishChat(msg ChatMessage)
}

// NopPublisher discards everything.
type NopPublisher struct{}

func (NopPublisher) PublishBoard(event.Event) {}
func (NopPublisher) PublishChat(ChatMessage)  {}

// Multi fans one publish out to several publishers.
func Multi(pubs ...Publisher) Publisher { return multiPub(pubs) }

type multiPub []Publisher

func (m multiPub) PublishBoard(ev event.Event) {
	for _, p := range m {
		p.PublishBoard(ev)
	}
}

func (m multiPub) PublishChat(msg ChatMessage) {
	for _, p := range m {
		p.PublishChat(msg)
	}
}
