package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/arunmm8335/war-of-the-pixel/pkg/log"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
	sendBuffer   = 64
)

type client struct {
	wc        *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

func (c *client) closeSend() {
	c.closeOnce.Do(func() { close(c.send) })
}

// Serve returns the HTTP handler that upgrades connections and wires
// them into the hub. Inbound frames are discarded; painting goes
// through the HTTP API, the socket is broadcast only.
func (h *Hub) Serve() http.HandlerFunc {
	upgr := &websocket.Upgrader{
		// same-origin policy is enforced by the deployment, not here
		CheckOrigin: func(*http.Request) bool { return true },
	}
	return func(w http.ResponseWriter, r *http.Request) {
		wc, err := upgr.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("upgrade failed", log.Err(err))
			return
		}
		c := &client{wc: wc, send: make(chan []byte, sendBuffer)}
		h.add(c)
		go c.writePump()
		c.readPump()
		h.remove(c)
	}
}

// readPump drains and discards client frames until the peer goes away.
func (c *client) readPump() {
	c.wc.SetReadLimit(1 << 16)
	for {
		if _, _, err := c.wc.NextReader(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	defer c.wc.Close()
	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				c.wc.SetWriteDeadline(time.Now().Add(writeTimeout))
				c.wc.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			c.wc.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.wc.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-t.C:
			c.wc.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.wc.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		}
	}
}
