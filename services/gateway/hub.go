package main

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
)

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// hub fans broadcast messages out to every connected WebSocket client.
// Slow clients are skipped rather than blocking the relay.
type hub struct {
	mu      sync.RWMutex
	clients map[*wsClient]struct{}
	bc      chan []byte
}

func newHub() *hub {
	return &hub{
		clients: make(map[*wsClient]struct{}),
		bc:      make(chan []byte, 512),
	}
}

func (h *hub) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-h.bc:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *hub) broadcast(msg []byte) {
	select {
	case h.bc <- msg:
	default:
	}
}

func (h *hub) add(conn *websocket.Conn) *wsClient {
	c := &wsClient{conn: conn, send: make(chan []byte, 64)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

func (h *hub) remove(c *wsClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

func (h *hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
