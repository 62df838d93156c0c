package ws

import (
	"encoding/json"
	"sync"

	"pirate_economy/internal/logger"
)

// Hub fans economy events out to every connected feed client. It is
// broadcast-only: clients never send anything the hub acts on.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	logger.Debug("feed client connected", "clients", count)
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
	}
	count := len(h.clients)
	h.mu.Unlock()

	logger.Debug("feed client disconnected", "clients", count)
}

// Publish marshals the event and queues it to every client. Clients whose
// send buffer is full are dropped rather than allowed to stall the feed.
func (h *Hub) Publish(event any) {
	msg, err := json.Marshal(event)
	if err != nil {
		logger.Warn("failed to marshal feed event", "error", err)
		return
	}

	h.mu.RLock()
	var stalled []*Client
	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
			stalled = append(stalled, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stalled {
		h.Unregister(c)
	}
}
