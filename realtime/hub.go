// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/danielhkuo/livepoll/models"
)

// Hub maintains the set of connected subscribers and fans vote events
// out to all of them. Delivery is best-effort, at-most-once: slow or
// disconnected clients miss events with no replay.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan models.VoteEvent
	mu         sync.RWMutex
}

// NewHub creates a hub. Call Run in its own goroutine before subscribing.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan models.VoteEvent, 256),
	}
}

// Run processes register, unregister, and broadcast events until the
// process exits. All mutation of the client set happens here.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			payload, err := json.Marshal(event)
			if err != nil {
				slog.Error("failed to marshal vote event", "error", err)
				continue
			}

			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					// Client can't keep up; drop it
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastVote publishes a newVote event on the polls channel.
// Fire-and-forget: if the broadcast buffer is full the event is dropped
// rather than blocking the voting request.
func (h *Hub) BroadcastVote(pollID, optionID, votes int) {
	event := models.VoteEvent{
		Channel:   models.ChannelPolls,
		Event:     models.EventNewVote,
		Arguments: [3]int{pollID, optionID, votes},
	}

	select {
	case h.broadcast <- event:
	default:
		slog.Warn("broadcast buffer full, dropping vote event",
			"poll_id", pollID, "option_id", optionID)
	}
}

// ClientCount returns the number of connected subscribers
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
