package presence

import (
	"context"
	"encoding/json"
	"log"
)

const MessageTypeOnlineCount = "online_count"

// CountMessage is pushed to every member after a membership change.
type CountMessage struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Hub tracks the set of live presence connections. A single Run
// goroutine owns the set; Admit, Remove and Count enqueue onto its
// channels, so every mutation and the count taken for its broadcast
// happen in one step.
type Hub struct {
	clients map[*Client]struct{}

	admit  chan *Client
	remove chan *Client
	count  chan chan int
	done   chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		admit:   make(chan *Client),
		remove:  make(chan *Client),
		count:   make(chan chan int),
		done:    make(chan struct{}),
	}
}

// Run owns the client set until ctx is cancelled. On exit every
// remaining member is closed.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		case c := <-h.admit:
			h.clients[c] = struct{}{}
			h.broadcastCount()
		case c := <-h.remove:
			if _, ok := h.clients[c]; !ok {
				// already gone, nothing to announce
				continue
			}
			delete(h.clients, c)
			close(c.send)
			h.broadcastCount()
		case reply := <-h.count:
			reply <- len(h.clients)
		}
	}
}

// Admit adds the client to the set and announces the new count to all
// members, the new client included.
func (h *Hub) Admit(c *Client) {
	select {
	case h.admit <- c:
	case <-h.done:
	}
}

// Remove drops the client and announces the new count to the
// remaining members. Removing a client that is not in the set is a
// no-op.
func (h *Hub) Remove(c *Client) {
	select {
	case h.remove <- c:
	case <-h.done:
	}
}

// Count reports the current set size.
func (h *Hub) Count() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}

// broadcastCount delivers the current size to every member. A member
// whose outbound queue cannot accept the message is treated as
// disconnected: it is dropped from the set and the pass is retried so
// the survivors see the corrected count. The retry terminates because
// the set shrinks on every failed pass.
func (h *Hub) broadcastCount() {
	for {
		payload, err := json.Marshal(CountMessage{
			Type:  MessageTypeOnlineCount,
			Count: len(h.clients),
		})
		if err != nil {
			log.Printf("presence: marshal count: %v", err)
			return
		}

		var failed []*Client
		for c := range h.clients {
			select {
			case c.send <- payload:
			default:
				failed = append(failed, c)
			}
		}

		if len(failed) == 0 {
			return
		}

		for _, c := range failed {
			delete(h.clients, c)
			close(c.send)
		}
	}
}
