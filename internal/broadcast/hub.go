// Package broadcast fans timer lifecycle events out to connected WebSocket
// observers. Delivery is best effort: observers that connect late miss
// earlier events, and a dead observer is dropped rather than retried.
package broadcast

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/zlog"

	"webhook-timer/internal/model"
)

// Event types pushed to observers.
const (
	EventTimerCreated   = "timer_created"
	EventTimerCompleted = "timer_completed"
	EventTimerCancelled = "timer_cancelled"
	EventActiveTimers   = "active_timers"
	EventActivities     = "activities"
)

// Event is a single message pushed to observers.
type Event struct {
	Type       string           `json:"type"`
	Timer      *model.Timer     `json:"timer,omitempty"`
	TimerID    string           `json:"timer_id,omitempty"`
	Timers     []model.Timer    `json:"timers,omitempty"`
	Activities []model.Activity `json:"activities,omitempty"`
}

const writeWait = 10 * time.Second

// client wraps a connection with a mutex, since gorilla connections do not
// support concurrent writers.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(e Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(e)
}

// Hub maintains the set of connected observers.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*client
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*client)}
}

// Subscribe registers a connection as an observer.
func (h *Hub) Subscribe(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = &client{conn: conn}
	h.mu.Unlock()
}

// Unsubscribe removes a connection. It is a no-op for unknown connections.
func (h *Hub) Unsubscribe(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Count returns the number of registered observers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Publish pushes the event to every registered observer. It iterates over a
// snapshot of the registration set, so a failing observer never blocks the
// others; failed observers are dropped and their connections closed.
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	snapshot := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		snapshot = append(snapshot, c)
	}
	h.mu.RUnlock()

	for _, c := range snapshot {
		if err := c.write(e); err != nil {
			zlog.Logger.Warn().Err(err).Msg("dropping observer: write failed")
			h.Unsubscribe(c.conn)
			_ = c.conn.Close()
		}
	}
}

// Send delivers an event to a single connection, used for snapshot replies.
func (h *Hub) Send(conn *websocket.Conn, e Event) error {
	h.mu.RLock()
	c, ok := h.clients[conn]
	h.mu.RUnlock()

	if !ok {
		return nil
	}

	return c.write(e)
}
