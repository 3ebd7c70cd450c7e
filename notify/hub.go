// Package notify pushes new-order events to connected seller dashboards,
// replacing polling with a per-seller websocket subscription.
package notify

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// OrderEvent is broadcast to the owning seller when a checkout commits one of
// its per-seller orders.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	SellerID     string    `json:"seller_id"`
	TotalAmount  float64   `json:"total_amount"`
	CustomerName string    `json:"customer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// conn is the slice of *websocket.Conn the hub needs; tests substitute fakes.
type conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub tracks seller subscriptions. Safe for concurrent use.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[conn]bool // sellerID -> connections
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[conn]bool)}
}

func (h *Hub) Subscribe(sellerID string, c conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[sellerID] == nil {
		h.subs[sellerID] = make(map[conn]bool)
	}
	h.subs[sellerID][c] = true
}

func (h *Hub) Unsubscribe(sellerID string, c conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[sellerID], c)
	if len(h.subs[sellerID]) == 0 {
		delete(h.subs, sellerID)
	}
}

// Publish delivers the event to every connection of its seller. Write
// failures drop the connection; the dashboard reconnects on its own.
func (h *Hub) Publish(ev OrderEvent) {
	if ev.Type == "" {
		ev.Type = "order_created"
	}
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("❌ Failed to encode order event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.subs[ev.SellerID] {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			c.Close()
			delete(h.subs[ev.SellerID], c)
		}
	}
}
