package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DealClosed is emitted after a negotiation commits a SOLD or RENTED
// transition.
type DealClosed struct {
	NegotiationID uuid.UUID `json:"negotiationId"`
	ClosedAt      time.Time `json:"closedAt"`
}

// Hub is an in-process fanout bus for negotiation events. It implements
// negotiation.EventBus; subscribers are HTTP event streams and tests.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]chan DealClosed
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]chan DealClosed),
	}
}

// Subscribe registers a subscriber channel under id, replacing any previous
// subscription with that id.
func (h *Hub) Subscribe(id string, buffer int) <-chan DealClosed {
	ch := make(chan DealClosed, buffer)
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.subs[id]; ok {
		close(old)
	}
	h.subs[id] = ch
	return ch
}

// Unsubscribe drops a subscriber and closes its channel.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.subs[id]; ok {
		close(ch)
		delete(h.subs, id)
	}
}

// EmitDealClosed publishes the event to every subscriber. Fire-and-forget:
// a subscriber with a full buffer misses the event rather than blocking the
// emitting request.
func (h *Hub) EmitDealClosed(negotiationID uuid.UUID) {
	event := DealClosed{NegotiationID: negotiationID, ClosedAt: time.Now().UTC()}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount reports the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Stop closes all subscriber channels.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}
