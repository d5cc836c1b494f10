// Package events provides the in-process change feed the stores publish
// to. It replaces polling-style recomputation of derived views: anything
// that needs to stay consistent with the stores subscribes and recomputes
// on receipt.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/pkg/clock"
)

// Envelope wraps a domain event with delivery metadata.
type Envelope struct {
	EventID    string
	OccurredAt time.Time
	Event      domain.Event
}

// Handler consumes published envelopes. Handlers run synchronously on the
// publisher's goroutine and must not block.
type Handler func(Envelope)

// Bus is a synchronous fan-out bus. Publishers must not hold store locks
// while publishing, since handlers are free to read the stores.
type Bus struct {
	mu       sync.Mutex
	clock    clock.Clock
	handlers []Handler
}

// NewBus creates a Bus stamping envelopes with the given clock.
func NewBus(clk clock.Clock) *Bus {
	return &Bus{clock: clk}
}

// Subscribe registers a handler for all subsequent events.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish enriches the event with an id and timestamp and delivers it to
// every subscriber in registration order.
func (b *Bus) Publish(event domain.Event) {
	env := Envelope{
		EventID:    uuid.New().String(),
		OccurredAt: b.clock.Now(),
		Event:      event,
	}

	b.mu.Lock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.Unlock()

	for _, h := range handlers {
		h(env)
	}
}
