// Package realtime fans change events out to in-process subscribers and,
// optionally, to other instances through Redis.
package realtime

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

const DefaultBufferSize = 32

type Broker struct {
	origin     string
	bufferSize int
	clock      ports.Clock

	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]*subscriber
}

type subscriber struct {
	userID string
	ch     chan domain.ChangeEvent
}

var (
	_ ports.EventPublisher  = (*Broker)(nil)
	_ ports.EventSubscriber = (*Broker)(nil)
)

func NewBroker(origin string, bufferSize int) *Broker {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Broker{
		origin:     origin,
		bufferSize: bufferSize,
		clock:      time.Now,
		subs:       make(map[uint64]*subscriber),
	}
}

// Origin identifies this process in published events.
func (b *Broker) Origin() string {
	return b.origin
}

// Publish stamps the event with this origin and delivers it locally.
func (b *Broker) Publish(_ context.Context, event domain.ChangeEvent) error {
	if event.Origin == "" {
		event.Origin = b.origin
	}
	if event.At.IsZero() {
		event.At = b.clock()
	}
	b.Deliver(event)
	return nil
}

// Deliver hands event to every matching subscriber without blocking. A
// subscriber whose buffer is full misses the event.
func (b *Broker) Deliver(event domain.ChangeEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, sub := range b.subs {
		if sub.userID != "" && sub.userID != event.UserID {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			zap.L().Warn("dropping change event for slow subscriber",
				zap.Uint64("subscriber", id),
				zap.String("entity", string(event.Entity)),
				zap.String("id", event.EntityID),
			)
		}
	}
}

func (b *Broker) Subscribe(userID string) (<-chan domain.ChangeEvent, func()) {
	sub := &subscriber{
		userID: userID,
		ch:     make(chan domain.ChangeEvent, b.bufferSize),
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[id] = sub
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Subscribers returns the number of active subscriptions.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
