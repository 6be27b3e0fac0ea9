package events

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	EventAlertCreated  = "alert.created"
	EventAlertUpdated  = "alert.updated"
	EventAlertResolved = "alert.resolved"
)

const DefaultBuffer = 64

type Event struct {
	ID      uuid.UUID `json:"id"`
	Type    string    `json:"type"`
	Payload any       `json:"payload"`
	At      time.Time `json:"at"`
}

// ResolvedPayload is all a subscriber learns about a resolved alert.
type ResolvedPayload struct {
	ID uint `json:"id"`
}

func NewEvent(eventType string, payload any) Event {
	return Event{
		ID:      uuid.New(),
		Type:    eventType,
		Payload: payload,
		At:      time.Now(),
	}
}

// Subscription receives every event published after it was attached.
type Subscription struct {
	C <-chan Event

	ch      chan Event
	dropped atomic.Int64
}

// Dropped counts events skipped because the subscriber's buffer was full.
func (s *Subscription) Dropped() int64 {
	return s.dropped.Load()
}

// Bus fans events out to live subscribers. Publish never waits on a slow
// subscriber and nothing is replayed to late ones.
type Bus struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	closed bool
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[*Subscription]struct{}),
	}
}

func (b *Bus) Subscribe(buffer int) *Subscription {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan Event, buffer)
	sub := &Subscription{C: ch, ch: ch}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return sub
	}
	b.subs[sub] = struct{}{}
	return sub
}

// Unsubscribe detaches sub and closes its channel. Safe to call twice.
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	close(sub.ch)
}

func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs {
		select {
		case sub.ch <- ev:
		default:
			sub.dropped.Add(1)
		}
	}
}

func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close detaches every subscriber. Later publishes are no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		close(sub.ch)
	}
	b.subs = make(map[*Subscription]struct{})
}
