package relay

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/inventory-alert-service/pkg/common"
	"liyu1981.xyz/inventory-alert-service/pkg/events"
)

const defaultPublishTimeout = 5 * time.Second

// Publisher delivers one encoded event to an external broker. key is the
// event id and is meant for deduplication or partitioning.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, data []byte) error
	Close() error
}

// Relay copies bus events to a Publisher. Delivery is best-effort: failed
// publishes are logged and skipped, and events the subscription drops are
// never seen.
type Relay struct {
	Name      string
	Bus       *events.Bus
	Publisher Publisher
	Buffer    int
	Timeout   time.Duration

	mu   sync.Mutex
	sub  *events.Subscription
	done chan struct{}
}

func NewRelay(name string, bus *events.Bus, publisher Publisher) *Relay {
	return &Relay{
		Name:      name,
		Bus:       bus,
		Publisher: publisher,
		Buffer:    events.DefaultBuffer * 4,
		Timeout:   defaultPublishTimeout,
	}
}

// Start subscribes before returning, so events published afterwards are
// relayed.
func (r *Relay) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sub != nil {
		return
	}
	r.sub = r.Bus.Subscribe(r.Buffer)
	r.done = make(chan struct{})

	go r.loop(ctx, r.sub, r.done)
}

// Stop detaches from the bus, flushes what was already buffered and closes
// the publisher.
func (r *Relay) Stop() error {
	r.mu.Lock()
	sub, done := r.sub, r.done
	r.sub = nil
	r.mu.Unlock()

	if sub == nil {
		return nil
	}
	r.Bus.Unsubscribe(sub)
	<-done
	return r.Publisher.Close()
}

func (r *Relay) loop(ctx context.Context, sub *events.Subscription, done chan struct{}) {
	defer close(done)

	logger := common.GetLoggerWith(common.LoggerNameRelay, zap.String("relay", r.Name))
	logger.Info("Relay started")

	for ev := range sub.C {
		r.forward(ctx, logger, ev)
	}

	logger.Info("Relay stopped", zap.Int64("dropped", sub.Dropped()))
}

func (r *Relay) forward(ctx context.Context, logger *zap.Logger, ev events.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		logger.Error("Failed to encode event", zap.String("event_id", ev.ID.String()), zap.Error(err))
		return
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := r.Publisher.Publish(publishCtx, ev.Type, ev.ID.String(), data); err != nil {
		logger.Warn("Failed to relay event",
			zap.String("event_id", ev.ID.String()),
			zap.String("event_type", ev.Type),
			zap.Error(err),
		)
		return
	}

	logger.Debug("Event relayed", zap.String("event_id", ev.ID.String()), zap.String("event_type", ev.Type))
}
