package relay

import (
	"context"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"
)

const DefaultNATSSubject = "inventory.alerts"

// NATSPublisher publishes each event on "<subject>.<event type>" with the
// event id as Nats-Msg-Id, so JetStream streams bound to the subject can
// deduplicate.
type NATSPublisher struct {
	nc      *nats.Conn
	subject string
}

func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("nats url cannot be empty")
	}
	if strings.TrimSpace(subject) == "" {
		subject = DefaultNATSSubject
	}

	nc, err := nats.Connect(url, nats.Name("inventory-alert-relay"))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &NATSPublisher{nc: nc, subject: subject}, nil
}

func subjectFor(prefix, eventType string) string {
	return strings.TrimSuffix(prefix, ".") + "." + eventType
}

func (p *NATSPublisher) Publish(ctx context.Context, eventType, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := nats.NewMsg(subjectFor(p.subject, eventType))
	msg.Data = data
	if strings.TrimSpace(key) != "" {
		msg.Header.Set("Nats-Msg-Id", key)
	}
	if err := p.nc.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish nats event: %w", err)
	}
	return nil
}

func (p *NATSPublisher) Close() error {
	if p == nil || p.nc == nil {
		return nil
	}
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
	}
	return nil
}
