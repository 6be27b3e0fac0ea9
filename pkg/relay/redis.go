package relay

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisChannel = "inventory:alerts"

// RedisPublisher PUBLISHes every event on one channel. Subscribers read the
// event type from the payload.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher connects and pings before returning.
func NewRedisPublisher(ctx context.Context, addr, channel string) (*RedisPublisher, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, fmt.Errorf("redis addr cannot be empty")
	}
	if strings.TrimSpace(channel) == "" {
		channel = DefaultRedisChannel
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return &RedisPublisher{client: client, channel: channel}, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, eventType, key string, data []byte) error {
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis event %s: %w", key, err)
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}
