// Package redis publishes order events on a Redis Pub/Sub channel as JSON.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"logistics/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel is used when no channel is configured.
const DefaultChannel = "logistics.orders"

// OrderEventPublisher implements ports.OrderEventPublisher over Redis Pub/Sub.
type OrderEventPublisher struct {
	rdb     *redis.Client
	channel string
}

var _ ports.OrderEventPublisher = (*OrderEventPublisher)(nil)

// NewOrderEventPublisher connects to addr and checks the connection with PING.
func NewOrderEventPublisher(ctx context.Context, addr, password, channel string) (*OrderEventPublisher, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return NewOrderEventPublisherWithClient(rdb, channel), nil
}

// NewOrderEventPublisherWithClient wraps an existing client.
func NewOrderEventPublisherWithClient(rdb *redis.Client, channel string) *OrderEventPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &OrderEventPublisher{rdb: rdb, channel: channel}
}

// Channel returns the Pub/Sub channel events are sent to.
func (p *OrderEventPublisher) Channel() string {
	return p.channel
}

// Publish sends the JSON encoded event.
func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}
	if err = p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}
	return nil
}

// Close closes the underlying client.
func (p *OrderEventPublisher) Close() error {
	return p.rdb.Close()
}
