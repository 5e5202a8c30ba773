package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

const DefaultChannel = "taskhub:changes"

// RedisFeed publishes events through Redis so every instance sees writes
// made by the others. Local delivery goes through the wrapped Broker.
type RedisFeed struct {
	rdb     *redis.Client
	broker  *Broker
	channel string
}

var _ ports.EventPublisher = (*RedisFeed)(nil)

// NewRedisClient parses url and checks the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func NewRedisFeed(rdb *redis.Client, broker *Broker, channel string) *RedisFeed {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisFeed{rdb: rdb, broker: broker, channel: channel}
}

// Publish delivers locally first, then forwards to Redis.
func (f *RedisFeed) Publish(ctx context.Context, event domain.ChangeEvent) error {
	if event.Origin == "" {
		event.Origin = f.broker.Origin()
	}
	if err := f.broker.Publish(ctx, event); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode change event: %w", err)
	}
	if err := f.rdb.Publish(ctx, f.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish change event: %w", err)
	}
	return nil
}

// Run relays events published by other instances to local subscribers until
// ctx is done.
func (f *RedisFeed) Run(ctx context.Context) error {
	pubsub := f.rdb.Subscribe(ctx, f.channel)
	defer func() {
		if err := pubsub.Close(); err != nil {
			zap.L().Debug("failed to close redis subscription", zap.Error(err))
		}
	}()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", f.channel, err)
	}

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			event, err := decodeEvent(msg.Payload)
			if err != nil {
				zap.L().Warn("ignoring malformed change event", zap.Error(err))
				continue
			}
			if event.Origin == f.broker.Origin() {
				continue
			}
			f.broker.Deliver(event)
		}
	}
}

func decodeEvent(payload string) (domain.ChangeEvent, error) {
	var event domain.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return domain.ChangeEvent{}, fmt.Errorf("decode change event: %w", err)
	}
	if event.UserID == "" || event.Entity == "" {
		return domain.ChangeEvent{}, errors.New("change event missing user or entity")
	}
	return event, nil
}
