package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
	"taskhub/internal/metrics"
)

// publish notifies subscribers of a committed change. Failures are logged
// and never undo the write.
func publish(ctx context.Context, events ports.EventPublisher, change domain.ChangeType, entity domain.Entity, id, userID string, at time.Time) {
	if events == nil {
		return
	}
	event := domain.ChangeEvent{
		Type:     change,
		Entity:   entity,
		EntityID: id,
		UserID:   userID,
		At:       at,
	}
	if err := events.Publish(ctx, event); err != nil {
		zap.L().Warn("failed to publish change event",
			zap.String("entity", string(entity)),
			zap.String("id", id),
			zap.Error(err),
		)
		return
	}
	metrics.EventsPublished.WithLabelValues(string(entity), string(change)).Inc()
}

func nowFunc(clock ports.Clock) ports.Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}

// stamp returns the persisted form of an instant.
func stamp(now time.Time) time.Time {
	return now.UTC().Truncate(time.Second)
}
