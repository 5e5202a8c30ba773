package ports

import (
	"context"

	"taskhub/internal/core/domain"
)

type EventPublisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent) error
}

type EventSubscriber interface {
	// Subscribe streams events of userID, or of every user when userID is
	// empty, until cancel is called.
	Subscribe(userID string) (events <-chan domain.ChangeEvent, cancel func())
}
