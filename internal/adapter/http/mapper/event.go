package mapper

import (
	"time"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

func ToChangeEventItem(event domain.ChangeEvent) dto.ChangeEventItem {
	return dto.ChangeEventItem{
		Type:   string(event.Type),
		Entity: string(event.Entity),
		ID:     event.EntityID,
		At:     event.At.UTC().Format(time.RFC3339),
	}
}
