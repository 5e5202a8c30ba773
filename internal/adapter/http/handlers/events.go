package handlers

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/adapter/http/mapper"
	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/core/ports"
)

const DefaultHeartbeat = 25 * time.Second

type EventsHandler struct {
	subscriber ports.EventSubscriber
	heartbeat  time.Duration
}

func NewEventsHandler(subscriber ports.EventSubscriber, heartbeat time.Duration) *EventsHandler {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	return &EventsHandler{subscriber: subscriber, heartbeat: heartbeat}
}

// Stream sends the caller's change events as server-sent events until the
// client disconnects.
func (h *EventsHandler) Stream(c *gin.Context) {
	userID := middleware.GetUserID(c)
	events, cancel := h.subscriber.Subscribe(userID)
	defer cancel()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	zap.L().Debug("event stream opened", zap.String("user_id", userID))
	ctx := c.Request.Context()
	c.Stream(func(_ io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("change", mapper.ToChangeEventItem(event))
			return true
		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			return true
		}
	})
	zap.L().Debug("event stream closed", zap.String("user_id", userID))
}
