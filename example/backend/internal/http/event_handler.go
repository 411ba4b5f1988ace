package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientEvent mirrors the event payload the client library flushes.
type ClientEvent struct {
	Id        string         `json:"id" binding:"required"`
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"`
	Type      string         `json:"type" binding:"required"`
	Message   string         `json:"message,omitempty"`
	Error     string         `json:"error,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

type EventHandler struct {
	logger *zap.SugaredLogger
}

func NewEventHandler(logger *zap.SugaredLogger) *EventHandler {
	return &EventHandler{logger: logger}
}

func (h *EventHandler) ReceiveEvents(c *gin.Context) {
	var events []ClientEvent
	if err := c.ShouldBindJSON(&events); err != nil {
		c.JSON(http.StatusBadRequest, NewProblem(http.StatusBadRequest, "Invalid request payload", WithError(err)))
		return
	}

	for _, evt := range events {
		h.logger.Infow("client event",
			"id", evt.Id,
			"type", evt.Type,
			"source", evt.Source,
			"timestamp", evt.Timestamp,
			"deviceId", c.GetHeader("x-device-id"),
			"error", evt.Error,
			"data", evt.Data,
		)
	}

	c.Status(http.StatusAccepted)
}
