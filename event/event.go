package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	commonCtx "github.com/kodausch/advertising-go-client/context"
)

type (
	EventType string

	Event struct {
		Id        string                 `json:"id"`
		Timestamp time.Time              `json:"timestamp"`
		Source    string                 `json:"source"`
		Type      EventType              `json:"type"`
		Message   string                 `json:"message,omitempty"`
		Error     string                 `json:"error,omitempty"`
		Data      map[string]interface{} `json:"data,omitempty"`
	}

	EventOption func(*Event)
)

// NewEvent creates an event of the given type. The source is taken from the
// service key stored on ctx.
func NewEvent(ctx context.Context, eventType EventType, opts ...EventOption) *Event {
	evt := &Event{
		Id:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Source:    commonCtx.GetStringValue(ctx, commonCtx.ServiceKey),
		Type:      eventType,
	}

	for _, opt := range opts {
		opt(evt)
	}

	return evt
}

func NewEventFromError(ctx context.Context, eventType EventType, err error, opts ...EventOption) *Event {
	evt := NewEvent(ctx, eventType, opts...)
	if err != nil {
		evt.Error = err.Error()
	}
	return evt
}

func WithMessage(message string) EventOption {
	return func(evt *Event) {
		evt.Message = message
	}
}

func WithDataField(key string, value interface{}) EventOption {
	return func(evt *Event) {
		if evt.Data == nil {
			evt.Data = make(map[string]interface{})
		}
		evt.Data[key] = value
	}
}
