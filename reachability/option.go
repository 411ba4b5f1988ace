package reachability

import (
	"context"
	"errors"
	"time"

	"github.com/kodausch/advertising-go-client/event"
	"github.com/kodausch/advertising-go-client/logger"
)

type Option func(context.Context, *Monitor) error

func WithInterval(d time.Duration) Option {
	return func(ctx context.Context, monitor *Monitor) error {
		if d <= 0 {
			return errors.New("probe interval must be greater than 0")
		}
		monitor.interval = d
		return nil
	}
}

func WithLogger(factory logger.Factory) Option {
	return func(ctx context.Context, monitor *Monitor) error {
		if factory == nil {
			return errors.New("logger is not provided")
		}
		monitor.logger = factory(ctx)
		return nil
	}
}

func WithEventEmitter(emitter event.Emitter) Option {
	return func(ctx context.Context, monitor *Monitor) error {
		if emitter == nil {
			return errors.New("event emitter is not provided")
		}
		monitor.events = emitter
		return nil
	}
}
