package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"

	commonCtx "github.com/kodausch/advertising-go-client/context"
	"github.com/kodausch/advertising-go-client/logger"
)

type Closer interface {
	Name() string
	Close(ctx context.Context) error
}

type (
	LifecycleService struct {
		logger  logger.Logger
		mu      sync.Mutex
		closers []Closer
	}
)

var ServiceName = "Lifecycle"

func NewService(ctx context.Context, opts ...Option) (*LifecycleService, error) {
	innerCtx := context.WithValue(ctx, commonCtx.ServiceKey, ServiceName)

	service := &LifecycleService{
		logger:  &logger.NoOpLogger{},
		closers: make([]Closer, 0),
	}
	for _, opt := range opts {
		if err := opt(innerCtx, service); err != nil {
			return nil, err
		}
	}

	return service, nil
}

// Register adds c in front of all previously registered closers, so closers run in
// reverse registration order.
func (m *LifecycleService) Register(c Closer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closers = append([]Closer{c}, m.closers...)

	m.logger.Info("successfully registered closer", "name", c.Name())
}

func (m *LifecycleService) CloseAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, c := range m.closers {
		if err := c.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s: %w", c.Name(), err))
		}
	}
	m.closers = m.closers[:0]

	err := errors.Join(errs...)
	if err != nil {
		m.logger.Error("failed to close all closers", "error", err)
		return err
	}

	m.logger.Info("successfully closed all closers")
	return nil
}
