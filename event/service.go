package event

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	commonCtx "github.com/kodausch/advertising-go-client/context"
	httpClient "github.com/kodausch/advertising-go-client/http"
	"github.com/kodausch/advertising-go-client/logger"
)

type (
	Service struct {
		endpoint string
		logger   logger.Logger

		requestBuilder RequestBuilder
		producers      []Producer

		interval time.Duration
		client   *http.Client

		internalCtx    context.Context
		internalCancel context.CancelFunc
		wg             sync.WaitGroup
		mu             sync.RWMutex
		shutdownOnce   sync.Once
	}

	RequestBuilder func(ctx context.Context, events []*Event) (*http.Request, error)
)

const (
	ServiceName = "EventService"
)

func defaultRequestBuilder(endpoint string) RequestBuilder {
	return func(ctx context.Context, events []*Event) (*http.Request, error) {
		payload, err := json.Marshal(events)
		if err != nil {
			return nil, err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}
}

// NewService starts a background loop that periodically collects the events of all
// registered producers and posts them as one JSON batch to endpoint.
func NewService(ctx context.Context, endpoint string, opts ...ServiceOption) (*Service, error) {
	if endpoint == "" {
		return nil, errors.New("event endpoint cannot be empty")
	}

	internalCtx, internalCancel := context.WithCancel(context.WithValue(ctx, commonCtx.ServiceKey, ServiceName))

	service := &Service{
		internalCtx:    internalCtx,
		internalCancel: internalCancel,
		endpoint:       endpoint,
		interval:       1 * time.Minute,
		client:         httpClient.NewClient(),
		logger:         &logger.NoOpLogger{},
		requestBuilder: defaultRequestBuilder(endpoint),
	}

	for _, opt := range opts {
		if optName, err := opt(internalCtx, service); err != nil {
			internalCancel()
			return nil, fmt.Errorf("failed to apply option %s: %w", optName, err)
		}
	}

	service.start(internalCtx)
	service.logger.Info("started service successfully", "pushInterval", service.interval)

	return service, nil
}

func (s *Service) start(ctx context.Context) {
	s.wg.Add(1)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		defer s.wg.Done()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Flush(ctx); err != nil {
					s.logger.Error("failed to flush events", "error", err)
				}
			}
		}
	}()
}

func (s *Service) RegisterProducer(p Producer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.producers = append(s.producers, p)
}

// Flush sends all pending events in one request. Events polled from producers are
// not re-queued if sending fails.
func (s *Service) Flush(ctx context.Context) error {
	var batch []*Event
	for _, p := range s.snapshotProducers() {
		batch = append(batch, p.PollEvents()...)
	}

	if len(batch) == 0 {
		return nil
	}

	req, err := s.requestBuilder(ctx, batch)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("received non-2xx response: %s", resp.Status)
	}

	s.logger.Debug("flushed events", "count", len(batch))
	return nil
}

func (s *Service) Name() string {
	return ServiceName
}

// Close stops the flush loop, closes all producers and sends what they still hold.
func (s *Service) Close(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.internalCancel()
		s.wg.Wait()

		var errs []error
		for _, p := range s.snapshotProducers() {
			if closeErr := p.Close(ctx); closeErr != nil {
				s.logger.Error("failed to close event producer", "error", closeErr)
				errs = append(errs, closeErr)
			}
		}

		if flushErr := s.Flush(ctx); flushErr != nil {
			errs = append(errs, fmt.Errorf("failed to flush remaining events: %w", flushErr))
		}

		err = errors.Join(errs...)
	})

	return err
}

func (s *Service) snapshotProducers() []Producer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	producers := make([]Producer, len(s.producers))
	copy(producers, s.producers)
	return producers
}
