// Package reachability watches the network path and tells listeners whenever it
// switches between online and offline.
package reachability

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	commonCtx "github.com/kodausch/advertising-go-client/context"
	"github.com/kodausch/advertising-go-client/event"
	"github.com/kodausch/advertising-go-client/logger"
)

type (
	// Listener is notified on the first observation and on every change after it.
	Listener interface {
		OnReachabilityChange(ctx context.Context, online bool)
	}

	ListenerFunc func(ctx context.Context, online bool)

	Monitor struct {
		prober   Prober
		interval time.Duration

		logger logger.Logger
		events event.Emitter

		// notifyMu keeps listener callbacks in observation order.
		notifyMu  sync.Mutex
		mu        sync.RWMutex
		listeners []Listener
		online    bool
		observed  bool

		internalCancel context.CancelFunc
		wg             sync.WaitGroup
		shutdownOnce   sync.Once
	}
)

const (
	ServiceName = "ReachabilityMonitor"

	ReachabilityChangedEvent event.EventType = "reachability_changed"
)

func (f ListenerFunc) OnReachabilityChange(ctx context.Context, online bool) {
	f(ctx, online)
}

func NewService(ctx context.Context, prober Prober, opts ...Option) (*Monitor, error) {
	if prober == nil {
		return nil, errors.New("prober is not provided")
	}

	internalCtx, internalCancel := context.WithCancel(context.WithValue(ctx, commonCtx.ServiceKey, ServiceName))

	monitor := &Monitor{
		prober:         prober,
		interval:       5 * time.Second,
		logger:         &logger.NoOpLogger{},
		events:         &event.NoopEmitter{},
		internalCancel: internalCancel,
	}

	for _, opt := range opts {
		if err := opt(internalCtx, monitor); err != nil {
			internalCancel()
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	monitor.start(internalCtx)
	monitor.logger.Info("started service successfully", "interval", monitor.interval)

	return monitor, nil
}

func (m *Monitor) start(ctx context.Context) {
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()

		m.check(ctx)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.check(ctx)
			}
		}
	}()
}

// Subscribe registers l. If a state has already been observed, l is told about it
// right away. Listeners must not call Subscribe from their callback.
func (m *Monitor) Subscribe(l Listener) {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	m.listeners = append(m.listeners, l)
	observed, online := m.observed, m.online
	m.mu.Unlock()

	if observed {
		l.OnReachabilityChange(context.WithValue(context.Background(), commonCtx.ServiceKey, ServiceName), online)
	}
}

// Online reports the last observed state. It is false until the first probe finished.
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

func (m *Monitor) check(ctx context.Context) {
	err := m.prober.Probe(ctx)
	if ctx.Err() != nil {
		return
	}
	online := err == nil

	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	changed := !m.observed || m.online != online
	m.online, m.observed = online, true
	listeners := make([]Listener, len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	if !changed {
		return
	}

	if online {
		m.logger.Info("network is reachable")
	} else {
		m.logger.Warn("network is unreachable", "error", err)
	}
	m.events.Push(event.NewEventFromError(ctx, ReachabilityChangedEvent, err, event.WithDataField("online", online)))

	for _, l := range listeners {
		l.OnReachabilityChange(ctx, online)
	}
}

func (m *Monitor) PollEvents() []*event.Event {
	return m.events.PollEvents()
}

func (m *Monitor) Name() string {
	return ServiceName
}

func (m *Monitor) Close(ctx context.Context) error {
	m.shutdownOnce.Do(m.internalCancel)

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return m.events.Close(ctx)
	}
}
