package event

import (
	"context"
	"sync"

	"github.com/kodausch/advertising-go-client/logger"
)

type (
	BufferedEmitter struct {
		queue        chan *Event
		bufferMu     sync.Mutex
		buffer       []*Event
		dropCallback func(*Event)
		logger       logger.Logger

		closed chan struct{}
		done   chan struct{}
		once   sync.Once
	}

	BufferedEmitterConfig struct {
		BufferSize   int
		DropCallback func(event *Event)
		Logger       logger.Logger
	}
)

func NewBufferedEmitter(config BufferedEmitterConfig) Emitter {
	if config.BufferSize <= 0 {
		config.BufferSize = 1024
	}
	if config.Logger == nil {
		config.Logger = &logger.NoOpLogger{}
	}

	e := &BufferedEmitter{
		queue:        make(chan *Event, config.BufferSize),
		buffer:       make([]*Event, 0, config.BufferSize),
		dropCallback: config.DropCallback,
		logger:       config.Logger,
		closed:       make(chan struct{}),
		done:         make(chan struct{}),
	}

	go e.collector()

	return e
}

func (e *BufferedEmitter) collector() {
	defer close(e.done)

	// Drain whatever is still queued so PollEvents sees it after Close.
	defer func() {
		for {
			select {
			case evt := <-e.queue:
				e.bufferMu.Lock()
				e.buffer = append(e.buffer, evt)
				e.bufferMu.Unlock()
			default:
				return
			}
		}
	}()

	for {
		select {
		case evt := <-e.queue:
			e.bufferMu.Lock()
			e.buffer = append(e.buffer, evt)
			e.bufferMu.Unlock()
		case <-e.closed:
			return
		}
	}
}

// Push adds an event to the emitter queue. If the emitter is closed or the queue is full,
// it will drop the event and call the drop callback if provided.
func (e *BufferedEmitter) Push(event *Event) {
	select {
	case <-e.done:
		if e.dropCallback != nil {
			e.dropCallback(event)
		}
		return
	default:
	}

	select {
	case e.queue <- event:
	default:
		if e.dropCallback != nil {
			e.dropCallback(event)
		}
	}
}

// PollEvents returns and clears current event buffer
func (e *BufferedEmitter) PollEvents() []*Event {
	e.bufferMu.Lock()
	defer e.bufferMu.Unlock()
	events := e.buffer
	e.buffer = make([]*Event, 0, cap(e.buffer))
	return events
}

// Close stops the internal collector goroutine and waits for it to finish.
// It also ensures any remaining events in the queue are moved to the buffer
// so they can be retrieved by PollEvents.
func (e *BufferedEmitter) Close(ctx context.Context) error {
	var err error
	e.once.Do(func() {
		close(e.closed)

		select {
		case <-e.done:
		case <-ctx.Done():
			err = ctx.Err()
			e.logger.Warn("buffered emitter did not finish draining in time", "error", err)
		}
	})

	return err
}
