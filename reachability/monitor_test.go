package reachability_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kodausch/advertising-go-client/event"
	"github.com/kodausch/advertising-go-client/mock"
	"github.com/kodausch/advertising-go-client/reachability"
	"github.com/stretchr/testify/assert"
	testifyMock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// toggleProber reports online while its flag is set.
type toggleProber struct {
	online atomic.Bool
}

func (p *toggleProber) Probe(ctx context.Context) error {
	if p.online.Load() {
		return nil
	}
	return errors.New("no route to host")
}

// recorder collects the states a listener was told about.
type recorder struct {
	mu     sync.Mutex
	states []bool
}

func (r *recorder) OnReachabilityChange(ctx context.Context, online bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, online)
}

func (r *recorder) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.states...)
}

func newMonitor(t *testing.T, prober reachability.Prober, opts ...reachability.Option) *reachability.Monitor {
	opts = append([]reachability.Option{reachability.WithInterval(5 * time.Millisecond)}, opts...)
	monitor, err := reachability.NewService(context.Background(), prober, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = monitor.Close(context.Background()) })
	return monitor
}

func TestMonitor_NotifiesOnChangesOnly(t *testing.T) {
	// given
	prober := &toggleProber{}
	prober.online.Store(true)
	rec := &recorder{}

	monitor := newMonitor(t, prober)
	monitor.Subscribe(rec)

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, time.Millisecond)
	assert.True(t, monitor.Online())

	// when
	prober.online.Store(false)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, time.Millisecond)
	prober.online.Store(true)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 3 }, time.Second, time.Millisecond)

	// then
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, []bool{true, false, true}, rec.snapshot(), "stable states must not be reported again")
}

func TestMonitor_LateSubscriberGetsCurrentState(t *testing.T) {
	// given
	prober := &toggleProber{}
	monitor := newMonitor(t, prober)
	first := &recorder{}
	monitor.Subscribe(first)
	require.Eventually(t, func() bool { return len(first.snapshot()) == 1 }, time.Second, time.Millisecond)

	// when
	late := &recorder{}
	monitor.Subscribe(late)

	// then
	assert.Equal(t, []bool{false}, late.snapshot())
	assert.False(t, monitor.Online())
}

func TestMonitor_ListenerMock(t *testing.T) {
	// given
	prober := &mock.ProberMock{}
	prober.On("Probe", testifyMock.Anything).Return(nil)
	listener := &mock.ReachabilityListenerMock{}
	called := make(chan struct{}, 1)
	listener.On("OnReachabilityChange", testifyMock.Anything, true).Run(func(args testifyMock.Arguments) {
		select {
		case called <- struct{}{}:
		default:
		}
	}).Once()

	monitor, err := reachability.NewService(context.Background(), prober, reachability.WithInterval(time.Hour))
	require.NoError(t, err)
	defer monitor.Close(context.Background())

	// when
	monitor.Subscribe(listener)

	// then
	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("listener was not notified")
	}
	listener.AssertExpectations(t)
}

func TestMonitor_PublishesEvents(t *testing.T) {
	// given
	prober := &toggleProber{}
	emitter := event.NewBufferedEmitter(event.BufferedEmitterConfig{BufferSize: 10})
	rec := &recorder{}
	monitor := newMonitor(t, prober, reachability.WithEventEmitter(emitter))
	monitor.Subscribe(rec)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, time.Millisecond)

	// when
	require.NoError(t, monitor.Close(context.Background()))

	// then
	events := monitor.PollEvents()
	require.Len(t, events, 1)
	assert.Equal(t, reachability.ReachabilityChangedEvent, events[0].Type)
	assert.Equal(t, reachability.ServiceName, events[0].Source)
	assert.Equal(t, false, events[0].Data["online"])
	assert.Contains(t, events[0].Error, "no route to host")
}

func TestMonitor_CloseStopsProbing(t *testing.T) {
	// given
	var probes atomic.Int32
	prober := reachability.ProberFunc(func(ctx context.Context) error {
		probes.Add(1)
		return nil
	})
	monitor, err := reachability.NewService(context.Background(), prober, reachability.WithInterval(time.Millisecond))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return probes.Load() > 0 }, time.Second, time.Millisecond)

	// when
	require.NoError(t, monitor.Close(context.Background()))
	after := probes.Load()
	time.Sleep(20 * time.Millisecond)

	// then
	assert.Equal(t, after, probes.Load())
	assert.NoError(t, monitor.Close(context.Background()), "second close must be a no-op")
}

func TestNewService_Validation(t *testing.T) {
	prober := reachability.ProberFunc(func(ctx context.Context) error { return nil })

	tests := []struct {
		name    string
		prober  reachability.Prober
		opt     reachability.Option
		wantErr string
	}{
		{name: "nil prober", prober: nil, wantErr: "prober is not provided"},
		{name: "zero interval", prober: prober, opt: reachability.WithInterval(0), wantErr: "probe interval must be greater than 0"},
		{name: "nil logger", prober: prober, opt: reachability.WithLogger(nil), wantErr: "logger is not provided"},
		{name: "nil emitter", prober: prober, opt: reachability.WithEventEmitter(nil), wantErr: "event emitter is not provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []reachability.Option
			if tt.opt != nil {
				opts = append(opts, tt.opt)
			}

			_, err := reachability.NewService(context.Background(), tt.prober, opts...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDialProber(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer listener.Close()

		prober := &reachability.DialProber{Address: listener.Addr().String(), Timeout: time.Second}
		assert.NoError(t, prober.Probe(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		address := listener.Addr().String()
		listener.Close()

		prober := &reachability.DialProber{Address: address, Timeout: time.Second}
		assert.Error(t, prober.Probe(context.Background()))
	})

	t.Run("empty address", func(t *testing.T) {
		prober := &reachability.DialProber{}
		assert.Error(t, prober.Probe(context.Background()))
	})
}

func TestHTTPProber(t *testing.T) {
	t.Run("any response is reachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodHead, r.Method)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		prober := &reachability.HTTPProber{URL: server.URL}
		assert.NoError(t, prober.Probe(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		prober := &reachability.HTTPProber{URL: url, Client: &http.Client{Timeout: time.Second}}
		assert.Error(t, prober.Probe(context.Background()))
	})
}
