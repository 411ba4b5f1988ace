package reachability

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	httpClient "github.com/kodausch/advertising-go-client/http"
)

// Prober reports nil when the network path is usable.
type Prober interface {
	Probe(ctx context.Context) error
}

type ProberFunc func(ctx context.Context) error

func (f ProberFunc) Probe(ctx context.Context) error {
	return f(ctx)
}

// DialProber opens and immediately closes a TCP connection to Address.
type DialProber struct {
	Address string
	Timeout time.Duration
}

var _ Prober = &DialProber{}

func (p *DialProber) Probe(ctx context.Context) error {
	if p.Address == "" {
		return errors.New("probe address cannot be empty")
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	dialer := &net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", p.Address)
	if err != nil {
		return fmt.Errorf("dial %s: %w", p.Address, err)
	}
	return conn.Close()
}

// HTTPProber sends a HEAD request to URL. Any response counts as reachable.
type HTTPProber struct {
	URL    string
	Client *http.Client
}

var _ Prober = &HTTPProber{}

func (p *HTTPProber) Probe(ctx context.Context) error {
	client := p.Client
	if client == nil {
		client = httpClient.NewClient(httpClient.WithTimeout(3 * time.Second))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("head %s: %w", p.URL, err)
	}
	return resp.Body.Close()
}
