package http_client

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds a whole request including reading the body.
const DefaultTimeout = 10 * time.Second

type config struct {
	timeout time.Duration
	base    http.RoundTripper
}

// NewClient returns a *http.Client with context header injection configured.
func NewClient(opts ...Option) *http.Client {
	cfg := &config{
		timeout: DefaultTimeout,
		base:    http.DefaultTransport,
	}

	for _, o := range opts {
		o(cfg)
	}

	return &http.Client{
		Transport: NewContextHeaderTransport(cfg.base),
		Timeout:   cfg.timeout,
	}
}
