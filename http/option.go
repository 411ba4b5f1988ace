package http_client

import (
	"net/http"
	"time"
)

type Option func(*config)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func WithBaseTransport(base http.RoundTripper) Option {
	return func(c *config) {
		if base != nil {
			c.base = base
		}
	}
}
