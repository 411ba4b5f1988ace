package event

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kodausch/advertising-go-client/logger"
)

type ServiceOption func(context.Context, *Service) (string, error)

func WithFlushInterval(flushInterval time.Duration) ServiceOption {
	return func(ctx context.Context, service *Service) (string, error) {
		if flushInterval <= 0 {
			return "WithFlushInterval", fmt.Errorf("flush interval must be greater than 0")
		}

		service.interval = flushInterval
		return "WithFlushInterval", nil
	}
}

func WithRequestBuilder(builder RequestBuilder) ServiceOption {
	return func(ctx context.Context, s *Service) (string, error) {
		if builder == nil {
			return "WithRequestBuilder", fmt.Errorf("request builder cannot be nil")
		}
		s.requestBuilder = builder
		return "WithRequestBuilder", nil
	}
}

func WithHTTPClient(client *http.Client) ServiceOption {
	return func(ctx context.Context, s *Service) (string, error) {
		if client == nil {
			return "WithHTTPClient", errors.New("http client is not provided")
		}
		s.client = client
		return "WithHTTPClient", nil
	}
}

func WithLogger(factory logger.Factory) ServiceOption {
	return func(ctx context.Context, s *Service) (string, error) {
		if factory == nil {
			return "WithLogger", errors.New("logger is not provided")
		}

		s.logger = factory(ctx)
		return "WithLogger", nil
	}
}
