package advert

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/kodausch/advertising-go-client/event"
	"github.com/kodausch/advertising-go-client/logger"
	"github.com/kodausch/advertising-go-client/storage"
)

type Option func(context.Context, *Client) error

func WithStorage(s storage.Storage) Option {
	return func(ctx context.Context, client *Client) error {
		if s == nil {
			return errors.New("storage is not provided")
		}
		client.storage = s
		return nil
	}
}

// WithHTTPClient sets the client used by the default source requester.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(ctx context.Context, client *Client) error {
		if httpClient == nil {
			return errors.New("http client is not provided")
		}
		client.httpClient = httpClient
		return nil
	}
}

func WithSourceRequester(requester SourceRequester) Option {
	return func(ctx context.Context, client *Client) error {
		if requester == nil {
			return errors.New("source requester is not provided")
		}
		client.requester = requester
		return nil
	}
}

// WithFailureDelay sets how long Fetch waits after a failed request before it
// returns the cached value.
func WithFailureDelay(d time.Duration) Option {
	return func(ctx context.Context, client *Client) error {
		if d < 0 {
			return errors.New("failure delay cannot be negative")
		}
		client.failureDelay = d
		return nil
	}
}

func WithLogger(factory logger.Factory) Option {
	return func(ctx context.Context, client *Client) error {
		if factory == nil {
			return errors.New("logger is not provided")
		}
		client.logger = factory(ctx)
		return nil
	}
}

func WithEventEmitter(emitter event.Emitter) Option {
	return func(ctx context.Context, client *Client) error {
		if emitter == nil {
			return errors.New("event emitter is not provided")
		}
		client.events = emitter
		return nil
	}
}

func WithPresentDispatcher(dispatch Dispatcher) Option {
	return func(ctx context.Context, client *Client) error {
		if dispatch == nil {
			return errors.New("present dispatcher is not provided")
		}
		client.dispatch = dispatch
		return nil
	}
}
