package advert

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	commonCtx "github.com/kodausch/advertising-go-client/context"
	"github.com/kodausch/advertising-go-client/event"
	httpClient "github.com/kodausch/advertising-go-client/http"
	"github.com/kodausch/advertising-go-client/logger"
	"github.com/kodausch/advertising-go-client/storage"
)

// DefaultFailureDelay is the fixed pause before a failed fetch returns.
const DefaultFailureDelay = 5 * time.Second

type Client struct {
	storage      storage.Storage
	requester    SourceRequester
	httpClient   *http.Client
	failureDelay time.Duration
	dispatch     Dispatcher

	logger logger.Logger
	events event.Emitter
}

func NewClient(ctx context.Context, opts ...Option) (*Client, error) {
	innerCtx := context.WithValue(ctx, commonCtx.ServiceKey, ServiceName)

	client := &Client{
		storage:      storage.NewInMemoryStorage(),
		failureDelay: DefaultFailureDelay,
		dispatch:     inlineDispatcher,
		logger:       &logger.NoOpLogger{},
		events:       &event.NoopEmitter{},
	}

	for _, opt := range opts {
		if err := opt(innerCtx, client); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if client.requester == nil {
		if client.httpClient == nil {
			client.httpClient = httpClient.NewClient()
		}
		client.requester = NewDefaultSourceRequester(client.httpClient)
	}

	return client, nil
}

// Fetch returns the relevant advert link, or "" if none is available.
//
// A cached link is returned as is without contacting the source, whatever the
// request. Otherwise the source is fetched once; on a keyword match the tracking
// link is cached and returned. Failures are not reported: after the failure delay
// the previously cached value is returned. The only error is ErrInvalidSourceURL.
func (c *Client) Fetch(ctx context.Context, req FetchRequest) (string, error) {
	ctx = context.WithValue(ctx, commonCtx.ServiceKey, ServiceName)

	cached, found := c.cachedLink(ctx)
	if found {
		c.logger.Debug("returning cached advert", "link", cached)
		c.events.Push(event.NewEvent(ctx, AdvertCacheHitEvent, event.WithDataField("link", cached)))
		return cached, nil
	}

	if err := validateSourceURL(req.SourceURL); err != nil {
		return "", err
	}

	resp, err := c.requester.Fetch(ctx, req.SourceURL)
	if err != nil {
		c.logger.Warn("failed to fetch advert source", "source", req.SourceURL, "error", err)
		c.events.Push(event.NewEventFromError(ctx, AdvertFetchFailedEvent, err, failureFields(req, err)...))
		c.waitFailureDelay(ctx)
		return cached, nil
	}

	body := decodeBody(resp.Body, resp.ContentType)
	if !containsKeyword(body, req.Keyword) {
		c.logger.Info("advert source is not relevant", "source", req.SourceURL, "keyword", req.Keyword)
		c.events.Push(event.NewEvent(ctx, AdvertNotRelevantEvent,
			event.WithDataField("source", req.SourceURL),
			event.WithDataField("keyword", req.Keyword),
		))
		return cached, nil
	}

	link := buildTrackingLink(body, req)
	if err := c.storage.Set(ctx, link); err != nil {
		c.logger.Error("failed to cache advert", "error", err)
	}

	c.logger.Info("fetched relevant advert", "link", link)
	c.events.Push(event.NewEvent(ctx, AdvertFetchedEvent, event.WithDataField("link", link)))

	return link, nil
}

// FetchAsync runs Fetch in the background. The returned channel yields exactly
// one Result and is then closed.
func (c *Client) FetchAsync(ctx context.Context, req FetchRequest) <-chan Result {
	results := make(chan Result, 1)

	go func() {
		defer close(results)
		link, err := c.Fetch(ctx, req)
		results <- Result{Link: link, Err: err}
	}()

	return results
}

// FetchAndPresent fetches the advert and, if a usable link is available, shows it
// with presenter on the configured dispatcher. It reports whether the advert was
// presented.
func (c *Client) FetchAndPresent(ctx context.Context, presenter Presenter, req FetchRequest) (bool, error) {
	if presenter == nil {
		return false, errors.New("presenter is not provided")
	}

	link, err := c.Fetch(ctx, req)
	if err != nil {
		return false, err
	}
	if link == "" {
		return false, nil
	}

	target, err := parseLink(link)
	if err != nil {
		c.logger.Warn("advert link cannot be presented", "link", link, "error", err)
		return false, nil
	}

	ctx = context.WithValue(ctx, commonCtx.ServiceKey, ServiceName)
	done := make(chan error, 1)
	c.dispatch(func() {
		done <- presenter.Present(ctx, target)
	})

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-done:
		if err != nil {
			c.logger.Error("failed to present advert", "link", link, "error", err)
			return false, nil
		}
	}

	c.events.Push(event.NewEvent(ctx, AdvertPresentedEvent, event.WithDataField("link", link)))
	return true, nil
}

func (c *Client) PollEvents() []*event.Event {
	return c.events.PollEvents()
}

func (c *Client) Name() string {
	return ServiceName
}

func (c *Client) Close(ctx context.Context) error {
	return c.events.Close(ctx)
}

func (c *Client) cachedLink(ctx context.Context) (string, bool) {
	link, found, err := c.storage.Get(ctx)
	if err != nil {
		c.logger.Warn("failed to read cached advert", "error", err)
		return "", false
	}
	return link, found
}

func (c *Client) waitFailureDelay(ctx context.Context) {
	if c.failureDelay <= 0 {
		return
	}

	timer := time.NewTimer(c.failureDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func validateSourceURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return &InvalidSourceURLError{URL: raw, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return &InvalidSourceURLError{URL: raw}
	}
	return nil
}

func parseLink(link string) (*url.URL, error) {
	target, err := url.Parse(link)
	if err != nil {
		return nil, err
	}
	if !target.IsAbs() || target.Host == "" {
		return nil, fmt.Errorf("link %q is not an absolute url", link)
	}
	return target, nil
}

func failureFields(req FetchRequest, err error) []event.EventOption {
	opts := []event.EventOption{event.WithDataField("source", req.SourceURL)}
	if status, ok := IsHTTPError(err); ok {
		opts = append(opts, event.WithDataField("statusCode", status))
	}
	return opts
}
