// Package advert fetches a single relevant advert link from a remote source,
// caches it in a single storage slot and hands it to a presenter.
package advert

import (
	"context"
	"net/url"

	"github.com/kodausch/advertising-go-client/event"
)

type (
	FetchRequest struct {
		SourceURL string
		Keyword   string
		AppID     string
		IDFA      string
		// ExtraInfo is appended verbatim after the gaid parameter.
		ExtraInfo string
	}

	// Result is delivered once by FetchAsync. An empty Link means no advert is available.
	Result struct {
		Link string
		Err  error
	}

	Presenter interface {
		Present(ctx context.Context, link *url.URL) error
	}

	PresenterFunc func(ctx context.Context, link *url.URL) error

	// Dispatcher runs fn on the execution context the presenter requires,
	// e.g. a UI thread.
	Dispatcher func(fn func())
)

func (f PresenterFunc) Present(ctx context.Context, link *url.URL) error {
	return f(ctx, link)
}

func inlineDispatcher(fn func()) {
	fn()
}

const (
	ServiceName = "AdvertClient"

	AdvertCacheHitEvent    event.EventType = "advert_cache_hit"
	AdvertFetchedEvent     event.EventType = "advert_fetched"
	AdvertNotRelevantEvent event.EventType = "advert_not_relevant"
	AdvertFetchFailedEvent event.EventType = "advert_fetch_failed"
	AdvertPresentedEvent   event.EventType = "advert_presented"
)
