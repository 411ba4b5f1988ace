package advert

import (
	"errors"
	"fmt"
)

var (
	// ErrResponse is reported when the source could not be reached or its body
	// could not be read.
	ErrResponse = errors.New("advert source response error")
	// ErrNoData is never returned by this package.
	ErrNoData = errors.New("advert source returned no data")
	// ErrInvalidSourceURL is the only error Fetch returns to callers.
	ErrInvalidSourceURL = errors.New("invalid advert source url")
)

// HTTPError is reported when the source answers with a status other than 200.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

type InvalidSourceURLError struct {
	URL string
	Err error
}

func (e *InvalidSourceURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", ErrInvalidSourceURL, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %q", ErrInvalidSourceURL, e.URL)
}

func (e *InvalidSourceURLError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidSourceURL}
	}
	return []error{ErrInvalidSourceURL, e.Err}
}

// IsHTTPError reports whether err carries a non-200 source status and returns it.
func IsHTTPError(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}
