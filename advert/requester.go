package advert

import (
	"context"
	"fmt"
	"io"
	"net/http"

	httpClient "github.com/kodausch/advertising-go-client/http"
)

type (
	SourceResponse struct {
		Body        []byte
		ContentType string
	}

	// SourceRequester performs the single GET against the advert source.
	SourceRequester interface {
		Fetch(ctx context.Context, url string) (*SourceResponse, error)
	}
)

type DefaultSourceRequester struct {
	client *http.Client
}

var _ SourceRequester = &DefaultSourceRequester{}

// NewDefaultSourceRequester returns a DefaultSourceRequester with a default HTTP client if none provided.
func NewDefaultSourceRequester(client *http.Client) *DefaultSourceRequester {
	if client == nil {
		client = httpClient.NewClient()
	}
	return &DefaultSourceRequester{client: client}
}

func (r *DefaultSourceRequester) Fetch(ctx context.Context, url string) (*SourceResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w: %w", ErrResponse, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get advert source: %w: %w", ErrResponse, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read advert source: %w: %w", ErrResponse, err)
	}

	return &SourceResponse{Body: body, ContentType: resp.Header.Get("Content-Type")}, nil
}
