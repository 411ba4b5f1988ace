package mock

import (
	"context"

	"github.com/kodausch/advertising-go-client/advert"
	"github.com/stretchr/testify/mock"
)

type SourceRequesterMock struct {
	mock.Mock
}

func (m *SourceRequesterMock) Fetch(ctx context.Context, url string) (*advert.SourceResponse, error) {
	args := m.Called(ctx, url)

	resp, _ := args.Get(0).(*advert.SourceResponse)
	return resp, args.Error(1)
}
