package mock

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"
)

type PresenterMock struct {
	mock.Mock
}

func (m *PresenterMock) Present(ctx context.Context, link *url.URL) error {
	args := m.Called(ctx, link)

	return args.Error(0)
}

type ReachabilityListenerMock struct {
	mock.Mock
}

func (m *ReachabilityListenerMock) OnReachabilityChange(ctx context.Context, online bool) {
	m.Called(ctx, online)
}
