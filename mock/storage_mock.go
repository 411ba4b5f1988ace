package mock

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type StorageMock struct {
	mock.Mock
}

func (m *StorageMock) Get(ctx context.Context) (string, bool, error) {
	args := m.Called(ctx)

	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *StorageMock) Set(ctx context.Context, link string) error {
	args := m.Called(ctx, link)

	return args.Error(0)
}
