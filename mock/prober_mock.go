package mock

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type ProberMock struct {
	mock.Mock
}

func (m *ProberMock) Probe(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}
