package storage

import (
	"context"
	"sync"
)

type InMemoryStorage struct {
	mu   sync.RWMutex
	link *string
}

var _ Storage = &InMemoryStorage{}

func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{}
}

func (s *InMemoryStorage) Get(ctx context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.link == nil {
		return "", false, nil
	}

	return *s.link, true, nil
}

func (s *InMemoryStorage) Set(ctx context.Context, link string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.link = &link
	return nil
}
