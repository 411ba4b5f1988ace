package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	require "github.com/stretchr/testify/require"
)

func TestNewInMemoryStorage(t *testing.T) {
	// when
	storage := NewInMemoryStorage()

	// then
	require.NotNil(t, storage)
	require.Nil(t, storage.link, "Newly created storage should have no link initially")
}

func TestInMemoryStorageGetAndSet(t *testing.T) {
	// given
	storage := NewInMemoryStorage()
	ctx := context.Background()

	link, ok, err := storage.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok, "Initial Get should report absence before any Set")
	require.Empty(t, link)

	// when
	err = storage.Set(ctx, "https://ads.example/x?idfa=I1&gaid=A1")

	// then
	require.NoError(t, err)

	link, ok, err = storage.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "https://ads.example/x?idfa=I1&gaid=A1", link)

	// when
	err = storage.Set(ctx, "https://ads.example/y?idfa=I2&gaid=A2")

	// then
	require.NoError(t, err)
	link, ok, err = storage.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "https://ads.example/y?idfa=I2&gaid=A2", link, "Set should overwrite the previous link")
}

func TestInMemoryStorageEmptyLinkIsPresent(t *testing.T) {
	// given
	storage := NewInMemoryStorage()
	ctx := context.Background()

	// when
	require.NoError(t, storage.Set(ctx, ""))

	// then
	link, ok, err := storage.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok, "an explicitly stored empty link still occupies the slot")
	require.Empty(t, link)
}

func TestInMemoryStorageThreadSafety(t *testing.T) {
	// given
	storage := NewInMemoryStorage()
	ctx := context.Background()
	numGoroutines := 100
	numOperations := 1000

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)

	for i := 0; i < numGoroutines; i++ {
		go func(gID int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				if err := storage.Set(ctx, fmt.Sprintf("https://ads.example/%d/%d", gID, j)); err != nil {
					t.Error(err)
					return
				}
			}
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				if _, _, err := storage.Get(ctx); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Test timed out, possible deadlock or goroutine stuck")
	}

	_, ok, err := storage.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok, "Storage should contain a link after concurrent operations")
}
