package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	require "github.com/stretchr/testify/require"
)

func newTempFilePath(t *testing.T) string {
	tmpDir := t.TempDir()
	return filepath.Join(tmpDir, "settings.json")
}

func TestNewFileStorage(t *testing.T) {
	// given
	testPath := "/tmp/some/path/settings.json"

	// when
	storage := NewFileStorage(testPath)

	// then
	require.NotNil(t, storage)
	require.Equal(t, testPath, storage.path)
	require.Equal(t, DefaultKey, storage.key)
	require.Equal(t, os.FileMode(0644), storage.mode)
}

func TestFileStorageGetAndSet(t *testing.T) {
	// given
	filePath := newTempFilePath(t)
	storage := NewFileStorage(filePath)
	ctx := context.Background()

	link, ok, err := storage.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok, "Initial Get should report absence before file exists")
	require.Empty(t, link)

	// when
	err = storage.Set(ctx, "https://ads.example/x?idfa=I1&gaid=A1")

	// then
	require.NoError(t, err)
	fileContent, err := os.ReadFile(filePath)
	require.NoError(t, err)

	var written map[string]string
	require.NoError(t, json.Unmarshal(fileContent, &written))
	require.Equal(t, map[string]string{"advert": "https://ads.example/x?idfa=I1&gaid=A1"}, written)

	// when
	link, ok, err = storage.Get(ctx)

	// then
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "https://ads.example/x?idfa=I1&gaid=A1", link)

	// Test overwriting
	require.NoError(t, storage.Set(ctx, "https://ads.example/y"))
	link, _, err = storage.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "https://ads.example/y", link)
}

func TestFileStoragePreservesForeignKeys(t *testing.T) {
	// given
	filePath := newTempFilePath(t)
	require.NoError(t, os.WriteFile(filePath, []byte(`{"theme":"dark"}`), 0644))
	storage := NewFileStorage(filePath)
	ctx := context.Background()

	_, ok, err := storage.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok, "a settings file without the advert key holds no link")

	// when
	require.NoError(t, storage.Set(ctx, "https://ads.example/x"))

	// then
	fileContent, err := os.ReadFile(filePath)
	require.NoError(t, err)
	var written map[string]string
	require.NoError(t, json.Unmarshal(fileContent, &written))
	require.Equal(t, map[string]string{"theme": "dark", "advert": "https://ads.example/x"}, written)
}

func TestFileStorageWithKey(t *testing.T) {
	// given
	filePath := newTempFilePath(t)
	first := NewFileStorage(filePath, WithKey("advert_a"))
	second := NewFileStorage(filePath, WithKey("advert_b"))
	ctx := context.Background()

	// when
	require.NoError(t, first.Set(ctx, "https://a.example"))

	// then
	_, ok, err := second.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	link, ok, err := first.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "https://a.example", link)
}

func TestFileStorageGetInvalidJson(t *testing.T) {
	// given
	filePath := newTempFilePath(t)
	storage := NewFileStorage(filePath)
	ctx := context.Background()

	err := os.WriteFile(filePath, []byte(`{"advert": "https://ads.example/x"`), 0644)
	require.NoError(t, err)

	// when
	link, ok, err := storage.Get(ctx)

	// then
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode settings")
	require.False(t, ok)
	require.Empty(t, link)

	// and a write must not silently replace the broken file
	require.Error(t, storage.Set(ctx, "https://ads.example/y"))
}

func TestFileStorageSetAtomicWrite(t *testing.T) {
	// given
	filePath := newTempFilePath(t)
	storage := NewFileStorage(filePath)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filePath, []byte(`{"advert":"https://old.example"}`), 0644))

	// when
	err := storage.Set(ctx, "https://new.example")

	// then
	require.NoError(t, err)

	_, err = os.Stat(filePath + ".tmp")
	require.True(t, os.IsNotExist(err), "Temporary file should not exist after successful rename")

	link, ok, err := storage.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "https://new.example", link)
}

func TestFileStorageConcurrentAccess(t *testing.T) {
	// given
	filePath := newTempFilePath(t)
	storage := NewFileStorage(filePath)
	ctx := context.Background()
	require.NoError(t, storage.Set(ctx, "https://seed.example"))

	numGoroutines := 10
	numOperations := 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)

	for i := 0; i < numGoroutines; i++ {
		go func(writerID int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				if err := storage.Set(ctx, fmt.Sprintf("https://ads.example/%d/%d", writerID, j)); err != nil {
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
				_, ok, err := storage.Get(ctx)
				if err != nil || !ok {
					t.Errorf("unexpected read result: ok=%v err=%v", ok, err)
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
	case <-time.After(10 * time.Second):
		t.Fatal("Concurrent access test timed out, potential deadlock or hang.")
	}
}
