package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// FileStorage keeps the link in a JSON settings file shared with other keys.
// Foreign keys are preserved on write.
type FileStorage struct {
	path string
	key  string
	mode os.FileMode
	mu   sync.RWMutex
}

var _ Storage = &FileStorage{}

func NewFileStorage(path string, opts ...Option) *FileStorage {
	o := applyOptions(opts...)
	return &FileStorage{path: path, key: o.key, mode: o.fileMode}
}

func (fs *FileStorage) Get(ctx context.Context) (string, bool, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	settings, err := fs.read()
	if err != nil {
		return "", false, err
	}

	link, ok := settings[fs.key]
	return link, ok, nil
}

func (fs *FileStorage) Set(ctx context.Context, link string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	settings, err := fs.read()
	if err != nil {
		return err
	}
	settings[fs.key] = link

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	tmpFile := fs.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, fs.mode); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return os.Rename(tmpFile, fs.path)
}

func (fs *FileStorage) read() (map[string]string, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := map[string]string{}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	return settings, nil
}
