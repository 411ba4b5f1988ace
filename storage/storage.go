// Package storage holds the single-slot backends for the cached advert link.
package storage

import (
	"context"
	"os"
)

// DefaultKey is the settings key the advert link is stored under.
const DefaultKey = "advert"

type (
	// Storage keeps at most one advert link. Get reports false when nothing has
	// been stored yet.
	Storage interface {
		Get(ctx context.Context) (string, bool, error)
		Set(ctx context.Context, link string) error
	}

	Option func(*options)

	options struct {
		key      string
		bucket   string
		fileMode os.FileMode
	}
)

func defaultOptions() *options {
	return &options{
		key:      DefaultKey,
		bucket:   "settings",
		fileMode: 0644,
	}
}

func applyOptions(opts ...Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithKey changes the settings key. Empty keys are ignored.
func WithKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}

// WithBucket changes the bolt bucket. Empty names are ignored.
func WithBucket(bucket string) Option {
	return func(o *options) {
		if bucket != "" {
			o.bucket = bucket
		}
	}
}

func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		if mode != 0 {
			o.fileMode = mode
		}
	}
}
