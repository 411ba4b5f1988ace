package storage

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const BoltServiceName = "BoltStorage"

type BoltStorage struct {
	db     *bolt.DB
	bucket []byte
	key    []byte
}

var _ Storage = &BoltStorage{}

// NewBoltStorage opens (or creates) the bolt database at path and makes sure the
// settings bucket exists.
func NewBoltStorage(path string, opts ...Option) (*BoltStorage, error) {
	o := applyOptions(opts...)

	db, err := bolt.Open(path, o.fileMode, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	bucket := []byte(o.bucket)
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", o.bucket, err)
	}

	return &BoltStorage{db: db, bucket: bucket, key: []byte(o.key)}, nil
}

func (s *BoltStorage) Get(ctx context.Context) (string, bool, error) {
	var (
		link  string
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		if v := b.Get(s.key); v != nil {
			// v is only valid inside the transaction
			link, found = string(v), true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to read advert: %w", err)
	}

	return link, found, nil
}

func (s *BoltStorage) Set(ctx context.Context, link string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		return b.Put(s.key, []byte(link))
	})
	if err != nil {
		return fmt.Errorf("failed to store advert: %w", err)
	}
	return nil
}

func (s *BoltStorage) Name() string {
	return BoltServiceName
}

func (s *BoltStorage) Close(ctx context.Context) error {
	return s.db.Close()
}
