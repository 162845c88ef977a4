package redisstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"team-notes-be/pkg/blobstore"
)

// Store persists each collection as a plain redis string value. Values
// never expire; redis is used as a durable key-value surface, not a cache.
type Store struct {
	client *redis.Client
}

// New connects using a redis URL (redis://host:port/db) and pings once so
// a bad address fails at startup instead of on the first request.
func New(ctx context.Context, redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Store{client: client}, nil
}

// NewFromClient wraps an existing client. Used by tests.
func NewFromClient(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

var _ blobstore.Store = (*Store)(nil)
