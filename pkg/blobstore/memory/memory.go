package memory

import (
	"context"

	"github.com/patrickmn/go-cache"

	"team-notes-be/pkg/blobstore"
)

// Store is the in-process driver, the default for a single session. It
// keeps collections in a go-cache instance with no expiration, the same
// way the chat session repository keeps its state.
type Store struct {
	cache *cache.Cache
}

func New() *Store {
	// No expiration and no janitor: collections live for the process.
	c := cache.New(cache.NoExpiration, 0)
	return &Store{cache: c}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	x, found := s.cache.Get(key)
	if !found {
		return nil, false, nil
	}
	return x.([]byte), true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	// Copy so later mutations of the caller's slice don't leak in.
	buf := make([]byte, len(value))
	copy(buf, value)
	s.cache.Set(key, buf, cache.NoExpiration)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

var _ blobstore.Store = (*Store)(nil)
