// Package blobstore defines the string-keyed blob store the collection
// repositories persist into. Each key holds one whole serialized
// collection; writes always replace the full value.
//
// The store itself takes no locks. The repositories above it follow a
// read-modify-write cycle per operation and assume a single logical
// writer per key: two writers interleaving on the same key can silently
// clobber each other's changes. Known limitation.
package blobstore

import "context"

type Store interface {
	// Get returns the raw value for key. The second return is false when
	// the key has never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set replaces the full value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
