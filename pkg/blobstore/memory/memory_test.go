package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingKey(t *testing.T) {
	s := New()

	raw, found, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, raw)
}

func TestSetOverwritesAndCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	value := []byte(`["a"]`)
	require.NoError(t, s.Set(ctx, "k", value))

	// Mutating the caller's slice after Set must not change the stored
	// value.
	value[2] = 'b'

	raw, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `["a"]`, string(raw))

	require.NoError(t, s.Set(ctx, "k", []byte(`["c"]`)))
	raw, _, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `["c"]`, string(raw))
}

func TestDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("[]")))
	require.NoError(t, s.Delete(ctx, "k"))

	_, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is fine.
	require.NoError(t, s.Delete(ctx, "k"))
}
