package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-notes-be/internal/repository/implementation"
	"team-notes-be/internal/service"
	"team-notes-be/pkg/blobstore/redisstore"
)

func TestRedisStore(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("Skipping integration test: REDIS_URL not set")
	}

	ctx := context.Background()
	store, err := redisstore.New(ctx, redisURL)
	if err != nil {
		t.Fatalf("Failed to connect to redis: %v", err)
	}
	defer store.Close()

	t.Run("Blob round trip", func(t *testing.T) {
		key := "itest_blob_" + uuid.New().String()
		defer store.Delete(ctx, key)

		_, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, store.Set(ctx, key, []byte(`[]`)))
		raw, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, `[]`, string(raw))

		require.NoError(t, store.Delete(ctx, key))
		_, found, err = store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Notes over redis", func(t *testing.T) {
		tenantRepo := implementation.NewTenantRepository(store)
		membershipRepo := implementation.NewMembershipRepository(store)
		noteRepo := implementation.NewNoteRepository(store)
		memberships := service.NewMembershipService(membershipRepo, tenantRepo)
		tenants := service.NewTenantService(tenantRepo, membershipRepo, memberships)
		notes := service.NewNoteService(noteRepo, tenantRepo)

		name := "itest-" + uuid.New().String()
		tenant, err := tenants.CreateTeam(ctx, name, name+"@example.com")
		require.NoError(t, err)

		note, err := notes.Create(ctx, tenant.Id, name+"@example.com", "hello", "from redis")
		require.NoError(t, err)

		listed, err := notes.List(ctx, tenant.Id)
		require.NoError(t, err)
		require.NotEmpty(t, listed)
		assert.Equal(t, note.Id, listed[0].Id)

		require.NoError(t, notes.Delete(ctx, tenant.Id, note.Id))
	})
}
