package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-notes-be/internal/entity"
	"team-notes-be/internal/repository/implementation"
	"team-notes-be/internal/service"
	"team-notes-be/pkg/blobstore/gormstore"
	"team-notes-be/pkg/database"
)

func TestPostgresStore(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	store, err := gormstore.New(gormDB)
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("Blob round trip", func(t *testing.T) {
		key := "itest_blob_" + uuid.New().String()
		defer store.Delete(ctx, key)

		_, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, store.Set(ctx, key, []byte(`["a"]`)))
		raw, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, `["a"]`, string(raw))

		// Upsert path
		require.NoError(t, store.Set(ctx, key, []byte(`["a","b"]`)))
		raw, _, err = store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, `["a","b"]`, string(raw))
	})

	t.Run("Services over postgres", func(t *testing.T) {
		tenantRepo := implementation.NewTenantRepository(store)
		membershipRepo := implementation.NewMembershipRepository(store)
		memberships := service.NewMembershipService(membershipRepo, tenantRepo)
		tenants := service.NewTenantService(tenantRepo, membershipRepo, memberships)

		name := "itest-" + uuid.New().String()
		owner := name + "@example.com"
		tenant, err := tenants.CreateTeam(ctx, name, owner)
		require.NoError(t, err)
		assert.Equal(t, entity.PlanFree, tenant.Plan)
		assert.WithinDuration(t, time.Now(), tenant.CreatedAt, time.Minute)

		fetched, err := tenants.GetById(ctx, tenant.Id)
		require.NoError(t, err)
		assert.Equal(t, name, fetched.Name)

		member, err := memberships.GetForTenant(ctx, owner, tenant.Id)
		require.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, entity.RoleAdmin, member.Role)
	})
}
