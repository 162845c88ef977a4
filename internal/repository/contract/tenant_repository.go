package contract

import (
	"context"

	"team-notes-be/internal/entity"
)

// Collection repositories expose whole-collection snapshots only. Every
// mutation in the service layer is a read-modify-write of one collection;
// there is no incremental update and no index.
type TenantRepository interface {
	// EnsureInit writes an empty collection if the key was never written.
	// Idempotent.
	EnsureInit(ctx context.Context) error
	All(ctx context.Context) ([]*entity.Tenant, error)
	ReplaceAll(ctx context.Context, tenants []*entity.Tenant) error
}
