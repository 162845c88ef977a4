package implementation

import (
	"context"

	"team-notes-be/internal/entity"
	"team-notes-be/internal/mapper"
	"team-notes-be/internal/model"
	"team-notes-be/internal/repository/contract"
	"team-notes-be/pkg/blobstore"
)

type TenantRepositoryImpl struct {
	coll   collection
	mapper *mapper.TenantMapper
}

func NewTenantRepository(store blobstore.Store) contract.TenantRepository {
	return &TenantRepositoryImpl{
		coll:   collection{store: store, key: tenantsKey},
		mapper: mapper.NewTenantMapper(),
	}
}

func (r *TenantRepositoryImpl) EnsureInit(ctx context.Context) error {
	return r.coll.ensureInit(ctx)
}

func (r *TenantRepositoryImpl) All(ctx context.Context) ([]*entity.Tenant, error) {
	models := []*model.Tenant{}
	if err := r.coll.read(ctx, &models); err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TenantRepositoryImpl) ReplaceAll(ctx context.Context, tenants []*entity.Tenant) error {
	return r.coll.write(ctx, r.mapper.ToModels(tenants))
}
