package implementation

import (
	"context"

	"team-notes-be/internal/entity"
	"team-notes-be/internal/mapper"
	"team-notes-be/internal/model"
	"team-notes-be/internal/repository/contract"
	"team-notes-be/pkg/blobstore"
)

type MembershipRepositoryImpl struct {
	coll   collection
	mapper *mapper.MembershipMapper
}

func NewMembershipRepository(store blobstore.Store) contract.MembershipRepository {
	return &MembershipRepositoryImpl{
		coll:   collection{store: store, key: membershipsKey},
		mapper: mapper.NewMembershipMapper(),
	}
}

func (r *MembershipRepositoryImpl) EnsureInit(ctx context.Context) error {
	return r.coll.ensureInit(ctx)
}

func (r *MembershipRepositoryImpl) All(ctx context.Context) ([]*entity.Membership, error) {
	models := []*model.Membership{}
	if err := r.coll.read(ctx, &models); err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MembershipRepositoryImpl) ReplaceAll(ctx context.Context, memberships []*entity.Membership) error {
	return r.coll.write(ctx, r.mapper.ToModels(memberships))
}
