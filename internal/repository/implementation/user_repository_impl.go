package implementation

import (
	"context"

	"team-notes-be/internal/entity"
	"team-notes-be/internal/mapper"
	"team-notes-be/internal/model"
	"team-notes-be/internal/repository/contract"
	"team-notes-be/pkg/blobstore"
)

type UserRepositoryImpl struct {
	coll   collection
	mapper *mapper.UserMapper
}

func NewUserRepository(store blobstore.Store) contract.UserRepository {
	return &UserRepositoryImpl{
		coll:   collection{store: store, key: usersKey},
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) EnsureInit(ctx context.Context) error {
	return r.coll.ensureInit(ctx)
}

func (r *UserRepositoryImpl) All(ctx context.Context) ([]*entity.User, error) {
	models := []*model.User{}
	if err := r.coll.read(ctx, &models); err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UserRepositoryImpl) ReplaceAll(ctx context.Context, users []*entity.User) error {
	return r.coll.write(ctx, r.mapper.ToModels(users))
}
