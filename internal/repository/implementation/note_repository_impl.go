package implementation

import (
	"context"

	"team-notes-be/internal/entity"
	"team-notes-be/internal/mapper"
	"team-notes-be/internal/model"
	"team-notes-be/internal/repository/contract"
	"team-notes-be/pkg/blobstore"
)

type NoteRepositoryImpl struct {
	coll   collection
	mapper *mapper.NoteMapper
}

func NewNoteRepository(store blobstore.Store) contract.NoteRepository {
	return &NoteRepositoryImpl{
		coll:   collection{store: store, key: notesKey},
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) EnsureInit(ctx context.Context) error {
	return r.coll.ensureInit(ctx)
}

func (r *NoteRepositoryImpl) All(ctx context.Context) ([]*entity.Note, error) {
	models := []*model.Note{}
	if err := r.coll.read(ctx, &models); err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) ReplaceAll(ctx context.Context, notes []*entity.Note) error {
	return r.coll.write(ctx, r.mapper.ToModels(notes))
}
