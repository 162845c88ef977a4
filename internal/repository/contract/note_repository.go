package contract

import (
	"context"

	"team-notes-be/internal/entity"
)

type NoteRepository interface {
	EnsureInit(ctx context.Context) error
	All(ctx context.Context) ([]*entity.Note, error)
	ReplaceAll(ctx context.Context, notes []*entity.Note) error
}
