package contract

import (
	"context"

	"team-notes-be/internal/entity"
)

// UserRepository backs the authentication collaborator. It lives on the
// same blob store but in its own collection; the tenant store never
// touches it.
type UserRepository interface {
	EnsureInit(ctx context.Context) error
	All(ctx context.Context) ([]*entity.User, error)
	ReplaceAll(ctx context.Context, users []*entity.User) error
}
