package contract

import (
	"context"

	"team-notes-be/internal/entity"
)

type MembershipRepository interface {
	EnsureInit(ctx context.Context) error
	All(ctx context.Context) ([]*entity.Membership, error)
	ReplaceAll(ctx context.Context, memberships []*entity.Membership) error
}
