package service

import (
	"team-notes-be/internal/repository/implementation"
	"team-notes-be/pkg/blobstore/memory"
)

type testStack struct {
	tenants     ITenantService
	memberships IMembershipService
	notes       INoteService
	auth        IAuthService
	store       *memory.Store
}

func newTestStack() *testStack {
	store := memory.New()
	tenantRepo := implementation.NewTenantRepository(store)
	membershipRepo := implementation.NewMembershipRepository(store)
	noteRepo := implementation.NewNoteRepository(store)
	userRepo := implementation.NewUserRepository(store)

	memberships := NewMembershipService(membershipRepo, tenantRepo)
	return &testStack{
		tenants:     NewTenantService(tenantRepo, membershipRepo, memberships),
		memberships: memberships,
		notes:       NewNoteService(noteRepo, tenantRepo),
		auth:        NewAuthService(userRepo),
		store:       store,
	}
}
