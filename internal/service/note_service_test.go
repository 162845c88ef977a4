package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-notes-be/internal/dto"
)

func TestFreePlanQuota(t *testing.T) {
	s := newTestStack()
	ctx := context.Background()

	tenant, err := s.tenants.CreateTeam(ctx, "Acme", "owner@x.com")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := s.notes.Create(ctx, tenant.Id, "owner@x.com", fmt.Sprintf("note %d", i), "body")
		require.NoError(t, err)
	}

	_, err = s.notes.Create(ctx, tenant.Id, "owner@x.com", "one too many", "body")
	var quotaErr *dto.QuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, 3, quotaErr.Limit)
	assert.Equal(t, 3, quotaErr.Used)

	count, err := s.notes.Count(ctx, tenant.Id)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Upgrading lifts the limit.
	_, err = s.tenants.UpgradeToPro(ctx, tenant.Id)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := s.notes.Create(ctx, tenant.Id, "owner@x.com", fmt.Sprintf("pro note %d", i), "body")
		require.NoError(t, err)
	}
}

func TestCreateNoteTrimsAndStampsTimes(t *testing.T) {
	s := newTestStack()
	ctx := context.Background()

	tenant, err := s.tenants.CreateTeam(ctx, "Acme", "owner@x.com")
	require.NoError(t, err)

	note, err := s.notes.Create(ctx, tenant.Id, "A@X.com", " Hi ", " body ")
	require.NoError(t, err)
	assert.Equal(t, "Hi", note.Title)
	assert.Equal(t, "body", note.Content)
	assert.Equal(t, "a@x.com", note.AuthorEmail)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)

	listed, err := s.notes.List(ctx, tenant.Id)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Hi", listed[0].Title)
	assert.Equal(t, "body", listed[0].Content)
	assert.True(t, listed[0].CreatedAt.Equal(listed[0].UpdatedAt))
}

func TestCreateNoteTenantNotFound(t *testing.T) {
	s := newTestStack()

	_, err := s.notes.Create(context.Background(), "missing", "a@x.com", "t", "c")
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestListNotesDescendingByUpdatedAt(t *testing.T) {
	s := newTestStack()
	ctx := context.Background()

	tenant, err := s.tenants.CreateTeam(ctx, "Acme", "owner@x.com")
	require.NoError(t, err)

	n1, err := s.notes.Create(ctx, tenant.Id, "a@x.com", "first", "c")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	n2, err := s.notes.Create(ctx, tenant.Id, "a@x.com", "second", "c")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	n3, err := s.notes.Create(ctx, tenant.Id, "a@x.com", "third", "c")
	require.NoError(t, err)

	listed, err := s.notes.List(ctx, tenant.Id)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, n3.Id, listed[0].Id)
	assert.Equal(t, n2.Id, listed[1].Id)
	assert.Equal(t, n1.Id, listed[2].Id)

	// Editing the oldest note moves it to the front.
	time.Sleep(5 * time.Millisecond)
	_, err = s.notes.Update(ctx, tenant.Id, n1.Id, "first v2", "c")
	require.NoError(t, err)

	listed, err = s.notes.List(ctx, tenant.Id)
	require.NoError(t, err)
	assert.Equal(t, n1.Id, listed[0].Id)
}

func TestUpdateNoteTenantIsolation(t *testing.T) {
	s := newTestStack()
	ctx := context.Background()

	acme, err := s.tenants.CreateTeam(ctx, "Acme", "a@x.com")
	require.NoError(t, err)
	other, err := s.tenants.CreateTeam(ctx, "Other", "b@x.com")
	require.NoError(t, err)

	note, err := s.notes.Create(ctx, acme.Id, "a@x.com", "secret", "body")
	require.NoError(t, err)

	// A valid note id under the wrong tenant must not be editable.
	_, err = s.notes.Update(ctx, other.Id, note.Id, "stolen", "body")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	listed, err := s.notes.List(ctx, acme.Id)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "secret", listed[0].Title)
}

func TestUpdateNoteRefreshesUpdatedAtOnly(t *testing.T) {
	s := newTestStack()
	ctx := context.Background()

	tenant, err := s.tenants.CreateTeam(ctx, "Acme", "a@x.com")
	require.NoError(t, err)
	note, err := s.notes.Create(ctx, tenant.Id, "a@x.com", "v1", "c")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := s.notes.Update(ctx, tenant.Id, note.Id, " v2 ", " c2 ")
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Title)
	assert.Equal(t, "c2", updated.Content)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	assert.True(t, updated.CreatedAt.Equal(note.CreatedAt))
}

func TestDeleteNoteIdempotent(t *testing.T) {
	s := newTestStack()
	ctx := context.Background()

	tenant, err := s.tenants.CreateTeam(ctx, "Acme", "a@x.com")
	require.NoError(t, err)
	note, err := s.notes.Create(ctx, tenant.Id, "a@x.com", "t", "c")
	require.NoError(t, err)

	require.NoError(t, s.notes.Delete(ctx, tenant.Id, note.Id))

	// Deleting again, or deleting something that never existed, still
	// reports success and changes nothing.
	require.NoError(t, s.notes.Delete(ctx, tenant.Id, note.Id))
	require.NoError(t, s.notes.Delete(ctx, tenant.Id, "missing"))

	count, err := s.notes.Count(ctx, tenant.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestDeleteNoteRequiresMatchingTenant(t *testing.T) {
	s := newTestStack()
	ctx := context.Background()

	acme, err := s.tenants.CreateTeam(ctx, "Acme", "a@x.com")
	require.NoError(t, err)
	other, err := s.tenants.CreateTeam(ctx, "Other", "b@x.com")
	require.NoError(t, err)
	note, err := s.notes.Create(ctx, acme.Id, "a@x.com", "t", "c")
	require.NoError(t, err)

	// Wrong tenant: reports success, removes nothing.
	require.NoError(t, s.notes.Delete(ctx, other.Id, note.Id))

	count, err := s.notes.Count(ctx, acme.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCountMatchesListPredicate(t *testing.T) {
	s := newTestStack()
	ctx := context.Background()

	acme, err := s.tenants.CreateTeam(ctx, "Acme", "a@x.com")
	require.NoError(t, err)
	other, err := s.tenants.CreateTeam(ctx, "Other", "b@x.com")
	require.NoError(t, err)

	_, err = s.notes.Create(ctx, acme.Id, "a@x.com", "one", "c")
	require.NoError(t, err)
	_, err = s.notes.Create(ctx, other.Id, "b@x.com", "two", "c")
	require.NoError(t, err)

	listed, err := s.notes.List(ctx, acme.Id)
	require.NoError(t, err)
	count, err := s.notes.Count(ctx, acme.Id)
	require.NoError(t, err)
	assert.Equal(t, len(listed), count)
	assert.Equal(t, 1, count)
}
