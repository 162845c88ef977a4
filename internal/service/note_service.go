package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"team-notes-be/internal/dto"
	"team-notes-be/internal/entity"
	"team-notes-be/internal/repository/contract"
)

// Free-plan tenants hold at most this many notes; pro has no limit.
const freePlanNoteLimit = 3

type INoteService interface {
	// List returns the tenant's notes, most recently updated first.
	List(ctx context.Context, tenantId string) ([]*entity.Note, error)
	Count(ctx context.Context, tenantId string) (int, error)
	Create(ctx context.Context, tenantId, authorEmail, title, content string) (*entity.Note, error)
	Update(ctx context.Context, tenantId, noteId, title, content string) (*entity.Note, error)
	// Delete is idempotent and never reports not-found, unlike Update.
	Delete(ctx context.Context, tenantId, noteId string) error
}

type noteService struct {
	noteRepo   contract.NoteRepository
	tenantRepo contract.TenantRepository
}

func NewNoteService(noteRepo contract.NoteRepository, tenantRepo contract.TenantRepository) INoteService {
	return &noteService{
		noteRepo:   noteRepo,
		tenantRepo: tenantRepo,
	}
}

func (s *noteService) List(ctx context.Context, tenantId string) ([]*entity.Note, error) {
	notes, err := s.forTenant(ctx, tenantId)
	if err != nil {
		return nil, err
	}

	// Stable sort keeps equal timestamps in stored order, deterministic
	// per run.
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
	return notes, nil
}

func (s *noteService) Count(ctx context.Context, tenantId string) (int, error) {
	notes, err := s.forTenant(ctx, tenantId)
	if err != nil {
		return 0, err
	}
	return len(notes), nil
}

func (s *noteService) Create(ctx context.Context, tenantId, authorEmail, title, content string) (*entity.Note, error) {
	if err := s.noteRepo.EnsureInit(ctx); err != nil {
		return nil, err
	}

	tenant, err := s.findTenant(ctx, tenantId)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, ErrTenantNotFound
	}

	if tenant.IsFree() {
		count, err := s.Count(ctx, tenantId)
		if err != nil {
			return nil, err
		}
		if count >= freePlanNoteLimit {
			return nil, &dto.QuotaExceededError{Limit: freePlanNoteLimit, Used: count}
		}
	}

	notes, err := s.noteRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	note := &entity.Note{
		Id:          newID(),
		TenantId:    tenantId,
		AuthorEmail: normalizeEmail(authorEmail),
		Title:       strings.TrimSpace(title),
		Content:     strings.TrimSpace(content),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	notes = append(notes, note)

	if err := s.noteRepo.ReplaceAll(ctx, notes); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) Update(ctx context.Context, tenantId, noteId, title, content string) (*entity.Note, error) {
	notes, err := s.noteRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	// Both id and tenant must match; a note id from another tenant is
	// not editable.
	for _, n := range notes {
		if n.Id == noteId && n.TenantId == tenantId {
			n.Title = strings.TrimSpace(title)
			n.Content = strings.TrimSpace(content)
			n.UpdatedAt = time.Now()
			if err := s.noteRepo.ReplaceAll(ctx, notes); err != nil {
				return nil, err
			}
			return n, nil
		}
	}
	return nil, ErrNoteNotFound
}

func (s *noteService) Delete(ctx context.Context, tenantId, noteId string) error {
	notes, err := s.noteRepo.All(ctx)
	if err != nil {
		return err
	}

	next := notes[:0:0]
	for _, n := range notes {
		if n.Id == noteId && n.TenantId == tenantId {
			continue
		}
		next = append(next, n)
	}
	return s.noteRepo.ReplaceAll(ctx, next)
}

func (s *noteService) forTenant(ctx context.Context, tenantId string) ([]*entity.Note, error) {
	notes, err := s.noteRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	scoped := make([]*entity.Note, 0)
	for _, n := range notes {
		if n.TenantId == tenantId {
			scoped = append(scoped, n)
		}
	}
	return scoped, nil
}

func (s *noteService) findTenant(ctx context.Context, tenantId string) (*entity.Tenant, error) {
	tenants, err := s.tenantRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tenants {
		if t.Id == tenantId {
			return t, nil
		}
	}
	return nil, nil
}
