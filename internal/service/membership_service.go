package service

import (
	"context"
	"strings"

	"team-notes-be/internal/entity"
	"team-notes-be/internal/repository/contract"
)

type IMembershipService interface {
	// Add is idempotent: an existing (email, tenant) pair is returned
	// unchanged, with no role update.
	Add(ctx context.Context, userEmail, tenantId, role string) (*entity.Membership, error)
	JoinByInviteCode(ctx context.Context, userEmail, code string) (*entity.Tenant, *entity.Membership, error)
	// Get returns the FIRST membership stored for the email, across all
	// tenants, or nil. A user in several tenants only ever gets one back
	// here; tenant-scoped callers must use GetForTenant. Kept as-is for
	// compatibility with the stored contract.
	Get(ctx context.Context, userEmail string) (*entity.Membership, error)
	GetForTenant(ctx context.Context, userEmail, tenantId string) (*entity.Membership, error)
	ListMembers(ctx context.Context, tenantId string) ([]*entity.Membership, error)
	UpdateRole(ctx context.Context, userEmail, tenantId, role string) (*entity.Membership, error)
}

type membershipService struct {
	membershipRepo contract.MembershipRepository
	tenantRepo     contract.TenantRepository
}

func NewMembershipService(membershipRepo contract.MembershipRepository, tenantRepo contract.TenantRepository) IMembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		tenantRepo:     tenantRepo,
	}
}

func (s *membershipService) Add(ctx context.Context, userEmail, tenantId, role string) (*entity.Membership, error) {
	if err := s.membershipRepo.EnsureInit(ctx); err != nil {
		return nil, err
	}

	email := normalizeEmail(userEmail)
	memberships, err := s.membershipRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	for _, m := range memberships {
		if m.UserEmail == email && m.TenantId == tenantId {
			return m, nil
		}
	}

	membership := &entity.Membership{
		UserEmail: email,
		TenantId:  tenantId,
		Role:      entity.NormalizeRole(role),
	}
	memberships = append(memberships, membership)

	if err := s.membershipRepo.ReplaceAll(ctx, memberships); err != nil {
		return nil, err
	}
	return membership, nil
}

func (s *membershipService) JoinByInviteCode(ctx context.Context, userEmail, code string) (*entity.Tenant, *entity.Membership, error) {
	if err := s.membershipRepo.EnsureInit(ctx); err != nil {
		return nil, nil, err
	}

	tenant, err := s.findTenantByInviteCode(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	if tenant == nil {
		return nil, nil, ErrInvalidInviteCode
	}

	member, err := s.Add(ctx, userEmail, tenant.Id, string(entity.RoleMember))
	if err != nil {
		return nil, nil, err
	}
	return tenant, member, nil
}

func (s *membershipService) Get(ctx context.Context, userEmail string) (*entity.Membership, error) {
	email := normalizeEmail(userEmail)
	memberships, err := s.membershipRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	for _, m := range memberships {
		if m.UserEmail == email {
			return m, nil
		}
	}
	return nil, nil
}

func (s *membershipService) GetForTenant(ctx context.Context, userEmail, tenantId string) (*entity.Membership, error) {
	email := normalizeEmail(userEmail)
	memberships, err := s.membershipRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	for _, m := range memberships {
		if m.UserEmail == email && m.TenantId == tenantId {
			return m, nil
		}
	}
	return nil, nil
}

func (s *membershipService) ListMembers(ctx context.Context, tenantId string) ([]*entity.Membership, error) {
	memberships, err := s.membershipRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]*entity.Membership, 0)
	for _, m := range memberships {
		if m.TenantId == tenantId {
			members = append(members, m)
		}
	}
	return members, nil
}

func (s *membershipService) UpdateRole(ctx context.Context, userEmail, tenantId, role string) (*entity.Membership, error) {
	email := normalizeEmail(userEmail)
	memberships, err := s.membershipRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	for _, m := range memberships {
		if m.UserEmail == email && m.TenantId == tenantId {
			m.Role = entity.NormalizeRole(role)
			if err := s.membershipRepo.ReplaceAll(ctx, memberships); err != nil {
				return nil, err
			}
			return m, nil
		}
	}
	return nil, ErrMembershipNotFound
}

// findTenantByInviteCode matches codes case-insensitively. Returns nil
// when nothing matches.
func (s *membershipService) findTenantByInviteCode(ctx context.Context, code string) (*entity.Tenant, error) {
	if code == "" {
		return nil, nil
	}

	tenants, err := s.tenantRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	upper := strings.ToUpper(code)
	for _, t := range tenants {
		if strings.ToUpper(t.InviteCode) == upper {
			return t, nil
		}
	}
	return nil, nil
}
