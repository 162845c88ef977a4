package service

import (
	"context"
	"strings"
	"time"

	"team-notes-be/internal/entity"
	"team-notes-be/internal/repository/contract"
)

type ITenantService interface {
	// GetOrCreateByName matches existing tenant names case-insensitively
	// and only creates when nothing matches. This is the only dedup path;
	// CreateTeam never checks.
	GetOrCreateByName(ctx context.Context, name string) (*entity.Tenant, error)
	CreateTeam(ctx context.Context, name, ownerEmail string) (*entity.Tenant, error)
	GetById(ctx context.Context, tenantId string) (*entity.Tenant, error)
	GetByInviteCode(ctx context.Context, code string) (*entity.Tenant, error)
	RotateInviteCode(ctx context.Context, tenantId string) (*entity.Tenant, error)
	ListUserTeams(ctx context.Context, userEmail string) ([]*entity.Tenant, error)
	UpgradeToPro(ctx context.Context, tenantId string) (*entity.Tenant, error)
}

type tenantService struct {
	tenantRepo        contract.TenantRepository
	membershipRepo    contract.MembershipRepository
	membershipService IMembershipService
}

func NewTenantService(
	tenantRepo contract.TenantRepository,
	membershipRepo contract.MembershipRepository,
	membershipService IMembershipService,
) ITenantService {
	return &tenantService{
		tenantRepo:        tenantRepo,
		membershipRepo:    membershipRepo,
		membershipService: membershipService,
	}
}

func (s *tenantService) GetOrCreateByName(ctx context.Context, name string) (*entity.Tenant, error) {
	if err := s.tenantRepo.EnsureInit(ctx); err != nil {
		return nil, err
	}

	tenants, err := s.tenantRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(name)
	for _, t := range tenants {
		if strings.ToLower(t.Name) == lower {
			return t, nil
		}
	}

	tenant := &entity.Tenant{
		Id:         newID(),
		Name:       strings.TrimSpace(name),
		Plan:       entity.PlanFree,
		CreatedAt:  time.Now(),
		InviteCode: newInviteCode(),
		OwnerEmail: nil,
	}
	tenants = append(tenants, tenant)

	if err := s.tenantRepo.ReplaceAll(ctx, tenants); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *tenantService) CreateTeam(ctx context.Context, name, ownerEmail string) (*entity.Tenant, error) {
	if err := s.tenantRepo.EnsureInit(ctx); err != nil {
		return nil, err
	}

	tenants, err := s.tenantRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	owner := normalizeEmail(ownerEmail)
	tenant := &entity.Tenant{
		Id:         newID(),
		Name:       strings.TrimSpace(name),
		Plan:       entity.PlanFree,
		CreatedAt:  time.Now(),
		InviteCode: newInviteCode(),
		OwnerEmail: &owner,
	}
	tenants = append(tenants, tenant)

	if err := s.tenantRepo.ReplaceAll(ctx, tenants); err != nil {
		return nil, err
	}

	// Owner becomes an admin member of the new team.
	if _, err := s.membershipService.Add(ctx, owner, tenant.Id, string(entity.RoleAdmin)); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *tenantService) GetById(ctx context.Context, tenantId string) (*entity.Tenant, error) {
	tenants, err := s.tenantRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	for _, t := range tenants {
		if t.Id == tenantId {
			return t, nil
		}
	}
	return nil, ErrTenantNotFound
}

func (s *tenantService) GetByInviteCode(ctx context.Context, code string) (*entity.Tenant, error) {
	if code == "" {
		return nil, ErrInvalidInviteCode
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
	return nil, ErrInvalidInviteCode
}

func (s *tenantService) RotateInviteCode(ctx context.Context, tenantId string) (*entity.Tenant, error) {
	tenants, err := s.tenantRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	for _, t := range tenants {
		if t.Id == tenantId {
			t.InviteCode = newInviteCode()
			if err := s.tenantRepo.ReplaceAll(ctx, tenants); err != nil {
				return nil, err
			}
			return t, nil
		}
	}
	return nil, ErrTenantNotFound
}

// ListUserTeams returns the user's tenants in the order the memberships
// were recorded. No sort.
func (s *tenantService) ListUserTeams(ctx context.Context, userEmail string) ([]*entity.Tenant, error) {
	if err := s.tenantRepo.EnsureInit(ctx); err != nil {
		return nil, err
	}
	if err := s.membershipRepo.EnsureInit(ctx); err != nil {
		return nil, err
	}

	email := normalizeEmail(userEmail)
	memberships, err := s.membershipRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	tenants, err := s.tenantRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	byId := make(map[string]*entity.Tenant, len(tenants))
	for _, t := range tenants {
		byId[t.Id] = t
	}

	teams := make([]*entity.Tenant, 0)
	for _, m := range memberships {
		if m.UserEmail != email {
			continue
		}
		if t, ok := byId[m.TenantId]; ok {
			teams = append(teams, t)
		}
	}
	return teams, nil
}

// UpgradeToPro is one-directional; no downgrade operation exists.
func (s *tenantService) UpgradeToPro(ctx context.Context, tenantId string) (*entity.Tenant, error) {
	tenants, err := s.tenantRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	for _, t := range tenants {
		if t.Id == tenantId {
			t.Plan = entity.PlanPro
			if err := s.tenantRepo.ReplaceAll(ctx, tenants); err != nil {
				return nil, err
			}
			return t, nil
		}
	}
	return nil, ErrTenantNotFound
}
