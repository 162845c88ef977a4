package mapper

import (
	"time"

	"team-notes-be/internal/entity"
	"team-notes-be/internal/model"
)

// Stored timestamps are ISO-8601 strings. Values we did not write
// ourselves may not parse; those map to the zero time instead of failing
// the whole collection decode.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

type TenantMapper struct{}

func NewTenantMapper() *TenantMapper {
	return &TenantMapper{}
}

func (m *TenantMapper) ToEntity(t *model.Tenant) *entity.Tenant {
	if t == nil {
		return nil
	}

	return &entity.Tenant{
		Id:         t.Id,
		Name:       t.Name,
		Plan:       entity.Plan(t.Plan),
		CreatedAt:  parseTime(t.CreatedAt),
		InviteCode: t.InviteCode,
		OwnerEmail: t.OwnerEmail,
	}
}

func (m *TenantMapper) ToModel(t *entity.Tenant) *model.Tenant {
	if t == nil {
		return nil
	}

	return &model.Tenant{
		Id:         t.Id,
		Name:       t.Name,
		Plan:       string(t.Plan),
		CreatedAt:  formatTime(t.CreatedAt),
		InviteCode: t.InviteCode,
		OwnerEmail: t.OwnerEmail,
	}
}

func (m *TenantMapper) ToEntities(tenants []*model.Tenant) []*entity.Tenant {
	entities := make([]*entity.Tenant, len(tenants))
	for i, t := range tenants {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *TenantMapper) ToModels(tenants []*entity.Tenant) []*model.Tenant {
	models := make([]*model.Tenant, len(tenants))
	for i, t := range tenants {
		models[i] = m.ToModel(t)
	}
	return models
}
