package mapper

import (
	"team-notes-be/internal/entity"
	"team-notes-be/internal/model"
)

type MembershipMapper struct{}

func NewMembershipMapper() *MembershipMapper {
	return &MembershipMapper{}
}

func (m *MembershipMapper) ToEntity(ms *model.Membership) *entity.Membership {
	if ms == nil {
		return nil
	}

	return &entity.Membership{
		UserEmail: ms.UserEmail,
		TenantId:  ms.TenantId,
		Role:      entity.Role(ms.Role),
	}
}

func (m *MembershipMapper) ToModel(ms *entity.Membership) *model.Membership {
	if ms == nil {
		return nil
	}

	return &model.Membership{
		UserEmail: ms.UserEmail,
		TenantId:  ms.TenantId,
		Role:      string(ms.Role),
	}
}

func (m *MembershipMapper) ToEntities(memberships []*model.Membership) []*entity.Membership {
	entities := make([]*entity.Membership, len(memberships))
	for i, ms := range memberships {
		entities[i] = m.ToEntity(ms)
	}
	return entities
}

func (m *MembershipMapper) ToModels(memberships []*entity.Membership) []*model.Membership {
	models := make([]*model.Membership, len(memberships))
	for i, ms := range memberships {
		models[i] = m.ToModel(ms)
	}
	return models
}
