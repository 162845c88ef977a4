package mapper

import (
	"time"

	"team-notes-be/internal/entity"
	"team-notes-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var lastLogin *time.Time
	if u.LastLogin != nil {
		t := parseTime(*u.LastLogin)
		lastLogin = &t
	}

	return &entity.User{
		Id:           u.Id,
		Name:         u.Name,
		CompanyName:  u.CompanyName,
		Email:        u.Email,
		PasswordHash: u.Password,
		Role:         entity.NormalizeRole(u.Role),
		RegisteredAt: parseTime(u.RegisteredAt),
		LastLogin:    lastLogin,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	var lastLogin *string
	if u.LastLogin != nil {
		s := formatTime(*u.LastLogin)
		lastLogin = &s
	}

	return &model.User{
		Id:           u.Id,
		Name:         u.Name,
		CompanyName:  u.CompanyName,
		Email:        u.Email,
		Password:     u.PasswordHash,
		Role:         string(u.Role),
		RegisteredAt: formatTime(u.RegisteredAt),
		LastLogin:    lastLogin,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) ToModels(users []*entity.User) []*model.User {
	models := make([]*model.User, len(users))
	for i, u := range users {
		models[i] = m.ToModel(u)
	}
	return models
}
