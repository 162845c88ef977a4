package dto

import "time"

type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type GetOrCreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type JoinTeamRequest struct {
	InviteCode string `json:"invite_code" validate:"required"`
}

type UpdateMemberRoleRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	Role      string `json:"role" validate:"required"`
}

type TeamResponse struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	Plan       string    `json:"plan"`
	CreatedAt  time.Time `json:"created_at"`
	InviteCode string    `json:"invite_code"`
	OwnerEmail *string   `json:"owner_email"`
}

type MemberResponse struct {
	UserEmail string `json:"user_email"`
	TenantId  string `json:"tenant_id"`
	Role      string `json:"role"`
}

type JoinTeamResponse struct {
	Tenant TeamResponse   `json:"tenant"`
	Member MemberResponse `json:"member"`
}
