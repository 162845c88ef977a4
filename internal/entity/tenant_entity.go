package entity

import "time"

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// Tenant is a team/organization. Plan only moves free -> pro; there is no
// downgrade path. InviteCode is short-lived by convention and can be
// rotated at any time.
type Tenant struct {
	Id         string
	Name       string
	Plan       Plan
	CreatedAt  time.Time
	InviteCode string
	OwnerEmail *string // nil for tenants created without an explicit owner
}

func (t *Tenant) IsFree() bool {
	return t.Plan != PlanPro
}
