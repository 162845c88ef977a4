package entity

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// NormalizeRole coerces any value that is not exactly "admin" to member.
// Both the add and the update path apply this silently.
func NormalizeRole(role string) Role {
	if role == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleMember
}

// Membership links a normalized user email to a tenant. At most one
// membership exists per (UserEmail, TenantId) pair, enforced by
// check-before-insert in the service layer.
type Membership struct {
	UserEmail string
	TenantId  string
	Role      Role
}
