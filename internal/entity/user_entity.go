package entity

import "time"

// User belongs to the authentication collaborator, not the tenant store.
// The core services only ever consume the resolved (Email, Role) pair.
type User struct {
	Id           string
	Name         string
	CompanyName  string
	Email        string
	PasswordHash string
	Role         Role
	RegisteredAt time.Time
	LastLogin    *time.Time
}
