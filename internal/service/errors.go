package service

import "errors"

// Expected failure kinds. Callers distinguish them with errors.Is; the
// HTTP error middleware maps them onto statuses and the uniform
// {success:false, message} body.
var (
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrInvalidInviteCode  = errors.New("invalid invite code")

	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
