package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"team-notes-be/internal/dto"
	"team-notes-be/internal/entity"
)

func TestRegisterAndLogin(t *testing.T) {
	s := newTestStack()
	ctx := context.Background()

	user, err := s.auth.Register(ctx, &dto.RegisterRequest{
		Name:        "Ada",
		CompanyName: "Acme",
		Email:       "Ada@Acme.com",
		Password:    "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@acme.com", user.Email)
	assert.Equal(t, entity.RoleMember, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))

	resp, err := s.auth.Login(ctx, &dto.LoginRequest{Email: "ada@acme.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "ada@acme.com", resp.User.Email)

	fetched, err := s.auth.GetByEmail(ctx, "ADA@acme.com")
	require.NoError(t, err)
	require.NotNil(t, fetched.LastLogin)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestStack()
	ctx := context.Background()

	_, err := s.auth.Register(ctx, &dto.RegisterRequest{Name: "Ada", Email: "ada@acme.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = s.auth.Register(ctx, &dto.RegisterRequest{Name: "Other", Email: "ADA@ACME.COM", Password: "different"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterCoercesInvalidRole(t *testing.T) {
	s := newTestStack()

	user, err := s.auth.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@acme.com",
		Password: "secret123",
		Role:     "superuser",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleMember, user.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestStack()
	ctx := context.Background()

	_, err := s.auth.Register(ctx, &dto.RegisterRequest{Name: "Ada", Email: "ada@acme.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = s.auth.Login(ctx, &dto.LoginRequest{Email: "ada@acme.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.auth.Login(ctx, &dto.LoginRequest{Email: "nobody@acme.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResetPassword(t *testing.T) {
	s := newTestStack()
	ctx := context.Background()

	_, err := s.auth.Register(ctx, &dto.RegisterRequest{Name: "Ada", Email: "ada@acme.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, s.auth.ResetPassword(ctx, &dto.ResetPasswordRequest{Email: "ada@acme.com", NewPassword: "changed456"}))

	_, err = s.auth.Login(ctx, &dto.LoginRequest{Email: "ada@acme.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.auth.Login(ctx, &dto.LoginRequest{Email: "ada@acme.com", Password: "changed456"})
	require.NoError(t, err)

	err = s.auth.ResetPassword(ctx, &dto.ResetPasswordRequest{Email: "nobody@acme.com", NewPassword: "whatever"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteByEmail(t *testing.T) {
	s := newTestStack()
	ctx := context.Background()

	_, err := s.auth.Register(ctx, &dto.RegisterRequest{Name: "Ada", Email: "ada@acme.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, s.auth.DeleteByEmail(ctx, "ADA@acme.com"))

	_, err = s.auth.GetByEmail(ctx, "ada@acme.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, s.auth.DeleteByEmail(ctx, "ada@acme.com"), ErrUserNotFound)
}
