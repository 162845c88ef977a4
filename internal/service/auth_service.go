package service

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"team-notes-be/internal/dto"
	"team-notes-be/internal/entity"
	"team-notes-be/internal/repository/contract"
)

// IAuthService is the authentication collaborator. The tenant store only
// ever consumes the resolved (email, role) pair it produces; nothing
// flows back. Passwords are stored as bcrypt hashes.
type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*entity.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	DeleteByEmail(ctx context.Context, email string) error
}

type authService struct {
	userRepo contract.UserRepository
}

func NewAuthService(userRepo contract.UserRepository) IAuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*entity.User, error) {
	if err := s.userRepo.EnsureInit(ctx); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	users, err := s.userRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email {
			return nil, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           newID(),
		Name:         req.Name,
		CompanyName:  req.CompanyName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.NormalizeRole(req.Role),
		RegisteredAt: time.Now(),
	}
	users = append(users, user)

	if err := s.userRepo.ReplaceAll(ctx, users); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := normalizeEmail(req.Email)
	users, err := s.userRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	var user *entity.User
	for _, u := range users {
		if u.Email == email {
			user = u
			break
		}
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.ReplaceAll(ctx, users); err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   now.Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		User: dto.UserDTO{
			Id:          user.Id,
			Name:        user.Name,
			CompanyName: user.CompanyName,
			Email:       user.Email,
			Role:        string(user.Role),
		},
	}, nil
}

func (s *authService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	normalized := normalizeEmail(email)
	users, err := s.userRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == normalized {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	email := normalizeEmail(req.Email)
	users, err := s.userRepo.All(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Email == email {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			u.PasswordHash = string(hash)
			return s.userRepo.ReplaceAll(ctx, users)
		}
	}
	return ErrUserNotFound
}

func (s *authService) DeleteByEmail(ctx context.Context, email string) error {
	normalized := normalizeEmail(email)
	users, err := s.userRepo.All(ctx)
	if err != nil {
		return err
	}

	next := users[:0:0]
	for _, u := range users {
		if u.Email != normalized {
			next = append(next, u)
		}
	}
	if len(next) == len(users) {
		return ErrUserNotFound
	}
	return s.userRepo.ReplaceAll(ctx, next)
}
