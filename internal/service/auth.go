package service

import (
	"context"
	"errors"
	"time"

	"github.com/statusfeed/statusfeed-go/internal/crypto"
	"github.com/statusfeed/statusfeed-go/internal/model"
	"github.com/statusfeed/statusfeed-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrFirstNameRequired  = errors.New("first_name is required")
	ErrLastNameRequired   = errors.New("last_name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrEmailTaken         = errors.New("email already taken")
)

// AuthService handles registration and session authentication.
type AuthService struct {
	users     repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService. The signing secret and token
// lifetime are fixed at construction.
func NewAuthService(users repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account. Only the one-way hash of the password
// is persisted; the raw value never leaves this function.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.UserResponse, error) {
	if req.FirstName == "" {
		return model.UserResponse{}, ErrFirstNameRequired
	}
	if req.LastName == "" {
		return model.UserResponse{}, ErrLastNameRequired
	}
	if req.Email == "" {
		return model.UserResponse{}, ErrEmailRequired
	}

	var hash string
	if req.Password != "" {
		var err error
		hash, err = crypto.HashPassword(req.Password)
		if err != nil {
			return model.UserResponse{}, err
		}
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Active:       true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return model.NewUserResponse(user), nil
}

// Login verifies credentials and mints a session token. An unknown email and
// a wrong password fail identically, so the response does not leak which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, model.UserResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", model.UserResponse{}, ErrInvalidCredentials
		}
		return "", model.UserResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return "", model.UserResponse{}, err
	}
	if !match {
		return "", model.UserResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return "", model.UserResponse{}, err
	}

	return token, model.NewUserResponse(user), nil
}
