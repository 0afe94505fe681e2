package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gympulse/internal/auth"
	"gympulse/internal/errors"
	"gympulse/internal/model"
	"gympulse/internal/repository"
)

const bcryptCost = 10

// AuthService handles member registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password, fullName, email string) (*model.User, string, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new member with a hashed password and returns the
// member together with a fresh session token.
func (s *authService) Register(ctx context.Context, username, password, fullName, email string) (*model.User, string, error) {
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, "", errors.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		FullName:     fullName,
		Email:        email,
		MemberSince:  time.Now().UTC(),
		Level:        1,
	}

	// Create re-checks uniqueness under the store lock, so a concurrent
	// registration for the same username still fails here.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a member and returns a session token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}
