package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mlukic92/blogd/internal/auth"
	"github.com/mlukic92/blogd/internal/domain"
	"github.com/mlukic92/blogd/internal/repository"
)

var ErrUsernameTaken = errors.New("username already registered")

type AuthService struct {
	userRepo repository.UserRepository
	codec    *auth.TokenCodec
}

func NewAuthService(userRepo repository.UserRepository, codec *auth.TokenCodec) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		codec:    codec,
	}
}

type RegisterInput struct {
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Nickname *string `json:"nickname"`
	Password string  `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		Nickname:     input.Nickname,
		PasswordHash: hash,
		Status:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// Authenticate validates a username/password pair. An unknown username and a
// wrong password both come back as ErrInvalidCredentials; soft-deleted users
// are invisible here.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, auth.ErrInvalidCredentials
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, auth.ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates and mints a bearer token with the user id as subject.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Resolve turns a bearer token into an active user. It runs on every
// protected request and never mutates anything: decode, look the subject up
// excluding soft-deleted rows, then check the account is still active.
func (s *AuthService) Resolve(ctx context.Context, tokenStr string) (*domain.User, error) {
	userID, err := s.codec.Decode(tokenStr)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, auth.ErrInvalidSubject
	}

	if !user.Status {
		return nil, auth.ErrInactiveUser
	}

	return user, nil
}
