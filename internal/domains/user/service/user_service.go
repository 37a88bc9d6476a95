package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"djbooking-backend/internal/domains/user"
	"djbooking-backend/internal/domains/user/model"
	"djbooking-backend/internal/domains/user/repository"
	"djbooking-backend/pkg/jwt"
)

const bcryptCost = 12

type userService struct {
	repo       repository.RepositoryInterface
	jwtManager *jwt.Manager
}

func NewUserService(repo repository.RepositoryInterface, jwtManager *jwt.Manager) ServiceInterface {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(created)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{User: created, Tokens: *tokens}, nil
}

func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	// Lookup failure and password mismatch collapse into one error so
	// the response never reveals whether the email is registered.
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(u)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{User: u, Tokens: *tokens}, nil
}

func (s *userService) Refresh(ctx context.Context, req *model.RefreshTokenRequest) (*model.TokenPair, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(u)
}

func (s *userService) issueTokens(u *model.User) (*model.TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
