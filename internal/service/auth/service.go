package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/edupoint/edupoint-backend-go/internal/domain/auth"
	"github.com/edupoint/edupoint-backend-go/internal/domain/user"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, "", 0, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, "", 0, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
	})
	return err
}

// Refresh implements auth.AuthService. The old refresh token is revoked and a
// fresh pair is issued.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, string, int64, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, "", 0, auth.ErrRefreshTokenRevoked
	}

	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidToken
	}

	claims := token.PrivateClaims()
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, "", 0, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, "", 0, err
	}

	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(u)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, string, int64, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExp,
		TokenType:   "Bearer",
	}, refreshToken, refreshExp, nil
}
