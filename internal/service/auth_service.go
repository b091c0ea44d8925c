//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --structname MockAuthService --filename mock_auth_service.go
package service

import (
	"context"
	"errors"
	"time"

	"habit_tracker/internal/config"
	"habit_tracker/internal/middleware"
	"habit_tracker/internal/model"
	"habit_tracker/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error)
	Me(ctx context.Context, profileID uuid.UUID) (*model.Profile, error)
}

type authService struct {
	db          *gorm.DB
	profileRepo repository.ProfileRepository
	cfg         *config.Config
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(db *gorm.DB, profileRepo repository.ProfileRepository, cfg *config.Config) AuthService {
	return &authService{
		db:          db,
		profileRepo: profileRepo,
		cfg:         cfg,
	}
}

func authenticationFailed() error {
	return model.NewAppError("AUTHENTICATION_FAILED", "Login or password is incorrect.", "", model.ErrUnauthorized)
}

// Login はログインIDとパスワードを検証し、アクセストークンとリフレッシュトークンを返す
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenPair, error) {
	logger := middleware.GetLogger(ctx).With("login", req.Login)

	profile, err := s.profileRepo.FindByLogin(ctx, s.db, req.Login)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: profile not found")
			return nil, authenticationFailed()
		}
		return nil, internalError(ctx, "Login failed: db error on FindByLogin", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "profile_id", profile.ProfileID.String())
		return nil, authenticationFailed()
	}

	if !profile.IsActive {
		logger.Warn("Login failed: profile not active", "profile_id", profile.ProfileID.String())
		return nil, model.NewAppError("PROFILE_NOT_ACTIVE", "This profile is deactivated.", "", model.ErrForbidden)
	}

	pair, err := s.issueTokens(profile.ProfileID)
	if err != nil {
		return nil, internalError(ctx, "Failed to sign JWT", err)
	}
	logger.Info("Login successful", "profile_id", profile.ProfileID.String())
	return pair, nil
}

// Refresh はリフレッシュトークンを検証して新しいトークンの組を発行する
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	logger := middleware.GetLogger(ctx)

	claims, err := middleware.ParseToken(s.cfg.JWT.SecretKey, refreshToken, model.TokenTypeRefresh)
	if err != nil {
		logger.Warn("Refresh failed: invalid token", "error", err)
		return nil, model.NewAppError("INVALID_TOKEN", "The refresh token is invalid or expired.", "refresh_token", model.ErrUnauthorized)
	}
	profileID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, model.NewAppError("INVALID_TOKEN", "The token subject is malformed.", "refresh_token", model.ErrUnauthorized)
	}

	profile, err := s.profileRepo.FindByID(ctx, s.db, profileID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("INVALID_TOKEN", "The profile of this token no longer exists.", "refresh_token", model.ErrUnauthorized)
		}
		return nil, internalError(ctx, "Refresh failed: db error on FindByID", err)
	}
	if !profile.IsActive {
		return nil, model.NewAppError("PROFILE_NOT_ACTIVE", "This profile is deactivated.", "", model.ErrForbidden)
	}

	pair, err := s.issueTokens(profileID)
	if err != nil {
		return nil, internalError(ctx, "Failed to sign JWT", err)
	}
	return pair, nil
}

func (s *authService) Me(ctx context.Context, profileID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, s.db, profileID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, profileNotFound()
		}
		return nil, internalError(ctx, "Failed to find profile", err)
	}
	return profile, nil
}

func (s *authService) issueTokens(profileID uuid.UUID) (*model.TokenPair, error) {
	now := time.Now()
	access, err := s.sign(profileID, model.TokenTypeAccess, now, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(profileID, model.TokenTypeRefresh, now, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &model.TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "Bearer"}, nil
}

func (s *authService) sign(profileID uuid.UUID, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	if s.cfg.JWT.SecretKey == "" {
		return "", errors.New("jwt secret key is not configured")
	}
	claims := &model.JWTCustomClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWT.Issuer,
			Subject:   profileID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.SecretKey))
}
