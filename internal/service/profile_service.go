//go:generate mockery --name ProfileService --output ./mocks --outpkg mocks --structname MockProfileService --filename mock_profile_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"habit_tracker/internal/middleware"
	"habit_tracker/internal/model"
	"habit_tracker/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ProfileService interface {
	CreateProfile(ctx context.Context, req *model.CreateProfileRequest) (*model.Profile, error)
	ListProfiles(ctx context.Context) ([]*model.Profile, error)
	// GetProfile/UpdateProfile/DeleteProfile は本人のプロフィールだけを対象にする
	GetProfile(ctx context.Context, callerID, profileID uuid.UUID) (*model.Profile, error)
	UpdateProfile(ctx context.Context, callerID, profileID uuid.UUID, req *model.UpdateProfileRequest) (*model.Profile, error)
	DeleteProfile(ctx context.Context, callerID, profileID uuid.UUID) error
}

type profileService struct {
	db          *gorm.DB
	profileRepo repository.ProfileRepository
}

func NewProfileService(db *gorm.DB, profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{db: db, profileRepo: profileRepo}
}

func hashPassword(ctx context.Context, password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", internalError(ctx, "Failed to hash password", err)
	}
	return string(hashed), nil
}

func profileNotFound() error {
	return model.NewAppError("PROFILE_NOT_FOUND", "Profile not found.", "profile_id", model.ErrNotFound)
}

func checkOwner(callerID, profileID uuid.UUID) error {
	if callerID != profileID {
		return model.NewAppError("FORBIDDEN", "You can only access your own profile.", "profile_id", model.ErrForbidden)
	}
	return nil
}

func (s *profileService) CreateProfile(ctx context.Context, req *model.CreateProfileRequest) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx)
	login := strings.TrimSpace(req.Login)

	var created *model.Profile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.profileRepo.FindByLogin(ctx, tx, login)
		if err == nil {
			logger.Warn("Login already exists", "login", login)
			return model.NewAppError("DUPLICATE_LOGIN", "This login is already taken.", "login", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			return internalError(ctx, "Failed to check login existence", err)
		}

		hashed, err := hashPassword(ctx, req.Password)
		if err != nil {
			return err
		}
		profile := &model.Profile{
			ProfileID:    uuid.New(),
			Login:        login,
			Email:        req.Email,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			PasswordHash: hashed,
			IsActive:     true,
		}
		if err := s.profileRepo.Create(ctx, tx, profile); err != nil {
			if errors.Is(err, model.ErrConflict) {
				// 同時に同じ login / email で作成された
				return model.NewAppError("DUPLICATE_ENTRY", "The login or email is already in use.", "login,email", model.ErrConflict)
			}
			return internalError(ctx, "Failed to create profile", err)
		}
		created = profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Profile created", "profile_id", created.ProfileID.String())
	return created, nil
}

func (s *profileService) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	profiles, err := s.profileRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, internalError(ctx, "Failed to list profiles", err)
	}
	return profiles, nil
}

func (s *profileService) GetProfile(ctx context.Context, callerID, profileID uuid.UUID) (*model.Profile, error) {
	if err := checkOwner(callerID, profileID); err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.FindByID(ctx, s.db, profileID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, profileNotFound()
		}
		return nil, internalError(ctx, "Failed to find profile", err)
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, callerID, profileID uuid.UUID, req *model.UpdateProfileRequest) (*model.Profile, error) {
	if err := checkOwner(callerID, profileID); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Password != nil {
		hashed, err := hashPassword(ctx, *req.Password)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = hashed
	}

	var updated *model.Profile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := s.profileRepo.Update(ctx, tx, profileID, updates); err != nil {
				switch {
				case errors.Is(err, model.ErrNotFound):
					return profileNotFound()
				case errors.Is(err, model.ErrConflict):
					return model.NewAppError("DUPLICATE_EMAIL", "This email is already in use.", "email", model.ErrConflict)
				}
				return internalError(ctx, "Failed to update profile", err)
			}
		}
		profile, err := s.profileRepo.FindByID(ctx, tx, profileID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return profileNotFound()
			}
			return internalError(ctx, "Failed to reload profile", err)
		}
		updated = profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, callerID, profileID uuid.UUID) error {
	if err := checkOwner(callerID, profileID); err != nil {
		return err
	}
	if err := s.profileRepo.Delete(ctx, s.db, profileID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return profileNotFound()
		}
		return internalError(ctx, "Failed to delete profile", err)
	}
	middleware.GetLogger(ctx).Info("Profile deleted", "profile_id", profileID.String())
	return nil
}
