//go:generate mockery --name ProfileRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"habit_tracker/internal/middleware"
	"habit_tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *model.Profile) error
	FindByID(ctx context.Context, db *gorm.DB, profileID uuid.UUID) (*model.Profile, error)
	FindByLogin(ctx context.Context, db *gorm.DB, login string) (*model.Profile, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Profile, error)
	Update(ctx context.Context, db *gorm.DB, profileID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, profileID uuid.UUID) error
}

type gormProfileRepository struct{}

func NewGormProfileRepository() ProfileRepository {
	return &gormProfileRepository{}
}

func (r *gormProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *model.Profile) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(profile)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create profile", "error", result.Error, "login", profile.Login)
			return model.ErrConflict
		}
		logger.Error("Error creating profile in DB", "error", result.Error, "login", profile.Login)
		return fmt.Errorf("gormProfileRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProfileRepository) FindByID(ctx context.Context, db *gorm.DB, profileID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	result := db.WithContext(ctx).Where("profile_id = ?", profileID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding profile by ID in DB", "error", result.Error, "profile_id", profileID.String())
		return nil, fmt.Errorf("gormProfileRepository.FindByID: %w", result.Error)
	}
	return &profile, nil
}

func (r *gormProfileRepository) FindByLogin(ctx context.Context, db *gorm.DB, login string) (*model.Profile, error) {
	var profile model.Profile
	result := db.WithContext(ctx).Where("login = ?", login).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			middleware.GetLogger(ctx).Debug("Profile not found by login", "login", login)
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding profile by login in DB", "error", result.Error, "login", login)
		return nil, fmt.Errorf("gormProfileRepository.FindByLogin: %w", result.Error)
	}
	return &profile, nil
}

func (r *gormProfileRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Profile, error) {
	var profiles []*model.Profile
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("gormProfileRepository.FindAll: %w", err)
	}
	return profiles, nil
}

// Update は許可されたカラムだけを含む updates を適用する (カラム名はサービス層で決める)
func (r *gormProfileRepository) Update(ctx context.Context, db *gorm.DB, profileID uuid.UUID, updates map[string]interface{}) error {
	result := db.WithContext(ctx).Model(&model.Profile{}).Where("profile_id = ?", profileID).Updates(updates)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		return fmt.Errorf("gormProfileRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete は物理削除。習慣と実績は外部キーの ON DELETE CASCADE で消える
func (r *gormProfileRepository) Delete(ctx context.Context, db *gorm.DB, profileID uuid.UUID) error {
	result := db.WithContext(ctx).Where("profile_id = ?", profileID).Delete(&model.Profile{})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error deleting profile in DB", "error", result.Error, "profile_id", profileID.String())
		return fmt.Errorf("gormProfileRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
