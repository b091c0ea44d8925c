//go:generate mockery --name HabitRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"habit_tracker/internal/middleware"
	"habit_tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HabitRepository interface {
	Create(ctx context.Context, tx *gorm.DB, habit *model.Habit) error
	// FindByID はプロフィールで絞り込む。他人の習慣は ErrNotFound
	FindByID(ctx context.Context, db *gorm.DB, profileID, habitID uuid.UUID) (*model.Habit, error)
	FindByProfile(ctx context.Context, db *gorm.DB, profileID uuid.UUID, isActive *bool) ([]*model.Habit, error)
	// FindActiveOn は有効かつ [start_date, end_date] に date を含む習慣 (end_date が NULL なら無期限)
	FindActiveOn(ctx context.Context, db *gorm.DB, profileID uuid.UUID, date time.Time) ([]*model.Habit, error)
	// FindActiveInRange は [from, to] と期間が重なる有効な習慣
	FindActiveInRange(ctx context.Context, db *gorm.DB, profileID uuid.UUID, from, to time.Time) ([]*model.Habit, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Habit, error)
	// FindByHabitID はプロフィールを問わずに1件取得する (運用コマンド用)
	FindByHabitID(ctx context.Context, db *gorm.DB, habitID uuid.UUID) (*model.Habit, error)
	Update(ctx context.Context, tx *gorm.DB, profileID, habitID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, profileID, habitID uuid.UUID) error
}

type gormHabitRepository struct{}

func NewGormHabitRepository() HabitRepository {
	return &gormHabitRepository{}
}

func (r *gormHabitRepository) Create(ctx context.Context, tx *gorm.DB, habit *model.Habit) error {
	// Instances を持たせたまま Create すると関連も保存されるため、習慣の行だけを作る
	result := tx.WithContext(ctx).Omit("Instances").Create(habit)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		middleware.GetLogger(ctx).Error("Error creating habit in DB", "error", result.Error, "profile_id", habit.ProfileID.String())
		return fmt.Errorf("gormHabitRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormHabitRepository) FindByID(ctx context.Context, db *gorm.DB, profileID, habitID uuid.UUID) (*model.Habit, error) {
	var habit model.Habit
	result := db.WithContext(ctx).
		Where("profile_id = ? AND habit_id = ?", profileID, habitID).
		First(&habit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding habit by ID in DB", "error", result.Error, "habit_id", habitID.String())
		return nil, fmt.Errorf("gormHabitRepository.FindByID: %w", result.Error)
	}
	return &habit, nil
}

func (r *gormHabitRepository) FindByProfile(ctx context.Context, db *gorm.DB, profileID uuid.UUID, isActive *bool) ([]*model.Habit, error) {
	var habits []*model.Habit
	query := db.WithContext(ctx).Where("profile_id = ?", profileID)
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	if err := query.Order("created_at ASC, habit_id ASC").Find(&habits).Error; err != nil {
		return nil, fmt.Errorf("gormHabitRepository.FindByProfile: %w", err)
	}
	return habits, nil
}

func (r *gormHabitRepository) FindActiveOn(ctx context.Context, db *gorm.DB, profileID uuid.UUID, date time.Time) ([]*model.Habit, error) {
	return r.FindActiveInRange(ctx, db, profileID, date, date)
}

func (r *gormHabitRepository) FindActiveInRange(ctx context.Context, db *gorm.DB, profileID uuid.UUID, from, to time.Time) ([]*model.Habit, error) {
	var habits []*model.Habit
	err := db.WithContext(ctx).
		Where("profile_id = ? AND is_active = ?", profileID, true).
		Where("start_date <= ?", to).
		Where("(end_date IS NULL OR end_date >= ?)", from).
		Order("created_at ASC, habit_id ASC").
		Find(&habits).Error
	if err != nil {
		return nil, fmt.Errorf("gormHabitRepository.FindActiveInRange: %w", err)
	}
	return habits, nil
}

func (r *gormHabitRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Habit, error) {
	var habits []*model.Habit
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&habits).Error; err != nil {
		return nil, fmt.Errorf("gormHabitRepository.FindAll: %w", err)
	}
	return habits, nil
}

func (r *gormHabitRepository) FindByHabitID(ctx context.Context, db *gorm.DB, habitID uuid.UUID) (*model.Habit, error) {
	var habit model.Habit
	result := db.WithContext(ctx).Where("habit_id = ?", habitID).First(&habit)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding habit by habit ID in DB", "error", result.Error, "habit_id", habitID.String())
		return nil, fmt.Errorf("gormHabitRepository.FindByHabitID: %w", result.Error)
	}
	return &habit, nil
}

func (r *gormHabitRepository) Update(ctx context.Context, tx *gorm.DB, profileID, habitID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).
		Model(&model.Habit{}).
		Where("profile_id = ? AND habit_id = ?", profileID, habitID).
		Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating habit in DB", "error", result.Error, "habit_id", habitID.String())
		return fmt.Errorf("gormHabitRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete は習慣を削除する。実績は外部キーの ON DELETE CASCADE で消える
func (r *gormHabitRepository) Delete(ctx context.Context, tx *gorm.DB, profileID, habitID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("profile_id = ? AND habit_id = ?", profileID, habitID).
		Delete(&model.Habit{})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error deleting habit in DB", "error", result.Error, "habit_id", habitID.String())
		return fmt.Errorf("gormHabitRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
