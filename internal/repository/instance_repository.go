//go:generate mockery --name InstanceRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"habit_tracker/internal/middleware"
	"habit_tracker/internal/model"
	"habit_tracker/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const instanceBatchSize = 100

// InstanceRepository は習慣の日別実績(台帳)を扱う。(habit_id, date) につき高々1行
type InstanceRepository interface {
	// BulkCreate は dates の各日に pending の実績を作る。既存の行と重複すれば ErrConflict
	BulkCreate(ctx context.Context, tx *gorm.DB, habitID uuid.UUID, dates []time.Time) ([]*model.HabitInstance, error)
	// Mark は実績があれば状態を更新し、無ければ作成する
	Mark(ctx context.Context, tx *gorm.DB, habitID uuid.UUID, date time.Time, status model.HabitStatus, reason *string) (*model.HabitInstance, error)
	// EnsurePending は実績が無い日にだけ pending を作る。作成件数を返す
	EnsurePending(ctx context.Context, tx *gorm.DB, habitID uuid.UUID, dates []time.Time) (int64, error)
	// SoftDeletePending は dates のうち pending の実績を deleted にする。更新件数を返す
	SoftDeletePending(ctx context.Context, tx *gorm.DB, habitID uuid.UUID, dates []time.Time, reason string) (int64, error)
	// LatestFor は日付が最大の実績。無ければ (nil, nil)
	LatestFor(ctx context.Context, db *gorm.DB, habitID uuid.UUID) (*model.HabitInstance, error)
	// ForDate は指定日の実績。無ければ (nil, nil)
	ForDate(ctx context.Context, db *gorm.DB, habitID uuid.UUID, date time.Time) (*model.HabitInstance, error)
	ListByHabit(ctx context.Context, db *gorm.DB, habitID uuid.UUID, from, to *time.Time) ([]*model.HabitInstance, error)
	ListForHabitsInRange(ctx context.Context, db *gorm.DB, habitIDs []uuid.UUID, from, to time.Time) ([]*model.HabitInstance, error)
	CountByHabit(ctx context.Context, db *gorm.DB, habitID uuid.UUID) (int64, error)
}

type gormInstanceRepository struct{}

func NewGormInstanceRepository() InstanceRepository {
	return &gormInstanceRepository{}
}

func newPendingInstances(habitID uuid.UUID, dates []time.Time) []*model.HabitInstance {
	instances := make([]*model.HabitInstance, 0, len(dates))
	for _, d := range dates {
		instances = append(instances, &model.HabitInstance{
			InstanceID: uuid.New(),
			HabitID:    habitID,
			Date:       schedule.Day(d),
			Status:     model.StatusPending,
		})
	}
	return instances
}

func (r *gormInstanceRepository) BulkCreate(ctx context.Context, tx *gorm.DB, habitID uuid.UUID, dates []time.Time) ([]*model.HabitInstance, error) {
	if len(dates) == 0 {
		return []*model.HabitInstance{}, nil
	}
	logger := middleware.GetLogger(ctx)

	instances := newPendingInstances(habitID, dates)
	result := tx.WithContext(ctx).CreateInBatches(instances, instanceBatchSize)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			logger.Error("Duplicate (habit_id, date) on bulk instance creation", "error", result.Error, "habit_id", habitID.String())
			return nil, model.ErrConflict
		}
		logger.Error("Error bulk creating instances in DB", "error", result.Error, "habit_id", habitID.String(), "count", len(instances))
		return nil, fmt.Errorf("gormInstanceRepository.BulkCreate: %w", result.Error)
	}
	return instances, nil
}

func (r *gormInstanceRepository) Mark(ctx context.Context, tx *gorm.DB, habitID uuid.UUID, date time.Time, status model.HabitStatus, reason *string) (*model.HabitInstance, error) {
	logger := middleware.GetLogger(ctx)
	day := schedule.Day(date)

	existing, err := r.ForDate(ctx, tx, habitID, day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, r.applyStatus(ctx, tx, existing, status, reason)
	}

	instance := &model.HabitInstance{
		InstanceID: uuid.New(),
		HabitID:    habitID,
		Date:       day,
		Status:     status,
		Reason:     reason,
	}
	// セーブポイント内で INSERT する。競合で失敗しても外側のトランザクションは継続できる
	err = tx.WithContext(ctx).Transaction(func(sp *gorm.DB) error {
		return sp.Create(instance).Error
	})
	if err == nil {
		return instance, nil
	}
	if !IsUniqueViolation(err) {
		logger.Error("Error creating instance in DB", "error", err, "habit_id", habitID.String(), "date", day.Format(model.DateLayout))
		return nil, fmt.Errorf("gormInstanceRepository.Mark: %w", err)
	}

	// 同じ (habit_id, date) を別のリクエストが先に作成した。更新に切り替える
	logger.Info("Concurrent insert detected on mark, falling back to update", "habit_id", habitID.String(), "date", day.Format(model.DateLayout))
	existing, err = r.ForDate(ctx, tx, habitID, day)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("gormInstanceRepository.Mark: instance vanished after conflict: %w", model.ErrConflict)
	}
	return existing, r.applyStatus(ctx, tx, existing, status, reason)
}

// applyStatus は状態と理由を上書きする。値が同じでも updated_at は進める
func (r *gormInstanceRepository) applyStatus(ctx context.Context, tx *gorm.DB, instance *model.HabitInstance, status model.HabitStatus, reason *string) error {
	now := time.Now().UTC()
	result := tx.WithContext(ctx).
		Model(&model.HabitInstance{}).
		Where("instance_id = ?", instance.InstanceID).
		Updates(map[string]interface{}{
			"status":     status,
			"reason":     reason,
			"updated_at": now,
		})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating instance status in DB", "error", result.Error, "instance_id", instance.InstanceID.String())
		return fmt.Errorf("gormInstanceRepository.applyStatus: %w", result.Error)
	}
	instance.Status = status
	instance.Reason = reason
	instance.UpdatedAt = now
	return nil
}

func (r *gormInstanceRepository) EnsurePending(ctx context.Context, tx *gorm.DB, habitID uuid.UUID, dates []time.Time) (int64, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	instances := newPendingInstances(habitID, dates)
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "habit_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		CreateInBatches(instances, instanceBatchSize)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error ensuring pending instances in DB", "error", result.Error, "habit_id", habitID.String())
		return 0, fmt.Errorf("gormInstanceRepository.EnsurePending: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormInstanceRepository) SoftDeletePending(ctx context.Context, tx *gorm.DB, habitID uuid.UUID, dates []time.Time, reason string) (int64, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	days := make([]time.Time, len(dates))
	for i, d := range dates {
		days[i] = schedule.Day(d)
	}
	result := tx.WithContext(ctx).
		Model(&model.HabitInstance{}).
		Where("habit_id = ? AND status = ? AND date IN ?", habitID, model.StatusPending, days).
		Updates(map[string]interface{}{
			"status": model.StatusDeleted,
			"reason": reason,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("gormInstanceRepository.SoftDeletePending: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormInstanceRepository) LatestFor(ctx context.Context, db *gorm.DB, habitID uuid.UUID) (*model.HabitInstance, error) {
	var instance model.HabitInstance
	result := db.WithContext(ctx).
		Where("habit_id = ?", habitID).
		Order("date DESC").
		Limit(1).
		Find(&instance)
	if result.Error != nil {
		return nil, fmt.Errorf("gormInstanceRepository.LatestFor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &instance, nil
}

func (r *gormInstanceRepository) ForDate(ctx context.Context, db *gorm.DB, habitID uuid.UUID, date time.Time) (*model.HabitInstance, error) {
	var instance model.HabitInstance
	result := db.WithContext(ctx).
		Where("habit_id = ? AND date = ?", habitID, schedule.Day(date)).
		Limit(1).
		Find(&instance)
	if result.Error != nil {
		return nil, fmt.Errorf("gormInstanceRepository.ForDate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &instance, nil
}

func (r *gormInstanceRepository) ListByHabit(ctx context.Context, db *gorm.DB, habitID uuid.UUID, from, to *time.Time) ([]*model.HabitInstance, error) {
	var instances []*model.HabitInstance
	query := db.WithContext(ctx).Where("habit_id = ?", habitID)
	if from != nil {
		query = query.Where("date >= ?", schedule.Day(*from))
	}
	if to != nil {
		query = query.Where("date <= ?", schedule.Day(*to))
	}
	if err := query.Order("date ASC").Find(&instances).Error; err != nil {
		return nil, fmt.Errorf("gormInstanceRepository.ListByHabit: %w", err)
	}
	return instances, nil
}

func (r *gormInstanceRepository) ListForHabitsInRange(ctx context.Context, db *gorm.DB, habitIDs []uuid.UUID, from, to time.Time) ([]*model.HabitInstance, error) {
	if len(habitIDs) == 0 {
		return []*model.HabitInstance{}, nil
	}
	var instances []*model.HabitInstance
	err := db.WithContext(ctx).
		Where("habit_id IN ? AND date >= ? AND date <= ?", habitIDs, schedule.Day(from), schedule.Day(to)).
		Order("date ASC").
		Find(&instances).Error
	if err != nil {
		return nil, fmt.Errorf("gormInstanceRepository.ListForHabitsInRange: %w", err)
	}
	return instances, nil
}

func (r *gormInstanceRepository) CountByHabit(ctx context.Context, db *gorm.DB, habitID uuid.UUID) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.HabitInstance{}).Where("habit_id = ?", habitID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("gormInstanceRepository.CountByHabit: %w", err)
	}
	return count, nil
}
