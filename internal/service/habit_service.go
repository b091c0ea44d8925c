//go:generate mockery --name HabitService --output ./mocks --outpkg mocks --structname MockHabitService --filename mock_habit_service.go
package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"habit_tracker/internal/config"
	"habit_tracker/internal/middleware"
	"habit_tracker/internal/model"
	"habit_tracker/internal/repository"
	"habit_tracker/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 曜日・期間の変更で不要になった pending 実績に付ける理由
const reasonScheduleChanged = "schedule changed"

type HabitService interface {
	CreateHabit(ctx context.Context, profileID uuid.UUID, req *model.CreateHabitRequest) (*model.HabitWithStatus, error)
	GetHabit(ctx context.Context, profileID, habitID uuid.UUID) (*model.HabitWithStatus, error)
	ListHabits(ctx context.Context, profileID uuid.UUID, isActive *bool) ([]*model.HabitWithStatus, error)
	UpdateHabit(ctx context.Context, profileID, habitID uuid.UUID, patch model.HabitPatch) (*model.HabitWithStatus, error)
	DeleteHabit(ctx context.Context, profileID, habitID uuid.UUID) error
	// HabitsForDate はその日が対象曜日に当たる習慣と、その日の実績の状態 (無ければ pending)
	HabitsForDate(ctx context.Context, profileID uuid.UUID, date time.Time) ([]*model.HabitWithStatus, error)
	MarkInstance(ctx context.Context, profileID, habitID uuid.UUID, date time.Time, status model.HabitStatus, reason *string) (*model.HabitWithStatus, *model.HabitInstance, error)
	ListInstances(ctx context.Context, profileID, habitID uuid.UUID, from, to *time.Time) ([]*model.HabitInstance, error)
}

type habitService struct {
	db        *gorm.DB
	habitRepo repository.HabitRepository
	instRepo  repository.InstanceRepository
	cfg       *config.Config
}

func NewHabitService(db *gorm.DB, habitRepo repository.HabitRepository, instRepo repository.InstanceRepository, cfg *config.Config) HabitService {
	return &habitService{
		db:        db,
		habitRepo: habitRepo,
		instRepo:  instRepo,
		cfg:       cfg,
	}
}

func ruleOf(h *model.Habit) schedule.Rule {
	return schedule.Rule{
		StartDate:    h.StartDate,
		DurationDays: h.DurationDays,
		DaysOfWeek:   []int(h.DaysOfWeek),
	}
}

// scheduledOn は day が習慣の期間内かつ対象曜日かどうか。end_date が NULL の習慣は無期限
func scheduledOn(h *model.Habit, day time.Time) bool {
	day = schedule.Day(day)
	if day.Before(schedule.Day(h.StartDate)) {
		return false
	}
	if h.EndDate != nil && day.After(schedule.Day(*h.EndDate)) {
		return false
	}
	return slices.Contains([]int(h.DaysOfWeek), schedule.Weekday(day))
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", model.NewAppError("VALIDATION_ERROR", "name must not be blank", "name", model.ErrInvalidInput)
	}
	return trimmed, nil
}

// normalizeDescription は空白だけの説明を nil (NULL) にする
func normalizeDescription(d *string) *string {
	if d == nil || strings.TrimSpace(*d) == "" {
		return nil
	}
	return d
}

func (s *habitService) CreateHabit(ctx context.Context, profileID uuid.UUID, req *model.CreateHabitRequest) (*model.HabitWithStatus, error) {
	logger := middleware.GetLogger(ctx)

	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}
	start, err := model.ParseDate(req.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	rule := schedule.Rule{StartDate: start, DurationDays: req.DurationDays, DaysOfWeek: req.DaysOfWeek}
	if err := rule.Validate(); err != nil {
		return nil, ruleValidationError(err)
	}
	rule.DaysOfWeek = schedule.NormalizeWeekdays(rule.DaysOfWeek)

	dates, err := schedule.Expand(rule)
	if err != nil {
		return nil, ruleValidationError(err)
	}

	end := rule.EndDate()
	habit := &model.Habit{
		HabitID:      uuid.New(),
		ProfileID:    profileID,
		Name:         name,
		Description:  normalizeDescription(req.Description),
		DurationDays: rule.DurationDays,
		DaysOfWeek:   model.Weekdays(rule.DaysOfWeek),
		StartDate:    schedule.Day(start),
		EndDate:      &end,
		IsActive:     true,
	}

	// 習慣と実績はまとめてコミットする。実績の作成に失敗したら習慣も残さない
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.habitRepo.Create(ctx, tx, habit); err != nil {
			return internalError(ctx, "Failed to create habit", err)
		}
		if len(dates) == 0 {
			logger.Warn("Habit rule produced no instances", "habit_id", habit.HabitID.String(),
				"start_date", habit.StartDate.Format(model.DateLayout), "duration_days", habit.DurationDays, "days_of_week", rule.DaysOfWeek)
			return nil
		}
		if _, err := s.instRepo.BulkCreate(ctx, tx, habit.HabitID, dates); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return ledgerConflict(ctx, habit.HabitID, err)
			}
			return internalError(ctx, "Failed to materialize habit instances", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	instancesMaterialized.WithLabelValues("create").Add(float64(len(dates)))
	logger.Info("Habit created", "habit_id", habit.HabitID.String(), "instances", len(dates))

	result := &model.HabitWithStatus{Habit: *habit}
	if len(dates) > 0 {
		pending := model.StatusPending
		result.HabitStatus = &pending
	}
	return result, nil
}

// withBadge は最新の実績の状態を習慣に添える
func (s *habitService) withBadge(ctx context.Context, db *gorm.DB, habit *model.Habit) (*model.HabitWithStatus, error) {
	latest, err := s.instRepo.LatestFor(ctx, db, habit.HabitID)
	if err != nil {
		return nil, internalError(ctx, "Failed to read latest habit instance", err)
	}
	result := &model.HabitWithStatus{Habit: *habit}
	if latest != nil {
		status := latest.Status
		result.HabitStatus = &status
	}
	return result, nil
}

func (s *habitService) findOwned(ctx context.Context, db *gorm.DB, profileID, habitID uuid.UUID) (*model.Habit, error) {
	habit, err := s.habitRepo.FindByID(ctx, db, profileID, habitID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, habitNotFound()
		}
		return nil, internalError(ctx, "Failed to find habit", err)
	}
	return habit, nil
}

func (s *habitService) GetHabit(ctx context.Context, profileID, habitID uuid.UUID) (*model.HabitWithStatus, error) {
	habit, err := s.findOwned(ctx, s.db, profileID, habitID)
	if err != nil {
		return nil, err
	}
	return s.withBadge(ctx, s.db, habit)
}

func (s *habitService) ListHabits(ctx context.Context, profileID uuid.UUID, isActive *bool) ([]*model.HabitWithStatus, error) {
	habits, err := s.habitRepo.FindByProfile(ctx, s.db, profileID, isActive)
	if err != nil {
		return nil, internalError(ctx, "Failed to list habits", err)
	}
	results := make([]*model.HabitWithStatus, 0, len(habits))
	for _, h := range habits {
		withStatus, err := s.withBadge(ctx, s.db, h)
		if err != nil {
			return nil, err
		}
		results = append(results, withStatus)
	}
	return results, nil
}

func (s *habitService) UpdateHabit(ctx context.Context, profileID, habitID uuid.UUID, patch model.HabitPatch) (*model.HabitWithStatus, error) {
	logger := middleware.GetLogger(ctx)

	if patch.IsEmpty() {
		return s.GetHabit(ctx, profileID, habitID)
	}

	var (
		result          *model.HabitWithStatus
		scheduleChanged bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		habit, err := s.findOwned(ctx, tx, profileID, habitID)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if patch.Name != nil {
			name, err := validateName(*patch.Name)
			if err != nil {
				return err
			}
			updates["name"] = name
		}
		if patch.Description != nil {
			if d := normalizeDescription(patch.Description); d != nil {
				updates["description"] = *d
			} else {
				updates["description"] = nil
			}
		}
		if patch.IsActive != nil {
			updates["is_active"] = *patch.IsActive
		}

		var newRule *schedule.Rule
		if patch.ChangesSchedule() {
			rule, changed, err := applySchedulePatch(habit, patch)
			if err != nil {
				return err
			}
			if changed {
				if err := s.checkSchedulePolicy(ctx, tx, habit.HabitID); err != nil {
					return err
				}
				end := rule.EndDate()
				updates["start_date"] = schedule.Day(rule.StartDate)
				updates["duration_days"] = rule.DurationDays
				updates["days_of_week"] = model.Weekdays(rule.DaysOfWeek)
				updates["end_date"] = end
				newRule = &rule
				scheduleChanged = true
			}
		}

		if len(updates) > 0 {
			if err := s.habitRepo.Update(ctx, tx, profileID, habitID, updates); err != nil {
				return passOrInternal(ctx, "Failed to update habit", err)
			}
		}
		if newRule != nil {
			if err := s.reconcile(ctx, tx, habitID, *newRule); err != nil {
				return err
			}
		}

		updated, err := s.findOwned(ctx, tx, profileID, habitID)
		if err != nil {
			return err
		}
		result, err = s.withBadge(ctx, tx, updated)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Habit updated", "habit_id", habitID.String(), "schedule_changed", scheduleChanged)
	return result, nil
}

// applySchedulePatch は現在のルールにパッチを重ねて検証する。changed は実際にルールが変わったかどうか
func applySchedulePatch(habit *model.Habit, patch model.HabitPatch) (schedule.Rule, bool, error) {
	current := ruleOf(habit)
	rule := current
	if patch.StartDate != nil {
		rule.StartDate = *patch.StartDate
	}
	if patch.DurationDays != nil {
		rule.DurationDays = *patch.DurationDays
	}
	if patch.DaysOfWeek != nil {
		rule.DaysOfWeek = patch.DaysOfWeek
	}
	if err := rule.Validate(); err != nil {
		return schedule.Rule{}, false, ruleValidationError(err)
	}
	rule.StartDate = schedule.Day(rule.StartDate)
	rule.DaysOfWeek = schedule.NormalizeWeekdays(rule.DaysOfWeek)

	changed := !rule.StartDate.Equal(schedule.Day(current.StartDate)) ||
		rule.DurationDays != current.DurationDays ||
		!slices.Equal(rule.DaysOfWeek, schedule.NormalizeWeekdays(current.DaysOfWeek)) ||
		habit.EndDate == nil
	return rule, changed, nil
}

func (s *habitService) checkSchedulePolicy(ctx context.Context, tx *gorm.DB, habitID uuid.UUID) error {
	if s.cfg.App.ScheduleUpdatePolicy != config.PolicyReject {
		return nil
	}
	count, err := s.instRepo.CountByHabit(ctx, tx, habitID)
	if err != nil {
		return internalError(ctx, "Failed to count habit instances", err)
	}
	if count > 0 {
		return model.NewAppError("SCHEDULE_LOCKED", "The schedule of a habit cannot be changed once instances exist.", "days_of_week", model.ErrInvalidInput)
	}
	return nil
}

// reconcile は新しいルールに合わせて台帳を揃える。
// 足りない日は pending を作り、ルールから外れた pending は deleted にする。done/skipped は残す
func (s *habitService) reconcile(ctx context.Context, tx *gorm.DB, habitID uuid.UUID, rule schedule.Rule) error {
	logger := middleware.GetLogger(ctx)

	dates, err := schedule.Expand(rule)
	if err != nil {
		return ruleValidationError(err)
	}
	existing, err := s.instRepo.ListByHabit(ctx, tx, habitID, nil, nil)
	if err != nil {
		return internalError(ctx, "Failed to list habit instances", err)
	}

	var stale []time.Time
	for _, inst := range existing {
		inRule := rule.Contains(inst.Date)
		switch {
		case !inRule && inst.Status == model.StatusPending:
			stale = append(stale, inst.Date)
		case inRule && inst.Status == model.StatusDeleted && inst.Reason != nil && *inst.Reason == reasonScheduleChanged:
			// 以前の変更で外した日がルールに戻った
			if _, err := s.instRepo.Mark(ctx, tx, habitID, inst.Date, model.StatusPending, nil); err != nil {
				return internalError(ctx, "Failed to restore habit instance", err)
			}
		}
	}

	created, err := s.instRepo.EnsurePending(ctx, tx, habitID, dates)
	if err != nil {
		return internalError(ctx, "Failed to materialize habit instances", err)
	}
	deleted, err := s.instRepo.SoftDeletePending(ctx, tx, habitID, stale, reasonScheduleChanged)
	if err != nil {
		return internalError(ctx, "Failed to soft-delete stale habit instances", err)
	}

	instancesMaterialized.WithLabelValues("reconcile").Add(float64(created))
	instancesSoftDeleted.Add(float64(deleted))
	logger.Info("Habit instances reconciled", "habit_id", habitID.String(), "created", created, "soft_deleted", deleted)
	return nil
}

func (s *habitService) DeleteHabit(ctx context.Context, profileID, habitID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.habitRepo.Delete(ctx, tx, profileID, habitID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return habitNotFound()
			}
			return internalError(ctx, "Failed to delete habit", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	middleware.GetLogger(ctx).Info("Habit deleted", "habit_id", habitID.String())
	return nil
}

func (s *habitService) HabitsForDate(ctx context.Context, profileID uuid.UUID, date time.Time) ([]*model.HabitWithStatus, error) {
	day := schedule.Day(date)
	habits, err := s.habitRepo.FindActiveOn(ctx, s.db, profileID, day)
	if err != nil {
		return nil, internalError(ctx, "Failed to find habits for date", err)
	}

	results := make([]*model.HabitWithStatus, 0, len(habits))
	for _, h := range habits {
		if !scheduledOn(h, day) {
			continue
		}
		inst, err := s.instRepo.ForDate(ctx, s.db, h.HabitID, day)
		if err != nil {
			return nil, internalError(ctx, "Failed to read habit instance", err)
		}
		status := model.StatusPending
		if inst != nil {
			status = inst.Status
		}
		results = append(results, &model.HabitWithStatus{Habit: *h, HabitStatus: &status})
	}
	return results, nil
}

func (s *habitService) MarkInstance(ctx context.Context, profileID, habitID uuid.UUID, date time.Time, status model.HabitStatus, reason *string) (*model.HabitWithStatus, *model.HabitInstance, error) {
	logger := middleware.GetLogger(ctx)
	if !status.Valid() {
		return nil, nil, model.NewAppError("VALIDATION_ERROR", "status must be one of [pending done skipped deleted]", "status", model.ErrInvalidInput)
	}
	day := schedule.Day(date)

	var (
		habit    *model.HabitWithStatus
		instance *model.HabitInstance
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned, err := s.findOwned(ctx, tx, profileID, habitID)
		if err != nil {
			return err
		}

		instance, err = s.instRepo.Mark(ctx, tx, habitID, day, status, reason)
		if err != nil {
			return internalError(ctx, "Failed to mark habit instance", err)
		}

		if status == model.StatusSkipped && s.cfg.App.SkipForward {
			next := day.AddDate(0, 0, 1)
			created, err := s.instRepo.EnsurePending(ctx, tx, habitID, []time.Time{next})
			if err != nil {
				return internalError(ctx, "Failed to create next-day instance", err)
			}
			if created > 0 {
				instancesMaterialized.WithLabelValues("skip_forward").Add(float64(created))
				logger.Info("Skip forwarded to next day", "habit_id", habitID.String(), "date", next.Format(model.DateLayout))
			}
		}

		habit, err = s.withBadge(ctx, tx, owned)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	instancesMarked.WithLabelValues(string(status)).Inc()
	logger.Info("Habit instance marked", "habit_id", habitID.String(), "date", day.Format(model.DateLayout), "status", status)
	return habit, instance, nil
}

func (s *habitService) ListInstances(ctx context.Context, profileID, habitID uuid.UUID, from, to *time.Time) ([]*model.HabitInstance, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, model.NewAppError("VALIDATION_ERROR", "to must not be before from", "to", model.ErrInvalidInput)
	}
	if _, err := s.findOwned(ctx, s.db, profileID, habitID); err != nil {
		return nil, err
	}
	instances, err := s.instRepo.ListByHabit(ctx, s.db, habitID, from, to)
	if err != nil {
		return nil, internalError(ctx, "Failed to list habit instances", err)
	}
	return instances, nil
}
