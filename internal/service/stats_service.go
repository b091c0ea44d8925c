//go:generate mockery --name StatsService --output ./mocks --outpkg mocks --structname MockStatsService --filename mock_stats_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"habit_tracker/internal/config"
	"habit_tracker/internal/model"
	"habit_tracker/internal/repository"
	"habit_tracker/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatsService interface {
	DayStats(ctx context.Context, profileID uuid.UUID, date time.Time) (*model.DayStats, error)
	// CalendarStats は start から end まで1日1件、日付の昇順
	CalendarStats(ctx context.Context, profileID uuid.UUID, start, end time.Time) ([]*model.DayStats, error)
}

type statsService struct {
	db        *gorm.DB
	habitRepo repository.HabitRepository
	instRepo  repository.InstanceRepository
	cfg       *config.Config
}

func NewStatsService(db *gorm.DB, habitRepo repository.HabitRepository, instRepo repository.InstanceRepository, cfg *config.Config) StatsService {
	return &statsService{
		db:        db,
		habitRepo: habitRepo,
		instRepo:  instRepo,
		cfg:       cfg,
	}
}

// IntensityFor は達成率をヒートマップの段階に変換する。各段階の上限は含む
func IntensityFor(percentage float64) model.ColorIntensity {
	switch {
	case percentage <= 0:
		return model.IntensityNone
	case percentage <= 33:
		return model.IntensityLight
	case percentage <= 66:
		return model.IntensityMedium
	default:
		return model.IntensityDark
	}
}

// activeOn は day が習慣の期間に入っているか。曜日は見ない
func activeOn(h *model.Habit, day time.Time) bool {
	if !h.IsActive || day.Before(schedule.Day(h.StartDate)) {
		return false
	}
	return h.EndDate == nil || !day.After(schedule.Day(*h.EndDate))
}

// tally は対象の習慣ごとの状態を数える。実績が無い日と deleted は pending に数える
func tally(day time.Time, statuses []*model.HabitStatus) *model.DayStats {
	stats := &model.DayStats{Date: day, TotalHabits: len(statuses)}
	for _, st := range statuses {
		switch {
		case st == nil:
			stats.PendingHabits++
		case *st == model.StatusDone:
			stats.CompletedHabits++
		case *st == model.StatusSkipped:
			stats.SkippedHabits++
		default:
			stats.PendingHabits++
		}
	}
	if stats.TotalHabits > 0 {
		stats.CompletionPercentage = float64(stats.CompletedHabits) / float64(stats.TotalHabits) * 100
	}
	stats.ColorIntensity = IntensityFor(stats.CompletionPercentage)
	return stats
}

func (s *statsService) DayStats(ctx context.Context, profileID uuid.UUID, date time.Time) (*model.DayStats, error) {
	day := schedule.Day(date)
	habits, err := s.habitRepo.FindActiveOn(ctx, s.db, profileID, day)
	if err != nil {
		return nil, internalError(ctx, "Failed to find habits for day stats", err)
	}

	statuses := make([]*model.HabitStatus, 0, len(habits))
	for _, h := range habits {
		inst, err := s.instRepo.ForDate(ctx, s.db, h.HabitID, day)
		if err != nil {
			return nil, internalError(ctx, "Failed to read habit instance for day stats", err)
		}
		if inst == nil {
			statuses = append(statuses, nil)
			continue
		}
		st := inst.Status
		statuses = append(statuses, &st)
	}
	return tally(day, statuses), nil
}

func (s *statsService) CalendarStats(ctx context.Context, profileID uuid.UUID, start, end time.Time) ([]*model.DayStats, error) {
	days := schedule.Days(start, end)
	if len(days) == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "end_date must not be before start_date", "end_date", model.ErrInvalidInput)
	}
	if limit := s.cfg.App.MaxCalendarDays; limit > 0 && len(days) > limit {
		return nil, model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("date range must not exceed %d days", limit), "end_date", model.ErrInvalidInput)
	}
	from, to := days[0], days[len(days)-1]

	habits, err := s.habitRepo.FindActiveInRange(ctx, s.db, profileID, from, to)
	if err != nil {
		return nil, internalError(ctx, "Failed to find habits for calendar stats", err)
	}
	ids := make([]uuid.UUID, len(habits))
	for i, h := range habits {
		ids[i] = h.HabitID
	}

	// 範囲内の実績は一度に読み、(習慣, 日付) で引く
	instances, err := s.instRepo.ListForHabitsInRange(ctx, s.db, ids, from, to)
	if err != nil {
		return nil, internalError(ctx, "Failed to read habit instances for calendar stats", err)
	}
	type key struct {
		habitID uuid.UUID
		day     string
	}
	byDay := make(map[key]model.HabitStatus, len(instances))
	for _, inst := range instances {
		byDay[key{inst.HabitID, inst.Date.Format(model.DateLayout)}] = inst.Status
	}

	results := make([]*model.DayStats, 0, len(days))
	for _, day := range days {
		var statuses []*model.HabitStatus
		for _, h := range habits {
			if !activeOn(h, day) {
				continue
			}
			if st, ok := byDay[key{h.HabitID, day.Format(model.DateLayout)}]; ok {
				statuses = append(statuses, &st)
			} else {
				statuses = append(statuses, nil)
			}
		}
		results = append(results, tally(day, statuses))
	}
	return results, nil
}
