package service

import (
	"context"
	"errors"

	"habit_tracker/internal/config"
	"habit_tracker/internal/middleware"
	"habit_tracker/internal/model"
	"habit_tracker/internal/repository"
	"habit_tracker/internal/schedule"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// RepairReport は再展開の結果
type RepairReport struct {
	Habits  int   // 対象にした習慣の数
	Skipped int   // ルールが不正で展開できなかった習慣の数
	Created int64 // 新しく作った pending 実績の数
}

// RepairService はルールから台帳を作り直す運用向けの処理
type RepairService interface {
	// Rematerialize はルールにあるのに実績が無い日へ pending を作る。既存の実績には触れない。
	// habitID が nil なら全ての習慣が対象
	Rematerialize(ctx context.Context, habitID *uuid.UUID) (*RepairReport, error)
}

type repairService struct {
	db        *gorm.DB
	habitRepo repository.HabitRepository
	instRepo  repository.InstanceRepository
	cfg       *config.Config
}

func NewRepairService(db *gorm.DB, habitRepo repository.HabitRepository, instRepo repository.InstanceRepository, cfg *config.Config) RepairService {
	return &repairService{db: db, habitRepo: habitRepo, instRepo: instRepo, cfg: cfg}
}

type repairResult struct {
	created int64
	skipped bool
}

func (s *repairService) Rematerialize(ctx context.Context, habitID *uuid.UUID) (*RepairReport, error) {
	logger := middleware.GetLogger(ctx)

	var habits []*model.Habit
	if habitID != nil {
		h, err := s.habitRepo.FindByHabitID(ctx, s.db, *habitID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, habitNotFound()
			}
			return nil, internalError(ctx, "Failed to load habit for rematerialization", err)
		}
		habits = []*model.Habit{h}
	} else {
		all, err := s.habitRepo.FindAll(ctx, s.db)
		if err != nil {
			return nil, internalError(ctx, "Failed to list habits for rematerialization", err)
		}
		habits = all
	}

	results := make([]repairResult, len(habits))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.cfg.App.RematerializeWorkers, 1))

	for i, h := range habits {
		i, h := i, h
		g.Go(func() error {
			dates, err := schedule.Expand(ruleOf(h))
			if err != nil {
				logger.Warn("Skipping habit with invalid rule", "habit_id", h.HabitID.String(), "error", err)
				results[i].skipped = true
				return nil
			}
			var created int64
			err = s.db.WithContext(gCtx).Transaction(func(tx *gorm.DB) error {
				n, err := s.instRepo.EnsurePending(gCtx, tx, h.HabitID, dates)
				created = n
				return err
			})
			if err != nil {
				return err
			}
			results[i].created = created
			if created > 0 {
				logger.Info("Missing instances materialized", "habit_id", h.HabitID.String(), "created", created)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, internalError(ctx, "Rematerialization failed", err)
	}

	report := &RepairReport{Habits: len(habits)}
	for _, r := range results {
		report.Created += r.created
		if r.skipped {
			report.Skipped++
		}
	}
	instancesMaterialized.WithLabelValues("repair").Add(float64(report.Created))
	logger.Info("Rematerialization finished", "habits", report.Habits, "skipped", report.Skipped, "created", report.Created)
	return report, nil
}
