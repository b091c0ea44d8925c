package service

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"habit_tracker/internal/config"
	"habit_tracker/internal/model"
	"habit_tracker/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB はテストごとに独立したインメモリSQLite (外部キー有効・マイグレーション済み) を返す
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := repository.Open(sqlite.Open(dsn), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.AutoMigrate(db))
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.ScheduleUpdatePolicy = config.PolicyReconcile
	cfg.App.MaxCalendarDays = config.DefaultMaxCalendarDays
	cfg.App.RematerializeWorkers = 2
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.Issuer = config.AppName
	cfg.JWT.AccessTokenTTL = config.DefaultAccessTokenTTL
	cfg.JWT.RefreshTokenTTL = config.DefaultRefreshTokenTTL
	return cfg
}

func day(s string) time.Time {
	d, err := time.ParseInLocation(model.DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func createProfileRow(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	p := &model.Profile{ProfileID: uuid.New(), Login: "user-" + uuid.NewString()[:8], PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(p).Error)
	return p.ProfileID
}

// newHabitStack は本物のリポジトリで HabitService と StatsService を組み立てる
func newHabitStack(t *testing.T, cfg *config.Config) (*gorm.DB, HabitService, StatsService) {
	t.Helper()
	db := setupTestDB(t)
	habitRepo := repository.NewGormHabitRepository()
	instRepo := repository.NewGormInstanceRepository()
	return db, NewHabitService(db, habitRepo, instRepo, cfg), NewStatsService(db, habitRepo, instRepo, cfg)
}

func ptr[T any](v T) *T {
	return &v
}
