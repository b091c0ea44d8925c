package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"habit_tracker/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB はテストごとに独立したインメモリSQLiteを用意する。外部キー制約を有効にする
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := Open(sqlite.Open(dsn), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func date(s string) time.Time {
	d, err := time.ParseInLocation(model.DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func createTestProfile(t *testing.T, db *gorm.DB) *model.Profile {
	t.Helper()
	p := &model.Profile{
		ProfileID:    uuid.New(),
		Login:        "user-" + uuid.NewString()[:8],
		PasswordHash: "x",
		IsActive:     true,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func createTestHabit(t *testing.T, db *gorm.DB, profileID uuid.UUID, start string, days int, weekdays ...int) *model.Habit {
	t.Helper()
	s := date(start)
	end := s.AddDate(0, 0, days-1)
	h := &model.Habit{
		HabitID:      uuid.New(),
		ProfileID:    profileID,
		Name:         "habit",
		DurationDays: days,
		DaysOfWeek:   model.Weekdays(weekdays),
		StartDate:    s,
		EndDate:      &end,
		IsActive:     true,
	}
	require.NoError(t, NewGormHabitRepository().Create(context.Background(), db, h))
	return h
}
