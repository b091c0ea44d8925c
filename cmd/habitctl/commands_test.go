package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"habit_tracker/internal/config"
	"habit_tracker/internal/model"
	"habit_tracker/internal/repository"
	"habit_tracker/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// useSQLite は openDB を一時ファイルの SQLite に差し替える
func useSQLite(t *testing.T) string {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "habit.db") + "?_foreign_keys=on"
	orig := openDB
	openDB = func(_ *config.Config, logger *slog.Logger) (*gorm.DB, error) {
		return repository.Open(sqlite.Open(dsn), logger)
	}
	t.Cleanup(func() { openDB = orig })
	return dsn
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, config.AppName+" "+config.AppVersion+"\n", out)
}

func TestMigrateAndRematerialize(t *testing.T) {
	dsn := useSQLite(t)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "migration completed")

	// 習慣を作り、台帳を消しておく
	db, err := repository.Open(sqlite.Open(dsn), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	profile := &model.Profile{ProfileID: uuid.New(), Login: "alice", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(profile).Error)
	cfg := &config.Config{}
	cfg.App.ScheduleUpdatePolicy = config.PolicyReconcile
	habits := service.NewHabitService(db, repository.NewGormHabitRepository(), repository.NewGormInstanceRepository(), cfg)
	habit, err := habits.CreateHabit(context.Background(), profile.ProfileID, &model.CreateHabitRequest{
		Name: "Stretch", DurationDays: 7, DaysOfWeek: []int{0, 2, 4}, StartDate: "2024-01-01",
	})
	require.NoError(t, err)
	require.NoError(t, db.Where("habit_id = ?", habit.HabitID).Delete(&model.HabitInstance{}).Error)

	out, err = run(t, "rematerialize", "--habit", habit.HabitID.String())
	require.NoError(t, err)
	assert.Equal(t, "habits: 1, skipped: 0, created: 3\n", out)

	out, err = run(t, "rematerialize")
	require.NoError(t, err)
	assert.Equal(t, "habits: 1, skipped: 0, created: 0\n", out)

	_, err = run(t, "rematerialize", "--habit", "not-a-uuid")
	assert.Error(t, err)

	_, err = run(t, "rematerialize", "--habit", uuid.NewString())
	assert.ErrorIs(t, err, model.ErrNotFound)
}
