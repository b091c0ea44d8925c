package service

import (
	"context"
	"testing"
	"time"

	"habit_tracker/internal/model"
	"habit_tracker/internal/repository"
	"habit_tracker/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_repairService_Rematerialize(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	db, habits, _ := newHabitStack(t, cfg)
	instRepo := repository.NewGormInstanceRepository()
	repair := NewRepairService(db, repository.NewGormHabitRepository(), instRepo, cfg)
	profileID := createProfileRow(t, db)

	// 2024-01-01..07 の月水金 = 3件
	run, err := habits.CreateHabit(ctx, profileID, monWedFri())
	require.NoError(t, err)
	read, err := habits.CreateHabit(ctx, profileID, &model.CreateHabitRequest{Name: "Read", DurationDays: 3, DaysOfWeek: []int{0, 1, 2, 3, 4, 5, 6}, StartDate: "2024-01-01"})
	require.NoError(t, err)
	_, _, err = habits.MarkInstance(ctx, profileID, run.HabitID, day("2024-01-03"), model.StatusDone, nil)
	require.NoError(t, err)

	// 台帳の一部が欠けた状態を作る
	require.NoError(t, db.Where("habit_id = ? AND date <> ?", run.HabitID, day("2024-01-03")).Delete(&model.HabitInstance{}).Error)
	require.NoError(t, db.Where("habit_id = ?", read.HabitID).Delete(&model.HabitInstance{}).Error)

	t.Run("指定した習慣だけを埋める", func(t *testing.T) {
		report, err := repair.Rematerialize(ctx, &read.HabitID)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Habits)
		assert.EqualValues(t, 3, report.Created)

		n, err := instRepo.CountByHabit(ctx, db, run.HabitID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("全ての習慣を埋め、既存の実績は変えない", func(t *testing.T) {
		report, err := repair.Rematerialize(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Habits)
		assert.EqualValues(t, 2, report.Created)

		inst, err := instRepo.ForDate(ctx, db, run.HabitID, day("2024-01-03"))
		require.NoError(t, err)
		assert.Equal(t, model.StatusDone, inst.Status)
	})

	t.Run("二回目は何も作らない", func(t *testing.T) {
		report, err := repair.Rematerialize(ctx, nil)
		require.NoError(t, err)
		assert.EqualValues(t, 0, report.Created)
	})

	t.Run("ルールが不正な習慣は飛ばす", func(t *testing.T) {
		broken := &model.Habit{HabitID: uuid.New(), ProfileID: profileID, Name: "Broken", DurationDays: 0, DaysOfWeek: model.Weekdays{0}, StartDate: day("2024-01-01"), IsActive: true}
		require.NoError(t, db.Create(broken).Error)

		report, err := repair.Rematerialize(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Habits)
		assert.Equal(t, 1, report.Skipped)
	})

	t.Run("存在しない習慣", func(t *testing.T) {
		missing := uuid.New()
		_, err := repair.Rematerialize(ctx, &missing)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_repairService_Rematerialize_SingleHabitSkipsFullScan(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	habitID := uuid.New()
	habit := &model.Habit{
		HabitID: habitID, ProfileID: uuid.New(), Name: "Read",
		DurationDays: 7, DaysOfWeek: model.Weekdays{0, 2, 4}, StartDate: day("2024-01-01"), IsActive: true,
	}

	// FindAll は呼ばれない (呼ばれるとモックが失敗する)
	habitRepo := mocks.NewHabitRepository(t)
	habitRepo.On("FindByHabitID", ctx, db, habitID).Return(habit, nil).Once()
	instRepo := mocks.NewInstanceRepository(t)
	instRepo.On("EnsurePending", mock.Anything, mock.Anything, habitID, []time.Time{day("2024-01-01"), day("2024-01-03"), day("2024-01-05")}).
		Return(int64(3), nil).Once()

	report, err := NewRepairService(db, habitRepo, instRepo, testConfig()).Rematerialize(ctx, &habitID)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Habits)
	assert.EqualValues(t, 3, report.Created)

	t.Run("見つからなければ NotFound", func(t *testing.T) {
		missing := uuid.New()
		habitRepo.On("FindByHabitID", ctx, db, missing).Return(nil, model.ErrNotFound).Once()

		_, err := NewRepairService(db, habitRepo, instRepo, testConfig()).Rematerialize(ctx, &missing)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
