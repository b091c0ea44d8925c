package handlers_test

import (
	"net/http"
	"testing"

	"habit_tracker/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler_DayStats(t *testing.T) {
	profileID := uuid.New()
	router, svc := newTestRouter(t)
	svc.stats.On("DayStats", mock.Anything, profileID, utcDate(2024, 1, 3)).Return(&model.DayStats{
		Date:                 utcDate(2024, 1, 3),
		TotalHabits:          1,
		CompletedHabits:      1,
		CompletionPercentage: 100,
		ColorIntensity:       model.IntensityDark,
	}, nil).Once()

	rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/habits/stats/day/2024-01-03", nil, &profileID))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"date": "2024-01-03",
		"total_habits": 1,
		"completed_habits": 1,
		"skipped_habits": 0,
		"pending_habits": 0,
		"completion_percentage": 100,
		"color_intensity": "dark"
	}`, rr.Body.String())
}

func TestStatsHandler_CalendarStats(t *testing.T) {
	profileID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		router, svc := newTestRouter(t)
		svc.stats.On("CalendarStats", mock.Anything, profileID, utcDate(2024, 1, 1), utcDate(2024, 1, 2)).Return([]*model.DayStats{
			{Date: utcDate(2024, 1, 1), ColorIntensity: model.IntensityNone},
			{Date: utcDate(2024, 1, 2), TotalHabits: 2, CompletedHabits: 1, PendingHabits: 1, CompletionPercentage: 50, ColorIntensity: model.IntensityMedium},
		}, nil).Once()

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/habits/stats/calendar?start_date=2024-01-01&end_date=2024-01-02", nil, &profileID))

		assert.Equal(t, http.StatusOK, rr.Code)
		res := decodeBody[[]model.DayStatsResponse](t, rr)
		require.Len(t, res, 2)
		assert.Equal(t, "2024-01-02", res[1].Date)
		assert.Equal(t, model.IntensityMedium, res[1].ColorIntensity)
	})

	t.Run("start_date が無い", func(t *testing.T) {
		router, _ := newTestRouter(t)
		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/habits/stats/calendar?end_date=2024-01-02", nil, &profileID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		detail := decodeError(t, rr)
		assert.Equal(t, "MISSING_QUERY_PARAM", detail.Code)
		assert.Equal(t, "start_date", detail.Field)
	})

	t.Run("終了日が開始日より前", func(t *testing.T) {
		router, svc := newTestRouter(t)
		svc.stats.On("CalendarStats", mock.Anything, profileID, utcDate(2024, 1, 7), utcDate(2024, 1, 1)).
			Return(nil, model.NewAppError("VALIDATION_ERROR", "end_date must not be before start_date", "end_date", model.ErrInvalidInput)).Once()

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/habits/stats/calendar?start_date=2024-01-07&end_date=2024-01-01", nil, &profileID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "end_date", decodeError(t, rr).Field)
	})
}
