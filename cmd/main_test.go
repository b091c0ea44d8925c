package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"habit_tracker/internal/config"
	"habit_tracker/internal/model"
	"habit_tracker/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T, logger *slog.Logger) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := repository.Open(sqlite.Open(dsn), logger)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, repository.AutoMigrate(db))
	return db
}

func testConfig(authEnabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Enabled = authEnabled
	cfg.App.ScheduleUpdatePolicy = config.PolicyReconcile
	cfg.App.MaxCalendarDays = config.DefaultMaxCalendarDays
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.AccessTokenTTL = config.DefaultAccessTokenTTL
	cfg.JWT.RefreshTokenTTL = config.DefaultRefreshTokenTTL
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}
	cfg.CORS.AllowedHeaders = []string{"Content-Type", "Authorization", "X-Profile-ID"}
	return cfg
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := setupTestDB(t, logger)
	r, stop := newRouter(testConfig(true), db, logger)
	defer stop()

	rr := do(t, r, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())

	rr = do(t, r, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "http_requests_total")
}

func TestRouter_JWTRequired(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := setupTestDB(t, logger)
	r, stop := newRouter(testConfig(true), db, logger)
	defer stop()

	// X-Profile-ID は認証が有効なときは使えない
	rr := do(t, r, http.MethodGet, "/api/v1/habits", nil, map[string]string{"X-Profile-ID": uuid.NewString()})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = do(t, r, http.MethodPost, "/api/v1/profiles", map[string]string{"login": "alice", "password": "password123"}, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = do(t, r, http.MethodPost, "/api/v1/auth/login", map[string]string{"login": "alice", "password": "password123"}, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var pair model.TokenPair
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pair))

	rr = do(t, r, http.MethodGet, "/api/v1/auth/me", nil, map[string]string{"Authorization": "Bearer " + pair.AccessToken})
	assert.Equal(t, http.StatusOK, rr.Code)

	// リフレッシュトークンはアクセストークンとして使えない
	rr = do(t, r, http.MethodGet, "/api/v1/auth/me", nil, map[string]string{"Authorization": "Bearer " + pair.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_DevAuthScenario(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := setupTestDB(t, logger)
	r, stop := newRouter(testConfig(false), db, logger)
	defer stop()

	profile := &model.Profile{ProfileID: uuid.New(), Login: "dev", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(profile).Error)
	headers := map[string]string{"X-Profile-ID": profile.ProfileID.String()}

	rr := do(t, r, http.MethodPost, "/api/v1/habits", map[string]interface{}{
		"name": "Morning run", "duration_days": 7, "days_of_week": []int{0, 2, 4}, "start_date": "2024-01-01",
	}, headers)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var habit model.HabitResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &habit))

	rr = do(t, r, http.MethodPut, "/api/v1/habits/"+habit.HabitID.String()+"/instance", map[string]string{
		"instance_date": "2024-01-03", "status": "done",
	}, headers)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = do(t, r, http.MethodGet, "/api/v1/habits/stats/day/2024-01-03", nil, headers)
	require.Equal(t, http.StatusOK, rr.Code)
	var stats model.DayStatsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalHabits)
	assert.Equal(t, 1, stats.CompletedHabits)
	assert.Equal(t, 100.0, stats.CompletionPercentage)
	assert.Equal(t, model.IntensityDark, stats.ColorIntensity)

	rr = do(t, r, http.MethodGet, "/api/v1/habits/stats/calendar?start_date=2024-01-01&end_date=2024-01-07", nil, headers)
	require.Equal(t, http.StatusOK, rr.Code)
	var calendar []model.DayStatsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &calendar))
	assert.Len(t, calendar, 7)
}
