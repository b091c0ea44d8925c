package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"habit_tracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"NotFound", model.ErrNotFound, http.StatusNotFound},
		{"InvalidInput をラップ", fmt.Errorf("wrap: %w", model.ErrInvalidInput), http.StatusBadRequest},
		{"Unauthorized", model.ErrUnauthorized, http.StatusUnauthorized},
		{"Forbidden", model.NewAppError("PROFILE_NOT_ACTIVE", "inactive", "", model.ErrForbidden), http.StatusForbidden},
		{"Conflict", model.ErrConflict, http.StatusConflict},
		{"InternalServer が優先", errors.Join(model.ErrNotFound, model.ErrInternalServer), http.StatusInternalServerError},
		{"未知のエラー", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Run("AppError はそのまま返す", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, discard, model.NewAppError("HABIT_NOT_FOUND", "Habit not found.", "habit_id", model.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrorDetail{Code: "HABIT_NOT_FOUND", Message: "Habit not found.", Field: "habit_id"}, resp.Error)
	})

	t.Run("500 は詳細を隠す", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, discard, model.NewAppError("LEDGER_CONFLICT", "duplicate key value violates unique constraint", "", model.ErrInternalServer))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "unique constraint")
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "LEDGER_CONFLICT", resp.Error.Code)
	})

	t.Run("素のセンチネル", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, discard, model.ErrConflict)

		assert.Equal(t, http.StatusConflict, rr.Code)
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "CONFLICT", resp.Error.Code)
	})
}

type sampleRequest struct {
	Name      string `json:"name" validate:"required,max=10"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"omitempty,oneof=done skipped"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  string
		wantField string
	}{
		{"正常", `{"name":"run","start_date":"2024-01-01"}`, "", ""},
		{"未知のフィールド", `{"name":"run","start_date":"2024-01-01","extra":1}`, "INVALID_REQUEST_BODY", ""},
		{"壊れたJSON", `{"name":`, "INVALID_REQUEST_BODY", ""},
		{"必須項目なし", `{"start_date":"2024-01-01"}`, "VALIDATION_ERROR", "name"},
		{"日付形式", `{"name":"run","start_date":"01/01/2024"}`, "VALIDATION_ERROR", "start_date"},
		{"oneof", `{"name":"run","start_date":"2024-01-01","status":"pending"}`, "VALIDATION_ERROR", "status"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var dst sampleRequest
			err := DecodeAndValidate(req, &dst)
			if tc.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, "run", dst.Name)
				return
			}
			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tc.wantCode, appErr.Detail.Code)
			assert.Equal(t, tc.wantField, appErr.Detail.Field)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestDecodeJSONBody_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	err := DecodeJSONBody(req, &sampleRequest{})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestParseDateQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?from=2024-02-29&bad=2024-13-01", nil)

	d, err := ParseDateQuery(req, "from", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *d)

	d, err = ParseDateQuery(req, "to", false)
	assert.NoError(t, err)
	assert.Nil(t, d)

	_, err = ParseDateQuery(req, "to", true)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MISSING_QUERY_PARAM", appErr.Detail.Code)

	_, err = ParseDateQuery(req, "bad", false)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestParseBoolQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?is_active=false&x=maybe", nil)

	b, err := ParseBoolQuery(req, "is_active")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.False(t, *b)

	b, err = ParseBoolQuery(req, "missing")
	assert.NoError(t, err)
	assert.Nil(t, b)

	_, err = ParseBoolQuery(req, "x")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
