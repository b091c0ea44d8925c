// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"habit_tracker/internal/handlers"
	"habit_tracker/internal/middleware"
	"habit_tracker/internal/model"
	"habit_tracker/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testServices はルーターに注入するモックサービス一式
type testServices struct {
	habits   *mocks.MockHabitService
	stats    *mocks.MockStatsService
	profiles *mocks.MockProfileService
	auth     *mocks.MockAuthService
}

// newTestRouter はモックサービスを使ったハンドラで本番と同じルートを組み立てる。
// 認証は X-Profile-ID ヘッダーを使う開発用ミドルウェア
func newTestRouter(t *testing.T) (*chi.Mux, *testServices) {
	t.Helper()
	svc := &testServices{
		habits:   mocks.NewMockHabitService(t),
		stats:    mocks.NewMockStatsService(t),
		profiles: mocks.NewMockProfileService(t),
		auth:     mocks.NewMockAuthService(t),
	}

	router := chi.NewRouter()
	router.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterRoutes(r, middleware.DevProfileContextMiddleware, &handlers.Handlers{
			Habits:   handlers.NewHabitHandler(svc.habits),
			Stats:    handlers.NewStatsHandler(svc.stats),
			Profiles: handlers.NewProfileHandler(svc.profiles),
			Auth:     handlers.NewAuthHandler(svc.auth),
		})
	})
	return router, svc
}

// createRequest はテスト用のHTTPリクエストオブジェクトを作成します。
// profileIDが指定されていれば X-Profile-ID ヘッダーを追加します。
func createRequest(t *testing.T, method, url string, body interface{}, profileID *uuid.UUID) *http.Request {
	t.Helper()
	var reqBodyBytes []byte
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBodyBytes = []byte(b)
		case []byte:
			reqBodyBytes = b
		default:
			var err error
			reqBodyBytes, err = json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
		}
	}

	req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBodyBytes))
	require.NoError(t, err, "Failed to create request")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if profileID != nil {
		req.Header.Set("X-Profile-ID", profileID.String())
	}
	return req
}

func executeRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeError はエラーレスポンスのボディを読み、エラーコードを返す
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp), "Failed to unmarshal error response body: %s", rr.Body.String())
	return errResp.Error
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "Failed to unmarshal response body: %s", rr.Body.String())
	return v
}
