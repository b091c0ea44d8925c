package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"habit_tracker/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileHandler_CreateProfile(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *testServices)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success - 認証なしで作成できる",
			body: map[string]string{"login": "alice", "password": "password123"},
			setupMock: func(m *testServices) {
				m.profiles.On("CreateProfile", mock.Anything, mock.MatchedBy(func(req *model.CreateProfileRequest) bool {
					return req.Login == "alice"
				})).Return(&model.Profile{ProfileID: uuid.New(), Login: "alice", PasswordHash: "hashed", IsActive: true, CreatedAt: time.Now()}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - パスワードが短い",
			body:           map[string]string{"login": "alice", "password": "short"},
			setupMock:      func(m *testServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "Fail - メールアドレスの形式",
			body:           map[string]string{"login": "alice", "password": "password123", "email": "not-an-email"},
			setupMock:      func(m *testServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "Fail - ログインIDの重複",
			body: map[string]string{"login": "alice", "password": "password123"},
			setupMock: func(m *testServices) {
				m.profiles.On("CreateProfile", mock.Anything, mock.Anything).
					Return(nil, model.NewAppError("DUPLICATE_LOGIN", "This login is already taken.", "login", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_LOGIN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, svc := newTestRouter(t)
			tc.setupMock(svc)

			rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/v1/profiles", tc.body, nil))

			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, decodeError(t, rr).Code)
				return
			}
			res := decodeBody[model.ProfileResponse](t, rr)
			assert.Equal(t, "alice", res.Login)
			// パスワードハッシュはレスポンスに含めない
			assert.NotContains(t, rr.Body.String(), "hashed")
		})
	}
}

func TestProfileHandler_OwnProfileOnly(t *testing.T) {
	callerID := uuid.New()
	otherID := uuid.New()

	t.Run("他人のプロフィールは403", func(t *testing.T) {
		router, svc := newTestRouter(t)
		svc.profiles.On("GetProfile", mock.Anything, callerID, otherID).
			Return(nil, model.NewAppError("FORBIDDEN", "You can only access your own profile.", "profile_id", model.ErrForbidden)).Once()

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/profiles/"+otherID.String(), nil, &callerID))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("自分のプロフィールを更新", func(t *testing.T) {
		router, svc := newTestRouter(t)
		svc.profiles.On("UpdateProfile", mock.Anything, callerID, callerID, mock.MatchedBy(func(req *model.UpdateProfileRequest) bool {
			return req.FirstName != nil && *req.FirstName == "Alice" && req.Email == nil
		})).Return(&model.Profile{ProfileID: callerID, Login: "alice", IsActive: true}, nil).Once()

		rr := executeRequest(router, createRequest(t, http.MethodPatch, "/api/v1/profiles/"+callerID.String(), map[string]string{"first_name": "Alice"}, &callerID))
		assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	})

	t.Run("自分のプロフィールを削除", func(t *testing.T) {
		router, svc := newTestRouter(t)
		svc.profiles.On("DeleteProfile", mock.Anything, callerID, callerID).Return(nil).Once()

		rr := executeRequest(router, createRequest(t, http.MethodDelete, "/api/v1/profiles/"+callerID.String(), nil, &callerID))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("一覧は認証が必要", func(t *testing.T) {
		router, _ := newTestRouter(t)
		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/profiles", nil, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
