// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"habit_tracker/internal/model"
	"habit_tracker/internal/webutil"

	"github.com/google/uuid"
)

// DevProfileContextMiddleware は auth.enabled=false のとき用。
// X-Profile-ID ヘッダーのUUIDをそのまま認証済みプロフィールとして扱う (DBでの存在確認はしない)。
func DevProfileContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get("X-Profile-ID")
		if raw == "" {
			logger.Warn("[DEV AUTH] X-Profile-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Profile-ID header is required.", "", model.ErrUnauthorized))
			return
		}

		profileID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-Profile-ID format", "value", raw)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Profile-ID must be a UUID.", "X-Profile-ID", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] Profile ID set to context (no validation)", "profile_id", profileID)
		ctx := WithProfileID(r.Context(), profileID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
