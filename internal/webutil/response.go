// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"habit_tracker/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返す
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var appErr *model.AppError
	isAppErr := errors.As(err, &appErr)

	var detail model.ErrorDetail
	switch {
	case isAppErr && statusCode < http.StatusInternalServerError:
		detail = appErr.Detail
	case statusCode < http.StatusInternalServerError:
		detail = model.ErrorDetail{Code: strings.ToUpper(strings.ReplaceAll(http.StatusText(statusCode), " ", "_")), Message: err.Error()}
	default:
		// 500系はコードだけ返し、内部の詳細はログにのみ残す
		code := "INTERNAL_SERVER_ERROR"
		if isAppErr && appErr.Detail.Code != "" {
			code = appErr.Detail.Code
		}
		logger.Error("Request failed with server error", "code", code, "error", err)
		detail = model.ErrorDetail{Code: code, Message: "An internal server error occurred."}
	}

	RespondWithJSON(w, statusCode, model.APIErrorResponse{Error: detail}, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングする。
// ErrInternalServer を含むエラーは他のセンチネルより優先して 500 にする。
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrInternalServer):
		return http.StatusInternalServerError
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返す
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Failed to build the response."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		logger.Warn("Error writing response body", "error", err)
	}
}

// NewValidationErrorResponse は validator のエラーを翻訳済みメッセージの AppError にまとめる
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	fields := make([]string, 0, len(errs))
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field())
		messages = append(messages, fe.Translate(Trans))
	}

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, "; "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
