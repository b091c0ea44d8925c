package webutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"habit_tracker/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DecodeJSONBody はリクエストボディをデコードする。未知のフィールドはエラー
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is required.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", fmt.Sprintf("Malformed JSON body: %v", err), "", model.ErrInvalidInput)
	}
	return nil
}

// DecodeAndValidate は DecodeJSONBody と ValidateStruct をまとめたもの
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(r, dst); err != nil {
		return err
	}
	return ValidateStruct(dst)
}

// ParseUUIDParam は chi の URL パラメータを UUID として読む
func ParseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_PATH_PARAM", fmt.Sprintf("%s must be a UUID.", name), name, model.ErrInvalidInput)
	}
	return id, nil
}

// ParseDate は YYYY-MM-DD を UTC のカレンダー日に変換する
func ParseDate(raw, field string) (time.Time, error) {
	return model.ParseDate(raw, field)
}

func ParseDateParam(r *http.Request, name string) (time.Time, error) {
	return ParseDate(chi.URLParam(r, name), name)
}

// ParseDateQuery はクエリパラメータの日付を読む。required=false で空なら nil
func ParseDateQuery(r *http.Request, name string, required bool) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		if required {
			return nil, model.NewAppError("MISSING_QUERY_PARAM", fmt.Sprintf("%s is required.", name), name, model.ErrInvalidInput)
		}
		return nil, nil
	}
	d, err := ParseDate(raw, name)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseBoolQuery は true/false のクエリパラメータを読む。空なら nil
func ParseBoolQuery(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, model.NewAppError("INVALID_QUERY_PARAM", fmt.Sprintf("%s must be true or false.", name), name, model.ErrInvalidInput)
	}
	return &b, nil
}
