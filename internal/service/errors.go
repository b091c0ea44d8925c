package service

import (
	"context"
	"errors"
	"fmt"

	"habit_tracker/internal/middleware"
	"habit_tracker/internal/model"
	"habit_tracker/internal/schedule"
)

// internalError は想定外のエラーをログに残し、500 になる AppError に包む
func internalError(ctx context.Context, msg string, err error) error {
	middleware.GetLogger(ctx).Error(msg, "error", err)
	return model.NewAppError("INTERNAL_SERVER_ERROR", msg, "", fmt.Errorf("%w: %w", model.ErrInternalServer, err))
}

// passOrInternal はリポジトリ由来の既知のセンチネルはそのまま返し、それ以外を internalError にする
func passOrInternal(ctx context.Context, msg string, err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound),
		errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrForbidden),
		errors.Is(err, model.ErrUnauthorized):
		return err
	}
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return internalError(ctx, msg, err)
}

func habitNotFound() error {
	return model.NewAppError("HABIT_NOT_FOUND", "Habit not found.", "habit_id", model.ErrNotFound)
}

// ruleValidationError は schedule のルール違反を VALIDATION_ERROR にする
func ruleValidationError(err error) error {
	var ruleErr *schedule.RuleError
	if errors.As(err, &ruleErr) {
		return model.NewAppError("VALIDATION_ERROR", ruleErr.Error(), ruleErr.Field, model.ErrInvalidInput)
	}
	return model.NewAppError("VALIDATION_ERROR", err.Error(), "", model.ErrInvalidInput)
}

// ledgerConflict は実績の一意制約違反。作成直後の空の台帳で起きるのは不変条件の破れなので 500 扱い
func ledgerConflict(ctx context.Context, habitID fmt.Stringer, err error) error {
	middleware.GetLogger(ctx).Error("Instance ledger uniqueness violated during materialization", "habit_id", habitID.String(), "error", err)
	return model.NewAppError("LEDGER_CONFLICT", "Habit instances could not be materialized.", "", fmt.Errorf("%w: %w", model.ErrInternalServer, model.ErrConflict))
}
