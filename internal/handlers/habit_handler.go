// internal/handlers/habit_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"habit_tracker/internal/middleware"
	"habit_tracker/internal/model"
	"habit_tracker/internal/service"
	"habit_tracker/internal/webutil"

	"github.com/google/uuid"
)

type HabitHandler struct {
	service service.HabitService
}

func NewHabitHandler(s service.HabitService) *HabitHandler {
	return &HabitHandler{service: s}
}

// requireProfileID は認証済みプロフィールIDを取り出す。無ければ 401 を書いて false を返す
func requireProfileID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, false
	}
	return profileID, true
}

func newHabitResponses(habits []*model.HabitWithStatus) []model.HabitResponse {
	res := make([]model.HabitResponse, 0, len(habits))
	for _, h := range habits {
		res = append(res, model.NewHabitResponse(&h.Habit, h.HabitStatus))
	}
	return res
}

// CreateHabit は新しい習慣を作成し、期間内の実績を作る
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CreateHabit"))
	profileID, ok := requireProfileID(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateHabitRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid create habit request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	habit, err := h.service.CreateHabit(r.Context(), profileID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Habit created successfully", slog.String("habit_id", habit.HabitID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewHabitResponse(&habit.Habit, habit.HabitStatus), logger)
}

// ListHabits は習慣の一覧。?is_active=true/false で絞り込める
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListHabits"))
	profileID, ok := requireProfileID(w, r, logger)
	if !ok {
		return
	}

	isActive, err := webutil.ParseBoolQuery(r, "is_active")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	habits, err := h.service.ListHabits(r.Context(), profileID, isActive)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Debug("Habits listed", slog.Int("count", len(habits)))
	webutil.RespondWithJSON(w, http.StatusOK, newHabitResponses(habits), logger)
}

func (h *HabitHandler) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetHabit"))
	profileID, ok := requireProfileID(w, r, logger)
	if !ok {
		return
	}
	habitID, err := webutil.ParseUUIDParam(r, "habit_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	habit, err := h.service.GetHabit(r.Context(), profileID, habitID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewHabitResponse(&habit.Habit, habit.HabitStatus), logger)
}

// UpdateHabit は送られた項目だけを更新する (PATCH / PUT 共通)
func (h *HabitHandler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "UpdateHabit"))
	profileID, ok := requireProfileID(w, r, logger)
	if !ok {
		return
	}
	habitID, err := webutil.ParseUUIDParam(r, "habit_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateHabitRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid update habit request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	habit, err := h.service.UpdateHabit(r.Context(), profileID, habitID, patch)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Habit updated successfully", slog.String("habit_id", habitID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, model.NewHabitResponse(&habit.Habit, habit.HabitStatus), logger)
}

func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeleteHabit"))
	profileID, ok := requireProfileID(w, r, logger)
	if !ok {
		return
	}
	habitID, err := webutil.ParseUUIDParam(r, "habit_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteHabit(r.Context(), profileID, habitID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Habit deleted successfully", slog.String("habit_id", habitID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, model.DeleteHabitResponse{
		DeletedHabitID: habitID,
		Message:        "Habit deleted successfully.",
	}, logger)
}

// HabitsForDate はその日が対象曜日の習慣と、その日の状態を返す
func (h *HabitHandler) HabitsForDate(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "HabitsForDate"))
	profileID, ok := requireProfileID(w, r, logger)
	if !ok {
		return
	}
	date, err := webutil.ParseDateParam(r, "date")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	habits, err := h.service.HabitsForDate(r.Context(), profileID, date)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, newHabitResponses(habits), logger)
}

// MarkInstance は指定日の実績の状態を記録する
func (h *HabitHandler) MarkInstance(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "MarkInstance"))
	profileID, ok := requireProfileID(w, r, logger)
	if !ok {
		return
	}
	habitID, err := webutil.ParseUUIDParam(r, "habit_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.MarkInstanceRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid mark instance request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	date, err := webutil.ParseDate(req.InstanceDate, "instance_date")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	status, err := model.ParseHabitStatus(req.Status)
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("VALIDATION_ERROR", err.Error(), "status", model.ErrInvalidInput))
		return
	}

	habit, instance, err := h.service.MarkInstance(r.Context(), profileID, habitID, date, status, req.Reason)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Habit instance marked",
		slog.String("habit_id", habitID.String()),
		slog.String("date", req.InstanceDate),
		slog.String("status", string(status)),
	)
	webutil.RespondWithJSON(w, http.StatusOK, model.MarkInstanceResponse{
		Habit:    model.NewHabitResponse(&habit.Habit, habit.HabitStatus),
		Instance: model.NewHabitInstanceResponse(instance),
	}, logger)
}

// ListInstances は習慣の実績履歴を日付の昇順で返す。?from=&to= は任意
func (h *HabitHandler) ListInstances(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListInstances"))
	profileID, ok := requireProfileID(w, r, logger)
	if !ok {
		return
	}
	habitID, err := webutil.ParseUUIDParam(r, "habit_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	from, err := webutil.ParseDateQuery(r, "from", false)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	to, err := webutil.ParseDateQuery(r, "to", false)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	instances, err := h.service.ListInstances(r.Context(), profileID, habitID, from, to)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res := make([]model.HabitInstanceResponse, 0, len(instances))
	for _, inst := range instances {
		res = append(res, model.NewHabitInstanceResponse(inst))
	}
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}
