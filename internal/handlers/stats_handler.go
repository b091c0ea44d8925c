// internal/handlers/stats_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"habit_tracker/internal/middleware"
	"habit_tracker/internal/model"
	"habit_tracker/internal/service"
	"habit_tracker/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{service: s}
}

// DayStats は1日分の達成状況
func (h *StatsHandler) DayStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DayStats"))
	profileID, ok := requireProfileID(w, r, logger)
	if !ok {
		return
	}
	date, err := webutil.ParseDateParam(r, "date")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.DayStats(r.Context(), profileID, date)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewDayStatsResponse(*stats), logger)
}

// CalendarStats は start_date から end_date までの日ごとの達成状況
func (h *StatsHandler) CalendarStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CalendarStats"))
	profileID, ok := requireProfileID(w, r, logger)
	if !ok {
		return
	}
	start, err := webutil.ParseDateQuery(r, "start_date", true)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	end, err := webutil.ParseDateQuery(r, "end_date", true)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	days, err := h.service.CalendarStats(r.Context(), profileID, *start, *end)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res := make([]model.DayStatsResponse, 0, len(days))
	for _, d := range days {
		res = append(res, model.NewDayStatsResponse(*d))
	}
	logger.Debug("Calendar stats computed", slog.Int("days", len(res)))
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}
