// internal/handlers/profile_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"habit_tracker/internal/middleware"
	"habit_tracker/internal/model"
	"habit_tracker/internal/service"
	"habit_tracker/internal/webutil"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(s service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: s}
}

// CreateProfile は公開API。作成されたプロフィールはすぐにログインできる
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CreateProfile"))

	var req model.CreateProfileRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid create profile request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.CreateProfile(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Profile created successfully", slog.String("profile_id", profile.ProfileID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewProfileResponse(profile), logger)
}

func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListProfiles"))
	if _, ok := requireProfileID(w, r, logger); !ok {
		return
	}

	profiles, err := h.service.ListProfiles(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	res := make([]model.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		res = append(res, model.NewProfileResponse(p))
	}
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetProfile"))
	callerID, ok := requireProfileID(w, r, logger)
	if !ok {
		return
	}
	profileID, err := webutil.ParseUUIDParam(r, "profile_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), callerID, profileID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewProfileResponse(profile), logger)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "UpdateProfile"))
	callerID, ok := requireProfileID(w, r, logger)
	if !ok {
		return
	}
	profileID, err := webutil.ParseUUIDParam(r, "profile_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateProfileRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid update profile request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), callerID, profileID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Profile updated successfully", slog.String("profile_id", profileID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, model.NewProfileResponse(profile), logger)
}

func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeleteProfile"))
	callerID, ok := requireProfileID(w, r, logger)
	if !ok {
		return
	}
	profileID, err := webutil.ParseUUIDParam(r, "profile_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteProfile(r.Context(), callerID, profileID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
