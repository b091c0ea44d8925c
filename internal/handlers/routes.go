package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers はルーティング対象のハンドラをまとめたもの
type Handlers struct {
	Habits   *HabitHandler
	Stats    *StatsHandler
	Profiles *ProfileHandler
	Auth     *AuthHandler
}

// RegisterRoutes は /api/v1 配下のルートを登録する。
// authMW は JWT 認証か開発用の X-Profile-ID 認証のどちらか
func RegisterRoutes(r chi.Router, authMW func(http.Handler) http.Handler, h *Handlers) {
	// 公開API
	r.Post("/auth/login", h.Auth.Login)
	r.Post("/auth/refresh", h.Auth.Refresh)
	r.Post("/profiles", h.Profiles.CreateProfile)

	// 認証が必要なAPI
	r.Group(func(r chi.Router) {
		r.Use(authMW)

		r.Get("/auth/me", h.Auth.Me)

		r.Get("/profiles", h.Profiles.ListProfiles)
		r.Get("/profiles/{profile_id}", h.Profiles.GetProfile)
		r.Patch("/profiles/{profile_id}", h.Profiles.UpdateProfile)
		r.Delete("/profiles/{profile_id}", h.Profiles.DeleteProfile)

		r.Route("/habits", func(r chi.Router) {
			r.Post("/", h.Habits.CreateHabit)
			r.Get("/", h.Habits.ListHabits)
			r.Get("/date/{date}", h.Habits.HabitsForDate)
			r.Get("/stats/day/{date}", h.Stats.DayStats)
			r.Get("/stats/calendar", h.Stats.CalendarStats)

			r.Route("/{habit_id}", func(r chi.Router) {
				r.Get("/", h.Habits.GetHabit)
				r.Patch("/", h.Habits.UpdateHabit)
				r.Put("/", h.Habits.UpdateHabit)
				r.Delete("/", h.Habits.DeleteHabit)
				r.Put("/instance", h.Habits.MarkInstance)
				r.Get("/instances", h.Habits.ListInstances)
			})
		})
	})
}
