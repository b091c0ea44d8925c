package model

import "time"

// ColorIntensity はカレンダーのヒートマップ表示用の段階
type ColorIntensity string

const (
	IntensityNone   ColorIntensity = "none"
	IntensityLight  ColorIntensity = "light"
	IntensityMedium ColorIntensity = "medium"
	IntensityDark   ColorIntensity = "dark"
)

// DayStats は1日分の集計結果 (永続化しない)
type DayStats struct {
	Date                 time.Time
	TotalHabits          int
	CompletedHabits      int
	SkippedHabits        int
	PendingHabits        int
	CompletionPercentage float64
	ColorIntensity       ColorIntensity
}

type DayStatsResponse struct {
	Date                 string         `json:"date"`
	TotalHabits          int            `json:"total_habits"`
	CompletedHabits      int            `json:"completed_habits"`
	SkippedHabits        int            `json:"skipped_habits"`
	PendingHabits        int            `json:"pending_habits"`
	CompletionPercentage float64        `json:"completion_percentage"`
	ColorIntensity       ColorIntensity `json:"color_intensity"`
}

func NewDayStatsResponse(s DayStats) DayStatsResponse {
	return DayStatsResponse{
		Date:                 s.Date.Format(DateLayout),
		TotalHabits:          s.TotalHabits,
		CompletedHabits:      s.CompletedHabits,
		SkippedHabits:        s.SkippedHabits,
		PendingHabits:        s.PendingHabits,
		CompletionPercentage: s.CompletionPercentage,
		ColorIntensity:       s.ColorIntensity,
	}
}
