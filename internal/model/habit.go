// internal/model/habit.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// DateLayout はAPIで扱う日付(カレンダー日)の形式
const DateLayout = "2006-01-02"

// HabitStatus は習慣インスタンスの状態。値はこの4つに限定される
type HabitStatus string

const (
	StatusPending HabitStatus = "pending"
	StatusDone    HabitStatus = "done"
	StatusSkipped HabitStatus = "skipped"
	StatusDeleted HabitStatus = "deleted"
)

func (s HabitStatus) Valid() bool {
	switch s {
	case StatusPending, StatusDone, StatusSkipped, StatusDeleted:
		return true
	}
	return false
}

// ParseHabitStatus は文字列を HabitStatus に変換する。未知の値は ErrInvalidInput
func ParseHabitStatus(s string) (HabitStatus, error) {
	st := HabitStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown habit status %q: %w", s, ErrInvalidInput)
	}
	return st, nil
}

// Weekdays は曜日コードの集合 (0=月曜 ... 6=日曜)。
// Postgres では integer[]、それ以外のDBでは配列リテラル文字列として保存する。
type Weekdays []int

func (w Weekdays) Value() (driver.Value, error) {
	arr := make(pq.Int64Array, len(w))
	for i, d := range w {
		arr[i] = int64(d)
	}
	return arr.Value()
}

func (w *Weekdays) Scan(src interface{}) error {
	var arr pq.Int64Array
	if err := arr.Scan(src); err != nil {
		return fmt.Errorf("scan weekdays: %w", err)
	}
	out := make(Weekdays, len(arr))
	for i, d := range arr {
		out[i] = int(d)
	}
	*w = out
	return nil
}

func (Weekdays) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "integer[]"
	}
	return "text"
}

// Habit は曜日パターンと期間で定義される繰り返しの習慣
type Habit struct {
	HabitID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"habit_id"`
	ProfileID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"profile_id"`
	Name         string     `gorm:"type:varchar(255);not null;index" json:"name"`
	Description  *string    `gorm:"type:text" json:"description,omitempty"`
	DurationDays int        `gorm:"not null" json:"duration_days"`
	DaysOfWeek   Weekdays   `gorm:"not null" json:"days_of_week"`
	StartDate    time.Time  `gorm:"type:date;not null;index" json:"start_date"`
	EndDate      *time.Time `gorm:"type:date;index" json:"end_date,omitempty"` // 旧データでは NULL (無期限) がありうる
	IsActive     bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Instances []HabitInstance `gorm:"foreignKey:HabitID;references:HabitID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Habit) TableName() string {
	return "habits"
}

// HabitInstance はある習慣の特定日の実績。(habit_id, date) で一意
type HabitInstance struct {
	InstanceID uuid.UUID   `gorm:"type:uuid;primaryKey" json:"instance_id"`
	HabitID    uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_habit_date,priority:1" json:"habit_id"`
	Date       time.Time   `gorm:"type:date;not null;uniqueIndex:uq_habit_date,priority:2" json:"date"`
	Status     HabitStatus `gorm:"type:varchar(16);not null;default:pending;index" json:"status"`
	Reason     *string     `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (HabitInstance) TableName() string {
	return "habit_instances"
}

// HabitWithStatus は習慣と、そこから導出したステータスの組
type HabitWithStatus struct {
	Habit
	HabitStatus *HabitStatus
}

// HabitPatch は習慣の部分更新内容。nil のフィールドは変更しない
type HabitPatch struct {
	Name         *string
	Description  *string // 空文字 (空白のみ含む) なら NULL に戻す
	DurationDays *int
	DaysOfWeek   []int // nil なら変更なし。空スライスはバリデーションエラー
	StartDate    *time.Time
	IsActive     *bool
}

// ChangesSchedule は繰り返しルール(開始日・期間・曜日)に触れるかどうか
func (p HabitPatch) ChangesSchedule() bool {
	return p.DurationDays != nil || p.DaysOfWeek != nil || p.StartDate != nil
}

func (p HabitPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.IsActive == nil && !p.ChangesSchedule()
}

// --- DTO ---

type CreateHabitRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=255"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	DurationDays int     `json:"duration_days" validate:"required,min=1,max=365"`
	DaysOfWeek   []int   `json:"days_of_week" validate:"required,min=1,max=7,dive,min=0,max=6"`
	StartDate    string  `json:"start_date" validate:"required,datetime=2006-01-02"`
}

type UpdateHabitRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	DurationDays *int    `json:"duration_days" validate:"omitempty,min=1,max=365"`
	DaysOfWeek   []int   `json:"days_of_week" validate:"omitempty,max=7,dive,min=0,max=6"`
	StartDate    *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive     *bool   `json:"is_active"`
}

type MarkInstanceRequest struct {
	InstanceDate string  `json:"instance_date" validate:"required,datetime=2006-01-02"`
	Status       string  `json:"status" validate:"required,oneof=pending done skipped deleted"`
	Reason       *string `json:"reason" validate:"omitempty,max=1000"`
}

type HabitResponse struct {
	HabitID      uuid.UUID    `json:"habit_id"`
	ProfileID    uuid.UUID    `json:"profile_id"`
	Name         string       `json:"name"`
	Description  *string      `json:"description,omitempty"`
	DurationDays int          `json:"duration_days"`
	DaysOfWeek   []int        `json:"days_of_week"`
	StartDate    string       `json:"start_date"`
	EndDate      *string      `json:"end_date"`
	IsActive     bool         `json:"is_active"`
	HabitStatus  *HabitStatus `json:"habit_status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func NewHabitResponse(h *Habit, status *HabitStatus) HabitResponse {
	res := HabitResponse{
		HabitID:      h.HabitID,
		ProfileID:    h.ProfileID,
		Name:         h.Name,
		Description:  h.Description,
		DurationDays: h.DurationDays,
		DaysOfWeek:   []int(h.DaysOfWeek),
		StartDate:    h.StartDate.Format(DateLayout),
		IsActive:     h.IsActive,
		HabitStatus:  status,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}
	if res.DaysOfWeek == nil {
		res.DaysOfWeek = []int{}
	}
	if h.EndDate != nil {
		end := h.EndDate.Format(DateLayout)
		res.EndDate = &end
	}
	return res
}

type HabitInstanceResponse struct {
	InstanceID uuid.UUID   `json:"instance_id"`
	HabitID    uuid.UUID   `json:"habit_id"`
	Date       string      `json:"date"`
	Status     HabitStatus `json:"status"`
	Reason     *string     `json:"reason,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func NewHabitInstanceResponse(i *HabitInstance) HabitInstanceResponse {
	return HabitInstanceResponse{
		InstanceID: i.InstanceID,
		HabitID:    i.HabitID,
		Date:       i.Date.Format(DateLayout),
		Status:     i.Status,
		Reason:     i.Reason,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

type MarkInstanceResponse struct {
	Habit    HabitResponse         `json:"habit"`
	Instance HabitInstanceResponse `json:"instance"`
}

type DeleteHabitResponse struct {
	DeletedHabitID uuid.UUID `json:"deleted_habit_id"`
	Message        string    `json:"message"`
}

// ParseDate は YYYY-MM-DD を UTC のカレンダー日として読む
func ParseDate(raw, field string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, NewAppError("INVALID_DATE", fmt.Sprintf("%s must be a date in the format YYYY-MM-DD.", field), field, ErrInvalidInput)
	}
	return d, nil
}

// ToPatch はリクエストを HabitPatch に変換する。送られていない項目は nil のまま
func (r *UpdateHabitRequest) ToPatch() (HabitPatch, error) {
	patch := HabitPatch{
		Name:         r.Name,
		Description:  r.Description,
		DurationDays: r.DurationDays,
		DaysOfWeek:   r.DaysOfWeek,
		IsActive:     r.IsActive,
	}
	if r.StartDate != nil {
		d, err := ParseDate(*r.StartDate, "start_date")
		if err != nil {
			return HabitPatch{}, err
		}
		patch.StartDate = &d
	}
	return patch, nil
}
