// Package schedule は習慣の繰り返しルールを日付の列へ展開する。
// DBやコンテキストには依存しない純粋な関数だけを置く。
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

const (
	MinDurationDays = 1
	MaxDurationDays = 365
)

// ErrInvalidRule はルールの制約違反を表す。errors.Is で判定する
var ErrInvalidRule = errors.New("invalid recurrence rule")

// RuleError はどの項目が制約違反かを保持する
type RuleError struct {
	Field  string
	Reason string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *RuleError) Is(target error) bool {
	return target == ErrInvalidRule
}

// Rule は習慣の繰り返しルール。DaysOfWeek は 0=月曜 ... 6=日曜
type Rule struct {
	StartDate    time.Time
	DurationDays int
	DaysOfWeek   []int
}

// Day は時刻を切り捨てて UTC のカレンダー日に揃える
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Weekday は月曜始まり(0=月曜)の曜日コードを返す
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// EndDate は start + duration - 1 日
func EndDate(start time.Time, durationDays int) time.Time {
	return Day(start).AddDate(0, 0, durationDays-1)
}

// NormalizeWeekdays は重複を除いて昇順に並べ替えたコピーを返す
func NormalizeWeekdays(days []int) []int {
	seen := [7]bool{}
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

func (r Rule) Validate() error {
	if r.DurationDays < MinDurationDays || r.DurationDays > MaxDurationDays {
		return &RuleError{Field: "duration_days", Reason: fmt.Sprintf("must be between %d and %d", MinDurationDays, MaxDurationDays)}
	}
	if len(r.DaysOfWeek) == 0 {
		return &RuleError{Field: "days_of_week", Reason: "must not be empty"}
	}
	for _, d := range r.DaysOfWeek {
		if d < 0 || d > 6 {
			return &RuleError{Field: "days_of_week", Reason: fmt.Sprintf("weekday code %d is out of range 0-6", d)}
		}
	}
	if r.StartDate.IsZero() {
		return &RuleError{Field: "start_date", Reason: "is required"}
	}
	return nil
}

func (r Rule) EndDate() time.Time {
	return EndDate(r.StartDate, r.DurationDays)
}

func (r Rule) weekdaySet() [7]bool {
	var set [7]bool
	for _, d := range r.DaysOfWeek {
		if d >= 0 && d <= 6 {
			set[d] = true
		}
	}
	return set
}

// Contains は date がルールの期間内かつ対象曜日であるかを返す
func (r Rule) Contains(date time.Time) bool {
	day := Day(date)
	if day.Before(Day(r.StartDate)) || day.After(r.EndDate()) {
		return false
	}
	return r.weekdaySet()[Weekday(day)]
}

// Expand は [start, end] の各日のうち対象曜日に当たる日を昇順で返す。
// 同じ入力には常に同じ結果を返す。
func Expand(r Rule) ([]time.Time, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	set := r.weekdaySet()
	start := Day(r.StartDate)
	end := r.EndDate()

	dates := make([]time.Time, 0, r.DurationDays)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if set[Weekday(d)] {
			dates = append(dates, d)
		}
	}
	return dates, nil
}

// Days は from から to までの全日を昇順で返す。to < from なら空
func Days(from, to time.Time) []time.Time {
	start, end := Day(from), Day(to)
	if end.Before(start) {
		return nil
	}
	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
