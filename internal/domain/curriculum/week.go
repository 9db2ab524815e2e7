package curriculum

import (
	"time"
)

// WeekRecord is one calendar week's curriculum entry for a year. The full set
// for a year is replaced atomically on refresh and never patched field by
// field.
type WeekRecord struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"-"`

	Year      int       `gorm:"column:year;not null;index;uniqueIndex:idx_week_record_span,priority:1" json:"year"`
	StartDate time.Time `gorm:"column:start_date;not null;uniqueIndex:idx_week_record_span,priority:2" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date;not null;uniqueIndex:idx_week_record_span,priority:3" json:"end_date"`

	// WeekRange is the display label for the week ("9월 8일~14일"); stable
	// across refreshes and used as the natural key for material lookups.
	WeekRange      string `gorm:"column:week_range;not null" json:"week_range"`
	ScriptureRange string `gorm:"column:scripture_range;not null" json:"scripture_range"`
	LessonTitle    string `gorm:"column:lesson_title;type:text" json:"lesson_title"`
	LessonURL      string `gorm:"column:lesson_url;type:text" json:"lesson_url"`
	Section        string `gorm:"column:section" json:"section"`

	CreatedAt time.Time `gorm:"not null" json:"-"`
}

func (WeekRecord) TableName() string { return "week_record" }

// Contains reports whether the record's inclusive date span covers t,
// compared date-only.
func (w *WeekRecord) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(DateOnly(w.StartDate)) && !d.After(DateOnly(w.EndDate))
}

// DateOnly strips the time-of-day and normalizes to UTC midnight.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const (
	YearStatusPending   = "pending"
	YearStatusCompleted = "completed"
)

// YearStatus is the completion marker for a year's cached mapping. A year is
// ready for lookups iff Status is completed and TotalWeeks > 0.
type YearStatus struct {
	Year        int       `gorm:"column:year;primaryKey" json:"year"`
	Status      string    `gorm:"column:status;not null;default:'pending'" json:"status"`
	TotalWeeks  int       `gorm:"column:total_weeks;not null;default:0" json:"total_weeks"`
	LastUpdated time.Time `gorm:"column:last_updated" json:"last_updated"`
}

func (YearStatus) TableName() string { return "year_status" }

func (s *YearStatus) Ready() bool {
	return s != nil && s.Status == YearStatusCompleted && s.TotalWeeks > 0
}

// LessonReference is the resolved bundle returned for a date query. It is
// never nil: unresolvable dates get a synthesized placeholder.
type LessonReference struct {
	Title   string      `json:"title"`
	URL     string      `json:"url"`
	Content string      `json:"content,omitempty"`
	Week    *WeekRecord `json:"week_info,omitempty"`
}

// WeekSummary is the display-oriented projection of a WeekRecord.
type WeekSummary struct {
	WeekRange      string `json:"week_range"`
	ScriptureRange string `json:"title_keywords"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Section        string `json:"section"`
	DisplayText    string `json:"display_text"`
}

// LessonContent is the ephemeral digest of a lesson detail page. It is not
// persisted here; the API layer may cache it.
type LessonContent struct {
	Title     string      `json:"title"`
	Body      string      `json:"content"`
	SourceURL string      `json:"url"`
	Week      *WeekRecord `json:"week_info,omitempty"`
}
