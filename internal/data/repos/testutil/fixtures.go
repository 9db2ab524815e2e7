package testutil

import (
	"context"
	"testing"
	"time"

	types "github.com/jhkim-dev/teaching-agent-backend/internal/domain"
	"gorm.io/gorm"
)

func Week(year int, start, end, weekRange, scripture string) *types.WeekRecord {
	s, _ := time.Parse("2006-01-02", start)
	e, _ := time.Parse("2006-01-02", end)
	return &types.WeekRecord{
		Year:           year,
		StartDate:      s,
		EndDate:        e,
		WeekRange:      weekRange,
		ScriptureRange: scripture,
		LessonTitle:    weekRange + " " + scripture,
		LessonURL:      "https://example.org/lesson",
		Section:        s.Format("1월"),
	}
}

func SeedWeek(tb testing.TB, ctx context.Context, tx *gorm.DB, w *types.WeekRecord) *types.WeekRecord {
	tb.Helper()
	if err := tx.WithContext(ctx).Create(w).Error; err != nil {
		tb.Fatalf("seed week record: %v", err)
	}
	return w
}
