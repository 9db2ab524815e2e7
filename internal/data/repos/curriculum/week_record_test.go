package curriculum

import (
	"context"
	"testing"
	"time"

	"github.com/jhkim-dev/teaching-agent-backend/internal/data/repos/testutil"
	types "github.com/jhkim-dev/teaching-agent-backend/internal/domain"
)

func TestWeekRecordRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewWeekRecordRepo(db, testutil.Logger(t))

	records := []*types.WeekRecord{
		testutil.Week(2025, "2025-09-15", "2025-09-21", "9월 15일~21일", "교리와 성약 102~105편"),
		testutil.Week(2025, "2025-09-08", "2025-09-14", "9월 8일~14일", "교리와 성약 98~101편"),
		testutil.Week(2024, "2024-09-09", "2024-09-15", "9월 9일~15일", "몰몬경 앨마서 1~4장"),
	}
	if _, err := repo.Create(ctx, tx, records); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.GetByYear(ctx, tx, 2025)
	if err != nil {
		t.Fatalf("GetByYear: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("GetByYear: want 2 rows, got %d", len(rows))
	}
	// Ascending by end date regardless of insert order.
	if !rows[0].EndDate.Before(rows[1].EndDate) {
		t.Fatalf("GetByYear order: %v before %v", rows[0].EndDate, rows[1].EndDate)
	}
	if rows[0].WeekRange != "9월 8일~14일" {
		t.Fatalf("GetByYear first row: %q", rows[0].WeekRange)
	}

	count, err := repo.CountByYear(ctx, tx, 2025)
	if err != nil || count != 2 {
		t.Fatalf("CountByYear: count=%d err=%v", count, err)
	}

	if err := repo.DeleteByYear(ctx, tx, 2025); err != nil {
		t.Fatalf("DeleteByYear: %v", err)
	}
	if rows, err := repo.GetByYear(ctx, tx, 2025); err != nil || len(rows) != 0 {
		t.Fatalf("after DeleteByYear: err=%v len=%d", err, len(rows))
	}
	// The other year is untouched.
	if rows, err := repo.GetByYear(ctx, tx, 2024); err != nil || len(rows) != 1 {
		t.Fatalf("other year after delete: err=%v len=%d", err, len(rows))
	}
}

func TestYearStatusRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewYearStatusRepo(db, testutil.Logger(t))

	if got, err := repo.Get(ctx, tx, 2025); err != nil || got != nil {
		t.Fatalf("Get before upsert: got=%v err=%v", got, err)
	}

	now := time.Now().UTC()
	if err := repo.Upsert(ctx, tx, 2025, types.YearStatusCompleted, 52, now); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	got, err := repo.Get(ctx, tx, 2025)
	if err != nil || got == nil {
		t.Fatalf("Get: got=%v err=%v", got, err)
	}
	if !got.Ready() || got.TotalWeeks != 52 {
		t.Fatalf("status after upsert: %+v", got)
	}

	// Second upsert replaces in place.
	if err := repo.Upsert(ctx, tx, 2025, types.YearStatusPending, 0, now); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	got, err = repo.Get(ctx, tx, 2025)
	if err != nil || got == nil {
		t.Fatalf("Get after second upsert: got=%v err=%v", got, err)
	}
	if got.Ready() {
		t.Fatalf("pending status must not be ready: %+v", got)
	}
}
