package curriculum

import (
	"context"
	"testing"

	"github.com/jhkim-dev/teaching-agent-backend/internal/data/repos/testutil"
	types "github.com/jhkim-dev/teaching-agent-backend/internal/domain"
)

func TestGormStoreReplaceYear(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	store := NewStore(tx, testutil.Logger(t))

	ready, err := store.YearIsReady(ctx, 2025)
	if err != nil {
		t.Fatalf("YearIsReady: %v", err)
	}
	if ready {
		t.Fatalf("empty store must not be ready")
	}

	first := []*types.WeekRecord{
		testutil.Week(2025, "2025-09-08", "2025-09-14", "9월8일~14일", "교리와 성약 98~101편"),
		testutil.Week(2025, "2025-09-01", "2025-09-07", "9월1일~7일", "교리와 성약 94~97편"),
	}
	if err := store.ReplaceYear(ctx, 2025, first); err != nil {
		t.Fatalf("ReplaceYear: %v", err)
	}

	ready, err = store.YearIsReady(ctx, 2025)
	if err != nil || !ready {
		t.Fatalf("after replace: ready=%v err=%v", ready, err)
	}

	records, err := store.GetYear(ctx, 2025)
	if err != nil {
		t.Fatalf("GetYear: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0].WeekRange != "9월1일~7일" {
		t.Fatalf("ascending end-date order, first is %q", records[0].WeekRange)
	}

	// Replacing again swaps the whole year; no leftovers, no duplicates.
	second := []*types.WeekRecord{
		testutil.Week(2025, "2025-09-15", "2025-09-21", "9월15일~21일", "교리와 성약 102~105편"),
	}
	if err := store.ReplaceYear(ctx, 2025, second); err != nil {
		t.Fatalf("second ReplaceYear: %v", err)
	}
	records, err = store.GetYear(ctx, 2025)
	if err != nil {
		t.Fatalf("GetYear: %v", err)
	}
	if len(records) != 1 || records[0].WeekRange != "9월15일~21일" {
		t.Fatalf("replace must fully swap the year: %+v", records)
	}
}

func TestGormStoreYearsAreIndependent(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	store := NewStore(tx, testutil.Logger(t))

	if err := store.ReplaceYear(ctx, 2024, []*types.WeekRecord{
		testutil.Week(2024, "2024-09-09", "2024-09-15", "9월9일~15일", "몰몬경 앨마서 1~4장"),
	}); err != nil {
		t.Fatalf("ReplaceYear 2024: %v", err)
	}
	if err := store.ReplaceYear(ctx, 2025, []*types.WeekRecord{
		testutil.Week(2025, "2025-09-08", "2025-09-14", "9월8일~14일", "교리와 성약 98~101편"),
	}); err != nil {
		t.Fatalf("ReplaceYear 2025: %v", err)
	}

	records, err := store.GetYear(ctx, 2024)
	if err != nil || len(records) != 1 {
		t.Fatalf("2024: err=%v len=%d", err, len(records))
	}
	if records[0].ScriptureRange != "몰몬경 앨마서 1~4장" {
		t.Fatalf("2024 scripture: %q", records[0].ScriptureRange)
	}
}
