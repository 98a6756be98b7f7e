package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/testutil"
)

func TestSnapshotService_RefreshAll(t *testing.T) {
	t.Run("stores one snapshot per space", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		s1 := testutil.CreateSpace(t, db, "Family Office")
		a1 := testutil.NewAsset(s1.ID).WithCurrentValue(120000).Build(t, db)
		testutil.CreateCashFlow(t, db, a1.ID, "capital_call", 100000, "2022-01-15")

		testutil.CreateSpace(t, db, "Empty Space")

		if err := svc.RefreshAll(context.Background()); err != nil {
			t.Fatalf("RefreshAll() returned unexpected error: %v", err)
		}

		testutil.AssertRowCount(t, db, "portfolio_snapshot", 2)
	})

	t.Run("re-running the same day overwrites instead of duplicating", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		space := testutil.CreateSpace(t, db, "Family Office")
		asset := testutil.NewAsset(space.ID).WithCurrentValue(120000).Build(t, db)
		testutil.CreateCashFlow(t, db, asset.ID, "capital_call", 100000, "2022-01-15")

		if err := svc.RefreshAll(context.Background()); err != nil {
			t.Fatalf("First RefreshAll() returned unexpected error: %v", err)
		}
		if err := svc.RefreshAll(context.Background()); err != nil {
			t.Fatalf("Second RefreshAll() returned unexpected error: %v", err)
		}

		testutil.AssertRowCount(t, db, "portfolio_snapshot", 1)
	})
}

func TestSnapshotService_GetSnapshotHistory(t *testing.T) {
	t.Run("returns stored snapshots within range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		space := testutil.CreateSpace(t, db, "Family Office")
		asset := testutil.NewAsset(space.ID).WithCurrentValue(120000).Build(t, db)
		testutil.CreateCashFlow(t, db, asset.ID, "capital_call", 100000, "2022-01-15")

		yesterday := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)
		if err := svc.RefreshSpace(context.Background(), space.ID, yesterday); err != nil {
			t.Fatalf("RefreshSpace() returned unexpected error: %v", err)
		}

		start := yesterday.AddDate(0, 0, -7)
		history, err := svc.GetSnapshotHistory(context.Background(), space.ID, start, yesterday)
		if err != nil {
			t.Fatalf("GetSnapshotHistory() returned unexpected error: %v", err)
		}

		if len(history) != 1 {
			t.Fatalf("Expected 1 snapshot, got %d", len(history))
		}
		if history[0].TotalContributed != 100000 {
			t.Errorf("Expected contributed 100000, got %v", history[0].TotalContributed)
		}
	})

	t.Run("computes today's point on demand when missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		space := testutil.CreateSpace(t, db, "Family Office")
		asset := testutil.NewAsset(space.ID).WithCurrentValue(120000).Build(t, db)
		testutil.CreateCashFlow(t, db, asset.ID, "capital_call", 100000, "2022-01-15")

		today := time.Now().UTC().Truncate(24 * time.Hour)
		start := today.AddDate(0, 0, -30)

		history, err := svc.GetSnapshotHistory(context.Background(), space.ID, start, today)
		if err != nil {
			t.Fatalf("GetSnapshotHistory() returned unexpected error: %v", err)
		}

		if len(history) != 1 {
			t.Fatalf("Expected on-demand snapshot for today, got %d entries", len(history))
		}
		if history[0].TotalCurrentValue != 120000 {
			t.Errorf("Expected current value 120000, got %v", history[0].TotalCurrentValue)
		}
	})

	t.Run("does not compute today's point for past-only ranges", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		space := testutil.CreateSpace(t, db, "Family Office")

		end := time.Now().UTC().AddDate(0, 0, -2).Truncate(24 * time.Hour)
		start := end.AddDate(0, 0, -30)

		history, err := svc.GetSnapshotHistory(context.Background(), space.ID, start, end)
		if err != nil {
			t.Fatalf("GetSnapshotHistory() returned unexpected error: %v", err)
		}

		if len(history) != 0 {
			t.Errorf("Expected no snapshots, got %d", len(history))
		}
	})
}
