package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/model"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/repository"
	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/testutil"
)

func entryAt(operation string, createdAt time.Time) model.AuditEntry {
	return model.AuditEntry{
		ID:        uuid.NewString(),
		Operation: operation,
		Status:    model.AuditStatusSuccess,
		CreatedAt: createdAt,
	}
}

// TestAuditRepository tests insert, ordered retrieval and retention deletes.
//
// WHY: The audit log is the only persisted diagnostic trail; Recent feeds
// the logs endpoint and DeleteOlderThan backs the daily retention sweep.
func TestAuditRepository(t *testing.T) {
	t.Run("returns entries newest first with limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewAuditRepository(db)

		now := time.Now().UTC()
		for i := 0; i < 3; i++ {
			err := repo.Insert(entryAt(model.AuditOpPrices, now.Add(time.Duration(i)*time.Minute)))
			if err != nil {
				t.Fatalf("Insert() returned unexpected error: %v", err)
			}
		}

		entries, err := repo.Recent(2)
		if err != nil {
			t.Fatalf("Recent() returned unexpected error: %v", err)
		}

		if len(entries) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(entries))
		}
		if !entries[0].CreatedAt.After(entries[1].CreatedAt) {
			t.Errorf("Expected newest first, got %v then %v", entries[0].CreatedAt, entries[1].CreatedAt)
		}
	})

	t.Run("round-trips all fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewAuditRepository(db)

		original := model.AuditEntry{
			ID:        uuid.NewString(),
			Operation: model.AuditOpSync,
			Status:    model.AuditStatusError,
			Detail:    "Google Sheet connection failed",
			ItemCount: 7,
			CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		}
		if err := repo.Insert(original); err != nil {
			t.Fatalf("Insert() returned unexpected error: %v", err)
		}

		entries, err := repo.Recent(1)
		if err != nil {
			t.Fatalf("Recent() returned unexpected error: %v", err)
		}
		got := entries[0]

		if got.ID != original.ID || got.Operation != original.Operation ||
			got.Status != original.Status || got.Detail != original.Detail ||
			got.ItemCount != original.ItemCount || !got.CreatedAt.Equal(original.CreatedAt) {
			t.Errorf("Entry mismatch:\nexpected %+v\ngot      %+v", original, got)
		}
	})

	t.Run("deletes only entries older than the cutoff", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewAuditRepository(db)

		now := time.Now().UTC()
		old := entryAt(model.AuditOpLoad, now.AddDate(0, 0, -40))
		recent := entryAt(model.AuditOpLoad, now)
		if err := repo.Insert(old); err != nil {
			t.Fatalf("Insert() returned unexpected error: %v", err)
		}
		if err := repo.Insert(recent); err != nil {
			t.Fatalf("Insert() returned unexpected error: %v", err)
		}

		deleted, err := repo.DeleteOlderThan(now.AddDate(0, 0, -30))
		if err != nil {
			t.Fatalf("DeleteOlderThan() returned unexpected error: %v", err)
		}
		if deleted != 1 {
			t.Errorf("Expected 1 deleted entry, got %d", deleted)
		}

		entries, err := repo.Recent(10)
		if err != nil {
			t.Fatalf("Recent() returned unexpected error: %v", err)
		}
		if len(entries) != 1 || entries[0].ID != recent.ID {
			t.Errorf("Expected only the recent entry to remain, got %+v", entries)
		}
	})
}
