package memory

import (
	"context"
	"testing"
	"time"

	"poongtao/internal/core"
)

func TestAppendAndListDay(t *testing.T) {
	s := New()
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC) // 12:00 UTC+7

	rec := core.NewRecord(core.Expense, "U1", "ข้าวเที่ยง", core.Money{Satang: 7075}, at)
	ref, err := s.Append(ctx, rec)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if ref != rec.TransactionID {
		t.Fatalf("expected ref %q, got %q", rec.TransactionID, ref)
	}

	got, err := s.ListDay(ctx, "U1", "2025-03-10")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Type != core.Expense || got[0].Amount.Satang != 7075 || got[0].Note != "ข้าวเที่ยง" {
		t.Fatalf("round-trip mismatch: %+v", got[0])
	}
}

func TestListDayFilters(t *testing.T) {
	s := New()
	ctx := context.Background()

	day1 := time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 5, 0, 0, 0, time.UTC)

	if _, err := s.Append(ctx, core.NewRecord(core.Income, "U1", "a", core.Money{Satang: 100}, day1)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := s.Append(ctx, core.NewRecord(core.Income, "U1", "b", core.Money{Satang: 100}, day2)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := s.Append(ctx, core.NewRecord(core.Income, "U2", "c", core.Money{Satang: 100}, day1)); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := s.ListDay(ctx, "U1", "2025-03-10")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Note != "a" {
		t.Fatalf("expected only U1 day-1 record, got %+v", got)
	}
}

func TestAppendDuplicateTransactionID(t *testing.T) {
	s := New()
	ctx := context.Background()
	at := time.Unix(1735689600, 0)

	rec := core.NewRecord(core.Expense, "U1", "x", core.Money{Satang: 100}, at)
	if _, err := s.Append(ctx, rec); err != nil {
		t.Fatalf("first append: %v", err)
	}
	// same type, user and second → same transaction id
	dup := core.NewRecord(core.Expense, "U1", "y", core.Money{Satang: 200}, at)
	if _, err := s.Append(ctx, dup); err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestAppendRejectsInvalid(t *testing.T) {
	s := New()
	rec := core.NewRecord(core.Expense, "U1", "", core.Money{Satang: 100}, time.Now())
	if _, err := s.Append(context.Background(), rec); err == nil {
		t.Fatalf("expected validation error for empty note")
	}
}
