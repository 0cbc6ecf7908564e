package core

import (
	"testing"
	"time"
)

func TestNewRecordDerivation(t *testing.T) {
	// 18:30 UTC is already the next day in UTC+7
	at := time.Date(2025, 1, 31, 18, 30, 0, 0, time.UTC)
	rec := NewRecord(Expense, "U123", "ข้าวเที่ยง", Money{Satang: 7075}, at)

	if rec.TransactionID != "expense-U123-1738348200" {
		t.Fatalf("unexpected transaction id %q", rec.TransactionID)
	}
	if rec.CreatedAt != at.Unix() {
		t.Fatalf("expected created_at %d, got %d", at.Unix(), rec.CreatedAt)
	}
	if rec.Date != "2025-02-01" {
		t.Fatalf("expected date 2025-02-01, got %q", rec.Date)
	}
	if rec.Time != "01:30" {
		t.Fatalf("expected time 01:30, got %q", rec.Time)
	}
	if err := rec.Validate(); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}
}

func TestDateOf(t *testing.T) {
	at := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	if got := DateOf(at); got != "2025-06-02" {
		t.Fatalf("expected 2025-06-02, got %q", got)
	}
}

func TestRecordValidate(t *testing.T) {
	at := time.Unix(1735689600, 0)
	good := NewRecord(Income, "U1", "note", Money{Satang: 100}, at)
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Record{
		func() Record { r := good; r.Type = "transfer"; return r }(),
		func() Record { r := good; r.UserID = " "; return r }(),
		func() Record { r := good; r.Note = ""; return r }(),
		func() Record { r := good; r.Amount = Money{Satang: -1}; return r }(),
		func() Record { r := good; r.TransactionID = ""; return r }(),
	}
	for i, r := range bads {
		if err := r.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
