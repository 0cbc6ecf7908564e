package summary

import (
	"strings"
	"testing"
	"time"

	"poongtao/internal/core"
)

func rec(t core.RecordType, satang int64) core.Record {
	return core.NewRecord(t, "U1", "note", core.Money{Satang: satang}, time.Unix(1735689600, 0))
}

func TestTotalsEmpty(t *testing.T) {
	got := Totals(nil)
	if got.Income.Satang != 0 || got.Expense.Satang != 0 || got.Net.Satang != 0 {
		t.Fatalf("expected all-zero totals, got %+v", got)
	}
}

func TestTotalsMixed(t *testing.T) {
	got := Totals([]core.Record{
		rec(core.Income, 10000),
		rec(core.Expense, 3050),
	})
	if got.Income.Satang != 10000 {
		t.Fatalf("expected income 10000, got %d", got.Income.Satang)
	}
	if got.Expense.Satang != 3050 {
		t.Fatalf("expected expense 3050, got %d", got.Expense.Satang)
	}
	if got.Net.Satang != 6950 {
		t.Fatalf("expected net 6950, got %d", got.Net.Satang)
	}
}

func TestTotalsNegativeNet(t *testing.T) {
	got := Totals([]core.Record{
		rec(core.Income, 1000),
		rec(core.Expense, 2500),
	})
	if got.Net.Satang != -1500 {
		t.Fatalf("expected net -1500, got %d", got.Net.Satang)
	}
}

func TestRenderHeaderThaiMonth(t *testing.T) {
	day := time.Date(2025, 8, 9, 12, 0, 0, 0, core.Bangkok)
	out := Render(nil, day)
	if !strings.HasPrefix(out, "สรุปรายการของคุณในวันที่ 09 สิงหาคม 2025") {
		t.Fatalf("unexpected header: %q", out)
	}
}

func TestRenderLines(t *testing.T) {
	day := time.Date(2025, 1, 15, 12, 0, 0, 0, core.Bangkok)
	out := Render([]core.Record{
		rec(core.Income, 10000),
		rec(core.Expense, 3050),
	}, day)

	wantLines := []string{
		"สรุปรายการของคุณในวันที่ 15 มกราคม 2025",
		"รายรับวันนี้: 100.00 บาท",
		"รายจ่ายวันนี้: 30.50 บาท",
		"เงินคงเหลือปัจจุบัน: 69.50 บาท",
	}
	lines := strings.Split(out, "\n")
	if len(lines) != len(wantLines) {
		t.Fatalf("expected %d lines, got %d: %q", len(wantLines), len(lines), out)
	}
	for i, want := range wantLines {
		if lines[i] != want {
			t.Fatalf("line %d: expected %q, got %q", i, want, lines[i])
		}
	}
}

func TestRenderEmptyZeroTotals(t *testing.T) {
	day := time.Date(2025, 12, 1, 12, 0, 0, 0, core.Bangkok)
	out := Render(nil, day)
	if !strings.Contains(out, "รายรับวันนี้: 0.00 บาท") {
		t.Fatalf("expected zero income line: %q", out)
	}
	if !strings.Contains(out, "ธันวาคม") {
		t.Fatalf("expected Thai month name for December: %q", out)
	}
}
