// Package summary aggregates a day's records into the Thai report text.
package summary

import (
	"fmt"
	"time"

	"poongtao/internal/core"
)

var thaiMonths = map[time.Month]string{
	time.January:   "มกราคม",
	time.February:  "กุมภาพันธ์",
	time.March:     "มีนาคม",
	time.April:     "เมษายน",
	time.May:       "พฤษภาคม",
	time.June:      "มิถุนายน",
	time.July:      "กรกฎาคม",
	time.August:    "สิงหาคม",
	time.September: "กันยายน",
	time.October:   "ตุลาคม",
	time.November:  "พฤศจิกายน",
	time.December:  "ธันวาคม",
}

// DailyTotals holds the aggregated amounts for one day.
type DailyTotals struct {
	Income  core.Money
	Expense core.Money
	Net     core.Money
}

// Totals sums the given records by type. An empty slice yields zero totals.
// Net is today's income minus today's expenses, not a running balance.
func Totals(records []core.Record) DailyTotals {
	var t DailyTotals
	for _, r := range records {
		switch r.Type {
		case core.Income:
			t.Income.Satang += r.Amount.Satang
		case core.Expense:
			t.Expense.Satang += r.Amount.Satang
		}
	}
	t.Net = core.Money{Satang: t.Income.Satang - t.Expense.Satang}
	return t
}

// Render produces the fixed multi-line summary message for the calendar day
// of `day` (evaluated in the Bangkok offset), with the month name in Thai.
func Render(records []core.Record, day time.Time) string {
	local := day.In(core.Bangkok)
	t := Totals(records)
	return fmt.Sprintf(
		"สรุปรายการของคุณในวันที่ %02d %s %d\n"+
			"รายรับวันนี้: %s บาท\n"+
			"รายจ่ายวันนี้: %s บาท\n"+
			"เงินคงเหลือปัจจุบัน: %s บาท",
		local.Day(), thaiMonths[local.Month()], local.Year(),
		t.Income, t.Expense, t.Net,
	)
}
