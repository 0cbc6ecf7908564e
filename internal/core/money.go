// Package core provides the ledger domain model and money handling.
//
// Amounts are held as satang (hundredths of a baht) in int64 to avoid
// floating-point drift; parsing and formatting always keep exactly two
// fractional digits.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseDecimalToSatang converts a decimal baht string to satang.
//
// It accepts a plain non-negative decimal with an optional fractional part
// and performs half-up rounding on the third decimal place. Zero is a valid
// amount. Returns ErrInvalidAmount for anything that is not a non-negative
// decimal number, including overflow.
//
// Examples:
//
//	ParseDecimalToSatang("70.75") -> 7075, nil
//	ParseDecimalToSatang("3000")  -> 300000, nil
//	ParseDecimalToSatang("1.005") -> 101, nil (rounds up)
func ParseDecimalToSatang(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	// Take the first two fractional digits; half-up rounding on the third
	var fracSatang int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracSatang = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracSatang += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracSatang++
			}
		}
	}
	return iv*100 + fracSatang, nil
}

// String renders the amount in baht with exactly two decimal digits,
// e.g. 7075 satang -> "70.75". Negative values keep their sign; they only
// appear as computed nets, never as stored amounts.
func (m Money) String() string {
	satang := m.Satang
	sign := ""
	if satang < 0 {
		sign = "-"
		satang = -satang
	}
	return sign + strconv.FormatInt(satang/100, 10) + "." + pad2(satang%100)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// Baht returns the baht value as a float64 for display surfaces that need a
// number (e.g. spreadsheet cells). Use satang for all arithmetic.
func (m Money) Baht() float64 {
	return float64(m.Satang) / 100.0
}
