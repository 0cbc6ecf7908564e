package core

import "testing"

func TestParseDecimalToSatang(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"70.75", 7075, true},
		{"3000", 300000, true},
		{"0", 0, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
		{"99999999999999999999", 0, false}, // overflow
	}
	for _, tc := range cases {
		got, err := ParseDecimalToSatang(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		satang int64
		want   string
	}{
		{7075, "70.75"},
		{300000, "3000.00"},
		{0, "0.00"},
		{5, "0.05"},
		{-2925, "-29.25"},
	}
	for _, tc := range cases {
		if got := (Money{Satang: tc.satang}).String(); got != tc.want {
			t.Fatalf("%d satang: expected %q, got %q", tc.satang, tc.want, got)
		}
	}
}

func TestMoneyBaht(t *testing.T) {
	if got := (Money{Satang: 7075}).Baht(); got != 70.75 {
		t.Fatalf("expected 70.75, got %v", got)
	}
}
