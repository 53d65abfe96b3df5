package tui

import (
	"testing"
	"time"
)

func TestSplitMembers(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"Me, Aman, Priya", 3},
		{"Me,,Aman", 2},
		{"  ", 0},
		{"Solo", 1},
	}
	for _, c := range cases {
		if got := splitMembers(c.in); len(got) != c.want {
			t.Errorf("splitMembers(%q) = %v, want %d members", c.in, got, c.want)
		}
	}
}

func TestParseDateOr(t *testing.T) {
	fallback := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	got := parseDateOr("2025-03-04", fallback)
	if got.Day() != 4 || got.Month() != 3 {
		t.Errorf("parseDateOr parsed = %v, want 04 Mar", got)
	}

	if got := parseDateOr("", fallback); !got.Equal(fallback) {
		t.Errorf("blank date = %v, want fallback", got)
	}
	if got := parseDateOr("garbage", fallback); !got.Equal(fallback) {
		t.Errorf("bad date = %v, want fallback", got)
	}
}

func TestValidators(t *testing.T) {
	if err := validAmount("120.50"); err != nil {
		t.Errorf("validAmount(120.50) = %v", err)
	}
	if err := validAmount("-5"); err == nil {
		t.Error("validAmount(-5) should fail")
	}
	if err := validAmount("abc"); err == nil {
		t.Error("validAmount(abc) should fail")
	}

	if err := validRefundable("-40"); err != nil {
		t.Errorf("validRefundable(-40) = %v, refunds are allowed", err)
	}
	if err := validRefundable("0"); err == nil {
		t.Error("validRefundable(0) should fail")
	}

	if err := validOptionalDate(""); err != nil {
		t.Errorf("blank optional date = %v", err)
	}
	if err := validOptionalDate("2025-13-40"); err == nil {
		t.Error("impossible date should fail")
	}
}

func TestDaysUntil(t *testing.T) {
	today := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	if got := daysUntil(today, time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)); got != 5 {
		t.Errorf("daysUntil = %d, want 5", got)
	}
	if got := daysUntil(today, today); got != 0 {
		t.Errorf("daysUntil same day = %d, want 0", got)
	}
	if got := daysUntil(today, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)); got != -2 {
		t.Errorf("daysUntil past = %d, want -2", got)
	}
}
