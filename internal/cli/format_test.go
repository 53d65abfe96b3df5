package cli

import (
	"testing"
	"time"
)

func TestFormatNumberIndianGrouping(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{10000, "10,000"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{123456789, "12,34,56,789"},
		{-45000, "-45,000"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{40, "₹40"},
		{120.4, "₹120"},
		{120.6, "₹121"},
		{125000, "₹1,25,000"},
		{-40, "-₹40"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.in); got != c.want {
			t.Errorf("FormatMoney(%.1f) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.425); got != "42%" {
		t.Fatalf("FormatPercent(0.425) = %q, want 42%%", got)
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	if got := FormatDayOfWeek(0); got != "Sun" {
		t.Fatalf("FormatDayOfWeek(0) = %q", got)
	}
	if got := FormatDayOfWeek(9); got != "???" {
		t.Fatalf("FormatDayOfWeek(9) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "03 Jun" {
		t.Fatalf("FormatDate = %q", got)
	}
}

func TestRenderSparklineBounds(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Fatalf("empty sparkline = %q", got)
	}
	got := RenderSparkline([]float64{0, 50, 100})
	if len([]rune(got)) != 3 {
		t.Fatalf("sparkline rune count = %d, want 3", len([]rune(got)))
	}
}
