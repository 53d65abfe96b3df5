// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats a rupee amount for display. Whole rupees with
// Indian digit grouping; paise are noise at allowance scale.
// e.g., 125000 -> "₹1,25,000", -40 -> "-₹40"
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}
	return "₹" + FormatNumber(int64(math.Round(amount)))
}

// FormatNumber groups an integer the Indian way: the last three digits,
// then pairs. e.g., 1234567 -> "12,34,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)

	return strings.Join(groups, ",")
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday
// number (0 = Sunday).
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatDate renders a date compactly for tables and cards.
func FormatDate(t time.Time) string {
	return t.Format("02 Jan")
}
