package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/ghuser/packstack/services/inventory/domain"
)

// DateLayout is the calendar-day wire format used for expiration and trip dates.
const DateLayout = time.DateOnly

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns the calendar day at UTC midnight.
// An RFC 3339 timestamp keeps the calendar day of its own offset.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return CalendarDay(t), nil
}

// CalendarDay drops the time of day, keeping the year/month/day as seen in t's location.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return CalendarDay(a).Equal(CalendarDay(b))
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return CalendarDay(t).Format(DateLayout)
}
