package itinerary

import (
	"strings"
	"time"

	derr "github.com/comeltrans/comeltrans/internal/domain/errors"
)

const wireDateLayout = "02.01.2006"

// ToWireDate converts a calendar-picker date (YYYY-MM-DD) into the wire
// format DD.MM.YYYY. Empty input yields an empty string. Day and month
// ranges are not validated: a malformed value is reordered structurally and
// propagated as-is, which is a documented edge case rather than an error.
func ToWireDate(calendarDate string) string {
	if calendarDate == "" {
		return ""
	}

	parts := strings.SplitN(calendarDate, "-", 3)
	if len(parts) != 3 {
		return calendarDate
	}

	return parts[2] + "." + parts[1] + "." + parts[0]
}

// ParseWireDate parses a wire-format date DD.MM.YYYY.
func ParseWireDate(value string) (time.Time, error) {
	t, err := time.Parse(wireDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, derr.ErrInvalidDate
	}
	return t, nil
}

// FormatWireDate renders a date in the wire format DD.MM.YYYY.
func FormatWireDate(t time.Time) string {
	return t.Format(wireDateLayout)
}
