package itinerary

import (
	"errors"
	"testing"
	"time"

	derr "github.com/comeltrans/comeltrans/internal/domain/errors"
)

func TestToWireDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "calendar date", in: "2025-11-25", want: "25.11.2025"},
		{name: "empty input", in: "", want: ""},
		{name: "month range not validated", in: "2025-13-40", want: "40.13.2025"},
		{name: "too few parts pass through", in: "2025-11", want: "2025-11"},
		{name: "no separator passes through", in: "20251125", want: "20251125"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToWireDate(tc.in); got != tc.want {
				t.Fatalf("ToWireDate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseWireDate(t *testing.T) {
	t.Parallel()

	got, err := ParseWireDate("25.11.2025")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected date: got %v, want %v", got, want)
	}

	if _, err := ParseWireDate("2025-11-25"); !errors.Is(err, derr.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestFormatWireDate_RoundTrips(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	if got := FormatWireDate(day); got != "03.02.2026" {
		t.Fatalf("unexpected wire date: %q", got)
	}
}
