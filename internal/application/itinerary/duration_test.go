package itinerary

import (
	"testing"
	"time"

	"github.com/comeltrans/comeltrans/internal/domain/models"
)

func clockOf(v string) *string { return &v }

func instantOf(v string) *time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return &t
}

func clockOption(dep, arr string) models.SegmentOption {
	return models.SegmentOption{DepartureClock: clockOf(dep), ArrivalClock: clockOf(arr)}
}

func TestEstimateDurationHours_SumsAcrossOptions(t *testing.T) {
	t.Parallel()

	// Two options on one segment: 150 and 120 minutes are summed, not
	// minimized, so 270 minutes rounds to 5 hours.
	outbound := models.RoutePart{Segments: []models.Segment{
		{Options: []models.SegmentOption{
			clockOption("10:00", "12:30"),
			clockOption("09:00", "11:00"),
		}},
	}}

	got := EstimateDurationHours(outbound, nil)
	if got == nil || *got != 5 {
		t.Fatalf("unexpected duration: %v", got)
	}
}

func TestEstimateDurationHours_WrapsPastMidnight(t *testing.T) {
	t.Parallel()

	outbound := models.RoutePart{Segments: []models.Segment{
		{Options: []models.SegmentOption{clockOption("23:30", "01:00")}},
	}}

	got := EstimateDurationHours(outbound, nil)
	if got == nil || *got != 2 {
		// 90 wrapped minutes round to 2 hours.
		t.Fatalf("unexpected duration: %v", got)
	}
}

func TestEstimateDurationHours_InstantFallback(t *testing.T) {
	t.Parallel()

	outbound := models.RoutePart{Segments: []models.Segment{
		{Options: []models.SegmentOption{{
			DepartureAt: instantOf("2025-11-25T14:00:00Z"),
			ArrivalAt:   instantOf("2025-11-25T17:30:00Z"),
		}}},
	}}

	got := EstimateDurationHours(outbound, nil)
	if got == nil || *got != 4 {
		// 210 minutes round to 4 hours.
		t.Fatalf("unexpected duration: %v", got)
	}
}

func TestEstimateDurationHours_ClockPairWinsOverInstants(t *testing.T) {
	t.Parallel()

	outbound := models.RoutePart{Segments: []models.Segment{
		{Options: []models.SegmentOption{{
			DepartureClock: clockOf("10:00"),
			ArrivalClock:   clockOf("11:00"),
			DepartureAt:    instantOf("2025-11-25T00:00:00Z"),
			ArrivalAt:      instantOf("2025-11-26T00:00:00Z"),
		}}},
	}}

	got := EstimateDurationHours(outbound, nil)
	if got == nil || *got != 1 {
		t.Fatalf("clock pair should take precedence: %v", got)
	}
}

func TestEstimateDurationHours_NonPositiveInstantDeltaSkipped(t *testing.T) {
	t.Parallel()

	outbound := models.RoutePart{Segments: []models.Segment{
		{Options: []models.SegmentOption{{
			DepartureAt: instantOf("2025-11-25T17:00:00Z"),
			ArrivalAt:   instantOf("2025-11-25T14:00:00Z"),
		}}},
	}}

	if got := EstimateDurationHours(outbound, nil); got != nil {
		t.Fatalf("expected nil when the only instant pair is inverted, got %v", *got)
	}
}

func TestEstimateDurationHours_SumsBothLegs(t *testing.T) {
	t.Parallel()

	outbound := models.RoutePart{Segments: []models.Segment{
		{Options: []models.SegmentOption{clockOption("08:00", "10:00")}},
	}}
	ret := &models.RoutePart{Segments: []models.Segment{
		{Options: []models.SegmentOption{clockOption("18:00", "21:00")}},
	}}

	got := EstimateDurationHours(outbound, ret)
	if got == nil || *got != 5 {
		t.Fatalf("unexpected duration: %v", got)
	}
}

func TestEstimateDurationHours_PartialClockParses(t *testing.T) {
	t.Parallel()

	// Single-digit hour and trailing seconds both fit the HH:MM prefix.
	outbound := models.RoutePart{Segments: []models.Segment{
		{Options: []models.SegmentOption{clockOption("9:05", "10:35:00")}},
	}}

	got := EstimateDurationHours(outbound, nil)
	if got == nil || *got != 2 {
		// 90 minutes round to 2 hours.
		t.Fatalf("unexpected duration: %v", got)
	}
}

func TestEstimateDurationHours_NoMeasurements(t *testing.T) {
	t.Parallel()

	outbound := models.RoutePart{Segments: []models.Segment{
		{Options: []models.SegmentOption{
			{DepartureClock: clockOf("not a time"), ArrivalClock: clockOf("??")},
			{},
		}},
	}}

	if got := EstimateDurationHours(outbound, nil); got != nil {
		t.Fatalf("expected nil without measurements, got %v", *got)
	}
}
