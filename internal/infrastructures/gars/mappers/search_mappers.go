package mappers

import (
	"strings"
	"time"

	"github.com/comeltrans/comeltrans/internal/domain/models"
	"github.com/comeltrans/comeltrans/internal/infrastructures/gars/dto"
)

// ToDomainSearch maps one provider response onto the domain model. Absent or
// unparsable optional fields map to nil rather than zero values; segment and
// option order is preserved.
func ToDomainSearch(payload dto.SearchResponse) models.SearchResponse {
	resp := models.SearchResponse{
		Kind:          payload.Type,
		Origin:        payload.Origin,
		Destination:   payload.Destination,
		DepartureDate: payload.DepartureDate,
		ReturnDate:    payload.ReturnDate,
		Outbound:      toDomainPart(payload.Outbound),
	}

	if payload.Return != nil {
		part := toDomainPart(*payload.Return)
		resp.Return = &part
	}

	return resp
}

func toDomainPart(part dto.RoutePart) models.RoutePart {
	segments := make([]models.Segment, 0, len(part.Segments))
	for _, seg := range part.Segments {
		segments = append(segments, toDomainSegment(seg))
	}
	return models.RoutePart{Segments: segments}
}

func toDomainSegment(seg dto.Segment) models.Segment {
	options := make([]models.SegmentOption, 0, len(seg.Options))
	for _, opt := range seg.Options {
		options = append(options, models.SegmentOption{
			FlightNo:       opt.FlightNo,
			PriceRub:       opt.PriceRub,
			DepartureClock: opt.DepTime,
			ArrivalClock:   opt.ArrTime,
			DepartureAt:    parseInstant(opt.DepartureAt),
			ArrivalAt:      parseInstant(opt.ArrivalAt),
		})
	}

	return models.Segment{
		Type:        models.TransportType(strings.ToLower(strings.TrimSpace(seg.SegmentType))),
		Provider:    seg.Provider,
		Origin:      seg.Origin,
		Destination: seg.Destination,
		Options:     options,
	}
}

func parseInstant(value *string) *time.Time {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, *value); err == nil {
			utc := t.UTC()
			return &utc
		}
	}

	return nil
}
