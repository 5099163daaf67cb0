package models

import "time"

// TransportType labels one segment's modality. Provider feeds may carry
// values outside the known set; those are kept as-is and treated as "other".
type TransportType string

const (
	TransportFlight TransportType = "flight"
	TransportBus    TransportType = "bus"
	TransportRiver  TransportType = "river"
)

// SegmentOption is one priced, timed choice for fulfilling a segment.
// Every field that a provider may omit is a pointer: a zero price and a
// missing price are different things.
type SegmentOption struct {
	FlightNo       *string
	PriceRub       *int64
	DepartureClock *string // local time of day, "HH:MM" prefix
	ArrivalClock   *string
	DepartureAt    *time.Time
	ArrivalAt      *time.Time
}

// Segment is one provider-operated hop within a leg.
type Segment struct {
	Type        TransportType
	Provider    string
	Origin      string
	Destination string
	Options     []SegmentOption
}

// RoutePart is one directional leg. Segment order is travel order.
type RoutePart struct {
	Segments []Segment
}

// SearchResponse is the result of one search. Return is set iff the search
// requested a round trip. Dates are in the wire format DD.MM.YYYY.
type SearchResponse struct {
	Kind          string
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    *string
	Outbound      RoutePart
	Return        *RoutePart
}
