package dto

// Wire shapes of the route provider's search response.

type SegmentOption struct {
	FlightNo    *string `json:"flight_no"`
	DepTime     *string `json:"dep_time"`
	ArrTime     *string `json:"arr_time"`
	PriceRub    *int64  `json:"price_rub"`
	DepartureAt *string `json:"departure_at"`
	ArrivalAt   *string `json:"arrival_at"`
}

type Segment struct {
	SegmentType string          `json:"segment_type"`
	Provider    string          `json:"provider"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Options     []SegmentOption `json:"options"`
}

type RoutePart struct {
	Segments []Segment `json:"segments"`
}

type SearchResponse struct {
	Type          string     `json:"type"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureDate string     `json:"departure_date"`
	ReturnDate    *string    `json:"return_date"`
	Outbound      RoutePart  `json:"outbound"`
	Return        *RoutePart `json:"return"`
}
