package handlers

import (
	"time"

	"github.com/comeltrans/comeltrans/internal/application/itinerary"
	"github.com/comeltrans/comeltrans/internal/domain/models"
)

// Wire shapes of this service's own API. The search body mirrors the
// provider's response format so existing clients keep working, with the
// server-derived variants attached.

type variantBody struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	MinPrice      *int64 `json:"min_price"`
	DurationHours *int   `json:"duration_hours"`
	Transfers     int    `json:"transfers"`
}

type segmentOptionBody struct {
	FlightNo    *string `json:"flight_no,omitempty"`
	DepTime     *string `json:"dep_time,omitempty"`
	ArrTime     *string `json:"arr_time,omitempty"`
	PriceRub    *int64  `json:"price_rub,omitempty"`
	DepartureAt *string `json:"departure_at,omitempty"`
	ArrivalAt   *string `json:"arrival_at,omitempty"`
}

type segmentBody struct {
	SegmentType string              `json:"segment_type"`
	Provider    string              `json:"provider"`
	Origin      string              `json:"origin"`
	Destination string              `json:"destination"`
	Options     []segmentOptionBody `json:"options"`
}

type routePartBody struct {
	Segments []segmentBody `json:"segments"`
}

type searchBody struct {
	Type          string         `json:"type"`
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	DepartureDate string         `json:"departure_date"`
	ReturnDate    *string        `json:"return_date"`
	Outbound      routePartBody  `json:"outbound"`
	Return        *routePartBody `json:"return"`
}

type searchResponseBody struct {
	Search   searchBody    `json:"search"`
	Variants []variantBody `json:"variants"`
}

func toVariantBodies(variants []models.Variant) []variantBody {
	out := make([]variantBody, 0, len(variants))
	for _, v := range variants {
		out = append(out, variantBody{
			ID:            v.ID,
			Title:         v.Title,
			MinPrice:      v.MinPriceRub,
			DurationHours: v.DurationHours,
			Transfers:     v.Transfers,
		})
	}
	return out
}

func toSearchBody(resp models.SearchResponse) searchBody {
	body := searchBody{
		Type:          resp.Kind,
		Origin:        resp.Origin,
		Destination:   resp.Destination,
		DepartureDate: resp.DepartureDate,
		ReturnDate:    resp.ReturnDate,
		Outbound:      toRoutePartBody(resp.Outbound),
	}
	if resp.Return != nil {
		part := toRoutePartBody(*resp.Return)
		body.Return = &part
	}
	return body
}

func toRoutePartBody(part models.RoutePart) routePartBody {
	segments := make([]segmentBody, 0, len(part.Segments))
	for _, seg := range part.Segments {
		segments = append(segments, segmentBody{
			SegmentType: string(seg.Type),
			Provider:    seg.Provider,
			Origin:      seg.Origin,
			Destination: seg.Destination,
			Options:     toOptionBodies(seg.Options),
		})
	}
	return routePartBody{Segments: segments}
}

func toOptionBodies(options []models.SegmentOption) []segmentOptionBody {
	out := make([]segmentOptionBody, 0, len(options))
	for _, opt := range options {
		out = append(out, segmentOptionBody{
			FlightNo:    opt.FlightNo,
			DepTime:     opt.DepartureClock,
			ArrTime:     opt.ArrivalClock,
			PriceRub:    opt.PriceRub,
			DepartureAt: formatInstant(opt.DepartureAt),
			ArrivalAt:   formatInstant(opt.ArrivalAt),
		})
	}
	return out
}

func formatInstant(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

type bookingBody struct {
	ID             int64   `json:"id"`
	RouteName      string  `json:"route_name"`
	Status         string  `json:"status"`
	PriceRub       int64   `json:"price_rub"`
	PassengerCount int     `json:"passenger_count"`
	DepartureDate  string  `json:"departure_date"`
	ReturnDate     *string `json:"return_date"`
	CreatedAt      string  `json:"created_at"`
}

func toBookingBody(b models.Booking) bookingBody {
	body := bookingBody{
		ID:             b.ID,
		RouteName:      b.RouteName,
		Status:         b.Status,
		PriceRub:       b.TotalAmountRub,
		PassengerCount: b.PassengerCount,
		DepartureDate:  itinerary.FormatWireDate(b.DepartureDate),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
	if b.ReturnDate != nil {
		ret := itinerary.FormatWireDate(*b.ReturnDate)
		body.ReturnDate = &ret
	}
	return body
}

func toBookingBodies(bookings []models.Booking) []bookingBody {
	out := make([]bookingBody, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingBody(b))
	}
	return out
}
