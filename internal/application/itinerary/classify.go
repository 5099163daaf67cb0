package itinerary

import "github.com/comeltrans/comeltrans/internal/domain/models"

const (
	TitleAirRiver = "Air + River"
	TitleAirBus   = "Air + Bus"
	TitleAir      = "Air route"
	TitleGround   = "Ground route"
	TitleGeneric  = "Route"
)

// RouteTitle labels a route by the modalities of its outbound segments.
// The return leg is not considered: the title summarizes the outbound shape.
// The rules form a priority table and only the first matching one fires.
func RouteTitle(outbound []models.Segment) string {
	var hasFlight, hasBus, hasRiver bool
	for _, seg := range outbound {
		switch seg.Type {
		case models.TransportFlight:
			hasFlight = true
		case models.TransportBus:
			hasBus = true
		case models.TransportRiver:
			hasRiver = true
		}
	}

	switch {
	case hasFlight && hasRiver:
		return TitleAirRiver
	case hasFlight && hasBus:
		return TitleAirBus
	case hasFlight:
		return TitleAir
	case hasBus || hasRiver:
		return TitleGround
	default:
		return TitleGeneric
	}
}
