package itinerary

import "github.com/comeltrans/comeltrans/internal/domain/models"

// TransferCount derives the number of transfers from segment counts alone:
// total segments minus one trip per direction, floored at zero.
func TransferCount(outbound models.RoutePart, ret *models.RoutePart) int {
	total := len(outbound.Segments)
	trips := 1
	if ret != nil {
		total += len(ret.Segments)
		trips = 2
	}

	if total < trips {
		return 0
	}
	return total - trips
}
