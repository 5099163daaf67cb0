package itinerary

import "github.com/comeltrans/comeltrans/internal/domain/models"

// MinPriceRub returns the smallest price found across every option of every
// segment of both legs, or nil when no option anywhere carries one. Options
// without a price are skipped, not treated as zero, and no ordering of
// options is assumed.
func MinPriceRub(outbound models.RoutePart, ret *models.RoutePart) *int64 {
	var best *int64

	scan := func(part models.RoutePart) {
		for _, seg := range part.Segments {
			for _, opt := range seg.Options {
				if opt.PriceRub == nil {
					continue
				}
				if best == nil || *opt.PriceRub < *best {
					price := *opt.PriceRub
					best = &price
				}
			}
		}
	}

	scan(outbound)
	if ret != nil {
		scan(*ret)
	}

	return best
}
