package itinerary

import (
	"math"
	"sort"

	"github.com/comeltrans/comeltrans/internal/domain/models"
)

// BuildVariants derives the comparable variants of one search response.
// A response currently yields a single "main" shape, but callers always
// receive a collection so that alternate route shapes stay additive.
func BuildVariants(resp models.SearchResponse) []models.Variant {
	return []models.Variant{
		{
			ID:            "main",
			Title:         RouteTitle(resp.Outbound.Segments),
			MinPriceRub:   MinPriceRub(resp.Outbound, resp.Return),
			DurationHours: EstimateDurationHours(resp.Outbound, resp.Return),
			Transfers:     TransferCount(resp.Outbound, resp.Return),
		},
	}
}

// Rank returns the variants in ascending order of the chosen key. The sort
// is stable, and an unknown price or duration ranks after every known value.
// The input slice is left untouched.
func Rank(variants []models.Variant, key models.SortKey) []models.Variant {
	ranked := make([]models.Variant, len(variants))
	copy(ranked, variants)

	sort.SliceStable(ranked, func(i, j int) bool {
		switch key {
		case models.SortByPrice:
			return priceOrMax(ranked[i].MinPriceRub) < priceOrMax(ranked[j].MinPriceRub)
		case models.SortByDuration:
			return hoursOrMax(ranked[i].DurationHours) < hoursOrMax(ranked[j].DurationHours)
		default:
			return ranked[i].Transfers < ranked[j].Transfers
		}
	})

	return ranked
}

// Cheapest returns the variant with the lowest known price. The comparison
// is a strict less-than, so ties keep the earliest-encountered variant, and
// an unknown price never beats a known one. ok is false only for an empty
// collection.
func Cheapest(variants []models.Variant) (models.Variant, bool) {
	if len(variants) == 0 {
		return models.Variant{}, false
	}

	best := variants[0]
	for _, v := range variants[1:] {
		if priceOrMax(v.MinPriceRub) < priceOrMax(best.MinPriceRub) {
			best = v
		}
	}
	return best, true
}

// Fastest is Cheapest over the duration key.
func Fastest(variants []models.Variant) (models.Variant, bool) {
	if len(variants) == 0 {
		return models.Variant{}, false
	}

	best := variants[0]
	for _, v := range variants[1:] {
		if hoursOrMax(v.DurationHours) < hoursOrMax(best.DurationHours) {
			best = v
		}
	}
	return best, true
}

func priceOrMax(price *int64) int64 {
	if price == nil {
		return math.MaxInt64
	}
	return *price
}

func hoursOrMax(hours *int) int {
	if hours == nil {
		return math.MaxInt
	}
	return *hours
}
