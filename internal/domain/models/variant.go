package models

// Variant is a derived, read-only summary of one candidate route shape
// within a search response. Unknown price or duration stays nil, never zero.
type Variant struct {
	ID            string
	Title         string
	MinPriceRub   *int64
	DurationHours *int
	Transfers     int
}

// SortKey selects the metric variants are ranked by.
type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByDuration  SortKey = "duration"
	SortByTransfers SortKey = "transfers"
)
