package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/comeltrans/comeltrans/internal/application/itinerary"
	"github.com/comeltrans/comeltrans/internal/application/service"
	derr "github.com/comeltrans/comeltrans/internal/domain/errors"
	"github.com/comeltrans/comeltrans/internal/domain/models"
	"github.com/comeltrans/comeltrans/internal/domain/ports"
	"go.uber.org/zap"
)

type RouteSearcher interface {
	Search(ctx context.Context, query ports.RouteQuery) (service.SearchResult, error)
}

type SearchHandler struct {
	log      *zap.Logger
	searcher RouteSearcher
	timeout  time.Duration
}

func NewSearchHandler(log *zap.Logger, searcher RouteSearcher, timeout time.Duration) *SearchHandler {
	return &SearchHandler{
		log:      log,
		searcher: searcher,
		timeout:  timeout,
	}
}

// Search handles GET /api/v1/routes/search. Dates arrive in the wire format
// DD.MM.YYYY or as calendar-picker values YYYY-MM-DD, which are normalized
// before validation; the optional sort key orders the returned variants.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	origin, ok := requiredQuery(r, "origin")
	if !ok {
		writeError(w, http.StatusBadRequest, "origin is required")
		return
	}
	destination, ok := requiredQuery(r, "destination")
	if !ok {
		writeError(w, http.StatusBadRequest, "destination is required")
		return
	}
	departureDate, ok := requiredQuery(r, "departure_date")
	if !ok {
		writeError(w, http.StatusBadRequest, "departure_date is required")
		return
	}

	query := ports.RouteQuery{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: itinerary.ToWireDate(departureDate),
	}
	if ret := optionalQuery(r, "return_date"); ret != nil {
		wire := itinerary.ToWireDate(*ret)
		query.ReturnDate = &wire
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result, err := h.searcher.Search(ctx, query)
	if err != nil {
		status, message := mapSearchError(err)
		writeError(w, status, message)
		return
	}

	variants := result.Variants
	if sortKey := optionalQuery(r, "sort"); sortKey != nil {
		variants = itinerary.Rank(variants, models.SortKey(*sortKey))
	}

	writeJSON(w, http.StatusOK, searchResponseBody{
		Search:   toSearchBody(result.Search),
		Variants: toVariantBodies(variants),
	})
}

func mapSearchError(err error) (int, string) {
	switch {
	case errors.Is(err, derr.ErrInvalidQuery):
		return http.StatusBadRequest, "origin and destination are required"
	case errors.Is(err, derr.ErrInvalidDate):
		return http.StatusBadRequest, "dates must use the DD.MM.YYYY format"
	case errors.Is(err, derr.ErrRouteNotFound):
		return http.StatusNotFound, "no route for the requested points"
	case errors.Is(err, derr.ErrSourceTemporary):
		return http.StatusServiceUnavailable, "route source is temporarily unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "route search timed out"
	default:
		return http.StatusBadGateway, "route search failed"
	}
}
