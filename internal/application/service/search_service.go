package service

import (
	"context"
	"strings"

	"github.com/comeltrans/comeltrans/internal/application/itinerary"
	derr "github.com/comeltrans/comeltrans/internal/domain/errors"
	"github.com/comeltrans/comeltrans/internal/domain/models"
	"github.com/comeltrans/comeltrans/internal/domain/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// SearchService runs one itinerary search: a single provider fetch followed
// by the pure derivations that turn the raw response into ranked variants.
type SearchService struct {
	log    *zap.Logger
	routes ports.RouteSource
}

func NewSearchService(log *zap.Logger, routes ports.RouteSource) *SearchService {
	if log == nil {
		log = zap.NewNop()
	}

	return &SearchService{
		log:    log,
		routes: routes,
	}
}

// SearchResult pairs the raw provider response with its derived variants.
// Variants are owned by this result set and discarded with it.
type SearchResult struct {
	Search   models.SearchResponse
	Variants []models.Variant
}

func (s *SearchService) Search(ctx context.Context, query ports.RouteQuery) (SearchResult, error) {
	const op = "service.Search"
	tracer := otel.Tracer("route-backend/service")
	ctx, span := tracer.Start(ctx, op)
	defer span.End()
	span.SetAttributes(
		attribute.String("route.origin", strings.TrimSpace(query.Origin)),
		attribute.String("route.destination", strings.TrimSpace(query.Destination)),
	)

	logger := s.log.With(
		zap.String("op", op),
		zap.String("origin", query.Origin),
		zap.String("destination", query.Destination),
		zap.String("departure_date", query.DepartureDate),
	)

	if strings.TrimSpace(query.Origin) == "" || strings.TrimSpace(query.Destination) == "" {
		logger.Warn("empty origin or destination")
		span.SetStatus(otelcodes.Error, "invalid query")
		return SearchResult{}, derr.ErrInvalidQuery
	}
	if _, err := itinerary.ParseWireDate(query.DepartureDate); err != nil {
		logger.Warn("invalid departure date")
		span.SetStatus(otelcodes.Error, "invalid departure date")
		return SearchResult{}, derr.ErrInvalidDate
	}
	if query.ReturnDate != nil {
		if _, err := itinerary.ParseWireDate(*query.ReturnDate); err != nil {
			logger.Warn("invalid return date")
			span.SetStatus(otelcodes.Error, "invalid return date")
			return SearchResult{}, derr.ErrInvalidDate
		}
	}

	resp, err := s.routes.Search(ctx, query)
	if err != nil {
		logger.Warn("route source failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "route source failed")
		return SearchResult{}, err
	}

	variants := itinerary.BuildVariants(resp)

	span.SetAttributes(attribute.Int("route.variants_count", len(variants)))
	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("variants built", zap.Int("variants_count", len(variants)))

	return SearchResult{Search: resp, Variants: variants}, nil
}
