package service

import (
	"context"

	derr "github.com/comeltrans/comeltrans/internal/domain/errors"
	"github.com/comeltrans/comeltrans/internal/domain/models"
	"github.com/comeltrans/comeltrans/internal/domain/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// PurchaseService gates the "buy" action on a variant behind the session
// credential and issues the booking-creation call.
type PurchaseService struct {
	log      *zap.Logger
	sessions ports.SessionSource
	bookings ports.BookingCreator
}

func NewPurchaseService(log *zap.Logger, sessions ports.SessionSource, bookings ports.BookingCreator) *PurchaseService {
	if log == nil {
		log = zap.NewNop()
	}

	return &PurchaseService{
		log:      log,
		sessions: sessions,
		bookings: bookings,
	}
}

// Purchase buys the given variant within its search context. Without a
// session token no network call is made and ErrUnauthenticated is returned;
// the caller is expected to redirect to authentication. With a token exactly
// one booking-creation call is issued: there is no retry and no idempotency
// key, so a client-side retry can double-book.
func (s *PurchaseService) Purchase(ctx context.Context, variant models.Variant, search models.SearchResponse) (ports.BookingRef, error) {
	const op = "service.Purchase"
	tracer := otel.Tracer("route-backend/service")
	ctx, span := tracer.Start(ctx, op)
	defer span.End()
	span.SetAttributes(
		attribute.String("purchase.variant_id", variant.ID),
		attribute.String("purchase.origin", search.Origin),
		attribute.String("purchase.destination", search.Destination),
	)

	logger := s.log.With(
		zap.String("op", op),
		zap.String("variant_id", variant.ID),
		zap.String("origin", search.Origin),
		zap.String("destination", search.Destination),
	)

	token, ok := s.sessions.SessionToken(ctx)
	if !ok {
		logger.Info("purchase without session token")
		span.SetStatus(otelcodes.Error, "unauthenticated")
		return ports.BookingRef{}, derr.ErrUnauthenticated
	}

	priceRub := int64(0)
	if variant.MinPriceRub != nil {
		priceRub = *variant.MinPriceRub
	}

	draft := ports.BookingDraft{
		Origin:        search.Origin,
		Destination:   search.Destination,
		DepartureDate: search.DepartureDate,
		ReturnDate:    search.ReturnDate,
		PriceRub:      priceRub,
		Status:        models.BookingStatusCreated,
	}

	ref, err := s.bookings.CreateBooking(ctx, draft, token)
	if err != nil {
		logger.Warn("booking creation failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "booking creation failed")
		return ports.BookingRef{}, derr.ErrPurchaseFailed
	}

	span.SetAttributes(attribute.Int64("purchase.booking_id", ref.ID))
	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("booking created", zap.Int64("booking_id", ref.ID), zap.Int64("price_rub", priceRub))

	return ref, nil
}
