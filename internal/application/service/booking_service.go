package service

import (
	"context"
	"time"

	"github.com/comeltrans/comeltrans/internal/application/itinerary"
	derr "github.com/comeltrans/comeltrans/internal/domain/errors"
	"github.com/comeltrans/comeltrans/internal/domain/models"
	"github.com/comeltrans/comeltrans/internal/domain/ports"
	"go.uber.org/zap"
)

// BookingService is the server side of the bookings surface: it resolves the
// bearer token to a session and persists or lists the caller's bookings.
type BookingService struct {
	log        *zap.Logger
	sessions   ports.SessionRepository
	bookings   ports.BookingRepository
	sessionTTL time.Duration
}

func NewBookingService(log *zap.Logger, sessions ports.SessionRepository, bookings ports.BookingRepository, sessionTTL time.Duration) *BookingService {
	if log == nil {
		log = zap.NewNop()
	}

	return &BookingService{
		log:        log,
		sessions:   sessions,
		bookings:   bookings,
		sessionTTL: sessionTTL,
	}
}

// refreshSession slides the session expiry on successful use. A failed
// refresh is logged and ignored, the session stays valid until its old TTL.
func (s *BookingService) refreshSession(ctx context.Context, logger *zap.Logger, session models.Session) {
	if s.sessionTTL <= 0 {
		return
	}
	if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
		logger.Warn("failed to refresh session", zap.Error(err))
	}
}

func (s *BookingService) Create(ctx context.Context, token string, draft ports.BookingDraft) (models.Booking, error) {
	const op = "service.CreateBooking"

	logger := s.log.With(
		zap.String("op", op),
		zap.String("origin", draft.Origin),
		zap.String("destination", draft.Destination),
	)

	session, err := s.sessions.ByToken(ctx, token)
	if err != nil {
		logger.Warn("session lookup failed", zap.Error(err))
		return models.Booking{}, err
	}
	s.refreshSession(ctx, logger, session)

	departure, err := itinerary.ParseWireDate(draft.DepartureDate)
	if err != nil {
		logger.Warn("invalid departure date in booking draft")
		return models.Booking{}, derr.ErrInvalidDate
	}

	var returnDate *time.Time
	if draft.ReturnDate != nil {
		parsed, err := itinerary.ParseWireDate(*draft.ReturnDate)
		if err != nil {
			logger.Warn("invalid return date in booking draft")
			return models.Booking{}, derr.ErrInvalidDate
		}
		returnDate = &parsed
	}

	status := draft.Status
	if status == "" {
		status = models.BookingStatusCreated
	}

	booking := models.Booking{
		UserID:         session.UserID,
		RouteName:      routeName(draft.Origin, draft.Destination),
		Status:         status,
		TotalAmountRub: draft.PriceRub,
		PassengerCount: 1,
		DepartureDate:  departure,
		ReturnDate:     returnDate,
		ContactPhone:   session.Phone,
		ContactEmail:   session.Email,
	}

	stored, err := s.bookings.Insert(ctx, booking)
	if err != nil {
		logger.Error("failed to persist booking", zap.Error(err))
		return models.Booking{}, err
	}

	logger.Info("booking stored", zap.Int64("booking_id", stored.ID), zap.Int64("user_id", session.UserID))
	return stored, nil
}

func (s *BookingService) ListMine(ctx context.Context, token string) ([]models.Booking, error) {
	const op = "service.ListMyBookings"

	logger := s.log.With(zap.String("op", op))

	session, err := s.sessions.ByToken(ctx, token)
	if err != nil {
		logger.Warn("session lookup failed", zap.Error(err))
		return nil, err
	}
	s.refreshSession(ctx, logger, session)

	bookings, err := s.bookings.ListByUser(ctx, session.UserID)
	if err != nil {
		logger.Error("failed to list bookings", zap.Error(err), zap.Int64("user_id", session.UserID))
		return nil, err
	}

	return bookings, nil
}

// Logout invalidates the caller's session. Deleting an already absent token
// is not an error.
func (s *BookingService) Logout(ctx context.Context, token string) error {
	const op = "service.Logout"

	if err := s.sessions.Delete(ctx, token); err != nil {
		s.log.Error("failed to delete session", zap.String("op", op), zap.Error(err))
		return err
	}

	return nil
}

func routeName(origin, destination string) string {
	if origin == "" || destination == "" {
		return "Local route"
	}
	return origin + " — " + destination
}
