package ports

import (
	"context"
	"time"

	"github.com/comeltrans/comeltrans/internal/domain/models"
)

// RouteQuery is one search request against the route provider. Dates are in
// the wire format DD.MM.YYYY; ReturnDate is set only for round trips.
type RouteQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    *string
}

type RouteSource interface {
	Search(ctx context.Context, query RouteQuery) (models.SearchResponse, error)
}

// SessionSource exposes the caller's bearer credential, when there is one.
// Lookup is synchronous and performs no network call of its own.
type SessionSource interface {
	SessionToken(ctx context.Context) (string, bool)
}

// BookingDraft carries the fields of one booking-creation call.
type BookingDraft struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    *string
	PriceRub      int64
	Status        string
}

type BookingRef struct {
	ID     int64
	Status string
}

// BookingCreator issues exactly one booking-creation call authorized by the
// given bearer token. Implementations do not retry.
type BookingCreator interface {
	CreateBooking(ctx context.Context, draft BookingDraft, token string) (BookingRef, error)
}

type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) (models.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Booking, error)
}

type SessionRepository interface {
	ByToken(ctx context.Context, token string) (models.Session, error)
	Save(ctx context.Context, session models.Session, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}
