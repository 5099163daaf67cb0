package models

import "time"

const (
	BookingStatusCreated   = "created"
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is one persisted purchase.
type Booking struct {
	ID             int64
	UserID         int64
	RouteName      string
	Status         string
	TotalAmountRub int64
	PassengerCount int
	DepartureDate  time.Time
	ReturnDate     *time.Time
	ContactPhone   string
	ContactEmail   string
	CreatedAt      time.Time
}

// Session is the resolved identity behind a bearer token. Sessions are
// provisioned by the identity collaborator; this service only reads them.
type Session struct {
	Token     string
	UserID    int64
	Email     string
	Phone     string
	ExpiresAt time.Time
}
