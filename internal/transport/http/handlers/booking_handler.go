package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	derr "github.com/comeltrans/comeltrans/internal/domain/errors"
	"github.com/comeltrans/comeltrans/internal/domain/models"
	"github.com/comeltrans/comeltrans/internal/domain/ports"
	"go.uber.org/zap"
)

type BookingWriter interface {
	Create(ctx context.Context, token string, draft ports.BookingDraft) (models.Booking, error)
	ListMine(ctx context.Context, token string) ([]models.Booking, error)
	Logout(ctx context.Context, token string) error
}

type BookingHandler struct {
	log      *zap.Logger
	bookings BookingWriter
	timeout  time.Duration
}

func NewBookingHandler(log *zap.Logger, bookings BookingWriter, timeout time.Duration) *BookingHandler {
	return &BookingHandler{
		log:      log,
		bookings: bookings,
		timeout:  timeout,
	}
}

type createBookingRequest struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date"`
	PriceRub      int64   `json:"price_rub"`
	Status        string  `json:"status"`
}

// Create handles POST /api/v1/bookings.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	token, ok := bearerToken(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	var payload createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	booking, err := h.bookings.Create(ctx, token, ports.BookingDraft{
		Origin:        payload.Origin,
		Destination:   payload.Destination,
		DepartureDate: payload.DepartureDate,
		ReturnDate:    payload.ReturnDate,
		PriceRub:      payload.PriceRub,
		Status:        payload.Status,
	})
	if err != nil {
		status, message := mapBookingError(err)
		writeError(w, status, message)
		return
	}

	writeJSON(w, http.StatusCreated, toBookingBody(booking))
}

// ListMine handles GET /api/v1/bookings/my.
func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	token, ok := bearerToken(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	bookings, err := h.bookings.ListMine(ctx, token)
	if err != nil {
		status, message := mapBookingError(err)
		writeError(w, status, message)
		return
	}

	writeJSON(w, http.StatusOK, toBookingBodies(bookings))
}

// Logout handles POST /api/v1/auth/logout.
func (h *BookingHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	token, ok := bearerToken(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.bookings.Logout(ctx, token); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to end the session")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

func (h *BookingHandler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return r.Context(), func() {}
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

func mapBookingError(err error) (int, string) {
	switch {
	case errors.Is(err, derr.ErrSessionNotFound):
		return http.StatusUnauthorized, "session expired or unknown"
	case errors.Is(err, derr.ErrInvalidDate):
		return http.StatusBadRequest, "dates must use the DD.MM.YYYY format"
	default:
		return http.StatusInternalServerError, "failed to process booking"
	}
}
