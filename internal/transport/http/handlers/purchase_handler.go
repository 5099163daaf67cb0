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
	"github.com/comeltrans/comeltrans/internal/infrastructures/session"
	"go.uber.org/zap"
)

type Purchaser interface {
	Purchase(ctx context.Context, variant models.Variant, search models.SearchResponse) (ports.BookingRef, error)
}

type PurchaseHandler struct {
	log       *zap.Logger
	purchaser Purchaser
	timeout   time.Duration
}

func NewPurchaseHandler(log *zap.Logger, purchaser Purchaser, timeout time.Duration) *PurchaseHandler {
	return &PurchaseHandler{
		log:       log,
		purchaser: purchaser,
		timeout:   timeout,
	}
}

type purchaseRequest struct {
	Variant variantBody           `json:"variant"`
	Search  purchaseSearchContext `json:"search"`
}

type purchaseSearchContext struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date"`
}

type purchaseResponse struct {
	BookingID int64  `json:"booking_id"`
	Status    string `json:"status"`
}

// Purchase handles POST /api/v1/purchase. The bearer credential, when
// present, is handed to the purchase gate through the context; the gate
// decides whether the caller is authenticated.
func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var payload purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	if token, ok := bearerToken(r); ok {
		ctx = session.WithToken(ctx, token)
	}
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	variant := models.Variant{
		ID:            payload.Variant.ID,
		Title:         payload.Variant.Title,
		MinPriceRub:   payload.Variant.MinPrice,
		DurationHours: payload.Variant.DurationHours,
		Transfers:     payload.Variant.Transfers,
	}
	search := models.SearchResponse{
		Origin:        payload.Search.Origin,
		Destination:   payload.Search.Destination,
		DepartureDate: payload.Search.DepartureDate,
		ReturnDate:    payload.Search.ReturnDate,
	}

	ref, err := h.purchaser.Purchase(ctx, variant, search)
	if err != nil {
		switch {
		case errors.Is(err, derr.ErrUnauthenticated):
			writeError(w, http.StatusUnauthorized, "authentication required")
		case errors.Is(err, derr.ErrPurchaseFailed):
			writeError(w, http.StatusBadGateway, "failed to complete the purchase")
		default:
			writeError(w, http.StatusInternalServerError, "failed to complete the purchase")
		}
		return
	}

	writeJSON(w, http.StatusCreated, purchaseResponse{BookingID: ref.ID, Status: ref.Status})
}
