package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/comeltrans/comeltrans/internal/domain/ports"
)

// Client issues booking-creation calls against the bookings service,
// authorized by the caller's bearer credential. Calls are at-most-once: a
// failed call is surfaced, never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type createRequest struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date"`
	PriceRub      int64   `json:"price_rub"`
	Status        string  `json:"status"`
}

type createResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (c *Client) CreateBooking(ctx context.Context, draft ports.BookingDraft, token string) (ports.BookingRef, error) {
	if strings.TrimSpace(token) == "" {
		return ports.BookingRef{}, fmt.Errorf("bearer token is empty")
	}

	body, err := json.Marshal(createRequest{
		Origin:        draft.Origin,
		Destination:   draft.Destination,
		DepartureDate: draft.DepartureDate,
		ReturnDate:    draft.ReturnDate,
		PriceRub:      draft.PriceRub,
		Status:        draft.Status,
	})
	if err != nil {
		return ports.BookingRef{}, fmt.Errorf("marshal booking draft: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/bookings", bytes.NewReader(body))
	if err != nil {
		return ports.BookingRef{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.BookingRef{}, fmt.Errorf("booking request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ports.BookingRef{}, fmt.Errorf("booking status: %s", resp.Status)
	}

	var payload createResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.BookingRef{}, fmt.Errorf("decode booking response: %w", err)
	}

	return ports.BookingRef{ID: payload.ID, Status: payload.Status}, nil
}
