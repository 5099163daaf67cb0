package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/comeltrans/comeltrans/internal/application/service"
	derr "github.com/comeltrans/comeltrans/internal/domain/errors"
	"github.com/comeltrans/comeltrans/internal/domain/models"
	"github.com/comeltrans/comeltrans/internal/domain/ports"
	"go.uber.org/zap"
)

type fakeSearcher struct {
	result  service.SearchResult
	err     error
	queries []ports.RouteQuery
}

func (f *fakeSearcher) Search(_ context.Context, query ports.RouteQuery) (service.SearchResult, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return service.SearchResult{}, f.err
	}
	return f.result, nil
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestSearchHandler_ReturnsSearchWithVariants(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{result: service.SearchResult{
		Search: models.SearchResponse{
			Kind:          "multimodal",
			Origin:        "Москва",
			Destination:   "Чурапча",
			DepartureDate: "25.11.2025",
		},
		Variants: []models.Variant{{
			ID:            "main",
			Title:         "Air + Bus",
			MinPriceRub:   int64Ptr(27300),
			DurationHours: intPtr(14),
			Transfers:     1,
		}},
	}}
	h := NewSearchHandler(zap.NewNop(), searcher, time.Second)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/routes/search?origin=Москва&destination=Чурапча&departure_date=25.11.2025", nil)
	w := httptest.NewRecorder()
	h.Search(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body: %s", w.Code, w.Body.String())
	}
	if len(searcher.queries) != 1 {
		t.Fatalf("expected one search call, got %d", len(searcher.queries))
	}
	q := searcher.queries[0]
	if q.Origin != "Москва" || q.Destination != "Чурапча" || q.DepartureDate != "25.11.2025" || q.ReturnDate != nil {
		t.Fatalf("unexpected query forwarded: %+v", q)
	}

	var body struct {
		Search struct {
			Type string `json:"type"`
		} `json:"search"`
		Variants []struct {
			ID       string `json:"id"`
			Title    string `json:"title"`
			MinPrice *int64 `json:"min_price"`
		} `json:"variants"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Search.Type != "multimodal" {
		t.Fatalf("unexpected search body: %+v", body.Search)
	}
	if len(body.Variants) != 1 || body.Variants[0].Title != "Air + Bus" {
		t.Fatalf("unexpected variants: %+v", body.Variants)
	}
	if body.Variants[0].MinPrice == nil || *body.Variants[0].MinPrice != 27300 {
		t.Fatalf("unexpected min_price: %v", body.Variants[0].MinPrice)
	}
}

func TestSearchHandler_NormalizesCalendarDates(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{}
	h := NewSearchHandler(zap.NewNop(), searcher, time.Second)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/routes/search?origin=A&destination=B&departure_date=2025-11-25&return_date=2025-11-30", nil)
	w := httptest.NewRecorder()
	h.Search(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	q := searcher.queries[0]
	if q.DepartureDate != "25.11.2025" {
		t.Fatalf("calendar departure date must be normalized, got %q", q.DepartureDate)
	}
	if q.ReturnDate == nil || *q.ReturnDate != "30.11.2025" {
		t.Fatalf("calendar return date must be normalized, got %v", q.ReturnDate)
	}
}

func TestSearchHandler_MissingParams(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{}
	h := NewSearchHandler(zap.NewNop(), searcher, time.Second)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/routes/search?origin=Москва", nil)
	w := httptest.NewRecorder()
	h.Search(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(searcher.queries) != 0 {
		t.Fatal("searcher must not be called with missing params")
	}
}

func TestSearchHandler_SortsVariants(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{result: service.SearchResult{
		Variants: []models.Variant{
			{ID: "slow", DurationHours: intPtr(20)},
			{ID: "unknown"},
			{ID: "fast", DurationHours: intPtr(5)},
		},
	}}
	h := NewSearchHandler(zap.NewNop(), searcher, time.Second)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/routes/search?origin=A&destination=B&departure_date=25.11.2025&sort=duration", nil)
	w := httptest.NewRecorder()
	h.Search(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	var body struct {
		Variants []struct {
			ID string `json:"id"`
		} `json:"variants"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	gotOrder := []string{body.Variants[0].ID, body.Variants[1].ID, body.Variants[2].ID}
	wantOrder := []string{"fast", "slow", "unknown"}
	for i := range wantOrder {
		if gotOrder[i] != wantOrder[i] {
			t.Fatalf("unexpected order: %v", gotOrder)
		}
	}
}

func TestSearchHandler_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid date", err: derr.ErrInvalidDate, want: http.StatusBadRequest},
		{name: "not found", err: derr.ErrRouteNotFound, want: http.StatusNotFound},
		{name: "source down", err: derr.ErrSourceTemporary, want: http.StatusServiceUnavailable},
		{name: "timeout", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{name: "unknown", err: errors.New("boom"), want: http.StatusBadGateway},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewSearchHandler(zap.NewNop(), &fakeSearcher{err: tc.err}, time.Second)
			r := httptest.NewRequest(http.MethodGet, "/api/v1/routes/search?origin=A&destination=B&departure_date=25.11.2025", nil)
			w := httptest.NewRecorder()
			h.Search(w, r)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestSearchHandler_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := NewSearchHandler(zap.NewNop(), &fakeSearcher{}, time.Second)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/routes/search", nil)
	w := httptest.NewRecorder()
	h.Search(w, r)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}
