package gars

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	derr "github.com/comeltrans/comeltrans/internal/domain/errors"
	"github.com/comeltrans/comeltrans/internal/domain/models"
	"github.com/comeltrans/comeltrans/internal/domain/ports"
	"github.com/comeltrans/comeltrans/internal/infrastructures/gars/dto"
	"github.com/comeltrans/comeltrans/internal/infrastructures/gars/mappers"
)

// Client fetches assembled multimodal routes from the remote GARS/flights
// aggregation provider. One call yields one SearchResponse; pagination and
// result caching are the provider's business, not this client's.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "http://localhost:8000"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Search(ctx context.Context, query ports.RouteQuery) (models.SearchResponse, error) {
	reqURL, err := c.buildURL(query)
	if err != nil {
		return models.SearchResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("route provider request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return models.SearchResponse{}, derr.ErrRouteNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		return models.SearchResponse{}, fmt.Errorf("route provider status %s: %w", resp.Status, derr.ErrSourceTemporary)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return models.SearchResponse{}, fmt.Errorf("route provider status: %s", resp.Status)
	}

	var payload dto.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.SearchResponse{}, fmt.Errorf("decode route provider response: %w", err)
	}

	return mappers.ToDomainSearch(payload), nil
}

func (c *Client) buildURL(query ports.RouteQuery) (string, error) {
	u, err := url.Parse(c.baseURL + "/api/v1/routes/search")
	if err != nil {
		return "", fmt.Errorf("parse route provider base url: %w", err)
	}

	q := u.Query()
	q.Set("origin", strings.TrimSpace(query.Origin))
	q.Set("destination", strings.TrimSpace(query.Destination))
	q.Set("departure_date", strings.TrimSpace(query.DepartureDate))
	if query.ReturnDate != nil && strings.TrimSpace(*query.ReturnDate) != "" {
		q.Set("return_date", strings.TrimSpace(*query.ReturnDate))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
