package bcaweb

import (
	"context"
	"fmt"
	"net/http"

	"kursapi/internal/domain"

	"github.com/antchfx/htmlquery"
)

// Client fetches the public kurs page and extracts the rate table.
type Client struct {
	http    *http.Client
	pageURL string
}

func NewClient(httpClient *http.Client, pageURL string) *Client {
	return &Client{http: httpClient, pageURL: pageURL}
}

func (c *Client) FetchRates(ctx context.Context) ([]domain.RateRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create kurs page request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch kurs page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d fetching kurs page: %s", resp.StatusCode, resp.Status)
	}

	doc, err := htmlquery.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse kurs page markup: %w", err)
	}

	return ParseRateTable(doc), nil
}
