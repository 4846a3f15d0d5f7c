// =============================================================================
// Sales Analytics System - Product Catalog Client
// =============================================================================
//
// This module fetches the external product catalog used to enrich sales
// records. The catalog endpoint is DummyJSON-compatible: a GET on
// {base_url}/products?limit={n} returns a JSON document with a "products"
// array.
//
// ERROR HANDLING:
//   Transport failures, non-2xx statuses, and malformed payloads all return
//   an error; the pipeline driver degrades to running without enrichment
//   rather than aborting the analysis.
//
// =============================================================================

package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// CatalogProduct is one product entry from the external catalog.
type CatalogProduct struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

// productsResponse mirrors the catalog endpoint payload.
type productsResponse struct {
	Products []CatalogProduct `json:"products"`
	Total    int              `json:"total"`
}

// Client fetches products from the catalog API.
type Client struct {
	baseURL    string
	limit      int
	httpClient *http.Client
}

// NewClient creates a catalog client. limit is the maximum number of
// products requested per call; timeout bounds the whole request.
func NewClient(baseURL string, limit int, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		limit:   limit,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchProducts retrieves the product catalog. Products without a brand are
// normalized to "N/A".
func (c *Client) FetchProducts(ctx context.Context) ([]CatalogProduct, error) {
	url := fmt.Sprintf("%s/products?limit=%d", c.baseURL, c.limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog request returned status %d", resp.StatusCode)
	}

	var payload productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	products := payload.Products
	for i := range products {
		if products[i].Brand == "" {
			products[i].Brand = "N/A"
		}
	}

	slog.Info("fetched product catalog",
		slog.String("url", url),
		slog.Int("product_count", len(products)))

	return products, nil
}
