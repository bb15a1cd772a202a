// Package httpapi provides a catalog adapter for the restaurant backend's
// public API (GET /api/menus, /api/dishes, /api/dishes/{id}).
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
	"github.com/custodia-labs/menusearch/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Catalog = (*Client)(nil)

// Default configuration values.
const (
	DefaultTimeout = 10 * time.Second
	DefaultRate    = 5.0

	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 4 << 10
)

var log = logger.For("catalog")

// Config holds configuration for the catalog client.
type Config struct {
	// BaseURL is the backend origin, e.g. http://localhost:5000.
	BaseURL string

	// Timeout bounds each request (default: 10s).
	Timeout time.Duration

	// Rate is the maximum requests per second (default: 5).
	Rate float64

	// HTTPClient overrides the transport. Used by tests.
	HTTPClient *http.Client
}

// Client reads the catalog over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewClient creates a catalog client.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("%w: catalog url %q", domain.ErrInvalidInput, cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRate
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(cfg.Rate), 1),
	}, nil
}

// Menus returns the menu names served by /api/menus.
func (c *Client) Menus(ctx context.Context) ([]string, error) {
	var menus []string
	if err := c.get(ctx, "/api/menus", &menus); err != nil {
		return nil, err
	}
	log.Debug("fetched %d menus", len(menus))
	return menus, nil
}

// Dishes returns every item served by /api/dishes.
func (c *Client) Dishes(ctx context.Context) ([]domain.SourceItem, error) {
	var items []domain.SourceItem
	if err := c.get(ctx, "/api/dishes", &items); err != nil {
		return nil, err
	}
	log.Debug("fetched %d dishes", len(items))
	return items, nil
}

// Dish returns one item from /api/dishes/{id}.
func (c *Client) Dish(ctx context.Context, id string) (*domain.SourceItem, error) {
	var item domain.SourceItem
	if err := c.get(ctx, "/api/dishes/"+url.PathEscape(id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// errorResponse is the backend's error body.
type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()
	log.Debug("GET %s: %d in %s", path, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("GET %s: %w", path, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, readError(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// readError extracts the backend's error message, falling back to the raw body.
func readError(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return "failed to read response"
	}
	var e errorResponse
	if json.Unmarshal(data, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(data))
}
