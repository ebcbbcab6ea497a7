// Package artic is a small client for the Art Institute of Chicago
// public artworks API. It issues one GET per page and does not retry.
package artic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"arttable/internal/domain"
	"arttable/internal/logging"
	"arttable/internal/metrics"
)

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://api.artic.edu/api/v1"

// maxBodyBytes bounds how much of a response is read.
const maxBodyBytes = 8 << 20

// Fetcher loads one page of artworks.
type Fetcher interface {
	FetchPage(ctx context.Context, page, limit int) (*domain.Page, error)
}

// Config holds the client configuration.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// RequestsPerMinute paces outgoing requests. Zero disables pacing.
	RequestsPerMinute int
}

// Client is the catalog client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// envelope mirrors the {data, pagination} response body.
type envelope struct {
	Data       []domain.Artwork   `json:"data"`
	Pagination *domain.Pagination `json:"pagination"`
}

// New creates a new catalog client.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		userAgent:  cfg.UserAgent,
		logger:     logging.NewLogger("artic"),
	}
	if cfg.RequestsPerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}
	return c, nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// PageURL builds the request URL for a 1-based page number.
func (c *Client) PageURL(page, limit int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return c.baseURL + "/artworks?" + q.Encode()
}

// FetchPage requests one page of artworks.
func (c *Client) FetchPage(ctx context.Context, page, limit int) (*domain.Page, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be >= 1 (got %d)", page)
	}
	if limit < 1 {
		return nil, fmt.Errorf("limit must be >= 1 (got %d)", limit)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	requestID := uuid.NewString()
	start := time.Now()
	defer func() {
		metrics.RequestDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.PageURL(page, limit), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("X-Request-ID", requestID)

	logger := c.logger.With().Str("request_id", requestID).Logger()
	logger.Debug().Int("page", page).Int("limit", limit).Msg("Fetching artworks")

	resp, err := c.httpClient.Do(req)
	if err != nil && errors.Is(err, context.Canceled) {
		logger.Debug().Int("page", page).Msg("Fetch cancelled")
		return nil, fmt.Errorf("fetch page %d: %w", page, err)
	}
	if err != nil {
		metrics.RequestsTotal.WithLabelValues("network_error").Inc()
		return nil, c.fail(logger, &APIError{Class: ErrorClassNetwork, Message: "request failed", Err: err})
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, c.fail(logger, &APIError{
			StatusCode: resp.StatusCode,
			Class:      classifyStatus(resp.StatusCode),
			Message:    resp.Status,
		})
	}

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&env); err != nil {
		return nil, c.fail(logger, &APIError{
			StatusCode: resp.StatusCode,
			Class:      ErrorClassDecode,
			Message:    "invalid JSON body",
			Err:        errors.Join(ErrDecode, err),
		})
	}
	if env.Data == nil || env.Pagination == nil {
		return nil, c.fail(logger, &APIError{
			StatusCode: resp.StatusCode,
			Class:      ErrorClassDecode,
			Message:    "missing data or pagination",
			Err:        ErrDecode,
		})
	}

	logger.Info().
		Int("page", page).
		Int("limit", limit).
		Int("records", len(env.Data)).
		Int("total", env.Pagination.Total).
		Dur("duration", time.Since(start)).
		Msg("Fetched artworks")

	return &domain.Page{
		Records:    env.Data,
		TotalCount: env.Pagination.Total,
		Number:     page,
		Limit:      limit,
	}, nil
}

func (c *Client) fail(logger zerolog.Logger, err *APIError) error {
	metrics.ErrorsTotal.WithLabelValues(string(err.Class)).Inc()
	logger.Warn().
		Int("status", err.StatusCode).
		Str("error_class", string(err.Class)).
		Err(err).
		Msg("Catalog request failed")
	return err
}
