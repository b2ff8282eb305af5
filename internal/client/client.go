// Package client is the transport half of the table engine: it issues
// requests against the admin REST API, throttles them, and normalizes the
// heterogeneous response envelopes into the internal page model.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/domain"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/metrics"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

// Client talks to the admin API. Safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	logger  *zerolog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	// RPS/Burst throttle outgoing calls; zero RPS disables throttling.
	RPS   float64
	Burst int
}

// New builds a Client with sane defaults.
func New(opts Options, logger *zerolog.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = models.DefaultRequestTimeout
	}

	var limiter *rate.Limiter
	if opts.RPS > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 5
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   opts.Token,
		http:    &http.Client{Timeout: timeout},
		limiter: limiter,
		logger:  logger,
	}
}

// FetchPage retrieves one page of records for a list request.
func (c *Client) FetchPage(ctx context.Context, req domain.ListRequest) (*models.Page, error) {
	pageSize := models.DefaultPageSize
	if raw := req.Query.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			pageSize = n
		}
	}

	body, err := c.roundTrip(ctx, http.MethodGet, req.Path+"?"+req.Query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	page, err := normalizePage(body, req.ArrayField, pageSize)
	if err != nil {
		return nil, err
	}
	return page, nil
}

// Do issues one mutating request and decodes the updated entity when the
// response carries one. An empty or non-object body yields a nil record.
func (c *Client) Do(ctx context.Context, method, path string, payload any) (models.Record, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	raw, err := c.roundTrip(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var record models.Record
	if err := json.Unmarshal(raw, &record); err != nil {
		// Some endpoints answer with bare confirmations; tolerate them.
		return nil, nil
	}
	return record, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logRequest(method, path, requestID, 0, start)
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	c.logRequest(method, path, requestID, resp.StatusCode, start)
	metrics.ObserveAPIRequest(method, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromResponse(resp.StatusCode, raw)
	}
	return raw, nil
}

func (c *Client) logRequest(method, path, requestID string, status int, start time.Time) {
	if c.logger == nil {
		return
	}
	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("api request")
}
