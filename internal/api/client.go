package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mrdjohnson/sukistudy/internal/config"
	"github.com/mrdjohnson/sukistudy/internal/logger"
)

// revisionHeader names the API-version header sent on every request.
const revisionHeader = "Wanikani-Revision"

// Client is the single point of contact with the remote learning service.
// Every request passes through the shared [RateLimiter] and carries the
// bearer credential plus the API-version header. HTTP 429 responses are
// retried internally up to the configured attempt cap; HTTP 401 fails
// immediately with [ErrUnauthorized].
type Client struct {
	http    *resty.Client
	limiter *RateLimiter
	cfg     config.API
	logger  *logger.Logger

	// cooldown sleeps between 429 retries; swapped out in tests.
	cooldown func(ctx context.Context, d time.Duration) error

	mu    sync.RWMutex
	token string
}

// NewClient constructs a rate-limited API client from cfg. The base URL is
// normalised and validated; the per-request timeout and rate budget come
// from cfg as well.
func NewClient(cfg config.API, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &Client{
		http:     httpClient,
		limiter:  NewRateLimiter(cfg.RateLimit, cfg.RateWindow),
		cfg:      cfg,
		logger:   log,
		cooldown: sleepContext,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent requests. An empty token clears the credential.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an empty
// string if none has been set.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Request issues a GET to endpointOrFullURL, which may be a relative
// endpoint ("/assignments") or an already-absolute pagination URL taken from
// a collection's next-page cursor. The raw response body is returned.
func (c *Client) Request(ctx context.Context, endpointOrFullURL string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, endpointOrFullURL, nil)
}

// do sends a single logical request through the rate limiter, retrying on
// HTTP 429 with a fixed cooldown. Each physical attempt consumes window
// budget: the remote meters attempts, not logical calls. The loop is bounded
// by cfg.RetryAttempts; sustained throttling beyond the cap surfaces as
// [ErrRateLimited].
func (c *Client) do(ctx context.Context, method, requestURL string, body any) ([]byte, error) {
	log := c.logger

	for attempt := 1; attempt <= c.cfg.RetryAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}

		req := c.http.R().
			SetContext(ctx).
			SetHeader(revisionHeader, c.cfg.Revision)
		if token := c.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		if body != nil {
			req.SetHeader("Content-Type", "application/json; charset=utf-8").
				SetBody(body)
		}

		resp, err := req.Execute(method, requestURL)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", method, requestURL, err)
		}

		if resp.StatusCode() == http.StatusTooManyRequests {
			log.Warn().
				Str("url", requestURL).
				Int("attempt", attempt).
				Dur("cooldown", c.cfg.RetryCooldown).
				Msg("throttled by remote, backing off")
			if err := c.cooldown(ctx, c.cfg.RetryCooldown); err != nil {
				return nil, err
			}
			continue
		}

		if err := mapHTTPError(resp); err != nil {
			return nil, err
		}

		return resp.Body(), nil
	}

	return nil, fmt.Errorf("%w: gave up after %d attempts on %s", ErrRateLimited, c.cfg.RetryAttempts, requestURL)
}
