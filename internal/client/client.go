package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/edvin/panelctl/internal/metrics"
)

// csrfCookieName is the cookie the backend sets alongside the session; its
// value must be echoed in the x-csrf-token header on state-changing requests.
const csrfCookieName = "csrf_token"

const csrfHeaderName = "x-csrf-token"

// Client is the single point of outbound HTTP configuration for the panel
// API. Session auth rides on an HttpOnly cookie held in the jar; the client
// never sees bearer tokens. A 401 on a non-auth endpoint triggers at most
// one silent refresh-and-retry.
type Client struct {
	baseURL string
	hc      *http.Client
	logger  zerolog.Logger
	limiter *rate.Limiter
	metrics *metrics.ClientMetrics

	// refreshMu serializes token refreshes. TryLock keeps the refresh
	// single-flight: a request that hits 401 while another refresh is in
	// flight fails immediately instead of queueing behind it.
	refreshMu sync.Mutex
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithHTTPClient replaces the underlying http.Client. A cookie jar is
// attached if the given client has none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithTimeout sets the per-request transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

// WithMetrics attaches Prometheus collectors for outbound requests.
func WithMetrics(m *metrics.ClientMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithRateLimit caps outbound requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps)+1) }
}

// New creates a Client for the given API base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.hc.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		c.hc.Jar = jar
	}

	return c, nil
}

// BaseURL returns the configured API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Patch issues a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
	}

	requestID := uuid.NewString()

	err := c.send(ctx, method, path, bodyBytes, out, requestID)

	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.StatusCode != http.StatusUnauthorized || isAuthPath(path) {
		return err
	}

	// 401 outside /auth/*: attempt exactly one silent refresh, unless a
	// refresh is already in flight, in which case the original error stands.
	if !c.refreshMu.TryLock() {
		c.logger.Debug().Str("path", path).Msg("refresh already in flight, failing request")
		return err
	}
	refreshErr := c.refresh(ctx)
	c.refreshMu.Unlock()

	if refreshErr != nil {
		c.logger.Debug().Err(refreshErr).Str("path", path).Msg("token refresh failed")
		return err
	}

	return c.send(ctx, method, path, bodyBytes, out, requestID)
}

// send performs a single HTTP exchange with no retry logic.
func (c *Client) send(ctx context.Context, method, path string, bodyBytes []byte, out any, requestID string) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-request-id", requestID)
	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// GET requests are exempt from CSRF; everything state-changing echoes
	// the csrf_token cookie back as a header.
	if method != http.MethodGet {
		if token := c.csrfToken(req.URL); token != "" {
			req.Header.Set(csrfHeaderName, token)
		}
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(method, "error", time.Since(start))
		return fmt.Errorf("panel API unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.ObserveRequest(method, "error", time.Since(start))
		return fmt.Errorf("read response body: %w", err)
	}

	c.metrics.ObserveRequest(method, fmt.Sprintf("%dxx", resp.StatusCode/100), time.Since(start))

	if resp.StatusCode >= 400 {
		return normalizeError(method, path, resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// refresh performs the silent session refresh call.
func (c *Client) refresh(ctx context.Context) error {
	c.logger.Debug().Msg("refreshing session")
	return c.send(ctx, http.MethodPost, "/auth/refresh", nil, nil, uuid.NewString())
}

// csrfToken reads the CSRF cookie from the jar for the request URL.
func (c *Client) csrfToken(u *url.URL) string {
	for _, cookie := range c.hc.Jar.Cookies(u) {
		if cookie.Name == csrfCookieName {
			return cookie.Value
		}
	}
	return ""
}

func isAuthPath(path string) bool {
	return strings.HasPrefix(path, "/auth/")
}
