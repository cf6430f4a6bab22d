// Package httpclient builds outbound HTTP clients that propagate the
// request trace headers and log every call.
package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"congress-tracker/cmd/internal/logger"
	"congress-tracker/cmd/web/trace"
)

const (
	HeaderRequestID = "X-Request-Id"
	HeaderSpanID    = "X-Span-Id"
)

// ErrNotFound is returned by GetJSON on a 404 response.
var ErrNotFound = errors.New("resource not found")

// Config holds client-wide settings. A zero Timeout means 10s.
type Config struct {
	Timeout time.Duration
}

type loggingRoundTripper struct {
	inner http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	requestID, spanID := trace.NextSpanID(req.Context())
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set(HeaderSpanID, spanID)

	resp, err := l.inner.RoundTrip(req)
	fields := logger.Fields{
		"method":     req.Method,
		"url":        req.URL.String(),
		"duration":   time.Since(start).String(),
		"request_id": requestID,
		"span_id":    spanID,
	}
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("httpclient request failed", fields)
		return nil, err
	}
	fields["status"] = resp.StatusCode
	logger.DebugWithFields("httpclient request success", fields)
	return resp, nil
}

// New returns an http.Client with tracing and logging.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: http.DefaultTransport},
	}
}

// BaseClient pairs an http.Client with a base URL.
type BaseClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewBaseClient uses New(Config{}) when httpClient is nil.
func NewBaseClient(baseURL string, httpClient *http.Client) *BaseClient {
	if httpClient == nil {
		httpClient = New(Config{})
	}
	return &BaseClient{HTTPClient: httpClient, BaseURL: baseURL}
}

// NewRequest joins relPath onto the base URL. Query parameters must be
// passed through query; a "?" in relPath is rejected.
func (c *BaseClient) NewRequest(ctx context.Context, method, relPath string, query url.Values, body io.Reader) (*http.Request, error) {
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("httpclient: relPath must not contain a query string: %s", relPath)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	if relPath != "" {
		u.Path = path.Join(u.Path, relPath)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return http.NewRequestWithContext(ctx, method, u.String(), body)
}

// GetJSON performs a GET and decodes a 200 response into out.
func (c *BaseClient) GetJSON(ctx context.Context, relPath string, query url.Values, out any) error {
	req, err := c.NewRequest(ctx, http.MethodGet, relPath, query, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("GET %s: status=%d body=%s", relPath, resp.StatusCode, string(b))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
