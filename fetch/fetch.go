// Package fetch wraps the shared HTTP client used to talk to the public medication
// and translation APIs: per-call timeouts, a browser User-Agent, status checks.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/giygas/medicamentos-bot/logging"
)

// maxBodySize bounds how much of a response is read
const maxBodySize = 5 * 1024 * 1024

// ErrUnexpectedStatus is wrapped by StatusError
var ErrUnexpectedStatus = errors.New("unexpected status code")

// StatusError reports a non-2xx answer
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d from %s", ErrUnexpectedStatus, e.Code, e.URL)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// Client issues requests with a timeout per call
type Client struct {
	HTTP      *http.Client
	UserAgent string
	Timeout   time.Duration
}

// NewHTTPClient returns the process-wide client; its transport pools connections
// and is safe for concurrent use
func NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 10
	transport.IdleConnTimeout = 90 * time.Second
	return &http.Client{Transport: transport}
}

// New creates a client. A nil http client falls back to http.DefaultClient.
func New(httpClient *http.Client, userAgent string, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{HTTP: httpClient, UserAgent: userAgent, Timeout: timeout}
}

// Get fetches endpoint with the given query parameters and returns the body of a 2xx answer
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}
	return c.do(ctx, http.MethodGet, endpoint, nil, "")
}

// PostJSON posts payload as JSON and returns the body of a 2xx answer
func (c *Client) PostJSON(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request for %s: %w", endpoint, err)
	}
	return c.do(ctx, http.MethodPost, endpoint, bytes.NewReader(body), "application/json")
}

// Status issues a HEAD request and returns the status code, without checking it
func (c *Client) Status(ctx context.Context, endpoint string) (int, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	c.setHeaders(req, "")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	c.closeBody(resp)
	return resp.StatusCode, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, contentType string) ([]byte, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	c.setHeaders(req, contentType)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer c.closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: req.URL.Redacted(), Code: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from %s: %w", endpoint, err)
	}
	return data, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.Timeout)
}

func (c *Client) setHeaders(req *http.Request, contentType string) {
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
}

func (c *Client) closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		logging.Warn("Failed to close response body", "error", err)
	}
}
