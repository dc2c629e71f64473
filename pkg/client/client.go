// Package client is the Go SDK for the BullsEye-Radar HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

const Version = "0.1.0"

// Logger is the minimal logging interface the client writes to.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Infof(string, ...interface{})  {}
func (noopLogger) Errorf(string, ...interface{}) {}

// Client talks to a BullsEye-Radar API server.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	userAgent    string
	logger       Logger
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	RequestID  string `json:"request_id"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bullseye: %s (HTTP %d): %s [request_id=%s]", e.Code, e.StatusCode, e.Message, e.RequestID)
}

func (e *APIError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
}

func (e *APIError) IsServerError() bool { return e.StatusCode >= 500 && e.StatusCode < 600 }

// envelope mirrors the server's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"request_id"`
}

// NewClient validates the base URL and builds a client.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.InvalidParam("baseURL cannot be empty")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.InvalidParam("invalid baseURL: " + err.Error())
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.InvalidParam("baseURL scheme must be http or https")
	}

	c := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		userAgent:    fmt.Sprintf("bullseye-go-sdk/%s", Version),
		logger:       noopLogger{},
		retryMax:     3,
		retryWaitMin: 500 * time.Millisecond,
		retryWaitMax: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do performs one request with retries, returning the raw response body.
// Only network failures and 5xx responses are retried, and writes retry too:
// every mutating endpoint on the server is safe to repeat (imports of the
// same CSV create distinct datasets, but only after a 2xx, which is never
// retried).
func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte) ([]byte, http.Header, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	fullURL := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.retryMax; attempt++ {
		if attempt > 0 {
			backoff := c.backoff(attempt)
			c.logger.Debugf("retry %d after %v", attempt, backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			}
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create request: %w", err)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			c.logger.Errorf("request failed: %v", err)
			continue
		}
		c.logger.Debugf("%s %s %d (%v)", method, path, resp.StatusCode, time.Since(start))

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close() //nolint:errcheck
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode >= 500 && attempt < c.retryMax {
			lastErr = c.apiError(resp, respBody)
			continue
		}
		if resp.StatusCode >= 400 {
			return nil, nil, c.apiError(resp, respBody)
		}
		return respBody, resp.Header, nil
	}
	return nil, nil, fmt.Errorf("request failed after %d attempts: %w", c.retryMax+1, lastErr)
}

// doJSON performs a request and decodes the success envelope's data into
// result when result is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path, contentType string, body []byte, result interface{}) error {
	respBody, _, err := c.do(ctx, method, path, contentType, body)
	if err != nil {
		return err
	}
	if result == nil || len(respBody) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if err := json.Unmarshal(env.Data, result); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

func (c *Client) apiError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Code:       http.StatusText(resp.StatusCode),
		Message:    http.StatusText(resp.StatusCode),
		RequestID:  resp.Header.Get("X-Request-ID"),
	}
	var env envelope
	if len(body) > 0 && json.Unmarshal(body, &env) == nil && env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
		if env.RequestID != "" {
			apiErr.RequestID = env.RequestID
		}
	}
	return apiErr
}

// backoff returns an exponential delay with jitter, capped at retryWaitMax.
func (c *Client) backoff(attempt int) time.Duration {
	d := c.retryWaitMin << uint(attempt-1)
	if d > c.retryWaitMax {
		d = c.retryWaitMax
	}
	if quarter := int64(d) / 4; quarter > 0 {
		d += time.Duration(rand.Int63n(quarter)) //nolint:gosec
	}
	return d
}

//Personal.AI order the ending
