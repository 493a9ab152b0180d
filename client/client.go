// Package client is the Go gateway for the Fake News Detector API. It wraps
// the two HTTP endpoints the service exposes and normalizes every failure
// into a single user-presentable message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/BhanuPrakash-01/fake-news-detector/models"
)

const (
	// DefaultBaseURL is used when FAKE_NEWS_API_URL is not set. The web
	// frontend defaults to a relative /api path behind a reverse proxy; a
	// native client needs an absolute address.
	DefaultBaseURL = "http://localhost:8000"

	requestTimeout = 30 * time.Second
)

// User-facing failure messages. Analyze surfaces the server's detail message
// when one exists; Health never does.
var (
	ErrServerNotResponding = errors.New("Server is not responding")
	ErrAnalyzeFailed       = errors.New("Failed to analyze text. Please try again.")
	ErrHealthCheckFailed   = errors.New("Health check failed")
)

// APIError carries a detail message the server returned with an error status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	BaseURL string

	httpClient *http.Client
}

// New builds a client against FAKE_NEWS_API_URL, or DefaultBaseURL when the
// variable is unset.
func New() *Client {
	base := os.Getenv("FAKE_NEWS_API_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return NewWithBaseURL(base)
}

func NewWithBaseURL(base string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Analyze submits text for classification.
//
// Failure normalization, in priority order:
//  1. the server responded with a JSON {"detail": "..."} body — that message
//     is surfaced verbatim as an *APIError;
//  2. the request went out but no response arrived (timeout, connection
//     refused) — ErrServerNotResponding;
//  3. anything else — ErrAnalyzeFailed.
func (c *Client) Analyze(ctx context.Context, text string) (*models.AnalyzeResponse, error) {
	body, err := json.Marshal(models.AnalyzeRequest{Text: text})
	if err != nil {
		return nil, ErrAnalyzeFailed
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/api/analyze", bytes.NewReader(body))
	if err != nil {
		log.Printf("[GATEWAY] ❌ Build request: %v", err)
		return nil, ErrAnalyzeFailed
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[GATEWAY] ❌ No response from server: %v", err)
		return nil, ErrServerNotResponding
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[GATEWAY] ❌ Read response: %v", err)
		return nil, ErrAnalyzeFailed
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[GATEWAY] ❌ Status %d: %s", resp.StatusCode, string(respBody))
		var errResp models.ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Detail != "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: errResp.Detail}
		}
		return nil, ErrAnalyzeFailed
	}

	var result models.AnalyzeResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		log.Printf("[GATEWAY] ❌ Malformed response body: %s", string(respBody))
		return nil, ErrAnalyzeFailed
	}

	return &result, nil
}

// Health probes the liveness endpoint. The payload is passed through as-is;
// every failure collapses to ErrHealthCheckFailed — unlike Analyze, server
// detail messages are not surfaced for this probe.
func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/health", nil)
	if err != nil {
		return nil, ErrHealthCheckFailed
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[GATEWAY] ❌ Health check: %v", err)
		return nil, ErrHealthCheckFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[GATEWAY] ❌ Health check status %d", resp.StatusCode)
		return nil, ErrHealthCheckFailed
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("[GATEWAY] ❌ Health check decode: %v", err)
		return nil, ErrHealthCheckFailed
	}

	return payload, nil
}
