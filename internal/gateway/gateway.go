// Package gateway issues authenticated requests to the shortener backend
// and classifies every response into exactly one outcome.
//
// Callers branch on the classification and nothing else: Success carries
// the payload, Unauthenticated means the credential was missing or
// rejected, Failure covers everything else including an unreachable
// backend. The gateway never retries; session consequences are the
// caller's business.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"linkboard/internal/config"
	"linkboard/internal/creds"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Outcome - classification of a backend response.
type Outcome int

const (
	// Success - 2xx response, Body holds the payload.
	Success Outcome = iota
	// Unauthenticated - the backend rejected the credential (401).
	Unauthenticated
	// Failure - any other error, including transport failures.
	Failure
)

// ErrUnauthenticated signals that the credential was missing, invalid or
// expired. It is the only error that may cross component boundaries and
// alter session state.
var ErrUnauthenticated = errors.New("credential missing or rejected")

// RequestError - a non-auth failure carrying a human-readable detail.
type RequestError struct {
	Detail string
}

func (e *RequestError) Error() string {
	return e.Detail
}

// Result of a single backend call.
type Result struct {
	Outcome Outcome
	// Body is the raw success payload. Empty on other outcomes.
	Body []byte
	// Detail is the server-supplied error message, when one was given.
	Detail string
}

// DetailOr returns the server detail or fallback when none was supplied.
func (r Result) DetailOr(fallback string) string {
	if r.Detail != "" {
		return r.Detail
	}
	return fallback
}

// Err converts the classification into the error taxonomy: nil on
// Success, ErrUnauthenticated, or a RequestError with the server detail
// (fallback when the server supplied none).
func (r Result) Err(fallback string) error {
	switch r.Outcome {
	case Success:
		return nil
	case Unauthenticated:
		return ErrUnauthenticated
	default:
		return &RequestError{Detail: r.DetailOr(fallback)}
	}
}

// Gateway - interface for authenticated backend calls.
type Gateway interface {
	Get(ctx context.Context, path string) Result
	PostJSON(ctx context.Context, path string, payload any) Result
	PostForm(ctx context.Context, path string, form url.Values) Result
	Delete(ctx context.Context, path string) Result
}

// Client implements Gateway over net/http.
type Client struct {
	baseURL string
	store   creds.Store
	client  *http.Client
	sugar   *zap.SugaredLogger
}

// NewClient creates a gateway for the backend configured in conf,
// reading the credential from store on every call.
func NewClient(conf *config.Config, store creds.Store, sugar *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.APIBaseURL, "/"),
		store:   store,
		client:  &http.Client{Timeout: time.Duration(conf.Timeout) * time.Second},
		sugar:   sugar,
	}
}

func (c *Client) Get(ctx context.Context, path string) Result {
	return c.do(ctx, http.MethodGet, path, "", nil)
}

func (c *Client) PostJSON(ctx context.Context, path string, payload any) Result {
	body, err := json.Marshal(payload)
	if err != nil {
		c.sugar.Errorw("encode request body", "path", path, "error", err)
		return Result{Outcome: Failure}
	}
	return c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(body))
}

func (c *Client) PostForm(ctx context.Context, path string, form url.Values) Result {
	return c.do(ctx, http.MethodPost, path, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
}

func (c *Client) Delete(ctx context.Context, path string) Result {
	return c.do(ctx, http.MethodDelete, path, "", nil)
}

// do performs exactly one attempt and classifies the outcome.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) Result {
	reqID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		c.sugar.Errorw("build request", "request_id", reqID, "path", path, "error", err)
		return Result{Outcome: Failure}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := c.store.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.sugar.Errorw("backend unreachable",
			"request_id", reqID,
			"method", method,
			"path", path,
			"error", err,
		)
		return Result{Outcome: Failure}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.sugar.Errorf("resp.Body.Close() error")
		}
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		c.sugar.Errorw("read response", "request_id", reqID, "path", path, "error", err)
		return Result{Outcome: Failure}
	}

	c.sugar.Infow("backend call",
		"request_id", reqID,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return Result{Outcome: Success, Body: payload}
	case resp.StatusCode == http.StatusUnauthorized:
		return Result{Outcome: Unauthenticated, Detail: extractDetail(payload)}
	default:
		return Result{Outcome: Failure, Detail: extractDetail(payload)}
	}
}

// extractDetail pulls the optional {"detail": "..."} field out of an
// error response body.
func extractDetail(payload []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.Detail
}
