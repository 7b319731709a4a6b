// Package api implements the REST gateway the client core talks through: a
// thin envelope-aware HTTP client, the AuthGateway, and the generic Resource
// service bound to one collection endpoint.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocklite/inventory-client/internal/core/domain"
	"github.com/stocklite/inventory-client/internal/infrastructure/metrics"
)

// TokenSource supplies the bearer token attached to requests. Satisfied by
// the session store; an empty token means the header is omitted.
type TokenSource interface {
	Token() string
}

// envelope is the backend's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Client issues envelope requests against the inventory API. Each call is a
// single attempt: no retries, no timeout beyond what the caller's context or
// the configured http.Client imposes.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger
}

// NewClient builds a Client. timeout <= 0 disables the client-side timeout,
// matching the source's behavior of waiting indefinitely.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log zerolog.Logger) *Client {
	hc := &http.Client{}
	if timeout > 0 {
		hc.Timeout = timeout
	}
	return &Client{
		baseURL: baseURL,
		http:    hc,
		tokens:  tokens,
		log:     log,
	}
}

// do issues one request and returns the envelope's data payload. The
// resource/operation pair feeds metrics only.
func (c *Client) do(ctx context.Context, method, path, resource, operation string, query url.Values, body any) (json.RawMessage, error) {
	metrics.RequestsTotal.WithLabelValues(resource, operation).Inc()
	start := time.Now()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RequestErrorsTotal.WithLabelValues("transport").Inc()
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()
	metrics.RequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RequestErrorsTotal.WithLabelValues("transport").Inc()
		return nil, &domain.TransportError{Err: err}
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			metrics.RequestErrorsTotal.WithLabelValues("transport").Inc()
			return nil, &domain.TransportError{Err: fmt.Errorf("decode envelope: %w", err)}
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && env.Success {
		return env.Data, nil
	}
	return nil, c.mapError(resp.StatusCode, env.Message, method, path)
}

// mapError translates a non-success response into the domain taxonomy.
func (c *Client) mapError(status int, message, method, path string) error {
	switch status {
	case http.StatusUnauthorized:
		metrics.RequestErrorsTotal.WithLabelValues("unauthorized").Inc()
		if message != "" {
			return fmt.Errorf("%s: %w", message, domain.ErrUnauthorized)
		}
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		metrics.RequestErrorsTotal.WithLabelValues("not_found").Inc()
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		metrics.RequestErrorsTotal.WithLabelValues("validation").Inc()
		if message == "" {
			message = "invalid request"
		}
		return &domain.ValidationError{Message: message}
	}

	metrics.RequestErrorsTotal.WithLabelValues("server").Inc()
	c.log.Error().Int("status", status).Str("method", method).Str("path", path).Str("message", message).Msg("unexpected api error")
	if message == "" {
		message = "internal server error"
	}
	return fmt.Errorf("api: %s (status %d)", message, status)
}

// decode unmarshals an envelope data payload into out.
func decode(data json.RawMessage, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return &domain.TransportError{Err: fmt.Errorf("decode payload: %w", err)}
	}
	return nil
}
