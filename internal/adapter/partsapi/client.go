// Package partsapi is the HTTP client for the upstream order and parts API.
package partsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/partsdesk-backend/internal/config"
	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

const maxErrorBody = 64 << 10

// Client calls the parts API. It never retries; callers decide.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from the upstream config.
func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "partsapi"),
	}
}

// APIError is a non-2xx response from the parts API.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("partsapi %s: %s (status %d)", e.Op, e.Message, e.Status)
}

// PublicMessage is the text shown to operators: the server's message or
// the operation's fallback.
func (e *APIError) PublicMessage() string { return e.Message }

// Unwrap maps the HTTP status to a domain error so callers can use errors.Is.
// Statuses without a domain meaning report the upstream as unavailable.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case e.Status == http.StatusConflict:
		return domain.ErrConflict
	case e.Status == http.StatusForbidden:
		return domain.ErrForbidden
	}
	// A rejected service token is this service's fault, not the operator's.
	return domain.ErrUpstream
}

// call describes one request.
type call struct {
	op            string
	method        string
	path          string
	query         url.Values
	body          any
	fallback      string
	serverMessage bool // report the server's error text instead of fallback
}

func (c *Client) do(ctx context.Context, rq call, out any) error {
	u := c.baseURL + rq.path
	if len(rq.query) > 0 {
		u += "?" + rq.query.Encode()
	}

	var body io.Reader
	if rq.body != nil {
		data, err := json.Marshal(rq.body)
		if err != nil {
			return fmt.Errorf("partsapi %s: encode body: %w", rq.op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, rq.method, u, body)
	if err != nil {
		return fmt.Errorf("partsapi %s: create request: %w", rq.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "partsapi request failed",
			slog.String("op", rq.op),
			slog.String("error", err.Error()),
		)
		if ctx.Err() != nil {
			return fmt.Errorf("partsapi %s: %w", rq.op, ctx.Err())
		}
		return fmt.Errorf("partsapi %s: %w: %v", rq.op, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "partsapi response",
		slog.String("op", rq.op),
		slog.String("method", rq.method),
		slog.String("path", rq.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := rq.fallback
		if rq.serverMessage {
			if m := errorMessage(io.LimitReader(resp.Body, maxErrorBody)); m != "" {
				msg = m
			}
		}
		return &APIError{Op: rq.op, Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("partsapi %s: read body: %w", rq.op, err)
	}
	if err := decodeData(data, out); err != nil {
		return fmt.Errorf("partsapi %s: decode json: %w", rq.op, err)
	}
	return nil
}

// errorMessage extracts a human-readable message from an error body. JSON
// bodies may carry it under "message" or "error"; plain text is used as is.
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}

	var body struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if json.Unmarshal(data, &body) == nil {
		for _, raw := range []json.RawMessage{body.Message, body.Error} {
			if m := rawText(raw); m != "" {
				return m
			}
		}
		return ""
	}
	if data[0] == '<' {
		return ""
	}
	return string(data)
}

// rawText returns a JSON string value, or the "message" of a nested object.
func rawText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return strings.TrimSpace(s)
	}
	var nested struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &nested) == nil {
		return strings.TrimSpace(nested.Message)
	}
	return ""
}

// decodeData decodes a response that may or may not be wrapped in a
// {"data": ...} envelope.
func decodeData(data []byte, out any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &env); err == nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
			return json.Unmarshal(env.Data, out)
		}
	}
	return json.Unmarshal(trimmed, out)
}
