package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// TokenSource yields the bearer token attached to each request.
// An empty token sends no Authorization header.
type TokenSource func(ctx context.Context) (string, error)

// StaticToken returns a TokenSource that always yields token.
func StaticToken(token string) TokenSource {
	return func(context.Context) (string, error) { return token, nil }
}

type Option func(*HTTPRequester)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPRequester) { h.client = c }
}

func WithTokenSource(ts TokenSource) Option {
	return func(h *HTTPRequester) { h.token = ts }
}

// HTTPRequester is the Requester that talks to the console API over HTTP.
// It unwraps the {code, data, error, message} envelope and decodes data into out.
// It never retries.
type HTTPRequester struct {
	baseURL string
	client  *http.Client
	token   TokenSource
}

// NewHTTPRequester targets baseURL, e.g. "http://localhost:8080/api".
func NewHTTPRequester(baseURL string, opts ...Option) *HTTPRequester {
	h := &HTTPRequester{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
	Message string          `json:"message"`
}

func (h *HTTPRequester) Do(ctx context.Context, req *Request, out any) error {
	op := req.Method + " " + req.Path

	target := h.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return &Error{Op: op, Err: fmt.Errorf("encode body: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if h.token != nil {
		token, err := h.token(ctx)
		if err != nil {
			return &Error{Op: op, Err: fmt.Errorf("token: %w", err)}
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 400 {
			return &Error{Op: op, StatusCode: resp.StatusCode, Code: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)}
	}

	if resp.StatusCode >= 400 || env.Code != 0 {
		msg := env.Message
		if env.Error != nil {
			msg = *env.Error
		}
		return &Error{Op: op, StatusCode: resp.StatusCode, Code: env.Code, Message: msg}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)}
	}
	return nil
}
