// Package gateway provides stateless request/response wrappers around the
// backend REST resources. Gateways hold no entity state; every call hits the
// network.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource supplies the bearer token of the current identity, when one
// exists. The client session store implements it.
type TokenSource interface {
	Token() (string, bool)
}

// APIError is the sole error signal for non-2xx responses. Error bodies are
// deliberately not parsed.
type APIError struct {
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type Client struct {
	client  httpClient
	baseURL url.URL
	tokens  TokenSource
}

func NewClient(client httpClient, baseURL url.URL, tokens TokenSource) *Client {
	return &Client{client: client, baseURL: baseURL, tokens: tokens}
}

func (c *Client) call(ctx context.Context, method string, body, out interface{}, parts ...string) error {
	callURL := c.baseURL.JoinPath(parts...)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, callURL.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &APIError{Status: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Gateways bundles one gateway per backend resource family over a shared
// transport.
type Gateways struct {
	Auth    *AuthGateway
	Session *SessionGateway
	Teacher *TeacherGateway
	User    *UserGateway
}

func New(client httpClient, baseURL string, tokens TokenSource) (*Gateways, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	base := NewClient(client, *parsed, tokens)
	return &Gateways{
		Auth:    &AuthGateway{c: base},
		Session: &SessionGateway{c: base},
		Teacher: &TeacherGateway{c: base},
		User:    &UserGateway{c: base},
	}, nil
}
