// Package clients wraps the external commerce API: one thin typed
// client per resource over a shared base that injects the stored auth
// token and propagates the request's correlation id.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/middleware"
)

// ErrUnauthorized is returned after a 401. The stored credential has
// already been wiped by then; callers route the user back to login.
var ErrUnauthorized = errors.New("unauthorized")

// APIError carries a non-2xx upstream response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("commerce api: %d %s", e.Status, e.Message)
}

// TokenSource supplies the bearer credential and supports wiping it.
type TokenSource interface {
	Token() string
	Clear() error
}

type Client struct {
	BaseURL *url.URL
	HTTP    *http.Client
	Tokens  TokenSource
}

func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource) *Client {
	u, err := url.Parse(baseURL)
	if err != nil {
		// Fail fast: config error
		panic(fmt.Sprintf("invalid commerce api base url %q: %v", baseURL, err))
	}
	return &Client{BaseURL: u, HTTP: httpClient, Tokens: tokens}
}

// Do performs one JSON request. in (when non-nil) is encoded as the
// body, out (when non-nil) decoded from a 2xx response. A 401 clears
// the token slot and returns ErrUnauthorized; other non-2xx statuses
// become an *APIError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	rel := &url.URL{Path: path, RawQuery: query.Encode()}
	u := c.BaseURL.ResolveReference(rel)

	var body *bytes.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.Tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if cid := middleware.GetCorrelationID(ctx); cid != "" {
		req.Header.Set(middleware.HeaderCorrelationID, cid)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.Tokens.Clear(); err != nil {
			return fmt.Errorf("clear token after 401: %w", err)
		}
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp)}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func readErrorMessage(resp *http.Response) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return http.StatusText(resp.StatusCode)
}
