package reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client is the only component that talks to the reservation API. Every call
// is single-shot: no retries, the outcome is surfaced to the caller as-is.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient builds a client for the API at baseURL (e.g. https://localhost:7230).
// token, when non-empty, is sent as a bearer token on every request.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// SetHTTPClient overrides the underlying http.Client (tests, custom TLS).
func (c *Client) SetHTTPClient(h *http.Client) {
	if h != nil {
		c.httpc = h
	}
}

func (c *Client) url(nbr ...int) string {
	u := c.baseURL + "/api/Reservation"
	if len(nbr) > 0 {
		u += "/" + strconv.Itoa(nbr[0])
	}
	return u
}

// List fetches all reservations. On failure the caller must keep its
// previous list and display the error.
func (c *Client) List(ctx context.Context) ([]Reservation, error) {
	var out []Reservation
	if err := c.do(ctx, http.MethodGet, c.url(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single reservation by nbr.
func (c *Client) Get(ctx context.Context, nbr int) (*Reservation, error) {
	var out Reservation
	if err := c.do(ctx, http.MethodGet, c.url(nbr), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create persists a new reservation. A duplicate nbr surfaces as ErrConflict.
func (c *Client) Create(ctx context.Context, rec Reservation) (*Reservation, error) {
	var out Reservation
	if err := c.do(ctx, http.MethodPost, c.url(), &rec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the record identified by nbr.
func (c *Client) Update(ctx context.Context, nbr int, rec Reservation) (*Reservation, error) {
	var out Reservation
	if err := c.do(ctx, http.MethodPut, c.url(nbr), &rec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the record identified by nbr.
func (c *Client) Delete(ctx context.Context, nbr int) error {
	return c.do(ctx, http.MethodDelete, c.url(nbr), nil, nil)
}

func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode reservation: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
		}
		return nil
	case resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, url, ErrNotFound)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s %s: %w", method, url, ErrConflict)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s %s: %w", method, url, ErrRejected)
	default:
		return fmt.Errorf("%s %s: status %d: %w", method, url, resp.StatusCode, ErrUnavailable)
	}
}
