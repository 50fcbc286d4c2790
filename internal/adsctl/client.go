package adsctl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"adsd/pkg/types"
)

// Client is a thin HTTP client for the adsd control surface.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient targets baseURL (e.g. "http://127.0.0.1:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Status fetches GET /status.
func (c *Client) Status(ctx context.Context) (types.StatusResponse, error) {
	var st types.StatusResponse
	err := c.doJSON(ctx, http.MethodGet, "/status", nil, &st)
	return st, err
}

// Initialize posts /initialize.
func (c *Client) Initialize(ctx context.Context) (bool, error) {
	return c.op(ctx, "/initialize", nil)
}

// Load posts /ads/{kind}/load with an optional placement id.
func (c *Client) Load(ctx context.Context, kind types.AdKind, adID string) (bool, error) {
	var body any
	if adID != "" {
		body = map[string]string{"ad_id": adID}
	}
	return c.op(ctx, "/ads/"+string(kind)+"/load", body)
}

// Show posts /ads/{kind}/show.
func (c *Client) Show(ctx context.Context, kind types.AdKind) (bool, error) {
	return c.op(ctx, "/ads/"+string(kind)+"/show", nil)
}

// Hide posts /ads/{kind}/hide.
func (c *Client) Hide(ctx context.Context, kind types.AdKind) (bool, error) {
	return c.op(ctx, "/ads/"+string(kind)+"/hide", nil)
}

// Inject posts a raw lifecycle event to /events.
func (c *Client) Inject(ctx context.Context, ev types.Event) error {
	return c.doJSON(ctx, http.MethodPost, "/events", ev, nil)
}

func (c *Client) op(ctx context.Context, path string, body any) (bool, error) {
	var resp types.OpResponse
	if err := c.doJSON(ctx, http.MethodPost, path, body, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		var apiErr types.ErrorResponse
		if json.NewDecoder(res.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (%d)", method, path, apiErr.Error, res.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, res.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
