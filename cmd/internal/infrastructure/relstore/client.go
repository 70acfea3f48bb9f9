// Package relstore is the client for the relational-store API. This service
// only needs to know whether it is reachable.
package relstore

import (
	"context"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether a base URL was provided.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// Ping reports whether the API answers at all. Any HTTP status counts.
func (c *Client) Ping(ctx context.Context) bool {
	if !c.Configured() {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/empresa/buscar/1", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
