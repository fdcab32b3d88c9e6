// Package api is the thin GET-JSON transport boundary. Status handling is
// deliberately blunt: exactly 200 is success, everything else is a generic
// server error whose body is never inspected.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ftcscope/internal/util/logx"
)

// ServerError is a non-200 response. The body is intentionally discarded:
// only transport failures surface an underlying message.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string { return "Server Error" }

type Client struct {
	hc *http.Client
}

func New(timeout time.Duration) *Client {
	return &Client{hc: &http.Client{Timeout: timeout}}
}

// FetchJSON issues a GET and decodes the 200 body as loose JSON. Non-200
// yields a *ServerError; network failures are returned wrapped so their
// message survives to the UI.
func (c *Client) FetchJSON(ctx context.Context, url string) (any, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		logx.Requestf(url, 0, time.Since(start))
		return nil, 0, err
	}
	defer resp.Body.Close()
	logx.Requestf(url, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, &ServerError{StatusCode: resp.StatusCode}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return payload, resp.StatusCode, nil
}
