package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"cryptostatus/internal/domain"
)

// Client issues single-shot JSON GETs. It never retries.
type Client struct {
	HTTP *http.Client
}

func New(c *http.Client) *Client { return &Client{HTTP: c} }

// GetJSON performs one GET and decodes the body into out when the status is 200.
// Any other status is returned with a nil error and out untouched; the body is drained.
func (c *Client) GetJSON(ctx context.Context, url string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	return resp.StatusCode, nil
}
