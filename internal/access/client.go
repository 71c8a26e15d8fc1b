package access

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// Client checks entitlements against the HTTP access-check endpoint.
// Concurrent checks of the same email share one request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	group      singleflight.Group
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

func (c *Client) Check(ctx context.Context, email string) (Entitlement, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return Entitlement{}, ErrEmailRequired
	}

	v, err, _ := c.group.Do(email, func() (interface{}, error) {
		return c.fetch(ctx, email)
	})
	if err != nil {
		return Entitlement{}, err
	}
	return v.(Entitlement), nil
}

func (c *Client) fetch(ctx context.Context, email string) (Entitlement, error) {
	endpoint := c.baseURL + "/api/access/check?email=" + url.QueryEscape(email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Entitlement{}, fmt.Errorf("build access request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Entitlement{}, fmt.Errorf("access check request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Entitlement{}, fmt.Errorf("access check returned status %d", resp.StatusCode)
	}

	var ent Entitlement
	if err := json.NewDecoder(resp.Body).Decode(&ent); err != nil {
		return Entitlement{}, fmt.Errorf("decode access response: %w", err)
	}
	return ent, nil
}
