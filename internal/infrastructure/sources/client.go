package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-country-service/internal/domain"
)

// HTTPClient fetches the country catalog and the exchange-rate table. It
// makes exactly one attempt per call.
type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NewError(domain.KindFetch, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.NewError(domain.KindFetch, fmt.Sprintf("failed to get %s", url), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.NewError(domain.KindFetch, fmt.Sprintf("%s returned status: %d", url, resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewError(domain.KindFetch, "failed to read response body", err)
	}

	return body, nil
}
