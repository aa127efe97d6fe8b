package sources

import (
	"context"
	"encoding/json"

	"github.com/LavaJover/shvark-country-service/internal/domain"
)

func (c *HTTPClient) FetchCountries(ctx context.Context, url string) ([]domain.RawCountry, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, domain.NewError(domain.KindParse, "failed to parse countries response", err)
	}

	countries := make([]domain.RawCountry, 0, len(entries))
	for _, entry := range entries {
		var raw map[string]any
		if err := json.Unmarshal(entry, &raw); err != nil || raw == nil {
			// Keep the slot, the merger turns it into an all-absent record.
			raw = map[string]any{}
		}
		countries = append(countries, domain.RawCountry(raw))
	}

	return countries, nil
}
