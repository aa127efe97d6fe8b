package sources

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/LavaJover/shvark-country-service/internal/domain"
)

type ratesResponse struct {
	Rates map[string]json.RawMessage `json:"rates"`
}

func (c *HTTPClient) FetchExchangeRates(ctx context.Context, url string) (domain.ExchangeRates, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var response ratesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, domain.NewError(domain.KindParse, "failed to parse exchange rate response", err)
	}

	if response.Rates == nil {
		return nil, domain.NewError(domain.KindMissingField, "no 'rates' field found in exchange rate response", nil)
	}

	rates := make(domain.ExchangeRates, len(response.Rates))
	for code, raw := range response.Rates {
		var rate float64
		if err := json.Unmarshal(raw, &rate); err != nil || rate <= 0 {
			slog.Warn("skipping unusable exchange rate", "currency", code, "raw", string(raw))
			continue
		}
		rates[code] = rate
	}

	return rates, nil
}
