package usecase

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/LavaJover/shvark-country-service/internal/domain"
)

const (
	MinGDPMultiplier = 1000
	MaxGDPMultiplier = 2000
)

// MultiplierSource yields the per-record GDP multiplier. It must return a
// value in [MinGDPMultiplier, MaxGDPMultiplier].
type MultiplierSource func() float64

func RandomMultiplier() float64 {
	return float64(MinGDPMultiplier + rand.IntN(MaxGDPMultiplier-MinGDPMultiplier+1))
}

// Merger turns raw upstream entries into country records. It does no I/O.
type Merger struct {
	multiplier MultiplierSource
}

func NewMerger(multiplier MultiplierSource) *Merger {
	if multiplier == nil {
		multiplier = RandomMultiplier
	}
	return &Merger{multiplier: multiplier}
}

// Merge parses raw defensively and enriches it with the cycle's rates.
// Malformed fields are treated as absent. Without a currency code, or with a
// code missing from rates, both ExchangeRate and EstimatedGDP stay nil.
func (m *Merger) Merge(raw domain.RawCountry, rates domain.ExchangeRates, refreshedAt time.Time) *domain.Country {
	country := &domain.Country{
		Capital:      stringField(raw, "capital"),
		Region:       stringField(raw, "region"),
		Population:   populationField(raw),
		CurrencyCode: currencyCode(raw),
		FlagURL:      stringField(raw, "flag"),
	}
	if name := stringField(raw, "name"); name != nil {
		country.Name = *name
	}

	at := refreshedAt
	country.LastRefreshedAt = &at

	if country.CurrencyCode == nil {
		return country
	}

	rate, ok := rates[*country.CurrencyCode]
	if !ok || rate <= 0 {
		return country
	}
	country.ExchangeRate = &rate

	if country.Population != nil {
		gdp := float64(*country.Population) * m.multiplier() / rate
		country.EstimatedGDP = &gdp
	}

	return country
}

func stringField(raw domain.RawCountry, key string) *string {
	v, ok := raw[key].(string)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func populationField(raw domain.RawCountry) *int64 {
	v, ok := raw["population"].(float64)
	if !ok || v < 0 || v != math.Trunc(v) || v >= math.MaxInt64 {
		return nil
	}
	p := int64(v)
	return &p
}

// currencyCode takes the code of the first entry of the currencies list.
func currencyCode(raw domain.RawCountry) *string {
	list, ok := raw["currencies"].([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	first, ok := list[0].(map[string]any)
	if !ok {
		return nil
	}
	return stringField(first, "code")
}
