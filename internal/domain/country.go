package domain

import (
	"context"
	"time"
)

// RawCountry is one upstream country entry exactly as it was decoded from JSON.
type RawCountry map[string]any

// ExchangeRates maps a currency code to its rate against the base currency.
type ExchangeRates map[string]float64

type Country struct {
	ID              uint
	Name            string
	Capital         *string
	Region          *string
	Population      *int64
	CurrencyCode    *string
	ExchangeRate    *float64
	EstimatedGDP    *float64
	FlagURL         *string
	LastRefreshedAt *time.Time
}

type CountryRepository interface {
	Upsert(ctx context.Context, country *Country) (int64, error)
	ListAll(ctx context.Context) ([]*Country, error)
	FindByName(ctx context.Context, name string) (*Country, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
	Stats(ctx context.Context) (*CountryStats, error)
}

type CountryStats struct {
	Total           int64
	LastRefreshedAt *time.Time
}

type CountrySource interface {
	FetchCountries(ctx context.Context, url string) ([]RawCountry, error)
}

type ExchangeRateSource interface {
	FetchExchangeRates(ctx context.Context, url string) (ExchangeRates, error)
}
