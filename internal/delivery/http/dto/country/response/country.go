package response

import "time"

type CountryResponse struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Capital         *string    `json:"capital"`
	Region          *string    `json:"region"`
	Population      *int64     `json:"population"`
	CurrencyCode    *string    `json:"currency_code"`
	ExchangeRate    *float64   `json:"exchange_rate"`
	EstimatedGDP    *float64   `json:"estimated_gdp"`
	FlagURL         *string    `json:"flag_url"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at"`
}

type StatusResponse struct {
	TotalCountries  int64     `json:"total_countries"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

type DeleteResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
