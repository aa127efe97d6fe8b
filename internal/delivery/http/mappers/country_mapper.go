package mappers

import (
	"encoding/json"

	"github.com/LavaJover/shvark-country-service/internal/delivery/http/dto/country/response"
	"github.com/LavaJover/shvark-country-service/internal/domain"
	"github.com/LavaJover/shvark-country-service/internal/usecase"
	countrydto "github.com/LavaJover/shvark-country-service/internal/usecase/dto/country"
)

func ToCountryResponse(country *domain.Country) response.CountryResponse {
	return response.CountryResponse{
		ID:              country.ID,
		Name:            country.Name,
		Capital:         country.Capital,
		Region:          country.Region,
		Population:      country.Population,
		CurrencyCode:    country.CurrencyCode,
		ExchangeRate:    country.ExchangeRate,
		EstimatedGDP:    country.EstimatedGDP,
		FlagURL:         country.FlagURL,
		LastRefreshedAt: country.LastRefreshedAt,
	}
}

func ToCountryResponses(countries []*domain.Country) []response.CountryResponse {
	out := make([]response.CountryResponse, 0, len(countries))
	for _, c := range countries {
		out = append(out, ToCountryResponse(c))
	}
	return out
}

func ToStatusResponse(status *countrydto.StatusOutput) response.StatusResponse {
	return response.StatusResponse{
		TotalCountries:  status.TotalCountries,
		LastRefreshedAt: status.LastRefreshedAt,
	}
}

func ToRefreshResponse(result *usecase.RefreshResult) response.RefreshResponse {
	resp := response.RefreshResponse{
		Message:         "Database updated successfully",
		CycleID:         result.CycleID,
		Fetched:         result.Fetched,
		Persisted:       result.Persisted,
		Skipped:         result.Skipped,
		LastRefreshedAt: result.RefreshedAt,
	}
	if result.SummaryErr != nil {
		resp.SummaryError = result.SummaryErr.Error()
	}
	return resp
}

func ToSummaryResponse(metadata *domain.SummaryMetadata) response.SummaryResponse {
	top := json.RawMessage(metadata.TopCountriesSnapshot)
	if !json.Valid(top) {
		top = json.RawMessage("[]")
	}
	return response.SummaryResponse{
		ArtifactPath:    metadata.ArtifactPath,
		TotalCountries:  metadata.TotalCountries,
		TopCountries:    top,
		LastRefreshedAt: metadata.LastRefreshedAt,
	}
}
