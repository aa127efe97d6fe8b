package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/LavaJover/shvark-country-service/internal/delivery/http/dto/country/response"
	"github.com/LavaJover/shvark-country-service/internal/delivery/http/mappers"
	"github.com/LavaJover/shvark-country-service/internal/usecase"
	countrydto "github.com/LavaJover/shvark-country-service/internal/usecase/dto/country"
	"github.com/go-chi/chi/v5"
)

type CountryHandler struct {
	countryUsecase usecase.CountryUsecase
	refreshUsecase usecase.RefreshUsecase
	summaryUsecase usecase.SummaryUsecase
}

func NewCountryHandler(
	countryUsecase usecase.CountryUsecase,
	refreshUsecase usecase.RefreshUsecase,
	summaryUsecase usecase.SummaryUsecase,
) *CountryHandler {
	return &CountryHandler{
		countryUsecase: countryUsecase,
		refreshUsecase: refreshUsecase,
		summaryUsecase: summaryUsecase,
	}
}

// RefreshCountries runs a full refresh cycle synchronously. The cycle is
// detached from the request so a client disconnect cannot abort it halfway.
func (h *CountryHandler) RefreshCountries(w http.ResponseWriter, r *http.Request) {
	result, err := h.refreshUsecase.Refresh(context.WithoutCancel(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ToRefreshResponse(result))
}

func (h *CountryHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	input := &countrydto.ListCountriesInput{}
	if query.Has("region") {
		v := query.Get("region")
		input.Region = &v
	}
	if query.Has("currency") {
		v := query.Get("currency")
		input.Currency = &v
	}
	if query.Has("sort") {
		v := query.Get("sort")
		input.Sort = &v
	}

	countries, err := h.countryUsecase.ListCountries(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ToCountryResponses(countries))
}

func (h *CountryHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	country, err := h.countryUsecase.GetCountry(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ToCountryResponse(country))
}

func (h *CountryHandler) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.countryUsecase.DeleteCountry(r.Context(), name); err != nil {
		writeError(w, r, err)
		return
	}
	slog.Info("country deleted", "name", name)
	writeJSON(w, http.StatusOK, response.DeleteResponse{
		Status:  "success",
		Message: fmt.Sprintf("Country '%s' deleted successfully", name),
	})
}

func (h *CountryHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.countryUsecase.Status(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ToStatusResponse(status))
}

func (h *CountryHandler) SummaryImage(w http.ResponseWriter, r *http.Request) {
	data, err := h.countryUsecase.SummaryImage(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write summary image", "error", err)
	}
}

func (h *CountryHandler) LatestSummary(w http.ResponseWriter, r *http.Request) {
	metadata, err := h.summaryUsecase.Latest(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ToSummaryResponse(metadata))
}

// RebuildSummary regenerates the artifact from the stored countries without
// calling the upstream sources.
func (h *CountryHandler) RebuildSummary(w http.ResponseWriter, r *http.Request) {
	metadata, err := h.summaryUsecase.Rebuild(context.WithoutCancel(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ToSummaryResponse(metadata))
}
