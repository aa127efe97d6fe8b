package router

import (
	"net/http"

	"github.com/LavaJover/shvark-country-service/internal/delivery/http/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(h *handlers.CountryHandler, gatherer prometheus.Gatherer) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", h.Status)

		r.Route("/countries", func(r chi.Router) {
			r.Get("/", h.ListCountries)
			r.Post("/refresh", h.RefreshCountries)
			r.Get("/image", h.SummaryImage)
			r.Post("/image/rebuild", h.RebuildSummary)
			r.Get("/summary", h.LatestSummary)
			r.Get("/{name}", h.GetCountry)
			r.Delete("/{name}", h.DeleteCountry)
		})
	})

	return r
}
