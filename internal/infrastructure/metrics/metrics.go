package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RefreshMetrics holds every metric of the refresh pipeline.
type RefreshMetrics struct {
	// Refresh cycles by outcome
	RefreshCyclesTotal prometheus.CounterVec
	RefreshDuration    prometheus.Histogram

	// Upstream sources
	SourceFetchErrorsTotal prometheus.CounterVec

	// Records
	CountriesUpsertedTotal    prometheus.Counter
	CountriesMissingRateTotal prometheus.CounterVec

	// Summary artifact
	SummaryFailuresTotal  prometheus.CounterVec
	SummaryGeneratedTotal prometheus.Counter
}

// NewRefreshMetrics registers the metrics on reg; pass
// prometheus.DefaultRegisterer in production.
func NewRefreshMetrics(reg prometheus.Registerer) *RefreshMetrics {
	factory := promauto.With(reg)

	return &RefreshMetrics{
		RefreshCyclesTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "country_refresh_cycles_total",
				Help: "Refresh cycles by outcome",
			},
			[]string{"outcome"},
		),

		RefreshDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "country_refresh_duration_seconds",
				Help:    "Duration of a refresh cycle in seconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms, 200ms, 400ms...
			},
		),

		SourceFetchErrorsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "country_source_fetch_errors_total",
				Help: "Failed calls to upstream sources",
			},
			[]string{"source", "kind"},
		),

		CountriesUpsertedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "countries_upserted_total",
				Help: "Country records written by refresh cycles",
			},
		),

		CountriesMissingRateTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "countries_missing_rate_total",
				Help: "Merged countries left without an exchange rate",
			},
			[]string{"reason"},
		),

		SummaryFailuresTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "country_summary_failures_total",
				Help: "Failed summary artifact generations",
			},
			[]string{"kind"},
		),

		SummaryGeneratedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "country_summary_generated_total",
				Help: "Successfully generated summary artifacts",
			},
		),
	}
}

func (m *RefreshMetrics) RecordRefresh(outcome string, durationSeconds float64) {
	m.RefreshCyclesTotal.WithLabelValues(outcome).Inc()
	m.RefreshDuration.Observe(durationSeconds)
}

func (m *RefreshMetrics) RecordSourceError(source, kind string) {
	m.SourceFetchErrorsTotal.WithLabelValues(source, kind).Inc()
}

func (m *RefreshMetrics) RecordUpserted() {
	m.CountriesUpsertedTotal.Inc()
}

func (m *RefreshMetrics) RecordMissingRate(reason string) {
	m.CountriesMissingRateTotal.WithLabelValues(reason).Inc()
}

func (m *RefreshMetrics) RecordSummary(err error, kind string) {
	if err != nil {
		m.SummaryFailuresTotal.WithLabelValues(kind).Inc()
		return
	}
	m.SummaryGeneratedTotal.Inc()
}
