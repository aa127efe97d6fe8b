package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-country-service/internal/domain"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/metrics"
	"github.com/jaevor/go-nanoid"
	"golang.org/x/sync/errgroup"
)

const (
	sourceCountries = "countries"
	sourceRates     = "exchange_rates"
)

type RefreshUsecase interface {
	Refresh(ctx context.Context) (*RefreshResult, error)
}

// RefreshResult reports a cycle that persisted its records. SummaryErr is set
// when the artifact could not be regenerated afterwards.
type RefreshResult struct {
	CycleID     string
	RefreshedAt time.Time
	Fetched     int
	Persisted   int
	Skipped     int
	Summary     *domain.SummaryMetadata
	SummaryErr  error
}

type SourceURLs struct {
	CountriesURL     string
	ExchangeRatesURL string
}

type DefaultRefreshUsecase struct {
	countrySource domain.CountrySource
	rateSource    domain.ExchangeRateSource
	urls          SourceURLs
	merger        *Merger
	countryRepo   domain.CountryRepository
	summary       SummaryUsecase
	publisher     domain.PublisherPort
	topic         string
	auditLogger   domain.RefreshAuditLogger
	metrics       *metrics.RefreshMetrics
	now           func() time.Time
}

// NewDefaultRefreshUsecase wires the cycle. publisher, auditLogger and
// metrics may be nil.
func NewDefaultRefreshUsecase(
	countrySource domain.CountrySource,
	rateSource domain.ExchangeRateSource,
	urls SourceURLs,
	merger *Merger,
	countryRepo domain.CountryRepository,
	summary SummaryUsecase,
	publisher domain.PublisherPort,
	topic string,
	auditLogger domain.RefreshAuditLogger,
	metrics *metrics.RefreshMetrics,
) *DefaultRefreshUsecase {
	if merger == nil {
		merger = NewMerger(nil)
	}
	return &DefaultRefreshUsecase{
		countrySource: countrySource,
		rateSource:    rateSource,
		urls:          urls,
		merger:        merger,
		countryRepo:   countryRepo,
		summary:       summary,
		publisher:     publisher,
		topic:         topic,
		auditLogger:   auditLogger,
		metrics:       metrics,
		now:           time.Now,
	}
}

// Refresh runs one cycle: fetch both sources, merge and upsert every record,
// then regenerate the summary artifact. A fetch failure aborts before any
// write; an upsert failure aborts the remaining records.
func (uc *DefaultRefreshUsecase) Refresh(ctx context.Context) (*RefreshResult, error) {
	startedAt := uc.now()
	refreshedAt := startedAt.UTC().Truncate(time.Millisecond)

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, domain.NewError(domain.KindInternal, "failed to create cycle id generator", err)
	}
	cycle := domain.RefreshCycle{
		CycleID:   idGenerator(),
		StartedAt: startedAt,
	}
	log := slog.With("cycle_id", cycle.CycleID)
	log.Info("refresh cycle started")

	rates, raws, err := uc.fetchSources(ctx)
	if err != nil {
		log.Error("refresh aborted, source unavailable", "error", err)
		uc.finish(ctx, &cycle, domain.RefreshSourceUnavailable, err)
		return nil, err
	}
	cycle.Fetched = len(raws)

	// The last occurrence of a name wins, matching what the store ends up with.
	merged := make([]*domain.Country, 0, len(raws))
	byName := make(map[string]int, len(raws))
	for i, raw := range raws {
		country := uc.merger.Merge(raw, rates, refreshedAt)
		if country.Name == "" {
			cycle.Skipped++
			log.Warn("skipping country without a name", "index", i)
			continue
		}
		uc.recordMissingRate(country)

		if _, err := uc.countryRepo.Upsert(ctx, country); err != nil {
			perr := &domain.Error{
				Kind:   domain.KindPersist,
				Detail: fmt.Sprintf("stored %d of %d countries before failing on %q", cycle.Persisted, len(raws), country.Name),
				Err:    err,
			}
			log.Error("refresh aborted, upsert failed", "country", country.Name, "error", err)
			uc.finish(ctx, &cycle, domain.RefreshPersistFailed, perr)
			return nil, perr
		}
		cycle.Persisted++
		if uc.metrics != nil {
			uc.metrics.RecordUpserted()
		}

		if idx, ok := byName[country.Name]; ok {
			merged[idx] = country
			continue
		}
		byName[country.Name] = len(merged)
		merged = append(merged, country)
	}

	result := &RefreshResult{
		CycleID:     cycle.CycleID,
		RefreshedAt: refreshedAt,
		Fetched:     cycle.Fetched,
		Persisted:   cycle.Persisted,
		Skipped:     cycle.Skipped,
	}

	metadata, err := uc.summary.Generate(ctx, merged, refreshedAt)
	if err != nil {
		log.Error("summary regeneration failed", "error", err)
		result.SummaryErr = err
		cycle.SummaryError = err.Error()
	} else {
		result.Summary = metadata
	}

	uc.publishRefreshed(log, result, len(merged))
	uc.finish(ctx, &cycle, domain.RefreshSucceeded, nil)

	log.Info("refresh cycle finished",
		"fetched", cycle.Fetched,
		"persisted", cycle.Persisted,
		"skipped", cycle.Skipped,
	)
	return result, nil
}

// fetchSources fetches rates and countries concurrently. When both fail the
// rates failure is reported.
func (uc *DefaultRefreshUsecase) fetchSources(ctx context.Context) (domain.ExchangeRates, []domain.RawCountry, error) {
	var (
		g            errgroup.Group
		rates        domain.ExchangeRates
		raws         []domain.RawCountry
		ratesErr     error
		countriesErr error
	)
	g.Go(func() error {
		rates, ratesErr = uc.rateSource.FetchExchangeRates(ctx, uc.urls.ExchangeRatesURL)
		return ratesErr
	})
	g.Go(func() error {
		raws, countriesErr = uc.countrySource.FetchCountries(ctx, uc.urls.CountriesURL)
		return countriesErr
	})
	if err := g.Wait(); err == nil {
		return rates, raws, nil
	}

	if ratesErr != nil {
		uc.recordSourceError(sourceRates, ratesErr)
	}
	if countriesErr != nil {
		uc.recordSourceError(sourceCountries, countriesErr)
	}

	// Wait returns whichever failure came first; the rates failure is
	// reported whenever there is one.
	if ratesErr != nil {
		return nil, nil, unavailable(uc.urls.ExchangeRatesURL, ratesErr)
	}
	return nil, nil, unavailable(uc.urls.CountriesURL, countriesErr)
}

func unavailable(url string, err error) error {
	return domain.NewError(domain.KindServiceUnavailable, "could not fetch data from "+url, err)
}

func (uc *DefaultRefreshUsecase) recordSourceError(source string, err error) {
	if uc.metrics != nil {
		uc.metrics.RecordSourceError(source, string(domain.KindOf(err)))
	}
}

func (uc *DefaultRefreshUsecase) recordMissingRate(country *domain.Country) {
	if uc.metrics == nil || country.ExchangeRate != nil {
		return
	}
	reason := "no_currency"
	if country.CurrencyCode != nil {
		reason = "unknown_currency"
	}
	uc.metrics.RecordMissingRate(reason)
}

func (uc *DefaultRefreshUsecase) publishRefreshed(log *slog.Logger, result *RefreshResult, total int) {
	if uc.publisher == nil {
		return
	}
	summaryPath := ""
	if result.Summary != nil {
		summaryPath = result.Summary.ArtifactPath
	}
	msg, err := kafka.NewCountriesRefreshedMessage(result.CycleID, total, result.RefreshedAt, summaryPath)
	if err != nil {
		log.Warn("failed to build refresh event", "error", err)
		return
	}
	if err := uc.publisher.Publish(uc.topic, msg); err != nil {
		log.Warn("failed to publish refresh event", "topic", uc.topic, "error", err)
	}
}

func (uc *DefaultRefreshUsecase) finish(ctx context.Context, cycle *domain.RefreshCycle, outcome domain.RefreshOutcome, err error) {
	cycle.Outcome = outcome
	cycle.FinishedAt = uc.now()
	if err != nil {
		cycle.Error = err.Error()
	}

	if uc.metrics != nil {
		uc.metrics.RecordRefresh(string(outcome), cycle.FinishedAt.Sub(cycle.StartedAt).Seconds())
	}
	if uc.auditLogger != nil {
		if err := uc.auditLogger.LogRefreshCycle(ctx, *cycle); err != nil {
			slog.Warn("failed to write refresh audit row", "cycle_id", cycle.CycleID, "error", err)
		}
	}
}
