package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/LavaJover/shvark-country-service/internal/domain"
)

type fakeCountrySource struct {
	raws []domain.RawCountry
	err  error
	urls []string
}

func (f *fakeCountrySource) FetchCountries(ctx context.Context, url string) ([]domain.RawCountry, error) {
	f.urls = append(f.urls, url)
	return f.raws, f.err
}

type fakeRateSource struct {
	rates domain.ExchangeRates
	err   error
}

func (f *fakeRateSource) FetchExchangeRates(ctx context.Context, url string) (domain.ExchangeRates, error) {
	return f.rates, f.err
}

// memCountryRepo keeps countries in insertion order, keyed by name.
type memCountryRepo struct {
	mu        sync.Mutex
	countries []*domain.Country
	failOn    string
	listErr   error
	upserts   int
}

func (r *memCountryRepo) Upsert(ctx context.Context, country *domain.Country) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if country.Name == r.failOn {
		return 0, domain.NewError(domain.KindStore, "failed to upsert country", errors.New("boom"))
	}
	r.upserts++
	stored := *country
	for i, c := range r.countries {
		if c.Name == country.Name {
			stored.ID = c.ID
			r.countries[i] = &stored
			return 1, nil
		}
	}
	stored.ID = uint(len(r.countries) + 1)
	r.countries = append(r.countries, &stored)
	return 1, nil
}

func (r *memCountryRepo) ListAll(ctx context.Context) ([]*domain.Country, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Country, len(r.countries))
	copy(out, r.countries)
	return out, nil
}

func (r *memCountryRepo) FindByName(ctx context.Context, name string) (*domain.Country, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.countries {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCountryRepo) DeleteByName(ctx context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.countries {
		if c.Name == name {
			r.countries = append(r.countries[:i], r.countries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *memCountryRepo) Stats(ctx context.Context) (*domain.CountryStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &domain.CountryStats{Total: int64(len(r.countries))}
	for _, c := range r.countries {
		if c.LastRefreshedAt == nil {
			continue
		}
		if stats.LastRefreshedAt == nil || c.LastRefreshedAt.After(*stats.LastRefreshedAt) {
			at := *c.LastRefreshedAt
			stats.LastRefreshedAt = &at
		}
	}
	return stats, nil
}

type fakeSummaryRepo struct {
	saved []*domain.SummaryMetadata
	err   error
}

func (r *fakeSummaryRepo) SaveSummary(ctx context.Context, metadata *domain.SummaryMetadata) error {
	if r.err != nil {
		return r.err
	}
	metadata.ID = uint(len(r.saved) + 1)
	r.saved = append(r.saved, metadata)
	return nil
}

func (r *fakeSummaryRepo) LatestSummary(ctx context.Context) (*domain.SummaryMetadata, error) {
	if len(r.saved) == 0 {
		return nil, domain.NewError(domain.KindNotFound, "summary not found", nil)
	}
	return r.saved[len(r.saved)-1], nil
}

type fakeRenderer struct {
	rendered []domain.SummaryImage
	paths    []string
	err      error
}

func (r *fakeRenderer) Render(path string, image domain.SummaryImage) error {
	if r.err != nil {
		return r.err
	}
	r.paths = append(r.paths, path)
	r.rendered = append(r.rendered, image)
	return nil
}

type fakePublisher struct {
	topics   []string
	messages []domain.Message
	err      error
}

func (p *fakePublisher) Publish(topic string, msgs ...domain.Message) error {
	p.topics = append(p.topics, topic)
	p.messages = append(p.messages, msgs...)
	return p.err
}

type fakeAuditLogger struct {
	cycles []domain.RefreshCycle
}

func (l *fakeAuditLogger) LogRefreshCycle(ctx context.Context, cycle domain.RefreshCycle) error {
	l.cycles = append(l.cycles, cycle)
	return nil
}

func fixedMultiplier(m float64) MultiplierSource {
	return func() float64 { return m }
}

func ptr[T any](v T) *T {
	return &v
}
