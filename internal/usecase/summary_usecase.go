package usecase

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/LavaJover/shvark-country-service/internal/domain"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/metrics"
)

const (
	DefaultTopN       = 5
	MaxTopN           = 10
	summaryTitle      = "Country Summary"
	summaryHeadingFmt = "Top %d Countries by GDP:"
	summaryLineFmt    = "%d. %s - %.2f"
)

type SummaryUsecase interface {
	Generate(ctx context.Context, countries []*domain.Country, refreshedAt time.Time) (*domain.SummaryMetadata, error)
	Rebuild(ctx context.Context) (*domain.SummaryMetadata, error)
	Latest(ctx context.Context) (*domain.SummaryMetadata, error)
}

type DefaultSummaryUsecase struct {
	countryRepo  domain.CountryRepository
	summaryRepo  domain.SummaryRepository
	renderer     domain.SummaryRenderer
	artifactPath string
	topN         int
	metrics      *metrics.RefreshMetrics
}

func NewDefaultSummaryUsecase(
	countryRepo domain.CountryRepository,
	summaryRepo domain.SummaryRepository,
	renderer domain.SummaryRenderer,
	artifactPath string,
	topN int,
	metrics *metrics.RefreshMetrics,
) *DefaultSummaryUsecase {
	// The artifact has room for MaxTopN ranked lines.
	switch {
	case topN <= 0:
		topN = DefaultTopN
	case topN > MaxTopN:
		topN = MaxTopN
	}
	return &DefaultSummaryUsecase{
		countryRepo:  countryRepo,
		summaryRepo:  summaryRepo,
		renderer:     renderer,
		artifactPath: artifactPath,
		topN:         topN,
		metrics:      metrics,
	}
}

// topCountry is one entry of the JSON snapshot stored with the metadata.
type topCountry struct {
	Rank         int      `json:"rank"`
	Name         string   `json:"name"`
	EstimatedGDP *float64 `json:"estimated_gdp"`
}

// Generate renders the artifact for countries and records its metadata.
// A render failure is returned as KindRender and no metadata is written.
func (uc *DefaultSummaryUsecase) Generate(ctx context.Context, countries []*domain.Country, refreshedAt time.Time) (*domain.SummaryMetadata, error) {
	top := TopByEstimatedGDP(countries, uc.topN)

	lines := make([]string, 0, len(top))
	snapshot := make([]topCountry, 0, len(top))
	for i, c := range top {
		gdp := 0.0
		if c.EstimatedGDP != nil {
			gdp = *c.EstimatedGDP
		}
		lines = append(lines, fmt.Sprintf(summaryLineFmt, i+1, c.Name, gdp))
		snapshot = append(snapshot, topCountry{Rank: i + 1, Name: c.Name, EstimatedGDP: c.EstimatedGDP})
	}

	image := domain.SummaryImage{
		Title:           summaryTitle,
		TotalCountries:  len(countries),
		Heading:         fmt.Sprintf(summaryHeadingFmt, uc.topN),
		Lines:           lines,
		LastRefreshedAt: refreshedAt,
	}
	if err := uc.renderer.Render(uc.artifactPath, image); err != nil {
		return nil, uc.fail(domain.NewError(domain.KindRender, "failed to write summary image", err))
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, uc.fail(domain.NewError(domain.KindInternal, "failed to encode top countries", err))
	}

	metadata := &domain.SummaryMetadata{
		ArtifactPath:         uc.artifactPath,
		TotalCountries:       len(countries),
		TopCountriesSnapshot: string(raw),
		LastRefreshedAt:      refreshedAt,
	}
	if err := uc.summaryRepo.SaveSummary(ctx, metadata); err != nil {
		return nil, uc.fail(err)
	}

	if uc.metrics != nil {
		uc.metrics.RecordSummary(nil, "")
	}
	slog.Info("summary artifact generated",
		"path", uc.artifactPath,
		"total_countries", metadata.TotalCountries,
		"top", len(top),
	)
	return metadata, nil
}

// Rebuild regenerates the artifact from whatever is currently persisted.
func (uc *DefaultSummaryUsecase) Rebuild(ctx context.Context) (*domain.SummaryMetadata, error) {
	countries, err := uc.countryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Stamp the artifact with the newest stored refresh, or now when the
	// store has never been refreshed.
	refreshedAt := time.Now().UTC().Truncate(time.Millisecond)
	if latest := latestRefresh(countries); latest != nil {
		refreshedAt = *latest
	}

	return uc.Generate(ctx, countries, refreshedAt)
}

func (uc *DefaultSummaryUsecase) Latest(ctx context.Context) (*domain.SummaryMetadata, error) {
	return uc.summaryRepo.LatestSummary(ctx)
}

func (uc *DefaultSummaryUsecase) fail(err error) error {
	if uc.metrics != nil {
		uc.metrics.RecordSummary(err, string(domain.KindOf(err)))
	}
	return err
}

func latestRefresh(countries []*domain.Country) *time.Time {
	var latest *time.Time
	for _, c := range countries {
		if c.LastRefreshedAt == nil {
			continue
		}
		if latest == nil || c.LastRefreshedAt.After(*latest) {
			latest = c.LastRefreshedAt
		}
	}
	return latest
}

// SortByEstimatedGDPDesc orders countries by estimated GDP, highest first.
// Countries without a GDP go last; ties keep their input order.
func SortByEstimatedGDPDesc(countries []*domain.Country) {
	slices.SortStableFunc(countries, func(a, b *domain.Country) int {
		switch {
		case a.EstimatedGDP == nil && b.EstimatedGDP == nil:
			return 0
		case a.EstimatedGDP == nil:
			return 1
		case b.EstimatedGDP == nil:
			return -1
		}
		return cmp.Compare(*b.EstimatedGDP, *a.EstimatedGDP)
	})
}

// TopByEstimatedGDP returns at most n countries by descending GDP without
// reordering the input.
func TopByEstimatedGDP(countries []*domain.Country, n int) []*domain.Country {
	sorted := slices.Clone(countries)
	SortByEstimatedGDPDesc(sorted)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
