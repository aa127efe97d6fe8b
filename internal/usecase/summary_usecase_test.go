package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/LavaJover/shvark-country-service/internal/domain"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countryWithGDP(name string, gdp *float64) *domain.Country {
	return &domain.Country{Name: name, EstimatedGDP: gdp}
}

func names(countries []*domain.Country) []string {
	out := make([]string, 0, len(countries))
	for _, c := range countries {
		out = append(out, c.Name)
	}
	return out
}

func TestTopByEstimatedGDP_AbsentLastAndLimited(t *testing.T) {
	countries := []*domain.Country{
		countryWithGDP("none-1", nil),
		countryWithGDP("c", ptr(30.0)),
		countryWithGDP("a", ptr(100.0)),
		countryWithGDP("none-2", nil),
		countryWithGDP("b", ptr(50.0)),
		countryWithGDP("d", ptr(10.0)),
		countryWithGDP("e", ptr(5.0)),
		countryWithGDP("f", ptr(1.0)),
	}

	top := TopByEstimatedGDP(countries, 5)

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, names(top))
	assert.Equal(t, "none-1", countries[0].Name, "input must not be reordered")
}

func TestTopByEstimatedGDP_FillsWithAbsentAndKeepsTieOrder(t *testing.T) {
	countries := []*domain.Country{
		countryWithGDP("x", nil),
		countryWithGDP("tie-1", ptr(7.0)),
		countryWithGDP("tie-2", ptr(7.0)),
		countryWithGDP("y", nil),
	}

	top := TopByEstimatedGDP(countries, 5)

	assert.Equal(t, []string{"tie-1", "tie-2", "x", "y"}, names(top))
}

func newSummaryFixture() (*DefaultSummaryUsecase, *memCountryRepo, *fakeSummaryRepo, *fakeRenderer, *metrics.RefreshMetrics) {
	countryRepo := &memCountryRepo{}
	summaryRepo := &fakeSummaryRepo{}
	renderer := &fakeRenderer{}
	m := metrics.NewRefreshMetrics(prometheus.NewRegistry())
	uc := NewDefaultSummaryUsecase(countryRepo, summaryRepo, renderer, "cache/summary.png", 5, m)
	return uc, countryRepo, summaryRepo, renderer, m
}

func TestSummaryUsecase_Generate(t *testing.T) {
	uc, _, summaryRepo, renderer, m := newSummaryFixture()
	countries := []*domain.Country{
		countryWithGDP("Small", ptr(1.5)),
		countryWithGDP("Big", ptr(1234.567)),
		countryWithGDP("Unknown", nil),
	}

	metadata, err := uc.Generate(context.Background(), countries, cycleTime)
	require.NoError(t, err)

	require.Len(t, renderer.rendered, 1)
	img := renderer.rendered[0]
	assert.Equal(t, "cache/summary.png", renderer.paths[0])
	assert.Equal(t, 3, img.TotalCountries)
	assert.Equal(t, "Top 5 Countries by GDP:", img.Heading)
	assert.Equal(t, []string{"1. Big - 1234.57", "2. Small - 1.50", "3. Unknown - 0.00"}, img.Lines)
	assert.Equal(t, cycleTime, img.LastRefreshedAt)

	require.Len(t, summaryRepo.saved, 1)
	assert.Same(t, metadata, summaryRepo.saved[0])
	assert.Equal(t, 3, metadata.TotalCountries)
	assert.Equal(t, "cache/summary.png", metadata.ArtifactPath)
	assert.Equal(t, cycleTime, metadata.LastRefreshedAt)

	var snapshot []topCountry
	require.NoError(t, json.Unmarshal([]byte(metadata.TopCountriesSnapshot), &snapshot))
	require.Len(t, snapshot, 3)
	assert.Equal(t, "Big", snapshot[0].Name)
	assert.Equal(t, 1, snapshot[0].Rank)
	assert.Nil(t, snapshot[2].EstimatedGDP)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SummaryGeneratedTotal))
}

func TestSummaryUsecase_RenderFailureSkipsMetadata(t *testing.T) {
	uc, _, summaryRepo, renderer, m := newSummaryFixture()
	renderer.err = errors.New("read-only file system")

	_, err := uc.Generate(context.Background(), []*domain.Country{countryWithGDP("A", ptr(1.0))}, cycleTime)

	assert.ErrorIs(t, err, domain.ErrRender)
	assert.Empty(t, summaryRepo.saved)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SummaryFailuresTotal.WithLabelValues(string(domain.KindRender))))
}

func TestSummaryUsecase_StoreFailure(t *testing.T) {
	uc, _, summaryRepo, _, _ := newSummaryFixture()
	summaryRepo.err = domain.NewError(domain.KindStore, "failed to save summary", errors.New("conn reset"))

	_, err := uc.Generate(context.Background(), nil, cycleTime)

	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestSummaryUsecase_RebuildUsesPersistedCountries(t *testing.T) {
	uc, countryRepo, summaryRepo, renderer, _ := newSummaryFixture()
	countryRepo.countries = []*domain.Country{
		{Name: "A", EstimatedGDP: ptr(2.0), LastRefreshedAt: ptr(cycleTime)},
		{Name: "B", EstimatedGDP: ptr(3.0), LastRefreshedAt: ptr(cycleTime.Add(-1))},
	}

	metadata, err := uc.Rebuild(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, metadata.TotalCountries)
	assert.Equal(t, cycleTime, metadata.LastRefreshedAt)
	assert.Equal(t, []string{"1. B - 3.00", "2. A - 2.00"}, renderer.rendered[0].Lines)

	latest, err := uc.Latest(context.Background())
	require.NoError(t, err)
	assert.Same(t, summaryRepo.saved[0], latest)
}

func TestSummaryUsecase_LatestNotFound(t *testing.T) {
	uc, _, _, _, _ := newSummaryFixture()

	_, err := uc.Latest(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSummaryUsecase_TopNIsCapped(t *testing.T) {
	renderer := &fakeRenderer{}
	uc := NewDefaultSummaryUsecase(&memCountryRepo{}, &fakeSummaryRepo{}, renderer, "cache/summary.png", 50, nil)

	countries := make([]*domain.Country, 0, 20)
	for i := 0; i < 20; i++ {
		countries = append(countries, countryWithGDP(fmt.Sprintf("c%d", i), ptr(float64(i))))
	}

	_, err := uc.Generate(context.Background(), countries, cycleTime)
	require.NoError(t, err)

	assert.Len(t, renderer.rendered[0].Lines, MaxTopN)
	assert.Equal(t, "Top 10 Countries by GDP:", renderer.rendered[0].Heading)
}
