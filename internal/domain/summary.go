package domain

import (
	"context"
	"time"
)

type SummaryMetadata struct {
	ID                   uint
	ArtifactPath         string
	TotalCountries       int
	TopCountriesSnapshot string
	LastRefreshedAt      time.Time
}

type SummaryRepository interface {
	SaveSummary(ctx context.Context, metadata *SummaryMetadata) error
	LatestSummary(ctx context.Context) (*SummaryMetadata, error)
}

// SummaryImage is everything drawn on the summary artifact.
type SummaryImage struct {
	Title           string
	TotalCountries  int
	Heading         string
	Lines           []string
	LastRefreshedAt time.Time
}

type SummaryRenderer interface {
	Render(path string, image SummaryImage) error
}
