package setup

import (
	"github.com/LavaJover/shvark-country-service/internal/domain"
	"github.com/LavaJover/shvark-country-service/internal/usecase"
)

type UseCases struct {
	CountryUsecase usecase.CountryUsecase
	RefreshUsecase usecase.RefreshUsecase
	SummaryUsecase usecase.SummaryUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	cfg := deps.Config

	summaryUsecase := usecase.NewDefaultSummaryUsecase(
		deps.Repositories.CountryRepo,
		deps.Repositories.SummaryRepo,
		deps.Renderer,
		cfg.Summary.ArtifactPath,
		cfg.Summary.TopN,
		deps.Metrics,
	)

	// A nil *KafkaPublisher must not become a non-nil interface.
	var publisher domain.PublisherPort
	if deps.EventPublisher != nil {
		publisher = deps.EventPublisher
	}

	refreshUsecase := usecase.NewDefaultRefreshUsecase(
		deps.SourceClient,
		deps.SourceClient,
		usecase.SourceURLs{
			CountriesURL:     cfg.Sources.CountriesURL,
			ExchangeRatesURL: cfg.Sources.ExchangeRatesURL,
		},
		usecase.NewMerger(usecase.RandomMultiplier),
		deps.Repositories.CountryRepo,
		summaryUsecase,
		publisher,
		cfg.KafkaService.Topic,
		deps.AuditLogger,
		deps.Metrics,
	)

	return &UseCases{
		CountryUsecase: usecase.NewDefaultCountryUsecase(deps.Repositories.CountryRepo, cfg.Summary.ArtifactPath),
		RefreshUsecase: refreshUsecase,
		SummaryUsecase: summaryUsecase,
	}
}
