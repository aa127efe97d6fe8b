package mappers

import (
	"github.com/LavaJover/shvark-country-service/internal/domain"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/postgres/models"
)

func ToGORMCacheMetadata(metadata *domain.SummaryMetadata) *models.CacheMetadataModel {
	return &models.CacheMetadataModel{
		FilePath:         metadata.ArtifactPath,
		TotalCountries:   metadata.TotalCountries,
		TopCountriesJSON: metadata.TopCountriesSnapshot,
		LastRefreshedAt:  metadata.LastRefreshedAt,
	}
}

func ToDomainSummary(model *models.CacheMetadataModel) *domain.SummaryMetadata {
	return &domain.SummaryMetadata{
		ID:                   model.ID,
		ArtifactPath:         model.FilePath,
		TotalCountries:       model.TotalCountries,
		TopCountriesSnapshot: model.TopCountriesJSON,
		LastRefreshedAt:      model.LastRefreshedAt,
	}
}
