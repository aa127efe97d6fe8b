package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/LavaJover/shvark-country-service/internal/domain"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/postgres/models"
)

type DefaultSummaryRepository struct {
	db *gorm.DB
}

func NewDefaultSummaryRepository(db *gorm.DB) *DefaultSummaryRepository {
	return &DefaultSummaryRepository{db: db}
}

// SaveSummary always inserts a fresh row; metadata is never updated in place.
func (r *DefaultSummaryRepository) SaveSummary(ctx context.Context, metadata *domain.SummaryMetadata) error {
	model := mappers.ToGORMCacheMetadata(metadata)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return domain.NewError(domain.KindStore, "failed to save summary metadata", err)
	}
	metadata.ID = model.ID
	return nil
}

func (r *DefaultSummaryRepository) LatestSummary(ctx context.Context) (*domain.SummaryMetadata, error) {
	var model models.CacheMetadataModel
	if err := r.db.WithContext(ctx).Order("id DESC").Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewError(domain.KindNotFound, "summary has not been generated yet", nil)
		}
		return nil, domain.NewError(domain.KindStore, "failed to read summary metadata", err)
	}
	return mappers.ToDomainSummary(&model), nil
}
