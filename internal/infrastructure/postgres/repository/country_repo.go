package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/LavaJover/shvark-country-service/internal/domain"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/postgres/models"
)

// Columns rewritten on update. Listing them explicitly makes gorm write nil
// pointers as NULL instead of skipping them.
var countryUpdateColumns = []string{
	"capital",
	"region",
	"population",
	"currency_code",
	"exchange_rate",
	"estimated_gdp",
	"flag_url",
	"last_refreshed_at",
}

type DefaultCountryRepository struct {
	db *gorm.DB
}

func NewDefaultCountryRepository(db *gorm.DB) *DefaultCountryRepository {
	return &DefaultCountryRepository{db: db}
}

// Upsert updates the row whose name matches country.Name or inserts a new
// one. It returns the number of affected rows.
func (r *DefaultCountryRepository) Upsert(ctx context.Context, country *domain.Country) (int64, error) {
	model := mappers.ToGORMCountry(country)
	model.ID = 0
	var affected int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.CountryModel
		err := tx.Where("name = ?", country.Name).Take(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			res := tx.Create(model)
			affected = res.RowsAffected
			return res.Error
		case err != nil:
			return err
		}

		res := tx.Model(&existing).Select(countryUpdateColumns).Updates(model)
		model.ID = existing.ID
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, domain.NewError(domain.KindStore, "failed to upsert country "+country.Name, err)
	}

	country.ID = model.ID
	return affected, nil
}

func (r *DefaultCountryRepository) ListAll(ctx context.Context) ([]*domain.Country, error) {
	var countryModels []*models.CountryModel
	if err := r.db.WithContext(ctx).Order("id").Find(&countryModels).Error; err != nil {
		return nil, domain.NewError(domain.KindStore, "failed to list countries", err)
	}
	return mappers.ToDomainCountries(countryModels), nil
}

// FindByName returns nil, nil when no row carries the name.
func (r *DefaultCountryRepository) FindByName(ctx context.Context, name string) (*domain.Country, error) {
	var model models.CountryModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domain.NewError(domain.KindStore, "failed to get country "+name, err)
	}
	return mappers.ToDomainCountry(&model), nil
}

func (r *DefaultCountryRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	res := r.db.WithContext(ctx).Where("name = ?", name).Delete(&models.CountryModel{})
	if res.Error != nil {
		return 0, domain.NewError(domain.KindStore, "failed to delete country "+name, res.Error)
	}
	return res.RowsAffected, nil
}

func (r *DefaultCountryRepository) Stats(ctx context.Context) (*domain.CountryStats, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.CountryModel{}).Count(&total).Error; err != nil {
		return nil, domain.NewError(domain.KindStore, "failed to count countries", err)
	}

	var latest []*models.CountryModel
	err := db.Where("last_refreshed_at IS NOT NULL").
		Order("last_refreshed_at DESC").
		Limit(1).
		Find(&latest).Error
	if err != nil {
		return nil, domain.NewError(domain.KindStore, "failed to read last refresh time", err)
	}

	stats := &domain.CountryStats{Total: total}
	if len(latest) > 0 {
		stats.LastRefreshedAt = latest[0].LastRefreshedAt
	}
	return stats, nil
}
