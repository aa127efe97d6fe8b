package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/LavaJover/shvark-country-service/internal/domain"
	countrydto "github.com/LavaJover/shvark-country-service/internal/usecase/dto/country"
)

type CountryUsecase interface {
	ListCountries(ctx context.Context, input *countrydto.ListCountriesInput) ([]*domain.Country, error)
	GetCountry(ctx context.Context, name string) (*domain.Country, error)
	DeleteCountry(ctx context.Context, name string) error
	Status(ctx context.Context) (*countrydto.StatusOutput, error)
	SummaryImage(ctx context.Context) ([]byte, error)
}

type DefaultCountryUsecase struct {
	countryRepo  domain.CountryRepository
	artifactPath string
}

func NewDefaultCountryUsecase(countryRepo domain.CountryRepository, artifactPath string) *DefaultCountryUsecase {
	return &DefaultCountryUsecase{
		countryRepo:  countryRepo,
		artifactPath: artifactPath,
	}
}

func (uc *DefaultCountryUsecase) ListCountries(ctx context.Context, input *countrydto.ListCountriesInput) ([]*domain.Country, error) {
	filters, err := BuildCountryFilters(input)
	if err != nil {
		return nil, err
	}

	countries, err := uc.countryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return ApplyCountryFilters(countries, filters)
}

// BuildCountryFilters validates the query and returns filters in the order
// they are applied: region, currency, sort.
func BuildCountryFilters(input *countrydto.ListCountriesInput) ([]domain.CountryFilter, error) {
	var filters []domain.CountryFilter
	if input == nil {
		return filters, nil
	}

	if input.Region != nil {
		region := strings.TrimSpace(*input.Region)
		if region == "" {
			return nil, domain.NewValidationError("region", "is required")
		}
		filters = append(filters, domain.RegionFilter{Region: region})
	}

	if input.Currency != nil {
		code := strings.TrimSpace(*input.Currency)
		if code == "" {
			return nil, domain.NewValidationError("currency_code", "is required")
		}
		filters = append(filters, domain.CurrencyFilter{CurrencyCode: code})
	}

	if input.Sort != nil && *input.Sort != "" {
		switch kind := domain.SortKind(*input.Sort); kind {
		case domain.SortGDPDesc:
			filters = append(filters, domain.SortFilter{Kind: kind})
		default:
			return nil, domain.NewValidationError("sort", fmt.Sprintf("must be %s", domain.SortGDPDesc))
		}
	}

	return filters, nil
}

// ApplyCountryFilters runs filters over countries in order. A region or
// currency filter that leaves nothing is a validation error.
func ApplyCountryFilters(countries []*domain.Country, filters []domain.CountryFilter) ([]*domain.Country, error) {
	result := countries
	for _, filter := range filters {
		switch f := filter.(type) {
		case domain.RegionFilter:
			result = keep(result, func(c *domain.Country) bool {
				return c.Region != nil && strings.EqualFold(*c.Region, f.Region)
			})
			if len(result) == 0 {
				return nil, domain.NewValidationError("region", "is required")
			}
		case domain.CurrencyFilter:
			result = keep(result, func(c *domain.Country) bool {
				return c.CurrencyCode != nil && *c.CurrencyCode == f.CurrencyCode
			})
			if len(result) == 0 {
				return nil, domain.NewValidationError("currency_code", "is required")
			}
		case domain.SortFilter:
			if f.Kind != domain.SortGDPDesc {
				return nil, domain.NewValidationError("sort", fmt.Sprintf("must be %s", domain.SortGDPDesc))
			}
			SortByEstimatedGDPDesc(result)
		default:
			return nil, domain.NewError(domain.KindInternal, fmt.Sprintf("unsupported filter %T", filter), nil)
		}
	}
	return result, nil
}

func keep(countries []*domain.Country, pred func(*domain.Country) bool) []*domain.Country {
	out := make([]*domain.Country, 0, len(countries))
	for _, c := range countries {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

func (uc *DefaultCountryUsecase) GetCountry(ctx context.Context, name string) (*domain.Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}

	country, err := uc.countryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, domain.NewError(domain.KindNotFound, "No country found with name: "+name, nil)
	}
	return country, nil
}

func (uc *DefaultCountryUsecase) DeleteCountry(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError("name", "is required")
	}

	deleted, err := uc.countryRepo.DeleteByName(ctx, name)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.NewError(domain.KindNotFound, "No country found with name: "+name, nil)
	}
	return nil
}

func (uc *DefaultCountryUsecase) Status(ctx context.Context) (*countrydto.StatusOutput, error) {
	stats, err := uc.countryRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	if stats.LastRefreshedAt == nil {
		return nil, domain.NewError(domain.KindNotFound, "Countries data might not have been refreshed yet", nil)
	}
	return &countrydto.StatusOutput{
		TotalCountries:  stats.Total,
		LastRefreshedAt: *stats.LastRefreshedAt,
	}, nil
}

func (uc *DefaultCountryUsecase) SummaryImage(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(uc.artifactPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.NewError(domain.KindNotFound, "Summary image not found", nil)
	}
	if err != nil {
		return nil, domain.NewError(domain.KindInternal, "failed to read summary image", err)
	}
	return data, nil
}
