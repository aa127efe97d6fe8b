package domain

// CountryFilter is one step of the read-side list query. The concrete
// filters are RegionFilter, CurrencyFilter and SortFilter.
type CountryFilter interface {
	countryFilter()
}

type RegionFilter struct {
	Region string
}

type CurrencyFilter struct {
	CurrencyCode string
}

type SortKind string

const (
	SortGDPDesc SortKind = "gdp_desc"
)

type SortFilter struct {
	Kind SortKind
}

func (RegionFilter) countryFilter()   {}
func (CurrencyFilter) countryFilter() {}
func (SortFilter) countryFilter()     {}
