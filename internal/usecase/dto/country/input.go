package countrydto

// ListCountriesInput holds the raw list query. A nil pointer means the
// parameter was not supplied; an empty string means it was supplied blank.
type ListCountriesInput struct {
	Region   *string
	Currency *string
	Sort     *string
}
