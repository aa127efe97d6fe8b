package countrydto

import "time"

type StatusOutput struct {
	TotalCountries  int64
	LastRefreshedAt time.Time
}
