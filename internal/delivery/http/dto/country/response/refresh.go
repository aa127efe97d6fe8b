package response

import (
	"encoding/json"
	"time"
)

type RefreshResponse struct {
	Message         string    `json:"message"`
	CycleID         string    `json:"cycle_id"`
	Fetched         int       `json:"fetched"`
	Persisted       int       `json:"persisted"`
	Skipped         int       `json:"skipped"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
	SummaryError    string    `json:"summary_error,omitempty"`
}

type SummaryResponse struct {
	ArtifactPath    string          `json:"artifact_path"`
	TotalCountries  int             `json:"total_countries"`
	TopCountries    json.RawMessage `json:"top_countries"`
	LastRefreshedAt time.Time       `json:"last_refreshed_at"`
}
