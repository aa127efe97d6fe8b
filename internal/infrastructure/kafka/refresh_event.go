package kafka

import (
	"encoding/json"
	"time"

	"github.com/LavaJover/shvark-country-service/internal/domain"
	"github.com/google/uuid"
)

const CountriesRefreshedEventType = "countries.refreshed"

type CountriesRefreshedEvent struct {
	EventID         string    `json:"event_id"`
	EventType       string    `json:"event_type"`
	CycleID         string    `json:"cycle_id"`
	TotalCountries  int       `json:"total_countries"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
	SummaryPath     string    `json:"summary_path,omitempty"`
}

// NewCountriesRefreshedMessage builds the message announcing a finished
// refresh cycle, keyed by cycle id.
func NewCountriesRefreshedMessage(cycleID string, total int, refreshedAt time.Time, summaryPath string) (domain.Message, error) {
	event := CountriesRefreshedEvent{
		EventID:         uuid.New().String(),
		EventType:       CountriesRefreshedEventType,
		CycleID:         cycleID,
		TotalCountries:  total,
		LastRefreshedAt: refreshedAt,
		SummaryPath:     summaryPath,
	}

	v, err := json.Marshal(event)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{Key: []byte(cycleID), Value: v}, nil
}
