package models

import (
	"time"

	"github.com/google/uuid"
)

// Scenario is a named, persisted AssumptionSet. Scenarios let the dashboard
// keep several independent planning cases side by side; each report run
// still consumes exactly one of them.
type Scenario struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Assumptions AssumptionSet `json:"assumptions"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewScenario creates a scenario with a fresh ID and timestamps.
func NewScenario(name, description string, assumptions *AssumptionSet) *Scenario {
	now := time.Now().UTC()
	return &Scenario{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Assumptions: *assumptions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
