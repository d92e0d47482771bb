// Package scenario persists named assumption sets so the dashboard can keep
// several planning cases side by side. Each scenario is one JSON file in
// the store, keyed by its uuid.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ilan-berdy/Commure-Case-Study/internal/models"
	"github.com/ilan-berdy/Commure-Case-Study/internal/services/storage"
)

// ErrNotFound is returned when no scenario exists for the requested ID.
var ErrNotFound = fmt.Errorf("scenario not found")

// Service loads and saves scenarios through the storage layer.
type Service struct {
	store *storage.Store
}

// New creates a scenario service on top of the given store.
func New(store *storage.Store) *Service {
	return &Service{store: store}
}

func fileName(id string) string {
	return id + ".json"
}

// Save validates and persists a scenario, refreshing its UpdatedAt stamp.
func (s *Service) Save(sc *models.Scenario) error {
	if sc.ID == "" {
		return fmt.Errorf("scenario has no ID")
	}
	if strings.TrimSpace(sc.Name) == "" {
		return fmt.Errorf("scenario has no name")
	}
	if err := sc.Assumptions.Validate(); err != nil {
		return err
	}

	sc.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}
	return s.store.Write(fileName(sc.ID), data)
}

// Get loads one scenario by ID.
func (s *Service) Get(id string) (*models.Scenario, error) {
	data, err := s.store.Read(fileName(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var sc models.Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", id, err)
	}
	return &sc, nil
}

// List returns all stored scenarios sorted by name. Unreadable files are
// skipped rather than failing the whole listing.
func (s *Service) List() ([]*models.Scenario, error) {
	names, err := s.store.List(".json")
	if err != nil {
		return nil, err
	}

	scenarios := make([]*models.Scenario, 0, len(names))
	for _, name := range names {
		data, err := s.store.Read(name)
		if err != nil {
			continue
		}
		var sc models.Scenario
		if err := json.Unmarshal(data, &sc); err != nil {
			continue
		}
		scenarios = append(scenarios, &sc)
	}

	sort.Slice(scenarios, func(i, j int) bool {
		if scenarios[i].Name != scenarios[j].Name {
			return scenarios[i].Name < scenarios[j].Name
		}
		return scenarios[i].ID < scenarios[j].ID
	})
	return scenarios, nil
}

// Delete removes a stored scenario.
func (s *Service) Delete(id string) error {
	if !s.store.Exists(fileName(id)) {
		return ErrNotFound
	}
	return s.store.Remove(fileName(id))
}
