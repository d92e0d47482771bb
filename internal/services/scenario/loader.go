package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/ilan-berdy/Commure-Case-Study/internal/models"
)

// LoadAssumptionsFile reads an AssumptionSet from a JSON or YAML file,
// keyed on the file extension. Fields omitted from the file fall back to
// the case-study defaults, so a file only needs to state what it changes.
func LoadAssumptionsFile(path string) (*models.AssumptionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read assumptions file: %w", err)
	}

	assumptions := models.DefaultAssumptions()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, assumptions); err != nil {
			return nil, fmt.Errorf("failed to parse YAML assumptions: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, assumptions); err != nil {
			return nil, fmt.Errorf("failed to parse JSON assumptions: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported assumptions format %q (want .json, .yaml, or .yml)", filepath.Ext(path))
	}

	return assumptions, nil
}
