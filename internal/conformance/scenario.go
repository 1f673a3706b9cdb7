package conformance

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance case: a raw parameter mapping fed
// through the converter, checked against either a golden descriptor
// snapshot or an expected conversion error.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// PublicationStates overrides the valid publication states for this
	// scenario. Empty means the converter's defaults (live, preview).
	PublicationStates []string `yaml:"publication_states,omitempty"`

	// Defaults seeds the descriptor before params are applied.
	// Mirrors the Defaults argument of Convert.
	Defaults *ScenarioDefaults `yaml:"defaults,omitempty"`

	// Params is the raw parameter mapping under test.
	Params map[string]any `yaml:"params"`

	// Golden names the golden file (without extension) holding the
	// expected canonical descriptor. Mutually exclusive with Error.
	Golden string `yaml:"golden,omitempty"`

	// Error is a substring the conversion error message must contain.
	// Mutually exclusive with Golden.
	Error string `yaml:"error,omitempty"`
}

// ScenarioDefaults is the YAML shape of conversion defaults.
// Sort entries use the "field:order" string form and the where block
// uses the same filter-key mapping accepted by the converter, so
// scenario files stay close to what callers actually write.
type ScenarioDefaults struct {
	Start            *int           `yaml:"start,omitempty"`
	Limit            *int           `yaml:"limit,omitempty"`
	Sort             []string       `yaml:"sort,omitempty"`
	PublicationState string         `yaml:"publication_state,omitempty"`
	Where            map[string]any `yaml:"where,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields (catches typos like "param:" vs "params:")
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml scenario in dir.
// os.ReadDir returns entries sorted by filename, so scenario order is
// stable across runs.
func LoadScenarios(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var scenarios []*Scenario
	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		scenario, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if prev, ok := seen[scenario.Name]; ok {
			return nil, fmt.Errorf("%s: scenario name %q already used by %s", path, scenario.Name, prev)
		}
		seen[scenario.Name] = path
		scenarios = append(scenarios, scenario)
	}

	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Params == nil {
		return fmt.Errorf("params is required (use an empty map for no parameters)")
	}

	if s.Golden == "" && s.Error == "" {
		return fmt.Errorf("one of golden or error is required")
	}
	if s.Golden != "" && s.Error != "" {
		return fmt.Errorf("golden and error are mutually exclusive")
	}

	// Parse the defaults block eagerly so authoring mistakes surface at
	// load time with a precise message instead of as a confusing
	// scenario failure.
	if s.Defaults != nil {
		if _, err := buildDefaults(s.Defaults); err != nil {
			return err
		}
	}

	return nil
}
