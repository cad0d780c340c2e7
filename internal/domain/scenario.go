package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Scenario is the closed set of policy scenarios the evaluator understands.
type Scenario string

const (
	// ScenarioS0 is the market-driven baseline: a small constant voluntary
	// SAF adoption share, no mandate.
	ScenarioS0 Scenario = "S0"
	// ScenarioS1 applies the blending mandate schedule to the standard
	// demand forecast.
	ScenarioS1 Scenario = "S1"
	// ScenarioS2 applies the same mandate schedule to a demand forecast that
	// includes operational efficiency gains.
	ScenarioS2 Scenario = "S2"
)

// AllScenarios lists the supported scenarios in canonical order.
func AllScenarios() []Scenario {
	return []Scenario{ScenarioS0, ScenarioS1, ScenarioS2}
}

// ParseScenario converts a token into a Scenario, rejecting anything outside
// the closed set. Matching is case-insensitive.
func ParseScenario(token string) (Scenario, error) {
	switch Scenario(strings.ToUpper(strings.TrimSpace(token))) {
	case ScenarioS0:
		return ScenarioS0, nil
	case ScenarioS1:
		return ScenarioS1, nil
	case ScenarioS2:
		return ScenarioS2, nil
	}
	return "", fmt.Errorf("scenario must be one of S0, S1, S2; got %q", token)
}

// Valid reports whether the scenario is one of the three known variants.
func (s Scenario) Valid() bool {
	switch s {
	case ScenarioS0, ScenarioS1, ScenarioS2:
		return true
	}
	return false
}

// Mandated reports whether the scenario follows the mandate schedule rather
// than the voluntary adoption constant.
func (s Scenario) Mandated() bool {
	return s == ScenarioS1 || s == ScenarioS2
}

// UsesOperationalGains reports whether the scenario is conventionally paired
// with the operational-efficiency demand forecast.
func (s Scenario) UsesOperationalGains() bool {
	return s == ScenarioS2
}

func (s Scenario) String() string { return string(s) }

// UnmarshalYAML validates the token at the configuration boundary.
func (s *Scenario) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var token string
	if err := unmarshal(&token); err != nil {
		return err
	}
	parsed, err := ParseScenario(token)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalJSON validates the token at the API boundary.
func (s *Scenario) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}
	parsed, err := ParseScenario(token)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
