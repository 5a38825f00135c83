package config

import (
	"embed"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultSimConfig returns the hardcoded fallback configuration, used when
// an embedded default is missing or fails to parse. The values match the
// disk scenario defaults.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Physics: PhysicsConfig{
			Dt:        0.1,
			G:         6.67384e-11,
			Softening: 0.005,
			Theta:     3.0,
		},
		Scenario: ScenarioConfig{
			Bodies:      1000,
			Mass:        2000.0,
			CentralMass: 1.0e7,
			Spin:        0.05,
			Radius:      1.0,
		},
		Render: RenderConfig{
			TreeOverlay: false,
			ShowStatus:  true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a scenario, or nil
// if the scenario has no embedded default.
func GetDefaultYAML(scenarioID string) []byte {
	data, err := defaultsFS.ReadFile("defaults/" + scenarioID + ".yaml")
	if err != nil {
		return nil
	}
	return data
}
