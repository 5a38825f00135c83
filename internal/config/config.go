// Package config provides YAML-based simulation configuration loading
// for the gravity platform.
package config

// SimConfig contains all configuration for one simulation scenario.
type SimConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Scenario ScenarioConfig `yaml:"scenario"`
	Render   RenderConfig   `yaml:"render"`
}

// PhysicsConfig defines the integrator and force-law parameters.
type PhysicsConfig struct {
	Dt        float64 `yaml:"dt"`        // Timestep per simulation tick (> 0)
	G         float64 `yaml:"g"`         // Gravitational constant; negative repels
	Softening float64 `yaml:"softening"` // Added to squared distance (>= 0)
	Theta     float64 `yaml:"theta"`     // Barnes-Hut opening angle (> 0)
}

// ScenarioConfig defines the initial body distribution parameters.
type ScenarioConfig struct {
	Bodies      int     `yaml:"bodies"`
	Mass        float64 `yaml:"mass"`
	CentralMass float64 `yaml:"central_mass"`
	Spin        float64 `yaml:"spin"`
	Radius      float64 `yaml:"radius"`
}

// RenderConfig defines TUI presentation options.
type RenderConfig struct {
	TreeOverlay bool `yaml:"tree_overlay"` // Draw the quadtree wireframe
	ShowStatus  bool `yaml:"show_status"`  // Draw the status line
}
