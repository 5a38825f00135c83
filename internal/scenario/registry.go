// Package scenario provides initial-condition generators for the
// simulator. Scenarios register themselves in init() functions, allowing
// the CLI and TUI to discover and instantiate them without hardcoded
// dependencies.
package scenario

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-gravity/internal/physics"
)

// Params are the tunable knobs a scenario builds its bodies from. They map
// one-to-one onto the scenario section of a sim config.
type Params struct {
	Bodies      int     // Total number of bodies to generate
	Mass        float64 // Mass of an ordinary body
	CentralMass float64 // Mass of a central or anchor body, where the scenario has one
	Spin        float64 // Initial tangential velocity factor
	Radius      float64 // Characteristic extent of the distribution
	G           float64 // Gravitational constant, for orbital-velocity setups
}

// Scenario describes a registered initial-condition generator. 2D
// scenarios provide Build; 3D scenarios provide Build3 and set ThreeD.
type Scenario struct {
	ID     string
	Title  string
	ThreeD bool
	Build  func(p Params, rng *rand.Rand) []physics.Body
	Build3 func(p Params, rng *rand.Rand) []physics.Body3
}

// Info contains display metadata about a registered scenario.
type Info struct {
	ID     string
	Title  string
	ThreeD bool
}

var (
	scenarios = make(map[string]Scenario)
	mu        sync.RWMutex
)

// Register adds a scenario to the registry. Typically called from a
// scenario file's init() function. Panics if the ID is already taken.
func Register(s Scenario) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := scenarios[s.ID]; exists {
		panic(fmt.Sprintf("scenario: %q already registered", s.ID))
	}
	scenarios[s.ID] = s
}

// List returns metadata for all registered scenarios, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(scenarios))
	for _, s := range scenarios {
		result = append(result, Info{ID: s.ID, Title: s.Title, ThreeD: s.ThreeD})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get returns the scenario with the given ID.
func Get(id string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := scenarios[id]
	if !ok {
		return Scenario{}, fmt.Errorf("scenario: unknown scenario %q", id)
	}
	return s, nil
}

// Exists checks whether a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := scenarios[id]
	return ok
}
