package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gravity/internal/config"
	"github.com/vovakirdan/tui-gravity/internal/core"
	"github.com/vovakirdan/tui-gravity/internal/physics"
	"github.com/vovakirdan/tui-gravity/internal/scenario"
	"github.com/vovakirdan/tui-gravity/internal/statefile"
	"github.com/vovakirdan/tui-gravity/internal/storage"
)

// Glyph ramp for body density per cell. More bodies in a cell produce a
// heavier glyph in a brighter color.
var densityGlyphs = []struct {
	r rune
	c core.Color
}{
	{'·', core.ColorGray},
	{'•', core.ColorWhite},
	{'*', core.ColorBrightYellow},
	{'@', core.ColorBrightWhite},
}

// Model is the Bubble Tea model driving the interactive simulation viewer.
type Model struct {
	sim      *physics.Simulation
	scen     scenario.Scenario
	params   scenario.Params
	simCfg   config.SimConfig
	runtime  core.RuntimeConfig
	screen   *core.Screen
	camera   *Camera
	store    *storage.Store
	keys     *KeyMapper
	paused   bool
	overlay  bool
	quitting bool
	steps    int
	started  time.Time
	status   string
	runSaved bool
}

// NewModel creates a viewer model for the given scenario.
func NewModel(scen scenario.Scenario, simCfg config.SimConfig, runtime core.RuntimeConfig, store *storage.Store) Model {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	m := Model{
		scen:    scen,
		params:  paramsFromConfig(simCfg),
		simCfg:  simCfg,
		runtime: runtime,
		screen:  core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		camera:  NewCamera(runtime.ScreenW, runtime.ScreenH),
		store:   store,
		keys:    NewKeyMapper(),
		overlay: simCfg.Render.TreeOverlay,
		started: time.Now(),
	}
	m.rebuild()
	return m
}

// paramsFromConfig converts scenario config to builder parameters.
func paramsFromConfig(cfg config.SimConfig) scenario.Params {
	return scenario.Params{
		Bodies:      cfg.Scenario.Bodies,
		Mass:        cfg.Scenario.Mass,
		CentralMass: cfg.Scenario.CentralMass,
		Spin:        cfg.Scenario.Spin,
		Radius:      cfg.Scenario.Radius,
		G:           cfg.Physics.G,
	}
}

// rebuild constructs a fresh simulation from the scenario and current seed.
func (m *Model) rebuild() {
	rng := rand.New(rand.NewSource(m.runtime.Seed))
	bodies := m.scen.Build(m.params, rng)
	m.sim = physics.NewSimulation(
		bodies,
		m.simCfg.Physics.Dt,
		m.simCfg.Physics.G,
		m.simCfg.Physics.Softening,
		m.simCfg.Physics.Theta,
	)
	m.steps = 0
	m.runSaved = false
	m.started = time.Now()
	m.camera.FitBounds(physics.ComputeBounds(m.sim.Bodies()))
}

// ResumeFrom replaces the scenario-built bodies with a loaded snapshot.
func (m *Model) ResumeFrom(st statefile.State) {
	m.sim = physics.NewSimulation(st.Bodies, st.Dt, st.G, st.Softening, st.Theta)
	m.steps = 0
	m.runSaved = false
	m.camera.FitBounds(physics.ComputeBounds(m.sim.Bodies()))
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.camera.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionRestart:
		m.saveRun()
		m.runtime.Seed = time.Now().UnixNano()
		m.rebuild()
	case core.ActionOverlay:
		m.overlay = !m.overlay
	case core.ActionFaster:
		m.sim.SetDt(m.sim.Dt() * 1.25)
	case core.ActionSlower:
		m.sim.SetDt(m.sim.Dt() / 1.25)
	case core.ActionZoomIn:
		m.camera.Zoom(1.25)
	case core.ActionZoomOut:
		m.camera.Zoom(1 / 1.25)
	case core.ActionFit:
		m.camera.FitBounds(physics.ComputeBounds(m.sim.Bodies()))
	case core.ActionSnapshot:
		m.saveSnapshot()
	}

	return m, nil
}

// handleTick advances the simulation by one step unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.sim.Step()
		m.steps++
	}
	return m, tickCmd(m.runtime.TickRate)
}

// saveRun records the finished run. Best-effort, the viewer continues
// regardless.
func (m *Model) saveRun() {
	if m.store == nil || m.runSaved || m.steps == 0 {
		return
	}
	//nolint:errcheck
	m.store.SaveRun(storage.RunEntry{
		Scenario: m.scen.ID,
		Bodies:   m.sim.Len(),
		Steps:    m.steps,
		SimTime:  float64(m.steps) * m.sim.Dt(),
		WallMs:   time.Since(m.started).Milliseconds(),
	})
	m.runSaved = true
}

// saveSnapshot writes the current state to ~/.gravity/snapshots.
func (m *Model) saveSnapshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".gravity", "snapshots")
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.dat", m.scen.ID, timestamp))

	err := statefile.Write(path, statefile.State{
		Dt:        m.sim.Dt(),
		G:         m.simCfg.Physics.G,
		Softening: m.simCfg.Physics.Softening,
		Theta:     m.sim.Theta(),
		Bodies:    m.sim.Bodies(),
	})
	if err != nil {
		m.status = "snapshot failed"
		return
	}
	m.status = "saved " + path
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderFrame()
	return RenderScreen(m.screen)
}

// renderFrame draws the overlay, bodies, and status line into the screen
// buffer.
func (m Model) renderFrame() {
	m.screen.Clear()

	if m.overlay {
		m.drawTreeOverlay()
	}
	m.drawBodies()

	if m.simCfg.Render.ShowStatus {
		m.drawStatus()
	}
}

// drawBodies plots every body, ramping glyph and color with the number of
// bodies sharing a cell.
func (m Model) drawBodies() {
	counts := make(map[[2]int]int)
	for _, b := range m.sim.Bodies() {
		x, y := m.camera.Project(b.Pos)
		if !m.camera.OnScreen(x, y) {
			continue
		}
		counts[[2]int{x, y}]++
	}

	for pos, n := range counts {
		level := core.Min(n-1, len(densityGlyphs)-1)
		g := densityGlyphs[level]
		m.screen.SetCell(pos[0], pos[1], g.r, g.c)
	}
}

// drawTreeOverlay draws one box per internal tree node. Nodes smaller than
// a single cell are skipped, so zooming in reveals deeper levels.
func (m Model) drawTreeOverlay() {
	m.drawTreeNode(m.sim.Tree())
}

func (m Model) drawTreeNode(t *physics.QuadTree) {
	if t == nil {
		return
	}

	r := m.camera.ProjectBounds(t.Bounds())
	if r.W < 3 || r.H < 3 {
		return
	}

	viewport := core.NewRect(0, 0, m.screen.Width(), m.screen.Height())
	if !r.Intersects(viewport) {
		return
	}

	m.screen.DrawBox(r, core.ColorCyan)
	for _, child := range t.Children() {
		m.drawTreeNode(child)
	}
}

// drawStatus renders the status line at the bottom of the screen.
func (m Model) drawStatus() {
	y := m.screen.Height() - 1

	state := "running"
	if m.paused {
		state = "paused"
	}
	line := fmt.Sprintf(" %s | %d bodies | step %d | dt %.3g | %s",
		m.scen.ID, m.sim.Len(), m.steps, m.sim.Dt(), state)
	if m.status != "" {
		line += " | " + m.status
	}

	m.screen.DrawTextColored(0, y, line, core.ColorYellow)
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
