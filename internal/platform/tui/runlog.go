package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-gravity/internal/core"
	"github.com/vovakirdan/tui-gravity/internal/scenario"
	"github.com/vovakirdan/tui-gravity/internal/storage"
)

const maxRunRows = 100

// RunLogKeyMap defines the key bindings for the run log browser.
type RunLogKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextScenario key.Binding
	PrevScenario key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunLogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextScenario, k.PrevScenario, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunLogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextScenario, k.PrevScenario, k.Quit},
	}
}

// DefaultRunLogKeyMap returns default key bindings.
func DefaultRunLogKeyMap() RunLogKeyMap {
	return RunLogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextScenario: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next scenario"),
		),
		PrevScenario: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev scenario"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunLogModel is the Bubble Tea model for browsing recorded runs.
type RunLogModel struct {
	filters  []string // "" means all scenarios
	cursor   int
	store    *storage.Store
	runs     []storage.RunEntry
	table    table.Model
	help     help.Model
	keys     RunLogKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunLogModel creates a run log browser over the given store.
func NewRunLogModel(store *storage.Store, width, height int) RunLogModel {
	filters := []string{""}
	for _, info := range scenario.List() {
		filters = append(filters, info.ID)
	}

	h := help.New()
	h.ShowAll = false

	m := RunLogModel{
		filters: filters,
		store:   store,
		keys:    DefaultRunLogKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates the runs table sized to the current screen.
func (m *RunLogModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Scenario", Width: 12},
		{Title: "Bodies", Width: 8},
		{Title: "Steps", Width: 8},
		{Title: "Sim time", Width: 10},
		{Title: "ms/step", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-7, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads runs for the current filter into the table.
func (m *RunLogModel) loadRuns() {
	m.runs = nil
	if m.store != nil {
		var err error
		filter := m.filters[m.cursor]
		if filter == "" {
			m.runs, err = m.store.RecentRuns(maxRunRows)
		} else {
			m.runs, err = m.store.ScenarioRuns(filter, maxRunRows)
		}
		if err != nil {
			m.runs = nil
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		msPerStep := "-"
		if r.Steps > 0 {
			msPerStep = fmt.Sprintf("%.2f", float64(r.WallMs)/float64(r.Steps))
		}
		rows[i] = table.Row{
			r.Scenario,
			fmt.Sprintf("%d", r.Bodies),
			fmt.Sprintf("%d", r.Steps),
			fmt.Sprintf("%.4g", r.SimTime),
			msPerStep,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the run log model.
func (m RunLogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run log browser.
func (m RunLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextScenario):
			m.cursor = (m.cursor + 1) % len(m.filters)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.PrevScenario):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.filters) - 1
			}
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadRuns()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run log browser.
func (m RunLogModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RECORDED RUNS"
	if filter := m.filters[m.cursor]; filter != "" {
		title = fmt.Sprintf("RECORDED RUNS - %s", filter)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(emptyStyle.Render("No runs recorded yet.\nFinish a simulation to log one."))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunRunLog runs the interactive run log browser.
func RunRunLog(store *storage.Store, width, height int) error {
	model := NewRunLogModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
