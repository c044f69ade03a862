package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/vga-pong/internal/registry"
	"github.com/vovakirdan/vga-pong/internal/storage"
)

// maxRuns is the number of runs loaded per design.
const maxRuns = 100

// RunsKeyMap defines the key bindings for the run history.
type RunsKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextDesign key.Binding
	PrevDesign key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextDesign, k.PrevDesign, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextDesign, k.PrevDesign},
		{k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextDesign: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next design"),
		),
		PrevDesign: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev design"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the run history screen.
type RunsModel struct {
	designs  []registry.DesignInfo
	cursor   int
	store    *storage.Store
	runs     []storage.Run
	stats    storage.DesignStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunsModel creates a run history model.
func NewRunsModel(store *storage.Store, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		designs: registry.List(),
		store:   store,
		keys:    DefaultRunsKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	if len(m.designs) > 0 {
		m.loadRuns(m.designs[0].ID)
	}
	return m
}

// createTable creates a new table sized to the window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Source", Width: 8},
		{Title: "Ticks", Width: 12},
		{Title: "Frames", Width: 7},
		{Title: "L/R hits", Width: 9},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, totals, and help
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

// loadRuns loads the history of designID.
func (m *RunsModel) loadRuns(designID string) {
	m.runs, m.loadErr = nil, nil
	m.stats = storage.DesignStats{DesignID: designID}
	if m.store != nil {
		m.runs, m.loadErr = m.store.RunsForDesign(designID, maxRuns)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.DesignStats(designID)
		}
	}
	m.table.SetRows(RunRows(m.runs))
	m.table.GotoTop()
}

// RunRows formats runs as table rows.
func RunRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Source,
			fmt.Sprintf("%d", r.SystemTicks),
			fmt.Sprintf("%d", r.Frames),
			fmt.Sprintf("%d/%d", r.LeftHits, r.RightHits),
			r.Duration.Round(100 * time.Millisecond).String(),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run history.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextDesign):
			if len(m.designs) > 0 {
				m.cursor = (m.cursor + 1) % len(m.designs)
				m.loadRuns(m.designs[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevDesign):
			if len(m.designs) > 0 {
				m.cursor = (m.cursor - 1 + len(m.designs)) % len(m.designs)
				m.loadRuns(m.designs[m.cursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(RunRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run history.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := "RUNS"
	if len(m.designs) > 0 {
		title = fmt.Sprintf("RUNS - %s", m.designs[m.cursor].Title)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(dim.Render(fmt.Sprintf("%d runs, %d system ticks, %d frames, hits L%d R%d",
		m.stats.Runs, m.stats.SystemTicks, m.stats.Frames, m.stats.LeftHits, m.stats.RightHits)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.tableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tableContent renders the table or an explanation of why it is empty.
func (m RunsModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("No run database is open.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nStart the simulator to record one.")
	}
	return m.table.View()
}

// RunRuns runs the history screen.
func RunRuns(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
