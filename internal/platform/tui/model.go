package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vga-pong/internal/config"
	"github.com/vovakirdan/vga-pong/internal/core"
	"github.com/vovakirdan/vga-pong/internal/machine"
	"github.com/vovakirdan/vga-pong/internal/storage"
)

// chromeLines is the number of rows below the field: status and help.
const chromeLines = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	frozenStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model that shows a running machine. The host
// clock is the tick message loop; every tick runs one batch on the runner.
type Model struct {
	runner   *machine.Runner
	store    *storage.Store
	logger   *log.Logger
	source   string
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	latch    *LineLatch
	started  time.Time
	width    int
	height   int
	quitting bool
	saved    bool
}

// NewModel creates a model around runner. store may be nil. source names
// the surface in saved runs ("play" or "ssh").
func NewModel(runner *machine.Runner, store *storage.Store, cfg core.RuntimeConfig, source string, logger *log.Logger) Model {
	h := help.New()
	h.ShowAll = false
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		runner:  runner,
		store:   store,
		logger:  logger,
		source:  source,
		keys:    DefaultKeyMap(),
		help:    h,
		latch:   &LineLatch{},
		started: time.Now(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-chromeLines, 0))
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runner.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-chromeLines, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.saveRun()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.latch.Release(core.LineMoveDown)
		m.latch.Press(core.LineMoveUp)

	case key.Matches(msg, m.keys.Down):
		m.latch.Release(core.LineMoveUp)
		m.latch.Press(core.LineMoveDown)

	case key.Matches(msg, m.keys.Reset):
		m.latch.Pulse(core.LineReset)

	case key.Matches(msg, m.keys.Freeze):
		m.runner.Pause(!m.runner.Paused())

	case key.Matches(msg, m.keys.Step):
		if m.runner.Paused() {
			m.runner.SetInputs(m.latch.Inputs())
			m.runner.Advance(m.runner.TicksPerFrame())
		}

	case key.Matches(msg, m.keys.Faster):
		m.runner.SetTicksPerFrame(config.NextSpeed(m.runner.TicksPerFrame(), 1))

	case key.Matches(msg, m.keys.Slower):
		m.runner.SetTicksPerFrame(config.NextSpeed(m.runner.TicksPerFrame(), -1))

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleTick runs one host frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.runner.SetInputs(m.latch.Inputs())
	m.runner.Step()
	if !m.runner.Paused() {
		m.latch.Tick()
	}
	return m, tickCmd(m.runner.TickRate())
}

// saveRun records the session once. Storage errors are logged and ignored.
func (m *Model) saveRun() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	st := m.runner.Status()
	if st.Stats.SystemTicks == 0 {
		return
	}
	run := storage.NewRun(m.runner.DesignID(), m.source, st.Stats, time.Since(m.started))
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.runner.Status()
	st.Design.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.statusLine(st))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statusLine summarises the machine and host controls.
func (m Model) statusLine(st machine.Status) string {
	line := fmt.Sprintf("%s  x%d  in:%s", st.Summary(), m.runner.TicksPerFrame(), m.runner.Inputs())
	if m.runner.Paused() {
		return frozenStyle.Render("FROZEN") + " " + statusStyle.Render(line)
	}
	return statusStyle.Render(line)
}

// Run starts the Bubble Tea program for runner.
func Run(runner *machine.Runner, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(runner, store, cfg, "play", logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
