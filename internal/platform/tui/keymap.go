package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/vga-pong/internal/core"
)

// KeyMap defines the key bindings of the simulator view.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Reset  key.Binding
	Freeze key.Binding
	Step   key.Binding
	Faster key.Binding
	Slower key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reset, k.Freeze, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Reset},
		{k.Freeze, k.Step, k.Faster, k.Slower},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up", "k"),
			key.WithHelp("w/up", "paddle up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down", "j"),
			key.WithHelp("s/down", "paddle down"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Freeze: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "freeze clock"),
		),
		Step: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "step batch"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// holdFrames is how many host frames a key press keeps its line asserted.
// Terminals report presses and auto-repeat but never releases, so a line
// stays up for a short while after the last press.
const holdFrames = 6

// latchedLines are the lines a LineLatch can hold.
var latchedLines = []core.Line{core.LineReset, core.LineMoveUp, core.LineMoveDown, core.LinePause}

// LineLatch turns key presses into held input levels.
type LineLatch struct {
	left map[core.Line]int
}

// Press asserts line for the next holdFrames frames.
func (l *LineLatch) Press(line core.Line) {
	if l.left == nil {
		l.left = make(map[core.Line]int, len(latchedLines))
	}
	l.left[line] = holdFrames
}

// Pulse asserts line for the next frame only.
func (l *LineLatch) Pulse(line core.Line) {
	l.Press(line)
	l.left[line] = 1
}

// Release drops line immediately.
func (l *LineLatch) Release(line core.Line) {
	delete(l.left, line)
}

// Inputs returns the levels to drive during the current frame.
func (l *LineLatch) Inputs() core.Inputs {
	var in core.Inputs
	for _, line := range latchedLines {
		if l.left[line] > 0 {
			in.Set(line)
		}
	}
	return in
}

// Tick ages every held line by one frame.
func (l *LineLatch) Tick() {
	for line, n := range l.left {
		if n <= 1 {
			delete(l.left, line)
			continue
		}
		l.left[line] = n - 1
	}
}
