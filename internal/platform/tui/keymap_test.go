package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vga-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"w moves up", runeKey('w'), keys.Up},
		{"arrow up moves up", tea.KeyMsg{Type: tea.KeyUp}, keys.Up},
		{"s moves down", runeKey('s'), keys.Down},
		{"arrow down moves down", tea.KeyMsg{Type: tea.KeyDown}, keys.Down},
		{"r resets", runeKey('r'), keys.Reset},
		{"p freezes", runeKey('p'), keys.Freeze},
		{"dot steps", runeKey('.'), keys.Step},
		{"plus is faster", runeKey('+'), keys.Faster},
		{"minus is slower", runeKey('-'), keys.Slower},
		{"q quits", runeKey('q'), keys.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, keys.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("%q does not match binding %v", tt.msg.String(), tt.binding.Keys())
			}
		})
	}
}

func TestLineLatchHoldsForFrames(t *testing.T) {
	var l LineLatch

	if l.Inputs() != 0 {
		t.Fatalf("fresh latch drives %s", l.Inputs())
	}

	l.Press(core.LineMoveUp)
	for i := 0; i < holdFrames; i++ {
		if !l.Inputs().Has(core.LineMoveUp) {
			t.Fatalf("Up dropped after %d frames", i)
		}
		l.Tick()
	}
	if l.Inputs() != 0 {
		t.Errorf("Up still held after %d frames: %s", holdFrames, l.Inputs())
	}
}

func TestLineLatchRepeatRefreshes(t *testing.T) {
	var l LineLatch
	l.Press(core.LineMoveDown)
	for i := 0; i < holdFrames-1; i++ {
		l.Tick()
	}
	l.Press(core.LineMoveDown)
	l.Tick()
	if !l.Inputs().Has(core.LineMoveDown) {
		t.Error("auto-repeat should keep Down held")
	}
}

func TestLineLatchRelease(t *testing.T) {
	var l LineLatch
	l.Press(core.LineMoveUp)
	l.Press(core.LineReset)
	l.Release(core.LineMoveUp)

	in := l.Inputs()
	if in.Has(core.LineMoveUp) || !in.Has(core.LineReset) {
		t.Errorf("Inputs() = %s, expected Reset only", in)
	}
}

func TestLineLatchPulse(t *testing.T) {
	var l LineLatch
	l.Pulse(core.LineReset)
	if !l.Inputs().Has(core.LineReset) {
		t.Fatal("Pulse() did not assert Reset")
	}
	l.Tick()
	if l.Inputs() != 0 {
		t.Errorf("Reset held after one frame: %s", l.Inputs())
	}
}
