package core

import "testing"

func TestInputsSetHas(t *testing.T) {
	var in Inputs

	if in.Has(LineReset) || in.Has(LineMoveUp) {
		t.Error("Zero Inputs should have no lines asserted")
	}

	in.Set(LineMoveUp)
	in.Set(LineReset)
	if !in.Has(LineMoveUp) || !in.Has(LineReset) {
		t.Errorf("Inputs %v should have Up and Reset asserted", in)
	}
	if in.Has(LineMoveDown) {
		t.Error("Down should not be asserted")
	}

	in.Unset(LineReset)
	if in.Has(LineReset) {
		t.Error("Unset(LineReset) should deassert reset")
	}

	in.Clear()
	if in != 0 {
		t.Errorf("Clear() left %v", in)
	}
}

func TestInputsString(t *testing.T) {
	tests := []struct {
		lines    []Line
		expected string
	}{
		{nil, "-"},
		{[]Line{LineMoveDown}, "Down"},
		{[]Line{LinePause, LineReset, LineMoveUp}, "Reset|Up|Pause"},
	}

	for _, tc := range tests {
		var in Inputs
		for _, l := range tc.lines {
			in.Set(l)
		}
		if in.String() != tc.expected {
			t.Errorf("String() = %q, expected %q", in.String(), tc.expected)
		}
	}
}

func TestEventsHas(t *testing.T) {
	ev := EventHitLeft | EventRespawn
	if !ev.Has(EventHitLeft) || !ev.Has(EventRespawn) {
		t.Errorf("Events %b should contain HitLeft and Respawn", ev)
	}
	if ev.Has(EventHitRight) {
		t.Error("Events should not contain HitRight")
	}
}
