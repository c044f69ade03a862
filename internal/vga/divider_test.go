package vga

import "testing"

func TestDividerPeriod(t *testing.T) {
	tests := []struct {
		name   string
		d      *Divider
		period int
	}{
		{"standard", NewDivider(PixelDivide), 4},
		{"legacy", NewLegacyDivider(), 5},
		{"clamped", NewDivider(0), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.d.Period() != tc.period {
				t.Fatalf("Period() = %d, expected %d", tc.d.Period(), tc.period)
			}
			for i := 1; i <= tc.period*10; i++ {
				fired := tc.d.Tick()
				if expected := i%tc.period == 0; fired != expected {
					t.Errorf("tick %d: Tick() = %v, expected %v", i, fired, expected)
				}
			}
		})
	}
}

func TestDividerLevelToggles(t *testing.T) {
	d := NewDivider(PixelDivide)
	if d.Level() {
		t.Fatal("Level() should start low")
	}

	var levels []bool
	for i := 0; i < 16; i++ {
		if d.Tick() {
			levels = append(levels, d.Level())
		}
	}

	expected := []bool{true, false, true, false}
	if len(levels) != len(expected) {
		t.Fatalf("got %d pixel ticks, expected %d", len(levels), len(expected))
	}
	for i := range expected {
		if levels[i] != expected[i] {
			t.Errorf("pixel tick %d: Level() = %v, expected %v", i, levels[i], expected[i])
		}
	}
}

func TestDividerReset(t *testing.T) {
	d := NewDivider(PixelDivide)
	d.Tick()
	d.Tick()
	d.Tick()
	d.Tick()
	d.Tick()
	d.Reset()

	if d.Level() {
		t.Error("Reset() should drop the level")
	}
	for i := 1; i < PixelDivide; i++ {
		if d.Tick() {
			t.Errorf("tick %d after Reset() fired early", i)
		}
	}
	if !d.Tick() {
		t.Error("divider should fire PixelDivide ticks after Reset()")
	}
}
