package core

import (
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("GetCell(%d, %d) = %+v on a new screen, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenCellBounds(t *testing.T) {
	s := NewScreen(4, 3)
	block := Cell{Rune: '█', Color: ColorYellow}

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.SetCell(p[0], p[1], block)
		if got := s.GetCell(p[0], p[1]); got != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank out of bounds", p[0], p[1], got)
		}
	}

	s.SetCell(3, 2, block)
	if got := s.GetCell(3, 2); got != block {
		t.Errorf("GetCell(3, 2) = %+v, expected %+v", got, block)
	}
}

func TestScreenSetDrawsWhite(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, Cell{Rune: '█', Color: ColorBlue})
	s.Set(2, 1, 'x')

	if got := s.GetCell(1, 1); got.Color != ColorBlue || got.Rune != '█' {
		t.Errorf("GetCell(1, 1) = %+v, expected blue block", got)
	}
	if got := s.GetCell(2, 1); got.Color != ColorWhite {
		t.Errorf("Set() should draw white text, got color %#02x", uint8(got.Color))
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			s.SetCell(x, y, Cell{Rune: '█', Color: ColorRed})
		}
	}

	s.Clear()

	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("String() after Clear = %q, expected blank rows", got)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(0, 0, "raster")
	s.DrawText(3, 1, "hv")

	expected := "raste\n   hv"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "pong")
	s.DrawText(0, 3, "gone")

	s.Resize(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("after Resize(6, 2) dimensions = %dx%d", s.Width(), s.Height())
	}
	if got := s.String(); got != "pong  \n      " {
		t.Errorf("String() after shrink = %q", got)
	}

	s.Resize(8, 3)
	if got := s.String(); got != "pong    \n        \n        " {
		t.Errorf("String() after grow = %q", got)
	}

	// Same size is a no-op.
	s.SetCell(7, 2, Cell{Rune: 'z', Color: ColorWhite})
	s.Resize(8, 3)
	if s.GetCell(7, 2).Rune != 'z' {
		t.Error("Resize to the same size cleared the screen")
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("NewScreen(-3, -1) = %dx%d, expected 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() on empty screen = %q, expected empty", s.String())
	}
}
