package pong

import (
	"github.com/vovakirdan/vga-pong/internal/core"
)

// BlockChar fills cells that show an object.
const BlockChar = '█'

// RenderState draws a downscaled view of the active region into dst. Each
// cell covers a block of pixels and shows the topmost object overlapping
// that block, so the ball never disappears between sample points.
func RenderState(dst *core.Screen, s State) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}

	objects := []struct {
		obj  Object
		rect core.Rect
	}{
		{ObjectBall, s.Ball.Rect()},
		{ObjectLeftPaddle, s.Left.Rect()},
		{ObjectRightPaddle, s.Right.Rect()},
	}

	for cy := 0; cy < h; cy++ {
		y0 := cy * FieldHeight / h
		y1 := (cy + 1) * FieldHeight / h
		for cx := 0; cx < w; cx++ {
			x0 := cx * FieldWidth / w
			x1 := (cx + 1) * FieldWidth / w
			cell := core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))

			for _, o := range objects {
				if o.rect.Intersects(cell) {
					dst.SetCell(cx, cy, core.Cell{Rune: BlockChar, Color: s.colorOf(o.obj)})
					break
				}
			}
		}
	}
}
