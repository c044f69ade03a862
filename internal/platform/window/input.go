package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/vga-pong/internal/config"
	"github.com/vovakirdan/vga-pong/internal/core"
)

// errQuit ends the game loop.
var errQuit = errors.New("quit")

// deadzone is the stick travel ignored around the centre.
const deadzone = 0.25

// input maps held keys and the first gamepad onto the input lines and
// handles the host controls.
func (v *viewer) input() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}

	var in core.Inputs
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Set(core.LineMoveUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Set(core.LineMoveDown)
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		in.Set(core.LineReset)
	}
	in |= v.gamepad()
	v.runner.SetInputs(in)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.runner.Pause(!v.runner.Paused())
	case inpututil.IsKeyJustPressed(ebiten.KeyPeriod):
		if v.runner.Paused() {
			v.runner.Advance(v.runner.TicksPerFrame())
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		v.runner.SetTicksPerFrame(config.NextSpeed(v.runner.TicksPerFrame(), 1))
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		v.runner.SetTicksPerFrame(config.NextSpeed(v.runner.TicksPerFrame(), -1))
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		v.overlay = !v.overlay
	}
	return nil
}

// gamepad reads the first connected gamepad: the left stick or the d-pad
// moves the paddle and the start button resets.
func (v *viewer) gamepad() core.Inputs {
	v.pads = ebiten.AppendGamepadIDs(v.pads[:0])
	if len(v.pads) == 0 {
		return 0
	}
	id := v.pads[0]

	var in core.Inputs
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		axis := ebiten.GamepadAxisValue(id, 1)
		if axis < -deadzone {
			in.Set(core.LineMoveUp)
		} else if axis > deadzone {
			in.Set(core.LineMoveDown)
		}
		return in
	}

	axis := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if axis < -deadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop) {
		in.Set(core.LineMoveUp)
	}
	if axis > deadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom) {
		in.Set(core.LineMoveDown)
	}
	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonCenterRight) {
		in.Set(core.LineReset)
	}
	return in
}
