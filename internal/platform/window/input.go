package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blockfall/internal/core"
)

// keyBindings maps keys to actions, checked in this order every update.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyArrowLeft, core.ActionMoveLeft},
	{ebiten.KeyArrowRight, core.ActionMoveRight},
	{ebiten.KeyDelete, core.ActionClear},
}

// pollInput pushes an action for every bound key pressed since the last update.
func pollInput(frame *core.InputFrame) {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			frame.Push(b.action)
		}
	}
}
