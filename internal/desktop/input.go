package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/game"
)

// Keyboard reads the six game buttons from a window. Sticky keys are on, so
// a tap between two logic updates still registers once.
type Keyboard struct {
	window *glfw.Window
}

var bindings = []struct {
	keys []glfw.Key
	set  func(*game.Buttons)
}{
	{[]glfw.Key{glfw.KeyUp, glfw.KeyW}, func(b *game.Buttons) { b.Up = true }},
	{[]glfw.Key{glfw.KeyDown, glfw.KeyS}, func(b *game.Buttons) { b.Down = true }},
	{[]glfw.Key{glfw.KeyLeft, glfw.KeyA}, func(b *game.Buttons) { b.Left = true }},
	{[]glfw.Key{glfw.KeyRight, glfw.KeyD}, func(b *game.Buttons) { b.Right = true }},
	{[]glfw.Key{glfw.KeyEqual, glfw.KeyKPAdd, glfw.KeyEnter, glfw.KeySpace}, func(b *game.Buttons) { b.Plus = true }},
	{[]glfw.Key{glfw.KeyMinus, glfw.KeyKPSubtract}, func(b *game.Buttons) { b.Minus = true }},
}

func (k *Keyboard) Buttons() game.Buttons {
	var b game.Buttons
	for _, bind := range bindings {
		for _, key := range bind.keys {
			if k.window.GetKey(key) == glfw.Press {
				bind.set(&b)
				break
			}
		}
	}
	return b
}
