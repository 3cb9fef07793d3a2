// Package desktop runs the game in a GLFW window rendered with OpenGL.
package desktop

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/game"
)

func init() {
	// GLFW calls must come from the main thread.
	runtime.LockOSThread()
}

// Run opens a window and plays s until the window closes, Escape is pressed
// or ctx ends.
func Run(ctx context.Context, s *game.GameSession) error {
	cfg := s.Config()
	w := cfg.GridWidth * cfg.TileSize * WindowScale
	h := cfg.GridHeight * cfg.TileSize * WindowScale
	window, err := openWindow(w, h, "Snake")
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer(window)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	loop := &game.Loop{
		Session:  s,
		Input:    &Keyboard{window: window},
		Renderer: rend,
	}
	for !window.ShouldClose() {
		if ctx.Err() != nil {
			return nil
		}
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if _, err := loop.Step(); err != nil {
			return err
		}
		time.Sleep(cfg.BaseRefresh)
	}
	return nil
}
