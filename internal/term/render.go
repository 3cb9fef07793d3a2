// Package term runs the game in a terminal through tcell.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
)

// CellWidth is how many terminal columns one grid cell takes.
const CellWidth = 2

func color(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Renderer draws frames onto a tcell screen. The board sits at the top-left
// with a status line under it.
type Renderer struct {
	Screen tcell.Screen
}

func (r *Renderer) Render(f game.Frame) error {
	s := r.Screen
	bg := tcell.StyleDefault.Background(color(game.Palette.Background))
	s.Clear()
	s.Fill(' ', bg)

	if f.ShowBoard {
		wall := bg.Foreground(color(game.Palette.Wall))
		for _, c := range f.Walls {
			r.cell(c, '█', wall)
		}
		if f.HasFood {
			r.cell(f.Food, '●', bg.Foreground(color(game.Palette.Food)))
		}
		body := bg.Foreground(color(game.Palette.Snake))
		for i, c := range f.Snake {
			ch := '█'
			if i == 0 {
				ch = '◆'
			}
			r.cell(c, ch, body)
		}
	}

	for i, line := range f.Captions {
		st := bg.Foreground(color(line.Color)).Bold(true)
		y := f.Height/3 + i*2
		x := (f.Width*CellWidth - len(line.Text)) / 2
		r.text(x, y, line.Text, st)
	}

	status := fmt.Sprintf("score %d  lives %d  level %d  %s", f.Score, f.Lives, f.Level, f.State)
	r.text(0, f.Height, status, bg.Foreground(color(game.Palette.Text)))

	s.Show()
	return nil
}

func (r *Renderer) cell(c game.Cell, ch rune, st tcell.Style) {
	for dx := 0; dx < CellWidth; dx++ {
		r.Screen.SetContent(c.X*CellWidth+dx, c.Y, ch, nil, st)
	}
}

func (r *Renderer) text(x, y int, s string, st tcell.Style) {
	for _, ch := range s {
		r.Screen.SetContent(x, y, ch, nil, st)
		x++
	}
}
