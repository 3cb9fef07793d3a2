package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/game"
	"gridsnake/internal/glyph"
)

const (
	rectStride = 6 // x, y, r, g, b, a
	discStride = 7 // x, y, size, r, g, b, a

	linkThickness = 4
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type program struct {
	id       uint32
	vao, vbo uint32

	uCamera     int32
	uZoom       int32
	uResolution int32
}

func newProgram(vertSrc, fragSrc string) (program, error) {
	id, err := linkProgram(vertSrc, fragSrc)
	if err != nil {
		return program{}, err
	}
	p := program{id: id}
	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	p.uCamera = gl.GetUniformLocation(id, gl.Str("uCamera\x00"))
	p.uZoom = gl.GetUniformLocation(id, gl.Str("uZoom\x00"))
	p.uResolution = gl.GetUniformLocation(id, gl.Str("uResolution\x00"))
	return p, nil
}

func (p *program) destroy() {
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.id != 0 {
		gl.DeleteProgram(p.id)
	}
}

// draw uploads buf and issues one draw call of the given mode.
func (p *program) draw(buf []float32, stride int, mode uint32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	gl.UseProgram(p.id)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.Uniform2f(p.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(p.uZoom, float32(cam.Zoom))
	gl.Uniform2f(p.uResolution, float32(fbW), float32(fbH))
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(len(buf)/stride))
}

// Renderer draws game frames into a GLFW window. Rectangles (walls, links,
// text pixels) go through one triangle batch and discs (food, head) through
// one point-sprite batch.
type Renderer struct {
	window *glfw.Window
	rects  program
	discs  program

	rectBuf []float32
	discBuf []float32
	title   string
}

func NewRenderer(window *glfw.Window) (*Renderer, error) {
	rects, err := newProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		return nil, fmt.Errorf("rect program: %w", err)
	}
	discs, err := newProgram(discVertSrc, discFragSrc)
	if err != nil {
		rects.destroy()
		return nil, fmt.Errorf("disc program: %w", err)
	}

	// Rect layout: aPos (vec2), aColor (vec4).
	gl.BindVertexArray(rects.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, rects.vbo)
	stride := int32(rectStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))

	// Disc layout: aPos (vec2), aSize (float), aColor (vec4).
	gl.BindVertexArray(discs.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, discs.vbo)
	stride = int32(discStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))

	gl.BindVertexArray(0)
	return &Renderer{window: window, rects: rects, discs: discs}, nil
}

func (r *Renderer) Destroy() {
	r.rects.destroy()
	r.discs.destroy()
}

func (r *Renderer) Render(f game.Frame) error {
	fbW, fbH := r.window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		return nil
	}
	boardW, boardH := f.Width*f.TileSize, f.Height*f.TileSize
	cam := fitCamera(boardW, boardH, fbW, fbH)

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bgR, bgG, bgB := game.Palette.Background.Floats()
	gl.ClearColor(bgR, bgG, bgB, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.rectBuf = r.rectBuf[:0]
	r.discBuf = r.discBuf[:0]
	if f.ShowBoard {
		r.board(f)
	}
	r.captions(f, boardW, boardH)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	r.rects.draw(r.rectBuf, rectStride, gl.TRIANGLES, cam, fbW, fbH)
	r.discs.draw(r.discBuf, discStride, gl.POINTS, cam, fbW, fbH)
	gl.Disable(gl.BLEND)

	r.window.SwapBuffers()

	if t := fmt.Sprintf("Snake - score %d - lives %d - level %d", f.Score, f.Lives, f.Level); t != r.title {
		r.window.SetTitle(t)
		r.title = t
	}
	if err := gl.GetError(); err != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", err)
	}
	return nil
}

func (r *Renderer) board(f game.Frame) {
	tile := float32(f.TileSize)
	center := func(c game.Cell) (float32, float32) {
		x, y := c.Center(f.TileSize)
		return float32(x), float32(y)
	}

	for _, w := range f.Walls {
		r.rect(float32(w.X)*tile, float32(w.Y)*tile, tile, tile, game.Palette.Wall)
	}
	if f.HasFood {
		x, y := center(f.Food)
		r.disc(x, y, tile-2, game.Palette.Food)
	}

	half := float32(linkThickness) / 2
	for _, l := range f.Links {
		x1, y1 := center(l.From)
		x2, y2 := center(l.To)
		x, y := min(x1, x2)-half, min(y1, y2)-half
		w, h := abs32(x1-x2)+linkThickness, abs32(y1-y2)+linkThickness
		r.rect(x, y, w, h, game.Palette.Snake)
	}
	for i, c := range f.Snake {
		x, y := center(c)
		if i == 0 {
			r.disc(x, y, tile-2, game.Palette.SnakeHead)
			continue
		}
		r.rect(x-half, y-half, linkThickness, linkThickness, game.Palette.Snake)
	}
}

// captions lays out up to two lines of card text on the board, scaled with
// the board width.
func (r *Renderer) captions(f game.Frame, boardW, boardH int) {
	scale := max(1, boardW/80)
	rows := []int{boardH * 35 / 240, boardH * 80 / 240}
	for i, line := range f.Captions {
		if i >= len(rows) {
			break
		}
		x0 := (boardW - glyph.Width(line.Text, scale)) / 2
		y0 := rows[i]
		s := float32(scale)
		for _, p := range glyph.Pixels(line.Text) {
			r.rect(float32(x0+p.X*scale), float32(y0+p.Y*scale), s, s, line.Color)
		}
	}
}

func (r *Renderer) rect(x, y, w, h float32, c game.RGB) {
	cr, cg, cb := c.Floats()
	for _, v := range [6][2]float32{
		{x, y}, {x + w, y}, {x + w, y + h},
		{x, y}, {x + w, y + h}, {x, y + h},
	} {
		r.rectBuf = append(r.rectBuf, v[0], v[1], cr, cg, cb, 1)
	}
}

func (r *Renderer) disc(x, y, size float32, c game.RGB) {
	cr, cg, cb := c.Floats()
	r.discBuf = append(r.discBuf, x, y, size, cr, cg, cb, 1)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
