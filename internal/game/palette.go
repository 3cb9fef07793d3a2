package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Mul scales every channel by k/255.
func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Floats returns the colour as 0..1 components for GL uniforms.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var Palette = struct {
	Background RGB
	Snake      RGB
	SnakeHead  RGB
	Food       RGB
	Wall       RGB
	Title      RGB
	Text       RGB
}{
	Background: RGB{R: 0, G: 0, B: 0},
	Snake:      RGB{R: 0, G: 200, B: 0},
	SnakeHead:  RGB{R: 120, G: 255, B: 120},
	Food:       RGB{R: 200, G: 0, B: 0},
	Wall:       RGB{R: 200, G: 0, B: 200},
	Title:      RGB{R: 255, G: 255, B: 0},
	Text:       RGB{R: 255, G: 255, B: 255},
}
