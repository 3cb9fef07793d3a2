// Package glyph lays out text in a fixed 5x7 bitmap font.
package glyph

import (
	"unicode"
	"unicode/utf8"
)

const (
	CellW   = 5
	CellH   = 7
	Advance = CellW + 1 // one blank column between characters
)

// Point is a lit pixel in font units, origin at the top-left of the text.
type Point struct {
	X, Y int
}

func lookup(r rune) [CellH]string {
	if g, ok := font[unicode.ToUpper(r)]; ok {
		return g
	}
	return font['?']
}

// Pixels returns the lit pixels of text laid out on one line. Runes missing
// from the font draw as '?'.
func Pixels(text string) []Point {
	var out []Point
	col := 0
	for _, r := range text {
		for y, row := range lookup(r) {
			for x, c := range row {
				if c == '#' {
					out = append(out, Point{X: col*Advance + x, Y: y})
				}
			}
		}
		col++
	}
	return out
}

// Width is the pixel width of text at scale, without trailing spacing.
func Width(text string, scale int) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	return (n*Advance - 1) * scale
}
