package game

import "fmt"

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c offset by d without wrapping.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Center returns the pixel centre of c for the given tile size.
func (c Cell) Center(tile int) (int, int) {
	return c.X*tile + tile/2, c.Y*tile + tile/2
}

// Adjacent reports whether a and b touch along an edge or a corner without
// wrapping across the grid.
func Adjacent(a, b Cell) bool {
	return abs(a.X-b.X) <= 1 && abs(a.Y-b.Y) <= 1
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

var (
	None  = Direction{0, 0}
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	}
	return fmt.Sprintf("dir(%d,%d)", d.DX, d.DY)
}

// Buttons is one input snapshot. The core reads it once per logic update.
type Buttons struct {
	Up, Down, Left, Right bool
	Plus, Minus           bool
}

// Heading returns the first held direction in priority order
// Up, Down, Left, Right, and false when none is held.
func (b Buttons) Heading() (Direction, bool) {
	switch {
	case b.Up:
		return Up, true
	case b.Down:
		return Down, true
	case b.Left:
		return Left, true
	case b.Right:
		return Right, true
	}
	return None, false
}
