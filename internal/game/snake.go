package game

// SnakeSegment is one occupied cell of the body and the heading it was
// entered with.
type SnakeSegment struct {
	Position Cell
	Heading  Direction
}

// Snake is the player's body, head first. Segments live in a ring buffer so
// both ends move in O(1); occupied keeps a per-cell count that mirrors the
// buffer on every push and pop.
type Snake struct {
	Heading Direction

	buf      []SnakeSegment
	head     int // index of the head segment in buf
	n        int
	occupied map[Cell]int

	gridW, gridH int
}

const snakeInitialCap = 16

// NewSnake spawns a one-segment, motionless snake at start.
func NewSnake(start Cell, gridW, gridH int) *Snake {
	s := &Snake{
		Heading:  None,
		buf:      make([]SnakeSegment, snakeInitialCap),
		occupied: make(map[Cell]int, snakeInitialCap),
		gridW:    gridW,
		gridH:    gridH,
	}
	s.PushHead(SnakeSegment{Position: start, Heading: None})
	return s
}

// PushHead prepends seg. Bounds are not checked; Advance already wraps.
func (s *Snake) PushHead(seg SnakeSegment) {
	if s.n == len(s.buf) {
		s.grow()
	}
	s.head = (s.head - 1 + len(s.buf)) % len(s.buf)
	s.buf[s.head] = seg
	s.n++
	s.occupied[seg.Position]++
}

// PopTail drops the last segment. A one-segment snake is never shortened.
func (s *Snake) PopTail() {
	if s.n <= 1 {
		return
	}
	tail := (s.head + s.n - 1) % len(s.buf)
	pos := s.buf[tail].Position
	s.buf[tail] = SnakeSegment{}
	s.n--
	if s.occupied[pos] <= 1 {
		delete(s.occupied, pos)
	} else {
		s.occupied[pos]--
	}
}

func (s *Snake) grow() {
	next := make([]SnakeSegment, len(s.buf)*2)
	for i := 0; i < s.n; i++ {
		next[i] = s.buf[(s.head+i)%len(s.buf)]
	}
	s.buf = next
	s.head = 0
}

// Contains reports whether any segment sits on c.
func (s *Snake) Contains(c Cell) bool {
	return s.occupied[c] > 0
}

func (s *Snake) Len() int {
	return s.n
}

func (s *Snake) Head() SnakeSegment {
	return s.buf[s.head]
}

func (s *Snake) Tail() SnakeSegment {
	return s.buf[(s.head+s.n-1)%len(s.buf)]
}

// Segment returns the i-th segment counting from the head.
func (s *Snake) Segment(i int) SnakeSegment {
	return s.buf[(s.head+i)%len(s.buf)]
}

// Segments copies the body out, head first.
func (s *Snake) Segments() []SnakeSegment {
	out := make([]SnakeSegment, s.n)
	for i := range out {
		out[i] = s.Segment(i)
	}
	return out
}

// Advance computes the next head from the current heading, wrapping at every
// edge. The snake itself is left untouched.
func (s *Snake) Advance() SnakeSegment {
	next := s.Head().Position.Add(s.Heading)
	next.X = wrap(next.X, s.gridW)
	next.Y = wrap(next.Y, s.gridH)
	return SnakeSegment{Position: next, Heading: s.Heading}
}

// IsMoving is false until the first directional input.
func (s *Snake) IsMoving() bool {
	return s.Heading != None
}

// SetHeading applies the first held direction (Up, Down, Left, Right).
// Reversing onto the body is allowed.
func (s *Snake) SetHeading(in Buttons) {
	if d, ok := in.Heading(); ok {
		s.Heading = d
	}
}
