package game

import (
	"bufio"
	"bytes"
	"cmp"
	"fmt"
	"io/fs"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Logger is the subset of *log.Logger the core writes to.
type Logger interface {
	Printf(format string, v ...any)
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...any) {}

// LevelSource returns the character rows describing a level layout.
type LevelSource interface {
	Rows(index int) ([]string, error)
}

// FSLevelSource reads one text file per level from FS. Pattern is a
// fmt verb taking the level index, e.g. "level-%d.txt".
type FSLevelSource struct {
	FS      fs.FS
	Pattern string
}

func (s FSLevelSource) Rows(index int) ([]string, error) {
	if s.FS == nil {
		return nil, fs.ErrNotExist
	}
	pattern := s.Pattern
	if pattern == "" {
		pattern = DefaultLevelPattern
	}
	name := fmt.Sprintf(pattern, index)
	data, err := fs.ReadFile(s.FS, name)
	if err != nil {
		return nil, fmt.Errorf("read level %q: %w", name, err)
	}
	var rows []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan level %q: %w", name, err)
	}
	return rows, nil
}

// Level is the wall layout of one stage. It does not change after loading.
type Level struct {
	Index int

	walls mapset.Set[Cell]
	list  []Cell // walls sorted row-major, for rendering
}

// NewLevel builds a level from explicit wall cells. Cells outside the grid
// are dropped.
func NewLevel(index int, cfg Config, walls ...Cell) *Level {
	l := &Level{Index: index, walls: mapset.New[Cell]()}
	for _, c := range walls {
		l.add(c, cfg)
	}
	l.seal()
	return l
}

// LoadLevel reads level index from src. A missing or unreadable source yields
// an empty level and a log line; markers outside the grid are dropped.
func LoadLevel(src LevelSource, index int, cfg Config, log Logger) *Level {
	if log == nil {
		log = discardLogger{}
	}
	l := &Level{Index: index, walls: mapset.New[Cell]()}
	if src == nil {
		l.seal()
		return l
	}
	rows, err := src.Rows(index)
	if err != nil {
		log.Printf("level %d: %v, using an empty level", index, err)
		l.seal()
		return l
	}
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			if ch == cfg.WallMarker {
				l.add(Cell{X: x, Y: y}, cfg)
			}
			x++
		}
	}
	l.seal()
	return l
}

func (l *Level) add(c Cell, cfg Config) {
	if c.X < 0 || c.X >= cfg.GridWidth || c.Y < 0 || c.Y >= cfg.GridHeight {
		return
	}
	l.walls.Put(c)
}

func (l *Level) seal() {
	l.list = make([]Cell, 0, l.walls.Size())
	l.walls.Each(func(c Cell) {
		l.list = append(l.list, c)
	})
	slices.SortFunc(l.list, func(a, b Cell) int {
		if n := cmp.Compare(a.Y, b.Y); n != 0 {
			return n
		}
		return cmp.Compare(a.X, b.X)
	})
}

// IsWall reports whether c is a wall cell.
func (l *Level) IsWall(c Cell) bool {
	return l.walls.Has(c)
}

func (l *Level) WallCount() int {
	return len(l.list)
}

// Walls returns the wall cells in row-major order. Callers must not modify
// the slice.
func (l *Level) Walls() []Cell {
	return l.list
}
