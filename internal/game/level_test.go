package game

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"
)

type recordLogger struct {
	lines []string
}

func (r *recordLogger) Printf(format string, v ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, v...))
}

func smallConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.GridWidth = w
	cfg.GridHeight = h
	return cfg
}

func TestLoadLevelFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"level-2.txt": {Data: []byte("0...\n.0..\r\n..00\n")},
	}
	src := FSLevelSource{FS: fsys, Pattern: "level-%d.txt"}
	l := LoadLevel(src, 2, smallConfig(4, 3), nil)

	want := []Cell{{0, 0}, {1, 1}, {2, 2}, {3, 2}}
	got := l.Walls()
	if len(got) != len(want) {
		t.Fatalf("Walls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Walls = %v, want %v", got, want)
		}
	}
	if l.Index != 2 {
		t.Errorf("Index = %d, want 2", l.Index)
	}
}

func TestLoadLevelDropsOutOfBounds(t *testing.T) {
	rows := []string{
		"0.....0", // x=6 is beyond a 4-wide grid
		"....",
		"0...",
		"0000", // y=3 is beyond a 3-high grid
	}
	fsys := fstest.MapFS{"level-0.txt": {Data: []byte(strings.Join(rows, "\n"))}}
	l := LoadLevel(FSLevelSource{FS: fsys}, 0, smallConfig(4, 3), nil)

	if l.WallCount() != 2 {
		t.Fatalf("WallCount = %d, want 2 (walls %v)", l.WallCount(), l.Walls())
	}
	if !l.IsWall(Cell{0, 0}) || !l.IsWall(Cell{0, 2}) {
		t.Errorf("expected walls at (0,0) and (0,2), got %v", l.Walls())
	}
	if l.IsWall(Cell{6, 0}) || l.IsWall(Cell{0, 3}) {
		t.Error("out-of-bounds marker kept")
	}
}

func TestLoadLevelCustomMarker(t *testing.T) {
	cfg := smallConfig(3, 1)
	cfg.WallMarker = '#'
	fsys := fstest.MapFS{"level-0.txt": {Data: []byte("#0#")}}
	l := LoadLevel(FSLevelSource{FS: fsys}, 0, cfg, nil)
	if l.WallCount() != 2 || l.IsWall(Cell{1, 0}) {
		t.Fatalf("Walls = %v, want (0,0) and (2,0)", l.Walls())
	}
}

func TestLoadLevelMissingIsEmpty(t *testing.T) {
	log := &recordLogger{}
	l := LoadLevel(FSLevelSource{FS: fstest.MapFS{}}, 3, smallConfig(4, 4), log)
	if l.WallCount() != 0 {
		t.Fatalf("missing level has %d walls", l.WallCount())
	}
	if len(log.lines) != 1 || !strings.Contains(log.lines[0], "level 3") {
		t.Fatalf("log = %q, want one line about level 3", log.lines)
	}
}

func TestLoadLevelNilSource(t *testing.T) {
	l := LoadLevel(nil, 0, smallConfig(4, 4), nil)
	if l.WallCount() != 0 || l.IsWall(Cell{0, 0}) {
		t.Fatal("nil source produced walls")
	}
}

func TestNewLevelDropsOutOfBounds(t *testing.T) {
	l := NewLevel(0, smallConfig(3, 3), Cell{-1, 0}, Cell{1, 1}, Cell{3, 0}, Cell{1, 1})
	if l.WallCount() != 1 || !l.IsWall(Cell{1, 1}) {
		t.Fatalf("Walls = %v, want [(1,1)]", l.Walls())
	}
}

func TestIsWallIdempotent(t *testing.T) {
	cfg := smallConfig(6, 6)
	l := NewLevel(0, cfg, Cell{0, 0}, Cell{5, 5})
	s := NewSnake(cfg.Center(), cfg.GridWidth, cfg.GridHeight)
	food, err := NewFood(s, l, cfg, NewRand(7))
	if err != nil {
		t.Fatal(err)
	}

	probe := []Cell{{0, 0}, {5, 5}, {3, 3}, {1, 0}}
	want := make([]bool, len(probe))
	for i, c := range probe {
		want[i] = l.IsWall(c)
	}

	s.Heading = Right
	for i := 0; i < 20; i++ {
		s.PushHead(s.Advance())
		if i%4 != 0 {
			s.PopTail()
		}
		if i == 10 {
			s.Heading = Down
		}
		if err := food.Relocate(s, l); err != nil {
			break
		}
		for j, c := range probe {
			if got := l.IsWall(c); got != want[j] {
				t.Fatalf("IsWall(%v) changed from %v to %v", c, want[j], got)
			}
		}
	}
}
