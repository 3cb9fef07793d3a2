package game

import "errors"

// ErrNoFreeCell means every cell is taken by the snake or a wall.
var ErrNoFreeCell = errors.New("no free cell for food")

// RNG is the randomness food placement draws from. *Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// Food is the single pickup on the board.
type Food struct {
	Position Cell
	// Active is false once placement failed; the board has no pickup then.
	Active bool

	cfg Config
	rng RNG
}

// NewFood places the first pickup for a level.
func NewFood(snake *Snake, level *Level, cfg Config, rng RNG) (*Food, error) {
	f := &Food{cfg: cfg, rng: rng}
	return f, f.Relocate(snake, level)
}

func (f *Food) free(c Cell, snake *Snake, level *Level) bool {
	return !snake.Contains(c) && !level.IsWall(c)
}

// Relocate draws uniform random cells until one is off the snake and off the
// walls. After FoodRetryFactor*area misses it scans for the free cells and
// picks one of them uniformly. With no free cell at all the food is
// deactivated and ErrNoFreeCell returned.
func (f *Food) Relocate(snake *Snake, level *Level) error {
	w, h := f.cfg.GridWidth, f.cfg.GridHeight
	tries := FoodRetryFactor * w * h
	for i := 0; i < tries; i++ {
		c := Cell{X: f.rng.Intn(w), Y: f.rng.Intn(h)}
		if f.free(c, snake, level) {
			f.Position = c
			f.Active = true
			return nil
		}
	}

	var open []Cell
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Cell{X: x, Y: y}
			if f.free(c, snake, level) {
				open = append(open, c)
			}
		}
	}
	if len(open) == 0 {
		f.Active = false
		return ErrNoFreeCell
	}
	f.Position = open[f.rng.Intn(len(open))]
	f.Active = true
	return nil
}
