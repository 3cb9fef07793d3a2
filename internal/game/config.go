package game

import (
	"errors"
	"fmt"
	"time"
)

// Grid defaults: a 240 px panel split into 12 px tiles.
const (
	DefaultGridWidth  = 20
	DefaultGridHeight = 20
	DefaultTileSize   = 12
)

// Session defaults.
const (
	DefaultCountdown   = 20
	DefaultStartLives  = 3
	DefaultTargetScore = 5
	DefaultTotalLevels = 4
)

// Speed curve: frame skip slides from SlowSkip at SpeedScoreMin down to
// FastSkip at SpeedScoreMax.
const (
	DefaultSlowSkip      = 12
	DefaultFastSkip      = 2
	DefaultSpeedScoreMin = 0
	DefaultSpeedScoreMax = 50
)

// Pacing and level files.
const (
	DefaultBaseRefresh  = 10 * time.Millisecond
	DefaultWallMarker   = '0'
	DefaultLevelPattern = "level-%d.txt"
)

// Food placement gives up on random draws after this many grid areas.
const FoodRetryFactor = 10

// Config is fixed for the lifetime of a session.
type Config struct {
	GridWidth  int
	GridHeight int
	TileSize   int

	Countdown   int
	StartLives  int
	TargetScore int
	TotalLevels int

	SlowSkip      int
	FastSkip      int
	SpeedScoreMin int
	SpeedScoreMax int

	BaseRefresh  time.Duration
	WallMarker   rune
	LevelDir     string
	LevelPattern string

	// Seed drives food placement. Zero means seed from the clock.
	Seed  uint64
	Title [2]string
}

func DefaultConfig() Config {
	return Config{
		GridWidth:     DefaultGridWidth,
		GridHeight:    DefaultGridHeight,
		TileSize:      DefaultTileSize,
		Countdown:     DefaultCountdown,
		StartLives:    DefaultStartLives,
		TargetScore:   DefaultTargetScore,
		TotalLevels:   DefaultTotalLevels,
		SlowSkip:      DefaultSlowSkip,
		FastSkip:      DefaultFastSkip,
		SpeedScoreMin: DefaultSpeedScoreMin,
		SpeedScoreMax: DefaultSpeedScoreMax,
		BaseRefresh:   DefaultBaseRefresh,
		WallMarker:    DefaultWallMarker,
		LevelDir:      ".",
		LevelPattern:  DefaultLevelPattern,
		Title:         [2]string{"Presto", "Snake"},
	}
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		errs = append(errs, fmt.Errorf("grid must be positive, got %dx%d", c.GridWidth, c.GridHeight))
	}
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile size must be positive, got %d", c.TileSize))
	}
	if c.Countdown < 0 {
		errs = append(errs, fmt.Errorf("countdown must not be negative, got %d", c.Countdown))
	}
	if c.StartLives <= 0 {
		errs = append(errs, fmt.Errorf("start lives must be positive, got %d", c.StartLives))
	}
	if c.TotalLevels <= 0 {
		errs = append(errs, fmt.Errorf("total levels must be positive, got %d", c.TotalLevels))
	}
	if c.SlowSkip < 1 || c.FastSkip < 1 {
		errs = append(errs, fmt.Errorf("frame skip must be at least 1, got slow=%d fast=%d", c.SlowSkip, c.FastSkip))
	}
	if c.SpeedScoreMax <= c.SpeedScoreMin {
		errs = append(errs, fmt.Errorf("speed score range is empty: [%d, %d]", c.SpeedScoreMin, c.SpeedScoreMax))
	}
	if c.BaseRefresh < 0 {
		errs = append(errs, fmt.Errorf("base refresh must not be negative, got %s", c.BaseRefresh))
	}
	return errors.Join(errs...)
}

// FrameSkip returns how many raw ticks pass between logic updates at the
// given score. Larger is slower.
func (c Config) FrameSkip(score int) int {
	return MapToRange(score, c.SpeedScoreMin, c.SpeedScoreMax, c.SlowSkip, c.FastSkip)
}

// Area is the number of cells in the grid.
func (c Config) Area() int {
	return c.GridWidth * c.GridHeight
}

// Center is the spawn cell for a fresh snake.
func (c Config) Center() Cell {
	return Cell{X: c.GridWidth / 2, Y: c.GridHeight / 2}
}
