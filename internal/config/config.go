// Package config assembles a game.Config from defaults, an optional .env file
// and the process environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"gridsnake/internal/game"
)

// Environment keys.
const (
	KeySeed        = "SNAKE_SEED"
	KeyGridWidth   = "SNAKE_GRID_W"
	KeyGridHeight  = "SNAKE_GRID_H"
	KeyTileSize    = "SNAKE_TILE"
	KeyTargetScore = "SNAKE_TARGET_SCORE"
	KeyTotalLevels = "SNAKE_TOTAL_LEVELS"
	KeyLives       = "SNAKE_LIVES"
	KeyCountdown   = "SNAKE_COUNTDOWN"
	KeyRefreshMS   = "SNAKE_REFRESH_MS"
	KeyLevelDir    = "SNAKE_LEVEL_DIR"
)

// Load returns the defaults overlaid with envFile (skipped when empty or
// missing) and then getenv. getenv is usually os.Getenv; nil means the
// environment is not consulted.
func Load(envFile string, getenv func(string) string) (game.Config, error) {
	cfg := game.DefaultConfig()

	fileVals := map[string]string{}
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVals = vals
		case errors.Is(err, fs.ErrNotExist):
		default:
			return cfg, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	lookup := func(key string) string {
		if getenv != nil {
			if v := getenv(key); v != "" {
				return v
			}
		}
		return fileVals[key]
	}

	var errs []error
	setInt := func(key string, dst *int) {
		v := lookup(key)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = n
	}

	setInt(KeyGridWidth, &cfg.GridWidth)
	setInt(KeyGridHeight, &cfg.GridHeight)
	setInt(KeyTileSize, &cfg.TileSize)
	setInt(KeyTargetScore, &cfg.TargetScore)
	setInt(KeyTotalLevels, &cfg.TotalLevels)
	setInt(KeyLives, &cfg.StartLives)
	setInt(KeyCountdown, &cfg.Countdown)

	refresh := -1
	setInt(KeyRefreshMS, &refresh)
	if refresh >= 0 {
		cfg.BaseRefresh = time.Duration(refresh) * time.Millisecond
	}

	if v := lookup(KeySeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeySeed, err))
		} else {
			cfg.Seed = seed
		}
	}
	if v := lookup(KeyLevelDir); v != "" {
		cfg.LevelDir = v
	}

	if err := errors.Join(errs...); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
