package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/audio"
	"gridsnake/internal/config"
	"gridsnake/internal/desktop"
	"gridsnake/internal/game"
	"gridsnake/internal/term"
)

type options struct {
	term     bool
	mute     bool
	envFile  string
	levelDir string
	seed     uint64
	logPath  string
}

func main() {
	var opts options
	flag.BoolVar(&opts.term, "term", false, "play in the terminal instead of a window")
	flag.BoolVar(&opts.mute, "mute", false, "disable sound")
	flag.StringVar(&opts.envFile, "env", ".env", "optional file with SNAKE_* settings")
	flag.StringVar(&opts.levelDir, "levels", "", "directory holding level-N.txt files")
	flag.Uint64Var(&opts.seed, "seed", 0, "food placement seed (0 = SNAKE_SEED or the clock)")
	flag.StringVar(&opts.logPath, "log", "", "append logs to this file")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.envFile, os.Getenv)
	if err != nil {
		return err
	}
	if opts.levelDir != "" {
		cfg.LevelDir = opts.levelDir
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}

	// The terminal frontend owns stdout/stderr, so it only logs to a file.
	var out io.Writer = os.Stderr
	if opts.term {
		out = io.Discard
	}
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "snake: ", log.LstdFlags|log.Lmicroseconds)

	levels := game.FSLevelSource{FS: os.DirFS(cfg.LevelDir), Pattern: cfg.LevelPattern}
	session := game.NewGameSession(cfg, levels, game.WithLogger(logger))
	logger.Printf("session %s: grid %dx%d, %d levels from %s", session.ID, cfg.GridWidth, cfg.GridHeight, cfg.TotalLevels, cfg.LevelDir)

	if !opts.mute {
		player, err := audio.Init(audio.DefaultVolume)
		if err != nil {
			logger.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			player.Attach(session.Events())
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !opts.term {
		return desktop.Run(ctx, session)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	return term.Run(ctx, screen, session)
}
