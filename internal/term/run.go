package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
)

// Run plays s on screen until ctx ends or the player quits. screen must be
// initialized; Run does not Fini it.
func Run(ctx context.Context, screen tcell.Screen, s *game.GameSession) error {
	screen.HideCursor()

	keys := &Keys{}
	loop := &game.Loop{
		Session:  s,
		Input:    keys,
		Renderer: &Renderer{Screen: screen},
	}

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	tick := time.NewTicker(max(s.Config().BaseRefresh, time.Millisecond))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				if keys.HandleKey(e) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-tick.C:
			if _, err := loop.Step(); err != nil {
				return err
			}
		}
	}
}
