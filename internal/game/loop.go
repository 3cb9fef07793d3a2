package game

import (
	"context"
	"fmt"
	"time"
)

// InputSource supplies the button snapshot for one logic update.
type InputSource interface {
	Buttons() Buttons
}

// Renderer draws one frame. An error ends the loop.
type Renderer interface {
	Render(Frame) error
}

type InputFunc func() Buttons

func (f InputFunc) Buttons() Buttons { return f() }

// Loop drives a session at a fixed raw tick rate. Every FrameSkip raw ticks
// it samples input, runs one logic update and renders.
type Loop struct {
	Session  *GameSession
	Input    InputSource
	Renderer Renderer
	// Sleep paces raw ticks. Nil means time.Sleep.
	Sleep func(time.Duration)

	frame uint64
}

// Ticks returns the number of raw ticks run so far.
func (l *Loop) Ticks() uint64 {
	return l.frame
}

// Step runs one raw tick without pacing. It reports whether a logic update
// happened.
func (l *Loop) Step() (bool, error) {
	skip := uint64(l.Session.FrameSkip())
	due := l.frame%skip == 0
	l.frame++
	if !due {
		return false, nil
	}
	var in Buttons
	if l.Input != nil {
		in = l.Input.Buttons()
	}
	l.Session.Update(in)
	if l.Renderer == nil {
		return true, nil
	}
	if err := l.Renderer.Render(l.Session.Frame()); err != nil {
		return true, fmt.Errorf("render: %w", err)
	}
	return true, nil
}

// Run steps until ctx is done or rendering fails, sleeping BaseRefresh after
// every raw tick.
func (l *Loop) Run(ctx context.Context) error {
	sleep := l.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	pause := l.Session.Config().BaseRefresh
	for {
		if ctx.Err() != nil {
			return nil
		}
		if _, err := l.Step(); err != nil {
			return err
		}
		sleep(pause)
	}
}
