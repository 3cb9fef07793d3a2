// Package audio plays sfx cues through oto.
package audio

import (
	"bytes"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"gridsnake/internal/game"
	"gridsnake/internal/sfx"
)

const DefaultVolume = 0.58

// Player owns the oto context. A nil *Player is valid and silent.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	mu    sync.Mutex
	cache map[sfx.Kind][]byte
}

// Init opens the audio device. The context becomes usable asynchronously;
// cues played before it is ready are dropped.
func Init(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(sfx.SampleRate, sfx.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &Player{
		ctx:    ctx,
		ready:  ready,
		volume: volume,
		cache:  make(map[sfx.Kind][]byte),
	}, nil
}

func (p *Player) samples(kind sfx.Kind) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	pcm, ok := p.cache[kind]
	if !ok {
		pcm = sfx.Generate(kind)
		p.cache[kind] = pcm
	}
	return pcm
}

// Play starts kind and returns immediately.
func (p *Player) Play(kind sfx.Kind) {
	if p == nil {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	pcm := p.samples(kind)
	if len(pcm) == 0 {
		return
	}
	go func() {
		player := p.ctx.NewPlayer(bytes.NewReader(pcm))
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Attach plays the matching cue for every event on bus.
func (p *Player) Attach(bus *game.EventBus) {
	if p == nil {
		return
	}
	bus.SubscribeAll(func(e game.Event) {
		if kind, ok := sfx.ForEvent(e.Type); ok {
			p.Play(kind)
		}
	})
}
