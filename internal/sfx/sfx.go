// Package sfx synthesizes the game's sound cues as float32 little-endian
// stereo PCM.
package sfx

import (
	"encoding/binary"
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	FrameBytes   = 4 * ChannelCount
)

// Kind identifies a cue.
type Kind int

const (
	Eat Kind = iota
	Crash
	LevelStart
	LevelClear
	LifeLost
	GameOver
	Select
	kindCount
)

func (k Kind) String() string {
	switch k {
	case Eat:
		return "eat"
	case Crash:
		return "crash"
	case LevelStart:
		return "level-start"
	case LevelClear:
		return "level-clear"
	case LifeLost:
		return "life-lost"
	case GameOver:
		return "game-over"
	case Select:
		return "select"
	}
	return "unknown"
}

// Kinds lists every cue in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Generate renders kind. Unknown kinds give nil.
func Generate(kind Kind) []byte {
	switch kind {
	case Eat:
		return sweep(0.09, 480, 1200, 2.0, 3.5, 0.5)
	case Crash:
		return crash()
	case LevelStart:
		return arpeggio([]float64{523.25, 659.25, 783.99}, 0.07, 0.15)
	case LevelClear:
		return arpeggio([]float64{440, 554.37, 659.25, 880, 1108.73}, 0.09, 0.25)
	case LifeLost:
		return sweep(0.16, 320, 100, 1.5, 2.8, 0.52)
	case GameOver:
		return gameOver()
	case Select:
		return sweep(0.065, 1400, 700, 1.0, 0.6, 0.38)
	}
	return nil
}

// Duration returns the playing time of a generated buffer in seconds.
func Duration(pcm []byte) float64 {
	return float64(len(pcm)/FrameBytes) / SampleRate
}

// sweep is a single FM voice gliding from f0 to f1. Depth fades with the
// envelope, so the attack is brightest.
func sweep(seconds, f0, f1, ratio, depth, gain float64) []byte {
	n := int(seconds * SampleRate)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := envelope(p, 0.01, 0.5, 0.1, 0.2)
		freq := f0 + (f1-f0)*p
		s := fmTone(t, freq, ratio, depth*env) * env * gain
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
		mix[i] = s
	}
	return encode(mix)
}

// arpeggio rings each note over the next, then lets the last one tail off.
func arpeggio(notes []float64, step, tail float64) []byte {
	stride := int(step * SampleRate)
	total := len(notes)*stride + int(tail*SampleRate)
	mix := make([]float64, total)
	for ni, freq := range notes {
		start := ni * stride
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			env := envelope(float64(j)/float64(dur), 0.003, 0.65, 0.04, 0.28)
			mix[start+j] += fmTone(t, freq, 3.5, 5.5*env) * env * 0.28
		}
	}
	return encode(mix)
}

// crash is a low thump under a burst of low-passed noise.
func crash() []byte {
	n := int(0.22 * SampleRate)
	mix := make([]float64, n)
	seed := uint64(0x5EED)
	lp := 0.0
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		lp = lp*0.85 + noise(&seed)*0.15
		thump := fmTone(t, 90-40*p, 0.5, 1.5) * math.Exp(-p*14)
		mix[i] = (lp*0.6 + thump*0.6) * math.Exp(-p*6)
	}
	return encode(mix)
}

// gameOver is a staggered descending minor triad.
func gameOver() []byte {
	n := int(0.75 * SampleRate)
	mix := make([]float64, n)
	chord := []struct{ freq, onset float64 }{
		{329.63, 0.00},
		{261.63, 0.14},
		{220.00, 0.28},
	}
	for _, note := range chord {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			p := float64(i-start) / float64(n-start)
			env := envelope(p, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - p*0.025)
			mix[i] += fmTone(t, freq, 2.0, 2.0*env)*env*0.32 + math.Sin(math.Pi*freq*t)*env*0.1
		}
	}
	return encode(mix)
}

// envelope is an ADSR shape over normalized progress p in [0,1]. Attack,
// decay and release are fractions of the whole cue.
func envelope(p, attack, decay, sustain, release float64) float64 {
	switch {
	case p < attack:
		return p / attack
	case p < attack+decay:
		return 1 - (p-attack)/decay*(1-sustain)
	case p < 1-release:
		return sustain
	default:
		return sustain * (1 - (p-(1-release))/release)
	}
}

func fmTone(t, carrier, ratio, index float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * ratio * t)
	return math.Sin(2*math.Pi*carrier*t + index*mod)
}

// noise steps an LCG and returns a sample in [-1,1].
func noise(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// saturate bends samples toward ±1 without hard clipping.
func saturate(x float64) float64 {
	switch {
	case x > 1:
		return 1 - 0.5/x
	case x < -1:
		return -1 - 0.5/x
	}
	return x - x*x*x/3
}

// encode writes mono samples to both channels.
func encode(mix []float64) []byte {
	buf := make([]byte, len(mix)*FrameBytes)
	for i, s := range mix {
		v := math.Float32bits(float32(saturate(s)))
		binary.LittleEndian.PutUint32(buf[i*FrameBytes:], v)
		binary.LittleEndian.PutUint32(buf[i*FrameBytes+4:], v)
	}
	return buf
}
