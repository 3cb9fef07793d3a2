package sfx

import (
	"encoding/binary"
	"math"
	"testing"

	"gridsnake/internal/game"
)

func TestGenerateEveryKind(t *testing.T) {
	for _, k := range Kinds() {
		pcm := Generate(k)
		if len(pcm) == 0 {
			t.Fatalf("%v: empty buffer", k)
		}
		if len(pcm)%FrameBytes != 0 {
			t.Fatalf("%v: %d bytes is not whole frames", k, len(pcm))
		}
		if d := Duration(pcm); d <= 0 || d > 1 {
			t.Errorf("%v: duration %.3fs", k, d)
		}

		loud := false
		for i := 0; i < len(pcm); i += FrameBytes {
			l := math.Float32frombits(binary.LittleEndian.Uint32(pcm[i:]))
			r := math.Float32frombits(binary.LittleEndian.Uint32(pcm[i+4:]))
			if l != r {
				t.Fatalf("%v: channels differ at frame %d", k, i/FrameBytes)
			}
			if math.IsNaN(float64(l)) || l > 1 || l < -1 {
				t.Fatalf("%v: sample %v out of range at frame %d", k, l, i/FrameBytes)
			}
			if math.Abs(float64(l)) > 0.05 {
				loud = true
			}
		}
		if !loud {
			t.Errorf("%v: silent", k)
		}
	}
}

func TestGenerateUnknown(t *testing.T) {
	if Generate(kindCount) != nil {
		t.Fatal("unknown kind produced audio")
	}
	if Kind(99).String() != "unknown" {
		t.Fatal("unknown kind name")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, b := Generate(Crash), Generate(Crash)
	if string(a) != string(b) {
		t.Fatal("crash cue differs between calls")
	}
}

func TestSaturateBounds(t *testing.T) {
	for _, x := range []float64{-50, -1.5, -1, -0.3, 0, 0.3, 1, 1.5, 50} {
		y := saturate(x)
		if y > 1 || y < -1 {
			t.Errorf("saturate(%v) = %v", x, y)
		}
	}
}

func TestForEvent(t *testing.T) {
	tests := []struct {
		event game.EventType
		want  Kind
	}{
		{game.EventFoodEaten, Eat},
		{game.EventSnakeDied, Crash},
		{game.EventLevelCleared, LevelClear},
		{game.EventGameOver, GameOver},
	}
	for _, tt := range tests {
		got, ok := ForEvent(tt.event)
		if !ok || got != tt.want {
			t.Errorf("ForEvent(%v) = %v, %v; want %v", tt.event, got, ok, tt.want)
		}
	}
	if _, ok := ForEvent(game.EventType(-1)); ok {
		t.Error("unknown event mapped to a cue")
	}
}
