package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
)

// Keys turns terminal key events into button snapshots. Terminals report
// presses but not releases, so a press is latched until the next Buttons
// call reads it.
type Keys struct {
	mu      sync.Mutex
	pending game.Buttons
}

// HandleKey records ev and reports whether it asks to quit.
func (k *Keys) HandleKey(ev *tcell.EventKey) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		k.pending.Up = true
	case tcell.KeyDown:
		k.pending.Down = true
	case tcell.KeyLeft:
		k.pending.Left = true
	case tcell.KeyRight:
		k.pending.Right = true
	case tcell.KeyEnter:
		k.pending.Plus = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'w', 'W':
			k.pending.Up = true
		case 's', 'S':
			k.pending.Down = true
		case 'a', 'A':
			k.pending.Left = true
		case 'd', 'D':
			k.pending.Right = true
		case '+', '=', ' ':
			k.pending.Plus = true
		case '-', '_':
			k.pending.Minus = true
		}
	}
	return false
}

// Buttons returns the presses since the last call and clears them.
func (k *Keys) Buttons() game.Buttons {
	k.mu.Lock()
	defer k.mu.Unlock()
	b := k.pending
	k.pending = game.Buttons{}
	return b
}
