package sfx

import "gridsnake/internal/game"

var cues = map[game.EventType]Kind{
	game.EventTitle:         Select,
	game.EventLevelStarted:  LevelStart,
	game.EventFoodEaten:     Eat,
	game.EventSnakeDied:     Crash,
	game.EventLevelCleared:  LevelClear,
	game.EventLifeLost:      LifeLost,
	game.EventGameOver:      GameOver,
	game.EventFoodExhausted: Select,
}

// ForEvent returns the cue played for a game event.
func ForEvent(t game.EventType) (Kind, bool) {
	k, ok := cues[t]
	return k, ok
}
