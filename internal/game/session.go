package game

import (
	"time"

	"github.com/google/uuid"
)

// GameState is the session phase.
type GameState int

const (
	StateTitle    GameState = iota // title card
	StateLevel                     // level number card, builds the level on exit
	StateLives                     // lives card
	StatePlaying                   // live simulation
	StateScore                     // score card after a death
	StateGameOver                  // final card, board still shown
)

func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateLevel:
		return "level"
	case StateLives:
		return "lives"
	case StatePlaying:
		return "playing"
	case StateScore:
		return "score"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

// Interstitial reports whether the state is a timed text card.
func (s GameState) Interstitial() bool {
	return s != StatePlaying
}

// GameSession owns every entity of a run and advances them one logic update
// at a time.
type GameSession struct {
	ID         string
	State      GameState
	Score      int
	LivesLeft  int
	LevelIndex int
	Countdown  int
	Input      Buttons

	Level *Level
	Snake *Snake
	Food  *Food

	cfg       Config
	source    LevelSource
	rng       RNG
	log       Logger
	bus       *EventBus
	prevInput Buttons
}

type Option func(*GameSession)

func WithLogger(l Logger) Option {
	return func(s *GameSession) { s.log = l }
}

func WithEventBus(b *EventBus) Option {
	return func(s *GameSession) { s.bus = b }
}

func WithRNG(r RNG) Option {
	return func(s *GameSession) { s.rng = r }
}

// NewGameSession starts at the title card. src may be nil, in which case
// every level is empty.
func NewGameSession(cfg Config, src LevelSource, opts ...Option) *GameSession {
	s := &GameSession{
		ID:        uuid.NewString(),
		State:     StateTitle,
		Countdown: cfg.Countdown,
		cfg:       cfg,
		source:    src,
		log:       discardLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		s.rng = NewRand(seed)
	}
	if s.bus == nil {
		s.bus = NewEventBus()
	}
	return s
}

func (s *GameSession) Config() Config {
	return s.cfg
}

func (s *GameSession) Events() *EventBus {
	return s.bus
}

// FrameSkip is the current logic-update divisor.
func (s *GameSession) FrameSkip() int {
	return max(1, s.cfg.FrameSkip(s.Score))
}

type transition func(s *GameSession) (GameState, []Event)

var transitions = [...]transition{
	StateTitle:    interstitial((*GameSession).leaveTitle),
	StateLevel:    interstitial((*GameSession).leaveLevel),
	StateLives:    interstitial((*GameSession).leaveLives),
	StatePlaying:  (*GameSession).play,
	StateScore:    interstitial((*GameSession).leaveScore),
	StateGameOver: interstitial((*GameSession).leaveGameOver),
}

// interstitial wraps the exit of a timed card: each update burns one tick
// of countdown, and once it goes negative (or Plus is freshly pressed) the
// countdown is rearmed and exit fires.
func interstitial(exit transition) transition {
	return func(s *GameSession) (GameState, []Event) {
		s.Countdown--
		skip := s.Input.Plus && !s.prevInput.Plus
		if s.Countdown >= 0 && !skip {
			return s.State, nil
		}
		s.Countdown = s.cfg.Countdown
		return exit(s)
	}
}

// Update runs one logic step against the input snapshot in.
func (s *GameSession) Update(in Buttons) {
	s.prevInput = s.Input
	s.Input = in

	prev := s.State
	next, events := transitions[s.State](s)
	s.State = next
	if next != prev {
		s.log.Printf("session %s: %s -> %s (score=%d lives=%d level=%d)",
			s.ID, prev, next, s.Score, s.LivesLeft, s.LevelIndex)
	}
	for _, e := range events {
		s.bus.Emit(e)
	}
}

func (s *GameSession) leaveTitle() (GameState, []Event) {
	s.LivesLeft = s.cfg.StartLives
	return StateLevel, nil
}

func (s *GameSession) leaveLevel() (GameState, []Event) {
	return StateLives, s.startLevel()
}

func (s *GameSession) leaveLives() (GameState, []Event) {
	return StatePlaying, nil
}

func (s *GameSession) leaveScore() (GameState, []Event) {
	var events []Event
	if s.Score > s.cfg.TargetScore {
		s.LevelIndex = (s.LevelIndex + 1) % s.cfg.TotalLevels
		events = append(events, Event{Type: EventLevelCleared, Data: s.LevelIndex})
	} else {
		s.LivesLeft--
		events = append(events, Event{Type: EventLifeLost, Data: s.LivesLeft})
	}
	if s.LivesLeft <= 0 {
		return StateGameOver, append(events, Event{Type: EventGameOver, Data: s.Score})
	}
	return StateLevel, events
}

func (s *GameSession) leaveGameOver() (GameState, []Event) {
	return StateTitle, []Event{{Type: EventTitle}}
}

// startLevel replaces the level, snake and food wholesale.
func (s *GameSession) startLevel() []Event {
	s.Level = LoadLevel(s.source, s.LevelIndex, s.cfg, s.log)
	s.Snake = NewSnake(s.cfg.Center(), s.cfg.GridWidth, s.cfg.GridHeight)
	s.Score = 0

	events := []Event{{Type: EventLevelStarted, Cell: s.Snake.Head().Position, Data: s.LevelIndex}}
	food, err := NewFood(s.Snake, s.Level, s.cfg, s.rng)
	s.Food = food
	if err != nil {
		events = append(events, s.foodExhausted(err))
	}
	return events
}

func (s *GameSession) play() (GameState, []Event) {
	s.Snake.SetHeading(s.Input)
	next := s.Snake.Advance()

	switch {
	case s.Food.Active && next.Position == s.Food.Position:
		s.Score++
		s.Snake.PushHead(next)
		events := []Event{{Type: EventFoodEaten, Cell: next.Position, Data: s.Score}}
		if err := s.Food.Relocate(s.Snake, s.Level); err != nil {
			events = append(events, s.foodExhausted(err))
		}
		return StatePlaying, events

	case s.Snake.IsMoving() && s.collides(next.Position):
		s.Countdown = s.cfg.Countdown
		return StateScore, []Event{{Type: EventSnakeDied, Cell: next.Position, Data: s.Score}}

	default:
		s.Snake.PushHead(next)
		s.Snake.PopTail()
		return StatePlaying, nil
	}
}

func (s *GameSession) collides(c Cell) bool {
	return s.Level.IsWall(c) || s.Snake.Contains(c)
}

func (s *GameSession) foodExhausted(err error) Event {
	s.log.Printf("session %s: level %d: %v, score frozen at %d", s.ID, s.LevelIndex, err, s.Score)
	return Event{Type: EventFoodExhausted, Data: s.Score}
}
