package game

import (
	"testing"
	"testing/fstest"
)

func newTestSession(t *testing.T, cfg Config, src LevelSource) (*GameSession, *[]Event) {
	t.Helper()
	cfg.Seed = 42
	var events []Event
	bus := NewEventBus()
	bus.SubscribeAll(func(e Event) { events = append(events, e) })
	return NewGameSession(cfg, src, WithEventBus(bus)), &events
}

// runUntil updates with no input until the session reaches want.
func runUntil(t *testing.T, s *GameSession, want GameState) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if s.State == want {
			return
		}
		s.Update(Buttons{})
	}
	t.Fatalf("never reached %v, stuck in %v", want, s.State)
}

func hasEvent(events []Event, typ EventType) bool {
	for _, e := range events {
		if e.Type == typ {
			return true
		}
	}
	return false
}

func TestTitleCountdownToLevel(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig(), nil)
	for i := 0; i < 20; i++ {
		s.Update(Buttons{})
		if s.State != StateTitle {
			t.Fatalf("left title after %d updates", i+1)
		}
	}
	s.Update(Buttons{})
	if s.State != StateLevel {
		t.Fatalf("state after 21 updates = %v, want level", s.State)
	}
	if s.LivesLeft != 3 {
		t.Fatalf("LivesLeft = %d, want 3", s.LivesLeft)
	}
	if s.Countdown != DefaultCountdown {
		t.Errorf("Countdown = %d, want it rearmed to %d", s.Countdown, DefaultCountdown)
	}
}

func TestLevelCardBuildsBoard(t *testing.T) {
	s, events := newTestSession(t, DefaultConfig(), nil)
	s.Score = 9
	runUntil(t, s, StateLives)

	if s.Level == nil || s.Snake == nil || s.Food == nil {
		t.Fatal("level, snake or food missing after the level card")
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, want 0", s.Score)
	}
	if s.Snake.Len() != 1 || s.Snake.Head().Position != s.cfg.Center() || s.Snake.IsMoving() {
		t.Errorf("snake not a fresh immobile segment at the centre: %+v", s.Snake.Head())
	}
	if !hasEvent(*events, EventLevelStarted) {
		t.Error("no level-started event")
	}

	runUntil(t, s, StatePlaying)
}

func TestEatingFoodScoresAndStaysPlaying(t *testing.T) {
	s, events := newTestSession(t, DefaultConfig(), nil)
	runUntil(t, s, StatePlaying)

	head := s.Snake.Head().Position
	s.Food.Position = Cell{X: head.X + 1, Y: head.Y}
	s.Food.Active = true

	s.Update(Buttons{Right: true})
	if s.State != StatePlaying {
		t.Fatalf("state = %v, want playing", s.State)
	}
	if s.Score != 1 {
		t.Fatalf("Score = %d, want 1", s.Score)
	}
	if s.Snake.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Snake.Len())
	}
	if s.Snake.Contains(s.Food.Position) {
		t.Fatalf("food relocated onto the snake at %v", s.Food.Position)
	}
	if !hasEvent(*events, EventFoodEaten) {
		t.Error("no food-eaten event")
	}
}

func TestImmobileSnakeIgnoresWalls(t *testing.T) {
	cfg := smallConfig(5, 5)
	// Wall right under the spawn cell.
	fsys := fstest.MapFS{"level-0.txt": {Data: []byte(".....\n.....\n..0..\n")}}
	s, _ := newTestSession(t, cfg, FSLevelSource{FS: fsys})
	runUntil(t, s, StatePlaying)

	if !s.Level.IsWall(s.Snake.Head().Position) {
		t.Fatal("test setup: spawn cell is not a wall")
	}
	for i := 0; i < 10; i++ {
		s.Update(Buttons{})
	}
	if s.State != StatePlaying {
		t.Fatalf("immobile snake died: state %v", s.State)
	}
}

func TestWallCollisionGoesToScore(t *testing.T) {
	cfg := smallConfig(5, 5)
	fsys := fstest.MapFS{"level-0.txt": {Data: []byte(".....\n.....\n...0.\n")}}
	s, events := newTestSession(t, cfg, FSLevelSource{FS: fsys})
	runUntil(t, s, StatePlaying)

	s.Countdown = 3
	s.Update(Buttons{Right: true})
	if s.State != StateScore {
		t.Fatalf("state = %v, want score", s.State)
	}
	if s.Countdown != cfg.Countdown {
		t.Errorf("Countdown = %d, want %d", s.Countdown, cfg.Countdown)
	}
	if s.Snake.Len() != 1 || s.Snake.Head().Position != (Cell{2, 2}) {
		t.Errorf("snake moved into the wall: %v", s.Snake.Head().Position)
	}
	if !hasEvent(*events, EventSnakeDied) {
		t.Error("no snake-died event")
	}
}

func TestSelfCollisionGoesToScore(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig(), nil)
	runUntil(t, s, StatePlaying)

	// Grow to five segments heading right.
	for i := 0; i < 4; i++ {
		head := s.Snake.Head().Position
		s.Food.Position = Cell{X: head.X + 1, Y: head.Y}
		s.Update(Buttons{Right: true})
	}
	if s.Snake.Len() != 5 {
		t.Fatalf("Len = %d, want 5", s.Snake.Len())
	}

	// Down, Left, Up curls the head back onto the body.
	for _, in := range []Buttons{{Down: true}, {Left: true}} {
		s.Food.Position = Cell{0, 0}
		s.Update(in)
		if s.State != StatePlaying {
			t.Fatalf("died early at %v", s.Snake.Head().Position)
		}
	}
	s.Food.Position = Cell{0, 0}
	s.Update(Buttons{Up: true})
	if s.State != StateScore {
		t.Fatalf("state = %v, want score after running into the body", s.State)
	}
	if s.Score != 4 {
		t.Errorf("Score = %d, want 4", s.Score)
	}
}

func TestScoreAboveTargetAdvancesLevel(t *testing.T) {
	s, events := newTestSession(t, DefaultConfig(), nil)
	s.State = StateScore
	s.Score = 6
	s.LivesLeft = 2
	s.LevelIndex = 3

	for i := 0; i < 20; i++ {
		s.Update(Buttons{})
	}
	if s.State != StateScore {
		t.Fatalf("left score card early: %v", s.State)
	}
	s.Update(Buttons{})
	if s.State != StateLevel {
		t.Fatalf("state = %v, want level", s.State)
	}
	if s.LevelIndex != 0 {
		t.Errorf("LevelIndex = %d, want 0 after wrapping", s.LevelIndex)
	}
	if s.LivesLeft != 2 {
		t.Errorf("LivesLeft = %d, want 2", s.LivesLeft)
	}
	if !hasEvent(*events, EventLevelCleared) {
		t.Error("no level-cleared event")
	}
}

func TestScoreAtTargetCostsALife(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig(), nil)
	s.State = StateScore
	s.Score = 5
	s.LivesLeft = 3
	s.LevelIndex = 1

	runUntil(t, s, StateLevel)
	if s.LivesLeft != 2 || s.LevelIndex != 1 {
		t.Fatalf("lives %d level %d, want 2 and 1", s.LivesLeft, s.LevelIndex)
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	s, events := newTestSession(t, DefaultConfig(), nil)
	s.State = StateScore
	s.Score = 3
	s.LivesLeft = 1

	for i := 0; i < 21; i++ {
		s.Update(Buttons{})
	}
	if s.State != StateGameOver {
		t.Fatalf("state = %v, want game-over", s.State)
	}
	if s.LivesLeft != 0 {
		t.Errorf("LivesLeft = %d, want 0", s.LivesLeft)
	}
	if !hasEvent(*events, EventGameOver) {
		t.Error("no game-over event")
	}

	for i := 0; i < 21; i++ {
		s.Update(Buttons{})
	}
	if s.State != StateTitle {
		t.Fatalf("state = %v, want title", s.State)
	}
	if !hasEvent(*events, EventTitle) {
		t.Error("no title event")
	}
}

func TestPlusSkipsCard(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig(), nil)
	s.Update(Buttons{Plus: true})
	if s.State != StateLevel || s.LivesLeft != 3 {
		t.Fatalf("state %v lives %d, want level and 3", s.State, s.LivesLeft)
	}

	// Holding Plus does not skip again.
	s.Update(Buttons{Plus: true})
	if s.State != StateLevel {
		t.Fatalf("held Plus skipped the level card: %v", s.State)
	}

	s.Update(Buttons{})
	s.Update(Buttons{Plus: true})
	if s.State != StateLives {
		t.Fatalf("fresh Plus did not skip: %v", s.State)
	}
}

func TestFoodExhaustionFreezesScore(t *testing.T) {
	cfg := smallConfig(1, 1)
	log := &recordLogger{}
	cfg.Seed = 1
	var events []Event
	bus := NewEventBus()
	bus.Subscribe(EventFoodExhausted, func(e Event) { events = append(events, e) })
	s := NewGameSession(cfg, nil, WithEventBus(bus), WithLogger(log))
	runUntil(t, s, StatePlaying)

	if s.Food.Active {
		t.Fatal("food active on a full board")
	}
	if len(events) != 1 {
		t.Fatalf("food-exhausted events = %d, want 1", len(events))
	}
	if len(log.lines) == 0 {
		t.Error("exhaustion not logged")
	}
	for i := 0; i < 5; i++ {
		s.Update(Buttons{})
	}
	if s.Score != 0 || s.State != StatePlaying {
		t.Fatalf("score %d state %v, want 0 and playing", s.Score, s.State)
	}
	if f := s.Frame(); f.HasFood {
		t.Error("frame shows food on a full board")
	}
}

func TestFrameSkipFollowsScore(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig(), nil)
	if s.FrameSkip() != 12 {
		t.Fatalf("FrameSkip = %d, want 12", s.FrameSkip())
	}
	s.Score = 50
	if s.FrameSkip() != 2 {
		t.Fatalf("FrameSkip = %d, want 2", s.FrameSkip())
	}
}

func TestSessionIDsDiffer(t *testing.T) {
	a := NewGameSession(DefaultConfig(), nil)
	b := NewGameSession(DefaultConfig(), nil)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("session IDs %q and %q", a.ID, b.ID)
	}
}
