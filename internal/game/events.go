package game

type EventType int

const (
	EventTitle EventType = iota
	EventLevelStarted
	EventFoodEaten
	EventSnakeDied
	EventLevelCleared
	EventLifeLost
	EventGameOver
	EventFoodExhausted
)

func (t EventType) String() string {
	switch t {
	case EventTitle:
		return "title"
	case EventLevelStarted:
		return "level-started"
	case EventFoodEaten:
		return "food-eaten"
	case EventSnakeDied:
		return "snake-died"
	case EventLevelCleared:
		return "level-cleared"
	case EventLifeLost:
		return "life-lost"
	case EventGameOver:
		return "game-over"
	case EventFoodExhausted:
		return "food-exhausted"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	Cell Cell
	Data int // score, level index or lives left, depending on Type
}

type EventHandler func(Event)

// EventBus fans events out synchronously, in subscription order.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventTitle; t <= EventFoodExhausted; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
