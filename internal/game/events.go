package game

type EventType int

const (
	EventRunStarted EventType = iota
	EventCollision
	EventFinished
	EventReset
	EventRecycled
	EventQuit
)

func (t EventType) String() string {
	switch t {
	case EventRunStarted:
		return "run-started"
	case EventCollision:
		return "collision"
	case EventFinished:
		return "finished"
	case EventReset:
		return "reset"
	case EventRecycled:
		return "recycled"
	case EventQuit:
		return "quit"
	}
	return "unknown"
}

type Event struct {
	Type  EventType
	Index int // obstacle index for EventCollision/EventRecycled, -1 otherwise
	Z     float32
}

type EventHandler func(Event)

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
	for t := EventRunStarted; t <= EventQuit; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
