package game

import "log"

// LogEvents writes run transitions to l. Recycles happen every few frames
// and are left out.
func LogEvents(bus *EventBus, l *log.Logger) {
	bus.SubscribeAll(func(e Event) {
		switch e.Type {
		case EventRecycled:
			return
		case EventCollision:
			l.Printf("%s with obstacle %d at z=%.1f", e.Type, e.Index, e.Z)
		default:
			l.Printf("%s at z=%.1f", e.Type, e.Z)
		}
	})
}
