// internal/event/event.go
package event

// EventType names a simulation event.
type EventType string

// Event is one occurrence pushed through the dispatcher. Data carries
// the per-type payload documented in types.go.
type Event struct {
	Type EventType
	Data any
}

// Listener receives the events it subscribed to.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher is a synchronous pub/sub hub. Dispatch runs every listener
// on the caller's goroutine before returning, in subscription order, so
// side effects of an event are visible to the next simulation step.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers a listener for one event type. Subscriptions live
// for the whole game; there is no way to unsubscribe.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch delivers an event to every subscriber of its type.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
