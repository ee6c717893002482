package inkan

import "reflect"

// MaxEventTypes defines the maximum number of distinct event types an
// EventBus can carry.
const MaxEventTypes = 256

// EventBus is a type-indexed publish/subscribe bus for decoupled
// communication between systems and the driving application. Handlers run
// synchronously, in subscription order, on the publisher's goroutine.
// The world publishes EntityCreated and EntityDestroyed on its bus.
type EventBus struct {
	types    map[reflect.Type]uint8
	handlers [MaxEventTypes][]any
	nextID   uint16
}

// Subscribe registers a handler for events of type E.
func Subscribe[E any](bus *EventBus, handler func(E)) {
	id := bus.typeID(reflect.TypeOf((*E)(nil)).Elem())
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish delivers the event to every handler subscribed to type E. With no
// subscribers it is a cheap map probe and nothing else.
func Publish[E any](bus *EventBus, event E) {
	id, ok := bus.types[reflect.TypeOf((*E)(nil)).Elem()]
	if !ok {
		return
	}
	for _, h := range bus.handlers[id] {
		h.(func(E))(event)
	}
}

func (bus *EventBus) typeID(t reflect.Type) uint8 {
	if bus.types == nil {
		bus.types = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.types[t]; ok {
		return id
	}
	if bus.nextID >= MaxEventTypes {
		panic("ecs: too many event types")
	}
	id := uint8(bus.nextID)
	bus.types[t] = id
	bus.nextID++
	return id
}
