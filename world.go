package inkan

// World is the single entry point composing the entity allocator, the
// component registry and the system registry. It sequences the cross-cutting
// protocol for lifecycle events: every component assignment or removal
// updates the pool, then the entity's signature, then every system's
// interest list, in that order, so the lists are consistent with live
// signatures at every observable point between operations.
//
// A World is not safe for concurrent use. Every operation runs to completion
// on the calling goroutine.
type World struct {
	allocator *entityAllocator
	registry  *componentRegistry
	systems   *systemRegistry
	resources *Resources
	events    *EventBus
	capacity  int
}

// EntityCreated is published on the world's event bus after CreateEntity
// succeeds.
type EntityCreated struct {
	Entity Entity
}

// EntityDestroyed is published after DestroyEntity has stripped the entity
// from every pool and every interest list.
type EntityDestroyed struct {
	Entity Entity
}

// NewWorld creates a World with a fixed entity capacity. All index tables are
// allocated up front and sized to the capacity; the world never grows.
func NewWorld(capacity int) *World {
	return &World{
		allocator: newEntityAllocator(capacity),
		registry:  newComponentRegistry(),
		systems:   newSystemRegistry(capacity),
		resources: newResources(),
		events:    &EventBus{},
		capacity:  capacity,
	}
}

// Capacity returns the fixed size of the entity universe.
func (w *World) Capacity() int {
	return w.capacity
}

// EntityCount returns the number of currently alive entities.
func (w *World) EntityCount() int {
	return w.allocator.live()
}

// Alive reports whether the handle refers to a currently alive entity.
func (w *World) Alive(e Entity) bool {
	return w.allocator.isAlive(e)
}

// Signature returns the entity's current signature. Dead or out-of-range
// handles report the empty signature.
func (w *World) Signature(e Entity) Signature {
	if int(e) >= w.capacity {
		return Signature{}
	}
	return w.allocator.signature(e)
}

// CreateEntity allocates the next free handle. Handles freed by DestroyEntity
// are reissued in the order they were freed. Returns ErrCapacityExceeded when
// the universe is full.
func (w *World) CreateEntity() (Entity, error) {
	e, err := w.allocator.create()
	if err != nil {
		return 0, err
	}
	Publish(w.events, EntityCreated{Entity: e})
	return e, nil
}

// DestroyEntity frees the handle, strips the entity from every component
// pool and every system's interest list, and resets its signature. The
// allocator is updated first so the handle is reusable the moment the
// cleanup completes. Returns ErrEntityNotAlive for dead handles.
func (w *World) DestroyEntity(e Entity) error {
	if !w.allocator.isAlive(e) {
		return ErrEntityNotAlive
	}
	w.allocator.destroy(e)
	w.registry.removeAll(e)
	w.systems.onEntityDestroy(e)
	Publish(w.events, EntityDestroyed{Entity: e})
	return nil
}

// RegisterSystem appends a system with its required signature. Registration
// order is processing order. Entities already alive with a matching signature
// are added to the new interest list immediately, so the membership
// invariant holds regardless of whether systems or entities come first.
func (w *World) RegisterSystem(sys System, required Signature) {
	en := w.systems.register(sys, required)
	for i := 0; i < w.capacity; i++ {
		e := Entity(i)
		if w.allocator.isAlive(e) && w.allocator.signature(e).Contains(required) {
			en.insert(e)
		}
	}
}

// Update runs one processing pass: every registered system, in registration
// order, over its current interest list.
func (w *World) Update(dt float64) {
	w.systems.run(w, dt)
}

// Resources returns the world's type-keyed shared value store.
func (w *World) Resources() *Resources {
	return w.resources
}

// Events returns the world's event bus. The world publishes EntityCreated
// and EntityDestroyed on it; applications are free to publish their own
// event types.
func (w *World) Events() *EventBus {
	return w.events
}
