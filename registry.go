package inkan

import "reflect"

// componentRegistry assigns each registered component type a dense small
// integer ID and routes type-erased operations to the matching pool. It is an
// explicit per-world object, created once by NewWorld, so bit positions are
// deterministic in registration order and never leak between worlds.
type componentRegistry struct {
	types  map[reflect.Type]ComponentID
	pools  []store // indexed by ComponentID
	typed  []any   // the concrete *Pool[T] for each ID, for facade dispatch
	nextID uint16  // uint16 so the 256th registration is detectable
}

func newComponentRegistry() *componentRegistry {
	return &componentRegistry{
		types: make(map[reflect.Type]ComponentID, 16),
		pools: make([]store, 0, 16),
		typed: make([]any, 0, 16),
	}
}

// lookup returns the ID for a registered type.
func (r *componentRegistry) lookup(t reflect.Type) (ComponentID, bool) {
	id, ok := r.types[t]
	return id, ok
}

// register records a new type and its pool, assigning the next free ID.
// The caller has already checked the type is not present.
func (r *componentRegistry) register(t reflect.Type, mk func(ComponentID) (store, any)) (ComponentID, error) {
	if r.nextID >= MaxComponentTypes {
		return 0, ErrTooManyComponentTypes
	}
	id := ComponentID(r.nextID)
	erased, concrete := mk(id)
	r.types[t] = id
	r.pools = append(r.pools, erased)
	r.typed = append(r.typed, concrete)
	r.nextID++
	return id, nil
}

// removeAll strips the entity from every registered pool. Pools that never
// held the entity are a no-op; this runs on entity destruction regardless of
// which components the entity actually had.
func (r *componentRegistry) removeAll(e Entity) {
	for _, p := range r.pools {
		p.removeIfPresent(e)
	}
}
