package inkan

import "reflect"

// RegisterComponent registers T with the world and returns its typed pool
// handle. Callers cache the handle; its read methods are the intended hot
// path for systems. Registering an already-registered type returns the
// existing pool. Returns ErrTooManyComponentTypes once all signature bits
// are taken.
func RegisterComponent[T any](w *World) (*Pool[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := w.registry.lookup(t); ok {
		return w.registry.typed[id].(*Pool[T]), nil
	}
	var pool *Pool[T]
	_, err := w.registry.register(t, func(id ComponentID) (store, any) {
		pool = newPool[T](id, w.capacity)
		return pool, pool
	})
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// PoolOf returns the registered pool for T, or false if T was never
// registered with the world.
func PoolOf[T any](w *World) (*Pool[T], bool) {
	id, ok := w.registry.lookup(reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		return nil, false
	}
	return w.registry.typed[id].(*Pool[T]), true
}

// AssignComponent gives the entity a component of type T, sets T's bit in
// the entity's signature, and updates every system's interest list. An
// entity that already holds T is rejected with ErrDuplicateComponent; use
// SetComponent to overwrite.
func AssignComponent[T any](w *World, e Entity, value T) error {
	pool, err := poolForWrite[T](w, e)
	if err != nil {
		return err
	}
	if err := pool.add(e, value); err != nil {
		return err
	}
	sig := w.allocator.signature(e)
	sig.set(pool.compID)
	w.allocator.setSignature(e, sig)
	w.systems.onSignatureChange(e, sig)
	return nil
}

// SetComponent overwrites the entity's T in place when present, without
// touching the signature or interest lists; otherwise it behaves exactly
// like AssignComponent.
func SetComponent[T any](w *World, e Entity, value T) error {
	pool, err := poolForWrite[T](w, e)
	if err != nil {
		return err
	}
	if slot := pool.sparse[e]; slot >= 0 {
		pool.dense[slot] = value
		return nil
	}
	if err := pool.add(e, value); err != nil {
		return err
	}
	sig := w.allocator.signature(e)
	sig.set(pool.compID)
	w.allocator.setSignature(e, sig)
	w.systems.onSignatureChange(e, sig)
	return nil
}

// RemoveComponent takes T away from the entity, clears T's bit in its
// signature, and updates every interest list. Returns ErrComponentNotFound
// if the entity does not hold T.
func RemoveComponent[T any](w *World, e Entity) error {
	pool, err := poolForWrite[T](w, e)
	if err != nil {
		return err
	}
	if err := pool.remove(e); err != nil {
		return err
	}
	sig := w.allocator.signature(e)
	sig.unset(pool.compID)
	w.allocator.setSignature(e, sig)
	w.systems.onSignatureChange(e, sig)
	return nil
}

// GetComponent returns a pointer to the entity's T, or false when the entity
// does not hold it, the type was never registered, or the handle is out of
// range. The lookup never mutates the pool. The pointer must not be retained
// across a remove or destroy: a later swap-remove may reuse the slot.
func GetComponent[T any](w *World, e Entity) (*T, bool) {
	pool, ok := PoolOf[T](w)
	if !ok {
		return nil, false
	}
	return pool.Get(e)
}

// poolForWrite resolves the pool for T and validates the entity for a
// mutating operation. Both checks precede any state change.
func poolForWrite[T any](w *World, e Entity) (*Pool[T], error) {
	pool, ok := PoolOf[T](w)
	if !ok {
		return nil, ErrUnknownComponentType
	}
	if !w.allocator.isAlive(e) {
		return nil, ErrEntityNotAlive
	}
	return pool, nil
}
