package inkan

// Spawn creates an entity and assigns one component in a single call. If the
// assignment fails, the entity is destroyed again and the error returned, so
// a failed spawn leaves no half-built entity behind.
func Spawn[A any](w *World, a A) (Entity, error) {
	e, err := w.CreateEntity()
	if err != nil {
		return 0, err
	}
	if err := AssignComponent(w, e, a); err != nil {
		w.DestroyEntity(e)
		return 0, err
	}
	return e, nil
}

// Spawn2 creates an entity with two components, rolling back on any failure.
func Spawn2[A, B any](w *World, a A, b B) (Entity, error) {
	e, err := Spawn(w, a)
	if err != nil {
		return 0, err
	}
	if err := AssignComponent(w, e, b); err != nil {
		w.DestroyEntity(e)
		return 0, err
	}
	return e, nil
}

// Spawn3 creates an entity with three components, rolling back on any failure.
func Spawn3[A, B, C any](w *World, a A, b B, c C) (Entity, error) {
	e, err := Spawn2(w, a, b)
	if err != nil {
		return 0, err
	}
	if err := AssignComponent(w, e, c); err != nil {
		w.DestroyEntity(e)
		return 0, err
	}
	return e, nil
}
