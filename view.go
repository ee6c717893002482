package inkan

// View iterates every entity holding component T, walking the pool's dense
// array directly. It is the ad-hoc counterpart to system interest lists:
// no registration, no signature, just the pool.
//
//	view := inkan.NewView(positions)
//	for view.Next() {
//	    view.Get().X += 1
//	}
//
// The pool must not be mutated while a view over it is being iterated.
type View[T any] struct {
	pool *Pool[T]
	slot int
}

// NewView creates a view over the pool's current contents.
func NewView[T any](pool *Pool[T]) *View[T] {
	return &View[T]{pool: pool, slot: -1}
}

// Next advances to the next entity. It returns false when iteration is done.
func (v *View[T]) Next() bool {
	v.slot++
	return v.slot < v.pool.Len()
}

// Entity returns the current entity. Only valid after Next returned true.
func (v *View[T]) Entity() Entity {
	return v.pool.EntityAt(v.slot)
}

// Get returns the current entity's component.
func (v *View[T]) Get() *T {
	return v.pool.At(v.slot)
}

// Reset rewinds the view for another pass.
func (v *View[T]) Reset() {
	v.slot = -1
}

// View2 iterates every entity holding both A and B. It walks the smaller
// pool's dense array and probes the other pool's index, so the cost is
// proportional to the smaller component population.
type View2[A, B any] struct {
	pa     *Pool[A]
	pb     *Pool[B]
	slot   int
	ent    Entity
	a      *A
	b      *B
	aSmall bool
}

// NewView2 creates a view over the entities present in both pools.
func NewView2[A, B any](pa *Pool[A], pb *Pool[B]) *View2[A, B] {
	return &View2[A, B]{pa: pa, pb: pb, slot: -1, aSmall: pa.Len() <= pb.Len()}
}

// Next advances to the next entity holding both components.
func (v *View2[A, B]) Next() bool {
	if v.aSmall {
		for v.slot++; v.slot < v.pa.Len(); v.slot++ {
			e := v.pa.EntityAt(v.slot)
			if b, ok := v.pb.Get(e); ok {
				v.ent, v.a, v.b = e, v.pa.At(v.slot), b
				return true
			}
		}
		return false
	}
	for v.slot++; v.slot < v.pb.Len(); v.slot++ {
		e := v.pb.EntityAt(v.slot)
		if a, ok := v.pa.Get(e); ok {
			v.ent, v.a, v.b = e, a, v.pb.At(v.slot)
			return true
		}
	}
	return false
}

// Entity returns the current entity. Only valid after Next returned true.
func (v *View2[A, B]) Entity() Entity {
	return v.ent
}

// Get returns the current entity's components.
func (v *View2[A, B]) Get() (*A, *B) {
	return v.a, v.b
}

// Reset rewinds the view and re-picks the smaller pool to drive iteration.
func (v *View2[A, B]) Reset() {
	v.slot = -1
	v.aSmall = v.pa.Len() <= v.pb.Len()
}
