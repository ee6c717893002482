package inkan

// store is the narrow, type-erased view of a component pool held by the
// component registry. It is exactly what entity destruction needs and nothing
// more; all typed access goes through the Pool[T] handle instead.
type store interface {
	id() ComponentID
	removeIfPresent(e Entity) bool
}

// Pool holds every component of type T as a dense, hole-free slice, together
// with a two-way entity↔slot index sized to the world's entity capacity.
// Lookups, inserts and removals are O(1); removal keeps the slice dense by
// moving the last element into the vacated slot (swap-remove).
//
// A Pool is obtained once from RegisterComponent and cached by the caller.
// Its read methods are the hot path for systems: index arithmetic only, no
// map probes, no type assertions.
type Pool[T any] struct {
	compID   ComponentID
	dense    []T       // component values, len == Len()
	entities []Entity  // slot → entity, parallel to dense
	sparse   []int32   // entity → slot, -1 when absent
}

func newPool[T any](compID ComponentID, capacity int) *Pool[T] {
	p := &Pool[T]{
		compID:   compID,
		dense:    make([]T, 0, capacity),
		entities: make([]Entity, 0, capacity),
		sparse:   make([]int32, capacity),
	}
	for i := range p.sparse {
		p.sparse[i] = -1
	}
	return p
}

// ID returns the component type's registered ID, usable as a signature bit.
func (p *Pool[T]) ID() ComponentID {
	return p.compID
}

// Len returns the number of entities currently holding the component.
func (p *Pool[T]) Len() int {
	return len(p.dense)
}

// Has reports whether the entity holds the component.
func (p *Pool[T]) Has(e Entity) bool {
	return int(e) < len(p.sparse) && p.sparse[e] >= 0
}

// Get returns a pointer to the entity's component, or nil and false if the
// entity does not hold it. The pointer is valid until the next remove or
// destroy touching this pool; a swap-remove may reuse the slot.
func (p *Pool[T]) Get(e Entity) (*T, bool) {
	if int(e) >= len(p.sparse) {
		return nil, false
	}
	slot := p.sparse[e]
	if slot < 0 {
		return nil, false
	}
	return &p.dense[slot], true
}

// At returns a pointer to the component in the given dense slot. Valid slots
// are [0, Len()); used by views iterating the dense sequence directly.
func (p *Pool[T]) At(slot int) *T {
	return &p.dense[slot]
}

// EntityAt returns the entity occupying the given dense slot.
func (p *Pool[T]) EntityAt(slot int) Entity {
	return p.entities[slot]
}

// add appends the value to the dense sequence and records the two-way index.
func (p *Pool[T]) add(e Entity, value T) error {
	if p.sparse[e] >= 0 {
		return ErrDuplicateComponent
	}
	p.sparse[e] = int32(len(p.dense))
	p.dense = append(p.dense, value)
	p.entities = append(p.entities, e)
	return nil
}

// remove deletes the entity's component, moving the last dense element into
// the vacated slot so the sequence stays hole-free.
func (p *Pool[T]) remove(e Entity) error {
	slot := p.sparse[e]
	if slot < 0 {
		return ErrComponentNotFound
	}
	last := int32(len(p.dense) - 1)
	if slot != last {
		moved := p.entities[last]
		p.dense[slot] = p.dense[last]
		p.entities[slot] = moved
		p.sparse[moved] = slot
	}
	var zero T
	p.dense[last] = zero // drop any references held by the old value
	p.dense = p.dense[:last]
	p.entities = p.entities[:last]
	p.sparse[e] = -1
	return nil
}

func (p *Pool[T]) id() ComponentID {
	return p.compID
}

func (p *Pool[T]) removeIfPresent(e Entity) bool {
	if int(e) >= len(p.sparse) || p.sparse[e] < 0 {
		return false
	}
	return p.remove(e) == nil
}
