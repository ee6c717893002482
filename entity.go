package inkan

// entityAllocator issues and recycles entity handles from a fixed universe
// [0, capacity) and owns each entity's current signature. Freed handles are
// redistributed in the order they were freed (FIFO), so a destroyed handle is
// not reissued ahead of handles destroyed before it. The free list is a ring
// buffer over a fixed slice; create and destroy are index arithmetic only.
type entityAllocator struct {
	free       []Entity // ring buffer, len == capacity
	head       int      // index of the next handle to issue
	count      int      // number of free handles in the ring
	signatures []Signature
	alive      []bool
}

func newEntityAllocator(capacity int) *entityAllocator {
	a := &entityAllocator{
		free:       make([]Entity, capacity),
		count:      capacity,
		signatures: make([]Signature, capacity),
		alive:      make([]bool, capacity),
	}
	for i := range a.free {
		a.free[i] = Entity(i)
	}
	return a
}

// create issues the handle at the head of the ring.
func (a *entityAllocator) create() (Entity, error) {
	if a.count == 0 {
		return 0, ErrCapacityExceeded
	}
	e := a.free[a.head]
	a.head = (a.head + 1) % len(a.free)
	a.count--
	a.alive[e] = true
	a.signatures[e] = Signature{}
	return e, nil
}

// destroy resets the entity's signature and appends the handle at the tail of
// the ring. The caller guarantees e is alive; the facade guards this.
func (a *entityAllocator) destroy(e Entity) {
	tail := (a.head + a.count) % len(a.free)
	a.free[tail] = e
	a.count++
	a.alive[e] = false
	a.signatures[e] = Signature{}
}

// isAlive reports whether e is in bounds and currently allocated.
func (a *entityAllocator) isAlive(e Entity) bool {
	return int(e) < len(a.alive) && a.alive[e]
}

// signature returns the entity's current signature. No validation beyond
// bounds; dead entities report the empty signature.
func (a *entityAllocator) signature(e Entity) Signature {
	return a.signatures[e]
}

func (a *entityAllocator) setSignature(e Entity, s Signature) {
	a.signatures[e] = s
}

// live returns the number of currently allocated handles.
func (a *entityAllocator) live() int {
	return len(a.free) - a.count
}
