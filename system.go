package inkan

// System is a behavior unit processing every entity whose signature contains
// the system's required signature. Update receives the world, the frame's
// delta time, and the system's current interest list.
//
// The interest list is owned by the world and must be treated as read-only
// for the duration of the call. A system must not create or destroy entities,
// or add or remove components, while its own list is being iterated; doing so
// mutates the slice under the loop and the result is undefined. Mutating
// component values through cached pool handles is the intended use.
type System interface {
	Update(w *World, dt float64, entities []Entity)
}

// SystemFunc adapts an ordinary function to the System interface.
type SystemFunc func(w *World, dt float64, entities []Entity)

// Update calls f.
func (f SystemFunc) Update(w *World, dt float64, entities []Entity) {
	f(w, dt, entities)
}

// systemEntry pairs a registered system with its required signature and its
// interest list. The list keeps insertion order; slots is a fixed-capacity
// entity→position table giving O(1) membership checks and removals.
type systemEntry struct {
	sys      System
	required Signature
	entities []Entity
	slots    []int32 // entity → index in entities, -1 when absent
}

func (en *systemEntry) contains(e Entity) bool {
	return en.slots[e] >= 0
}

func (en *systemEntry) insert(e Entity) {
	en.slots[e] = int32(len(en.entities))
	en.entities = append(en.entities, e)
}

// delete removes e from the list by swapping the last element into its
// position. List order is membership only, so unordered removal is fine.
func (en *systemEntry) delete(e Entity) {
	pos := en.slots[e]
	last := int32(len(en.entities) - 1)
	if pos != last {
		moved := en.entities[last]
		en.entities[pos] = moved
		en.slots[moved] = pos
	}
	en.entities = en.entities[:last]
	en.slots[e] = -1
}

// systemRegistry holds all registered systems in registration order, which is
// also processing order, and keeps every interest list consistent with live
// entity signatures.
type systemRegistry struct {
	entries  []systemEntry
	capacity int
}

func newSystemRegistry(capacity int) *systemRegistry {
	return &systemRegistry{capacity: capacity}
}

func (r *systemRegistry) register(sys System, required Signature) *systemEntry {
	slots := make([]int32, r.capacity)
	for i := range slots {
		slots[i] = -1
	}
	r.entries = append(r.entries, systemEntry{
		sys:      sys,
		required: required,
		entities: make([]Entity, 0, r.capacity),
		slots:    slots,
	})
	return &r.entries[len(r.entries)-1]
}

// onSignatureChange recomputes the entity's membership in every interest
// list against its new signature.
func (r *systemRegistry) onSignatureChange(e Entity, sig Signature) {
	for i := range r.entries {
		en := &r.entries[i]
		matches := sig.Contains(en.required)
		switch {
		case matches && !en.contains(e):
			en.insert(e)
		case !matches && en.contains(e):
			en.delete(e)
		}
	}
}

// onEntityDestroy removes the entity from every interest list.
func (r *systemRegistry) onEntityDestroy(e Entity) {
	for i := range r.entries {
		if en := &r.entries[i]; en.contains(e) {
			en.delete(e)
		}
	}
}

// run invokes every system over its current interest list, in registration
// order.
func (r *systemRegistry) run(w *World, dt float64) {
	for i := range r.entries {
		en := &r.entries[i]
		en.sys.Update(w, dt, en.entities)
	}
}
