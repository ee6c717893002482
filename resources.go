package inkan

import "reflect"

// Resources is a type-keyed store for values shared between systems and the
// driving application: configuration, screen bounds, random sources. At most
// one value per type.
type Resources struct {
	items map[reflect.Type]any
}

func newResources() *Resources {
	return &Resources{items: make(map[reflect.Type]any)}
}

// AddResource stores res under its type. Adding a second resource of the
// same type panics; remove the old one first.
func AddResource[T any](r *Resources, res *T) {
	if res == nil {
		panic("ecs: cannot add nil resource")
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	if _, ok := r.items[t]; ok {
		panic("ecs: resource of this type already exists")
	}
	r.items[t] = res
}

// GetResource returns the stored value of type T, or false if none is set.
func GetResource[T any](r *Resources) (*T, bool) {
	res, ok := r.items[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	return res.(*T), true
}

// RemoveResource deletes the value of type T, if any.
func RemoveResource[T any](r *Resources) {
	delete(r.items, reflect.TypeOf((*T)(nil)).Elem())
}

// Clear removes every stored resource.
func (r *Resources) Clear() {
	clear(r.items)
}
