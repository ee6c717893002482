package inkan_test

import (
	"testing"

	"github.com/soramimi-dev/inkan"
)

type bounds struct{ W, H int }

// go test -run ^TestResources$ . -count 1
func TestResources(t *testing.T) {
	w := inkan.NewWorld(4)
	r := w.Resources()

	t.Run("AddAndGet", func(t *testing.T) {
		inkan.AddResource(r, &bounds{W: 80, H: 24})
		b, ok := inkan.GetResource[bounds](r)
		if !ok {
			t.Fatal("GetResource failed to find the stored value")
		}
		if b.W != 80 || b.H != 24 {
			t.Errorf("Wrong resource value: %+v", b)
		}
		b.W = 120
		again, _ := inkan.GetResource[bounds](r)
		if again.W != 120 {
			t.Error("GetResource should return the same instance")
		}
	})

	t.Run("DuplicateAddPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Adding a second resource of the same type should panic")
			}
		}()
		inkan.AddResource(r, &bounds{})
	})

	t.Run("Remove", func(t *testing.T) {
		inkan.RemoveResource[bounds](r)
		if _, ok := inkan.GetResource[bounds](r); ok {
			t.Error("Resource should be gone after RemoveResource")
		}
		// Removed type can be added again.
		inkan.AddResource(r, &bounds{W: 1})
	})

	t.Run("Clear", func(t *testing.T) {
		r.Clear()
		if _, ok := inkan.GetResource[bounds](r); ok {
			t.Error("Clear should drop every resource")
		}
	})
}
