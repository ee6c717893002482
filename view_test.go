package inkan_test

import (
	"testing"

	"github.com/soramimi-dev/inkan"
)

// go test -run ^TestView$ . -count 1
func TestView(t *testing.T) {
	w, positions, _ := setupWorld(t, 16)
	for i := 0; i < 5; i++ {
		e, _ := w.CreateEntity()
		inkan.AssignComponent(w, e, Position{X: float32(i)})
	}

	view := inkan.NewView(positions)
	var sum float32
	count := 0
	for view.Next() {
		sum += view.Get().X
		count++
	}
	if count != 5 {
		t.Errorf("Expected 5 entities, visited %d", count)
	}
	if sum != 0+1+2+3+4 {
		t.Errorf("Expected sum 10, got %v", sum)
	}

	view.Reset()
	count = 0
	for view.Next() {
		count++
	}
	if count != 5 {
		t.Errorf("Reset view should iterate again, visited %d", count)
	}
}

// go test -run ^TestView2$ . -count 1
func TestView2(t *testing.T) {
	w, positions, velocities := setupWorld(t, 16)

	both, _ := inkan.Spawn2(w, Position{X: 1}, Velocity{DX: 10})
	posOnly, _ := inkan.Spawn(w, Position{X: 2})
	velOnly, _ := inkan.Spawn(w, Velocity{DX: 20})

	check := func(t *testing.T, view *inkan.View2[Position, Velocity]) {
		t.Helper()
		found := 0
		for view.Next() {
			e := view.Entity()
			if e != both {
				t.Errorf("Unexpected entity %d in view (pos-only=%d, vel-only=%d)", e, posOnly, velOnly)
			}
			p, v := view.Get()
			if p.X != 1 || v.DX != 10 {
				t.Errorf("Wrong components for entity %d: %+v %+v", e, p, v)
			}
			found++
		}
		if found != 1 {
			t.Errorf("Expected exactly 1 match, found %d", found)
		}
	}

	check(t, inkan.NewView2(positions, velocities))

	// Grow Velocity's population past Position's so the view drives from the
	// other pool, then re-check.
	for i := 0; i < 4; i++ {
		inkan.Spawn(w, Velocity{DX: 1})
	}
	check(t, inkan.NewView2(positions, velocities))
}
