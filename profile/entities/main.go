// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/pkg/profile"
	"github.com/soramimi-dev/inkan"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

// run churns the full entity universe: create with two components, touch the
// data through a view, destroy everything, repeat.
func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := inkan.NewWorld(numEntities)
		c1s, _ := inkan.RegisterComponent[comp1](w)
		c2s, _ := inkan.RegisterComponent[comp2](w)
		ents := make([]inkan.Entity, numEntities)
		view := inkan.NewView2(c1s, c2s)

		for it := 0; it < iters; it++ {
			for i := range ents {
				ents[i], _ = inkan.Spawn2(w, comp1{V: 1}, comp2{V: 2})
			}
			view.Reset()
			for view.Next() {
				a, b := view.Get()
				a.V += b.V
				a.W += b.W
			}
			for _, e := range ents {
				w.DestroyEntity(e)
			}
		}
	}
}
