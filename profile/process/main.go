// Profiling:
// go build ./profile/process
// go tool pprof -http=":8000" -nodefraction=0.001 ./process cpu.pprof

package main

import (
	"github.com/pkg/profile"
	"github.com/soramimi-dev/inkan"
)

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

func main() {
	entities := 10000
	ticks := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(entities, ticks)
	p.Stop()
}

// run measures the steady-state processing pass: one system over a populated
// universe, no structural churn.
func run(numEntities, ticks int) {
	w := inkan.NewWorld(numEntities)
	positions, _ := inkan.RegisterComponent[position](w)
	velocities, _ := inkan.RegisterComponent[velocity](w)

	w.RegisterSystem(inkan.SystemFunc(func(w *inkan.World, dt float64, entities []inkan.Entity) {
		for _, e := range entities {
			p, _ := positions.Get(e)
			v, _ := velocities.Get(e)
			p.X += v.DX * dt
			p.Y += v.DY * dt
		}
	}), inkan.MakeSignature(positions.ID(), velocities.ID()))

	for i := 0; i < numEntities; i++ {
		inkan.Spawn2(w, position{}, velocity{DX: 1, DY: 0.5})
	}

	for t := 0; t < ticks; t++ {
		w.Update(1.0 / 60.0)
	}
}
