// Profiling:
// go build ./profile/types
// go tool pprof -http=":8000" -nodefraction=0.001 ./types cpu.pprof

package main

import (
	"fmt"

	"github.com/TheBitDrifter/manifest"
	"github.com/pkg/profile"
)

func main() {
	rounds := 20
	types := 500
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, types)
	p.Stop()
}

func run(rounds, types int) {
	for range rounds {
		w := manifest.Factory.NewWorld()
		w.NewComponent(0, "Position", 16, 8)
		w.NewComponent(0, "Velocity", 16, 8)
		w.NewComponent(0, "Health", 8, 4)

		w.NewType(0, "Movable", "Position, Velocity")
		for i := range types {
			expr := "AND | Movable, Health"
			if i%2 == 0 {
				expr = "Health, AND | Movable"
			}
			w.NewType(0, fmt.Sprintf("Actor%d", i), expr)
		}
	}
}
