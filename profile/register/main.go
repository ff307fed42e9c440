// Profiling:
// go build ./profile/register
// go tool pprof -http=":8000" -nodefraction=0.001 ./register mem.pprof

package main

import (
	"fmt"

	"github.com/TheBitDrifter/manifest"
	"github.com/pkg/profile"
)

func main() {
	rounds := 50
	components := 48
	entities := 2000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, components, entities)
	p.Stop()
}

func run(rounds, components, entities int) {
	for range rounds {
		w := manifest.Factory.NewWorld()
		for i := range components {
			w.NewComponent(0, fmt.Sprintf("Comp%d", i), 16, 8)
		}
		for i := range entities {
			expr := fmt.Sprintf("Comp%d, Comp%d", i%components, (i*7)%components)
			w.NewEntity(0, fmt.Sprintf("Entity%d", i), expr)
		}
	}
}
