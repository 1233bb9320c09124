// main.go
package main

import (
	"fmt"
	"os"

	"github.com/Feralthedogg/Cursus/pkg/advance"
	"github.com/Feralthedogg/Cursus/pkg/composite"
	"github.com/Feralthedogg/Cursus/pkg/effect"
	"github.com/Feralthedogg/Cursus/pkg/module"
	"github.com/Feralthedogg/Cursus/pkg/patternmatch"
	"github.com/Feralthedogg/Cursus/pkg/race"
	"github.com/Feralthedogg/Cursus/pkg/random"
	"github.com/Feralthedogg/Cursus/pkg/render"
	"github.com/Feralthedogg/Cursus/pkg/state"
)

type deps = module.Container[random.Source]

func main() {
	// Scripted draws so the demo is reproducible: cars 0 and 1 advance every
	// step, car 2 always stalls.
	source := random.NewSequence(0.9, 0.9, 0.1)
	container := module.NewContainer[random.Source](source, os.Stdout)

	advancer := advance.New(container.GetSource())
	renderer := render.New()
	initial := state.New(3, 1)

	// ---------------------------
	// Composite Race Example
	// ---------------------------
	// One Bind per simulation step: advance the snapshot, queue the rendered
	// track as a write effect.
	comp := composite.Return[state.Snapshot, deps](initial, container).
		// Contract: the grid never changes size.
		WithContract(func(s state.Snapshot) bool {
			return s.Len() == initial.Len()
		})
	for step := 0; step < 5; step++ {
		comp = comp.Bind(func(s state.Snapshot, d deps) composite.Composite[state.Snapshot, deps] {
			next := advancer.Advance(s)
			return composite.Return[state.Snapshot, deps](next, d).
				WithEffect(effect.NewWriteEffect(d.GetOutput(), renderer.Render(next)))
		})
	}

	final, _, effects, err := comp.Run(initial)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err := effect.PerformAll(effects); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Composite Race - Final Positions: %v\n", final.Positions())

	// ---------------------------
	// Pattern Match Example
	// ---------------------------
	// Destructure the final positions: does the head car sit at or past 6
	// while the rest is anything?
	pattern := patternmatch.Cons{
		Head: patternmatch.AtLeast{Min: 6},
		Tail: patternmatch.Wildcard{},
	}
	if ok, _, _ := pattern.Match(final.Positions(), patternmatch.NewEnv()); ok {
		fmt.Println("Pattern Match - car 0 reached the finish distance")
	}

	standings := race.ComputeStandings(final, 6)
	fmt.Printf("Standings - lead %d, leaders %v, finished %v\n",
		standings.Lead, standings.Leaders, standings.Finished)

	// ---------------------------
	// Parallel Composite Example
	// ---------------------------
	// Two scripted heats aggregated through the parallel composite.
	heats := make([]composite.Composite[state.Snapshot, deps], 2)
	for i := range heats {
		loop := race.NewLoop(
			advance.New(random.NewSequence(0.9, 0.1)),
			renderer,
		)
		results, err := loop.Run(initial, 5)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		heats[i] = composite.Return[state.Snapshot, deps](results[len(results)-1].State, container).
			WithEffect(effect.NewLogEffect(fmt.Sprintf("heat %d complete", i)))
	}

	finals, _, heatEffects, err := composite.Parallel(heats).Run(state.New(0, 0))
	if err != nil {
		fmt.Println("Parallel Composite Error:", err)
		return
	}
	if err := effect.PerformAll(heatEffects); err != nil {
		fmt.Println("Error:", err)
		return
	}
	for i, f := range finals {
		fmt.Printf("Parallel Composite - Heat %d Final Positions: %v\n", i, f.Positions())
	}
}
