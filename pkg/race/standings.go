// pkg/race/standings.go

package race

import (
	"github.com/Feralthedogg/Cursus/pkg/functional"
	"github.com/Feralthedogg/Cursus/pkg/patternmatch"
	"github.com/Feralthedogg/Cursus/pkg/state"
)

// Standings classifies a final snapshot: who shares the lead and who has
// crossed the finish distance.
type Standings struct {
	Lead     int
	Leaders  []int
	Finished []int
}

type ranked struct {
	car      int
	position int
}

// ComputeStandings derives the standings from final. finishDistance of zero
// or below means no finish line, so Finished covers every car.
func ComputeStandings(final state.Snapshot, finishDistance int) Standings {
	cars := functional.MapIndexed(final.Positions(), func(i, pos int) ranked {
		return ranked{car: i, position: pos}
	})
	lead := functional.Max(final.Positions())
	finishPat := patternmatch.AtLeast{Min: finishDistance}

	leaders := functional.Filter(cars, func(r ranked) bool {
		return r.position == lead
	})
	finished := functional.Filter(cars, func(r ranked) bool {
		ok, _, _ := finishPat.Match(r.position, patternmatch.NewEnv())
		return ok
	})

	carOf := func(r ranked) int { return r.car }
	return Standings{
		Lead:     lead,
		Leaders:  functional.Map(leaders, carOf),
		Finished: functional.Map(finished, carOf),
	}
}
