// pkg/advance/advance.go

package advance

import (
	"github.com/Feralthedogg/Cursus/pkg/functional"
	"github.com/Feralthedogg/Cursus/pkg/future"
	"github.com/Feralthedogg/Cursus/pkg/random"
	"github.com/Feralthedogg/Cursus/pkg/state"
)

// DefaultStallThreshold is the probability mass below which a car stalls.
// A draw at or above the threshold advances the car by one.
const DefaultStallThreshold = 0.3

// Advancer moves every car of a snapshot forward independently. It is pure
// with respect to its randomness source: the same draws always produce the
// same next snapshot, and the input snapshot is never modified.
type Advancer struct {
	source    random.Source
	threshold float64
}

// New creates an Advancer drawing from source with the default stall
// threshold.
func New(source random.Source) Advancer {
	return NewWithThreshold(source, DefaultStallThreshold)
}

// NewWithThreshold creates an Advancer with an explicit stall threshold.
func NewWithThreshold(source random.Source, threshold float64) Advancer {
	return Advancer{source: source, threshold: threshold}
}

// Advance returns the next snapshot. For each car, in index order, one
// uniform value in [0,1) is drawn; the car moves by one when the draw is at
// or above the stall threshold, otherwise it carries over unchanged. An
// empty snapshot is a valid no-op producing an empty result.
func (a Advancer) Advance(current state.Snapshot) state.Snapshot {
	return current.Step(a.draw(current.Len()))
}

// AdvanceParallel is Advance with the per-car draws computed concurrently.
// Each car gets its own source split off the advancer's source in index
// order, so the run is deterministic for a given source even though the
// draws themselves happen inside the futures. All futures are joined before
// the snapshot is built, so callers always observe a fully advanced,
// consistent state.
func (a Advancer) AdvanceParallel(current state.Snapshot) state.Snapshot {
	sources := make([]random.Source, current.Len())
	for i := range sources {
		sources[i] = random.Split(a.source)
	}
	futures := functional.Map(sources, func(src random.Source) future.Future[int] {
		return future.NewFuture(func() (int, error) {
			if src.Float64() >= a.threshold {
				return 1, nil
			}
			return 0, nil
		})
	})
	joined, err := future.Join(futures)
	if err != nil {
		// The per-car computations cannot fail; Join keeps the signature
		// uniform with effectful futures.
		return current
	}
	return current.Step(joined)
}

// draw produces one advancement delta (0 or 1) per car.
func (a Advancer) draw(cars int) []int {
	delta := make([]int, cars)
	for i := range delta {
		if a.source.Float64() >= a.threshold {
			delta[i] = 1
		}
	}
	return delta
}
