// pkg/race/race.go

package race

import (
	"errors"
	"io"
	"iter"

	"github.com/Feralthedogg/Cursus/pkg/advance"
	"github.com/Feralthedogg/Cursus/pkg/contract"
	"github.com/Feralthedogg/Cursus/pkg/effect"
	"github.com/Feralthedogg/Cursus/pkg/future"
	"github.com/Feralthedogg/Cursus/pkg/render"
	"github.com/Feralthedogg/Cursus/pkg/state"
)

// ErrNegativeSteps indicates a run was requested with a negative step count.
var ErrNegativeSteps = errors.New("steps must be non-negative")

// ErrNegativeHeats indicates a negative number of heats was requested.
var ErrNegativeHeats = errors.New("heats must be non-negative")

// Phase is the loop's lifecycle state. The only transition is Running to
// Done, taken when the step budget hits zero.
type Phase int

const (
	Running Phase = iota
	Done
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "Running"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// StepResult pairs one step's snapshot with its rendered depiction.
type StepResult struct {
	Step  int // 1-based
	State state.Snapshot
	Lines []string
	Phase Phase
}

// Loop orchestrates a race: advance the snapshot, render it, repeat until
// the step budget is exhausted. The loop owns the current snapshot and
// threads it explicitly; no step mutates a snapshot in place.
type Loop struct {
	advancer advance.Advancer
	renderer render.Renderer
}

// NewLoop creates a Loop from an advancer and a renderer.
func NewLoop(a advance.Advancer, r render.Renderer) Loop {
	return Loop{advancer: a, renderer: r}
}

// Run executes exactly steps iterations from initial and returns one
// StepResult per iteration, eagerly. steps of zero yields an empty, non-nil
// result. Negative steps fail with ErrNegativeSteps.
func (l Loop) Run(initial state.Snapshot, steps int) ([]StepResult, error) {
	if steps < 0 {
		return nil, ErrNegativeSteps
	}
	results := make([]StepResult, 0, steps)
	current := initial
	budget := state.NewBudget(steps)
	for !budget.Done() {
		budget = budget.Spend()
		next := l.advancer.Advance(current)
		assertStep(current, next)
		phase := Running
		if budget.Done() {
			phase = Done
		}
		results = append(results, StepResult{
			Step:  len(results) + 1,
			State: next,
			Lines: l.renderer.Render(next),
			Phase: phase,
		})
		current = next
	}
	return results, nil
}

// RunSeq is Run exposed as a lazy sequence: each step is advanced and
// rendered only when the consumer asks for it. Stopping iteration early
// abandons the remaining budget.
func (l Loop) RunSeq(initial state.Snapshot, steps int) (iter.Seq[StepResult], error) {
	if steps < 0 {
		return nil, ErrNegativeSteps
	}
	return func(yield func(StepResult) bool) {
		current := initial
		budget := state.NewBudget(steps)
		step := 0
		for !budget.Done() {
			budget = budget.Spend()
			step++
			next := l.advancer.Advance(current)
			assertStep(current, next)
			phase := Running
			if budget.Done() {
				phase = Done
			}
			if !yield(StepResult{Step: step, State: next, Lines: l.renderer.Render(next), Phase: phase}) {
				return
			}
			current = next
		}
	}, nil
}

// assertStep guards the loop's invariants: the grid never changes size and
// every car moves by exactly zero or one per step.
func assertStep(current, next state.Snapshot) {
	contract.Assertf(next.Len() == current.Len(),
		"snapshot length changed from %d to %d", current.Len(), next.Len())
	for i := 0; i < current.Len(); i++ {
		d := next.At(i) - current.At(i)
		contract.Assertf(d == 0 || d == 1,
			"car %d moved by %d in one step", i, d)
	}
}

// Effects converts step results into write effects against w, one per step,
// in step order. Performing them reproduces the race's console output.
func Effects(results []StepResult, w io.Writer) []effect.Effect {
	effects := make([]effect.Effect, len(results))
	for i, res := range results {
		effects[i] = effect.NewWriteEffect(w, res.Lines)
	}
	return effects
}

// Heats runs heats independent races concurrently, each built by newLoop so
// every heat draws from its own randomness source. All heats are joined
// before returning, so the caller always sees every final snapshot.
func Heats(newLoop func(heat int) Loop, initial state.Snapshot, steps, heats int) ([]state.Snapshot, error) {
	if heats < 0 {
		return nil, ErrNegativeHeats
	}
	if steps < 0 {
		return nil, ErrNegativeSteps
	}
	futures := make([]future.Future[state.Snapshot], heats)
	for i := range futures {
		loop := newLoop(i)
		futures[i] = future.NewFuture(func() (state.Snapshot, error) {
			results, err := loop.Run(initial, steps)
			if err != nil {
				return state.Snapshot{}, err
			}
			if len(results) == 0 {
				return initial, nil
			}
			return results[len(results)-1].State, nil
		})
	}
	return future.Join(futures)
}
