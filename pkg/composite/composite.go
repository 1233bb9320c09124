// pkg/composite/composite.go
package composite

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Feralthedogg/Cursus/pkg/effect"
	st "github.com/Feralthedogg/Cursus/pkg/state"
)

// Composite chains computations with snapshot transitions, side effects,
// and contract checks. T represents the computed value type, and Deps
// represents compile-time dependencies.
type Composite[T any, Deps any] struct {
	value      T
	stateFn    func(st.Snapshot) st.Snapshot
	effects    []effect.Effect
	contractFn func(T) bool
	err        error
	deps       Deps
}

// Return wraps a value and dependencies into a Composite.
func Return[T any, Deps any](value T, deps Deps) Composite[T, Deps] {
	return Composite[T, Deps]{
		value: value,
		stateFn: func(s st.Snapshot) st.Snapshot {
			return s
		},
		effects:    nil,
		contractFn: func(val T) bool { return true },
		err:        nil,
		deps:       deps,
	}
}

// Bind chains the current composite with function f, combining snapshot
// transitions and effects.
func (m Composite[T, Deps]) Bind(f func(T, Deps) Composite[T, Deps]) Composite[T, Deps] {
	if m.err != nil {
		return m
	}
	if !m.contractFn(m.value) {
		m.err = errors.New("contract violation before Bind: invalid value")
		return m
	}
	next := f(m.value, m.deps)
	if next.err != nil {
		m.err = fmt.Errorf("error in Bind: %w", next.err)
		return m
	}
	combinedStateFn := func(s st.Snapshot) st.Snapshot {
		return next.stateFn(m.stateFn(s))
	}
	combinedEffects := append(m.effects, next.effects...)
	return Composite[T, Deps]{
		value:      next.value,
		stateFn:    combinedStateFn,
		effects:    combinedEffects,
		contractFn: next.contractFn,
		err:        m.err,
		deps:       m.deps,
	}
}

// WithTransition appends a snapshot transition to the composite chain.
func (m Composite[T, Deps]) WithTransition(fn func(st.Snapshot) st.Snapshot) Composite[T, Deps] {
	prev := m.stateFn
	m.stateFn = func(s st.Snapshot) st.Snapshot {
		return fn(prev(s))
	}
	return m
}

// WithEffect appends a side effect to the composite chain.
func (m Composite[T, Deps]) WithEffect(e effect.Effect) Composite[T, Deps] {
	m.effects = append(m.effects, e)
	return m
}

// WithContract sets a contract function to validate the computed value.
func (m Composite[T, Deps]) WithContract(fn func(T) bool) Composite[T, Deps] {
	m.contractFn = fn
	return m
}

// Run executes the composite chain with an initial snapshot and returns the
// final value, the final snapshot, accumulated side effects, and any error.
func (m Composite[T, Deps]) Run(initial st.Snapshot) (T, st.Snapshot, []effect.Effect, error) {
	final := m.stateFn(initial)
	if !m.contractFn(m.value) {
		return m.value, final, m.effects, errors.New("final contract violation")
	}
	return m.value, final, m.effects, m.err
}

// Parallel takes a slice of Composite[T, Deps] and returns a composite
// whose value is a slice of T. It runs all composites concurrently against
// their own empty snapshot and aggregates their results. If any composite
// returns an error, the first error is logged.
func Parallel[T any, Deps any](comps []Composite[T, Deps]) Composite[[]T, Deps] {
	if len(comps) == 0 {
		var deps Deps
		return Return[[]T, Deps]([]T{}, deps)
	}
	deps := comps[0].deps
	return Return[[]T, Deps](nil, deps).Bind(func(_ []T, deps Deps) Composite[[]T, Deps] {
		n := len(comps)
		results := make([]T, n)
		errCh := make(chan error, n)
		effCh := make(chan []effect.Effect, n)
		var wg sync.WaitGroup
		wg.Add(n)
		for i, comp := range comps {
			i, comp := i, comp
			go func() {
				defer wg.Done()
				res, _, effs, err := comp.Run(st.New(0, 0))
				errCh <- err
				results[i] = res
				effCh <- effs
			}()
		}
		wg.Wait()
		close(errCh)
		close(effCh)
		var firstErr error
		totalEffects := []effect.Effect{}
		for err := range errCh {
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
		for effs := range effCh {
			totalEffects = append(totalEffects, effs...)
		}
		out := Return[[]T, Deps](results, deps)
		out.effects = totalEffects
		if firstErr != nil {
			return out.WithEffect(effect.NewLogEffect(fmt.Sprintf("Parallel composite error: %v", firstErr)))
		}
		return out
	}).WithContract(func(vals []T) bool {
		return vals != nil
	})
}
