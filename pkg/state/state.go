// pkg/state/state.go

package state

// Snapshot is an immutable view of every car's progress at one point in
// time. Index identity is stable: index 0 is always car 0. All update
// methods return a new Snapshot and leave the receiver untouched.
type Snapshot struct {
	positions []int
}

// New creates a Snapshot of cars entries, each starting at initial.
func New(cars, initial int) Snapshot {
	positions := make([]int, cars)
	for i := range positions {
		positions[i] = initial
	}
	return Snapshot{positions: positions}
}

// FromPositions creates a Snapshot from an explicit position slice.
// The slice is copied; the caller keeps ownership of its argument.
func FromPositions(positions []int) Snapshot {
	copied := make([]int, len(positions))
	copy(copied, positions)
	return Snapshot{positions: copied}
}

// Len returns the number of cars.
func (s Snapshot) Len() int {
	return len(s.positions)
}

// At returns car i's position.
func (s Snapshot) At(i int) int {
	return s.positions[i]
}

// Positions returns a copy of all positions in index order.
func (s Snapshot) Positions() []int {
	out := make([]int, len(s.positions))
	copy(out, s.positions)
	return out
}

// Step returns a new Snapshot where car i has moved by delta[i]. Entries
// past the end of delta carry over unchanged. The receiver is untouched.
func (s Snapshot) Step(delta []int) Snapshot {
	next := make([]int, len(s.positions))
	for i, p := range s.positions {
		next[i] = p
		if i < len(delta) {
			next[i] = p + delta[i]
		}
	}
	return Snapshot{positions: next}
}

// Equal reports whether two snapshots hold identical positions.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.positions) != len(other.positions) {
		return false
	}
	for i, p := range s.positions {
		if other.positions[i] != p {
			return false
		}
	}
	return true
}

// Budget counts the remaining simulation steps. It is a value type: Spend
// returns the decremented budget rather than mutating the receiver.
type Budget struct {
	Remaining int
}

// NewBudget creates a Budget of n steps.
func NewBudget(n int) Budget {
	return Budget{Remaining: n}
}

// Spend consumes one step. Spending an exhausted budget stays at zero.
func (b Budget) Spend() Budget {
	if b.Remaining <= 0 {
		return Budget{Remaining: 0}
	}
	return Budget{Remaining: b.Remaining - 1}
}

// Done reports whether the budget is exhausted.
func (b Budget) Done() bool {
	return b.Remaining <= 0
}
