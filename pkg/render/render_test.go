package render

import (
	"testing"

	"github.com/Feralthedogg/Cursus/pkg/state"
)

// TestRenderDrawsOneRowPerCar pins the worked example: [2 1 3] renders as a
// blank separator then "--", "-", "---".
func TestRenderDrawsOneRowPerCar(t *testing.T) {
	lines := New().Render(state.FromPositions([]int{2, 1, 3}))
	want := []string{"", "--", "-", "---"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], w)
		}
	}
}

func TestRenderEmptySnapshot(t *testing.T) {
	lines := New().Render(state.New(0, 1))
	if len(lines) != 1 || lines[0] != "" {
		t.Fatalf("expected only the separator line, got %v", lines)
	}
}

func TestRenderWithCustomMark(t *testing.T) {
	lines := NewWithMark('*').Render(state.FromPositions([]int{2}))
	if lines[1] != "**" {
		t.Fatalf("expected \"**\", got %q", lines[1])
	}
}

func TestRenderDoesNotMutateState(t *testing.T) {
	s := state.FromPositions([]int{2, 1})
	New().Render(s)
	if !s.Equal(state.FromPositions([]int{2, 1})) {
		t.Fatalf("Render mutated the snapshot: %v", s.Positions())
	}
}
