package race

import (
	"testing"

	"github.com/Feralthedogg/Cursus/pkg/state"
)

func TestComputeStandingsFindsLeadersAndFinishers(t *testing.T) {
	s := ComputeStandings(state.FromPositions([]int{6, 6, 1}), 6)
	if s.Lead != 6 {
		t.Fatalf("expected lead 6, got %d", s.Lead)
	}
	if len(s.Leaders) != 2 || s.Leaders[0] != 0 || s.Leaders[1] != 1 {
		t.Fatalf("expected leaders [0 1], got %v", s.Leaders)
	}
	if len(s.Finished) != 2 || s.Finished[0] != 0 || s.Finished[1] != 1 {
		t.Fatalf("expected finished [0 1], got %v", s.Finished)
	}
}

func TestComputeStandingsWithoutFinishLine(t *testing.T) {
	s := ComputeStandings(state.FromPositions([]int{3, 2}), 0)
	if len(s.Finished) != 2 {
		t.Fatalf("zero finish distance should include all cars, got %v", s.Finished)
	}
	if len(s.Leaders) != 1 || s.Leaders[0] != 0 {
		t.Fatalf("expected single leader 0, got %v", s.Leaders)
	}
}

func TestComputeStandingsEmptySnapshot(t *testing.T) {
	s := ComputeStandings(state.New(0, 1), 5)
	if len(s.Leaders) != 0 || len(s.Finished) != 0 {
		t.Fatalf("expected empty standings, got %+v", s)
	}
}
