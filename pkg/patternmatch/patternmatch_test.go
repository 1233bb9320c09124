package patternmatch

import "testing"

func TestLiteralMatchesEqualValue(t *testing.T) {
	ok, _, err := Literal[int]{Value: 6}.Match(6, NewEnv())
	if !ok || err != nil {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
	if ok, _, _ := (Literal[int]{Value: 6}).Match(5, NewEnv()); ok {
		t.Fatal("expected mismatch for different value")
	}
	if ok, _, _ := (Literal[int]{Value: 6}).Match("6", NewEnv()); ok {
		t.Fatal("expected mismatch for different type")
	}
}

func TestVarBindsAndRefusesRebinding(t *testing.T) {
	ok, env, err := Var{Name: "lead"}.Match(6, NewEnv())
	if !ok || err != nil {
		t.Fatalf("expected binding match, got ok=%v err=%v", ok, err)
	}
	if v, found := env.Lookup("lead"); !found || v != 6 {
		t.Fatalf("expected lead bound to 6, got %v found=%v", v, found)
	}
	if ok, _, _ := (Var{Name: "lead"}).Match(7, env); ok {
		t.Fatal("expected rebinding to a different value to fail")
	}
	if ok, _, _ := (Var{Name: "lead"}).Match(6, env); !ok {
		t.Fatal("expected rebinding to the same value to succeed")
	}
}

func TestAtLeastClassifiesPositions(t *testing.T) {
	finish := AtLeast{Min: 6}
	if ok, _, _ := finish.Match(6, NewEnv()); !ok {
		t.Fatal("position at the finish distance should match")
	}
	if ok, _, _ := finish.Match(7, NewEnv()); !ok {
		t.Fatal("position past the finish distance should match")
	}
	if ok, _, _ := finish.Match(5, NewEnv()); ok {
		t.Fatal("position short of the finish distance should not match")
	}
	if ok, _, _ := finish.Match("6", NewEnv()); ok {
		t.Fatal("non-int value should not match")
	}
}

func TestConsDestructuresPositions(t *testing.T) {
	pattern := Cons{
		Head: AtLeast{Min: 6},
		Tail: Wildcard{},
	}
	if ok, _, err := pattern.Match([]int{6, 6, 1}, NewEnv()); !ok {
		t.Fatalf("expected match, got error: %v", err)
	}
	if ok, _, _ := pattern.Match([]int{1, 6, 6}, NewEnv()); ok {
		t.Fatal("expected head below the finish distance to fail")
	}
	if ok, _, _ := pattern.Match([]int{}, NewEnv()); ok {
		t.Fatal("expected empty list to fail")
	}
	if ok, _, _ := pattern.Match(42, NewEnv()); ok {
		t.Fatal("expected non-slice value to fail")
	}
}

func TestWildcardMatchesAnything(t *testing.T) {
	if ok, _, _ := (Wildcard{}).Match(nil, NewEnv()); !ok {
		t.Fatal("wildcard should match nil")
	}
	if ok, _, _ := (Wildcard{}).Match([]int{1, 2}, NewEnv()); !ok {
		t.Fatal("wildcard should match a slice")
	}
}

func TestEnvLookupWalksParents(t *testing.T) {
	env := NewEnv().Extend("a", 1).Extend("b", 2)
	if v, ok := env.Lookup("a"); !ok || v != 1 {
		t.Fatalf("expected a=1 from parent env, got %v ok=%v", v, ok)
	}
	if _, ok := env.Lookup("missing"); ok {
		t.Fatal("expected missing key to not resolve")
	}
}
