package contract

import "testing"

func TestAssertPassesOnTrueCondition(t *testing.T) {
	Assert(true, "should not panic")
	Assertf(true, "should not panic for %s", "true")
}

func TestAssertPanicsOnFalseCondition(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	Assert(false, "broken invariant")
}

func TestAssertfFormatsMessage(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		if r != "Contract violation: length changed from 3 to 2" {
			t.Fatalf("unexpected panic message %q", r)
		}
	}()
	Assertf(false, "length changed from %d to %d", 3, 2)
}
