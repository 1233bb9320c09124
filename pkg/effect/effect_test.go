package effect

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("stream closed")
}

func TestWriteEffectWritesLines(t *testing.T) {
	var buf bytes.Buffer
	e := NewWriteEffect(&buf, []string{"", "--", "-"})
	if err := Perform(e); err != nil {
		t.Fatalf("Perform returned error: %v", err)
	}
	if got := buf.String(); got != "\n--\n-\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestWriteEffectWithNoLinesWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	if err := Perform(NewWriteEffect(&buf, nil)); err != nil {
		t.Fatalf("Perform returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

// TestWriteEffectSurfacesStreamFailure ensures a broken output stream is
// reported to the caller, not swallowed.
func TestWriteEffectSurfacesStreamFailure(t *testing.T) {
	err := Perform(NewWriteEffect(failingWriter{}, []string{"-"}))
	if err == nil {
		t.Fatal("expected an error from the failing writer")
	}
}

func TestPerformAllStopsAtFirstFailure(t *testing.T) {
	var buf bytes.Buffer
	effects := []Effect{
		NewWriteEffect(&buf, []string{"first"}),
		NewWriteEffect(failingWriter{}, []string{"second"}),
		NewWriteEffect(&buf, []string{"third"}),
	}
	if err := PerformAll(effects); err == nil {
		t.Fatal("expected an error")
	}
	if got := buf.String(); got != "first\n" {
		t.Fatalf("expected only the first effect to run, got %q", got)
	}
}
