package module

import (
	"bytes"
	"testing"

	"github.com/Feralthedogg/Cursus/pkg/random"
)

func TestContainerCarriesSourceAndOutput(t *testing.T) {
	var buf bytes.Buffer
	source := random.NewSequence(0.9, 0.1)
	c := NewContainer[random.Source](source, &buf)

	if c.GetOutput() != &buf {
		t.Fatal("container lost its output sink")
	}
	if got := c.GetSource().Float64(); got != 0.9 {
		t.Fatalf("expected the stored source's first draw, got %v", got)
	}
}
