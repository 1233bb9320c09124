// pkg/module/module.go

package module

import (
	"io"

	"github.com/Feralthedogg/Cursus/pkg/random"
)

// Container restricts the stored randomness module to types that implement
// random.Source and carries the output sink the simulation writes to.
type Container[SourceT random.Source] struct {
	Source SourceT
	Output io.Writer
}

// NewContainer creates a new container with the provided randomness module
// and output sink.
func NewContainer[SourceT random.Source](source SourceT, output io.Writer) Container[SourceT] {
	return Container[SourceT]{Source: source, Output: output}
}

// GetSource returns the stored randomness module.
func (c Container[SourceT]) GetSource() SourceT {
	return c.Source
}

// GetOutput returns the stored output sink.
func (c Container[SourceT]) GetOutput() io.Writer {
	return c.Output
}
