// pkg/render/render.go

package render

import (
	"strings"

	"github.com/Feralthedogg/Cursus/pkg/functional"
	"github.com/Feralthedogg/Cursus/pkg/state"
)

// DefaultMark is the character repeated to draw a car's progress.
const DefaultMark = '-'

// Renderer turns a snapshot into its textual depiction. It is a pure
// function of the snapshot: no mutation, no writing; emitting the lines is
// the caller's job.
type Renderer struct {
	mark rune
}

// New creates a Renderer drawing with the default mark.
func New() Renderer {
	return Renderer{mark: DefaultMark}
}

// NewWithMark creates a Renderer drawing with mark.
func NewWithMark(mark rune) Renderer {
	return Renderer{mark: mark}
}

// Render produces one leading blank separator line followed by one line per
// car in index order, each the mark repeated position times. The result is
// always len(state)+1 lines.
func (r Renderer) Render(current state.Snapshot) []string {
	rows := functional.Map(current.Positions(), func(pos int) string {
		return strings.Repeat(string(r.mark), pos)
	})
	return append([]string{""}, rows...)
}
