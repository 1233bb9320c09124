// pkg/effect/effect.go

package effect

import (
	"fmt"
	"io"
	"strings"
)

type Effect interface {
	Handle() error
}

// LogEffect prints a message to stdout when handled.
type LogEffect struct {
	Message string
}

func NewLogEffect(msg string) LogEffect {
	return LogEffect{Message: msg}
}

func (le LogEffect) Handle() error {
	fmt.Println(le.Message)
	return nil
}

// WriteEffect writes pre-rendered lines to a stream when handled. The
// rendered track stays pure data until the effect is performed.
type WriteEffect struct {
	Writer io.Writer
	Lines  []string
}

func NewWriteEffect(w io.Writer, lines []string) WriteEffect {
	return WriteEffect{Writer: w, Lines: lines}
}

func (we WriteEffect) Handle() error {
	if len(we.Lines) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(we.Writer, strings.Join(we.Lines, "\n"))
	if err != nil {
		return fmt.Errorf("write rendered lines: %w", err)
	}
	return nil
}

func Perform(e Effect) error {
	return e.Handle()
}

// PerformAll handles effects in order, stopping at the first failure.
func PerformAll(effects []Effect) error {
	for _, e := range effects {
		if err := e.Handle(); err != nil {
			return err
		}
	}
	return nil
}
