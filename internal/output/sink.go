package output

import (
	"io"

	"github.com/dl/perg/internal/pipeline"
)

// ResultSink is the terminal pipeline stage. It copies kept lines into an
// append-only buffer, up to a limit, optionally following each one with a
// separator byte.
type ResultSink struct {
	buf      []byte
	limit    int // negative means unbounded
	count    int
	sep      byte
	separate bool
}

// NewResultSink creates an unbounded sink with no separator.
func NewResultSink() *ResultSink {
	return &ResultSink{limit: -1}
}

// SetLimit caps the number of kept lines. A negative n removes the cap;
// zero keeps nothing.
func (s *ResultSink) SetLimit(n int) {
	s.limit = n
}

// SeparateBy appends sep after every kept line, including the last.
func (s *ResultSink) SeparateBy(sep byte) {
	s.sep = sep
	s.separate = true
}

// Consume keeps the line and asks for more, or returns Terminate once the
// limit is reached so no further input is read.
func (s *ResultSink) Consume(line *pipeline.Line) pipeline.Action {
	if s.full() {
		return pipeline.Terminate
	}

	s.buf = append(s.buf, line.Bytes()...)
	if s.separate {
		s.buf = append(s.buf, s.sep)
	}
	s.count++

	if s.full() {
		return pipeline.Terminate
	}
	return pipeline.Undecided
}

func (s *ResultSink) full() bool {
	return s.limit >= 0 && s.count >= s.limit
}

// Count returns the number of kept lines.
func (s *ResultSink) Count() int { return s.count }

// Bytes returns the accumulated output. It aliases the sink's buffer.
func (s *ResultSink) Bytes() []byte { return s.buf }

// Dump writes the accumulated output to w in a single call.
func (s *ResultSink) Dump(w io.Writer) error {
	if len(s.buf) == 0 {
		return nil
	}
	_, err := w.Write(s.buf)
	return err
}

var _ pipeline.Sink = (*ResultSink)(nil)
