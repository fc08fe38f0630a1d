// Package pipeline drives lines from a source through filters into a sink.
//
// Every stage returns an Action per line. The driver pulls one line at a time
// and stops as soon as any stage returns Terminate.
package pipeline

// Action is the per-line control signal returned by every stage.
type Action int

const (
	PassDownstream Action = iota // hand the line to the next stage
	Undecided                    // drop this line, keep pulling
	Terminate                    // stop the whole pipeline
)

func (a Action) String() string {
	switch a {
	case PassDownstream:
		return "pass"
	case Undecided:
		return "undecided"
	case Terminate:
		return "terminate"
	}
	return "unknown"
}

// Source produces lines. Produce fills line and returns PassDownstream, or
// returns Terminate once input is exhausted. It is not called again after
// the first Terminate.
type Source interface {
	Produce(line *Line) Action
}

// Filter decides whether a line continues downstream. It may rebind line.
type Filter interface {
	Transform(line *Line) Action
}

// Sink is the terminal stage.
type Sink interface {
	Consume(line *Line) Action
}

// SourceFunc adapts a function to Source.
type SourceFunc func(line *Line) Action

func (f SourceFunc) Produce(line *Line) Action { return f(line) }

// FilterFunc adapts a function to Filter.
type FilterFunc func(line *Line) Action

func (f FilterFunc) Transform(line *Line) Action { return f(line) }

// SinkFunc adapts a function to Sink.
type SinkFunc func(line *Line) Action

func (f SinkFunc) Consume(line *Line) Action { return f(line) }
