package matcher

import "github.com/dl/perg/internal/pipeline"

// Filter is the pipeline stage that keeps matching lines. It never stops
// the pipeline on its own.
type Filter struct {
	m Matcher
}

// NewFilter wraps m as a pipeline filter.
func NewFilter(m Matcher) *Filter {
	return &Filter{m: m}
}

func (f *Filter) Transform(line *pipeline.Line) pipeline.Action {
	if f.m.Match(line.Bytes()) {
		return pipeline.PassDownstream
	}
	return pipeline.Undecided
}

// Close releases matcher resources, if the matcher holds any.
func (f *Filter) Close() error {
	if c, ok := f.m.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}

var _ pipeline.Filter = (*Filter)(nil)
