package pipeline

// Stage identifies the role of a pipeline stage.
type Stage int

const (
	StageNone Stage = iota
	StageSource
	StageFilter
	StageSink
)

func (s Stage) String() string {
	switch s {
	case StageSource:
		return "source"
	case StageFilter:
		return "filter"
	case StageSink:
		return "sink"
	}
	return "none"
}

// Stats summarizes a completed run.
type Stats struct {
	Pulled    int   // lines produced by the source
	Dropped   int   // lines a filter stopped with Undecided
	Delivered int   // lines that reached the sink
	StoppedBy Stage // role that returned the final Terminate
}

// Pipeline is a source, an ordered list of filters and an optional sink.
// Build one with Connect, then call Run.
type Pipeline struct {
	source  Source
	filters []Filter
	sink    Sink
}

// Connect starts a pipeline reading from src.
func Connect(src Source) *Pipeline {
	return &Pipeline{source: src}
}

// Through appends a filter. Filters run in the order they were added.
func (p *Pipeline) Through(f Filter) *Pipeline {
	p.filters = append(p.filters, f)
	return p
}

// Into sets the terminal stage. Without a sink, surviving lines are discarded.
func (p *Pipeline) Into(s Sink) *Pipeline {
	p.sink = s
	return p
}

// Run pulls lines until the source is exhausted or a stage returns Terminate.
// After a Terminate the source is never called again.
func (p *Pipeline) Run() Stats {
	if p.source == nil {
		panic("pipeline: Run without a source")
	}

	var (
		stats Stats
		line  Line
	)
	for {
		if p.source.Produce(&line) == Terminate {
			stats.StoppedBy = StageSource
			return stats
		}
		stats.Pulled++

		if stage, stop := p.propagate(&line, &stats); stop {
			stats.StoppedBy = stage
			return stats
		}
	}
}

// propagate hands one line through the filters and into the sink. It reports
// whether the run must stop, and which role asked for it.
func (p *Pipeline) propagate(line *Line, stats *Stats) (Stage, bool) {
	for _, f := range p.filters {
		switch f.Transform(line) {
		case PassDownstream:
			continue
		case Terminate:
			return StageFilter, true
		default:
			stats.Dropped++
			return StageNone, false
		}
	}

	stats.Delivered++
	if p.sink != nil && p.sink.Consume(line) == Terminate {
		return StageSink, true
	}
	return StageNone, false
}
