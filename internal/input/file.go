package input

import "github.com/dl/perg/internal/pipeline"

// LineReader yields the lines of a file in on-disk order.
// The zero value is an empty reader.
type LineReader struct {
	region Region
	pos    int
}

// NewLineReader maps path for a forward scan.
func NewLineReader(path string, mmapThreshold int64) (*LineReader, error) {
	region, err := Map(path, MapPrivate, mmapThreshold)
	if err != nil {
		return nil, err
	}
	return &LineReader{region: region}, nil
}

func (r *LineReader) Produce(line *pipeline.Line) pipeline.Action {
	data := r.region.Data
	if r.pos >= len(data) {
		return pipeline.Terminate
	}
	b, next := nextLine(data, r.pos)
	line.Assign(b)
	r.pos = next
	return pipeline.PassDownstream
}

// Err always returns nil: a mapped file cannot fail mid-scan.
func (r *LineReader) Err() error { return nil }

// Close releases the mapping. Lines produced earlier become invalid.
func (r *LineReader) Close() error {
	r.pos = 0
	return r.region.Release()
}

// ReverseLineReader yields the lines of a file last line first.
// The zero value is an empty reader.
type ReverseLineReader struct {
	region Region
	pos    int // start of the most recently produced line
}

// NewReverseLineReader maps path for a backward scan.
func NewReverseLineReader(path string, mmapThreshold int64) (*ReverseLineReader, error) {
	region, err := Map(path, MapShared, mmapThreshold)
	if err != nil {
		return nil, err
	}
	return &ReverseLineReader{region: region, pos: len(region.Data)}, nil
}

func (r *ReverseLineReader) Produce(line *pipeline.Line) pipeline.Action {
	if r.pos <= 0 {
		return pipeline.Terminate
	}
	b, start := prevLine(r.region.Data, r.pos)
	line.Assign(b)
	r.pos = start
	return pipeline.PassDownstream
}

// Err always returns nil: a mapped file cannot fail mid-scan.
func (r *ReverseLineReader) Err() error { return nil }

// Close releases the mapping. Lines produced earlier become invalid.
func (r *ReverseLineReader) Close() error {
	r.pos = 0
	return r.region.Release()
}
