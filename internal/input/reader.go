package input

import (
	"io"

	"github.com/dl/perg/internal/pipeline"
)

// Region is a read-only byte range backed by a mapping or a pooled buffer.
// Data is only valid until Release.
type Region struct {
	Data    []byte
	release func() error
}

// Release returns the region's memory to its owner. Only the first call has
// any effect; later calls return nil.
func (r *Region) Release() error {
	release := r.release
	r.release = nil
	r.Data = nil
	if release == nil {
		return nil
	}
	return release()
}

// Source is a line reader that owns resources until Close.
// Err reports a read failure that ended the input early.
type Source interface {
	pipeline.Source
	io.Closer
	Err() error
}

// Open selects the reader for an input. An empty path reads stdin.
func Open(path string, reverse bool, stdin io.Reader, mmapThreshold int64) (Source, error) {
	if path == "" {
		if reverse {
			return NewReverseStreamReader(stdin), nil
		}
		return NewStreamReader(stdin), nil
	}
	if reverse {
		return NewReverseLineReader(path, mmapThreshold)
	}
	return NewLineReader(path, mmapThreshold)
}
