package input

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/dl/perg/internal/pipeline"
)

// streamBufSize is the bufio window used for stream input.
const streamBufSize = 64 * 1024

// StreamReader yields the lines of an unseekable input, such as stdin, in
// arrival order. Each line view points into a buffer the reader reuses on the
// next pull.
type StreamReader struct {
	br   *bufio.Reader
	buf  []byte
	err  error
	done bool
}

// NewStreamReader creates a StreamReader over r.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{br: bufio.NewReaderSize(r, streamBufSize)}
}

func (r *StreamReader) Produce(line *pipeline.Line) pipeline.Action {
	if r.done {
		return pipeline.Terminate
	}

	r.buf = r.buf[:0]
	for {
		frag, err := r.br.ReadSlice('\n')
		r.buf = append(r.buf, frag...)
		if err == nil {
			break
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		r.done = true
		if !errors.Is(err, io.EOF) {
			// A record cut short by a read error is discarded.
			r.err = err
			r.buf = r.buf[:0]
			return pipeline.Terminate
		}
		if len(r.buf) == 0 {
			return pipeline.Terminate
		}
		break
	}

	line.Assign(trimNewline(r.buf))
	return pipeline.PassDownstream
}

// Err returns the read error that ended the input, or nil at a clean EOF.
func (r *StreamReader) Err() error { return r.err }

// Close drops the line buffer. The underlying reader is not closed.
func (r *StreamReader) Close() error {
	r.done = true
	r.buf = nil
	return nil
}

// ReverseStreamReader yields the lines of an unseekable input last line
// first. The input has no backward cursor, so the first pull reads all of it
// into memory; memory use grows with the size of the input.
type ReverseStreamReader struct {
	src    io.Reader
	data   []byte
	pos    int // start of the most recently produced line
	loaded bool
	err    error
}

// NewReverseStreamReader creates a ReverseStreamReader over r.
func NewReverseStreamReader(r io.Reader) *ReverseStreamReader {
	return &ReverseStreamReader{src: r}
}

func (r *ReverseStreamReader) Produce(line *pipeline.Line) pipeline.Action {
	if !r.loaded {
		r.load()
	}
	if r.pos <= 0 {
		return pipeline.Terminate
	}
	b, start := prevLine(r.data, r.pos)
	line.Assign(b)
	r.pos = start
	return pipeline.PassDownstream
}

// load reads the whole input. On a read error the complete records read so
// far are kept and the trailing partial record is discarded.
func (r *ReverseStreamReader) load() {
	r.loaded = true
	data, err := io.ReadAll(r.src)
	if err != nil {
		r.err = err
		data = data[:bytes.LastIndexByte(data, '\n')+1]
	}
	r.data = data
	r.pos = len(data)
}

// Err returns the read error hit while loading the input, or nil.
func (r *ReverseStreamReader) Err() error { return r.err }

// Close drops the buffered input. The underlying reader is not closed.
func (r *ReverseStreamReader) Close() error {
	r.loaded = true
	r.data = nil
	r.pos = 0
	return nil
}
