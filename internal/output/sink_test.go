package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dl/perg/internal/pipeline"
)

// countingSource yields lines and counts how often it is pulled.
type countingSource struct {
	lines []string
	pos   int
	calls int
}

func (s *countingSource) Produce(line *pipeline.Line) pipeline.Action {
	s.calls++
	if s.pos == len(s.lines) {
		return pipeline.Terminate
	}
	line.Assign([]byte(s.lines[s.pos]))
	s.pos++
	return pipeline.PassDownstream
}

func passAll(*pipeline.Line) pipeline.Action { return pipeline.PassDownstream }
func dropAll(*pipeline.Line) pipeline.Action { return pipeline.Undecided }

func TestResultSink_CollectsInOrder(t *testing.T) {
	sink := NewResultSink()
	sink.SeparateBy('\n')
	src := &countingSource{lines: []string{"a", "bb", "ccc"}}

	pipeline.Connect(src).Through(pipeline.FilterFunc(passAll)).Into(sink).Run()

	if got := string(sink.Bytes()); got != "a\nbb\nccc\n" {
		t.Errorf("output = %q, want %q", got, "a\nbb\nccc\n")
	}
	if sink.Count() != 3 {
		t.Errorf("Count() = %d, want 3", sink.Count())
	}
}

func TestResultSink_DropAllIsEmpty(t *testing.T) {
	sink := NewResultSink()
	sink.SeparateBy('\n')
	src := &countingSource{lines: []string{"a", "bb"}}

	pipeline.Connect(src).Through(pipeline.FilterFunc(dropAll)).Into(sink).Run()

	var out bytes.Buffer
	if err := sink.Dump(&out); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("dumped %q, want nothing", out.String())
	}
}

func TestResultSink_NoSeparator(t *testing.T) {
	sink := NewResultSink()
	src := &countingSource{lines: []string{"a", "bb", "ccc"}}

	pipeline.Connect(src).Into(sink).Run()

	if got := string(sink.Bytes()); got != "abbccc" {
		t.Errorf("output = %q, want %q", got, "abbccc")
	}
}

func TestResultSink_CustomSeparator(t *testing.T) {
	sink := NewResultSink()
	sink.SeparateBy(0)
	src := &countingSource{lines: []string{"a", "b"}}

	pipeline.Connect(src).Into(sink).Run()

	if got := string(sink.Bytes()); got != "a\x00b\x00" {
		t.Errorf("output = %q, want %q", got, "a\x00b\x00")
	}
}

func TestResultSink_Limit(t *testing.T) {
	lines := []string{"1", "2", "3", "4", "5"}
	tests := []struct {
		name      string
		limit     int
		wantOut   string
		wantCalls int
	}{
		{"unbounded", -1, "1,2,3,4,5,", 6},
		{"zero", 0, "", 1},
		{"one", 1, "1,", 1},
		{"below total", 3, "1,2,3,", 3},
		{"equal to total", 5, "1,2,3,4,5,", 5},
		{"above total", 10, "1,2,3,4,5,", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := NewResultSink()
			sink.SetLimit(tt.limit)
			sink.SeparateBy(',')
			src := &countingSource{lines: lines}
			filterCalls := 0
			filter := pipeline.FilterFunc(func(*pipeline.Line) pipeline.Action {
				filterCalls++
				return pipeline.PassDownstream
			})

			pipeline.Connect(src).Through(filter).Into(sink).Run()

			if got := string(sink.Bytes()); got != tt.wantOut {
				t.Errorf("output = %q, want %q", got, tt.wantOut)
			}
			if src.calls != tt.wantCalls {
				t.Errorf("source pulled %d times, want %d", src.calls, tt.wantCalls)
			}
			if want := min(tt.wantCalls, len(lines)); filterCalls != want {
				t.Errorf("filter called %d times, want %d", filterCalls, want)
			}
		})
	}
}

func TestResultSink_LimitCountsMatchesOnly(t *testing.T) {
	sink := NewResultSink()
	sink.SetLimit(2)
	sink.SeparateBy('\n')
	src := &countingSource{lines: []string{"x1", "skip", "x2", "x3", "skip"}}
	onlyX := pipeline.FilterFunc(func(l *pipeline.Line) pipeline.Action {
		if strings.HasPrefix(l.String(), "x") {
			return pipeline.PassDownstream
		}
		return pipeline.Undecided
	})

	stats := pipeline.Connect(src).Through(onlyX).Into(sink).Run()

	if got := string(sink.Bytes()); got != "x1\nx2\n" {
		t.Errorf("output = %q, want %q", got, "x1\nx2\n")
	}
	if src.calls != 3 {
		t.Errorf("source pulled %d times, want 3", src.calls)
	}
	if stats.StoppedBy != pipeline.StageSink {
		t.Errorf("StoppedBy = %v, want sink", stats.StoppedBy)
	}
}

func TestResultSink_CopiesLineBytes(t *testing.T) {
	sink := NewResultSink()
	buf := []byte("abc")
	var line pipeline.Line
	line.Assign(buf)
	sink.Consume(&line)
	buf[0] = 'X'

	if got := string(sink.Bytes()); got != "abc" {
		t.Errorf("output = %q, want %q", got, "abc")
	}
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestResultSink_DumpError(t *testing.T) {
	sink := NewResultSink()
	var line pipeline.Line
	line.Assign([]byte("x"))
	sink.Consume(&line)

	boom := errors.New("boom")
	if err := sink.Dump(failWriter{boom}); !errors.Is(err, boom) {
		t.Errorf("Dump() error = %v, want %v", err, boom)
	}
}
