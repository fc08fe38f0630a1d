package output

import (
	"io"
	"strconv"
	"time"
)

// Summary describes one completed search.
type Summary struct {
	Elapsed   time.Duration
	Pulled    int // lines read
	Dropped   int // lines rejected by the matcher
	Delivered int // lines offered to the sink
	Kept      int // lines in the output
}

// WriteSummary writes s as a single line of label/value pairs.
func WriteSummary(w io.Writer, s Summary, styles Styles) error {
	var buf []byte
	field := func(label, value string) {
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, styles.Label.Render(label)...)
		buf = append(buf, ' ')
		buf = append(buf, styles.Value.Render(value)...)
	}

	field("elapsed", s.Elapsed.String())
	field("pulled", strconv.Itoa(s.Pulled))
	field("dropped", strconv.Itoa(s.Dropped))
	field("delivered", strconv.Itoa(s.Delivered))
	field("kept", strconv.Itoa(s.Kept))
	buf = append(buf, '\n')

	_, err := w.Write(buf)
	return err
}
