package pipeline

// Line is a borrowed view of one line's bytes, without the trailing newline.
// The bytes belong to the source that produced it and are only valid until
// the next Produce call. Stages that keep data must copy it.
type Line struct {
	b []byte
}

// Assign rebinds the view. No bytes are copied.
func (l *Line) Assign(b []byte) {
	l.b = b
}

// Bytes returns the viewed bytes.
func (l *Line) Bytes() []byte {
	return l.b
}

// Len returns the number of viewed bytes.
func (l *Line) Len() int {
	return len(l.b)
}

func (l *Line) String() string {
	return string(l.b)
}
