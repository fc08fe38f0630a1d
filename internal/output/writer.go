package output

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes to a file descriptor with writev, retrying short writes.
type Writer struct {
	fd int
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return &Writer{fd: int(os.Stdout.Fd())}
}

// NewFdWriter creates a Writer for an arbitrary descriptor. The caller keeps
// ownership of fd.
func NewFdWriter(fd int) *Writer {
	return &Writer{fd: fd}
}

// Write writes all of data, looping until the kernel has taken every byte.
func (w *Writer) Write(data []byte) (int, error) {
	total := 0
	iovs := make([][]byte, 1)
	for len(data) > 0 {
		iovs[0] = data
		n, err := unix.Writev(w.fd, iovs)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return total, err
		}
		total += n
		data = data[n:]
	}
	return total, nil
}
