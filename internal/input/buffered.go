package input

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// bufPool pools read buffers for files below the mmap threshold.
// Buffers are stored as *[]byte so the pool can reuse the backing array
// even when the slice grows beyond its original capacity.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64*1024) // 64KB initial capacity
		return &b
	},
}

// readBuffered reads a file from an already-open fd into a pooled buffer.
// Takes ownership of fd: it is closed before returning.
func readBuffered(fd int, size int64) (Region, error) {
	defer unix.Close(fd)

	bp := bufPool.Get().(*[]byte)
	buf := *bp
	if cap(buf) < int(size) {
		buf = make([]byte, size)
	} else {
		buf = buf[:size]
	}

	// pread keeps no seek state, so a shared fd is never disturbed
	var totalRead int
	for totalRead < int(size) {
		n, err := unix.Pread(fd, buf[totalRead:], int64(totalRead))
		if err != nil {
			*bp = buf[:0]
			bufPool.Put(bp)
			return Region{}, fmt.Errorf("read: %w", err)
		}
		if n == 0 {
			break // file shrank underneath us
		}
		totalRead += n
	}

	return Region{
		Data: buf[:totalRead],
		release: func() error {
			*bp = buf[:0]
			bufPool.Put(bp)
			return nil
		},
	}, nil
}
