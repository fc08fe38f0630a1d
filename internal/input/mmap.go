package input

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrNotRegular is returned when asked to map something other than a regular file.
var ErrNotRegular = errors.New("not a regular file")

// MapMode selects how a file is mapped.
type MapMode int

const (
	// MapPrivate maps copy-on-write and hints a forward sequential scan.
	MapPrivate MapMode = iota
	// MapShared maps shared so pages stay coherent with concurrent writers.
	// Used for backward scans, where readahead hints do not help.
	MapShared
)

// Map opens path and returns its contents as a Region. Files of at least
// mmapThreshold bytes are memory-mapped; smaller ones are read into a pooled
// buffer. A threshold of 0 maps every non-empty file. An empty file yields an
// empty Region with nothing to release.
func Map(path string, mode MapMode, mmapThreshold int64) (Region, error) {
	fd, err := openFile(path)
	if err != nil {
		return Region{}, fmt.Errorf("open %s: %w", path, err)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return Region{}, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.Mode&unix.S_IFMT != unix.S_IFREG {
		unix.Close(fd)
		return Region{}, fmt.Errorf("open %s: %w", path, ErrNotRegular)
	}

	if stat.Size == 0 {
		unix.Close(fd)
		return Region{}, nil
	}

	if stat.Size >= mmapThreshold {
		return readMmap(fd, stat.Size, mode)
	}
	return readBuffered(fd, stat.Size)
}

// readMmap memory-maps an already-opened fd of known size.
// Takes ownership of fd: it is closed by Region.Release.
func readMmap(fd int, size int64, mode MapMode) (Region, error) {
	flags := unix.MAP_PRIVATE | unix.MAP_POPULATE
	advice := unix.MADV_SEQUENTIAL
	if mode == MapShared {
		flags = unix.MAP_SHARED
		advice = unix.MADV_WILLNEED
	} else {
		unix.Fadvise(fd, 0, size, unix.FADV_SEQUENTIAL)
	}

	data, err := unix.Mmap(fd, 0, int(size), unix.PROT_READ, flags)
	if err != nil {
		// Fall back to buffered read from the already-open fd
		return readBuffered(fd, size)
	}

	unix.Madvise(data, advice)

	return Region{
		Data: data,
		release: func() error {
			err := unix.Munmap(data)
			unix.Close(fd)
			return err
		},
	}, nil
}

// openFile opens a file with O_NOATIME, falling back without it.
func openFile(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOATIME|unix.O_CLOEXEC, 0)
	if err != nil {
		fd, err = unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	}
	return fd, err
}
