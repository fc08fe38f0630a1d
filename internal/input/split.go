package input

import "bytes"

// nextLine returns the line starting at pos and the position just past its
// newline, or len(data) for an unterminated last line. pos < len(data).
//
// Returned slices are capped at the line end so an append by a downstream
// stage reallocates instead of writing into the backing region.
func nextLine(data []byte, pos int) ([]byte, int) {
	rest := data[pos:]
	if i := bytes.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i:i], pos + i + 1
	}
	return rest[:len(rest):len(rest)], len(data)
}

// prevLine returns the line that ends at end, not counting one newline
// directly before end, together with the line's start. end > 0.
func prevLine(data []byte, end int) ([]byte, int) {
	lineEnd := end
	if data[end-1] == '\n' {
		lineEnd--
	}
	start := bytes.LastIndexByte(data[:lineEnd], '\n') + 1
	return data[start:lineEnd:lineEnd], start
}

// trimNewline drops exactly one trailing newline, if present.
func trimNewline(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		return b[: n-1 : n-1]
	}
	return b
}
