package stream

import (
	"bufio"
	"io"
	"strings"
)

// Reader reads lines from an io.Reader.
type Reader struct {
	r       *bufio.Reader
	maxLine int
	line    int

	pushed    string
	hasPushed bool
	err       error
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithMaxLineLength sets the maximum line length in bytes (default: 1 MiB).
// A value <= 0 disables the limit.
func WithMaxLineLength(max int) ReaderOption {
	return func(r *Reader) {
		r.maxLine = max
	}
}

// NewReader creates a new line reader.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	reader := &Reader{
		r:       bufio.NewReader(r),
		maxLine: MaxLineLength,
	}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Next returns the next line without its terminator.
// Returns io.EOF when no more lines are available. A final line without a
// trailing newline is still returned. Errors other than io.EOF are sticky.
func (r *Reader) Next() (string, error) {
	if r.hasPushed {
		r.hasPushed = false
		r.line++
		return r.pushed, nil
	}
	if r.err != nil {
		return "", r.err
	}

	// ReadSlice hands out at most one buffer of data at a time, so an
	// oversized line is rejected before it is held in memory.
	var buf []byte
	for {
		chunk, err := r.r.ReadSlice('\n')
		buf = append(buf, chunk...)
		if r.maxLine > 0 && len(buf) > r.maxLine+2 {
			r.line++
			r.err = &LineTooLongError{Line: r.line, Length: len(buf), Max: r.maxLine}
			return "", r.err
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil {
			if err != io.EOF {
				r.err = &ReadError{Line: r.line + 1, Err: err}
				return "", r.err
			}
			if len(buf) == 0 {
				r.err = io.EOF
				return "", io.EOF
			}
		}
		break
	}
	r.line++

	s := strings.TrimSuffix(string(buf), "\n")
	s = strings.TrimSuffix(s, "\r")
	if r.maxLine > 0 && len(s) > r.maxLine {
		r.err = &LineTooLongError{Line: r.line, Length: len(s), Max: r.maxLine}
		return "", r.err
	}
	return s, nil
}

// Unread pushes line back so the next call to Next returns it.
// Only one line of pushback is kept; a second Unread replaces the first.
func (r *Reader) Unread(line string) {
	if !r.hasPushed {
		r.line--
	}
	r.pushed = line
	r.hasPushed = true
}

// Line returns the number of the last line returned by Next (1-based).
func (r *Reader) Line() int {
	return r.line
}
