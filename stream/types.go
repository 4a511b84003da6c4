// Package stream implements the line transport used by the 3a codec.
//
// A 3a document is newline-terminated UTF-8 text. The parser consumes it as
// a sequence of lines with at most one line of lookahead, and the emitter
// produces it as a sequence of lines. This package provides:
//   - Reader: line iterator with line numbers, one-line pushback and a
//     configurable line length limit
//   - Writer: buffered line writer with a sticky error and a byte count
//   - StateHash helpers for content fingerprints
//
// Line terminators are not part of a line: "\n" and "\r\n" are both stripped.
package stream

import (
	"fmt"
)

// MaxLineLength is the default maximum line length in bytes (1 MiB).
const MaxLineLength = 1024 * 1024

// ReadError wraps an error returned by the underlying io.Reader.
type ReadError struct {
	Line int // line being read when the error occurred (1-based)
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("stream: read line %d: %v", e.Line, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// LineTooLongError is returned when a line exceeds the reader's limit.
type LineTooLongError struct {
	Line   int
	Length int
	Max    int
}

func (e *LineTooLongError) Error() string {
	return fmt.Sprintf("stream: line %d too long: %d > %d bytes", e.Line, e.Length, e.Max)
}
