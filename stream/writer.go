package stream

import (
	"bufio"
	"io"
)

// Writer writes newline-terminated lines to an io.Writer.
//
// The first write error is kept and returned by Flush and Err; every later
// write becomes a no-op, so callers can emit a whole document and check the
// error once.
type Writer struct {
	w   *bufio.Writer
	n   int64
	err error
}

// NewWriter creates a new line writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteString writes s as is.
func (w *Writer) WriteString(s string) {
	if w.err != nil {
		return
	}
	n, err := w.w.WriteString(s)
	w.n += int64(n)
	w.err = err
}

// WriteLine writes s followed by "\n".
func (w *Writer) WriteLine(s string) {
	w.WriteString(s)
	w.WriteString("\n")
}

// WriteRunes writes rs followed by "\n".
func (w *Writer) WriteRunes(rs []rune) {
	if w.err != nil {
		return
	}
	for _, r := range rs {
		n, err := w.w.WriteRune(r)
		w.n += int64(n)
		if err != nil {
			w.err = err
			return
		}
	}
	w.WriteString("\n")
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// Count returns the number of bytes accepted so far.
func (w *Writer) Count() int64 {
	return w.n
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}
