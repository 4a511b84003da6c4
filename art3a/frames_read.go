package art3a

import (
	"fmt"
	"io"

	"github.com/Neumenon/art3a/stream"
)

// lineFormat is the layout of one body line.
type lineFormat uint8

const (
	lineText  lineFormat = iota // text characters only
	lineColor                   // color characters only
	lineBoth                    // text half followed by color half
)

// String returns the format name.
func (f lineFormat) String() string {
	switch f {
	case lineText:
		return "text"
	case lineColor:
		return "color"
	case lineBoth:
		return "both"
	default:
		return "unknown"
	}
}

// bodyFormat picks the line format of a @body block from the header colors
// flag and the pins read so far.
func bodyFormat(colored bool, textPin, colorPin bool) lineFormat {
	switch {
	case !colored:
		return lineText
	case colorPin:
		return lineText
	case textPin:
		return lineColor
	default:
		return lineBoth
	}
}

// parseRow converts one body line to cells.
func parseRow(line string, format lineFormat) ([]Cell, error) {
	chars := textChars(line)
	switch format {
	case lineText:
		row := make([]Cell, len(chars))
		for i, c := range chars {
			row[i].Text = c
		}
		return row, nil
	case lineColor:
		row := make([]Cell, len(chars))
		for i, c := range chars {
			row[i].Color = Ref(c)
		}
		return row, nil
	default:
		if len(chars)%2 != 0 {
			return nil, fmt.Errorf("%w: text and color halves differ in line of %d characters", ErrWidthMismatch, len(chars))
		}
		w := len(chars) / 2
		row := make([]Cell, w)
		for i := range row {
			row[i] = Cell{Text: chars[i], Color: Ref(chars[w+i])}
		}
		return row, nil
	}
}

// readFrame reads rows up to an empty line or the end of the stream. It
// returns nil when the frame has no rows.
func readFrame(r *stream.Reader, format lineFormat) (*Frame, error) {
	var rows [][]Cell
	for {
		line, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == "" {
			break
		}
		row, err := parseRow(line, format)
		if err != nil {
			return nil, lineError(r, err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, lineError(r, fmt.Errorf("%w: row has %d columns, want %d", ErrWidthMismatch, len(row), len(rows[0])))
		}
		rows = append(rows, row)
	}
	if rows == nil {
		return nil, nil
	}
	return frameFromRows(rows), nil
}

// readBody reads frames until an empty frame or the end of the stream.
func (fs *Frames) readBody(r *stream.Reader, format lineFormat) error {
	for {
		f, err := readFrame(r, format)
		if err != nil {
			return err
		}
		if f == nil {
			return nil
		}
		if err := fs.Append(f); err != nil {
			return lineError(r, err)
		}
	}
}

// readPin reads the single frame of a pin block. An empty pin block yields
// nil and pins nothing.
func readPin(r *stream.Reader, format lineFormat) (*Frame, error) {
	return readFrame(r, format)
}
