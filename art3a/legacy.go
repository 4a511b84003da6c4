package art3a

import (
	"fmt"
	"io"
	"strings"

	"github.com/Neumenon/art3a/stream"
)

// legacyState is the channel a legacy body line belongs to.
type legacyState uint8

const (
	legacyText legacyState = iota
	legacyFG
	legacyBG
)

// String returns the state name.
func (s legacyState) String() string {
	switch s {
	case legacyText:
		return "text"
	case legacyFG:
		return "fg"
	case legacyBG:
		return "bg"
	default:
		return "unknown"
	}
}

// next returns the channel of the line after a line in state s. A row is
// complete whenever next returns legacyText.
func (s legacyState) next(mode LegacyColorMode) legacyState {
	switch s {
	case legacyText:
		switch mode {
		case LegacyColorsFG, LegacyColorsFull:
			return legacyFG
		case LegacyColorsBG:
			return legacyBG
		}
		return legacyText
	case legacyFG:
		if mode == LegacyColorsFull {
			return legacyBG
		}
		return legacyText
	default:
		return legacyText
	}
}

// legacyScanner assembles legacy body lines into frames.
type legacyScanner struct {
	info  LegacyInfo
	state legacyState

	text []Char
	fg   []rune
	bg   []rune

	rows   [][]Cell
	frames []*Frame

	// resolve returns the color reference of a legacy fg/bg digit pair.
	resolve func(fg, bg rune) ColorRef
}

func newLegacyScanner(info LegacyInfo, resolve func(fg, bg rune) ColorRef) *legacyScanner {
	return &legacyScanner{info: info, resolve: resolve}
}

// feed consumes one body line. Text after a tab is a comment.
func (s *legacyScanner) feed(line string) {
	content, _, _ := strings.Cut(line, "\t")
	for _, r := range NormalizeText(content) {
		s.step(r)
	}
}

// step consumes one character of the current channel. A channel takes
// exactly Width characters, which may span several lines, before the
// scanner moves on.
func (s *legacyScanner) step(r rune) {
	switch s.state {
	case legacyText:
		s.text = append(s.text, charOf(r))
		if len(s.text) < s.info.Width {
			return
		}
	case legacyFG:
		s.fg = append(s.fg, r)
		if len(s.fg) < s.info.Width {
			return
		}
	case legacyBG:
		s.bg = append(s.bg, r)
		if len(s.bg) < s.info.Width {
			return
		}
	}
	s.state = s.state.next(s.info.Colors)
	if s.state == legacyText {
		s.pushRow()
	}
}

func (s *legacyScanner) pushRow() {
	row := make([]Cell, s.info.Width)
	for i := range row {
		row[i].Text = s.text[i]
		var fg, bg rune = ' ', ' '
		if s.fg != nil {
			fg = s.fg[i]
		}
		if s.bg != nil {
			bg = s.bg[i]
		}
		row[i].Color = s.resolve(fg, bg)
	}
	s.text, s.fg, s.bg = nil, nil, nil
	s.rows = append(s.rows, row)
	if len(s.rows) == s.info.Height {
		s.frames = append(s.frames, frameFromRows(s.rows))
		s.rows = nil
	}
}

// readLegacyFrames reads a legacy body. A trailing incomplete frame is
// dropped.
func readLegacyFrames(r *stream.Reader, info LegacyInfo, resolve func(fg, bg rune) ColorRef) ([]*Frame, error) {
	s := newLegacyScanner(info, resolve)
	empty := info.Width == 0 || info.Height == 0
	for {
		line, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if empty {
			if !isBlank(line) {
				return nil, lineError(r, fmt.Errorf("%w: %dx%d body with content", ErrDimension, info.Width, info.Height))
			}
			continue
		}
		s.feed(line)
	}
	return s.frames, nil
}
