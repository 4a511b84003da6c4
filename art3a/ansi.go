package art3a

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Neumenon/art3a/stream"
)

// ============================================================
// SGR State
// ============================================================

// sgrState tracks the colors selected by SGR escape sequences. Attributes
// other than colors are ignored.
type sgrState struct {
	pair ColorPair
}

// apply interprets the parameters of one "ESC [ ... m" sequence.
func (s *sgrState) apply(params []int) {
	if len(params) == 0 {
		s.pair = ColorPair{}
		return
	}
	for i := 0; i < len(params); i++ {
		code := params[i]
		switch {
		case code == 0:
			s.pair = ColorPair{}
		case code >= 30 && code <= 37:
			s.pair.FG = FourBit(Hue(code-30), false)
		case code >= 90 && code <= 97:
			s.pair.FG = FourBit(Hue(code-90), true)
		case code >= 40 && code <= 47:
			s.pair.BG = FourBit(Hue(code-40), false)
		case code >= 100 && code <= 107:
			s.pair.BG = FourBit(Hue(code-100), true)
		case code == 39:
			s.pair.FG = NoColor()
		case code == 49:
			s.pair.BG = NoColor()
		case code == 38:
			i += extendedColor(&s.pair.FG, params, i+1)
		case code == 48:
			i += extendedColor(&s.pair.BG, params, i+1)
		}
	}
}

// extendedColor reads "5;n" or "2;r;g;b" starting at params[start] and
// returns how many parameters it consumed.
func extendedColor(c *Color, params []int, start int) int {
	if start >= len(params) {
		return 0
	}
	switch params[start] {
	case 5:
		if start+1 < len(params) {
			*c = Indexed(uint8(params[start+1]))
			return 2
		}
	case 2:
		if start+3 < len(params) {
			*c = RGB(uint8(params[start+1]), uint8(params[start+2]), uint8(params[start+3]))
			return 4
		}
	}
	return 1
}

// sgrParams splits "1;31" into numbers. Empty fields count as 0 and
// malformed ones as -1, which matches no code.
func sgrParams(s string) []int {
	if s == "" {
		return nil
	}
	fields := strings.Split(s, ";")
	out := make([]int, len(fields))
	for i, f := range fields {
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			n = -1
		}
		out[i] = n
	}
	return out
}

// ============================================================
// Line Scanner
// ============================================================

// scanANSI walks line, updating st on SGR sequences and calling emit for
// every allowed printable character with the current colors. Other CSI
// sequences and OSC strings are skipped. A lone ESC is dropped.
func scanANSI(line string, st *sgrState, emit func(Char, ColorPair)) {
	rs := []rune(line)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r != 0x1b {
			if v, ok := Check(r); ok {
				emit(charOf(v), st.pair)
			}
			continue
		}
		if i+1 >= len(rs) {
			return
		}
		switch rs[i+1] {
		case '[':
			j := i + 2
			for j < len(rs) && (rs[j] < 0x40 || rs[j] > 0x7e) {
				j++
			}
			if j < len(rs) && rs[j] == 'm' {
				st.apply(sgrParams(string(rs[i+2 : j])))
			}
			i = j
		case ']':
			j := i + 2
			for ; j < len(rs); j++ {
				if rs[j] == 0x07 {
					break
				}
				if rs[j] == 0x1b && j+1 < len(rs) && rs[j+1] == '\\' {
					j++
					break
				}
			}
			i = j
		}
	}
}

// colorFor returns the palette reference of pair, allocating a name when
// needed. The default pair has no reference.
func (a *Art) colorFor(pair ColorPair) ColorRef {
	if pair.IsNone() {
		return ColorRef{}
	}
	name := a.SearchOrCreateColorMap(pair)
	if a.reserved != nil {
		a.reserved[name] = struct{}{}
	}
	return Ref(name)
}

// PrintANSI writes a line holding SGR color sequences at (col, row) of
// frame. Colors start from the terminal default. Every color pair met in
// the line is mapped to a palette name, reusing an existing one when the
// pair is already known. Cells outside the frame are dropped.
func (a *Art) PrintANSI(frame, col, row int, line string) error {
	f := a.frames.Frame(frame)
	if f == nil {
		return fmt.Errorf("%w: %d", ErrFrameRange, frame)
	}
	var st sgrState
	scanANSI(line, &st, func(c Char, pair ColorPair) {
		f.Set(col, row, Cell{Text: c, Color: a.colorFor(pair)})
		col++
	})
	return nil
}

// ImportANSI builds a one-frame document from colored terminal output. Each
// input line becomes a row. Colors carry over from one line to the next, as
// they would on a terminal. The frame is as wide as the longest line.
func ImportANSI(r io.Reader, opts ...ReadOption) (*Art, error) {
	cfg := &readConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	sr := stream.NewReader(r, cfg.streamOpts...)

	a := New(0, 0, 0)
	a.reserved = make(map[Char]struct{})
	defer func() { a.reserved = nil }()
	var st sgrState
	var rows [][]Cell
	width := 0
	for {
		line, err := sr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, lineError(sr, err)
		}
		var row []Cell
		scanANSI(line, &st, func(c Char, pair ColorPair) {
			row = append(row, Cell{Text: c, Color: a.colorFor(pair)})
		})
		rows = append(rows, row)
		width = max(width, len(row))
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return a, nil
	}
	for i, row := range rows {
		if len(row) < width {
			rows[i] = append(row, make([]Cell, width-len(row))...)
		}
	}
	if err := a.frames.Append(frameFromRows(rows)); err != nil {
		return nil, err
	}
	return a, nil
}
