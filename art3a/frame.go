package art3a

// ColorRef is an optional reference to a palette entry. The zero value means
// "no color".
type ColorRef struct {
	name Char
	ok   bool
}

// Ref returns a reference to the color named name. Underscore is the
// "no color" marker and yields the zero ColorRef.
func Ref(name Char) ColorRef {
	if name == Underscore {
		return ColorRef{}
	}
	return ColorRef{name: name, ok: true}
}

// Name returns the referenced color name.
func (r ColorRef) Name() (Char, bool) {
	return r.name, r.ok
}

// IsSet reports whether r references a color.
func (r ColorRef) IsSet() bool {
	return r.ok
}

// Char returns the color channel character of r: the name, or Underscore.
func (r ColorRef) Char() Char {
	if !r.ok {
		return Underscore
	}
	return r.name
}

func (r ColorRef) String() string {
	return r.Char().String()
}

// Cell is one grid position. The zero value is a blank without color.
type Cell struct {
	Text  Char
	Color ColorRef
}

// NewCell returns a cell with the given text and color.
func NewCell(text Char, color ColorRef) Cell {
	return Cell{Text: text, Color: color}
}

// ============================================================
// Frame
// ============================================================

// Frame is a rectangular grid of cells. It keeps a count of cells with a
// color, updated on every mutation.
type Frame struct {
	rows    [][]Cell
	width   int
	colored int
}

// NewFrame returns a width x height frame of blank cells.
func NewFrame(width, height int) *Frame {
	return NewFilledFrame(width, height, Cell{})
}

// NewFilledFrame returns a width x height frame filled with c.
func NewFilledFrame(width, height int, c Cell) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f := &Frame{width: width, rows: make([][]Cell, height)}
	for i := range f.rows {
		f.rows[i] = filledRow(width, c)
	}
	if c.Color.IsSet() {
		f.colored = width * height
	}
	return f
}

func filledRow(width int, c Cell) []Cell {
	row := make([]Cell, width)
	if c != (Cell{}) {
		for i := range row {
			row[i] = c
		}
	}
	return row
}

// frameFromRows builds a frame from rows of equal length and counts colors.
func frameFromRows(rows [][]Cell) *Frame {
	f := &Frame{rows: rows}
	if len(rows) > 0 {
		f.width = len(rows[0])
	}
	f.recount()
	return f
}

// Width returns the number of columns.
func (f *Frame) Width() int { return f.width }

// Height returns the number of rows.
func (f *Frame) Height() int { return len(f.rows) }

// InBounds reports whether (col, row) is inside the frame.
func (f *Frame) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < f.width && row < len(f.rows)
}

// Get returns the cell at (col, row), or def when out of bounds.
func (f *Frame) Get(col, row int, def Cell) Cell {
	if !f.InBounds(col, row) {
		return def
	}
	return f.rows[row][col]
}

// Set stores c at (col, row). It returns false when out of bounds.
func (f *Frame) Set(col, row int, c Cell) bool {
	if !f.InBounds(col, row) {
		return false
	}
	f.put(col, row, c)
	return true
}

// put stores c and keeps the color count current.
func (f *Frame) put(col, row int, c Cell) {
	old := f.rows[row][col]
	if old.Color.IsSet() != c.Color.IsSet() {
		if c.Color.IsSet() {
			f.colored++
		} else {
			f.colored--
		}
	}
	f.rows[row][col] = c
}

// Row returns a copy of one row.
func (f *Frame) Row(row int) []Cell {
	if row < 0 || row >= len(f.rows) {
		return nil
	}
	return append([]Cell(nil), f.rows[row]...)
}

// TextLine returns the text channel of one row.
func (f *Frame) TextLine(row int) string {
	if row < 0 || row >= len(f.rows) {
		return ""
	}
	rs := make([]rune, len(f.rows[row]))
	for i, c := range f.rows[row] {
		rs[i] = c.Text.Rune()
	}
	return string(rs)
}

// ColorLine returns the color channel of one row, "_" marking no color.
func (f *Frame) ColorLine(row int) string {
	if row < 0 || row >= len(f.rows) {
		return ""
	}
	rs := make([]rune, len(f.rows[row]))
	for i, c := range f.rows[row] {
		rs[i] = c.Color.Char().Rune()
	}
	return string(rs)
}

// ColorCount returns the number of cells with a color.
func (f *Frame) ColorCount() int { return f.colored }

// HasColors reports whether any cell has a color.
func (f *Frame) HasColors() bool { return f.colored > 0 }

func (f *Frame) recount() {
	f.colored = f.countColored()
}

// countColored counts colored cells with a full scan.
func (f *Frame) countColored() int {
	n := 0
	for _, row := range f.rows {
		for _, c := range row {
			if c.Color.IsSet() {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	out := &Frame{width: f.width, colored: f.colored, rows: make([][]Cell, len(f.rows))}
	for i, row := range f.rows {
		out.rows[i] = append([]Cell(nil), row...)
	}
	return out
}

// Equal reports whether f and o hold the same cells.
func (f *Frame) Equal(o *Frame) bool {
	if f.width != o.width || len(f.rows) != len(o.rows) || f.colored != o.colored {
		return false
	}
	for i, row := range f.rows {
		for j, c := range row {
			if o.rows[i][j] != c {
				return false
			}
		}
	}
	return true
}

// ============================================================
// Frame Transforms
// ============================================================

// ShiftRight moves every row cols columns to the right. Columns pushed out
// re-enter on the left and are then overwritten with fill.
func (f *Frame) ShiftRight(cols int, fill Cell) {
	if cols <= 0 {
		return
	}
	n := min(cols, f.width)
	for r, row := range f.rows {
		if cols <= f.width {
			rotateRight(row, cols)
		}
		for c := 0; c < n; c++ {
			f.put(c, r, fill)
		}
	}
}

// ShiftLeft moves every row cols columns to the left, filling the vacated
// columns on the right with fill.
func (f *Frame) ShiftLeft(cols int, fill Cell) {
	if cols <= 0 {
		return
	}
	n := min(cols, f.width)
	for r, row := range f.rows {
		for c := 0; c < n; c++ {
			f.put(c, r, fill)
		}
		if cols <= f.width {
			rotateLeft(row, cols)
		}
	}
}

// ShiftDown moves rows down, filling the vacated rows at the top with fill.
func (f *Frame) ShiftDown(rows int, fill Cell) {
	if rows <= 0 {
		return
	}
	n := min(rows, len(f.rows))
	if rows <= len(f.rows) {
		rotateRight(f.rows, rows)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < f.width; c++ {
			f.put(c, r, fill)
		}
	}
}

// ShiftUp moves rows up, filling the vacated rows at the bottom with fill.
func (f *Frame) ShiftUp(rows int, fill Cell) {
	if rows <= 0 {
		return
	}
	n := min(rows, len(f.rows))
	for r := 0; r < n; r++ {
		for c := 0; c < f.width; c++ {
			f.put(c, r, fill)
		}
	}
	if rows <= len(f.rows) {
		rotateLeft(f.rows, rows)
	}
}

func rotateLeft[T any](s []T, k int) {
	if len(s) == 0 {
		return
	}
	k %= len(s)
	reverse(s[:k])
	reverse(s[k:])
	reverse(s)
}

func rotateRight[T any](s []T, k int) {
	if len(s) == 0 {
		return
	}
	rotateLeft(s, len(s)-k%len(s))
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// FillArea sets every cell of the w x h rectangle at (col, row) to c. The
// rectangle is clipped to the frame.
func (f *Frame) FillArea(col, row, w, h int, c Cell) {
	x0, y0 := max(col, 0), max(row, 0)
	x1, y1 := min(col+w, f.width), min(row+h, len(f.rows))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			f.put(x, y, c)
		}
	}
}

// Fill sets every cell to c.
func (f *Frame) Fill(c Cell) {
	f.FillArea(0, 0, f.width, len(f.rows), c)
}

// FillText sets the text of every cell, keeping colors.
func (f *Frame) FillText(t Char) {
	for _, row := range f.rows {
		for i := range row {
			row[i].Text = t
		}
	}
}

// FillColor sets the color of every cell, keeping text.
func (f *Frame) FillColor(ref ColorRef) {
	for _, row := range f.rows {
		for i := range row {
			row[i].Color = ref
		}
	}
	if ref.IsSet() {
		f.colored = f.width * len(f.rows)
	} else {
		f.colored = 0
	}
}

// Clean blanks every cell.
func (f *Frame) Clean() {
	f.Fill(Cell{})
}

// resizeWidth truncates or pads every row to width columns.
func (f *Frame) resizeWidth(width int, fill Cell) {
	if width < 0 {
		width = 0
	}
	for r, row := range f.rows {
		if width < len(row) {
			for _, c := range row[width:] {
				if c.Color.IsSet() {
					f.colored--
				}
			}
			f.rows[r] = row[:width:width]
			continue
		}
		for len(f.rows[r]) < width {
			f.rows[r] = append(f.rows[r], fill)
			if fill.Color.IsSet() {
				f.colored++
			}
		}
	}
	f.width = width
}

// resizeHeight truncates or pads the frame to height rows.
func (f *Frame) resizeHeight(height int, fill Cell) {
	if height < 0 {
		height = 0
	}
	if height < len(f.rows) {
		for _, row := range f.rows[height:] {
			for _, c := range row {
				if c.Color.IsSet() {
					f.colored--
				}
			}
		}
		f.rows = f.rows[:height:height]
		return
	}
	for len(f.rows) < height {
		f.rows = append(f.rows, filledRow(f.width, fill))
		if fill.Color.IsSet() {
			f.colored += f.width
		}
	}
}

// crop keeps the rectangle between (col0, row0) and (col1, row1), both
// inclusive and clamped to the frame.
func (f *Frame) crop(col0, row0, col1, row1 int) {
	if f.width == 0 || len(f.rows) == 0 {
		return
	}
	col0, col1 = clampRange(col0, col1, f.width)
	row0, row1 = clampRange(row0, row1, len(f.rows))
	rows := make([][]Cell, 0, row1-row0+1)
	for y := row0; y <= row1; y++ {
		rows = append(rows, append([]Cell(nil), f.rows[y][col0:col1+1]...))
	}
	f.rows = rows
	f.width = col1 - col0 + 1
	f.recount()
}

// clampRange orders a and b and clamps both into [0, n).
func clampRange(a, b, n int) (int, int) {
	if a > b {
		a, b = b, a
	}
	return min(max(a, 0), n-1), min(max(b, 0), n-1)
}

// Print writes text at (col, row), one character per cell, stopping at the
// right edge. Disallowed characters are dropped. Cells keep their color
// unless color is set.
func (f *Frame) Print(col, row int, text string, color ColorRef) {
	if row < 0 || row >= len(f.rows) {
		return
	}
	x := col
	for _, t := range textChars(text) {
		if x >= f.width {
			return
		}
		if x >= 0 {
			c := f.rows[row][x]
			c.Text = t
			if color.IsSet() {
				c.Color = color
			}
			f.put(x, row, c)
		}
		x++
	}
}

// ContainsColor reports whether any cell references name.
func (f *Frame) ContainsColor(name Char) bool {
	if f.colored == 0 {
		return false
	}
	ref := Ref(name)
	for _, row := range f.rows {
		for _, c := range row {
			if c.Color == ref {
				return true
			}
		}
	}
	return false
}

// ContainsText reports whether any cell holds t.
func (f *Frame) ContainsText(t Char) bool {
	for _, row := range f.rows {
		for _, c := range row {
			if c.Text == t {
				return true
			}
		}
	}
	return false
}

// RemoveColor clears every reference to name.
func (f *Frame) RemoveColor(name Char) {
	ref := Ref(name)
	for r, row := range f.rows {
		for i, c := range row {
			if c.Color == ref {
				c.Color = ColorRef{}
				f.put(i, r, c)
			}
		}
	}
}

// colorNames adds every referenced color name to set.
func (f *Frame) colorNames(set map[Char]struct{}) {
	if f.colored == 0 {
		return
	}
	for _, row := range f.rows {
		for _, c := range row {
			if name, ok := c.Color.Name(); ok {
				set[name] = struct{}{}
			}
		}
	}
}

// copyText replaces the text channel of f with the text of src.
func (f *Frame) copyText(src *Frame) {
	for r, row := range f.rows {
		for i := range row {
			row[i].Text = src.rows[r][i].Text
		}
	}
}

// copyColors replaces the color channel of f with the colors of src.
func (f *Frame) copyColors(src *Frame) {
	for r, row := range f.rows {
		for i := range row {
			row[i].Color = src.rows[r][i].Color
		}
	}
	f.colored = src.colored
}
