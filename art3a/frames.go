package art3a

import (
	"fmt"
)

// Frames is the ordered frame list of an animation. All frames share one
// width and height.
//
// The text and color pins are transient: they hold the single frame of a
// @text-pin or @color-pin block between reading the blocks and merging
// them into the body.
type Frames struct {
	frames []*Frame
	width  int
	height int

	textPin  *Frame
	colorPin *Frame
}

// NewFrames returns count blank frames of width x height.
func NewFrames(width, height, count int) *Frames {
	fs := &Frames{width: max(width, 0), height: max(height, 0)}
	for i := 0; i < count; i++ {
		fs.frames = append(fs.frames, NewFrame(fs.width, fs.height))
	}
	return fs
}

// Len returns the number of frames.
func (fs *Frames) Len() int { return len(fs.frames) }

// Width returns the frame width.
func (fs *Frames) Width() int { return fs.width }

// Height returns the frame height.
func (fs *Frames) Height() int { return fs.height }

// Frame returns frame i, or nil when out of range.
func (fs *Frames) Frame(i int) *Frame {
	if i < 0 || i >= len(fs.frames) {
		return nil
	}
	return fs.frames[i]
}

// Get returns the cell at (col, row) of frame, or def when out of range.
func (fs *Frames) Get(frame, col, row int, def Cell) Cell {
	f := fs.Frame(frame)
	if f == nil {
		return def
	}
	return f.Get(col, row, def)
}

// Set stores c at (col, row) of frame. It returns false when out of range.
func (fs *Frames) Set(frame, col, row int, c Cell) bool {
	f := fs.Frame(frame)
	if f == nil {
		return false
	}
	return f.Set(col, row, c)
}

// Append adds f at the end. The first frame of an empty list sets the
// dimensions; later frames must match them.
func (fs *Frames) Append(f *Frame) error {
	if len(fs.frames) == 0 {
		fs.width, fs.height = f.Width(), f.Height()
	} else if err := fs.checkFrame(f); err != nil {
		return err
	}
	fs.frames = append(fs.frames, f)
	return nil
}

func (fs *Frames) checkFrame(f *Frame) error {
	if f.Height() != fs.height {
		return fmt.Errorf("%w: frame has %d rows, want %d", ErrHeightMismatch, f.Height(), fs.height)
	}
	if f.Width() != fs.width {
		return fmt.Errorf("%w: frame has %d columns, want %d", ErrWidthMismatch, f.Width(), fs.width)
	}
	return nil
}

// HasColors reports whether any frame has a colored cell.
func (fs *Frames) HasColors() bool {
	for _, f := range fs.frames {
		if f.HasColors() {
			return true
		}
	}
	return false
}

// ContainsColor reports whether any frame references name.
func (fs *Frames) ContainsColor(name Char) bool {
	for _, f := range fs.frames {
		if f.ContainsColor(name) {
			return true
		}
	}
	return false
}

// RemoveColor clears every reference to name.
func (fs *Frames) RemoveColor(name Char) {
	for _, f := range fs.frames {
		f.RemoveColor(name)
	}
}

func (fs *Frames) colorNames(set map[Char]struct{}) {
	for _, f := range fs.frames {
		f.colorNames(set)
	}
}

// Equal reports whether fs and o hold the same frames.
func (fs *Frames) Equal(o *Frames) bool {
	if fs.width != o.width || fs.height != o.height || len(fs.frames) != len(o.frames) {
		return false
	}
	for i, f := range fs.frames {
		if !f.Equal(o.frames[i]) {
			return false
		}
	}
	return true
}

// ============================================================
// Pins
// ============================================================

// Pinned reports whether the text channel and the color channel are the
// same in every frame. Animations of fewer than two frames are never
// pinned.
func (fs *Frames) Pinned() (text, color bool) {
	if len(fs.frames) < 2 {
		return false, false
	}
	text, color = true, true
	first := fs.frames[0]
	for _, f := range fs.frames[1:] {
		for r, row := range f.rows {
			for i, c := range row {
				ref := first.rows[r][i]
				if c.Text != ref.Text {
					text = false
				}
				if c.Color != ref.Color {
					color = false
				}
			}
			if !text && !color {
				return false, false
			}
		}
	}
	return text, color
}

// PinText copies the text channel of frame src to every frame.
func (fs *Frames) PinText(src int) error {
	p := fs.Frame(src)
	if p == nil {
		return fmt.Errorf("%w: %d", ErrFrameRange, src)
	}
	p = p.Clone()
	for _, f := range fs.frames {
		f.copyText(p)
	}
	return nil
}

// PinColor copies the color channel of frame src to every frame.
func (fs *Frames) PinColor(src int) error {
	p := fs.Frame(src)
	if p == nil {
		return fmt.Errorf("%w: %d", ErrFrameRange, src)
	}
	p = p.Clone()
	for _, f := range fs.frames {
		f.copyColors(p)
	}
	return nil
}

// Merge applies the pending pins to every frame. A color pin replaces the
// color channel of each frame, a text pin its text channel. Pins must match
// the frame dimensions exactly.
func (fs *Frames) Merge() error {
	if fs.textPin == nil && fs.colorPin == nil {
		return nil
	}
	if len(fs.frames) == 0 {
		fs.textPin, fs.colorPin = nil, nil
		return nil
	}
	for _, pin := range []*Frame{fs.colorPin, fs.textPin} {
		if pin == nil {
			continue
		}
		if err := fs.checkFrame(pin); err != nil {
			return err
		}
	}
	for _, f := range fs.frames {
		if fs.colorPin != nil {
			f.copyColors(fs.colorPin)
		}
		if fs.textPin != nil {
			f.copyText(fs.textPin)
		}
		f.recount()
	}
	fs.textPin, fs.colorPin = nil, nil
	return nil
}

// ============================================================
// Frame List Operations
// ============================================================

// reorder rebuilds the list from old indices. order[i] is the old index of
// new frame i; an index may repeat, in which case the frame is cloned.
func (fs *Frames) reorder(order []int) {
	seen := make(map[int]bool, len(order))
	next := make([]*Frame, len(order))
	for i, old := range order {
		f := fs.frames[old]
		if seen[old] {
			f = f.Clone()
		}
		seen[old] = true
		next[i] = f
	}
	fs.frames = next
}

func identity(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// sliceOrder keeps frames from..to, inclusive and clamped.
func (fs *Frames) sliceOrder(from, to int) []int {
	if len(fs.frames) == 0 {
		return nil
	}
	from, to = clampRange(from, to, len(fs.frames))
	return identity(len(fs.frames))[from : to+1]
}

func (fs *Frames) swapOrder(a, b int) ([]int, error) {
	n := len(fs.frames)
	if a < 0 || a >= n || b < 0 || b >= n {
		return nil, fmt.Errorf("%w: swap %d and %d of %d", ErrFrameRange, a, b, n)
	}
	order := identity(n)
	order[a], order[b] = order[b], order[a]
	return order, nil
}

func (fs *Frames) reverseOrder() []int {
	order := identity(len(fs.frames))
	reverse(order)
	return order
}

// dedupOrder drops frames equal to their predecessor.
func (fs *Frames) dedupOrder() []int {
	var order []int
	for i, f := range fs.frames {
		if i > 0 && f.Equal(fs.frames[i-1]) {
			continue
		}
		order = append(order, i)
	}
	return order
}

// rotOrder rotates the list forward by k: the last k frames move to the
// front. A negative k rotates backward.
func (fs *Frames) rotOrder(k int) []int {
	order := identity(len(fs.frames))
	if k >= 0 {
		rotateRight(order, k)
	} else {
		rotateLeft(order, -k)
	}
	return order
}

func (fs *Frames) removeOrder(i int) ([]int, error) {
	if i < 0 || i >= len(fs.frames) {
		return nil, fmt.Errorf("%w: %d", ErrFrameRange, i)
	}
	order := identity(len(fs.frames))
	return append(order[:i], order[i+1:]...), nil
}

func (fs *Frames) dupOrder(i int) ([]int, error) {
	if i < 0 || i >= len(fs.frames) {
		return nil, fmt.Errorf("%w: %d", ErrFrameRange, i)
	}
	order := make([]int, 0, len(fs.frames)+1)
	order = append(order, identity(i+1)...)
	for j := i; j < len(fs.frames); j++ {
		order = append(order, j)
	}
	return order, nil
}

// Slice keeps frames from..to, both inclusive and clamped.
func (fs *Frames) Slice(from, to int) { fs.reorder(fs.sliceOrder(from, to)) }

// Swap exchanges two frames.
func (fs *Frames) Swap(a, b int) error {
	order, err := fs.swapOrder(a, b)
	if err != nil {
		return err
	}
	fs.reorder(order)
	return nil
}

// Reverse reverses the frame order.
func (fs *Frames) Reverse() { fs.reorder(fs.reverseOrder()) }

// Dedup removes frames equal to the frame before them.
func (fs *Frames) Dedup() { fs.reorder(fs.dedupOrder()) }

// RotForth moves the last k frames to the front.
func (fs *Frames) RotForth(k int) { fs.reorder(fs.rotOrder(k)) }

// RotBack moves the first k frames to the end.
func (fs *Frames) RotBack(k int) { fs.reorder(fs.rotOrder(-k)) }

// Remove deletes frame i.
func (fs *Frames) Remove(i int) error {
	order, err := fs.removeOrder(i)
	if err != nil {
		return err
	}
	fs.reorder(order)
	return nil
}

// Dup inserts a copy of frame i after it.
func (fs *Frames) Dup(i int) error {
	order, err := fs.dupOrder(i)
	if err != nil {
		return err
	}
	fs.reorder(order)
	return nil
}

// Ensure appends blank frames until frame i exists.
func (fs *Frames) Ensure(i int) {
	for len(fs.frames) <= i {
		fs.frames = append(fs.frames, NewFrame(fs.width, fs.height))
	}
}

// ============================================================
// Grid Operations (all frames)
// ============================================================

// ShiftRight shifts every frame right. See Frame.ShiftRight.
func (fs *Frames) ShiftRight(cols int, fill Cell) {
	for _, f := range fs.frames {
		f.ShiftRight(cols, fill)
	}
}

// ShiftLeft shifts every frame left.
func (fs *Frames) ShiftLeft(cols int, fill Cell) {
	for _, f := range fs.frames {
		f.ShiftLeft(cols, fill)
	}
}

// ShiftUp shifts every frame up.
func (fs *Frames) ShiftUp(rows int, fill Cell) {
	for _, f := range fs.frames {
		f.ShiftUp(rows, fill)
	}
}

// ShiftDown shifts every frame down.
func (fs *Frames) ShiftDown(rows int, fill Cell) {
	for _, f := range fs.frames {
		f.ShiftDown(rows, fill)
	}
}

// FillArea fills a rectangle in every frame.
func (fs *Frames) FillArea(col, row, w, h int, c Cell) {
	for _, f := range fs.frames {
		f.FillArea(col, row, w, h, c)
	}
}

// Fill sets every cell of every frame.
func (fs *Frames) Fill(c Cell) {
	for _, f := range fs.frames {
		f.Fill(c)
	}
}

// FillText sets the text of every cell, keeping colors.
func (fs *Frames) FillText(t Char) {
	for _, f := range fs.frames {
		f.FillText(t)
	}
}

// FillColor sets the color of every cell, keeping text.
func (fs *Frames) FillColor(ref ColorRef) {
	for _, f := range fs.frames {
		f.FillColor(ref)
	}
}

// Clean blanks every frame.
func (fs *Frames) Clean() {
	for _, f := range fs.frames {
		f.Clean()
	}
}

// Print writes text into every frame. See Frame.Print.
func (fs *Frames) Print(col, row int, text string, color ColorRef) {
	for _, f := range fs.frames {
		f.Print(col, row, text, color)
	}
}

// ResizeWidth truncates or pads every frame to width columns.
func (fs *Frames) ResizeWidth(width int, fill Cell) {
	for _, f := range fs.frames {
		f.resizeWidth(width, fill)
	}
	fs.width = max(width, 0)
}

// ResizeHeight truncates or pads every frame to height rows.
func (fs *Frames) ResizeHeight(height int, fill Cell) {
	for _, f := range fs.frames {
		f.resizeHeight(height, fill)
	}
	fs.height = max(height, 0)
}

// Resize sets both dimensions.
func (fs *Frames) Resize(width, height int, fill Cell) {
	fs.ResizeWidth(width, fill)
	fs.ResizeHeight(height, fill)
}

// AdjustWidth grows every frame to at least width columns.
func (fs *Frames) AdjustWidth(width int, fill Cell) {
	if width > fs.width {
		fs.ResizeWidth(width, fill)
	}
}

// AdjustHeight grows every frame to at least height rows.
func (fs *Frames) AdjustHeight(height int, fill Cell) {
	if height > fs.height {
		fs.ResizeHeight(height, fill)
	}
}

// Adjust grows both dimensions.
func (fs *Frames) Adjust(width, height int, fill Cell) {
	fs.AdjustWidth(width, fill)
	fs.AdjustHeight(height, fill)
}

// Crop keeps the rectangle between (col0, row0) and (col1, row1) in every
// frame, both corners inclusive and clamped.
func (fs *Frames) Crop(col0, row0, col1, row1 int) {
	if fs.width == 0 || fs.height == 0 {
		return
	}
	for _, f := range fs.frames {
		f.crop(col0, row0, col1, row1)
	}
	col0, col1 = clampRange(col0, col1, fs.width)
	row0, row1 = clampRange(row0, row1, fs.height)
	fs.width = col1 - col0 + 1
	fs.height = row1 - row0 + 1
}
