package art3a

import "fmt"

// Frame list operations keep per-frame delays and the preview attached to
// their frames.

// reorder applies a frame order to the frames, the delays and the preview.
func (a *Art) reorder(order []int) {
	a.frames.reorder(order)
	if d := a.header.DelayValue(); d != nil {
		d.remap(order)
	}
	if p := a.header.Preview; p != nil {
		moved := false
		for i, old := range order {
			if old == p.Value {
				p.Value, moved = i, true
				break
			}
		}
		if !moved {
			a.header.Preview = nil
		}
	}
}

// Slice keeps frames from..to, both inclusive and clamped.
func (a *Art) Slice(from, to int) { a.reorder(a.frames.sliceOrder(from, to)) }

// Swap exchanges two frames.
func (a *Art) Swap(i, j int) error {
	order, err := a.frames.swapOrder(i, j)
	if err != nil {
		return err
	}
	a.reorder(order)
	return nil
}

// Reverse reverses the frame order.
func (a *Art) Reverse() { a.reorder(a.frames.reverseOrder()) }

// Dedup removes frames equal to the frame before them.
func (a *Art) Dedup() { a.reorder(a.frames.dedupOrder()) }

// RotForth moves the last k frames to the front.
func (a *Art) RotForth(k int) { a.reorder(a.frames.rotOrder(k)) }

// RotBack moves the first k frames to the end.
func (a *Art) RotBack(k int) { a.reorder(a.frames.rotOrder(-k)) }

// RemoveFrame deletes frame i.
func (a *Art) RemoveFrame(i int) error {
	order, err := a.frames.removeOrder(i)
	if err != nil {
		return err
	}
	a.reorder(order)
	return nil
}

// DupFrame inserts a copy of frame i after it.
func (a *Art) DupFrame(i int) error {
	order, err := a.frames.dupOrder(i)
	if err != nil {
		return err
	}
	a.reorder(order)
	return nil
}

// EnsureFrame appends blank frames until frame i exists.
func (a *Art) EnsureFrame(i int) { a.frames.Ensure(i) }

// PinText copies the text of frame src to every frame.
func (a *Art) PinText(src int) error { return a.frames.PinText(src) }

// PinColor copies the colors of frame src to every frame.
func (a *Art) PinColor(src int) error { return a.frames.PinColor(src) }

// Crop keeps the rectangle between two inclusive corners in every frame.
func (a *Art) Crop(col0, row0, col1, row1 int) { a.frames.Crop(col0, row0, col1, row1) }

// Resize truncates or pads every frame.
func (a *Art) Resize(width, height int, fill Cell) { a.frames.Resize(width, height, fill) }

// Adjust grows every frame to at least width x height.
func (a *Art) Adjust(width, height int, fill Cell) { a.frames.Adjust(width, height, fill) }

// Clean blanks every frame.
func (a *Art) Clean() { a.frames.Clean() }

// Print writes text at (col, row) of frame. Cells keep their color unless
// color is set.
func (a *Art) Print(frame, col, row int, text string, color ColorRef) error {
	f := a.frames.Frame(frame)
	if f == nil {
		return fmt.Errorf("%w: %d", ErrFrameRange, frame)
	}
	f.Print(col, row, text, color)
	return nil
}
