package art3a

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DefaultDelay is the frame delay in milliseconds used when none is set.
const DefaultDelay = 50

// Delay holds the frame timing of an animation: a global delay and sparse
// per-frame overrides, all in milliseconds. A zero global delay stands for
// DefaultDelay.
type Delay struct {
	Global   int
	PerFrame map[int]int
}

// GlobalMillis returns the global delay.
func (d *Delay) GlobalMillis() int {
	if d == nil || d.Global == 0 {
		return DefaultDelay
	}
	return d.Global
}

// FrameMillis returns the delay of frame.
func (d *Delay) FrameMillis(frame int) int {
	if d == nil {
		return DefaultDelay
	}
	ms, ok := d.PerFrame[frame]
	if !ok {
		ms = d.Global
	}
	if ms == 0 {
		return DefaultDelay
	}
	return ms
}

// SetGlobal sets the global delay. Zero resets it to DefaultDelay.
func (d *Delay) SetGlobal(ms int) {
	if ms == 0 {
		ms = DefaultDelay
	}
	d.Global = ms
}

// SetFrame overrides the delay of one frame. Zero removes the override.
func (d *Delay) SetFrame(frame, ms int) {
	if ms == 0 {
		delete(d.PerFrame, frame)
		return
	}
	if d.PerFrame == nil {
		d.PerFrame = make(map[int]int)
	}
	d.PerFrame[frame] = ms
}

// Frames returns the frames with an override, in ascending order.
func (d *Delay) Frames() []int {
	if d == nil {
		return nil
	}
	out := make([]int, 0, len(d.PerFrame))
	for f := range d.PerFrame {
		out = append(out, f)
	}
	sort.Ints(out)
	return out
}

// Normalize fits the overrides to an animation of count frames. Overrides
// past the last frame and overrides equal to the global delay are dropped.
// When every frame ends up with the same delay, that delay becomes global.
func (d *Delay) Normalize(count int) {
	global := d.GlobalMillis()
	for f, ms := range d.PerFrame {
		if f >= count || f < 0 || ms == global {
			delete(d.PerFrame, f)
		}
	}
	if count == 0 || len(d.PerFrame) == 0 {
		return
	}
	first := d.FrameMillis(0)
	for f := 1; f < count; f++ {
		if d.FrameMillis(f) != first {
			return
		}
	}
	d.Global = first
	d.PerFrame = nil
}

// remap moves overrides along with their frames. order[i] is the old index
// of new frame i.
func (d *Delay) remap(order []int) {
	if len(d.PerFrame) == 0 {
		return
	}
	next := make(map[int]int)
	for i, old := range order {
		if ms, ok := d.PerFrame[old]; ok {
			next[i] = ms
		}
	}
	d.PerFrame = next
	d.Normalize(len(order))
}

// Millis returns the total duration of count frames.
func (d *Delay) Millis(count int) int {
	total := 0
	for f := 0; f < count; f++ {
		total += d.FrameMillis(f)
	}
	return total
}

// String formats the delay as "<global> [<frame>:<ms> ...]".
func (d *Delay) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(d.GlobalMillis()))
	for _, f := range d.Frames() {
		fmt.Fprintf(&b, " %d:%d", f, d.PerFrame[f])
	}
	return b.String()
}

// ParseDelay parses "<global> [<frame>:<ms> ...]". Tokens may come in any
// order; the global delay is optional when overrides are given.
func ParseDelay(s string) (*Delay, error) {
	d := &Delay{}
	hasGlobal := false
	tokens := 0
	for _, tok := range strings.Split(s, " ") {
		if tok == "" {
			continue
		}
		tokens++
		if fs, ms, ok := strings.Cut(tok, ":"); ok {
			f, err1 := strconv.Atoi(fs)
			v, err2 := strconv.Atoi(ms)
			if err1 != nil || err2 != nil || f < 0 || v < 0 {
				return nil, fmt.Errorf("%w: %q", ErrDelayParse, tok)
			}
			if _, dup := d.PerFrame[f]; dup {
				return nil, fmt.Errorf("%w: frame %d", ErrDelayDup, f)
			}
			if d.PerFrame == nil {
				d.PerFrame = make(map[int]int)
			}
			d.PerFrame[f] = v
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: %q", ErrDelayParse, tok)
		}
		if hasGlobal {
			return nil, fmt.Errorf("%w: global delay given twice", ErrDelayDup)
		}
		hasGlobal = true
		d.SetGlobal(v)
	}
	if tokens == 0 {
		return nil, ErrDelayVoid
	}
	if !hasGlobal {
		d.Global = DefaultDelay
	}
	return d, nil
}
