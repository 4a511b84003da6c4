package art3a

import (
	"testing"
)

// frameOf builds a frame from text lines and matching color lines. An empty
// colors slice leaves the frame uncolored.
func frameOf(t *testing.T, text []string, colors []string) *Frame {
	t.Helper()
	rows := make([][]Cell, len(text))
	for r, line := range text {
		chars := textChars(line)
		rows[r] = make([]Cell, len(chars))
		for i, c := range chars {
			rows[r][i].Text = c
		}
		if len(colors) > 0 {
			for i, c := range textChars(colors[r]) {
				rows[r][i].Color = Ref(c)
			}
		}
	}
	return frameFromRows(rows)
}

func textOf(f *Frame) []string {
	out := make([]string, f.Height())
	for r := range out {
		out[r] = f.TextLine(r)
	}
	return out
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// checkCount fails when the incremental color count drifted.
func checkCount(t *testing.T, f *Frame) {
	t.Helper()
	if got := f.countColored(); got != f.ColorCount() {
		t.Errorf("ColorCount() = %d, scan finds %d", f.ColorCount(), got)
	}
}

// ============================================================
// Frame Basics
// ============================================================

func TestNewFrame(t *testing.T) {
	f := NewFrame(3, 2)
	if f.Width() != 3 || f.Height() != 2 {
		t.Fatalf("size = %dx%d", f.Width(), f.Height())
	}
	if f.HasColors() {
		t.Error("new frame should have no colors")
	}
	if got := f.TextLine(1); got != "   " {
		t.Errorf("TextLine = %q", got)
	}
	if got := f.ColorLine(0); got != "___" {
		t.Errorf("ColorLine = %q", got)
	}

	neg := NewFrame(-1, -5)
	if neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative size not clamped: %dx%d", neg.Width(), neg.Height())
	}
}

func TestNewFilledFrame(t *testing.T) {
	f := NewFilledFrame(4, 3, NewCell(MustChar('#'), Ref(MustChar('r'))))
	if f.ColorCount() != 12 {
		t.Errorf("ColorCount() = %d, want 12", f.ColorCount())
	}
	checkCount(t, f)
}

func TestFrame_GetSet(t *testing.T) {
	f := NewFrame(2, 2)
	red := NewCell(MustChar('x'), Ref(MustChar('r')))

	if !f.Set(1, 0, red) {
		t.Fatal("Set in bounds returned false")
	}
	if f.Set(2, 0, red) || f.Set(0, -1, red) {
		t.Error("Set out of bounds returned true")
	}
	if got := f.Get(1, 0, Cell{}); got != red {
		t.Errorf("Get = %+v", got)
	}
	def := NewCell(MustChar('?'), ColorRef{})
	if got := f.Get(5, 5, def); got != def {
		t.Errorf("Get out of bounds = %+v, want default", got)
	}
	if f.ColorCount() != 1 {
		t.Errorf("ColorCount() = %d, want 1", f.ColorCount())
	}

	f.Set(1, 0, NewCell(MustChar('y'), ColorRef{}))
	if f.ColorCount() != 0 {
		t.Errorf("ColorCount() after clearing = %d", f.ColorCount())
	}
	checkCount(t, f)
}

func TestColorRef(t *testing.T) {
	if Ref(Underscore).IsSet() {
		t.Error("Ref(_) should be unset")
	}
	r := Ref(MustChar('r'))
	if name, ok := r.Name(); !ok || name.Rune() != 'r' {
		t.Errorf("Name() = %q, %v", name.String(), ok)
	}
	if (ColorRef{}).String() != "_" || r.String() != "r" {
		t.Error("String() mismatch")
	}
}

func TestFrame_CloneEqual(t *testing.T) {
	f := frameOf(t, []string{"ab", "cd"}, []string{"r_", "_g"})
	c := f.Clone()
	if !f.Equal(c) {
		t.Fatal("clone should equal original")
	}
	c.Set(0, 0, Cell{})
	if f.Equal(c) {
		t.Error("clone shares storage with original")
	}
	if f.TextLine(0) != "ab" {
		t.Error("original modified through clone")
	}
}

// ============================================================
// Shift Tests
// ============================================================

func TestFrame_Shifts(t *testing.T) {
	fill := NewCell(MustChar('.'), ColorRef{})
	tests := []struct {
		name  string
		apply func(f *Frame)
		want  []string
	}{
		{"right", func(f *Frame) { f.ShiftRight(1, fill) }, []string{".ab", ".de", ".gh"}},
		{"left", func(f *Frame) { f.ShiftLeft(2, fill) }, []string{"c..", "f..", "i.."}},
		{"down", func(f *Frame) { f.ShiftDown(1, fill) }, []string{"...", "abc", "def"}},
		{"up", func(f *Frame) { f.ShiftUp(1, fill) }, []string{"def", "ghi", "..."}},
		{"right past edge", func(f *Frame) { f.ShiftRight(9, fill) }, []string{"...", "...", "..."}},
		{"up past edge", func(f *Frame) { f.ShiftUp(4, fill) }, []string{"...", "...", "..."}},
		{"zero", func(f *Frame) { f.ShiftLeft(0, fill) }, []string{"abc", "def", "ghi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := frameOf(t, []string{"abc", "def", "ghi"}, []string{"rrr", "___", "g_g"})
			tt.apply(f)
			if got := textOf(f); !equalLines(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			checkCount(t, f)
		})
	}
}

func TestFrame_ShiftMovesColors(t *testing.T) {
	f := frameOf(t, []string{"ab"}, []string{"r_"})
	f.ShiftRight(1, Cell{})
	if got := f.ColorLine(0); got != "_r" {
		t.Errorf("ColorLine = %q, want _r", got)
	}
	checkCount(t, f)
}

// ============================================================
// Fill and Resize Tests
// ============================================================

func TestFrame_FillArea(t *testing.T) {
	f := NewFrame(4, 3)
	f.FillArea(2, 1, 5, 5, NewCell(MustChar('#'), Ref(MustChar('r'))))
	want := []string{"    ", "  ##", "  ##"}
	if got := textOf(f); !equalLines(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
	if f.ColorCount() != 4 {
		t.Errorf("ColorCount() = %d, want 4", f.ColorCount())
	}
	checkCount(t, f)
}

func TestFrame_FillChannels(t *testing.T) {
	f := frameOf(t, []string{"ab", "cd"}, []string{"r_", "__"})
	f.FillText(MustChar('z'))
	if f.ColorLine(0) != "r_" || f.TextLine(1) != "zz" {
		t.Errorf("FillText changed colors or missed text")
	}
	f.FillColor(Ref(MustChar('g')))
	if f.ColorCount() != 4 || f.TextLine(0) != "zz" {
		t.Errorf("FillColor: count %d, text %q", f.ColorCount(), f.TextLine(0))
	}
	f.Clean()
	if f.HasColors() || f.TextLine(0) != "  " {
		t.Error("Clean left content behind")
	}
	checkCount(t, f)
}

func TestFrame_Resize(t *testing.T) {
	f := frameOf(t, []string{"abc", "def"}, []string{"rrr", "r__"})
	f.resizeWidth(2, Cell{})
	if f.Width() != 2 || f.ColorCount() != 3 {
		t.Errorf("after shrink: width %d, count %d", f.Width(), f.ColorCount())
	}
	f.resizeWidth(4, NewCell(MustChar('+'), Ref(MustChar('g'))))
	if got := f.TextLine(0); got != "ab++" {
		t.Errorf("TextLine = %q", got)
	}
	f.resizeHeight(1, Cell{})
	f.resizeHeight(3, NewCell(MustChar('-'), ColorRef{}))
	want := []string{"ab++", "----", "----"}
	if got := textOf(f); !equalLines(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
	checkCount(t, f)
}

func TestFrame_Crop(t *testing.T) {
	f := frameOf(t, []string{"abcd", "efgh", "ijkl"}, []string{"r___", "_r__", "__r_"})
	f.crop(2, 2, 1, 1)
	want := []string{"fg", "jk"}
	if got := textOf(f); !equalLines(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
	if f.ColorCount() != 2 {
		t.Errorf("ColorCount() = %d, want 2", f.ColorCount())
	}

	g := frameOf(t, []string{"ab", "cd"}, nil)
	g.crop(-5, 0, 10, 0)
	if got := textOf(g); !equalLines(got, []string{"ab"}) {
		t.Errorf("clamped crop = %q", got)
	}
}

// ============================================================
// Print Tests
// ============================================================

func TestFrame_Print(t *testing.T) {
	f := frameOf(t, []string{"....."}, []string{"rrrrr"})
	f.Print(-1, 0, "xyz", ColorRef{})
	f.Print(4, 0, "pq", Ref(MustChar('g')))
	if got := f.TextLine(0); got != "yz..p" {
		t.Errorf("TextLine = %q", got)
	}
	if got := f.ColorLine(0); got != "rrrrg" {
		t.Errorf("ColorLine = %q", got)
	}
	f.Print(0, 5, "ignored", ColorRef{})
	checkCount(t, f)
}

func TestFrame_RemoveColor(t *testing.T) {
	f := frameOf(t, []string{"abc"}, []string{"rgr"})
	if !f.ContainsColor(MustChar('r')) || !f.ContainsText(MustChar('b')) {
		t.Fatal("Contains checks failed")
	}
	f.RemoveColor(MustChar('r'))
	if got := f.ColorLine(0); got != "_g_" {
		t.Errorf("ColorLine = %q", got)
	}
	if f.ContainsColor(MustChar('r')) {
		t.Error("r still referenced")
	}
	checkCount(t, f)
}
