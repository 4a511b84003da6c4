package art3a

import (
	"errors"
	"testing"
)

// ============================================================
// Color Parsing Tests
// ============================================================

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"red", FourBit(Red, false)},
		{"RED", FourBit(Red, false)},
		{"bright-cyan", FourBit(Cyan, true)},
		{"gray", FourBit(Black, true)},
		{"grey", FourBit(Black, true)},
		{"0", Indexed(0)},
		{"196", Indexed(196)},
		{"255", Indexed(255)},
		{"ff8000", RGB(0xff, 0x80, 0x00)},
		{"000000", RGB(0, 0, 0)},
		{"123456", RGB(0x12, 0x34, 0x56)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v (%v), want %v (%v)", tt.in, got, got.Kind(), tt.want, tt.want.Kind())
			}
		})
	}
}

func TestParseColor_Errors(t *testing.T) {
	for _, in := range []string{"", "256", "purple", "bright-gray", "12345", "fffffff", "gg0000"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrColorParse) {
			t.Errorf("ParseColor(%q) error = %v, want ErrColorParse", in, err)
		}
	}
}

func TestColor_StringRoundTrip(t *testing.T) {
	colors := []Color{
		FourBit(Green, false),
		FourBit(White, true),
		Indexed(7),
		Indexed(200),
		RGB(0, 0, 0),
		RGB(0xde, 0xad, 0x01),
	}
	for _, c := range colors {
		back, err := ParseColor(c.String())
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", c.String(), err)
			continue
		}
		if back != c {
			t.Errorf("round trip of %q gave %q", c.String(), back.String())
		}
	}
	if s := NoColor().String(); s != "" {
		t.Errorf("NoColor().String() = %q, want empty", s)
	}
}

// ============================================================
// ANSI Tests
// ============================================================

func TestColor_ANSI(t *testing.T) {
	tests := []struct {
		c      Color
		fg, bg string
	}{
		{NoColor(), "39", "49"},
		{FourBit(Red, false), "31", "41"},
		{FourBit(Red, true), "91", "101"},
		{FourBit(White, true), "97", "107"},
		{Indexed(42), "38;5;42", "48;5;42"},
		{RGB(1, 2, 3), "38;2;1;2;3", "48;2;1;2;3"},
	}
	for _, tt := range tests {
		if got := tt.c.ANSI(true); got != tt.fg {
			t.Errorf("%v.ANSI(fg) = %q, want %q", tt.c, got, tt.fg)
		}
		if got := tt.c.ANSI(false); got != tt.bg {
			t.Errorf("%v.ANSI(bg) = %q, want %q", tt.c, got, tt.bg)
		}
	}
}

func TestColorPair_ANSIRel(t *testing.T) {
	red := ColorPair{FG: FourBit(Red, false)}
	redOnBlue := ColorPair{FG: FourBit(Red, false), BG: FourBit(Blue, false)}
	green := ColorPair{FG: FourBit(Green, false)}

	if got := red.ANSIRel(nil); got != "\x1b[31;49m" {
		t.Errorf("ANSIRel(nil) = %q", got)
	}
	if got := red.ANSIRel(&red); got != "" {
		t.Errorf("unchanged pair should emit nothing, got %q", got)
	}
	if got := redOnBlue.ANSIRel(&red); got != "\x1b[44m" {
		t.Errorf("bg change = %q, want only bg", got)
	}
	if got := green.ANSIRel(&red); got != "\x1b[32m" {
		t.Errorf("fg change = %q, want only fg", got)
	}
	if got := green.ANSIRel(&redOnBlue); got != "\x1b[32;49m" {
		t.Errorf("both changed = %q", got)
	}
}

// ============================================================
// Color Pair Tests
// ============================================================

func TestParseColorPair(t *testing.T) {
	p, err := ParseColorPair("bg:blue fg:bright-red")
	if err != nil {
		t.Fatalf("ParseColorPair failed: %v", err)
	}
	if p.FG != FourBit(Red, true) || p.BG != FourBit(Blue, false) {
		t.Errorf("got %q", p.String())
	}
	if s := p.String(); s != "fg:bright-red bg:blue" {
		t.Errorf("String() = %q", s)
	}

	empty, err := ParseColorPair("")
	if err != nil || !empty.IsNone() {
		t.Errorf("empty pair: %v, %v", empty, err)
	}
}

func TestParseColorPair_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"fg:red fg:blue", ErrColorDup},
		{"bg:red bg:red", ErrColorDup},
		{"red", ErrColorParse},
		{"fg:nope", ErrColorParse},
		{"xx:red", ErrColorParse},
	}
	for _, tt := range tests {
		if _, err := ParseColorPair(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("ParseColorPair(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestColorPair_Invert(t *testing.T) {
	p := ColorPair{FG: FourBit(Red, false), BG: Indexed(3)}
	inv := p.Invert()
	if inv.FG != p.BG || inv.BG != p.FG {
		t.Errorf("Invert() = %q", inv.String())
	}
}

// ============================================================
// Built-in Color Tests
// ============================================================

func TestBuiltinColor(t *testing.T) {
	tests := []struct {
		name rune
		want Color
	}{
		{'0', FourBit(Black, false)},
		{'1', FourBit(Red, false)},
		{'7', FourBit(White, false)},
		{'8', FourBit(Black, true)},
		{'9', FourBit(Red, true)},
		{'a', FourBit(Green, true)},
		{'f', FourBit(White, true)},
	}
	for _, tt := range tests {
		if got := BuiltinColor(MustChar(tt.name)); got != tt.want {
			t.Errorf("BuiltinColor(%q) = %q, want %q", tt.name, got.String(), tt.want.String())
		}
	}
	for _, r := range []rune{'g', 'A', '_', ' ', '€'} {
		if IsBuiltin(MustChar(r)) {
			t.Errorf("%q should not be built in", r)
		}
	}
}

func TestLegacyColor(t *testing.T) {
	tests := map[rune]rune{
		'0': '0', '1': '4', '2': '2', '3': '6',
		'4': '1', '5': '5', '6': '3', '7': '7',
		'8': '8', 'f': 'f', ' ': '_', 'x': '_',
	}
	for in, want := range tests {
		if got := legacyColor(in); got != want {
			t.Errorf("legacyColor(%q) = %q, want %q", in, got, want)
		}
	}
}
