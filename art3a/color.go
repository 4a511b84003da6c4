package art3a

import (
	"fmt"
	"strconv"
	"strings"
)

// Hue is one of the eight base colors of 4-bit terminals.
type Hue uint8

const (
	Black Hue = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// String returns the hue name.
func (h Hue) String() string {
	switch h {
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	default:
		return fmt.Sprintf("hue(%d)", h)
	}
}

func parseHue(s string) (Hue, bool) {
	switch s {
	case "black":
		return Black, true
	case "red":
		return Red, true
	case "green":
		return Green, true
	case "yellow":
		return Yellow, true
	case "blue":
		return Blue, true
	case "magenta":
		return Magenta, true
	case "cyan":
		return Cyan, true
	case "white":
		return White, true
	}
	return 0, false
}

// ColorKind identifies the representation of a Color.
type ColorKind uint8

const (
	KindNone    ColorKind = iota // terminal default
	KindFourBit                  // 8 hues with a bright flag
	KindIndexed                  // 256-color palette index
	KindRGB                      // true color
)

// String returns the kind name.
func (k ColorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFourBit:
		return "4bit"
	case KindIndexed:
		return "256"
	case KindRGB:
		return "rgb"
	default:
		return "unknown"
	}
}

// Color is a terminal color. The zero value is the terminal default.
// Colors are comparable with ==.
type Color struct {
	kind    ColorKind
	hue     Hue
	bright  bool
	index   uint8
	r, g, b uint8
}

// NoColor returns the terminal default color.
func NoColor() Color { return Color{} }

// FourBit returns a 4-bit color.
func FourBit(h Hue, bright bool) Color {
	return Color{kind: KindFourBit, hue: h & 7, bright: bright}
}

// Indexed returns a color of the 256-color palette.
func Indexed(n uint8) Color {
	return Color{kind: KindIndexed, index: n}
}

// RGB returns a true color.
func RGB(r, g, b uint8) Color {
	return Color{kind: KindRGB, r: r, g: g, b: b}
}

// Kind returns the color representation.
func (c Color) Kind() ColorKind { return c.kind }

// IsNone reports whether c is the terminal default.
func (c Color) IsNone() bool { return c.kind == KindNone }

// Hue returns the hue and bright flag of a 4-bit color.
func (c Color) Hue() (Hue, bool) { return c.hue, c.bright }

// Index returns the palette index of an indexed color.
func (c Color) Index() uint8 { return c.index }

// RGB returns the components of a true color.
func (c Color) RGB() (r, g, b uint8) { return c.r, c.g, c.b }

// ParseColor parses a color token.
//
// Accepted forms, case-insensitive: a hue name ("red"), a bright hue
// ("bright-red"), "gray" or "grey" (bright black), a decimal 256-color index
// of at most three digits, or exactly six hex digits.
func ParseColor(s string) (Color, error) {
	t := strings.ToLower(strings.TrimSpace(s))

	if h, ok := parseHue(t); ok {
		return FourBit(h, false), nil
	}
	if rest, ok := strings.CutPrefix(t, "bright-"); ok {
		if h, ok := parseHue(rest); ok {
			return FourBit(h, true), nil
		}
	}
	if t == "gray" || t == "grey" {
		return FourBit(Black, true), nil
	}
	if len(t) <= 3 && isDigits(t) {
		if n, err := strconv.ParseUint(t, 10, 8); err == nil {
			return Indexed(uint8(n)), nil
		}
	}
	if len(t) == 6 {
		if v, err := strconv.ParseUint(t, 16, 32); err == nil {
			return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
		}
	}
	return Color{}, fmt.Errorf("%w: %q", ErrColorParse, s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String returns the color token. The terminal default formats as "".
func (c Color) String() string {
	switch c.kind {
	case KindFourBit:
		if c.bright {
			return "bright-" + c.hue.String()
		}
		return c.hue.String()
	case KindIndexed:
		return strconv.Itoa(int(c.index))
	case KindRGB:
		return fmt.Sprintf("%02x%02x%02x", c.r, c.g, c.b)
	default:
		return ""
	}
}

// ANSI returns the SGR parameters selecting c as foreground or background,
// without the escape prefix or the final "m".
func (c Color) ANSI(fg bool) string {
	switch c.kind {
	case KindFourBit:
		base := 40
		if fg {
			base = 30
		}
		if c.bright {
			base += 60
		}
		return strconv.Itoa(base + int(c.hue))
	case KindIndexed:
		if fg {
			return "38;5;" + strconv.Itoa(int(c.index))
		}
		return "48;5;" + strconv.Itoa(int(c.index))
	case KindRGB:
		p := "48;2;"
		if fg {
			p = "38;2;"
		}
		return fmt.Sprintf("%s%d;%d;%d", p, c.r, c.g, c.b)
	default:
		if fg {
			return "39"
		}
		return "49"
	}
}

// ============================================================
// Color Pairs
// ============================================================

// ColorPair is a foreground and background color.
type ColorPair struct {
	FG Color
	BG Color
}

// IsNone reports whether both colors are the terminal default.
func (p ColorPair) IsNone() bool {
	return p.FG.IsNone() && p.BG.IsNone()
}

// Invert swaps foreground and background.
func (p ColorPair) Invert() ColorPair {
	return ColorPair{FG: p.BG, BG: p.FG}
}

// String formats the pair as "fg:<color> bg:<color>", omitting default colors.
func (p ColorPair) String() string {
	var parts []string
	if !p.FG.IsNone() {
		parts = append(parts, "fg:"+p.FG.String())
	}
	if !p.BG.IsNone() {
		parts = append(parts, "bg:"+p.BG.String())
	}
	return strings.Join(parts, " ")
}

// ParseColorPair parses space separated "fg:<color>" and "bg:<color>" tokens
// in any order. Both are optional.
func ParseColorPair(s string) (ColorPair, error) {
	var p ColorPair
	var hasFG, hasBG bool
	for _, tok := range strings.Split(s, " ") {
		if tok == "" {
			continue
		}
		key, val, _ := strings.Cut(tok, ":")
		switch strings.ToLower(key) {
		case "fg":
			if hasFG {
				return ColorPair{}, fmt.Errorf("%w: fg in %q", ErrColorDup, s)
			}
			c, err := ParseColor(val)
			if err != nil {
				return ColorPair{}, err
			}
			p.FG, hasFG = c, true
		case "bg":
			if hasBG {
				return ColorPair{}, fmt.Errorf("%w: bg in %q", ErrColorDup, s)
			}
			c, err := ParseColor(val)
			if err != nil {
				return ColorPair{}, err
			}
			p.BG, hasBG = c, true
		default:
			return ColorPair{}, fmt.Errorf("%w: unexpected token %q", ErrColorParse, tok)
		}
	}
	return p, nil
}

// ANSI returns the full SGR escape sequence selecting the pair.
func (p ColorPair) ANSI() string {
	return "\x1b[" + p.FG.ANSI(true) + ";" + p.BG.ANSI(false) + "m"
}

// ANSIRel returns the SGR sequence switching from prev to p. Only changed
// colors are emitted, and nothing at all when the pair is unchanged. A nil
// prev means the terminal state is unknown.
func (p ColorPair) ANSIRel(prev *ColorPair) string {
	if prev == nil {
		return p.ANSI()
	}
	fg := p.FG != prev.FG
	bg := p.BG != prev.BG
	switch {
	case fg && bg:
		return p.ANSI()
	case fg:
		return "\x1b[" + p.FG.ANSI(true) + "m"
	case bg:
		return "\x1b[" + p.BG.ANSI(false) + "m"
	default:
		return ""
	}
}

// ============================================================
// Built-in Colors
// ============================================================

// BuiltinColor returns the default foreground of a color character:
// 0-7 are the normal hues, 8, 9 and a-f the bright ones. Every other
// character has no default color.
func BuiltinColor(c Char) Color {
	r := c.Rune()
	switch {
	case r >= '0' && r <= '7':
		return FourBit(Hue(r-'0'), false)
	case r == '8' || r == '9':
		return FourBit(Hue(r-'8'), true)
	case r >= 'a' && r <= 'f':
		return FourBit(Hue(r-'a'+2), true)
	}
	return Color{}
}

// BuiltinPair returns the default color pair of a color character.
func BuiltinPair(c Char) ColorPair {
	return ColorPair{FG: BuiltinColor(c)}
}

// IsBuiltin reports whether c is one of the sixteen built-in color names.
func IsBuiltin(c Char) bool {
	return !BuiltinColor(c).IsNone()
}

const builtinNames = "0123456789abcdef"

// legacyColor maps a legacy color digit to the built-in name of the same
// color. Legacy files number hues in a different order. Unknown digits map
// to '_'.
func legacyColor(r rune) rune {
	const to = "042615378cae9dbf"
	if i := strings.IndexRune(builtinNames, r); i >= 0 {
		return rune(to[i])
	}
	return '_'
}
