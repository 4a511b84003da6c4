package art3a

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Char is a validated character. The zero value is a space.
//
// A Char never holds a control character, a combining mark, a zero-width or
// bidi control, or a surrogate. Whitespace variants are stored as U+0020.
type Char struct {
	r rune // 0 stands for U+0020
}

var (
	// Space is the blank text character.
	Space = Char{}
	// Underscore is the "no color" marker of color channels.
	Underscore = Char{'_'}
)

// Check applies the character allow-list to r. It returns the normalized
// rune and true, or 0 and false when r is rejected.
func Check(r rune) (rune, bool) {
	switch {
	case r == ' ', r == '\t', r == 0x180e, r == 0xa0, r == 0x1680,
		r >= 0x2000 && r <= 0x200a, r == 0x202f, r == 0x205f, r == 0x3000:
		return ' ', true
	case r < 0x20,
		r == 0x7f, r == 0x81, r == 0x8d, r == 0x8f, r == 0x90, r == 0x9d,
		r >= 0x300 && r <= 0x36f,
		r >= 0x200b && r <= 0x200f, r == 0xfeff,
		r >= 0xfe00 && r <= 0xfe0f,
		r >= 0x202a && r <= 0x202e,
		r >= 0x2066 && r <= 0x2069,
		r >= 0xd800 && r <= 0xdfff,
		r > utf8.MaxRune:
		return 0, false
	}
	return r, true
}

// NewChar validates r.
func NewChar(r rune) (Char, error) {
	v, ok := Check(r)
	if !ok {
		return Char{}, fmt.Errorf("%w: %U", ErrDisallowedChar, r)
	}
	return charOf(v), nil
}

// MustChar is like NewChar but panics on a disallowed rune.
func MustChar(r rune) Char {
	c, err := NewChar(r)
	if err != nil {
		panic(err)
	}
	return c
}

// CharOr validates r and returns def when r is disallowed.
func CharOr(r rune, def Char) Char {
	if v, ok := Check(r); ok {
		return charOf(v)
	}
	return def
}

// ParseChar parses a string holding exactly one allowed character.
func ParseChar(s string) (Char, error) {
	if utf8.RuneCountInString(s) != 1 {
		return Char{}, fmt.Errorf("%w: %q", ErrCharCount, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && s != string(utf8.RuneError) {
		return Char{}, fmt.Errorf("%w: invalid UTF-8 %q", ErrDisallowedChar, s)
	}
	return NewChar(r)
}

func charOf(r rune) Char {
	if r == ' ' {
		return Char{}
	}
	return Char{r}
}

// Rune returns the character as a rune.
func (c Char) Rune() rune {
	if c.r == 0 {
		return ' '
	}
	return c.r
}

func (c Char) String() string {
	return string(c.Rune())
}

// IsSpace reports whether c is the blank character.
func (c Char) IsSpace() bool {
	return c.r == 0
}

// Width returns the display width of c in terminal cells.
func (c Char) Width() int {
	return runewidth.RuneWidth(c.Rune())
}

// NormalizeText applies the allow-list to every rune of s. Rejected runes are
// dropped and whitespace variants become U+0020. Invalid UTF-8 is dropped.
func NormalizeText(s string) string {
	clean := true
	for _, r := range s {
		if v, ok := Check(r); !ok || v != r || r == utf8.RuneError {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				continue
			}
		}
		if v, ok := Check(r); ok {
			b.WriteRune(v)
		}
	}
	return b.String()
}

// textChars converts a normalized line to characters.
func textChars(s string) []Char {
	out := make([]Char, 0, len(s))
	for _, r := range NormalizeText(s) {
		out = append(out, charOf(r))
	}
	return out
}
