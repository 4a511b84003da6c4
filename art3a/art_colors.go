package art3a

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/rangetable"
)

// ColorMap returns the color pair of name.
func (a *Art) ColorMap(name Char) ColorPair { return a.header.Palette.Get(name) }

// SetColorMap maps name to pair.
func (a *Art) SetColorMap(name Char, pair ColorPair) error {
	return a.header.Palette.Set(name, pair)
}

// RemoveColorMap removes the palette entry of name and clears every cell
// referencing it.
func (a *Art) RemoveColorMap(name Char) {
	a.header.Palette.Remove(name)
	a.frames.RemoveColor(name)
}

// SearchColorMap returns the name mapped to pair.
func (a *Art) SearchColorMap(pair ColorPair) (Char, bool) {
	return a.header.Palette.Search(pair)
}

// SearchOrCreateColorMap returns the name mapped to pair, allocating a free
// name when there is none.
func (a *Art) SearchOrCreateColorMap(pair ColorPair) Char {
	if name, ok := a.header.Palette.Search(pair); ok {
		return name
	}
	name := a.FreeColorName()
	// FreeColorName never hands out "_" or a space, so Set cannot fail.
	_ = a.header.Palette.Set(name, pair)
	return name
}

// ContainsColor reports whether name has a palette entry or is used by a
// frame.
func (a *Art) ContainsColor(name Char) bool {
	return a.header.Palette.Contains(name) || a.frames.ContainsColor(name)
}

// UsedColorNames returns the set of names with a palette entry or used by a
// frame.
func (a *Art) UsedColorNames() map[Char]struct{} {
	used := make(map[Char]struct{})
	for _, e := range a.header.Palette.entries {
		used[e.Name] = struct{}{}
	}
	a.frames.colorNames(used)
	for name := range a.reserved {
		used[name] = struct{}{}
	}
	return used
}

// Candidate names of FreeColorName, best first. Letters come before the
// built-in digits so that allocated names do not shadow them.
const (
	niceASCII   = "ghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^`{|}~"
	niceSymbols = "№¢£¥€°±÷¶§µ•…¬≈≠≤≥∞∆∂∑∏∫√"
)

var (
	candidatesOnce sync.Once
	candidates     []rune
)

// colorNameCandidates returns the curated name list: ASCII letters and
// punctuation, the built-in names, some common symbols, then every
// single-width character of the Unicode math symbol, other symbol and
// other letter categories.
func colorNameCandidates() []rune {
	candidatesOnce.Do(func() {
		seen := make(map[rune]bool)
		add := func(r rune) {
			if seen[r] || r == '_' || r == ' ' {
				return
			}
			if v, ok := Check(r); !ok || v != r {
				return
			}
			seen[r] = true
			candidates = append(candidates, r)
		}
		for _, s := range []string{niceASCII, punctuation, builtinNames, niceSymbols} {
			for _, r := range s {
				add(r)
			}
		}
		symbols := rangetable.Merge(unicode.Sm, unicode.So, unicode.Lo)
		rangetable.Visit(symbols, func(r rune) {
			if runewidth.RuneWidth(r) == 1 {
				add(r)
			}
		})
	})
	return candidates
}

// FreeColorName returns a color name that has no palette entry and is not
// used by any frame. It tries the curated candidates first and then every
// Unicode scalar value. It panics when every valid character is in use.
func (a *Art) FreeColorName() Char {
	used := a.UsedColorNames()
	for _, r := range colorNameCandidates() {
		if _, taken := used[Char{r}]; !taken {
			return Char{r}
		}
	}
	for r := rune(0); r <= utf8.MaxRune; r++ {
		if r >= 0xd800 && r <= 0xdfff {
			continue
		}
		v, ok := Check(r)
		if !ok || v != r || r == '_' || r == ' ' {
			continue
		}
		if _, taken := used[Char{r}]; !taken {
			return Char{r}
		}
	}
	panic(fmt.Sprintf("art3a: no free color name left among %d used names", len(used)))
}

// SetPalette replaces the palette entries with pairs, keeping the minimal
// form. Existing comments of kept names are preserved.
func (a *Art) SetPalette(pairs map[Char]ColorPair) error {
	for name := range pairs {
		if err := checkColorName(name); err != nil {
			return err
		}
	}
	old := a.header.Palette
	a.header.Palette = Palette{}
	for _, e := range old.entries {
		if pair, ok := pairs[e.Name]; ok {
			_ = a.header.Palette.Set(e.Name, pair)
			a.header.Palette.SetComments(e.Name, e.Comments)
		}
	}
	for _, name := range sortedChars(pairs) {
		if !old.Contains(name) {
			_ = a.header.Palette.Set(name, pairs[name])
		}
	}
	return nil
}

// sortedChars returns the keys of m in code point order.
func sortedChars[V any](m map[Char]V) []Char {
	out := slices.Collect(maps.Keys(m))
	slices.SortFunc(out, func(x, y Char) int { return cmp.Compare(x.Rune(), y.Rune()) })
	return out
}

// RemovePalette drops every explicit palette entry. Cells keep their
// references, which fall back to the built-in colors.
func (a *Art) RemovePalette() {
	a.header.Palette.Clear()
}
