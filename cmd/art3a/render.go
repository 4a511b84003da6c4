package main

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"

	"github.com/Neumenon/art3a/art3a"
)

const sgrReset = "\x1b[0m"

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// paletteNames returns the explicit palette names in order, followed by the
// used names that fall back to built-in colors.
func paletteNames(a *art3a.Art) []art3a.Char {
	var names []art3a.Char
	seen := make(map[art3a.Char]bool)
	for _, e := range a.Header().Palette.Entries() {
		names = append(names, e.Name)
		seen[e.Name] = true
	}
	var rest []art3a.Char
	for name := range a.UsedColorNames() {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	slices.SortFunc(rest, func(x, y art3a.Char) int { return cmp.Compare(x.Rune(), y.Rune()) })
	return append(names, rest...)
}

// writePalette lists every color name with its pair. With color set, each
// line starts with a swatch drawn in the pair.
func writePalette(w io.Writer, a *art3a.Art, color bool) {
	for _, name := range paletteNames(a) {
		pair := a.ColorMap(name)
		desc := pair.String()
		if desc == "" {
			desc = "(default)"
		}
		if art3a.IsBuiltin(name) && !a.Header().Palette.Contains(name) {
			desc += " (built-in)"
		}
		if color {
			fmt.Fprintf(w, "%s %s %s %s\n", pair.ANSI(), name, sgrReset, desc)
		} else {
			fmt.Fprintf(w, "%s %s\n", name, desc)
		}
	}
}

// writeFrame prints one frame. With color set, the color channel is
// rendered with SGR sequences, switching only the colors that change.
func writeFrame(w io.Writer, a *art3a.Art, frame int, color bool) error {
	f := a.Frame(frame)
	if f == nil {
		return fmt.Errorf("frame %d of %d", frame, a.Frames())
	}
	var b strings.Builder
	for row := 0; row < f.Height(); row++ {
		var prev *art3a.ColorPair
		for _, c := range f.Row(row) {
			if color {
				pair := art3a.ColorPair{}
				if name, ok := c.Color.Name(); ok {
					pair = a.ColorMap(name)
				}
				b.WriteString(pair.ANSIRel(prev))
				prev = &pair
			}
			b.WriteString(c.Text.String())
		}
		if color && prev != nil {
			b.WriteString(sgrReset)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
