package art3a

import (
	"fmt"
)

// PaletteEntry maps a color character to a color pair.
type PaletteEntry struct {
	Name     Char
	Pair     ColorPair
	Comments []string
}

// Palette is an insertion-ordered map from color characters to color pairs.
//
// Lookups of characters without an explicit entry fall back to the built-in
// colors. Set keeps the map minimal: an entry equal to the built-in default
// is removed instead of stored. The zero value is an empty palette.
type Palette struct {
	entries []PaletteEntry
	index   map[Char]int
}

func checkColorName(name Char) error {
	if name == Underscore || name == Space {
		return fmt.Errorf("%w: %q", ErrColorName, name.String())
	}
	return nil
}

// Len returns the number of explicit entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the explicit entries in insertion order.
func (p *Palette) Entries() []PaletteEntry {
	out := make([]PaletteEntry, len(p.entries))
	for i, e := range p.entries {
		e.Comments = append([]string(nil), e.Comments...)
		out[i] = e
	}
	return out
}

// Get returns the color pair of name.
func (p *Palette) Get(name Char) ColorPair {
	if i, ok := p.index[name]; ok {
		return p.entries[i].Pair
	}
	return BuiltinPair(name)
}

// Lookup returns the explicit entry of name.
func (p *Palette) Lookup(name Char) (PaletteEntry, bool) {
	if i, ok := p.index[name]; ok {
		return p.entries[i], true
	}
	return PaletteEntry{}, false
}

// Contains reports whether name has an explicit entry.
func (p *Palette) Contains(name Char) bool {
	_, ok := p.index[name]
	return ok
}

// Set maps name to pair. An existing entry keeps its position and comments.
// Setting the built-in default removes the entry.
func (p *Palette) Set(name Char, pair ColorPair) error {
	if err := checkColorName(name); err != nil {
		return err
	}
	if pair == BuiltinPair(name) {
		p.Remove(name)
		return nil
	}
	if i, ok := p.index[name]; ok {
		p.entries[i].Pair = pair
		return nil
	}
	p.append(PaletteEntry{Name: name, Pair: pair})
	return nil
}

// add inserts a parsed entry as is. Parsed entries are not minimized so that
// a document survives a round trip unchanged.
func (p *Palette) add(e PaletteEntry) error {
	if err := checkColorName(e.Name); err != nil {
		return err
	}
	if p.Contains(e.Name) {
		return fmt.Errorf("%w: %q", ErrColorMapDup, e.Name.String())
	}
	p.append(e)
	return nil
}

func (p *Palette) append(e PaletteEntry) {
	if p.index == nil {
		p.index = make(map[Char]int)
	}
	p.index[e.Name] = len(p.entries)
	p.entries = append(p.entries, e)
}

// SetComments replaces the comments of an explicit entry.
func (p *Palette) SetComments(name Char, comments []string) bool {
	i, ok := p.index[name]
	if !ok {
		return false
	}
	p.entries[i].Comments = comments
	return true
}

// Remove deletes the explicit entry of name. Order of the remaining entries
// is kept.
func (p *Palette) Remove(name Char) bool {
	i, ok := p.index[name]
	if !ok {
		return false
	}
	p.entries = append(p.entries[:i], p.entries[i+1:]...)
	delete(p.index, name)
	for j := i; j < len(p.entries); j++ {
		p.index[p.entries[j].Name] = j
	}
	return true
}

// Search returns the first explicit entry mapped to pair, in insertion
// order, then the first built-in name whose default is pair and that is not
// overridden.
func (p *Palette) Search(pair ColorPair) (Char, bool) {
	for _, e := range p.entries {
		if e.Pair == pair {
			return e.Name, true
		}
	}
	if pair.IsNone() {
		return Char{}, false
	}
	for _, r := range builtinNames {
		c := Char{r}
		if !p.Contains(c) && BuiltinPair(c) == pair {
			return c, true
		}
	}
	return Char{}, false
}

// StripComments drops the comments of every entry.
func (p *Palette) StripComments() {
	for i := range p.entries {
		p.entries[i].Comments = nil
	}
}

// Clear removes every explicit entry.
func (p *Palette) Clear() {
	p.entries = nil
	p.index = nil
}
