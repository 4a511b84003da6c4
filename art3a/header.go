package art3a

import (
	"fmt"
	"slices"
	"strings"
)

// Keyed is a header value with the comment lines written above its key.
type Keyed[T any] struct {
	Value    T
	Comments []string
}

// Tagline is one or more "#tag" lines sharing their comments.
type Tagline struct {
	Tags     []string
	Comments []string
}

// LegacyColorMode says which color channels a legacy body carries.
type LegacyColorMode uint8

const (
	LegacyColorsNone LegacyColorMode = iota
	LegacyColorsFG
	LegacyColorsBG
	LegacyColorsFull
)

// String returns the header token of the mode.
func (m LegacyColorMode) String() string {
	switch m {
	case LegacyColorsNone:
		return "none"
	case LegacyColorsFG:
		return "fg"
	case LegacyColorsBG:
		return "bg"
	case LegacyColorsFull:
		return "full"
	default:
		return fmt.Sprintf("mode(%d)", m)
	}
}

// ParseLegacyColorMode parses none, fg, bg or full.
func ParseLegacyColorMode(s string) (LegacyColorMode, error) {
	switch s {
	case "none":
		return LegacyColorsNone, nil
	case "fg":
		return LegacyColorsFG, nil
	case "bg":
		return LegacyColorsBG, nil
	case "full":
		return LegacyColorsFull, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrLegacyColors, s)
}

// LegacyInfo describes the body of a legacy document.
type LegacyInfo struct {
	Width  int
	Height int
	Colors LegacyColorMode
}

// Header is the metadata of a document.
//
// Optional keys are nil when absent. Extra holds keys the codec does not
// know, as whole lines, so they survive a round trip.
type Header struct {
	Title       *Keyed[string]
	Authors     []Keyed[string]
	OrigAuthors []Keyed[string]
	Src         *Keyed[string]
	Editor      *Keyed[string]
	License     *Keyed[string]
	Delay       *Keyed[*Delay]
	Loop        *Keyed[bool]
	Preview     *Keyed[int]
	Colors      *Keyed[bool]
	Palette     Palette
	Taglines    []Tagline
	Extra       []Keyed[string]

	// Comments found after the last key.
	Comments []string

	// Legacy is set when the document was read from the legacy dialect.
	Legacy *LegacyInfo
}

func headerValue(s string) string {
	return strings.TrimSpace(NormalizeText(s))
}

// setText stores s in the key. An empty value removes the key, since a key
// without a value cannot be written.
func setText(k **Keyed[string], s string) {
	s = headerValue(s)
	if s == "" {
		*k = nil
		return
	}
	if *k == nil {
		*k = &Keyed[string]{}
	}
	(*k).Value = s
}

func getText(k *Keyed[string]) (string, bool) {
	if k == nil {
		return "", false
	}
	return k.Value, true
}

// TitleKey returns the title key.
func (h *Header) TitleKey() (string, bool) { return getText(h.Title) }

// SetTitle sets the title. Comments of an existing key are kept. An empty
// title removes the key.
func (h *Header) SetTitle(s string) { setText(&h.Title, s) }

// SrcKey returns the src key.
func (h *Header) SrcKey() (string, bool) { return getText(h.Src) }

// SetSrc sets the src key.
func (h *Header) SetSrc(s string) { setText(&h.Src, s) }

// EditorKey returns the editor key.
func (h *Header) EditorKey() (string, bool) { return getText(h.Editor) }

// SetEditor sets the editor key.
func (h *Header) SetEditor(s string) { setText(&h.Editor, s) }

// LicenseKey returns the license key.
func (h *Header) LicenseKey() (string, bool) { return getText(h.License) }

// SetLicense sets the license key.
func (h *Header) SetLicense(s string) { setText(&h.License, s) }

func names(list []Keyed[string]) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Value
	}
	return out
}

// addName appends name unless present, in which case the comments are
// appended to the existing entry.
func addName(list []Keyed[string], name string, comments []string) []Keyed[string] {
	for i := range list {
		if list[i].Value == name {
			list[i].Comments = append(list[i].Comments, comments...)
			return list
		}
	}
	return append(list, Keyed[string]{Value: name, Comments: comments})
}

// AuthorNames returns the authors in order.
func (h *Header) AuthorNames() []string { return names(h.Authors) }

// AddAuthor adds an author unless already listed.
func (h *Header) AddAuthor(name string) {
	if name = headerValue(name); name != "" {
		h.Authors = addName(h.Authors, name, nil)
	}
}

// OrigAuthorNames returns the original authors in order.
func (h *Header) OrigAuthorNames() []string { return names(h.OrigAuthors) }

// AddOrigAuthor adds an original author unless already listed.
func (h *Header) AddOrigAuthor(name string) {
	if name = headerValue(name); name != "" {
		h.OrigAuthors = addName(h.OrigAuthors, name, nil)
	}
}

// TitleLine returns "<title> by <authors>", "art by <authors>", the title
// alone, or "".
func (h *Header) TitleLine() string {
	authors := h.AuthorsLine()
	title, hasTitle := h.TitleKey()
	switch {
	case hasTitle && authors != "":
		return title + " by " + authors
	case hasTitle:
		return title
	case authors != "":
		return "art by " + authors
	}
	return ""
}

// AuthorsLine returns original authors and authors joined with ", ".
func (h *Header) AuthorsLine() string {
	all := append(h.OrigAuthorNames(), h.AuthorNames()...)
	return strings.Join(all, ", ")
}

// LoopValue returns the loop flag. Animations loop by default.
func (h *Header) LoopValue() bool {
	if h.Loop == nil {
		return true
	}
	return h.Loop.Value
}

// SetLoop sets the loop flag. The key is only kept when it changes the
// default or carries comments.
func (h *Header) SetLoop(loop bool) {
	if h.Loop != nil && len(h.Loop.Comments) > 0 {
		h.Loop.Value = loop
		return
	}
	if loop {
		h.Loop = nil
		return
	}
	h.Loop = &Keyed[bool]{Value: false}
}

// ColorsKey returns the explicit colors flag.
func (h *Header) ColorsKey() (bool, bool) {
	if h.Colors == nil {
		return false, false
	}
	return h.Colors.Value, true
}

// SetColorsKey sets the colors flag.
func (h *Header) SetColorsKey(on bool) {
	if h.Colors == nil {
		h.Colors = &Keyed[bool]{}
	}
	h.Colors.Value = on
}

// RemoveColorsKey removes the colors flag.
func (h *Header) RemoveColorsKey() { h.Colors = nil }

// HasColors reports whether the body carries a color channel: the colors
// key when present, else a legacy colors mode. Palette entries alone do not
// switch the body layout.
func (h *Header) HasColors() bool {
	if h.Colors != nil {
		return h.Colors.Value
	}
	if h.Legacy != nil {
		return h.Legacy.Colors != LegacyColorsNone
	}
	return false
}

// delay returns the delay, creating it when absent.
func (h *Header) delay() *Delay {
	if h.Delay == nil {
		h.Delay = &Keyed[*Delay]{Value: &Delay{Global: DefaultDelay}}
	}
	return h.Delay.Value
}

// DelayValue returns the delay or nil.
func (h *Header) DelayValue() *Delay {
	if h.Delay == nil {
		return nil
	}
	return h.Delay.Value
}

// ============================================================
// Tags
// ============================================================

func checkTag(tag string) (string, error) {
	tag = strings.TrimPrefix(tag, "#")
	if tag == "" || strings.ContainsAny(tag, " \t#") || NormalizeText(tag) != tag {
		return "", fmt.Errorf("%w: %q", ErrTag, tag)
	}
	return tag, nil
}

// Tags returns every tag in order.
func (h *Header) Tags() []string {
	var out []string
	for _, tl := range h.Taglines {
		out = append(out, tl.Tags...)
	}
	return out
}

// ContainsTag reports whether tag is present.
func (h *Header) ContainsTag(tag string) bool {
	tag = strings.TrimPrefix(tag, "#")
	for _, tl := range h.Taglines {
		if slices.Contains(tl.Tags, tag) {
			return true
		}
	}
	return false
}

// AddTag adds tag to the last tagline unless it is already present.
func (h *Header) AddTag(tag string) error {
	tag, err := checkTag(tag)
	if err != nil {
		return err
	}
	if h.ContainsTag(tag) {
		return nil
	}
	if len(h.Taglines) == 0 {
		h.Taglines = append(h.Taglines, Tagline{})
	}
	last := &h.Taglines[len(h.Taglines)-1]
	last.Tags = append(last.Tags, tag)
	return nil
}

// RemoveTag removes tag. Taglines left without tags are dropped.
func (h *Header) RemoveTag(tag string) {
	tag = strings.TrimPrefix(tag, "#")
	kept := h.Taglines[:0]
	for _, tl := range h.Taglines {
		tl.Tags = slices.DeleteFunc(tl.Tags, func(t string) bool { return t == tag })
		if len(tl.Tags) > 0 {
			kept = append(kept, tl)
		}
	}
	h.Taglines = kept
}

// RemoveAllTags removes every tagline.
func (h *Header) RemoveAllTags() {
	h.Taglines = nil
}

// ============================================================
// Extra Keys
// ============================================================

// ExtraKey returns the value of the first unknown key named key.
func (h *Header) ExtraKey(key string) (string, bool) {
	for _, e := range h.Extra {
		k, v, _ := strings.Cut(e.Value, " ")
		if k == key {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// SetExtraKey sets an unknown key, replacing the first line with that key.
func (h *Header) SetExtraKey(key, value string) error {
	key = headerValue(key)
	if key == "" || strings.Contains(key, " ") || isKnownKey(key) || strings.HasPrefix(key, "#") || strings.HasPrefix(key, ";;") || strings.HasPrefix(key, "@") {
		return fmt.Errorf("%w: cannot use %q as extra key", ErrHeaderKeyNoValue, key)
	}
	value = headerValue(value)
	if value == "" {
		return fmt.Errorf("%w: %q", ErrHeaderKeyNoValue, key)
	}
	line := key + " " + value
	for i, e := range h.Extra {
		if k, _, _ := strings.Cut(e.Value, " "); k == key {
			h.Extra[i].Value = line
			return nil
		}
	}
	h.Extra = append(h.Extra, Keyed[string]{Value: line})
	return nil
}

// RemoveExtraKey removes every line of an unknown key.
func (h *Header) RemoveExtraKey(key string) {
	h.Extra = slices.DeleteFunc(h.Extra, func(e Keyed[string]) bool {
		k, _, _ := strings.Cut(e.Value, " ")
		return k == key
	})
}

func isKnownKey(k string) bool {
	switch k {
	case "title", "author", "orig-author", "src", "editor", "license",
		"delay", "loop", "preview", "colors", "col":
		return true
	}
	return false
}

// StripComments drops every comment of the header.
func (h *Header) StripComments() {
	for _, k := range []*Keyed[string]{h.Title, h.Src, h.Editor, h.License} {
		if k != nil {
			k.Comments = nil
		}
	}
	for i := range h.Authors {
		h.Authors[i].Comments = nil
	}
	for i := range h.OrigAuthors {
		h.OrigAuthors[i].Comments = nil
	}
	for i := range h.Extra {
		h.Extra[i].Comments = nil
	}
	for i := range h.Taglines {
		h.Taglines[i].Comments = nil
	}
	if h.Delay != nil {
		h.Delay.Comments = nil
	}
	if h.Loop != nil {
		h.Loop.Comments = nil
		if h.Loop.Value {
			h.Loop = nil
		}
	}
	if h.Preview != nil {
		h.Preview.Comments = nil
	}
	if h.Colors != nil {
		h.Colors.Comments = nil
	}
	h.Palette.StripComments()
	h.Comments = nil
}
