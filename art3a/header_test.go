package art3a

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/Neumenon/art3a/stream"
)

func readHeaderString(t *testing.T, s string) (*Header, error) {
	t.Helper()
	return readHeader(stream.NewReader(strings.NewReader(s)))
}

// ============================================================
// Modern Header Tests
// ============================================================

const modernHeader = `@3a
;; about the title
title  Cat
author ann
author bob
author ann
#one #two
#two #three
;; new line
#four
delay 80 1:200
loop no
preview 1
col r fg:red bg:blue
foo bar  baz
;; trailing

`

func TestReadHeader_Modern(t *testing.T) {
	h, err := readHeaderString(t, modernHeader)
	if err != nil {
		t.Fatalf("readHeader failed: %v", err)
	}
	if h.Legacy != nil {
		t.Error("modern header marked as legacy")
	}

	if title, ok := h.TitleKey(); !ok || title != "Cat" {
		t.Errorf("title = %q, %v", title, ok)
	}
	if !slices.Equal(h.Title.Comments, []string{"about the title"}) {
		t.Errorf("title comments = %q", h.Title.Comments)
	}
	if got := h.AuthorNames(); !slices.Equal(got, []string{"ann", "bob"}) {
		t.Errorf("authors = %q", got)
	}

	if len(h.Taglines) != 2 {
		t.Fatalf("taglines = %+v", h.Taglines)
	}
	if !slices.Equal(h.Taglines[0].Tags, []string{"one", "two", "three"}) {
		t.Errorf("first tagline = %q", h.Taglines[0].Tags)
	}
	if !slices.Equal(h.Taglines[1].Tags, []string{"four"}) || !slices.Equal(h.Taglines[1].Comments, []string{"new line"}) {
		t.Errorf("second tagline = %+v", h.Taglines[1])
	}

	if d := h.DelayValue(); d.GlobalMillis() != 80 || d.FrameMillis(1) != 200 {
		t.Errorf("delay = %q", d.String())
	}
	if h.LoopValue() {
		t.Error("loop should be false")
	}
	if h.Preview == nil || h.Preview.Value != 1 {
		t.Errorf("preview = %+v", h.Preview)
	}

	pair := h.Palette.Get(MustChar('r'))
	if pair.FG != FourBit(Red, false) || pair.BG != FourBit(Blue, false) {
		t.Errorf("col r = %q", pair.String())
	}
	if h.HasColors() {
		t.Error("palette alone should not enable the color channel")
	}

	if v, ok := h.ExtraKey("foo"); !ok || v != "bar  baz" {
		t.Errorf("extra foo = %q, %v", v, ok)
	}
	if len(h.Extra) != 1 || h.Extra[0].Value != "foo bar  baz" {
		t.Errorf("extra lines = %+v", h.Extra)
	}
	if !slices.Equal(h.Comments, []string{"trailing"}) {
		t.Errorf("trailing comments = %q", h.Comments)
	}
}

func TestReadHeader_Empty(t *testing.T) {
	if _, err := readHeaderString(t, ""); err == nil {
		t.Error("expected io.EOF for empty input")
	}
}

func TestReadHeader_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
		line int
	}{
		{"dup title", "@3a\ntitle a\ntitle b\n", ErrHeaderKeyDup, 3},
		{"dup loop", "@3a\nloop yes\nloop no\n", ErrHeaderKeyDup, 3},
		{"no value", "@3a\ntitle\n", ErrHeaderKeyNoValue, 2},
		{"bad flag", "@3a\nloop maybe\n", ErrFlagParse, 2},
		{"bad preview", "@3a\npreview -1\n", ErrNumberParse, 2},
		{"bad delay", "@3a\ndelay fast\n", ErrDelayParse, 2},
		{"dup palette", "@3a\ncol r fg:red\ncol r fg:blue\n", ErrColorMapDup, 3},
		{"reserved name", "@3a\ncol _ fg:red\n", ErrColorName, 2},
		{"long name", "@3a\ncol ab fg:red\n", ErrCharCount, 2},
		{"bad pair", "@3a\ncol r fg:red fg:red\n", ErrColorDup, 2},
		{"bad legacy colors", "colors rainbow\n", ErrLegacyColors, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readHeaderString(t, tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %v is not a ParseError", err)
			}
			if pe.Line != tt.line {
				t.Errorf("line = %d, want %d", pe.Line, tt.line)
			}
		})
	}
}

func TestReadHeader_CRLF(t *testing.T) {
	h, err := readHeaderString(t, "@3a\r\ntitle T\r\ncolors yes\r\n\r\n")
	if err != nil {
		t.Fatal(err)
	}
	if title, _ := h.TitleKey(); title != "T" {
		t.Errorf("title = %q", title)
	}
	if !h.HasColors() {
		t.Error("colors yes not applied")
	}
}

// ============================================================
// Legacy Header Tests
// ============================================================

func TestReadHeader_Legacy(t *testing.T) {
	in := "width 3\nheight 2\ncolors fg\tfg only\ntitle Old\n@ a comment\nutf8\n#tag\nspeed 5\n\nbody"
	h, err := readHeaderString(t, in)
	if err != nil {
		t.Fatalf("readHeader failed: %v", err)
	}
	if h.Legacy == nil {
		t.Fatal("legacy info missing")
	}
	want := LegacyInfo{Width: 3, Height: 2, Colors: LegacyColorsFG}
	if *h.Legacy != want {
		t.Errorf("legacy = %+v, want %+v", *h.Legacy, want)
	}
	if !h.HasColors() {
		t.Error("legacy fg mode should enable colors")
	}
	if title, _ := h.TitleKey(); title != "Old" {
		t.Errorf("title = %q", title)
	}
	if len(h.Taglines) != 1 || !slices.Equal(h.Taglines[0].Comments, []string{"a comment"}) {
		t.Errorf("taglines = %+v", h.Taglines)
	}
	if v, ok := h.ExtraKey("speed"); !ok || v != "5" {
		t.Errorf("extra speed = %q, %v", v, ok)
	}
}

func TestParseLegacyColorMode(t *testing.T) {
	for _, m := range []LegacyColorMode{LegacyColorsNone, LegacyColorsFG, LegacyColorsBG, LegacyColorsFull} {
		got, err := ParseLegacyColorMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseLegacyColorMode(%q) = %v, %v", m.String(), got, err)
		}
	}
}

// ============================================================
// Header Editing Tests
// ============================================================

func TestHeader_TitleLine(t *testing.T) {
	var h Header
	if got := h.TitleLine(); got != "" {
		t.Errorf("empty TitleLine = %q", got)
	}
	h.AddAuthor("bob")
	if got := h.TitleLine(); got != "art by bob" {
		t.Errorf("TitleLine = %q", got)
	}
	h.SetTitle(" Cat\t")
	h.AddOrigAuthor("ann")
	h.AddAuthor("bob")
	if got := h.TitleLine(); got != "Cat by ann, bob" {
		t.Errorf("TitleLine = %q", got)
	}
}

func TestHeader_Loop(t *testing.T) {
	var h Header
	if !h.LoopValue() {
		t.Error("default loop should be true")
	}
	h.SetLoop(false)
	if h.Loop == nil || h.LoopValue() {
		t.Error("SetLoop(false) should store the key")
	}
	h.SetLoop(true)
	if h.Loop != nil {
		t.Error("SetLoop(true) should drop an uncommented key")
	}
}

func TestHeader_Tags(t *testing.T) {
	var h Header
	for _, tag := range []string{"cat", "#dog", "cat"} {
		if err := h.AddTag(tag); err != nil {
			t.Fatalf("AddTag(%q) failed: %v", tag, err)
		}
	}
	if got := h.Tags(); !slices.Equal(got, []string{"cat", "dog"}) {
		t.Errorf("tags = %q", got)
	}
	if !h.ContainsTag("#dog") {
		t.Error("ContainsTag(#dog) = false")
	}
	for _, bad := range []string{"", "two words", "a#b"} {
		if err := h.AddTag(bad); !errors.Is(err, ErrTag) {
			t.Errorf("AddTag(%q) error = %v, want ErrTag", bad, err)
		}
	}

	h.RemoveTag("cat")
	h.RemoveTag("dog")
	if len(h.Taglines) != 0 {
		t.Errorf("empty taglines kept: %+v", h.Taglines)
	}
}

func TestHeader_ExtraKeys(t *testing.T) {
	var h Header
	if err := h.SetExtraKey("speed", "5"); err != nil {
		t.Fatal(err)
	}
	if err := h.SetExtraKey("speed", "7"); err != nil {
		t.Fatal(err)
	}
	if v, _ := h.ExtraKey("speed"); v != "7" || len(h.Extra) != 1 {
		t.Errorf("speed = %q, %d lines", v, len(h.Extra))
	}
	for _, bad := range []string{"title", "", "#x", "a b"} {
		if err := h.SetExtraKey(bad, "v"); err == nil {
			t.Errorf("SetExtraKey(%q) succeeded", bad)
		}
	}
	h.RemoveExtraKey("speed")
	if _, ok := h.ExtraKey("speed"); ok {
		t.Error("speed still present")
	}
}

func TestHeader_StripComments(t *testing.T) {
	h, err := readHeaderString(t, modernHeader)
	if err != nil {
		t.Fatal(err)
	}
	h.StripComments()
	if h.Title.Comments != nil || h.Comments != nil || h.Taglines[1].Comments != nil {
		t.Error("comments left after StripComments")
	}
}
