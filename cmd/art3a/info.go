package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/Neumenon/art3a/art3a"
	"github.com/Neumenon/art3a/stream"
)

// infoJSON describes a document as JSON.
func infoJSON(a *art3a.Art) ([]byte, error) {
	doc := []byte(`{}`)
	var err error
	set := func(path string, v any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, v)
	}

	if title, ok := a.Title(); ok {
		set("title", title)
	}
	set("authors", nonNil(a.Authors()))
	set("orig_authors", nonNil(a.OrigAuthors()))
	set("frames", a.Frames())
	set("width", a.Width())
	set("height", a.Height())
	set("colors", a.HasColors())
	set("loop", a.Loop())
	set("delay", a.GlobalDelay())
	set("duration_ms", a.Duration())
	if p, ok := a.Preview(); ok {
		set("preview", p)
	}
	set("tags", nonNil(a.Tags()))
	set("palette", []any{})
	for _, e := range a.Header().Palette.Entries() {
		set("palette.-1", map[string]string{"name": e.Name.String(), "pair": e.Pair.String()})
	}
	if a.Attachment() != "" {
		set("attachment", a.Attachment())
	}
	var blocks []string
	for _, b := range a.Blocks() {
		blocks = append(blocks, b.Name)
	}
	set("blocks", nonNil(blocks))
	set("fingerprint", stream.HashToHex(a.Fingerprint()))
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// writeInfo prints one "key: value" line per top-level field.
func writeInfo(w io.Writer, doc []byte) {
	gjson.ParseBytes(doc).ForEach(func(key, value gjson.Result) bool {
		switch {
		case key.String() == "palette":
			for _, e := range value.Array() {
				fmt.Fprintf(w, "%-13s %s %s\n", "col:", e.Get("name").String(), e.Get("pair").String())
			}
		case value.IsArray():
			var parts []string
			for _, v := range value.Array() {
				parts = append(parts, v.String())
			}
			fmt.Fprintf(w, "%-13s %s\n", key.String()+":", strings.Join(parts, ", "))
		default:
			fmt.Fprintf(w, "%-13s %s\n", key.String()+":", value.String())
		}
		return true
	})
}

// lookupInfo returns the field at a gjson path.
func lookupInfo(doc []byte, path string) (string, bool) {
	r := gjson.GetBytes(doc, path)
	if !r.Exists() {
		return "", false
	}
	return r.String(), true
}
