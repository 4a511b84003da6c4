package art3a

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Neumenon/art3a/stream"
)

// TaglineWidth is the column limit of emitted tag lines.
const TaglineWidth = 80

// FormatOption configures Format and WriteTo.
type FormatOption func(*formatConfig)

type formatConfig struct {
	stripComments bool
}

// WithoutComments leaves every comment out of the output.
func WithoutComments() FormatOption {
	return func(c *formatConfig) {
		c.stripComments = true
	}
}

// Format returns the document in the modern dialect. A document with colored
// cells but no colors key is written with "colors yes", so the text reads
// back with the key set.
func (a *Art) Format(opts ...FormatOption) string {
	var b strings.Builder
	// strings.Builder never fails.
	_, _ = a.WriteTo(&b, opts...)
	return b.String()
}

// String returns the formatted document.
func (a *Art) String() string {
	return a.Format()
}

// WriteTo writes the document in the modern dialect. It adds "colors yes"
// the same way Format does.
func (a *Art) WriteTo(w io.Writer, opts ...FormatOption) (int64, error) {
	cfg := &formatConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	e := &emitter{w: stream.NewWriter(w), cfg: cfg}
	colored := a.HasColors()
	e.header(&a.header, colored)
	if a.attach != "" {
		e.w.WriteLine("@attach")
		e.w.WriteLine(a.attach)
		e.w.WriteLine("")
	}
	for _, b := range a.blocks {
		e.w.WriteLine("@" + b.Name)
		e.w.WriteString(b.Content)
		e.w.WriteLine("")
	}
	e.frames(&a.frames, colored)
	err := e.w.Flush()
	return e.w.Count(), err
}

// WriteFile writes the document to path.
func (a *Art) WriteFile(path string, opts ...FormatOption) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := a.WriteTo(f, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type emitter struct {
	w   *stream.Writer
	cfg *formatConfig
}

func (e *emitter) comments(list []string) {
	if e.cfg.stripComments {
		return
	}
	for _, c := range list {
		if c == "" {
			e.w.WriteLine(";;")
		} else {
			e.w.WriteLine(";; " + c)
		}
	}
}

func (e *emitter) text(key string, k *Keyed[string]) {
	if k == nil {
		return
	}
	e.comments(k.Comments)
	e.w.WriteLine(key + " " + k.Value)
}

func flag(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func (e *emitter) header(h *Header, colored bool) {
	e.w.WriteLine(Marker)
	e.text("title", h.Title)
	for i := range h.OrigAuthors {
		e.text("orig-author", &h.OrigAuthors[i])
	}
	for i := range h.Authors {
		e.text("author", &h.Authors[i])
	}
	e.text("src", h.Src)
	e.text("editor", h.Editor)
	e.text("license", h.License)
	if h.Delay != nil {
		e.comments(h.Delay.Comments)
		e.w.WriteLine("delay " + h.Delay.Value.String())
	}
	if h.Loop != nil {
		e.comments(h.Loop.Comments)
		e.w.WriteLine("loop " + flag(h.Loop.Value))
	}
	if h.Preview != nil {
		e.comments(h.Preview.Comments)
		e.w.WriteLine("preview " + strconv.Itoa(h.Preview.Value))
	}
	switch {
	case h.Colors != nil:
		e.comments(h.Colors.Comments)
		e.w.WriteLine("colors " + flag(h.Colors.Value))
	case colored:
		// The reader only expects color lines after an explicit key.
		e.w.WriteLine("colors yes")
	}
	for _, entry := range h.Palette.entries {
		e.comments(entry.Comments)
		line := "col " + entry.Name.String()
		if p := entry.Pair.String(); p != "" {
			line += " " + p
		}
		e.w.WriteLine(line)
	}
	for _, tl := range h.Taglines {
		e.tagline(tl)
	}
	for _, k := range h.Extra {
		e.comments(k.Comments)
		e.w.WriteLine(k.Value)
	}
	e.comments(h.Comments)
	e.w.WriteLine("")
}

// tagline writes "#tag" tokens wrapped before TaglineWidth columns.
func (e *emitter) tagline(tl Tagline) {
	if len(tl.Tags) == 0 {
		return
	}
	e.comments(tl.Comments)
	var line strings.Builder
	for _, tag := range tl.Tags {
		tok := "#" + tag
		if line.Len() > 0 && line.Len()+1+len(tok) >= TaglineWidth {
			e.w.WriteLine(line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(tok)
	}
	e.w.WriteLine(line.String())
}

// frames writes the pins and the body. Shared channels are written once,
// in a pin block.
func (e *emitter) frames(fs *Frames, colored bool) {
	if fs.Len() == 0 {
		return
	}
	textPinned, colorPinned := fs.Pinned()
	format := lineText
	switch {
	case !colored:
	case colorPinned:
		e.w.WriteLine("@color-pin")
		e.frame(fs.frames[0], lineColor)
		e.w.WriteLine("")
	case textPinned:
		e.w.WriteLine("@text-pin")
		e.frame(fs.frames[0], lineText)
		e.w.WriteLine("")
		format = lineColor
	default:
		format = lineBoth
	}
	e.w.WriteLine("@body")
	for _, f := range fs.frames {
		e.frame(f, format)
		e.w.WriteLine("")
	}
}

func (e *emitter) frame(f *Frame, format lineFormat) {
	rs := make([]rune, 0, 2*f.Width())
	for _, row := range f.rows {
		rs = rs[:0]
		if format != lineColor {
			for _, c := range row {
				rs = append(rs, c.Text.Rune())
			}
		}
		if format != lineText {
			for _, c := range row {
				rs = append(rs, c.Color.Char().Rune())
			}
		}
		e.w.WriteRunes(rs)
	}
}
