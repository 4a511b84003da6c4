package art3a

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Neumenon/art3a/stream"
)

// ExtraBlock is a named block the codec does not interpret. Content holds
// its lines, each terminated by "\n".
type ExtraBlock struct {
	Name    string
	Content string
}

// Art is a 3a document: header, frames, an optional attached line and extra
// blocks.
type Art struct {
	header Header
	frames Frames
	attach string
	blocks []ExtraBlock

	// reserved holds color names handed out while frames are still being
	// assembled and not yet visible in a.frames.
	reserved map[Char]struct{}
}

// New returns a document of count blank frames of width x height.
func New(width, height, count int) *Art {
	return &Art{frames: *NewFrames(width, height, count)}
}

// ============================================================
// Reading
// ============================================================

// ReadOption configures Read.
type ReadOption func(*readConfig)

type readConfig struct {
	streamOpts []stream.ReaderOption
}

// WithMaxLineLength limits the length of input lines in bytes.
func WithMaxLineLength(n int) ReadOption {
	return func(c *readConfig) {
		c.streamOpts = append(c.streamOpts, stream.WithMaxLineLength(n))
	}
}

// Read parses a document. An empty stream yields an empty document.
func Read(r io.Reader, opts ...ReadOption) (*Art, error) {
	cfg := &readConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	lr := stream.NewReader(r, cfg.streamOpts...)

	h, err := readHeader(lr)
	if err == io.EOF {
		return New(0, 0, 0), nil
	}
	if err != nil {
		return nil, lineError(lr, err)
	}

	a := &Art{header: *h}
	if h.Legacy != nil {
		err = a.readLegacyBody(lr)
	} else {
		err = a.readBlocks(lr)
	}
	if err != nil {
		return nil, lineError(lr, err)
	}
	return a, nil
}

// Parse parses a document held in a string.
func Parse(s string, opts ...ReadOption) (*Art, error) {
	return Read(strings.NewReader(s), opts...)
}

// ReadFile parses the document stored at path.
func ReadFile(path string, opts ...ReadOption) (*Art, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// readBlocks dispatches the named blocks of a modern document. @body ends at
// an empty frame, so other blocks may follow it.
func (a *Art) readBlocks(r *stream.Reader) error {
	colored := a.header.HasColors()
	seen := make(map[string]bool)
	for {
		line, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if isBlank(line) {
			continue
		}
		if !strings.HasPrefix(line, "@") {
			return lineError(r, fmt.Errorf("%w: got %q", ErrBlockExpected, line))
		}
		name := strings.TrimSpace(line[1:])
		if seen[name] {
			return lineError(r, fmt.Errorf("%w: @%s", ErrBlockDup, name))
		}
		seen[name] = true

		switch name {
		case "attach":
			attach, err := r.Next()
			if err != nil && err != io.EOF {
				return err
			}
			a.attach = attach
		case "text-pin":
			a.frames.textPin, err = readPin(r, lineText)
			if err != nil {
				return err
			}
		case "color-pin":
			if !colored {
				return lineError(r, fmt.Errorf("%w: @color-pin in a document without colors", ErrColorsMismatch))
			}
			a.frames.colorPin, err = readPin(r, lineColor)
			if err != nil {
				return err
			}
		case "body":
			format := bodyFormat(colored, a.frames.textPin != nil, a.frames.colorPin != nil)
			if err := a.frames.readBody(r, format); err != nil {
				return err
			}
		default:
			a.blocks = append(a.blocks, ExtraBlock{Name: name, Content: readBlockText(r)})
		}
	}
	return a.frames.Merge()
}

// readBlockText collects normalized lines up to a blank line.
func readBlockText(r *stream.Reader) string {
	var b strings.Builder
	for {
		line, err := r.Next()
		if err != nil || isBlank(line) {
			return b.String()
		}
		b.WriteString(NormalizeText(line))
		b.WriteByte('\n')
	}
}

func (a *Art) readLegacyBody(r *stream.Reader) error {
	info := *a.header.Legacy
	a.reserved = make(map[Char]struct{})
	frames, err := readLegacyFrames(r, info, a.legacyColor)
	a.reserved = nil
	if err != nil {
		return err
	}
	a.frames = Frames{width: info.Width, height: info.Height}
	for _, f := range frames {
		if err := a.frames.Append(f); err != nil {
			return err
		}
	}
	return nil
}

// legacyColor resolves a legacy fg/bg digit pair to a palette entry.
// Foreground digits use the legacy hue order.
func (a *Art) legacyColor(fg, bg rune) ColorRef {
	var pair ColorPair
	if c := legacyColor(fg); c != '_' {
		pair.FG = BuiltinColor(Char{c})
	}
	if c := legacyColor(bg); c != '_' {
		pair.BG = BuiltinColor(Char{c})
	}
	if pair.IsNone() {
		return ColorRef{}
	}
	name := a.SearchOrCreateColorMap(pair)
	a.reserved[name] = struct{}{}
	return Ref(name)
}

// ============================================================
// Queries
// ============================================================

// Header returns the document header.
func (a *Art) Header() *Header { return &a.header }

// Body returns the frames.
func (a *Art) Body() *Frames { return &a.frames }

// Frames returns the number of frames.
func (a *Art) Frames() int { return a.frames.Len() }

// Width returns the frame width.
func (a *Art) Width() int { return a.frames.Width() }

// Height returns the frame height.
func (a *Art) Height() int { return a.frames.Height() }

// Frame returns frame i, or nil when out of range.
func (a *Art) Frame(i int) *Frame { return a.frames.Frame(i) }

// Get returns a cell, or def when out of range.
func (a *Art) Get(frame, col, row int, def Cell) Cell {
	return a.frames.Get(frame, col, row, def)
}

// Set stores a cell. It returns false when out of range.
func (a *Art) Set(frame, col, row int, c Cell) bool {
	return a.frames.Set(frame, col, row, c)
}

// Pinned reports whether text and colors are shared by all frames.
func (a *Art) Pinned() (text, color bool) { return a.frames.Pinned() }

// HasColors reports whether the document carries colors. The colors key
// decides when present; otherwise a legacy colors mode or any colored cell
// does.
func (a *Art) HasColors() bool {
	if v, ok := a.header.ColorsKey(); ok {
		return v
	}
	return a.header.HasColors() || a.frames.HasColors()
}

// Attachment returns the attached line.
func (a *Art) Attachment() string { return a.attach }

// SetAttachment sets the attached line. Line breaks are not allowed and are
// dropped with other disallowed characters.
func (a *Art) SetAttachment(s string) { a.attach = NormalizeText(s) }

// Blocks returns the extra blocks in order.
func (a *Art) Blocks() []ExtraBlock { return append([]ExtraBlock(nil), a.blocks...) }

// Block returns the content of the extra block name.
func (a *Art) Block(name string) (string, bool) {
	for _, b := range a.blocks {
		if b.Name == name {
			return b.Content, true
		}
	}
	return "", false
}

// SetBlock stores an extra block. Content is normalized line by line;
// blank lines are dropped since they end a block.
func (a *Art) SetBlock(name, content string) error {
	name = strings.TrimSpace(NormalizeText(name))
	switch name {
	case "", "attach", "text-pin", "color-pin", "body":
		return fmt.Errorf("%w: cannot use @%s as extra block", ErrBlockDup, name)
	}
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		line = NormalizeText(strings.TrimSuffix(line, "\r"))
		if isBlank(line) {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for i := range a.blocks {
		if a.blocks[i].Name == name {
			a.blocks[i].Content = b.String()
			return nil
		}
	}
	a.blocks = append(a.blocks, ExtraBlock{Name: name, Content: b.String()})
	return nil
}

// RemoveBlock removes the extra block name.
func (a *Art) RemoveBlock(name string) {
	for i, b := range a.blocks {
		if b.Name == name {
			a.blocks = append(a.blocks[:i], a.blocks[i+1:]...)
			return
		}
	}
}

// StripComments drops every header comment.
func (a *Art) StripComments() { a.header.StripComments() }

// Fingerprint returns the SHA-256 of the formatted document.
func (a *Art) Fingerprint() [32]byte {
	return stream.StateHash([]byte(a.Format()))
}

// ============================================================
// Header Passthroughs
// ============================================================

// Title returns the title key.
func (a *Art) Title() (string, bool) { return a.header.TitleKey() }

// SetTitle sets the title. An empty title removes the key.
func (a *Art) SetTitle(s string) { a.header.SetTitle(s) }

// RemoveTitle removes the title.
func (a *Art) RemoveTitle() { a.header.Title = nil }

// Authors returns the authors.
func (a *Art) Authors() []string { return a.header.AuthorNames() }

// AddAuthor adds an author.
func (a *Art) AddAuthor(name string) { a.header.AddAuthor(name) }

// OrigAuthors returns the original authors.
func (a *Art) OrigAuthors() []string { return a.header.OrigAuthorNames() }

// AddOrigAuthor adds an original author.
func (a *Art) AddOrigAuthor(name string) { a.header.AddOrigAuthor(name) }

// TitleLine returns a one-line credit such as "Cat by Ann, Bob".
func (a *Art) TitleLine() string { return a.header.TitleLine() }

// Loop reports whether the animation loops.
func (a *Art) Loop() bool { return a.header.LoopValue() }

// SetLoop sets the loop flag.
func (a *Art) SetLoop(loop bool) { a.header.SetLoop(loop) }

// Preview returns the preview frame index.
func (a *Art) Preview() (int, bool) {
	if a.header.Preview == nil {
		return 0, false
	}
	return a.header.Preview.Value, true
}

// SetPreview sets the preview frame. The frame must exist.
func (a *Art) SetPreview(frame int) error {
	if frame < 0 || frame >= a.frames.Len() {
		return fmt.Errorf("%w: preview %d of %d frames", ErrFrameRange, frame, a.frames.Len())
	}
	if a.header.Preview == nil {
		a.header.Preview = &Keyed[int]{}
	}
	a.header.Preview.Value = frame
	return nil
}

// RemovePreview removes the preview key.
func (a *Art) RemovePreview() { a.header.Preview = nil }

// Tags returns every tag.
func (a *Art) Tags() []string { return a.header.Tags() }

// AddTag adds a tag unless present.
func (a *Art) AddTag(tag string) error { return a.header.AddTag(tag) }

// RemoveTag removes a tag.
func (a *Art) RemoveTag(tag string) { a.header.RemoveTag(tag) }

// ContainsTag reports whether a tag is present.
func (a *Art) ContainsTag(tag string) bool { return a.header.ContainsTag(tag) }

// AuthorsLine returns every author, original authors first.
func (a *Art) AuthorsLine() string { return a.header.AuthorsLine() }

// Src returns the src key.
func (a *Art) Src() (string, bool) { return a.header.SrcKey() }

// SetSrc sets the src key.
func (a *Art) SetSrc(s string) { a.header.SetSrc(s) }

// Editor returns the editor key.
func (a *Art) Editor() (string, bool) { return a.header.EditorKey() }

// SetEditor sets the editor key.
func (a *Art) SetEditor(s string) { a.header.SetEditor(s) }

// License returns the license key.
func (a *Art) License() (string, bool) { return a.header.LicenseKey() }

// SetLicense sets the license key.
func (a *Art) SetLicense(s string) { a.header.SetLicense(s) }

// ColorsKey returns the explicit colors flag.
func (a *Art) ColorsKey() (bool, bool) { return a.header.ColorsKey() }

// SetColorsKey sets the colors flag.
func (a *Art) SetColorsKey(on bool) { a.header.SetColorsKey(on) }

// RemoveColorsKey removes the colors flag.
func (a *Art) RemoveColorsKey() { a.header.RemoveColorsKey() }

// ExtraKey returns the value of an unknown header key.
func (a *Art) ExtraKey(key string) (string, bool) { return a.header.ExtraKey(key) }

// SetExtraKey sets an unknown header key.
func (a *Art) SetExtraKey(key, value string) error { return a.header.SetExtraKey(key, value) }

// RemoveExtraKey removes an unknown header key.
func (a *Art) RemoveExtraKey(key string) { a.header.RemoveExtraKey(key) }

// ============================================================
// Delays
// ============================================================

// GlobalDelay returns the global delay in milliseconds.
func (a *Art) GlobalDelay() int { return a.header.DelayValue().GlobalMillis() }

// FrameDelay returns the delay of frame in milliseconds.
func (a *Art) FrameDelay(frame int) int { return a.header.DelayValue().FrameMillis(frame) }

// SetGlobalDelay sets the global delay. Setting the default on a document
// without a delay key leaves it without one.
func (a *Art) SetGlobalDelay(ms int) {
	if a.header.Delay == nil && (ms == 0 || ms == DefaultDelay) {
		return
	}
	d := a.header.delay()
	d.SetGlobal(ms)
	d.Normalize(a.frames.Len())
}

// SetFrameDelay overrides the delay of one frame. Zero removes the
// override.
func (a *Art) SetFrameDelay(frame, ms int) error {
	if frame < 0 || frame >= a.frames.Len() {
		return fmt.Errorf("%w: delay for frame %d of %d", ErrFrameRange, frame, a.frames.Len())
	}
	if a.header.Delay == nil && ms == 0 {
		return nil
	}
	d := a.header.delay()
	d.SetFrame(frame, ms)
	d.Normalize(a.frames.Len())
	return nil
}

// ResetDelays removes the delay key.
func (a *Art) ResetDelays() { a.header.Delay = nil }

// Duration returns the total animation time in milliseconds.
func (a *Art) Duration() int { return a.header.DelayValue().Millis(a.frames.Len()) }
