package art3a

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/Neumenon/art3a/stream"
)

// Marker is the first line of a modern document.
const Marker = "@3a"

func lineError(r *stream.Reader, err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return err
	}
	return &ParseError{Line: r.Line(), Err: err}
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func parseFlag(s string) (bool, error) {
	switch s {
	case "yes", "true":
		return true, nil
	case "no", "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrFlagParse, s)
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNumberParse, s)
	}
	return n, nil
}

// parseTagline returns the tags of a "#a #b" line.
func parseTagline(line string) []string {
	var tags []string
	for _, tok := range strings.Fields(line) {
		tok = strings.TrimLeft(tok, "#")
		if tok != "" {
			tags = append(tags, tok)
		}
	}
	return tags
}

// addTagline merges tags into the last tagline unless comments precede
// them, in which case a new tagline starts.
func (h *Header) addTagline(tags, comments []string) {
	if len(comments) == 0 && len(h.Taglines) > 0 {
		last := &h.Taglines[len(h.Taglines)-1]
		for _, t := range tags {
			if !slices.Contains(last.Tags, t) {
				last.Tags = append(last.Tags, t)
			}
		}
		return
	}
	tl := Tagline{Comments: comments}
	for _, t := range tags {
		if !slices.Contains(tl.Tags, t) {
			tl.Tags = append(tl.Tags, t)
		}
	}
	h.Taglines = append(h.Taglines, tl)
}

// setScalar stores a single-valued key, failing when it is already set.
func setScalar[T any](k **Keyed[T], key string, v T, comments []string) error {
	if *k != nil {
		return fmt.Errorf("%w: %s", ErrHeaderKeyDup, key)
	}
	*k = &Keyed[T]{Value: v, Comments: comments}
	return nil
}

// applyKey parses one "key value" line into h.
func (h *Header) applyKey(line string, comments []string) error {
	key, value, ok := strings.Cut(line, " ")
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return fmt.Errorf("%w: %q", ErrHeaderKeyNoValue, key)
	}

	switch key {
	case "title":
		return setScalar(&h.Title, key, value, comments)
	case "src":
		return setScalar(&h.Src, key, value, comments)
	case "editor":
		return setScalar(&h.Editor, key, value, comments)
	case "license":
		return setScalar(&h.License, key, value, comments)
	case "author":
		h.Authors = addName(h.Authors, value, comments)
	case "orig-author":
		h.OrigAuthors = addName(h.OrigAuthors, value, comments)
	case "delay":
		d, err := ParseDelay(value)
		if err != nil {
			return err
		}
		return setScalar(&h.Delay, key, d, comments)
	case "loop":
		v, err := parseFlag(value)
		if err != nil {
			return err
		}
		return setScalar(&h.Loop, key, v, comments)
	case "preview":
		n, err := parseCount(value)
		if err != nil {
			return err
		}
		return setScalar(&h.Preview, key, n, comments)
	case "colors":
		v, err := parseFlag(value)
		if err != nil {
			return err
		}
		return setScalar(&h.Colors, key, v, comments)
	case "col":
		name, pairText, _ := strings.Cut(value, " ")
		c, err := ParseChar(name)
		if err != nil {
			return err
		}
		pair, err := ParseColorPair(pairText)
		if err != nil {
			return err
		}
		return h.Palette.add(PaletteEntry{Name: c, Pair: pair, Comments: comments})
	default:
		h.Extra = append(h.Extra, Keyed[string]{Value: line, Comments: comments})
	}
	return nil
}

// readHeader reads the header. The first line selects the dialect. It
// returns io.EOF for an empty stream.
func readHeader(r *stream.Reader) (*Header, error) {
	first, err := r.Next()
	if err != nil {
		return nil, err
	}
	h := &Header{}
	if strings.TrimSpace(first) == Marker {
		err = h.readModern(r)
	} else {
		r.Unread(first)
		err = h.readLegacy(r)
	}
	if err != nil {
		return nil, lineError(r, err)
	}
	return h, nil
}

// readModern reads key lines up to the first blank line.
func (h *Header) readModern(r *stream.Reader) error {
	var comments []string
	for {
		raw, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		line := strings.TrimSpace(NormalizeText(raw))
		switch {
		case line == "":
			h.Comments = comments
			return nil
		case line == Marker:
			continue
		case strings.HasPrefix(line, ";;"):
			comments = append(comments, strings.TrimSpace(line[2:]))
			continue
		case strings.HasPrefix(line, "#"):
			h.addTagline(parseTagline(line), comments)
		default:
			if err := h.applyKey(line, comments); err != nil {
				return err
			}
		}
		comments = nil
	}
	h.Comments = comments
	return nil
}

// readLegacy reads a legacy header up to the first blank line.
//
// Legacy lines carry comments after a tab. A line starting with a tab is a
// comment line, as is a line starting with "@".
func (h *Header) readLegacy(r *stream.Reader) error {
	info := &LegacyInfo{}
	h.Legacy = info

	var comments []string
	for {
		raw, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		content, trailing, hasTab := strings.Cut(raw, "\t")
		content = strings.TrimSpace(NormalizeText(content))
		if hasTab && content == "" {
			comments = append(comments, strings.TrimSpace(NormalizeText(trailing)))
			continue
		}
		if content == "" {
			break
		}
		if hasTab {
			if c := strings.TrimSpace(NormalizeText(trailing)); c != "" {
				comments = append(comments, c)
			}
		}

		switch {
		case strings.HasPrefix(content, "@"):
			comments = append(comments, strings.TrimSpace(content[1:]))
			continue
		case strings.HasPrefix(content, "#"):
			h.addTagline(parseTagline(content), comments)
		case strings.HasPrefix(content, "utf8"):
			continue
		default:
			if err := h.applyLegacyKey(info, content, comments); err != nil {
				return err
			}
		}
		comments = nil
	}
	h.Comments = comments
	return nil
}

func (h *Header) applyLegacyKey(info *LegacyInfo, line string, comments []string) error {
	key, value, ok := strings.Cut(line, " ")
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return fmt.Errorf("%w: %q", ErrHeaderKeyNoValue, key)
	}
	var err error
	switch key {
	case "title", "author", "loop", "preview", "delay":
		return h.applyKey(line, comments)
	case "colors":
		info.Colors, err = ParseLegacyColorMode(value)
	case "width":
		info.Width, err = parseCount(value)
	case "height":
		info.Height, err = parseCount(value)
	default:
		h.Extra = append(h.Extra, Keyed[string]{Value: line, Comments: comments})
	}
	return err
}
