package art3a

import (
	"fmt"
)

// ValidationError represents a validation failure.
type ValidationError struct {
	Path    string // location, e.g. "frame[2].row[0].col[5]" or "palette[r]"
	Message string // human-readable message
	Code    string // machine-readable code
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidationResult contains all validation errors and warnings.
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// Validation codes.
const (
	CodeDimension      = "dimension"
	CodeColorCount     = "color_count"
	CodeUndefinedColor = "undefined_color"
	CodeUnusedColor    = "unused_color"
	CodeWideChar       = "wide_char"
	CodePreviewRange   = "preview_range"
	CodeDelayRange     = "delay_range"
)

type validator struct {
	errors   []ValidationError
	warnings []ValidationError
}

func (v *validator) addError(path, code, format string, args ...any) {
	v.errors = append(v.errors, ValidationError{Path: path, Code: code, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) addWarning(path, code, format string, args ...any) {
	v.warnings = append(v.warnings, ValidationError{Path: path, Code: code, Message: fmt.Sprintf(format, args...)})
}

// Validate checks the internal consistency of the document and reports
// content that is legal but probably unintended.
//
// Errors are broken invariants: frames whose size differs from the
// animation, or a stale color count. Warnings flag color references without
// a color, palette entries no frame uses, characters that are not one cell
// wide, and preview or delay keys pointing past the last frame.
func (a *Art) Validate() *ValidationResult {
	v := &validator{}
	fs := &a.frames

	for i, f := range fs.frames {
		path := fmt.Sprintf("frame[%d]", i)
		if f.Width() != fs.width || f.Height() != fs.height {
			v.addError(path, CodeDimension, "frame is %dx%d, animation is %dx%d", f.Width(), f.Height(), fs.width, fs.height)
		}
		for _, row := range f.rows {
			if len(row) != f.width {
				v.addError(path, CodeDimension, "row of %d cells in a frame of width %d", len(row), f.width)
				break
			}
		}
		want := f.ColorCount()
		if got := f.countColored(); got != want {
			v.addError(path, CodeColorCount, "color count %d, frame has %d colored cells", want, got)
		}
	}

	wide := make(map[Char]bool)
	for i, f := range fs.frames {
		for r, row := range f.rows {
			for c, cell := range row {
				if w := cell.Text.Width(); w != 1 && !wide[cell.Text] {
					wide[cell.Text] = true
					v.addWarning(fmt.Sprintf("frame[%d].row[%d].col[%d]", i, r, c), CodeWideChar,
						"%q is %d cells wide", cell.Text.String(), w)
				}
			}
		}
	}

	used := make(map[Char]struct{})
	fs.colorNames(used)
	for _, name := range sortedChars(used) {
		if !a.header.Palette.Contains(name) && !IsBuiltin(name) {
			v.addWarning(fmt.Sprintf("palette[%s]", name), CodeUndefinedColor, "color %q is used but has no color", name.String())
		}
	}
	for _, e := range a.header.Palette.entries {
		if _, ok := used[e.Name]; !ok {
			v.addWarning(fmt.Sprintf("palette[%s]", e.Name), CodeUnusedColor, "color %q is not used by any frame", e.Name.String())
		}
	}

	if p, ok := a.Preview(); ok && p >= fs.Len() {
		v.addWarning("preview", CodePreviewRange, "preview frame %d of %d frames", p, fs.Len())
	}
	if d := a.header.DelayValue(); d != nil {
		for _, f := range d.Frames() {
			if f >= fs.Len() {
				v.addWarning("delay", CodeDelayRange, "delay for frame %d of %d frames", f, fs.Len())
			}
		}
	}

	return &ValidationResult{
		Valid:    len(v.errors) == 0,
		Errors:   v.errors,
		Warnings: v.warnings,
	}
}
