package art3a

import (
	"errors"
	"fmt"
)

// Character errors.
var (
	ErrDisallowedChar = errors.New("art3a: disallowed character")
	ErrCharCount      = errors.New("art3a: expected exactly one character")
)

// Color and palette errors.
var (
	ErrColorParse  = errors.New("art3a: invalid color")
	ErrColorDup    = errors.New("art3a: color given twice")
	ErrColorName   = errors.New("art3a: reserved color name")
	ErrColorMapDup = errors.New("art3a: duplicate color map entry")
)

// Header errors.
var (
	ErrDelayParse       = errors.New("art3a: invalid delay")
	ErrDelayDup         = errors.New("art3a: duplicate delay")
	ErrDelayVoid        = errors.New("art3a: empty delay")
	ErrFlagParse        = errors.New("art3a: invalid flag")
	ErrNumberParse      = errors.New("art3a: invalid number")
	ErrLegacyColors     = errors.New("art3a: invalid legacy colors mode")
	ErrHeaderKeyDup     = errors.New("art3a: duplicate header key")
	ErrHeaderKeyNoValue = errors.New("art3a: header key without value")
	ErrTag              = errors.New("art3a: invalid tag")
)

// Structure errors.
var (
	ErrBlockExpected  = errors.New("art3a: block title expected")
	ErrBlockDup       = errors.New("art3a: duplicate block")
	ErrWidthMismatch  = errors.New("art3a: width mismatch")
	ErrHeightMismatch = errors.New("art3a: height mismatch")
	ErrColorsMismatch = errors.New("art3a: colors mismatch")
	ErrDimension      = errors.New("art3a: invalid dimensions")
	ErrFrameRange     = errors.New("art3a: frame out of range")
)

// ParseError reports a failure at a given input line.
type ParseError struct {
	Line int // 1-based, 0 when the failure is not tied to one line
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v at line %d", e.Err, e.Line)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
