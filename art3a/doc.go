// Package art3a implements the document model and codec of the 3a animated
// ASCII art format.
//
// A 3a document is one or more equally sized grids of characters (frames).
// Every cell carries a text character and an optional color reference, a
// single character that names an entry of the document palette. A header of
// metadata (title, authors, tags, timing, palette, comments) comes first.
//
// # Dialects
//
// Modern documents start with a literal "@3a" line, followed by header keys,
// a blank line, and named blocks:
//
//	@3a
//	title Example
//	colors yes
//	col r fg:red bg:black
//
//	@body
//	abrr
//	cd__
//
// Legacy documents have no marker. Their header carries width, height and a
// colors mode, and every frame row is stored as up to three fixed-width
// lines: text, foreground digits and background digits.
//
// # Body Formats
//
// A body line holds text characters, color characters, or both (text half
// followed by color half). The format is picked from the header colors flag
// and from the pins: a frame whose text or color channel is shared by every
// frame can be stored once, in a @text-pin or @color-pin block.
//
// The color character "_" means "no color".
//
// # Palette
//
// Characters 0-7 name the eight normal 4-bit foreground colors and 8, 9, a-f
// the bright ones. Other characters have no color until a "col" key maps
// them. The palette only stores entries that differ from these defaults.
//
// # Concurrency
//
// An Art is not safe for concurrent mutation. Hosts that share one document
// between goroutines must serialize access to it.
package art3a
