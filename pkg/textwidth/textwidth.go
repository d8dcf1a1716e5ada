// Package textwidth measures how wide a string renders in a given font face.
//
// It is the server-side counterpart of measuring placeholder text in the
// browser: sizes are computed from font metrics with golang.org/x/image/font
// instead of a rendering engine, so results are exact for monospace faces and
// an approximation for proportional ones.
package textwidth

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/unicode/norm"
)

// Measure returns the advance width of text in whole pixels, rounded up.
// Text is NFC-normalised first so combining sequences are measured as the
// composed glyph. Empty text or a nil face yields 0.
func Measure(text string, face font.Face) int {
	if text == "" || face == nil {
		return 0
	}
	return font.MeasureString(face, norm.NFC.String(text)).Ceil()
}

// MeasureDefault measures text in the 7x13 fixed-width basic face.
func MeasureDefault(text string) int {
	return Measure(text, basicfont.Face7x13)
}
