// Package font provides metrics and text encoding for the standard PDF fonts.
//
// The standard fonts (Helvetica, Times and Courier in regular, bold, italic
// and bold italic faces) are available in every PDF viewer and need no
// embedding. This package knows their glyph widths, which is all a layout
// engine needs to measure and wrap text.
//
// # Font Lookup
//
// Families are looked up by name or alias and a style string:
//
//	f, err := font.Lookup("arial", "B")   // Helvetica-Bold
//	f, err := font.Lookup("times", "I")   // Times-Italic
//
// # Character Widths
//
// Widths are stored in 1000ths of an em:
//
//	width := f.GetWidth('A')              // Single character
//	width := f.GetStringWidth(text)       // String width in font units
//	pts := f.StringWidth(text, 12)        // String width in points at 12pt
//
// # Encoding
//
// Text is written with WinAnsiEncoding. [Encode] converts UTF-8 to
// Windows-1252 bytes, replacing runes the code page cannot represent.
package font
