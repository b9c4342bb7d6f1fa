package font

import (
	"fmt"
	"strings"
)

// Font represents one of the standard PDF fonts
type Font struct {
	Family   string // Canonical family: Helvetica, Times or Courier
	Style    string // "", "B", "I" or "BI"
	BaseFont string // PDF base font name, e.g. Helvetica-BoldOblique

	widths   map[rune]float64
	fallback map[rune]float64
}

// familyAliases maps lower-cased family names to canonical families.
var familyAliases = map[string]string{
	"helvetica":   "Helvetica",
	"arial":       "Helvetica",
	"sans":        "Helvetica",
	"sans-serif":  "Helvetica",
	"times":       "Times",
	"times-roman": "Times",
	"timesroman":  "Times",
	"serif":       "Times",
	"courier":     "Courier",
	"monospace":   "Courier",
}

// baseFontNames lists the PDF base font for each family and style.
var baseFontNames = map[string]map[string]string{
	"Helvetica": {"": "Helvetica", "B": "Helvetica-Bold", "I": "Helvetica-Oblique", "BI": "Helvetica-BoldOblique"},
	"Times":     {"": "Times-Roman", "B": "Times-Bold", "I": "Times-Italic", "BI": "Times-BoldItalic"},
	"Courier":   {"": "Courier", "B": "Courier-Bold", "I": "Courier-Oblique", "BI": "Courier-BoldOblique"},
}

// CanonicalFamily returns the canonical family for a family name or alias.
func CanonicalFamily(family string) (string, bool) {
	f, ok := familyAliases[strings.ToLower(strings.TrimSpace(family))]
	return f, ok
}

// Lookup returns the standard font for a family (or alias) and style.
// Style letters are case-insensitive; "U" (underline) is ignored.
func Lookup(family, style string) (*Font, error) {
	canonical, ok := CanonicalFamily(family)
	if !ok {
		return nil, fmt.Errorf("unsupported font family %q", family)
	}
	st := normalizeStyle(style)
	f := &Font{
		Family:   canonical,
		Style:    st,
		BaseFont: baseFontNames[canonical][st],
	}
	f.loadStandardWidths()
	return f, nil
}

// IsBold reports whether the font is a bold face
func (f *Font) IsBold() bool {
	return strings.Contains(f.Style, "B")
}

// GetWidth returns the width of a character (in 1000ths of em)
func (f *Font) GetWidth(r rune) float64 {
	if w, ok := f.widths[r]; ok {
		return w
	}
	if w, ok := f.fallback[r]; ok {
		return w
	}

	// Default width if not found
	return 500.0
}

// GetStringWidth calculates the total width of a string in 1000ths of em
func (f *Font) GetStringWidth(s string) float64 {
	total := 0.0
	for _, r := range s {
		total += f.GetWidth(r)
	}
	return total
}

// StringWidth returns the width of s in points at the given size
func (f *Font) StringWidth(s string, sizePt float64) float64 {
	return f.GetStringWidth(s) * sizePt / 1000.0
}

// loadStandardWidths picks the width table for the family and weight.
// Oblique faces share the upright metrics.
func (f *Font) loadStandardWidths() {
	switch f.Family {
	case "Courier":
		f.widths = courierWidths
	case "Times":
		if f.IsBold() {
			f.widths, f.fallback = timesBoldWidths, timesWidths
		} else {
			f.widths = timesWidths
		}
	default:
		if f.IsBold() {
			f.widths, f.fallback = helveticaBoldWidths, helveticaWidths
		} else {
			f.widths = helveticaWidths
		}
	}
}

func normalizeStyle(style string) string {
	s := strings.ToUpper(style)
	bold := strings.Contains(s, "B")
	italic := strings.Contains(s, "I")
	switch {
	case bold && italic:
		return "BI"
	case bold:
		return "B"
	case italic:
		return "I"
	}
	return ""
}
