package table

import "strings"

// FontWeight is the weight used for table text
type FontWeight string

const (
	FontWeightNormal FontWeight = "normal"
	FontWeightBold   FontWeight = "bold"
)

// Valid reports whether w is one of the supported weights
func (w FontWeight) Valid() bool {
	return w == FontWeightNormal || w == FontWeightBold
}

// Style returns the document font style for the weight: "B" or "".
func (w FontWeight) Style() string {
	if w == FontWeightBold {
		return "B"
	}
	return ""
}

// ParseFontWeight parses "normal" or "bold" (case-insensitive).
func ParseFontWeight(s string) (FontWeight, error) {
	w := FontWeight(strings.ToLower(strings.TrimSpace(s)))
	if !w.Valid() {
		return "", invalid(fieldFontWeight, s, "must be normal or bold")
	}
	return w, nil
}

// overrides holds the style properties a row or cell may set itself.
// A nil field falls through to the parent.
type overrides struct {
	fontFamily  *string
	fontSize    *float64
	fontWeight  *FontWeight
	lineHeight  *float64
	borderWidth *float64
}

func ptr[T any](v T) *T {
	return &v
}
