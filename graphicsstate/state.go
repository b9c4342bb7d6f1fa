package graphicsstate

import (
	"fmt"
	"strings"

	"github.com/tsawler/pdftable/model"
)

// GraphicsState represents the document drawing state
type GraphicsState struct {
	// Line attributes (user units)
	LineWidth float64

	// Colors
	StrokeColor model.Color
	FillColor   model.Color
	TextColor   model.Color

	// Text state
	Text TextState

	// Graphics state stack (for q/Q operators)
	stack []*GraphicsState
}

// TextState represents text-specific state
type TextState struct {
	FontFamily string
	FontStyle  string  // "", "B", "I" or "BI"
	FontSizePt float64 // always in points, independent of the user unit
}

// NewGraphicsState creates a new graphics state with default values
func NewGraphicsState() *GraphicsState {
	return &GraphicsState{
		LineWidth:   1.0,
		StrokeColor: model.Black,
		FillColor:   model.Black,
		TextColor:   model.Black,
		Text: TextState{
			FontFamily: "Helvetica",
			FontSizePt: 12.0,
		},
	}
}

// Clone creates a copy of the graphics state without its stack
func (gs *GraphicsState) Clone() *GraphicsState {
	return &GraphicsState{
		LineWidth:   gs.LineWidth,
		StrokeColor: gs.StrokeColor,
		FillColor:   gs.FillColor,
		TextColor:   gs.TextColor,
		Text:        gs.Text,
	}
}

// Save pushes the current graphics state onto the stack (q operator)
func (gs *GraphicsState) Save() {
	gs.stack = append(gs.stack, gs.Clone())
}

// Restore pops a graphics state from the stack (Q operator)
func (gs *GraphicsState) Restore() error {
	if len(gs.stack) == 0 {
		return fmt.Errorf("graphics state stack underflow")
	}

	saved := gs.stack[len(gs.stack)-1]
	gs.stack = gs.stack[:len(gs.stack)-1]

	gs.LineWidth = saved.LineWidth
	gs.StrokeColor = saved.StrokeColor
	gs.FillColor = saved.FillColor
	gs.TextColor = saved.TextColor
	gs.Text = saved.Text

	return nil
}

// Depth returns the number of saved states
func (gs *GraphicsState) Depth() int {
	return len(gs.stack)
}

// SetLineWidth sets the line width (w operator)
func (gs *GraphicsState) SetLineWidth(width float64) {
	gs.LineWidth = width
}

// SetStrokeColor sets the stroke color (RG operator)
func (gs *GraphicsState) SetStrokeColor(c model.Color) {
	gs.StrokeColor = c
}

// SetFillColor sets the fill color (rg operator)
func (gs *GraphicsState) SetFillColor(c model.Color) {
	gs.FillColor = c
}

// SetTextColor sets the color used for text
func (gs *GraphicsState) SetTextColor(c model.Color) {
	gs.TextColor = c
}

// SetFont sets the current font. The style is normalized.
func (gs *GraphicsState) SetFont(family, style string, sizePt float64) {
	gs.Text.FontFamily = family
	gs.Text.FontStyle = NormalizeStyle(style)
	gs.Text.FontSizePt = sizePt
}

// IsBold reports whether the current font style contains the bold marker
func (gs *GraphicsState) IsBold() bool {
	return strings.Contains(gs.Text.FontStyle, "B")
}

// NormalizeStyle folds a style string into "", "B", "I" or "BI".
func NormalizeStyle(style string) string {
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
