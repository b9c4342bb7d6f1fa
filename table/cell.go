package table

import (
	"strings"

	"github.com/tsawler/pdftable/model"
)

// Image is an image placed in a cell. Width and Height are the drawn size
// in user units; a zero dimension is derived from the other one and the
// image's aspect ratio.
type Image struct {
	Path   string
	Width  float64
	Height float64
}

// Cell is one cell of a row. Style values not set on the cell fall through
// to the row, and from there to the table.
type Cell struct {
	row *Row

	text    string
	image   *Image
	colspan int
	width   *float64

	align     model.TextAlignment
	valign    model.VerticalAlignment
	padding   *model.Insets
	minHeight float64
	border    model.Border

	style      overrides
	textColor  *model.Color
	background *model.Color
}

// Row returns the row the cell belongs to
func (c *Cell) Row() *Row {
	return c.row
}

// End returns the owning row for chaining
func (c *Cell) End() *Row {
	return c.row
}

func (c *Cell) reject(err *InvalidConfigurationError) {
	c.row.table.reject(c, err)
}

func (c *Cell) accept(field string) {
	c.row.table.accept(c, field)
}

// Text returns the cell text. Line breaks are kept as "\n".
func (c *Cell) Text() string {
	return c.text
}

// SetText replaces the cell text
func (c *Cell) SetText(text string) *Cell {
	c.text = text
	return c
}

// Image returns the cell image, or nil
func (c *Cell) Image() *Image {
	return c.image
}

// SetImage places the image at path in the cell, drawn at width x height
// user units. Either dimension may be zero but not both.
func (c *Cell) SetImage(path string, width, height float64) *Cell {
	if strings.TrimSpace(path) == "" {
		c.reject(invalid(fieldImage, path, "path must not be empty"))
		return c
	}
	for _, v := range []float64{width, height} {
		if err := checkLength(fieldImage, v); err != nil {
			c.reject(err)
			return c
		}
	}
	if width == 0 && height == 0 {
		c.reject(invalid(fieldImage, path, "width or height must be set"))
		return c
	}
	c.accept(fieldImage)
	c.image = &Image{Path: path, Width: width, Height: height}
	return c
}

// Colspan returns the number of grid columns the cell covers
func (c *Cell) Colspan() int {
	return c.colspan
}

// SetColspan sets the number of grid columns the cell covers
func (c *Cell) SetColspan(n int) *Cell {
	if n < 1 {
		c.reject(invalid(fieldColspan, n, "must be at least 1"))
		return c
	}
	c.accept(fieldColspan)
	c.colspan = n
	return c
}

// Width returns the explicit width of the column the cell starts in;
// ok is false when the width is left to the renderer.
func (c *Cell) Width() (width float64, ok bool) {
	if c.width == nil {
		return 0, false
	}
	return *c.width, true
}

// SetWidth fixes the width of the column the cell starts in
func (c *Cell) SetWidth(width float64) *Cell {
	if err := checkLength(fieldWidth, width); err != nil {
		c.reject(err)
		return c
	}
	c.accept(fieldWidth)
	c.width = ptr(width)
	return c
}

// Align returns the horizontal text alignment
func (c *Cell) Align() model.TextAlignment {
	return c.align
}

// SetAlign sets the horizontal text alignment
func (c *Cell) SetAlign(align model.TextAlignment) *Cell {
	c.align = align
	return c
}

// VerticalAlign returns the vertical alignment of the cell content
func (c *Cell) VerticalAlign() model.VerticalAlignment {
	return c.valign
}

// SetVerticalAlign sets the vertical alignment of the cell content
func (c *Cell) SetVerticalAlign(align model.VerticalAlignment) *Cell {
	c.valign = align
	return c
}

// Padding returns the cell padding; ok is false when the renderer's
// default applies.
func (c *Cell) Padding() (padding model.Insets, ok bool) {
	if c.padding == nil {
		return model.Insets{}, false
	}
	return *c.padding, true
}

// SetPadding sets the space between the border and the content, in user units
func (c *Cell) SetPadding(padding model.Insets) *Cell {
	for _, v := range []float64{padding.Top, padding.Right, padding.Bottom, padding.Left} {
		if err := checkLength(fieldPadding, v); err != nil {
			c.reject(err)
			return c
		}
	}
	c.accept(fieldPadding)
	c.padding = ptr(padding)
	return c
}

// MinHeight returns the cell's minimum height in user units
func (c *Cell) MinHeight() float64 {
	return c.minHeight
}

// SetMinHeight sets the minimum cell height in user units
func (c *Cell) SetMinHeight(height float64) *Cell {
	if err := checkLength(fieldMinHeight, height); err != nil {
		c.reject(err)
		return c
	}
	c.accept(fieldMinHeight)
	c.minHeight = height
	return c
}

// Border returns the sides of the cell that are stroked
func (c *Cell) Border() model.Border {
	return c.border
}

// SetBorder sets which sides of the cell are stroked
func (c *Cell) SetBorder(border model.Border) *Cell {
	c.border = border
	return c
}

// BorderWidth returns the border width in user units, falling back to the row
func (c *Cell) BorderWidth() float64 {
	if c.style.borderWidth != nil {
		return *c.style.borderWidth
	}
	return c.row.BorderWidth()
}

// SetBorderWidth overrides the border width for the cell
func (c *Cell) SetBorderWidth(width float64) *Cell {
	c.style.borderWidth = ptr(width)
	return c
}

// FontFamily returns the cell font family, falling back to the row
func (c *Cell) FontFamily() string {
	if c.style.fontFamily != nil {
		return *c.style.fontFamily
	}
	return c.row.FontFamily()
}

// SetFontFamily overrides the font family for the cell
func (c *Cell) SetFontFamily(family string) *Cell {
	c.style.fontFamily = ptr(family)
	return c
}

// FontSize returns the font size in points
func (c *Cell) FontSize() float64 {
	if c.style.fontSize != nil {
		return *c.style.fontSize
	}
	return c.row.FontSize()
}

// SetFontSize overrides the font size, in points, for the cell
func (c *Cell) SetFontSize(size float64) *Cell {
	if err := checkFontSize(size); err != nil {
		c.reject(err)
		return c
	}
	c.accept(fieldFontSize)
	c.style.fontSize = ptr(size)
	return c
}

// FontWeight returns the cell font weight, falling back to the row
func (c *Cell) FontWeight() FontWeight {
	if c.style.fontWeight != nil {
		return *c.style.fontWeight
	}
	return c.row.FontWeight()
}

// SetFontWeight overrides the font weight for the cell
func (c *Cell) SetFontWeight(weight FontWeight) *Cell {
	if err := checkFontWeight(weight); err != nil {
		c.reject(err)
		return c
	}
	c.accept(fieldFontWeight)
	c.style.fontWeight = ptr(weight)
	return c
}

// LineHeight returns the line height factor, falling back to the row
func (c *Cell) LineHeight() float64 {
	if c.style.lineHeight != nil {
		return *c.style.lineHeight
	}
	return c.row.LineHeight()
}

// SetLineHeight overrides the line height factor for the cell
func (c *Cell) SetLineHeight(factor float64) *Cell {
	c.style.lineHeight = ptr(factor)
	return c
}

// TextColor returns the text color; ok is false when the host's current
// text color applies.
func (c *Cell) TextColor() (color model.Color, ok bool) {
	if c.textColor == nil {
		return model.Color{}, false
	}
	return *c.textColor, true
}

// SetTextColor sets the text color for the cell
func (c *Cell) SetTextColor(color model.Color) *Cell {
	c.textColor = ptr(color)
	return c
}

// BackgroundColor returns the fill color of the cell, falling back to the
// row's; ok is false when neither is set.
func (c *Cell) BackgroundColor() (color model.Color, ok bool) {
	if c.background != nil {
		return *c.background, true
	}
	return c.row.BackgroundColor()
}

// SetBackgroundColor sets the fill color for the cell
func (c *Cell) SetBackgroundColor(color model.Color) *Cell {
	c.background = ptr(color)
	return c
}
