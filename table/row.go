package table

import "github.com/tsawler/pdftable/model"

// Row is one row of a table. Style values not set on the row fall through
// to the table at the time they are read.
type Row struct {
	table *Table
	cells []*Cell

	style      overrides
	background *model.Color
	minHeight  float64
	header     bool
}

// Table returns the table the row belongs to
func (r *Row) Table() *Table {
	return r.table
}

// End returns the owning table for chaining
func (r *Row) End() *Table {
	return r.table
}

// NewCell appends a cell holding text and returns it.
func (r *Row) NewCell(text string) *Cell {
	c := &Cell{
		row:     r,
		text:    text,
		colspan: 1,
		border:  model.BorderAll,
	}
	r.cells = append(r.cells, c)
	return c
}

// Cells returns the row's cells in insertion order. The returned slice is a copy.
func (r *Row) Cells() []*Cell {
	cells := make([]*Cell, len(r.cells))
	copy(cells, r.cells)
	return cells
}

// Span returns the number of grid columns the row covers.
func (r *Row) Span() int {
	n := 0
	for _, c := range r.cells {
		n += c.colspan
	}
	return n
}

// FontFamily returns the row font family, falling back to the table
func (r *Row) FontFamily() string {
	if r.style.fontFamily != nil {
		return *r.style.fontFamily
	}
	return r.table.FontFamily()
}

// SetFontFamily overrides the font family for the row
func (r *Row) SetFontFamily(family string) *Row {
	r.style.fontFamily = ptr(family)
	return r
}

// FontSize returns the font size in points
func (r *Row) FontSize() float64 {
	if r.style.fontSize != nil {
		return *r.style.fontSize
	}
	return r.table.FontSize()
}

// SetFontSize overrides the font size, in points, for the row
func (r *Row) SetFontSize(size float64) *Row {
	if err := checkFontSize(size); err != nil {
		r.table.reject(r, err)
		return r
	}
	r.table.accept(r, fieldFontSize)
	r.style.fontSize = ptr(size)
	return r
}

// FontWeight returns the row font weight, falling back to the table
func (r *Row) FontWeight() FontWeight {
	if r.style.fontWeight != nil {
		return *r.style.fontWeight
	}
	return r.table.FontWeight()
}

// SetFontWeight overrides the font weight for the row
func (r *Row) SetFontWeight(weight FontWeight) *Row {
	if err := checkFontWeight(weight); err != nil {
		r.table.reject(r, err)
		return r
	}
	r.table.accept(r, fieldFontWeight)
	r.style.fontWeight = ptr(weight)
	return r
}

// LineHeight returns the line height factor, falling back to the table
func (r *Row) LineHeight() float64 {
	if r.style.lineHeight != nil {
		return *r.style.lineHeight
	}
	return r.table.LineHeight()
}

// SetLineHeight overrides the line height factor for the row
func (r *Row) SetLineHeight(factor float64) *Row {
	r.style.lineHeight = ptr(factor)
	return r
}

// BorderWidth returns the border width in user units, falling back to the table
func (r *Row) BorderWidth() float64 {
	if r.style.borderWidth != nil {
		return *r.style.borderWidth
	}
	return r.table.BorderWidth()
}

// SetBorderWidth overrides the border width for the row
func (r *Row) SetBorderWidth(width float64) *Row {
	r.style.borderWidth = ptr(width)
	return r
}

// BackgroundColor returns the row fill color; ok is false when the row is
// not filled.
func (r *Row) BackgroundColor() (color model.Color, ok bool) {
	if r.background == nil {
		return model.Color{}, false
	}
	return *r.background, true
}

// SetBackgroundColor fills every cell of the row that has no fill of its own
func (r *Row) SetBackgroundColor(color model.Color) *Row {
	r.background = ptr(color)
	return r
}

// MinHeight returns the minimum row height in user units
func (r *Row) MinHeight() float64 {
	return r.minHeight
}

// SetMinHeight sets the minimum row height in user units
func (r *Row) SetMinHeight(height float64) *Row {
	if err := checkLength(fieldMinHeight, height); err != nil {
		r.table.reject(r, err)
		return r
	}
	r.table.accept(r, fieldMinHeight)
	r.minHeight = height
	return r
}

// IsHeader reports whether the row repeats at the top of each page the
// table continues on. Only header rows at the start of the table repeat.
func (r *Row) IsHeader() bool {
	return r.header
}

// SetHeader marks the row as a header row
func (r *Row) SetHeader(header bool) *Row {
	r.header = header
	return r
}
