package table

import (
	"errors"
	"strings"
)

// Host is the document a table is drawn into. The table reads it at
// construction and when resolving a percentage width; it never writes to it.
type Host interface {
	// LineWidth is the current stroke width in user units.
	LineWidth() float64
	// FontFamily is the current font family.
	FontFamily() string
	// FontSizePt is the current font size in points, independent of the
	// document's user unit.
	FontSizePt() float64
	// FontStyle is the current font style string, e.g. "", "B", "BI".
	FontStyle() string
	// PageWidth is the width of the current page in user units.
	PageWidth() float64
	// RightMargin is the right page margin in user units.
	RightMargin() float64
	// X is the current horizontal cursor position in user units.
	X() float64
}

// RenderFunc lays out and draws a finished table onto its host.
// cacheDir is the directory passed at construction, possibly empty.
type RenderFunc func(t *Table, cacheDir string) error

// boldMarker is the host font style letter that selects a bold weight.
const boldMarker = "B"

// Table collects style defaults and rows for one rendered table
type Table struct {
	host     Host
	cacheDir string
	render   RenderFunc

	rows []*Row

	borderWidth     float64
	lineHeight      float64
	fontFamily      string
	fontSize        float64 // points
	fontWeight      FontWeight
	width           *float64
	widthPercentage bool

	// Pending validation errors, in the order they were made
	rejected []rejection
	ended    bool
}

// Option configures a Table at construction
type Option func(*Table)

// WithCacheDir sets the directory the rendering engine may use to cache
// resized images. The table never inspects it.
func WithCacheDir(dir string) Option {
	return func(t *Table) {
		t.cacheDir = dir
	}
}

// WithRenderer sets the rendering engine invoked by End.
func WithRenderer(fn RenderFunc) Option {
	return func(t *Table) {
		t.render = fn
	}
}

// New creates a table bound to host. The border width, font family, font
// size (in points) and font weight are taken from the host's current state;
// the line height factor starts at 1.
func New(host Host, opts ...Option) *Table {
	if host == nil {
		panic("table: nil host")
	}

	t := &Table{
		host:       host,
		lineHeight: 1,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.borderWidth = host.LineWidth()
	t.fontFamily = host.FontFamily()
	t.fontSize = host.FontSizePt()
	t.fontWeight = FontWeightNormal
	if strings.Contains(host.FontStyle(), boldMarker) {
		t.fontWeight = FontWeightBold
	}

	return t
}

// reject records err against one property of owner, replacing an
// earlier error for the same property.
func (t *Table) reject(owner any, err *InvalidConfigurationError) {
	for i, r := range t.rejected {
		if r.owner == owner && r.err.Field == err.Field {
			t.rejected[i].err = err
			return
		}
	}
	t.rejected = append(t.rejected, rejection{owner: owner, err: err})
}

// accept clears a pending error once the property receives a valid value.
func (t *Table) accept(owner any, field string) {
	kept := t.rejected[:0]
	for _, r := range t.rejected {
		if r.owner != owner || r.err.Field != field {
			kept = append(kept, r)
		}
	}
	t.rejected = kept
}

// Err returns the pending validation errors joined together, or nil.
// A property that was rejected and later set to a valid value no longer
// contributes an error.
func (t *Table) Err() error {
	if len(t.rejected) == 0 {
		return nil
	}
	errs := make([]error, len(t.rejected))
	for i, r := range t.rejected {
		errs[i] = r.err
	}
	return errors.Join(errs...)
}

// Host returns the document the table is bound to
func (t *Table) Host() Host {
	return t.host
}

// CacheDir returns the cache directory given at construction
func (t *Table) CacheDir() string {
	return t.cacheDir
}

// BorderWidth returns the border stroke width in user units
func (t *Table) BorderWidth() float64 {
	return t.borderWidth
}

// SetBorderWidth sets the border stroke width in user units
func (t *Table) SetBorderWidth(width float64) *Table {
	t.borderWidth = width
	return t
}

// LineHeight returns the factor applied to the font size to get the
// height of one text line. A factor of 1.5 gives lines one and a half
// times the font size.
func (t *Table) LineHeight() float64 {
	return t.lineHeight
}

// SetLineHeight sets the line height factor
func (t *Table) SetLineHeight(factor float64) *Table {
	t.lineHeight = factor
	return t
}

// FontFamily returns the font family
func (t *Table) FontFamily() string {
	return t.fontFamily
}

// SetFontFamily sets the font family
func (t *Table) SetFontFamily(family string) *Table {
	t.fontFamily = family
	return t
}

// FontSize returns the font size in points
func (t *Table) FontSize() float64 {
	return t.fontSize
}

// SetFontSize sets the font size in points. Values that are not finite
// and positive are rejected.
func (t *Table) SetFontSize(size float64) *Table {
	if err := checkFontSize(size); err != nil {
		t.reject(t, err)
		return t
	}
	t.accept(t, fieldFontSize)
	t.fontSize = size
	return t
}

// FontWeight returns the font weight
func (t *Table) FontWeight() FontWeight {
	return t.fontWeight
}

// SetFontWeight sets the font weight; only normal and bold are accepted.
func (t *Table) SetFontWeight(weight FontWeight) *Table {
	if err := checkFontWeight(weight); err != nil {
		t.reject(t, err)
		return t
	}
	t.accept(t, fieldFontWeight)
	t.fontWeight = weight
	return t
}

// SetWidth sets the table width. With percentage set, width is a
// percentage (0-100) of the space left on the page when the width is
// resolved; otherwise it is an absolute length in user units. Widths that
// are not finite are rejected; negative widths are left to the renderer.
func (t *Table) SetWidth(width float64, percentage bool) *Table {
	if !isNumeric(width) {
		t.reject(t, invalid(fieldWidth, width, "must be numeric"))
		return t
	}
	t.accept(t, fieldWidth)
	t.width = ptr(width)
	t.widthPercentage = percentage
	return t
}

// WidthPercentage reports whether the width is a percentage
func (t *Table) WidthPercentage() bool {
	return t.widthPercentage
}

// ResolveWidth returns the table width in user units. ok is false when no
// width was set, meaning the renderer sizes the table from its content.
// Percentage widths are resolved against the host's current geometry.
func (t *Table) ResolveWidth() (width float64, ok bool) {
	if t.width == nil {
		return 0, false
	}
	if t.widthPercentage {
		available := t.host.PageWidth() - t.host.RightMargin() - t.host.X()
		return *t.width / 100 * available, true
	}
	return *t.width, true
}

// NewRow appends a new empty row and returns it.
func (t *Table) NewRow() *Row {
	r := &Row{table: t}
	t.rows = append(t.rows, r)
	return r
}

// Rows returns the rows in insertion order. The returned slice is a copy.
func (t *Table) Rows() []*Row {
	rows := make([]*Row, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// End renders the table and returns the host document. It fails without
// rendering if validation errors were recorded, if no renderer is set, or
// if the table was already ended. Errors from the renderer are returned
// unchanged.
func (t *Table) End() (Host, error) {
	if t.ended {
		return nil, ErrAlreadyEnded
	}
	if err := t.Err(); err != nil {
		return nil, err
	}
	if t.render == nil {
		return nil, ErrNoRenderer
	}

	t.ended = true
	if err := t.render(t, t.cacheDir); err != nil {
		return nil, err
	}
	return t.host, nil
}
