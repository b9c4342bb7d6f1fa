package document

import (
	"errors"
	"fmt"
	"time"

	"github.com/tsawler/pdftable/contentstream"
	"github.com/tsawler/pdftable/font"
	"github.com/tsawler/pdftable/graphicsstate"
	"github.com/tsawler/pdftable/model"
)

// ErrNoPage is returned by drawing operations before the first AddPage.
var ErrNoPage = errors.New("document has no page")

// Document is a PDF document under construction. Lengths are in user
// units measured from the top-left corner of the page, with Y growing
// downwards; font sizes are in points.
type Document struct {
	unit Unit
	k    float64 // points per user unit

	orientation Orientation
	w, h        float64 // current page size, user units

	lMargin, tMargin, rMargin, bMargin float64

	x, y float64

	gs   *graphicsstate.GraphicsState
	font *font.Font

	compress bool
	title    string
	author   string
	created  time.Time

	pages      []*page
	fonts      map[string]string // base font -> resource name
	fontOrder  []string
	images     map[string]*imageXObject // caller key -> image
	imageOrder []string
}

type page struct {
	w, h    float64 // points
	content contentstream.Builder
}

// New creates an empty document. No page exists until AddPage is called.
func New(opts ...Option) (*Document, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	k, err := cfg.unit.ScaleFactor()
	if err != nil {
		return nil, err
	}
	if cfg.size.Width <= 0 || cfg.size.Height <= 0 {
		return nil, fmt.Errorf("invalid page size %vx%v", cfg.size.Width, cfg.size.Height)
	}
	orientation, err := ParseOrientation(string(cfg.orientation))
	if err != nil {
		return nil, err
	}

	d := &Document{
		unit:        cfg.unit,
		k:           k,
		orientation: orientation,
		gs:          graphicsstate.NewGraphicsState(),
		compress:    cfg.compress,
		title:       cfg.title,
		author:      cfg.author,
		created:     cfg.created,
		fonts:       make(map[string]string),
		images:      make(map[string]*imageXObject),
	}
	if d.created.IsZero() {
		d.created = time.Now()
	}

	d.w, d.h = cfg.size.Width/k, cfg.size.Height/k
	if orientation == Landscape {
		d.w, d.h = d.h, d.w
	}

	margins := model.Insets{Top: 28.35 / k, Right: 28.35 / k, Bottom: 56.7 / k, Left: 28.35 / k}
	if cfg.margins != nil {
		margins = *cfg.margins
	}
	for _, v := range []float64{margins.Top, margins.Right, margins.Bottom, margins.Left} {
		if v < 0 {
			return nil, fmt.Errorf("invalid margins %+v: must not be negative", margins)
		}
	}
	if margins.Horizontal() >= d.w || margins.Vertical() >= d.h {
		return nil, fmt.Errorf("margins %+v leave no room on the page", margins)
	}
	d.lMargin, d.tMargin, d.rMargin, d.bMargin = margins.Left, margins.Top, margins.Right, margins.Bottom
	d.x, d.y = d.lMargin, d.tMargin

	d.gs.SetLineWidth(0.567 / k)
	if cfg.lineWidth != nil {
		d.gs.SetLineWidth(*cfg.lineWidth)
	}
	if err := d.SetFont(cfg.fontFamily, cfg.fontStyle, cfg.fontSizePt); err != nil {
		return nil, err
	}

	return d, nil
}

// ScaleFactor returns the number of points per user unit
func (d *Document) ScaleFactor() float64 {
	return d.k
}

// Unit returns the user unit
func (d *Document) Unit() Unit {
	return d.unit
}

// AddPage starts a new page and moves the cursor to the top-left margin
// corner. Page geometry follows the document's size and orientation.
func (d *Document) AddPage() {
	d.pages = append(d.pages, &page{w: d.w * d.k, h: d.h * d.k})
	d.x, d.y = d.lMargin, d.tMargin
}

// PageNo returns the number of the current page, 0 before the first page.
func (d *Document) PageNo() int {
	return len(d.pages)
}

// PageContent returns the uncompressed content stream of page n, counted
// from 1.
func (d *Document) PageContent(n int) ([]byte, error) {
	if n < 1 || n > len(d.pages) {
		return nil, fmt.Errorf("page %d out of range 1..%d", n, len(d.pages))
	}
	return d.pages[n-1].content.Bytes(), nil
}

func (d *Document) current() (*page, error) {
	if len(d.pages) == 0 {
		return nil, ErrNoPage
	}
	return d.pages[len(d.pages)-1], nil
}

// PageWidth returns the page width in user units
func (d *Document) PageWidth() float64 {
	return d.w
}

// PageHeight returns the page height in user units
func (d *Document) PageHeight() float64 {
	return d.h
}

// Page margins in user units
func (d *Document) LeftMargin() float64   { return d.lMargin }
func (d *Document) TopMargin() float64    { return d.tMargin }
func (d *Document) RightMargin() float64  { return d.rMargin }
func (d *Document) BottomMargin() float64 { return d.bMargin }

// X returns the horizontal cursor position
func (d *Document) X() float64 {
	return d.x
}

// Y returns the vertical cursor position
func (d *Document) Y() float64 {
	return d.y
}

// SetX moves the cursor horizontally. A negative value is measured from
// the right edge of the page.
func (d *Document) SetX(x float64) {
	if x < 0 {
		x += d.w
	}
	d.x = x
}

// SetY moves the cursor vertically. A negative value is measured from the
// bottom edge of the page.
func (d *Document) SetY(y float64) {
	if y < 0 {
		y += d.h
	}
	d.y = y
}

// SetXY moves the cursor
func (d *Document) SetXY(x, y float64) {
	d.SetX(x)
	d.SetY(y)
}

// Ln moves the cursor to the left margin, h user units further down.
func (d *Document) Ln(h float64) {
	d.x = d.lMargin
	d.y += h
}

// LineWidth returns the stroke width in user units
func (d *Document) LineWidth() float64 {
	return d.gs.LineWidth
}

// SetLineWidth sets the stroke width in user units
func (d *Document) SetLineWidth(w float64) {
	d.gs.SetLineWidth(w)
}

// DrawColor returns the stroke color
func (d *Document) DrawColor() model.Color {
	return d.gs.StrokeColor
}

// SetDrawColor sets the stroke color for lines and borders
func (d *Document) SetDrawColor(c model.Color) {
	d.gs.SetStrokeColor(c)
}

// FillColor returns the fill color
func (d *Document) FillColor() model.Color {
	return d.gs.FillColor
}

// SetFillColor sets the fill color
func (d *Document) SetFillColor(c model.Color) {
	d.gs.SetFillColor(c)
}

// TextColor returns the text color
func (d *Document) TextColor() model.Color {
	return d.gs.TextColor
}

// SetTextColor sets the text color
func (d *Document) SetTextColor(c model.Color) {
	d.gs.SetTextColor(c)
}

// SetFont selects one of the standard fonts. size is in points.
func (d *Document) SetFont(family, style string, size float64) error {
	f, err := font.Lookup(family, style)
	if err != nil {
		return err
	}
	if size <= 0 {
		return fmt.Errorf("invalid font size %v", size)
	}
	d.font = f
	d.gs.SetFont(f.Family, f.Style, size)
	return nil
}

// FontFamily returns the canonical family of the current font
func (d *Document) FontFamily() string {
	return d.gs.Text.FontFamily
}

// FontStyle returns the style of the current font: "", "B", "I" or "BI"
func (d *Document) FontStyle() string {
	return d.gs.Text.FontStyle
}

// FontSizePt returns the current font size in points
func (d *Document) FontSizePt() float64 {
	return d.gs.Text.FontSizePt
}

// FontSize returns the current font size in user units
func (d *Document) FontSize() float64 {
	return d.gs.Text.FontSizePt / d.k
}

// MeasureString returns the width of s in user units when set in the
// given font. size is in points.
func (d *Document) MeasureString(s, family, style string, size float64) (float64, error) {
	f, err := font.Lookup(family, style)
	if err != nil {
		return 0, err
	}
	return f.StringWidth(s, size) / d.k, nil
}

// StringWidth returns the width of s in user units in the current font
func (d *Document) StringWidth(s string) float64 {
	return d.font.StringWidth(s, d.gs.Text.FontSizePt) / d.k
}
