package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/tsawler/pdftable/model"
)

// PageSize is a page size in points, portrait orientation
type PageSize struct {
	Width  float64
	Height float64
}

// Standard page sizes
var (
	A3     = PageSize{Width: 841.89, Height: 1190.55}
	A4     = PageSize{Width: 595.28, Height: 841.89}
	A5     = PageSize{Width: 419.53, Height: 595.28}
	Letter = PageSize{Width: 612, Height: 792}
	Legal  = PageSize{Width: 612, Height: 1008}
)

var pageSizes = map[string]PageSize{
	"a3":     A3,
	"a4":     A4,
	"a5":     A5,
	"letter": Letter,
	"legal":  Legal,
}

// ParsePageSize returns the standard page size with the given name
// (A3, A4, A5, Letter, Legal; case-insensitive).
func ParsePageSize(name string) (PageSize, error) {
	if s, ok := pageSizes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return PageSize{}, fmt.Errorf("unknown page size %q", name)
}

// Orientation is the page orientation
type Orientation string

const (
	Portrait  Orientation = "P"
	Landscape Orientation = "L"
)

// ParseOrientation accepts P, L, portrait or landscape.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "p", "portrait":
		return Portrait, nil
	case "l", "landscape":
		return Landscape, nil
	}
	return "", fmt.Errorf("unknown orientation %q", s)
}

// Unit is the user unit for every length the document accepts or reports,
// except font sizes which are always in points.
type Unit string

const (
	UnitPoint      Unit = "pt"
	UnitMillimeter Unit = "mm"
	UnitCentimeter Unit = "cm"
	UnitInch       Unit = "in"
)

// ScaleFactor returns the number of points in one unit.
func (u Unit) ScaleFactor() (float64, error) {
	switch u {
	case UnitPoint:
		return 1, nil
	case UnitMillimeter:
		return 72 / 25.4, nil
	case UnitCentimeter:
		return 72 / 2.54, nil
	case UnitInch:
		return 72, nil
	}
	return 0, fmt.Errorf("unknown unit %q", string(u))
}

// config holds the settings collected from options
type config struct {
	size        PageSize
	orientation Orientation
	unit        Unit
	margins     *model.Insets
	fontFamily  string
	fontStyle   string
	fontSizePt  float64
	lineWidth   *float64
	compress    bool
	title       string
	author      string
	created     time.Time
}

func defaultConfig() config {
	return config{
		size:        A4,
		orientation: Portrait,
		unit:        UnitMillimeter,
		fontFamily:  "Helvetica",
		fontSizePt:  12,
		compress:    true,
	}
}

// Option configures a Document
type Option func(*config)

// WithPageSize sets the page size
func WithPageSize(size PageSize) Option {
	return func(c *config) {
		c.size = size
	}
}

// WithOrientation sets the page orientation
func WithOrientation(o Orientation) Option {
	return func(c *config) {
		c.orientation = o
	}
}

// WithUnit sets the user unit. Margins and line width options are
// interpreted in this unit regardless of option order.
func WithUnit(u Unit) Option {
	return func(c *config) {
		c.unit = u
	}
}

// WithMargins sets the page margins in user units. The default is 1cm on
// the left, top and right and 2cm at the bottom.
func WithMargins(m model.Insets) Option {
	return func(c *config) {
		c.margins = &m
	}
}

// WithFont sets the initial font. size is in points.
func WithFont(family, style string, size float64) Option {
	return func(c *config) {
		c.fontFamily = family
		c.fontStyle = style
		c.fontSizePt = size
	}
}

// WithLineWidth sets the initial stroke width in user units. The default
// is 0.2mm.
func WithLineWidth(w float64) Option {
	return func(c *config) {
		c.lineWidth = &w
	}
}

// WithCompression enables or disables Flate compression of page content.
func WithCompression(on bool) Option {
	return func(c *config) {
		c.compress = on
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(c *config) {
		c.author = author
	}
}

// WithCreationDate sets the creation date. The default is the time New
// was called.
func WithCreationDate(t time.Time) Option {
	return func(c *config) {
		c.created = t
	}
}
