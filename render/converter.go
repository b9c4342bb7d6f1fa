package render

import (
	"errors"
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/tsawler/pdftable/document"
	"github.com/tsawler/pdftable/model"
	"github.com/tsawler/pdftable/table"
)

// Defaults used by New
const (
	DefaultImageDPI        = 150
	DefaultMemoryCacheSize = 64
	DefaultPaddingPt       = 2.835 // 1mm
)

// ErrUnsupportedHost is returned when a table's host cannot be drawn on.
var ErrUnsupportedHost = errors.New("table host is not a drawable canvas")

// Canvas is the drawing surface a table is rendered onto. Lengths are in
// user units from the top-left corner of the page; font sizes are in
// points. *document.Document implements it.
type Canvas interface {
	table.Host

	PageHeight() float64
	LeftMargin() float64
	TopMargin() float64
	BottomMargin() float64
	ScaleFactor() float64

	Y() float64
	SetXY(x, y float64)
	AddPage()
	PageNo() int

	SetFont(family, style string, sizePt float64) error
	SetLineWidth(w float64)
	DrawColor() model.Color
	SetDrawColor(c model.Color)
	FillColor() model.Color
	SetFillColor(c model.Color)
	TextColor() model.Color
	SetTextColor(c model.Color)
	MeasureString(s, family, style string, sizePt float64) (float64, error)

	Rect(box model.BBox, paint document.Paint) error
	Line(x1, y1, x2, y2 float64) error
	Text(x, y float64, s string) error
	Image(key string, img image.Image, box model.BBox) error
	HasImage(key string) bool
}

// Converter lays out tables and draws them onto their host canvas.
// A Converter may be shared between tables; its image cache is safe for
// concurrent use.
type Converter struct {
	logger    *zap.Logger
	dpi       float64
	paddingPt float64
	cacheSize int
	cache     *lru.Cache[string, image.Image]
}

// Option configures a Converter
type Option func(*Converter)

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithImageDPI sets the resolution images are resampled to. Values <= 0
// keep the default.
func WithImageDPI(dpi float64) Option {
	return func(c *Converter) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithMemoryCacheSize sets how many resized images are kept in memory.
// Values <= 0 keep the default.
func WithMemoryCacheSize(n int) Option {
	return func(c *Converter) {
		if n > 0 {
			c.cacheSize = n
		}
	}
}

// WithDefaultPadding sets the padding, in points, of cells without their
// own. Negative values keep the default.
func WithDefaultPadding(pt float64) Option {
	return func(c *Converter) {
		if pt >= 0 {
			c.paddingPt = pt
		}
	}
}

// New creates a Converter
func New(opts ...Option) *Converter {
	c := &Converter{
		logger:    zap.NewNop(),
		dpi:       DefaultImageDPI,
		paddingPt: DefaultPaddingPt,
		cacheSize: DefaultMemoryCacheSize,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Only fails for a non-positive size.
	c.cache, _ = lru.New[string, image.Image](c.cacheSize)
	return c
}

var defaultConverter = New()

// Convert renders t with a shared default Converter. It has the
// table.RenderFunc signature.
func Convert(t *table.Table, cacheDir string) error {
	return defaultConverter.Render(t, cacheDir)
}
