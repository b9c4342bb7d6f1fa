package document

import (
	"fmt"
	"image"

	"github.com/tsawler/pdftable/core"
	"github.com/tsawler/pdftable/font"
	"github.com/tsawler/pdftable/model"
)

// Paint selects how Rect paints a rectangle
type Paint string

const (
	Stroke     Paint = "S"
	Fill       Paint = "f"
	FillStroke Paint = "B"
)

// Orientation returns the page orientation
func (d *Document) Orientation() Orientation {
	return d.orientation
}

// px converts a user-unit X to PDF space
func (d *Document) px(x float64) float64 {
	return x * d.k
}

// py converts a user-unit Y (from the top) to PDF space (from the bottom)
func (d *Document) py(y float64) float64 {
	return (d.h - y) * d.k
}

func (d *Document) setColor(p *page, op string, c model.Color) {
	r, g, b := c.Floats()
	p.content.Reals(op, r, g, b)
}

// Rect draws box with the current line width and colors.
func (d *Document) Rect(box model.BBox, paint Paint) error {
	p, err := d.current()
	if err != nil {
		return err
	}
	switch paint {
	case Stroke, Fill, FillStroke:
	default:
		return fmt.Errorf("unknown paint operator %q", string(paint))
	}

	p.content.Op("q")
	if paint != Fill {
		p.content.Reals("w", d.gs.LineWidth*d.k)
		d.setColor(p, "RG", d.gs.StrokeColor)
	}
	if paint != Stroke {
		d.setColor(p, "rg", d.gs.FillColor)
	}
	p.content.Reals("re", d.px(box.X), d.py(box.Bottom()), box.Width*d.k, box.Height*d.k)
	p.content.Op(string(paint))
	p.content.Op("Q")
	return nil
}

// Line strokes a line from (x1, y1) to (x2, y2)
func (d *Document) Line(x1, y1, x2, y2 float64) error {
	p, err := d.current()
	if err != nil {
		return err
	}
	p.content.Op("q")
	p.content.Reals("w", d.gs.LineWidth*d.k)
	d.setColor(p, "RG", d.gs.StrokeColor)
	p.content.Reals("m", d.px(x1), d.py(y1))
	p.content.Reals("l", d.px(x2), d.py(y2))
	p.content.Op("S")
	p.content.Op("Q")
	return nil
}

// Text draws s with its baseline starting at (x, y) in the current font
// and text color. Characters outside WinAnsi are replaced.
func (d *Document) Text(x, y float64, s string) error {
	p, err := d.current()
	if err != nil {
		return err
	}
	encoded, err := font.Encode(s)
	if err != nil {
		return fmt.Errorf("encode text: %w", err)
	}

	p.content.Op("q")
	d.setColor(p, "rg", d.gs.TextColor)
	p.content.Op("BT")
	p.content.Op("Tf", core.Name(d.fontResource(d.font)), core.Real(d.gs.Text.FontSizePt))
	p.content.Reals("Td", d.px(x), d.py(y))
	p.content.Op("Tj", core.String(encoded))
	p.content.Op("ET")
	p.content.Op("Q")
	return nil
}

// fontResource returns the resource name for f, registering it on first use.
func (d *Document) fontResource(f *font.Font) string {
	if name, ok := d.fonts[f.BaseFont]; ok {
		return name
	}
	name := fmt.Sprintf("F%d", len(d.fontOrder)+1)
	d.fonts[f.BaseFont] = name
	d.fontOrder = append(d.fontOrder, f.BaseFont)
	return name
}

// Image draws img scaled into box. key identifies the image: the first
// image registered under a key is embedded once and reused for every
// later call with the same key.
func (d *Document) Image(key string, img image.Image, box model.BBox) error {
	p, err := d.current()
	if err != nil {
		return err
	}

	x, ok := d.images[key]
	if !ok {
		if img == nil {
			return fmt.Errorf("image %q: no image data", key)
		}
		x = newImageXObject(fmt.Sprintf("Im%d", len(d.imageOrder)+1), img)
		d.images[key] = x
		d.imageOrder = append(d.imageOrder, key)
	}

	p.content.Op("q")
	p.content.Reals("cm", box.Width*d.k, 0, 0, box.Height*d.k, d.px(box.X), d.py(box.Bottom()))
	p.content.Op("Do", core.Name(x.name))
	p.content.Op("Q")
	return nil
}

// HasImage reports whether an image was registered under key
func (d *Document) HasImage(key string) bool {
	_, ok := d.images[key]
	return ok
}
