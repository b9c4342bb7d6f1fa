package document

import (
	"image"

	"github.com/tsawler/pdftable/core"
	"github.com/tsawler/pdftable/internal/filters"
)

// imageXObject is an image flattened to 8-bit RGB for embedding
type imageXObject struct {
	name          string
	width, height int
	rgb           []byte
}

// newImageXObject flattens img onto a white background.
func newImageXObject(name string, img image.Image) *imageXObject {
	b := img.Bounds()
	x := &imageXObject{
		name:   name,
		width:  b.Dx(),
		height: b.Dy(),
		rgb:    make([]byte, 0, b.Dx()*b.Dy()*3),
	}

	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			// RGBA is alpha-premultiplied, so adding the missing
			// coverage composites over white.
			r, g, bl, a := img.At(px, py).RGBA()
			blank := 0xffff - a
			x.rgb = append(x.rgb, byte((r+blank)>>8), byte((g+blank)>>8), byte((bl+blank)>>8))
		}
	}
	return x
}

// stream returns the image XObject stream
func (x *imageXObject) stream() (*core.Stream, error) {
	data, err := filters.FlateEncode(x.rgb)
	if err != nil {
		return nil, err
	}
	return &core.Stream{
		Dict: core.Dict{
			"Type":             core.Name("XObject"),
			"Subtype":          core.Name("Image"),
			"Width":            core.Int(x.width),
			"Height":           core.Int(x.height),
			"ColorSpace":       core.Name("DeviceRGB"),
			"BitsPerComponent": core.Int(8),
			"Filter":           core.Name(filters.Name),
		},
		Data: data,
	}, nil
}
