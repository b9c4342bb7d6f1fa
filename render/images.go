package render

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/pdftable/table"
)

// placedImage is a cell image ready to draw
type placedImage struct {
	key    string      // cache key, also the document image key
	img    image.Image // nil when the document already holds key
	width  float64     // user units
	height float64
}

// imageRequest is one cell image to load
type imageRequest struct {
	cell *table.Cell
	spec *table.Image
}

func collectImages(grid []gridRow) []imageRequest {
	var reqs []imageRequest
	for _, gr := range grid {
		for _, pc := range gr.cells {
			if img := pc.cell.Image(); img != nil {
				reqs = append(reqs, imageRequest{cell: pc.cell, spec: img})
			}
		}
	}
	return reqs
}

// loadImages decodes, resizes and caches every cell image concurrently.
// k is the canvas scale factor in points per user unit.
func (c *Converter) loadImages(ctx context.Context, reqs []imageRequest, cacheDir string, k float64, has func(string) bool) (map[*table.Cell]*placedImage, error) {
	results := make([]*placedImage, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := c.loadImage(req.spec, cacheDir, k, has)
			if err != nil {
				return fmt.Errorf("image %s: %w", req.spec.Path, err)
			}
			results[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	placed := make(map[*table.Cell]*placedImage, len(reqs))
	for i, req := range reqs {
		placed[req.cell] = results[i]
	}
	return placed, nil
}

func (c *Converter) loadImage(spec *table.Image, cacheDir string, k float64, has func(string) bool) (*placedImage, error) {
	info, err := os.Stat(spec.Path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(spec.Path)
	if err != nil {
		return nil, err
	}
	cfg, format, err := image.DecodeConfig(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("empty image")
	}

	w, h := spec.Width, spec.Height
	aspect := float64(cfg.Width) / float64(cfg.Height)
	switch {
	case w == 0:
		w = h * aspect
	case h == 0:
		h = w / aspect
	}

	// Target resolution; never upscale.
	pxW := int(math.Ceil(w * k / 72 * c.dpi))
	pxH := int(math.Ceil(h * k / 72 * c.dpi))
	if pxW >= cfg.Width || pxH >= cfg.Height {
		pxW, pxH = cfg.Width, cfg.Height
	}
	pxW, pxH = max(pxW, 1), max(pxH, 1)

	key := cacheKey(spec.Path, info.Size(), info.ModTime().UnixNano(), pxW, pxH)
	p := &placedImage{key: key, width: w, height: h}

	if has != nil && has(key) {
		return p, nil
	}
	if img, ok := c.cache.Get(key); ok {
		c.logger.Debug("image cache hit", zap.String("path", spec.Path), zap.String("source", "memory"))
		p.img = img
		return p, nil
	}
	if cacheDir != "" {
		if img, err := readCached(cacheDir, key); err == nil {
			c.logger.Debug("image cache hit", zap.String("path", spec.Path), zap.String("source", "disk"))
			c.cache.Add(key, img)
			p.img = img
			return p, nil
		}
	}

	c.logger.Debug("image cache miss",
		zap.String("path", spec.Path),
		zap.String("format", format),
		zap.Int("width", pxW),
		zap.Int("height", pxH))

	img, err := decodeFile(spec.Path)
	if err != nil {
		return nil, err
	}
	if pxW != cfg.Width || pxH != cfg.Height {
		dst := image.NewRGBA(image.Rect(0, 0, pxW, pxH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}

	if cacheDir != "" {
		if err := writeCached(cacheDir, key, img); err != nil {
			c.logger.Warn("failed to write image cache", zap.String("dir", cacheDir), zap.Error(err))
		}
	}
	c.cache.Add(key, img)
	p.img = img
	return p, nil
}

// cacheKey identifies a resized image by its source file and target size
func cacheKey(path string, size, modTime int64, w, h int) string {
	sum := xxhash.Sum64String(fmt.Sprintf("%s|%d|%d|%dx%d", path, size, modTime, w, h))
	return fmt.Sprintf("%016x", sum)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func cachePath(dir, key string) string {
	return filepath.Join(dir, key+".png")
}

func readCached(dir, key string) (image.Image, error) {
	f, err := os.Open(cachePath(dir, key))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// writeCached stores img as PNG, renaming into place so concurrent
// renders never read a partial file.
func writeCached(dir, key string, img image.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, key+".*.tmp")
	if err != nil {
		return err
	}
	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), cachePath(dir, key))
}
