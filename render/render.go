package render

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/pdftable/document"
	"github.com/tsawler/pdftable/model"
	"github.com/tsawler/pdftable/table"
)

// epsilon absorbs rounding when comparing positions and widths
const epsilon = 1e-9

// cellStyle is the resolved text style of one cell
type cellStyle struct {
	family  string
	style   string
	sizePt  float64
	lineBox float64 // height of one text line, user units
	ascent  float64 // baseline offset from the line box middle
	padding model.Insets
}

// cellLayout is a cell with its final geometry and wrapped content
type cellLayout struct {
	placed        placedCell
	x             float64 // offset from the table's left edge
	width         float64
	style         cellStyle
	lines         []textLine
	image         *placedImage
	imageW        float64
	imageH        float64
	contentHeight float64
}

type rowLayout struct {
	row    *table.Row
	cells  []cellLayout
	height float64
}

// hostState is the canvas drawing state restored after rendering
type hostState struct {
	family, style string
	sizePt        float64
	lineWidth     float64
	draw          model.Color
	fill          model.Color
	text          model.Color
}

func saveState(cv Canvas) hostState {
	return hostState{
		family:    cv.FontFamily(),
		style:     cv.FontStyle(),
		sizePt:    cv.FontSizePt(),
		lineWidth: cv.LineWidth(),
		draw:      cv.DrawColor(),
		fill:      cv.FillColor(),
		text:      cv.TextColor(),
	}
}

func (s hostState) restore(cv Canvas) error {
	cv.SetLineWidth(s.lineWidth)
	cv.SetDrawColor(s.draw)
	cv.SetFillColor(s.fill)
	cv.SetTextColor(s.text)
	if err := cv.SetFont(s.family, s.style, s.sizePt); err != nil {
		return fmt.Errorf("failed to restore font: %w", err)
	}
	return nil
}

// Render lays out t and draws it on its host, starting at the host's
// cursor. It has the table.RenderFunc signature. On return the cursor is
// at the table's left edge below its last row and the host's font, line
// width and colors are as they were before.
func (c *Converter) Render(t *table.Table, cacheDir string) (err error) {
	cv, ok := t.Host().(Canvas)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedHost, t.Host())
	}
	if cv.PageNo() == 0 {
		cv.AddPage()
	}

	grid, columns := buildGrid(t.Rows())
	if columns == 0 {
		c.logger.Debug("table has no cells", zap.Int("rows", len(grid)))
		return nil
	}

	saved := saveState(cv)
	defer func() {
		err = errors.Join(err, saved.restore(cv))
	}()

	k := cv.ScaleFactor()
	images, err := c.loadImages(context.Background(), collectImages(grid), cacheDir, k, cv.HasImage)
	if err != nil {
		return err
	}

	styles, err := c.resolveStyles(cv, grid)
	if err != nil {
		return err
	}
	widths := c.columnWidths(cv, t, grid, columns, styles, images)
	rows := c.layoutRows(cv, grid, widths, styles, images)

	return c.draw(cv, rows, headerCount(grid), saved)
}

// resolveStyles computes the text style of every cell and checks that
// its font exists.
func (c *Converter) resolveStyles(cv Canvas, grid []gridRow) (map[*table.Cell]cellStyle, error) {
	k := cv.ScaleFactor()
	styles := make(map[*table.Cell]cellStyle)
	for _, gr := range grid {
		for _, pc := range gr.cells {
			cell := pc.cell
			st := cellStyle{
				family:  cell.FontFamily(),
				style:   cell.FontWeight().Style(),
				sizePt:  cell.FontSize(),
				lineBox: cell.FontSize() / k * cell.LineHeight(),
				ascent:  0.3 * cell.FontSize() / k,
			}
			pad, ok := cell.Padding()
			if !ok {
				pad = model.UniformInsets(c.paddingPt / k)
			}
			st.padding = pad

			if _, err := cv.MeasureString("", st.family, st.style, st.sizePt); err != nil {
				return nil, fmt.Errorf("cell %q: %w", cell.Text(), err)
			}
			styles[cell] = st
		}
	}
	return styles, nil
}

func measurer(cv Canvas, st cellStyle) measureFunc {
	return func(s string) float64 {
		// Fonts were validated in resolveStyles.
		w, _ := cv.MeasureString(s, st.family, st.style, st.sizePt)
		return w
	}
}

// columnWidths sizes the grid columns. Without a usable table width the
// table is as wide as its content, but never wider than the space left on
// the page.
func (c *Converter) columnWidths(cv Canvas, t *table.Table, grid []gridRow, columns int, styles map[*table.Cell]cellStyle, images map[*table.Cell]*placedImage) []float64 {
	natural := make([]float64, columns)
	pinned := make([]*float64, columns)

	cellNatural := func(pc placedCell) float64 {
		st := styles[pc.cell]
		w := 0.0
		if pc.cell.Text() != "" {
			w = naturalWidth(pc.cell.Text(), measurer(cv, st))
		}
		if img := images[pc.cell]; img != nil && img.width > w {
			w = img.width
		}
		return w + st.padding.Horizontal()
	}

	var spanning []placedCell
	for _, gr := range grid {
		for _, pc := range gr.cells {
			if w, ok := pc.cell.Width(); ok && w > 0 && (pinned[pc.col] == nil || w > *pinned[pc.col]) {
				pinned[pc.col] = &w
			}
			if pc.span > 1 {
				spanning = append(spanning, pc)
				continue
			}
			natural[pc.col] = max(natural[pc.col], cellNatural(pc))
		}
	}
	for _, pc := range spanning {
		need := cellNatural(pc)
		have := spanWidth(natural, pc.col, pc.span)
		if need > have {
			extra := (need - have) / float64(pc.span)
			for i := pc.col; i < pc.col+pc.span; i++ {
				natural[i] += extra
			}
		}
	}

	available := cv.PageWidth() - cv.RightMargin() - cv.X()
	total, ok := t.ResolveWidth()
	if !ok || total <= 0 {
		total = 0
		for i := range natural {
			if pinned[i] != nil {
				total += *pinned[i]
			} else {
				total += natural[i]
			}
		}
		total = min(total, available)
	}

	widths := distributeWidths(total, natural, pinned)
	c.logger.Debug("column widths",
		zap.Float64("table", total),
		zap.Float64("available", available),
		zap.Float64s("columns", widths))
	return widths
}

// layoutRows wraps cell text and computes row heights
func (c *Converter) layoutRows(cv Canvas, grid []gridRow, widths []float64, styles map[*table.Cell]cellStyle, images map[*table.Cell]*placedImage) []rowLayout {
	rows := make([]rowLayout, 0, len(grid))
	for _, gr := range grid {
		rl := rowLayout{row: gr.row, height: gr.row.MinHeight()}
		for _, pc := range gr.cells {
			st := styles[pc.cell]
			cl := cellLayout{
				placed: pc,
				x:      spanWidth(widths, 0, pc.col),
				width:  spanWidth(widths, pc.col, pc.span),
				style:  st,
			}
			inner := cl.width - st.padding.Horizontal()

			if img := images[pc.cell]; img != nil {
				cl.image = img
				cl.imageW, cl.imageH = img.width, img.height
				if inner > 0 && cl.imageW > inner {
					cl.imageH *= inner / cl.imageW
					cl.imageW = inner
				}
				cl.contentHeight = cl.imageH
			}
			if text := pc.cell.Text(); text != "" || cl.image == nil {
				cl.lines = wrapText(text, inner, measurer(cv, st))
				cl.contentHeight += float64(len(cl.lines)) * st.lineBox
			}

			h := max(cl.contentHeight+st.padding.Vertical(), pc.cell.MinHeight())
			rl.height = max(rl.height, h)
			rl.cells = append(rl.cells, cl)
		}
		rows = append(rows, rl)
	}
	return rows
}

// draw places rows top to bottom, breaking pages where a row does not fit
// above the bottom margin. Leading header rows repeat after each break and
// are never left on a page without the first body row.
func (c *Converter) draw(cv Canvas, rows []rowLayout, headers int, saved hostState) error {
	x0, y := cv.X(), cv.Y()
	top := cv.TopMargin()
	bottom := cv.PageHeight() - cv.BottomMargin()
	breaks := 0

	if headers > 0 && headers < len(rows) {
		block := 0.0
		for _, rl := range rows[:headers+1] {
			block += rl.height
		}
		if y+block > bottom+epsilon && y > top+epsilon {
			cv.AddPage()
			y = top
			breaks++
			c.logger.Debug("page break", zap.Int("row", 0), zap.Int("page", cv.PageNo()))
		}
	}

	for i, rl := range rows {
		if y+rl.height > bottom+epsilon && y > top+epsilon {
			cv.AddPage()
			y = top
			breaks++
			c.logger.Debug("page break", zap.Int("row", i), zap.Int("page", cv.PageNo()))

			if i >= headers {
				for _, hr := range rows[:headers] {
					if err := c.drawRow(cv, hr, x0, y, saved); err != nil {
						return err
					}
					y += hr.height
				}
			}
		}

		if err := c.drawRow(cv, rl, x0, y, saved); err != nil {
			return err
		}
		y += rl.height
	}

	cv.SetXY(x0, y)
	c.logger.Debug("table rendered",
		zap.Int("rows", len(rows)),
		zap.Int("header_rows", headers),
		zap.Int("page_breaks", breaks))
	return nil
}

func (c *Converter) drawRow(cv Canvas, rl rowLayout, x0, y float64, saved hostState) error {
	for _, cl := range rl.cells {
		box := model.NewBBox(x0+cl.x, y, cl.width, rl.height)
		if err := c.drawCell(cv, cl, box, saved); err != nil {
			return err
		}
	}
	return nil
}

func (c *Converter) drawCell(cv Canvas, cl cellLayout, box model.BBox, saved hostState) error {
	cell := cl.placed.cell
	st := cl.style

	if bg, ok := cell.BackgroundColor(); ok {
		cv.SetFillColor(bg)
		if err := cv.Rect(box, document.Fill); err != nil {
			return err
		}
	}

	area := box.Inset(st.padding)
	offset := 0.0
	switch cell.VerticalAlign() {
	case model.VAlignMiddle:
		offset = (area.Height - cl.contentHeight) / 2
	case model.VAlignBottom:
		offset = area.Height - cl.contentHeight
	}
	ty := area.Y + max(offset, 0)

	if cl.image != nil {
		ix := area.X
		switch cell.Align() {
		case model.AlignCenter:
			ix += (area.Width - cl.imageW) / 2
		case model.AlignRight:
			ix = area.Right() - cl.imageW
		}
		if err := cv.Image(cl.image.key, cl.image.img, model.NewBBox(ix, ty, cl.imageW, cl.imageH)); err != nil {
			return err
		}
		ty += cl.imageH
	}

	if len(cl.lines) > 0 {
		if err := cv.SetFont(st.family, st.style, st.sizePt); err != nil {
			return err
		}
		color, ok := cell.TextColor()
		if !ok {
			color = saved.text
		}
		cv.SetTextColor(color)

		measure := measurer(cv, st)
		for i, line := range cl.lines {
			baseline := ty + float64(i)*st.lineBox + st.lineBox/2 + st.ascent
			if err := drawLine(cv, line, cell.Align(), area, baseline, measure); err != nil {
				return err
			}
		}
	}

	return drawBorder(cv, cell, box)
}

func drawLine(cv Canvas, line textLine, align model.TextAlignment, area model.BBox, baseline float64, measure measureFunc) error {
	if line.text == "" {
		return nil
	}

	words := strings.Fields(line.text)
	if align == model.AlignJustify && !line.last && len(words) > 1 {
		used := 0.0
		for _, w := range words {
			used += measure(w)
		}
		gap := (area.Width - used) / float64(len(words)-1)
		x := area.X
		for _, w := range words {
			if err := cv.Text(x, baseline, w); err != nil {
				return err
			}
			x += measure(w) + gap
		}
		return nil
	}

	x := area.X
	switch align {
	case model.AlignCenter:
		x += (area.Width - measure(line.text)) / 2
	case model.AlignRight:
		x = area.Right() - measure(line.text)
	}
	return cv.Text(x, baseline, line.text)
}

func drawBorder(cv Canvas, cell *table.Cell, box model.BBox) error {
	border := cell.Border()
	bw := cell.BorderWidth()
	if border == model.BorderNone || bw <= 0 {
		return nil
	}

	cv.SetLineWidth(bw)
	if border == model.BorderAll {
		return cv.Rect(box, document.Stroke)
	}

	sides := []struct {
		side           model.Border
		x1, y1, x2, y2 float64
	}{
		{model.BorderLeft, box.Left(), box.Top(), box.Left(), box.Bottom()},
		{model.BorderTop, box.Left(), box.Top(), box.Right(), box.Top()},
		{model.BorderRight, box.Right(), box.Top(), box.Right(), box.Bottom()},
		{model.BorderBottom, box.Left(), box.Bottom(), box.Right(), box.Bottom()},
	}
	for _, s := range sides {
		if !border.Has(s.side) {
			continue
		}
		if err := cv.Line(s.x1, s.y1, s.x2, s.y2); err != nil {
			return err
		}
	}
	return nil
}
