package definition

import (
	"fmt"
	"strings"

	"github.com/tsawler/pdftable"
	"github.com/tsawler/pdftable/document"
	"github.com/tsawler/pdftable/htmltable"
	"github.com/tsawler/pdftable/model"
	"github.com/tsawler/pdftable/render"
	"github.com/tsawler/pdftable/table"
)

// DocumentOptions converts the page setup into document options.
func (s DocumentSpec) DocumentOptions() ([]document.Option, error) {
	size, err := document.ParsePageSize(s.PageSize)
	if err != nil {
		return nil, err
	}
	orientation, err := document.ParseOrientation(s.Orientation)
	if err != nil {
		return nil, err
	}

	opts := []document.Option{
		document.WithPageSize(size),
		document.WithOrientation(orientation),
		document.WithUnit(document.Unit(strings.ToLower(strings.TrimSpace(s.Unit)))),
		document.WithFont(s.Font.Family, s.Font.Style, s.Font.Size),
		document.WithCompression(s.Compress),
		document.WithTitle(s.Title),
		document.WithAuthor(s.Author),
	}
	if m := s.Margins; m != nil {
		opts = append(opts, document.WithMargins(model.Insets{Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left}))
	}
	return opts, nil
}

// Build creates the document and renders every table onto it, one after
// another on the same flow of pages. opts configure the renderer.
func Build(def *Definition, opts ...render.Option) (*document.Document, error) {
	docOpts, err := def.Document.DocumentOptions()
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	doc, err := document.New(docOpts...)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	doc.AddPage()

	if def.ImageDPI > 0 {
		opts = append(opts, render.WithImageDPI(def.ImageDPI))
	}

	for i, spec := range def.Tables {
		t := pdftable.NewTable(doc, def.CacheDir, opts...)
		if err := Populate(t, spec, def.BaseDir); err != nil {
			return nil, fmt.Errorf("table %s: %w", def.TableName(i), err)
		}
		if _, err := t.End(); err != nil {
			return nil, fmt.Errorf("table %s: %w", def.TableName(i), err)
		}
		if spec.SpaceAfter > 0 {
			doc.Ln(spec.SpaceAfter)
		}
	}
	return doc, nil
}

// Populate applies spec to t: table settings first, then the explicit
// rows, then any rows from the HTML fragment. Relative image paths are
// resolved against baseDir. Values the table itself rejects are reported
// by t.Err and t.End.
func Populate(t *table.Table, spec TableSpec, baseDir string) error {
	if spec.Width != nil {
		t.SetWidth(*spec.Width, spec.WidthPercentage)
	}
	if spec.FontFamily != "" {
		t.SetFontFamily(spec.FontFamily)
	}
	if spec.FontSize != nil {
		t.SetFontSize(*spec.FontSize)
	}
	if spec.FontWeight != "" {
		w, err := table.ParseFontWeight(spec.FontWeight)
		if err != nil {
			return err
		}
		t.SetFontWeight(w)
	}
	if spec.LineHeight != nil {
		t.SetLineHeight(*spec.LineHeight)
	}
	if spec.BorderWidth != nil {
		t.SetBorderWidth(*spec.BorderWidth)
	}

	for i, rs := range spec.Rows {
		if err := populateRow(t.NewRow(), rs, baseDir); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	if strings.TrimSpace(spec.HTML) != "" {
		if err := htmltable.ImportString(t, spec.HTML, htmltable.WithBaseDir(baseDir)); err != nil {
			return fmt.Errorf("html: %w", err)
		}
	}
	return nil
}

func populateRow(r *table.Row, spec RowSpec, baseDir string) error {
	r.SetHeader(spec.Header)
	if spec.Background != "" {
		c, err := model.ParseColor(spec.Background)
		if err != nil {
			return err
		}
		r.SetBackgroundColor(c)
	}
	if spec.MinHeight != nil {
		r.SetMinHeight(*spec.MinHeight)
	}
	if spec.FontFamily != "" {
		r.SetFontFamily(spec.FontFamily)
	}
	if spec.FontSize != nil {
		r.SetFontSize(*spec.FontSize)
	}
	if spec.FontWeight != "" {
		w, err := table.ParseFontWeight(spec.FontWeight)
		if err != nil {
			return err
		}
		r.SetFontWeight(w)
	}
	if spec.LineHeight != nil {
		r.SetLineHeight(*spec.LineHeight)
	}
	if spec.BorderWidth != nil {
		r.SetBorderWidth(*spec.BorderWidth)
	}

	for i, cs := range spec.Cells {
		if err := populateCell(r.NewCell(cs.Text), cs, baseDir); err != nil {
			return fmt.Errorf("cell %d: %w", i+1, err)
		}
	}
	return nil
}

func populateCell(c *table.Cell, spec CellSpec, baseDir string) error {
	if img := spec.Image; img != nil {
		c.SetImage(resolvePathRelativeTo(img.Path, baseDir), img.Width, img.Height)
	}
	if spec.Colspan != 0 {
		c.SetColspan(spec.Colspan)
	}
	if spec.Width != nil {
		c.SetWidth(*spec.Width)
	}
	if spec.Align != "" {
		a, err := model.ParseAlignment(spec.Align)
		if err != nil {
			return err
		}
		c.SetAlign(a)
	}
	if spec.VerticalAlign != "" {
		v, err := model.ParseVerticalAlignment(spec.VerticalAlign)
		if err != nil {
			return err
		}
		c.SetVerticalAlign(v)
	}
	if spec.Padding != nil {
		c.SetPadding(model.UniformInsets(*spec.Padding))
	}
	if spec.MinHeight != nil {
		c.SetMinHeight(*spec.MinHeight)
	}
	if spec.Border != "" {
		b, err := model.ParseBorder(spec.Border)
		if err != nil {
			return err
		}
		c.SetBorder(b)
	}
	if spec.BorderWidth != nil {
		c.SetBorderWidth(*spec.BorderWidth)
	}
	if spec.FontFamily != "" {
		c.SetFontFamily(spec.FontFamily)
	}
	if spec.FontSize != nil {
		c.SetFontSize(*spec.FontSize)
	}
	if spec.FontWeight != "" {
		w, err := table.ParseFontWeight(spec.FontWeight)
		if err != nil {
			return err
		}
		c.SetFontWeight(w)
	}
	if spec.LineHeight != nil {
		c.SetLineHeight(*spec.LineHeight)
	}

	for _, color := range []struct {
		value string
		set   func(model.Color) *table.Cell
	}{
		{spec.TextColor, c.SetTextColor},
		{spec.Background, c.SetBackgroundColor},
	} {
		if color.value == "" {
			continue
		}
		parsed, err := model.ParseColor(color.value)
		if err != nil {
			return err
		}
		color.set(parsed)
	}
	return nil
}
