package table

import (
	"errors"
	"math"
	"testing"

	"github.com/tsawler/pdftable/model"
)

func TestCellDefaults(t *testing.T) {
	c := New(newHost()).NewRow().NewCell("x")

	if c.Colspan() != 1 {
		t.Errorf("expected colspan 1, got %d", c.Colspan())
	}
	if c.Border() != model.BorderAll {
		t.Errorf("expected all borders, got %s", c.Border())
	}
	if c.Align() != model.AlignLeft || c.VerticalAlign() != model.VAlignTop {
		t.Errorf("expected left/top alignment, got %s/%s", c.Align(), c.VerticalAlign())
	}
	if _, ok := c.Width(); ok {
		t.Error("expected no explicit width")
	}
	if _, ok := c.Padding(); ok {
		t.Error("expected default padding")
	}
	if _, ok := c.TextColor(); ok {
		t.Error("expected no text color")
	}
	if c.Image() != nil {
		t.Error("expected no image")
	}
}

func TestCellSetters(t *testing.T) {
	pad := model.Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}
	c := New(newHost()).NewRow().NewCell("x").
		SetText("line1\nline2").
		SetColspan(3).
		SetWidth(25).
		SetAlign(model.AlignRight).
		SetVerticalAlign(model.VAlignBottom).
		SetPadding(pad).
		SetMinHeight(12).
		SetBorder(model.BorderTop | model.BorderBottom).
		SetBorderWidth(0.1).
		SetTextColor(model.Color{R: 255}).
		SetImage("logo.png", 20, 0)

	if c.Text() != "line1\nline2" || c.Colspan() != 3 || c.MinHeight() != 12 {
		t.Errorf("unexpected basic state: %q %d %v", c.Text(), c.Colspan(), c.MinHeight())
	}
	if w, ok := c.Width(); !ok || w != 25 {
		t.Errorf("expected width 25, got %v", w)
	}
	if p, ok := c.Padding(); !ok || p != pad {
		t.Errorf("expected padding %+v, got %+v", pad, p)
	}
	if c.Border().String() != "TB" {
		t.Errorf("expected border TB, got %s", c.Border())
	}
	if c.BorderWidth() != 0.1 {
		t.Errorf("expected border width 0.1, got %v", c.BorderWidth())
	}
	if col, ok := c.TextColor(); !ok || col.R != 255 {
		t.Errorf("unexpected text color %v", col)
	}
	if img := c.Image(); img == nil || img.Path != "logo.png" || img.Width != 20 || img.Height != 0 {
		t.Errorf("unexpected image %+v", img)
	}
}

func TestCellBackgroundFallsBackToRow(t *testing.T) {
	row := New(newHost()).NewRow().SetBackgroundColor(model.Black)
	plain := row.NewCell("a")
	own := row.NewCell("b").SetBackgroundColor(model.White)

	if c, ok := plain.BackgroundColor(); !ok || c != model.Black {
		t.Errorf("expected row background, got %v (ok=%v)", c, ok)
	}
	if c, _ := own.BackgroundColor(); c != model.White {
		t.Errorf("expected own background, got %v", c)
	}
}

func TestCellValidation(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*Cell)
		field string
	}{
		{"colspan zero", func(c *Cell) { c.SetColspan(0) }, "colspan"},
		{"negative width", func(c *Cell) { c.SetWidth(-1) }, "width"},
		{"nan width", func(c *Cell) { c.SetWidth(math.NaN()) }, "width"},
		{"negative padding", func(c *Cell) { c.SetPadding(model.Insets{Left: -1}) }, "padding"},
		{"negative min height", func(c *Cell) { c.SetMinHeight(-2) }, "min height"},
		{"zero font size", func(c *Cell) { c.SetFontSize(0) }, "font size"},
		{"bad weight", func(c *Cell) { c.SetFontWeight("black") }, "font weight"},
		{"empty image path", func(c *Cell) { c.SetImage(" ", 10, 10) }, "image"},
		{"image without size", func(c *Cell) { c.SetImage("a.png", 0, 0) }, "image"},
		{"negative image size", func(c *Cell) { c.SetImage("a.png", -1, 5) }, "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := New(newHost())
			c := tbl.NewRow().NewCell("x")
			tt.apply(c)

			var cfgErr *InvalidConfigurationError
			if !errors.As(tbl.Err(), &cfgErr) {
				t.Fatalf("expected InvalidConfigurationError, got %v", tbl.Err())
			}
			if cfgErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, cfgErr.Field)
			}
		})
	}
}

func TestCellRejectedValuesKeepPrevious(t *testing.T) {
	c := New(newHost()).NewRow().NewCell("x").SetColspan(2).SetColspan(-1).SetWidth(10).SetWidth(math.Inf(1))

	if c.Colspan() != 2 {
		t.Errorf("expected colspan 2, got %d", c.Colspan())
	}
	if w, _ := c.Width(); w != 10 {
		t.Errorf("expected width 10, got %v", w)
	}
}
