// Package pdftable draws tables into PDF documents.
//
// Basic usage:
//
//	doc, err := document.New()
//	if err != nil {
//	    // handle error
//	}
//	doc.AddPage()
//
//	t := pdftable.NewTable(doc, "").SetWidth(100, true)
//	t.NewRow().SetHeader(true).
//	    NewCell("Item").End().
//	    NewCell("Price").SetAlign(model.AlignRight)
//	t.NewRow().
//	    NewCell("Coffee").End().
//	    NewCell("3.50").SetAlign(model.AlignRight)
//
//	if _, err := t.End(); err != nil {
//	    // handle error
//	}
//	err = doc.WriteFile("prices.pdf")
//
// The table package holds the builder, render the layout engine and
// document the PDF writer. Tables can also be filled from HTML with
// package htmltable or described in YAML with package definition.
package pdftable

import (
	"github.com/tsawler/pdftable/document"
	"github.com/tsawler/pdftable/render"
	"github.com/tsawler/pdftable/table"
)

// Version is the library version reported by the CLI.
const Version = "0.1.0"

// NewTable creates a table on doc that renders with a render.Converter
// built from opts. Images are cached in cacheDir; an empty cacheDir keeps
// the cache in memory only.
func NewTable(doc *document.Document, cacheDir string, opts ...render.Option) *table.Table {
	c := render.New(opts...)
	return table.New(doc, table.WithRenderer(c.Render), table.WithCacheDir(cacheDir))
}
