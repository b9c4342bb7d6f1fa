// Package htmltable fills a table from an HTML <table> element.
package htmltable

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/pdftable/model"
	"github.com/tsawler/pdftable/table"
)

// ErrNoTable is returned when the input holds no <table> element.
var ErrNoTable = errors.New("no table element found")

// Option configures an import
type Option func(*importer)

// WithBaseDir resolves relative <img src> paths against dir.
func WithBaseDir(dir string) Option {
	return func(im *importer) {
		im.baseDir = dir
	}
}

// WithImageHeight sets the height, in user units, of images that carry no
// width or height attribute. The default is 10.
func WithImageHeight(h float64) Option {
	return func(im *importer) {
		if h > 0 {
			im.imageHeight = h
		}
	}
}

type importer struct {
	t           *table.Table
	baseDir     string
	imageHeight float64
}

// Import parses HTML from r and appends the rows of its first table to t.
//
// Rows inside <thead> become header rows and <th> cells are set bold.
// The colspan, align, valign, bgcolor and width attributes are honored,
// <br> becomes a line break and the first <img> of a cell becomes the cell
// image. A width attribute on the table element sets the table width,
// either absolute or as a percentage ("80%").
func Import(t *table.Table, r io.Reader, opts ...Option) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}

	node := findElement(doc, "table")
	if node == nil {
		return ErrNoTable
	}

	im := &importer{t: t, imageHeight: 10}
	for _, opt := range opts {
		opt(im)
	}
	return im.parseTable(node)
}

// ImportString is Import for an HTML string.
func ImportString(t *table.Table, s string, opts ...Option) error {
	return Import(t, strings.NewReader(s), opts...)
}

func (im *importer) parseTable(node *html.Node) error {
	if w := getAttr(node, "width"); w != "" {
		v, pct, err := parseLength(w)
		if err != nil {
			return fmt.Errorf("table width: %w", err)
		}
		im.t.SetWidth(v, pct)
	}

	// <tfoot> may precede <tbody> in the source but renders last.
	var footer []*html.Node
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead":
			if err := im.parseTableRows(c, true); err != nil {
				return err
			}
		case "tbody":
			if err := im.parseTableRows(c, false); err != nil {
				return err
			}
		case "tfoot":
			footer = append(footer, c)
		case "tr":
			if err := im.parseTableRow(c, false); err != nil {
				return err
			}
		}
	}
	for _, f := range footer {
		if err := im.parseTableRows(f, false); err != nil {
			return err
		}
	}
	return nil
}

// parseTableRows parses rows within thead, tbody or tfoot.
func (im *importer) parseTableRows(section *html.Node, isHeader bool) error {
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "tr" {
			if err := im.parseTableRow(c, isHeader); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseTableRow appends a row for tr. Rows without cells are skipped.
func (im *importer) parseTableRow(tr *html.Node, isHeader bool) error {
	var cells []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, c)
		}
	}
	if len(cells) == 0 {
		return nil
	}

	row := im.t.NewRow().SetHeader(isHeader)
	if bg := getAttr(tr, "bgcolor"); bg != "" {
		color, err := model.ParseColor(bg)
		if err != nil {
			return fmt.Errorf("row %d: %w", len(im.t.Rows()), err)
		}
		row.SetBackgroundColor(color)
	}

	for i, c := range cells {
		if err := im.parseTableCell(row, c); err != nil {
			return fmt.Errorf("row %d, cell %d: %w", len(im.t.Rows()), i+1, err)
		}
	}
	return nil
}

func (im *importer) parseTableCell(row *table.Row, n *html.Node) error {
	cell := row.NewCell(getTextContent(n))
	if n.Data == "th" || row.IsHeader() {
		cell.SetFontWeight(table.FontWeightBold)
	}

	for _, attr := range n.Attr {
		switch attr.Key {
		case "colspan":
			if span, err := strconv.Atoi(strings.TrimSpace(attr.Val)); err == nil && span > 1 {
				cell.SetColspan(span)
			}
		case "align":
			align, err := model.ParseAlignment(attr.Val)
			if err != nil {
				return err
			}
			cell.SetAlign(align)
		case "valign":
			valign, err := model.ParseVerticalAlignment(attr.Val)
			if err != nil {
				return err
			}
			cell.SetVerticalAlign(valign)
		case "bgcolor":
			color, err := model.ParseColor(attr.Val)
			if err != nil {
				return err
			}
			cell.SetBackgroundColor(color)
		case "width":
			v, pct, err := parseLength(attr.Val)
			if err != nil {
				return fmt.Errorf("width: %w", err)
			}
			if !pct {
				cell.SetWidth(v)
			}
		}
	}

	if img := findElement(n, "img"); img != nil {
		return im.parseImage(cell, img)
	}
	return nil
}

func (im *importer) parseImage(cell *table.Cell, img *html.Node) error {
	src := getAttr(img, "src")
	if src == "" {
		return nil
	}
	if !filepath.IsAbs(src) && im.baseDir != "" {
		src = filepath.Join(im.baseDir, src)
	}

	var w, h float64
	for _, dim := range []struct {
		key string
		dst *float64
	}{{"width", &w}, {"height", &h}} {
		s := getAttr(img, dim.key)
		if s == "" {
			continue
		}
		v, pct, err := parseLength(s)
		if err != nil || pct {
			return fmt.Errorf("image %s: invalid %s %q", src, dim.key, s)
		}
		*dim.dst = v
	}
	if w == 0 && h == 0 {
		h = im.imageHeight
	}
	cell.SetImage(src, w, h)
	return nil
}

// parseLength parses "12", "12.5" or "80%".
func parseLength(s string) (v float64, pct bool, err error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutSuffix(s, "%"); ok {
		s, pct = rest, true
	}
	v, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid length %q", s)
	}
	return v, pct, nil
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// getAttr returns the value of an attribute on a node, or empty string if not found.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// getTextContent returns the text of a cell. Whitespace runs collapse to
// one space; <br> and block boundaries start a new line.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)

	lines := strings.Split(result.String(), "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// sourceBreaks turns line breaks in the HTML source into plain spaces
var sourceBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(sourceBreaks.Replace(n.Data))
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			result.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6":
			result.WriteString("\n")
		}
	}
}

// shouldSkipElement returns true if the element carries no cell text.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}
