// Package render lays out tables built with package table and draws them
// onto a [Canvas], normally a *document.Document.
//
// Rendering starts at the canvas cursor. Columns come from the widest
// row's total colspan; their widths follow the table width (or the
// content when no width is set) shared in proportion to each column's
// natural content width, with explicit cell widths pinned. Text wraps at
// spaces, and words that do not fit are broken between characters.
//
// Rows that would cross the bottom margin move to a new page, and leading
// header rows are drawn again at the top of every continuation page. After
// rendering, the cursor sits at the table's left edge just below the last
// row.
//
// Cell images are decoded, resampled to the converter's DPI and cached
// both in memory and as PNG files in the table's cache directory, so
// later renders of the same file at the same size skip decoding.
//
//	t := table.New(doc, table.WithRenderer(render.Convert), table.WithCacheDir(dir))
package render
