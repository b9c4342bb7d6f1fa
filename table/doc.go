// Package table builds table structures for a PDF document and hands them to
// a rendering engine.
//
// A [Table] is bound to one host document for its whole life. On
// construction it snapshots the host's current line width and font (family,
// size in points, bold or not) as its style defaults. Rows and cells created
// from the table inherit those defaults by reference: changing a table
// property before rendering also changes every row and cell that has not
// overridden it.
//
// # Building
//
// Configuration methods return the receiver so calls can be chained:
//
//	t := table.New(doc, table.WithRenderer(render.Convert)).
//	    SetBorderWidth(0.2).
//	    SetFontSize(9).
//	    SetWidth(100, true)
//
//	t.NewRow().SetHeader(true).
//	    NewCell("Name").SetFontWeight(table.FontWeightBold).End().
//	    NewCell("Qty").SetAlign(model.AlignRight).End()
//
//	doc, err := t.End()
//
// # Validation
//
// Invalid values (a font size that is not a finite positive number, a width
// that is not finite, an unknown font weight) are rejected: the property
// keeps its previous value and an [*InvalidConfigurationError] is recorded
// on the table. [Table.Err] reports recorded errors and [Table.End] refuses
// to render while any exist. Setting the same property again with a valid
// value clears its error, so a caller may correct a value and carry on.
//
// # Width
//
// A width set with percentage=true is resolved against the horizontal space
// remaining on the host page (page width - right margin - cursor X) at the
// time [Table.ResolveWidth] is called, not when the width was set.
//
// # Rendering
//
// [Table.End] calls the table's [RenderFunc] exactly once with the table and
// its cache directory and returns the host so the caller can continue
// building the document. Errors from the renderer are returned unchanged.
package table
