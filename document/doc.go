// Package document builds PDF documents page by page.
//
// A [Document] keeps a cursor and a current drawing state (font, colors,
// line width) in the manner of classic PDF generators: callers move the
// cursor, pick a font and draw. All lengths are in the document's user
// unit (millimeters by default) measured from the top-left corner of the
// page with Y growing downwards. Font sizes are always in points.
//
//	doc, err := document.New(document.WithPageSize(document.Letter))
//	if err != nil {
//	    return err
//	}
//	doc.AddPage()
//	doc.SetFont("Helvetica", "B", 14)
//	doc.Text(doc.X(), doc.Y()+5, "Quarterly report")
//	return doc.WriteFile("report.pdf")
//
// Text uses the standard Type 1 fonts (Helvetica, Times, Courier) with
// WinAnsi encoding; images are embedded as Flate-compressed RGB.
package document
