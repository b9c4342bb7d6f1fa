// Package graphicsstate tracks the drawing state of a document being written.
//
// The state controls how subsequent drawing operations are emitted:
// line width, stroke and fill colors, text color, and the current font
// (family, style and size in points). A document consults it when it emits
// content stream operators and exposes it to callers that inherit defaults
// from the "current" state, such as a table snapshotting its border width
// and font.
//
// # Graphics State
//
// Example usage:
//
//	gs := graphicsstate.NewGraphicsState()
//	gs.Save()                          // Push state (q operator)
//	gs.SetLineWidth(0.5)               // w operator
//	gs.SetFont("Helvetica", "B", 12)   // Current font
//	gs.Restore()                       // Pop state (Q operator)
//
// # Font Style
//
// Font style follows the usual single-letter convention: "" for regular,
// "B" for bold, "I" for italic and "BI" for bold italic. [NormalizeStyle]
// folds case, ordering and unknown letters into one of those four forms.
package graphicsstate
