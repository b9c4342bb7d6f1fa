// Package model provides the value types shared by the table builder, the
// host document and the rendering engine.
//
// All coordinates are expressed in the document's user unit (pt, mm, cm or
// in) with the origin at the top-left corner of the page and Y growing
// downward, the same convention used by the document cursor.
//
// # Geometry
//
//   - [Point] - 2D point with distance calculation
//   - [BBox] - rectangle with edge accessors, containment and insetting
//   - [Insets] - per-side spacing used for cell padding
//
// # Style Values
//
//   - [Color] - RGB color, parsed from "#rgb", "#rrggbb" or a basic name
//   - [TextAlignment] - left, center, right, justify
//   - [VerticalAlignment] - top, middle, bottom
//   - [Border] - set of cell sides that receive a border stroke
//
// Parsing helpers accept the short forms used in table definitions:
//
//	c, err := model.ParseColor("#eeeeee")
//	a, err := model.ParseAlignment("C")
//	b, err := model.ParseBorder("LTB")
package model
