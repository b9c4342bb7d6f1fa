// Package core provides the PDF object types and the low-level file writer.
//
// This package implements the building blocks for producing PDF files:
// the basic object types, streams, indirect references and the
// cross-reference table written at the end of every file.
//
// # Object Types
//
// Every object satisfies the [Object] interface; String returns the object
// in PDF syntax:
//
//   - [Null] - the PDF null object
//   - [Bool] - boolean values (true/false)
//   - [Int] - integers
//   - [Real] - real numbers, written without exponent (see [FormatReal])
//   - [String] - literal strings, escaped on output
//   - [HexString] - hexadecimal strings (used for the file identifier)
//   - [Name] - names (e.g., /Type, /Font)
//   - [Array] - arrays
//   - [Dict] - dictionaries, written with sorted keys
//
// Additionally, [Stream] represents a PDF stream (dictionary + data),
// and [IndirectRef] represents a reference to an indirect object.
//
// # Writing
//
// The [Writer] type allocates object numbers, writes indirect objects and
// finishes the file with the cross-reference table and trailer:
//
//	pw := core.NewWriter(f)
//	catalog := pw.Alloc()
//	pages := pw.Alloc()
//	pw.WriteObject(pages, core.Dict{"Type": core.Name("Pages"), ...})
//	pw.WriteObject(catalog, core.Dict{"Type": core.Name("Catalog"), "Pages": pages})
//	pw.Close(catalog, core.IndirectRef{}, id)
package core
