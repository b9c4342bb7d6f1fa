// Package contentstream builds and parses PDF page content streams.
//
// A content stream is a sequence of operators, each preceded by its
// operands. [Builder] appends operations and serializes them; [Parse] reads
// serialized content back into [Operation] values.
//
//	var b contentstream.Builder
//	b.Op("BT")
//	b.Op("Tf", core.Name("F1"), core.Real(12))
//	b.Op("Td", core.Real(72), core.Real(720))
//	b.Op("Tj", core.String("Hello"))
//	b.Op("ET")
//	data := b.Bytes()
//
// # Operators used by the document package
//
// Graphics state: q, Q, w, RG, rg, cm
//
// Paths: m, l, re, S, f, B
//
// Text: BT, ET, Tf, Td, Tj, Tw
//
// Images: Do
package contentstream
