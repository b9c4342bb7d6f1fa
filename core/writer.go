package core

import (
	"bufio"
	"fmt"
	"io"
)

// Version is the PDF version written in the file header.
const Version = "1.4"

// Writer writes a PDF file: header, indirect objects, cross-reference
// table and trailer. Object numbers are allocated with Alloc and may be
// written in any order; every allocated object must be written before
// Close.
type Writer struct {
	w       *bufio.Writer
	n       int64
	offsets []int64 // index = object number - 1, -1 until written
	started bool
	closed  bool
}

// NewWriter creates a writer on top of w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Alloc reserves the next object number
func (pw *Writer) Alloc() IndirectRef {
	pw.offsets = append(pw.offsets, -1)
	return IndirectRef{Number: len(pw.offsets)}
}

func (pw *Writer) write(s string) error {
	n, err := pw.w.WriteString(s)
	pw.n += int64(n)
	return err
}

func (pw *Writer) header() error {
	if pw.started {
		return nil
	}
	pw.started = true
	// Binary comment marks the file as containing 8-bit data.
	return pw.write("%PDF-" + Version + "\n%\xe2\xe3\xcf\xd3\n")
}

// WriteObject writes obj as the indirect object ref
func (pw *Writer) WriteObject(ref IndirectRef, obj Object) error {
	if pw.closed {
		return fmt.Errorf("write object %d: writer closed", ref.Number)
	}
	if ref.Number < 1 || ref.Number > len(pw.offsets) {
		return fmt.Errorf("object %d was not allocated", ref.Number)
	}
	if pw.offsets[ref.Number-1] >= 0 {
		return fmt.Errorf("object %d already written", ref.Number)
	}
	if err := pw.header(); err != nil {
		return err
	}
	pw.offsets[ref.Number-1] = pw.n
	if err := pw.write(fmt.Sprintf("%d %d obj\n%s\nendobj\n", ref.Number, ref.Generation, obj.String())); err != nil {
		return fmt.Errorf("failed to write object %d: %w", ref.Number, err)
	}
	return nil
}

// Close writes the cross-reference table and trailer and flushes the
// output. root and info are the catalog and document information
// dictionaries; id is the file identifier written twice into /ID.
func (pw *Writer) Close(root, info IndirectRef, id []byte) error {
	if pw.closed {
		return nil
	}
	if err := pw.header(); err != nil {
		return err
	}
	for i, off := range pw.offsets {
		if off < 0 {
			return fmt.Errorf("object %d allocated but never written", i+1)
		}
	}
	pw.closed = true

	xrefOffset := pw.n
	if err := pw.write(fmt.Sprintf("xref\n0 %d\n0000000000 65535 f \n", len(pw.offsets)+1)); err != nil {
		return err
	}
	for _, off := range pw.offsets {
		if err := pw.write(fmt.Sprintf("%010d 00000 n \n", off)); err != nil {
			return err
		}
	}

	trailer := Dict{
		"Size": Int(len(pw.offsets) + 1),
		"Root": root,
	}
	if info.Number > 0 {
		trailer["Info"] = info
	}
	if len(id) > 0 {
		trailer["ID"] = Array{HexString(id), HexString(id)}
	}
	if err := pw.write(fmt.Sprintf("trailer\n%s\nstartxref\n%d\n%%%%EOF\n", trailer.String(), xrefOffset)); err != nil {
		return err
	}
	return pw.w.Flush()
}
