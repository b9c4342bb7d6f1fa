package document

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"

	"github.com/tsawler/pdftable/core"
	"github.com/tsawler/pdftable/font"
	"github.com/tsawler/pdftable/internal/filters"
)

// Producer is written into the document information dictionary.
const Producer = "pdftable"

// Write serializes the document as a PDF file. A document without pages
// gets one blank page. Write may be called more than once.
func (d *Document) Write(w io.Writer) error {
	if len(d.pages) == 0 {
		d.AddPage()
	}

	pw := core.NewWriter(w)
	catalog := pw.Alloc()
	pagesRef := pw.Alloc()
	info := pw.Alloc()

	fontRefs := core.Dict{}
	for _, base := range d.fontOrder {
		ref := pw.Alloc()
		fontRefs[d.fonts[base]] = ref
		if err := pw.WriteObject(ref, core.Dict{
			"Type":     core.Name("Font"),
			"Subtype":  core.Name("Type1"),
			"BaseFont": core.Name(base),
			"Encoding": core.Name(font.Encoding),
		}); err != nil {
			return err
		}
	}

	imageRefs := core.Dict{}
	for _, key := range d.imageOrder {
		img := d.images[key]
		ref := pw.Alloc()
		imageRefs[img.name] = ref
		stream, err := img.stream()
		if err != nil {
			return fmt.Errorf("image %q: %w", key, err)
		}
		if err := pw.WriteObject(ref, stream); err != nil {
			return err
		}
	}

	resources := core.Dict{
		"ProcSet": core.Array{core.Name("PDF"), core.Name("Text"), core.Name("ImageC")},
	}
	if len(fontRefs) > 0 {
		resources["Font"] = fontRefs
	}
	if len(imageRefs) > 0 {
		resources["XObject"] = imageRefs
	}

	kids := core.Array{}
	for i, p := range d.pages {
		pageRef := pw.Alloc()
		contentRef := pw.Alloc()
		kids = append(kids, pageRef)

		content, err := d.contentStream(p)
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		if err := pw.WriteObject(contentRef, content); err != nil {
			return err
		}
		if err := pw.WriteObject(pageRef, core.Dict{
			"Type":      core.Name("Page"),
			"Parent":    pagesRef,
			"MediaBox":  core.Array{core.Int(0), core.Int(0), core.Real(p.w), core.Real(p.h)},
			"Resources": resources,
			"Contents":  contentRef,
		}); err != nil {
			return err
		}
	}

	if err := pw.WriteObject(pagesRef, core.Dict{
		"Type":  core.Name("Pages"),
		"Kids":  kids,
		"Count": core.Int(len(kids)),
	}); err != nil {
		return err
	}
	if err := pw.WriteObject(catalog, core.Dict{
		"Type":  core.Name("Catalog"),
		"Pages": pagesRef,
	}); err != nil {
		return err
	}

	infoDict, err := d.infoDict()
	if err != nil {
		return err
	}
	if err := pw.WriteObject(info, infoDict); err != nil {
		return err
	}

	id := uuid.New()
	return pw.Close(catalog, info, id[:])
}

// WriteFile writes the document to path
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func (d *Document) contentStream(p *page) (*core.Stream, error) {
	data := p.content.Bytes()
	dict := core.Dict{}
	if d.compress {
		compressed, err := filters.FlateEncode(data)
		if err != nil {
			return nil, err
		}
		data = compressed
		dict["Filter"] = core.Name(filters.Name)
	}
	return &core.Stream{Dict: dict, Data: data}, nil
}

func (d *Document) infoDict() (core.Dict, error) {
	info := core.Dict{
		"Producer":     core.String(Producer),
		"CreationDate": core.String(pdfDate(d.created)),
	}
	for key, value := range map[string]string{"Title": d.title, "Author": d.author} {
		if value == "" {
			continue
		}
		s, err := textString(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		info[key] = s
	}
	return info, nil
}

// textString encodes s as a PDF text string: literal for ASCII, UTF-16BE
// with a byte order mark otherwise.
func textString(s string) (core.Object, error) {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return core.String(s), nil
	}

	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	return core.HexString(out), nil
}

// pdfDate formats t as a PDF date string, D:YYYYMMDDHHmmSS+HH'mm'
func pdfDate(t time.Time) string {
	_, offset := t.Zone()
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("D:%s%c%02d'%02d'", t.Format("20060102150405"), sign, offset/3600, (offset%3600)/60)
}
