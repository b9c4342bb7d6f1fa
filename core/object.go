package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Object is a PDF value. String returns it in PDF syntax.
type Object interface {
	String() string
}

// Null is the PDF null object
type Null struct{}

func (Null) String() string { return "null" }

// Bool is a PDF boolean
type Bool bool

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Int is a PDF integer
type Int int64

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Real is a PDF real number
type Real float64

func (r Real) String() string { return FormatReal(float64(r)) }

// FormatReal formats a number with at most four decimals and no exponent,
// trimming trailing zeros.
func FormatReal(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// String is a PDF literal string. It holds raw bytes, already encoded for
// the target font.
type String string

func (s String) String() string { return "(" + EscapeString(string(s)) + ")" }

// EscapeString escapes backslashes, parentheses and line breaks for use
// inside a literal string.
func EscapeString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\', '(', ')':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\r':
			sb.WriteString(`\r`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// HexString is a PDF hexadecimal string
type HexString []byte

func (h HexString) String() string { return fmt.Sprintf("<%X>", []byte(h)) }

// Name is a PDF name, written without its leading slash
type Name string

func (n Name) String() string { return "/" + string(n) }

// Array is a PDF array
type Array []Object

func (a Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, obj := range a {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(obj.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Dict is a PDF dictionary. Entries are written in key order.
type Dict map[string]Object

func (d Dict) String() string {
	var sb strings.Builder
	sb.WriteString("<<")
	for i, key := range d.Keys() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(Name(key).String())
		sb.WriteByte(' ')
		sb.WriteString(d[key].String())
	}
	sb.WriteString(">>")
	return sb.String()
}

// Keys returns the keys, sorted
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Stream is a PDF stream. Data holds the bytes exactly as written, already
// filtered; /Length is filled in from it.
type Stream struct {
	Dict Dict
	Data []byte
}

func (s *Stream) String() string {
	d := make(Dict, len(s.Dict)+1)
	for k, v := range s.Dict {
		d[k] = v
	}
	d["Length"] = Int(len(s.Data))
	return d.String() + "\nstream\n" + string(s.Data) + "\nendstream"
}

// IndirectRef refers to an indirect object by number
type IndirectRef struct {
	Number     int
	Generation int
}

func (r IndirectRef) String() string {
	return fmt.Sprintf("%d %d R", r.Number, r.Generation)
}
