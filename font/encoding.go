package font

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Encoding is the PDF encoding name written into font dictionaries.
const Encoding = "WinAnsiEncoding"

// Encode converts UTF-8 text to WinAnsi (Windows-1252) bytes, the encoding
// used for the standard fonts. Runes outside the code page are replaced.
func Encode(s string) ([]byte, error) {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("failed to encode text: %w", err)
	}
	return out, nil
}

// Decode converts WinAnsi bytes back to UTF-8.
func Decode(b []byte) (string, error) {
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("failed to decode text: %w", err)
	}
	return string(out), nil
}
