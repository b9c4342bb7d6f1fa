package font

import (
	"math"
	"testing"
)

// TestLookup tests family alias and style resolution
func TestLookup(t *testing.T) {
	tests := []struct {
		family   string
		style    string
		baseFont string
	}{
		{"Helvetica", "", "Helvetica"},
		{"arial", "B", "Helvetica-Bold"},
		{"helvetica", "bi", "Helvetica-BoldOblique"},
		{"times", "", "Times-Roman"},
		{"Times", "I", "Times-Italic"},
		{"courier", "BU", "Courier-Bold"},
		{"monospace", "IB", "Courier-BoldOblique"},
	}

	for _, tt := range tests {
		t.Run(tt.family+"/"+tt.style, func(t *testing.T) {
			f, err := Lookup(tt.family, tt.style)
			if err != nil {
				t.Fatalf("Lookup failed: %v", err)
			}
			if f.BaseFont != tt.baseFont {
				t.Errorf("expected base font %s, got %s", tt.baseFont, f.BaseFont)
			}
		})
	}
}

func TestLookupUnknownFamily(t *testing.T) {
	if _, err := Lookup("Comic Sans", ""); err == nil {
		t.Error("expected error for unsupported family")
	}
}

// TestGetWidth tests character width retrieval
func TestGetWidth(t *testing.T) {
	f, _ := Lookup("Helvetica", "")

	if w := f.GetWidth('A'); w != 667 {
		t.Errorf("expected width 667 for 'A', got %f", w)
	}

	if w := f.GetWidth(' '); w != 278 {
		t.Errorf("expected width 278 for space, got %f", w)
	}

	if w := f.GetWidth('€'); w != 500 {
		t.Errorf("expected default width 500, got %f", w)
	}
}

// TestGetStringWidth tests string width calculation
func TestGetStringWidth(t *testing.T) {
	f, _ := Lookup("Helvetica", "")

	// H=722, i=222
	expected := 722.0 + 222.0
	if w := f.GetStringWidth("Hi"); w != expected {
		t.Errorf("expected width %f for 'Hi', got %f", expected, w)
	}

	// 944 units at 10pt
	if w := f.StringWidth("Hi", 10); math.Abs(w-9.44) > 1e-9 {
		t.Errorf("expected 9.44pt, got %f", w)
	}
}

func TestBoldFallsBackToRegularWidths(t *testing.T) {
	bold, _ := Lookup("Helvetica", "B")
	regular, _ := Lookup("Helvetica", "")

	if bold.GetWidth('b') != 611 {
		t.Errorf("expected bold b width 611, got %f", bold.GetWidth('b'))
	}
	if bold.GetWidth('~') != regular.GetWidth('~') {
		t.Errorf("expected bold ~ to fall back to regular width %f, got %f",
			regular.GetWidth('~'), bold.GetWidth('~'))
	}
	if !bold.IsBold() || regular.IsBold() {
		t.Error("unexpected IsBold results")
	}
}

// TestCourierMonospaced tests Courier monospaced widths
func TestCourierMonospaced(t *testing.T) {
	f, _ := Lookup("Courier", "")

	for _, r := range "iW@ 9" {
		if w := f.GetWidth(r); w != 600 {
			t.Errorf("expected width 600 for %q, got %f", r, w)
		}
	}
}

func TestEncode(t *testing.T) {
	b, err := Encode("Café €5")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{'C', 'a', 'f', 0xE9, ' ', 0x80, '5'}
	if string(b) != string(want) {
		t.Errorf("expected % x, got % x", want, b)
	}

	s, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if s != "Café €5" {
		t.Errorf("expected round trip, got %q", s)
	}
}

func TestEncodeReplacesUnsupported(t *testing.T) {
	b, err := Encode("a日b")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(b) != 3 || b[0] != 'a' || b[2] != 'b' {
		t.Errorf("expected unsupported rune to be replaced by one byte, got % x", b)
	}
}
