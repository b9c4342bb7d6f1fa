package filters

import (
	"bytes"
	"testing"
)

// TestFlateEncode tests that encoded data decodes to the original
func TestFlateEncode(t *testing.T) {
	original := bytes.Repeat([]byte("0 0 m 10 10 l S\n"), 50)

	encoded, err := FlateEncode(original)
	if err != nil {
		t.Fatalf("FlateEncode failed: %v", err)
	}
	if len(encoded) >= len(original) {
		t.Errorf("expected repetitive data to shrink, got %d >= %d bytes", len(encoded), len(original))
	}

	decoded, err := FlateDecode(encoded)
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Error("decoded data doesn't match original")
	}
}

func TestFlateEncodeEmpty(t *testing.T) {
	encoded, err := FlateEncode(nil)
	if err != nil {
		t.Fatalf("FlateEncode failed: %v", err)
	}
	decoded, err := FlateDecode(encoded)
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected empty output, got %d bytes", len(decoded))
	}
}

// TestFlateDecodeInvalid tests error handling for invalid data
func TestFlateDecodeInvalid(t *testing.T) {
	if _, err := FlateDecode([]byte("not zlib data")); err == nil {
		t.Error("expected error for invalid zlib data")
	}
}
