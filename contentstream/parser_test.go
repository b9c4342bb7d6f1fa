package contentstream

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/pdftable/core"
)

func TestBuilderBytes(t *testing.T) {
	var b Builder
	b.Op("q")
	b.Reals("re", 10, 20, 30.5, 40)
	b.Op("Tf", core.Name("F1"), core.Real(12))
	b.Op("Tj", core.String("a (b)"))
	b.Op("Q")

	want := "q\n10 20 30.5 40 re\n/F1 12 Tf\n(a \\(b\\)) Tj\nQ\n"
	if got := string(b.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
	if b.Len() != 5 {
		t.Errorf("expected 5 operations, got %d", b.Len())
	}
}

func TestParseRoundTrip(t *testing.T) {
	var b Builder
	b.Op("BT")
	b.Op("Tf", core.Name("F2"), core.Real(9.5))
	b.Reals("Td", 72, -14.25)
	b.Op("Tj", core.String("x\\y\n"))
	b.Op("ET")
	b.Op("Do", core.Name("Im1"))

	ops, err := Parse(b.Bytes())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var operators []string
	for _, op := range ops {
		operators = append(operators, op.Operator)
	}
	if diff := cmp.Diff([]string{"BT", "Tf", "Td", "Tj", "ET", "Do"}, operators); diff != "" {
		t.Errorf("operators mismatch (-want +got):\n%s", diff)
	}

	if s, ok := ops[3].Operands[0].(core.String); !ok || string(s) != "x\\y\n" {
		t.Errorf("expected unescaped string, got %#v", ops[3].Operands[0])
	}
	if v, ok := ops[2].Operands[1].(core.Real); !ok || float64(v) != -14.25 {
		t.Errorf("expected -14.25, got %#v", ops[2].Operands[1])
	}
	if n, ok := ops[1].Operands[0].(core.Name); !ok || n != "F2" {
		t.Errorf("expected /F2, got %#v", ops[1].Operands[0])
	}
}

func TestParseOperandKinds(t *testing.T) {
	ops, err := Parse([]byte("[1 2.5 /N (s)] <48656C6C6F> true null 7 T*"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 1 || ops[0].Operator != "T*" {
		t.Fatalf("expected one T* operation, got %v", ops)
	}

	operands := ops[0].Operands
	if len(operands) != 5 {
		t.Fatalf("expected 5 operands, got %d", len(operands))
	}
	if arr, ok := operands[0].(core.Array); !ok || len(arr) != 4 {
		t.Errorf("expected 4-element array, got %#v", operands[0])
	}
	if h, ok := operands[1].(core.HexString); !ok || string(h) != "Hello" {
		t.Errorf("expected hex Hello, got %#v", operands[1])
	}
	if operands[2] != core.Bool(true) {
		t.Errorf("expected true, got %#v", operands[2])
	}
	if _, ok := operands[3].(core.Null); !ok {
		t.Errorf("expected null, got %#v", operands[3])
	}
	if operands[4] != core.Int(7) {
		t.Errorf("expected 7, got %#v", operands[4])
	}
}

func TestParseOctalEscape(t *testing.T) {
	ops, err := Parse([]byte(`(\101\102) Tj`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s := ops[0].Operands[0].(core.String); s != "AB" {
		t.Errorf("expected AB, got %q", s)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed string", "(abc Tj"},
		{"unclosed array", "[1 2"},
		{"unclosed hex", "<414"},
		{"dangling operand", "1 2 re 5"},
		{"dictionary", "<< /A 1 >> BDC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Errorf("expected error for %q", tt.input)
			}
		})
	}
}
