package contentstream

import (
	"bytes"

	"github.com/tsawler/pdftable/core"
)

// Operation represents a single content stream operation consisting of an
// operator and its operands. Operands are PDF objects that precede the operator.
type Operation struct {
	Operator string        // The operator (e.g., "Tj", "re", "q")
	Operands []core.Object // The operands
}

// String returns the operation in content stream syntax
func (o Operation) String() string {
	var buf bytes.Buffer
	for _, operand := range o.Operands {
		buf.WriteString(operand.String())
		buf.WriteByte(' ')
	}
	buf.WriteString(o.Operator)
	return buf.String()
}

// Builder accumulates operations for one content stream. The zero value
// is ready to use.
type Builder struct {
	ops []Operation
}

// Op appends an operation
func (b *Builder) Op(operator string, operands ...core.Object) {
	b.ops = append(b.ops, Operation{Operator: operator, Operands: operands})
}

// Reals appends an operation whose operands are all numbers
func (b *Builder) Reals(operator string, values ...float64) {
	operands := make([]core.Object, len(values))
	for i, v := range values {
		operands[i] = core.Real(v)
	}
	b.Op(operator, operands...)
}

// Len returns the number of operations
func (b *Builder) Len() int {
	return len(b.ops)
}

// Bytes serializes the operations, one per line
func (b *Builder) Bytes() []byte {
	var buf bytes.Buffer
	for _, op := range b.ops {
		buf.WriteString(op.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
