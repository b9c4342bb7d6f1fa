package contentstream

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/tsawler/pdftable/core"
)

// Parser parses PDF content streams into a sequence of operations.
type Parser struct {
	data     []byte
	pos      int
	operands []core.Object
	ops      []Operation
}

// NewParser creates a new content stream parser for the given data.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse is shorthand for NewParser(data).Parse().
func Parse(data []byte) ([]Operation, error) {
	return NewParser(data).Parse()
}

// Parse parses the content stream and returns all operations in order.
// Operands left over after the last operator are an error.
func (p *Parser) Parse() ([]Operation, error) {
	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			break
		}

		start := p.pos
		if isLetter(p.data[p.pos]) && !p.atKeyword() {
			p.parseOperator()
			continue
		}

		operand, err := p.parseOperand()
		if err != nil {
			return nil, fmt.Errorf("at position %d: %w", start, err)
		}
		p.operands = append(p.operands, operand)
	}

	if len(p.operands) > 0 {
		return nil, fmt.Errorf("%d operands without operator", len(p.operands))
	}
	return p.ops, nil
}

// atKeyword reports whether the next token is true, false or null.
func (p *Parser) atKeyword() bool {
	tok := p.token()
	return tok == "true" || tok == "false" || tok == "null"
}

func (p *Parser) token() string {
	end := p.pos
	for end < len(p.data) && !isWhitespace(p.data[end]) && !isDelimiter(p.data[end]) {
		end++
	}
	return string(p.data[p.pos:end])
}

// parseOperator consumes an operator and the pending operands.
func (p *Parser) parseOperator() {
	start := p.pos
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if !isLetter(c) && c != '\'' && c != '"' && c != '*' {
			break
		}
		p.pos++
	}

	p.ops = append(p.ops, Operation{
		Operator: string(p.data[start:p.pos]),
		Operands: p.operands,
	})
	p.operands = nil
}

func (p *Parser) parseOperand() (core.Object, error) {
	c := p.data[p.pos]
	switch {
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case c == '(':
		return p.parseString()
	case c == '<':
		if p.pos+1 < len(p.data) && p.data[p.pos+1] == '<' {
			return nil, fmt.Errorf("dictionary operands are not supported")
		}
		return p.parseHexString()
	case c == '/':
		return p.parseName(), nil
	case c == '[':
		return p.parseArray()
	}

	switch tok := p.token(); tok {
	case "true", "false":
		p.pos += len(tok)
		return core.Bool(tok == "true"), nil
	case "null":
		p.pos += len(tok)
		return core.Null{}, nil
	}
	return nil, fmt.Errorf("unexpected character %q", c)
}

func (p *Parser) parseNumber() (core.Object, error) {
	start := p.pos
	if p.data[p.pos] == '+' || p.data[p.pos] == '-' {
		p.pos++
	}
	isReal := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '.' && !isReal {
			isReal = true
		} else if c < '0' || c > '9' {
			break
		}
		p.pos++
	}

	s := string(p.data[start:p.pos])
	if isReal {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid real number %q: %w", s, err)
		}
		return core.Real(v), nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return core.Int(v), nil
}

// parseString parses a literal string (...) with escape sequence handling.
func (p *Parser) parseString() (core.Object, error) {
	p.pos++ // skip '('

	var buf bytes.Buffer
	depth := 1
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		p.pos++

		switch c {
		case '\\':
			if p.pos >= len(p.data) {
				return nil, fmt.Errorf("unclosed string")
			}
			p.unescape(&buf)
			continue
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return core.String(buf.String()), nil
			}
		}
		buf.WriteByte(c)
	}
	return nil, fmt.Errorf("unclosed string")
}

// unescape decodes one escape sequence; p.pos is just past the backslash.
func (p *Parser) unescape(buf *bytes.Buffer) {
	next := p.data[p.pos]
	p.pos++

	switch next {
	case 'n':
		buf.WriteByte('\n')
	case 'r':
		buf.WriteByte('\r')
	case 't':
		buf.WriteByte('\t')
	case 'b':
		buf.WriteByte('\b')
	case 'f':
		buf.WriteByte('\f')
	case '\r':
		// Line continuation
		if p.pos < len(p.data) && p.data[p.pos] == '\n' {
			p.pos++
		}
	case '\n':
		// Line continuation
	case '0', '1', '2', '3', '4', '5', '6', '7':
		v := int(next - '0')
		for i := 0; i < 2 && p.pos < len(p.data); i++ {
			d := p.data[p.pos]
			if d < '0' || d > '7' {
				break
			}
			v = v*8 + int(d-'0')
			p.pos++
		}
		buf.WriteByte(byte(v & 0xFF))
	default:
		// \( \) \\ and unknown escapes keep the character
		buf.WriteByte(next)
	}
}

func (p *Parser) parseHexString() (core.Object, error) {
	p.pos++ // skip '<'

	var digits []byte
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		p.pos++
		if c == '>' {
			if len(digits)%2 == 1 {
				digits = append(digits, '0')
			}
			out := make([]byte, len(digits)/2)
			if _, err := hex.Decode(out, digits); err != nil {
				return nil, fmt.Errorf("invalid hex string: %w", err)
			}
			return core.HexString(out), nil
		}
		if !isWhitespace(c) {
			digits = append(digits, c)
		}
	}
	return nil, fmt.Errorf("unclosed hex string")
}

func (p *Parser) parseName() core.Object {
	p.pos++ // skip '/'
	start := p.pos
	for p.pos < len(p.data) && !isWhitespace(p.data[p.pos]) && !isDelimiter(p.data[p.pos]) {
		p.pos++
	}
	return core.Name(p.data[start:p.pos])
}

func (p *Parser) parseArray() (core.Object, error) {
	p.pos++ // skip '['

	arr := core.Array{}
	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed array")
		}
		if p.data[p.pos] == ']' {
			p.pos++
			return arr, nil
		}
		elem, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		arr = append(arr, elem)
	}
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.data) && isWhitespace(p.data[p.pos]) {
		p.pos++
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '\'' || c == '"'
}

func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == '<' || c == '>' || c == '[' || c == ']' || c == '{' || c == '}' || c == '/' || c == '%'
}
