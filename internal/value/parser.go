package value

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseError is returned for malformed input text (spec §7 ParseError).
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("value: parse error at offset %d: %s", e.Offset, e.Msg)
}

// Parse reads a single structured-value document from r.
func Parse(r io.Reader) (Value, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return Value{}, errors.Wrap(err, "value: read input")
	}
	p := &parser{src: string(data)}
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return Value{}, &ParseError{Offset: p.pos, Msg: "trailing data after document"}
	}
	return v, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errf(format string, args ...any) error {
	return &ParseError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) expect(c byte) error {
	if p.eof() || p.src[p.pos] != c {
		return p.errf("expected %q", c)
	}
	p.pos++
	return nil
}

func (p *parser) parseValue() (Value, error) {
	p.skipSpace()
	if p.eof() {
		return Value{}, p.errf("unexpected end of input")
	}
	switch c := p.peek(); {
	case c == '{':
		return p.parseDict()
	case c == '[':
		return p.parseArray()
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case c == 't' || c == 'f':
		return p.parseBool()
	case c == 'n':
		return p.parseNull()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return Value{}, p.errf("unexpected character %q", c)
	}
}

func (p *parser) parseDict() (Value, error) {
	if err := p.expect('{'); err != nil {
		return Value{}, err
	}
	var b Builder
	b.StartDict()
	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		b.EndDict()
		return b.Build(), nil
	}
	for {
		p.skipSpace()
		key, err := p.parseString()
		if err != nil {
			return Value{}, errors.Wrap(err, "value: dict key")
		}
		p.skipSpace()
		if err := p.expect(':'); err != nil {
			return Value{}, err
		}
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		b.Key(key).Value(v)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
			continue
		case '}':
			p.pos++
			b.EndDict()
			return b.Build(), nil
		default:
			return Value{}, p.errf("expected ',' or '}' in dict")
		}
	}
}

func (p *parser) parseArray() (Value, error) {
	if err := p.expect('['); err != nil {
		return Value{}, err
	}
	var b Builder
	b.StartArray()
	p.skipSpace()
	if p.peek() == ']' {
		p.pos++
		b.EndArray()
		return b.Build(), nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		b.Value(v)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
			continue
		case ']':
			p.pos++
			b.EndArray()
			return b.Build(), nil
		default:
			return Value{}, p.errf("expected ',' or ']' in array")
		}
	}
}

func (p *parser) parseString() (string, error) {
	if err := p.expect('"'); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		if p.eof() {
			return "", p.errf("unterminated string")
		}
		c := p.src[p.pos]
		if c == '"' {
			p.pos++
			return sb.String(), nil
		}
		if c == '\\' {
			p.pos++
			if p.eof() {
				return "", p.errf("unterminated escape")
			}
			esc := p.src[p.pos]
			switch esc {
			case '"', '\\', '/':
				sb.WriteByte(esc)
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				return "", p.errf("unknown escape %q", esc)
			}
			p.pos++
			continue
		}
		sb.WriteByte(c)
		p.pos++
	}
}

func (p *parser) parseBool() (Value, error) {
	if strings.HasPrefix(p.src[p.pos:], "true") {
		p.pos += 4
		return Bool(true), nil
	}
	if strings.HasPrefix(p.src[p.pos:], "false") {
		p.pos += 5
		return Bool(false), nil
	}
	return Value{}, p.errf("invalid literal")
}

func (p *parser) parseNull() (Value, error) {
	if strings.HasPrefix(p.src[p.pos:], "null") {
		p.pos += 4
		return Null(), nil
	}
	return Value{}, p.errf("invalid literal")
}

func (p *parser) parseNumber() (Value, error) {
	start := p.pos
	isFloat := false
	if p.peek() == '-' {
		p.pos++
	}
	for !p.eof() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if !p.eof() && p.src[p.pos] == '.' {
		isFloat = true
		p.pos++
		for !p.eof() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
	}
	if !p.eof() && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		isFloat = true
		p.pos++
		if !p.eof() && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		for !p.eof() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
	}
	text := p.src[start:p.pos]
	if text == "" || text == "-" {
		return Value{}, p.errf("invalid number")
	}
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, p.errf("invalid number %q", text)
		}
		return Float(f), nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Value{}, p.errf("invalid number %q", text)
	}
	return Int(i), nil
}
