package json

import (
	"bytes"
	"fmt"
	"io"
)

// Parse decodes exactly one JSON document from data. Any byte after the
// document other than whitespace is a *SyntaxError.
func Parse(data []byte) (Value, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader decodes exactly one JSON document from r. Clean end of
// stream before the document is complete, or any non-whitespace byte
// after it, is a *SyntaxError. Failures of r itself are returned
// wrapped and remain matchable with errors.Is.
func ParseReader(r io.Reader) (Value, error) {
	p := &parser{br: newByteReader(r)}
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	if err := p.skipSpace(); err != nil {
		return Value{}, err
	}
	c, err := p.br.readByte()
	switch err {
	case io.EOF:
		return v, nil
	case nil:
		return Value{}, p.errUnexpected(c, "after top-level value")
	default:
		return Value{}, err
	}
}

type parser struct {
	br *byteReader
}

// parseValue dispatches on one byte of lookahead.
func (p *parser) parseValue() (Value, error) {
	if err := p.skipSpace(); err != nil {
		return Value{}, err
	}
	c, err := p.br.peekByte()
	if err != nil {
		return Value{}, p.eofOr(err, "looking for a value")
	}
	switch {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case c == 't':
		return p.parseLiteral("true", Bool(true))
	case c == 'f':
		return p.parseLiteral("false", Bool(false))
	case c == 'n':
		return p.parseLiteral("null", Null())
	case isNumberByte(c):
		return p.parseNumber()
	}
	return Value{}, &SyntaxError{
		Msg:    fmt.Sprintf("unexpected %q looking for a value", c),
		Offset: p.br.offset(),
	}
}

func (p *parser) parseObject() (Value, error) {
	if _, err := p.br.readByte(); err != nil { // {
		return Value{}, err
	}
	obj := Value{kind: KindObject}
	if err := p.skipSpace(); err != nil {
		return Value{}, err
	}
	c, err := p.br.peekByte()
	if err != nil {
		return Value{}, p.eofOr(err, "inside object")
	}
	if c == '}' {
		p.br.readByte()
		return obj, nil
	}
	for {
		if err := p.skipSpace(); err != nil {
			return Value{}, err
		}
		c, err := p.br.peekByte()
		if err != nil {
			return Value{}, p.eofOr(err, "inside object")
		}
		if c != '"' {
			return Value{}, &SyntaxError{
				Msg:    fmt.Sprintf("unexpected %q looking for object key", c),
				Offset: p.br.offset(),
			}
		}
		key, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		if err := p.skipSpace(); err != nil {
			return Value{}, err
		}
		if err := p.expect(':', "after object key"); err != nil {
			return Value{}, err
		}
		val, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		obj.Set(key, val)
		if err := p.skipSpace(); err != nil {
			return Value{}, err
		}
		c, err = p.br.readByte()
		if err != nil {
			return Value{}, p.eofOr(err, "inside object")
		}
		switch c {
		case ',':
		case '}':
			return obj, nil
		default:
			return Value{}, p.errUnexpected(c, "inside object")
		}
	}
}

func (p *parser) parseArray() (Value, error) {
	if _, err := p.br.readByte(); err != nil { // [
		return Value{}, err
	}
	arr := Value{kind: KindArray}
	if err := p.skipSpace(); err != nil {
		return Value{}, err
	}
	c, err := p.br.peekByte()
	if err != nil {
		return Value{}, p.eofOr(err, "inside array")
	}
	if c == ']' {
		p.br.readByte()
		return arr, nil
	}
	for {
		elem, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		arr.arr = append(arr.arr, elem)
		if err := p.skipSpace(); err != nil {
			return Value{}, err
		}
		c, err := p.br.readByte()
		if err != nil {
			return Value{}, p.eofOr(err, "inside array")
		}
		switch c {
		case ',':
		case ']':
			return arr, nil
		default:
			return Value{}, p.errUnexpected(c, "inside array")
		}
	}
}

// expect consumes one byte and requires it to be want.
func (p *parser) expect(want byte, where string) error {
	c, err := p.br.readByte()
	if err != nil {
		return p.eofOr(err, where)
	}
	if c != want {
		return p.errUnexpected(c, where)
	}
	return nil
}

// eofOr maps clean end of stream inside a construct to a *SyntaxError
// and passes reader failures through untouched.
func (p *parser) eofOr(err error, where string) error {
	if err == io.EOF {
		return &SyntaxError{Msg: "unexpected end of input " + where, Offset: p.br.offset()}
	}
	return err
}

// errUnexpected reports the byte just consumed as a grammar violation.
func (p *parser) errUnexpected(c byte, where string) error {
	return &SyntaxError{
		Msg:    fmt.Sprintf("unexpected %q %s", c, where),
		Offset: p.br.offset() - 1,
	}
}
