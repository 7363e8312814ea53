package json

import (
	"io"
	"strconv"
	"strings"
)

// skipSpace consumes space, tab, newline and carriage return. End of
// stream is not an error here; callers that need a byte find out on
// their own next read.
func (p *parser) skipSpace() error {
	for {
		c, err := p.br.readByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch c {
		case ' ', '\t', '\n', '\r':
		default:
			p.br.putBack(c)
			return nil
		}
	}
}

// parseLiteral consumes exactly len(word) bytes and requires them to
// match word.
func (p *parser) parseLiteral(word string, v Value) (Value, error) {
	start := p.br.offset()
	for i := 0; i < len(word); i++ {
		c, err := p.br.readByte()
		if err == io.EOF {
			return Value{}, &SyntaxError{Msg: "truncated " + strconv.Quote(word) + " literal", Offset: p.br.offset()}
		}
		if err != nil {
			return Value{}, err
		}
		if c != word[i] {
			return Value{}, &SyntaxError{Msg: "malformed " + strconv.Quote(word) + " literal", Offset: start}
		}
	}
	return v, nil
}

// parseString consumes a quoted string and decodes its escapes. The
// accepted escape set is ", \, n, r, t; anything else after a backslash
// is a syntax error, as is end of stream before the closing quote.
func (p *parser) parseString() (string, error) {
	if _, err := p.br.readByte(); err != nil { // opening quote
		return "", err
	}
	var sb strings.Builder
	for {
		c, err := p.br.readByte()
		if err != nil {
			return "", p.eofOr(err, "inside string")
		}
		switch c {
		case '"':
			return sb.String(), nil
		case '\\':
			e, err := p.br.readByte()
			if err != nil {
				return "", p.eofOr(err, "inside string escape")
			}
			switch e {
			case '"', '\\':
				sb.WriteByte(e)
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			default:
				return "", p.errUnexpected(e, "in string escape")
			}
		default:
			sb.WriteByte(c)
		}
	}
}

// isNumberByte reports membership in the number-token alphabet. The
// alphabet is deliberately loose (no +, no E, no position checks);
// strconv.ParseFloat is the authority on whether a token is a number.
func isNumberByte(c byte) bool {
	return c >= '0' && c <= '9' || c == '-' || c == '.' || c == 'e'
}

// parseNumber consumes the maximal run of number-alphabet bytes and
// hands the token to strconv.
func (p *parser) parseNumber() (Value, error) {
	start := p.br.offset()
	var tok []byte
	for {
		c, err := p.br.readByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Value{}, err
		}
		if !isNumberByte(c) {
			p.br.putBack(c)
			break
		}
		tok = append(tok, c)
	}
	f, err := strconv.ParseFloat(string(tok), 64)
	if err != nil {
		return Value{}, &NumberFormatError{Literal: string(tok), Offset: start, Err: err}
	}
	return Number(f), nil
}
