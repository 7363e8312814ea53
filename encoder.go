package json

import "strconv"

// Marshal renders v as compact JSON text with no whitespace between
// tokens.
func Marshal(v Value) []byte { return Append(nil, v) }

// Append appends the compact JSON rendering of v to dst and returns the
// extended buffer.
func Append(dst []byte, v Value) []byte {
	switch v.kind {
	case KindBool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case KindNumber:
		// 'f' keeps the text inside the parser's number alphabet, so
		// rendered numbers always re-parse.
		return strconv.AppendFloat(dst, v.num, 'f', -1, 64)
	case KindString:
		return appendQuoted(dst, v.str)
	case KindArray:
		dst = append(dst, '[')
		for i, e := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = Append(dst, e)
		}
		return append(dst, ']')
	case KindObject:
		dst = append(dst, '{')
		for i, m := range v.obj {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendQuoted(dst, m.Key)
			dst = append(dst, ':')
			dst = Append(dst, m.Value)
		}
		return append(dst, '}')
	}
	return append(dst, "null"...)
}

// appendQuoted writes s as a quoted JSON string. Quote, backslash,
// newline and carriage return are escaped to their two-byte forms;
// every other byte passes through verbatim.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		default:
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}
