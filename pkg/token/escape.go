package token

import "strings"

var doubleEscapes = map[byte]byte{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
	'`':  '`',
}

// Unescape decodes the raw content of a string token according to the rules
// of its quoting kind.
//
// Double-quoted strings understand the C escapes, \xHH and \NNN (octal).
// Single- and back-quoted strings only unescape their own quote and the
// backslash. Bare words are returned unchanged. Unknown escapes keep the
// backslash.
func Unescape(q Token, literal string) string {
	switch q {
	case DoubleQuoted:
		return UnescapeDouble(literal)
	case SingleQuoted:
		return unescapeSimple(literal, '\'')
	case BackQuoted:
		return unescapeSimple(literal, '`')
	default:
		return literal
	}
}

// UnescapeDouble decodes literal with double-quote rules.
func UnescapeDouble(literal string) string {
	if !strings.Contains(literal, `\`) {
		return literal
	}

	var b strings.Builder
	b.Grow(len(literal))

	for i := 0; i < len(literal); i++ {
		c := literal[i]
		if c != '\\' || i+1 == len(literal) {
			b.WriteByte(c)
			continue
		}

		n := literal[i+1]
		if r, ok := doubleEscapes[n]; ok {
			b.WriteByte(r)
			i++
			continue
		}

		if n == 'x' && i+3 < len(literal) && isHex(literal[i+2]) && isHex(literal[i+3]) {
			b.WriteByte(hexVal(literal[i+2])<<4 | hexVal(literal[i+3]))
			i += 3
			continue
		}

		if i+3 < len(literal) && n >= '0' && n <= '3' && isOctal(literal[i+2]) && isOctal(literal[i+3]) {
			b.WriteByte((n-'0')<<6 | (literal[i+2]-'0')<<3 | (literal[i+3] - '0'))
			i += 3
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

func unescapeSimple(literal string, q byte) string {
	if !strings.Contains(literal, `\`) {
		return literal
	}

	var b strings.Builder
	b.Grow(len(literal))

	for i := 0; i < len(literal); i++ {
		c := literal[i]
		if c == '\\' && i+1 < len(literal) && (literal[i+1] == q || literal[i+1] == '\\') {
			b.WriteByte(literal[i+1])
			i++
			continue
		}
		b.WriteByte(c)
	}

	return b.String()
}

// Quote renders s as a string token of kind q such that scanning and
// unescaping it yields s again. Bare words are returned unchanged.
func Quote(s string, q Token) string {
	switch q {
	case DoubleQuoted:
		return quoteDouble(s)
	case SingleQuoted:
		return quoteSimple(s, '\'')
	case BackQuoted:
		return quoteSimple(s, '`')
	default:
		return s
	}
}

const hexDigits = "0123456789abcdef"

func quoteDouble(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\', '"':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				b.WriteString(`\x`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0x0f])
				continue
			}
			b.WriteByte(c)
		}
	}

	b.WriteByte('"')
	return b.String()
}

func quoteSimple(s string, q byte) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(q)

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == q {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}

	b.WriteByte(q)
	return b.String()
}

// NeedsQuote reports whether s would not scan back as a single bare word.
func NeedsQuote(s string) bool {
	tok, text, next, err := Next(s, 0)
	return err != nil || tok != BareWord || text != s || next != len(s)
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
