package token

import (
	"errors"
	"strings"
)

// ErrUnterminated is returned when a quoted string has no closing quote.
var ErrUnterminated = errors.New("unterminated string")

type entry struct {
	text string
	tok  Token
}

// table is ordered so that longer lexemes match before their prefixes.
var table = []entry{
	{"=~", OpRegEq},
	{"!~", OpRegNE},
	{"=*", OpCmpTrue},
	{"!*", OpCmpFalse},
	{"==", OpCmpEq},
	{"!=", OpNE},
	{"<=", OpLE},
	{">=", OpGE},
	{"+=", OpAdd},
	{"-=", OpSub},
	{":=", OpSet},
	{"^=", OpPrepend},
	{"=", OpEq},
	{"<", OpLT},
	{">", OpGT},
	{"{", LCBrace},
	{"}", RCBrace},
	{"(", LBrace},
	{")", RBrace},
	{",", Comma},
	{";", Semicolon},
	{"#", Hash},
}

// NameTerminators end an attribute name.
var NameTerminators = []string{
	"\t", "\n", " ",
	"!*", "!=", "!~",
	"&&", ")",
	"+=", "-=", ":=",
	"<", "<=",
	"=*", "==", "=~",
	">", ">=",
	"||",
	"^=", "=",
}

var quotes = map[byte]Token{
	'"':  DoubleQuoted,
	'\'': SingleQuoted,
	'`':  BackQuoted,
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

// SkipSpace returns the offset of the first non-blank byte at or after pos.
// Newlines are not blank.
func SkipSpace(s string, pos int) int {
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	return pos
}

func match(s string, pos int) (entry, bool) {
	for _, e := range table {
		if strings.HasPrefix(s[pos:], e.text) {
			return e, true
		}
	}
	return entry{}, false
}

// Next scans the token starting at or after pos.
//
// For quoted strings text is the raw content between the quotes with escape
// sequences left in place; an escaped quote does not end the string. For bare
// words text is the word itself. next is the offset just past the token, or
// the offset of the opening quote when err is ErrUnterminated.
func Next(s string, pos int) (tok Token, text string, next int, err error) {
	pos = SkipSpace(s, pos)
	if pos >= len(s) {
		return EOL, "", pos, nil
	}
	if s[pos] == '\n' {
		return EOL, "", pos + 1, nil
	}

	if q, ok := quotes[s[pos]]; ok {
		end, err := scanQuoted(s, pos)
		if err != nil {
			return Invalid, "", pos, err
		}
		return q, s[pos+1 : end], end + 1, nil
	}

	if e, ok := match(s, pos); ok {
		return e.tok, e.text, pos + len(e.text), nil
	}

	start := pos
	for pos < len(s) && !isSpace(s[pos]) && s[pos] != '\n' {
		if _, ok := match(s, pos); ok {
			break
		}
		pos++
	}
	return BareWord, s[start:pos], pos, nil
}

// scanQuoted returns the offset of the closing quote of the string opened at pos.
func scanQuoted(s string, pos int) (int, error) {
	q := s[pos]
	for i := pos + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case q:
			return i, nil
		}
	}
	return 0, ErrUnterminated
}

// ScanName scans from pos up to the first terminator (or the end of s) and
// returns the scanned text and the offset where it stopped.
func ScanName(s string, pos int, terms []string) (string, int) {
	start := pos
	for pos < len(s) {
		for _, t := range terms {
			if strings.HasPrefix(s[pos:], t) {
				return s[start:pos], pos
			}
		}
		pos++
	}
	return s[start:pos], pos
}
